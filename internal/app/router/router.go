package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "celebrity_backend/internal/feature/auth/transport/handler"
	historyhandler "celebrity_backend/internal/feature/history/transport/handler"
	profilehandler "celebrity_backend/internal/feature/profile/transport/handler"
	recognitionhandler "celebrity_backend/internal/feature/recognition/transport/handler"
	"celebrity_backend/internal/platform/http/handler"
	jwtmw "celebrity_backend/internal/platform/jwt"
)

func NewRouter(auth *authhandler.AuthHandler, recognition *recognitionhandler.RecognitionHandler,
	profile *profilehandler.ProfileHandler, history *historyhandler.HistoryHandler) *gin.Engine {
	r := gin.Default()

	// CORS追加（管理画面からの呼び出し用）
	r.Use(cors.Default())

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// クライアント認証（JWT 発行）
	r.POST("/v1/auth/token", auth.Token)

	// 認証必須のルート
	// jwtmw.AuthRequired() ミドルウェアを適用
	// → リクエストヘッダーに JWT が必要になる
	protected := r.Group("/v1")
	protected.Use(jwtmw.AuthRequired())
	{
		protected.POST("/celebrities/recognize", recognition.Recognize)
		protected.POST("/celebrities/annotate", recognition.Annotate)
		protected.POST("/celebrities/profile", profile.Describe)
		protected.GET("/history", history.List)
	}

	return r
}
