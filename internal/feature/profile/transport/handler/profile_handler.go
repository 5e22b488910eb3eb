// Package handler はprofileフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"celebrity_backend/internal/api"
	"celebrity_backend/internal/feature/profile/domain/entity"
)

// ProfileUsecase は有名人紹介のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type ProfileUsecase interface {
	DescribeCelebrity(ctx context.Context, name string) (*entity.CelebrityProfile, error)
}

// ProfileHandler は有名人紹介のHTTPリクエストを処理します。
type ProfileHandler struct {
	uc ProfileUsecase
}

// NewProfileHandler はProfileHandlerの新しいインスタンスを生成します。
func NewProfileHandler(uc ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// Describe は有名人の紹介サマリーを生成します。
//
// エンドポイント: POST /v1/celebrities/profile
// Content-Type: application/json
func (h *ProfileHandler) Describe(c *gin.Context) {
	var req api.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("紹介リクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "有名人の名前が必要です"})
		return
	}

	profile, err := h.uc.DescribeCelebrity(c.Request.Context(), req.Name)
	if err != nil {
		slog.Error("紹介文の生成に失敗", "error", err, "celebrity", req.Name)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "紹介文の生成に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.ProfileResponse{
		Name:    profile.Name,
		Summary: profile.Summary,
	})
}
