package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"celebrity_backend/internal/app/router"
	"celebrity_backend/internal/feature/annotation/adapters/draw"
	annotationusecase "celebrity_backend/internal/feature/annotation/usecase"
	authadapters "celebrity_backend/internal/feature/auth/adapters"
	authhandler "celebrity_backend/internal/feature/auth/transport/handler"
	authusecase "celebrity_backend/internal/feature/auth/usecase"
	historyadapters "celebrity_backend/internal/feature/history/adapters"
	historyhandler "celebrity_backend/internal/feature/history/transport/handler"
	historyusecase "celebrity_backend/internal/feature/history/usecase"
	"celebrity_backend/internal/feature/profile/adapters/gemini"
	profilehandler "celebrity_backend/internal/feature/profile/transport/handler"
	profileusecase "celebrity_backend/internal/feature/profile/usecase"
	"celebrity_backend/internal/feature/recognition/adapters/rekognition"
	recognitionhandler "celebrity_backend/internal/feature/recognition/transport/handler"
	recognitionusecase "celebrity_backend/internal/feature/recognition/usecase"
	"celebrity_backend/internal/platform/cache"
	"celebrity_backend/internal/platform/db"
	jwtmw "celebrity_backend/internal/platform/jwt"
	platformredis "celebrity_backend/internal/platform/redis"
)

func main() {
	// .envは任意（コンテナでは環境変数を直接渡す）
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using environment variables")
	}

	ctx := context.Background()

	// db
	gdb := db.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(ctx); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 認識バックエンド（Rekognition、Redisキャッシュでラップ）
	recognizer, err := rekognition.NewRekognitionRecognizer(ctx, rekognition.LoadConfig())
	if err != nil {
		log.Fatal("failed to create rekognition client: ", err)
	}
	cachedRecognizer := cache.NewCachingRecognizer(rdb, 0, recognizer, "recognition")

	// Gemini（任意。未設定なら紹介エンドポイントは502を返す）
	var generator profileusecase.ProfileGenerator
	if g, err := gemini.NewGeminiGenerator(ctx); err != nil {
		log.Println("[WARN] Gemini unavailable. Profile endpoint disabled:", err)
	} else {
		generator = g
	}

	// Repository
	clientRepo := authadapters.NewClientGorm(gdb)
	runRepo := historyadapters.NewRunGorm(gdb)

	// Usecase
	jwtGen := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), time.Hour)
	authUC := authusecase.NewAuthUsecase(clientRepo, jwtGen)
	recognitionUC := recognitionusecase.NewRecognitionUsecase(cachedRecognizer)
	annotationUC := annotationusecase.NewAnnotateUsecase(draw.NewGGRenderer(os.Getenv("FONT_PATH")), 0)
	profileUC := profileusecase.NewProfileUsecase(generator)
	historyUC := historyusecase.NewHistoryUsecase(runRepo)

	// 初期クライアントの登録（環境変数から、既存ならスキップ）
	if id, secret := os.Getenv("CLIENT_ID"), os.Getenv("CLIENT_SECRET"); id != "" && secret != "" {
		if err := authUC.Register(ctx, id, secret); err != nil && !errors.Is(err, authusecase.ErrClientAlreadyExists) {
			log.Fatal("failed to seed API client: ", err)
		}
	}

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	recognitionH := recognitionhandler.NewRecognitionHandler(recognitionUC, annotationUC)
	profileH := profilehandler.NewProfileHandler(profileUC)
	historyH := historyhandler.NewHistoryHandler(historyUC)

	// ルータ生成
	r := router.NewRouter(authH, recognitionH, profileH, historyH)

	// JWT_SECRETチェック（開発中の注意喚起）
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
