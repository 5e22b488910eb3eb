package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"celebrity_backend/internal/feature/annotation/adapters/draw"
	annotationusecase "celebrity_backend/internal/feature/annotation/usecase"
	historyadapters "celebrity_backend/internal/feature/history/adapters"
	historyusecase "celebrity_backend/internal/feature/history/usecase"
	"celebrity_backend/internal/feature/recognition/adapters/rekognition"
	"celebrity_backend/internal/feature/recognition/adapters/vision"
	recognitionusecase "celebrity_backend/internal/feature/recognition/usecase"
	"celebrity_backend/internal/platform/cache"
	platformredis "celebrity_backend/internal/platform/redis"
	"celebrity_backend/internal/shared/ratelimiter"
)

// defaultThreshold は環境変数 MATCH_CONFIDENCE_THRESHOLD を考慮したしきい値の既定値を返します。
func defaultThreshold() float64 {
	if v := os.Getenv("MATCH_CONFIDENCE_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 32); err == nil {
			return f
		}
		log.Printf("[WARN] invalid MATCH_CONFIDENCE_THRESHOLD %q, using default", v)
	}
	return float64(annotationusecase.DefaultThreshold)
}

// listImages はディレクトリ直下の画像ファイル名を返します。
// 注釈済みの出力ファイルは再処理しないようスキップします。
func listImages(dir string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		log.Fatalf("failed to read images directory %q: %v", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
			continue
		}
		if strings.HasSuffix(strings.TrimSuffix(name, ext), "-resultado") {
			continue
		}
		files = append(files, name)
	}
	return files
}

func main() {
	// .envは任意（コンテナでは環境変数を直接渡す）
	if err := godotenv.Load(".env"); err != nil {
		log.Println("no .env file, using environment variables")
	}

	dir := flag.String("dir", "images", "directory containing input images")
	threshold := flag.Float64("threshold", defaultThreshold(), "minimum match confidence for drawing a box")
	backend := flag.String("backend", "rekognition", "recognition backend: rekognition or vision")
	fontPath := flag.String("font", os.Getenv("FONT_PATH"), "TrueType font for labels (built-in bitmap font if empty)")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// 認識バックエンド
	var recognizer recognitionusecase.CelebrityRecognizer
	switch *backend {
	case "rekognition":
		r, err := rekognition.NewRekognitionRecognizer(ctx, rekognition.LoadConfig())
		if err != nil {
			log.Fatal("failed to create rekognition client: ", err)
		}
		recognizer = r
	case "vision":
		v, err := vision.NewVisionFaceRecognizer(ctx)
		if err != nil {
			log.Fatal("failed to create vision client: ", err)
		}
		defer func() {
			if err := v.Close(); err != nil {
				log.Println("[ERROR] Failed to close vision client:", err)
			}
		}()
		recognizer = v
	default:
		log.Fatalf("unknown backend %q (want rekognition or vision)", *backend)
	}

	// Redisキャッシュでラップ（任意）
	if rdb, err := platformredis.NewRedisClient(ctx); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
	} else {
		recognizer = cache.NewCachingRecognizer(rdb, 0, recognizer, "recognition")
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// 履歴（ローカルSQLite、失敗しても処理は続ける）
	var recorder recognitionusecase.RunRecorder
	if gdb, err := gorm.Open(sqlite.Open("celebrity.db"), &gorm.Config{}); err != nil {
		log.Println("[WARN] history database unavailable:", err)
	} else if err := gdb.AutoMigrate(&historyadapters.RecognitionLogModel{}); err != nil {
		log.Println("[WARN] history migration failed:", err)
	} else {
		recorder = historyusecase.NewHistoryUsecase(historyadapters.NewRunGorm(gdb))
	}

	renderer := draw.NewGGRenderer(*fontPath)
	annotator := annotationusecase.NewAnnotateUsecase(renderer, float32(*threshold))
	limiter := ratelimiter.NewRateLimiter(50, time.Minute)

	bu := recognitionusecase.NewBatchUsecase(recognizer, annotator, recorder, limiter, *dir)

	// 引数で個別のファイル名を渡せる。省略時はディレクトリ内の画像すべて。
	files := flag.Args()
	if len(files) == 0 {
		files = listImages(*dir)
	}
	if len(files) == 0 {
		log.Fatalf("no images found in %q", *dir)
	}

	if err := bu.AnnotateAll(ctx, files); err != nil {
		log.Fatal(err)
	}
	log.Println("annotate ok")
}
