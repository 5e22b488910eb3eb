// Package handler はrecognitionフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"celebrity_backend/internal/api"
	"celebrity_backend/internal/feature/recognition/domain/entity"
)

// RecognitionUsecase は有名人認識のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type RecognitionUsecase interface {
	Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error)
}

// AnnotationUsecase は認識結果の描画ユースケースインターフェースを定義します。
type AnnotationUsecase interface {
	AnnotateBytes(imageData []byte, result *entity.RecognitionResult) ([]byte, error)
}

// RecognitionHandler は有名人認識・注釈のHTTPリクエストを処理します。
type RecognitionHandler struct {
	recognizeUC RecognitionUsecase
	annotateUC  AnnotationUsecase
}

// NewRecognitionHandler はRecognitionHandlerの新しいインスタンスを生成します。
func NewRecognitionHandler(recognizeUC RecognitionUsecase, annotateUC AnnotationUsecase) *RecognitionHandler {
	return &RecognitionHandler{recognizeUC: recognizeUC, annotateUC: annotateUC}
}

// readImageFile はmultipartフォームの"image"フィールドを読み取ります。
func readImageFile(c *gin.Context) ([]byte, bool) {
	file, err := c.FormFile("image")
	if err != nil {
		slog.Warn("画像ファイルの取得に失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "画像ファイルが必要です"})
		return nil, false
	}

	f, err := file.Open()
	if err != nil {
		slog.Error("画像ファイルのオープンに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return nil, false
	}
	defer func() {
		if err := f.Close(); err != nil {
			slog.Warn("画像ファイルのクローズに失敗", "error", err)
		}
	}()

	imageData, err := io.ReadAll(f)
	if err != nil {
		slog.Error("画像データの読み取りに失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "画像の読み込みに失敗しました"})
		return nil, false
	}
	return imageData, true
}

// Recognize は画像をアップロードして有名人を認識します。
//
// エンドポイント: POST /v1/celebrities/recognize
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
func (h *RecognitionHandler) Recognize(c *gin.Context) {
	imageData, ok := readImageFile(c)
	if !ok {
		return
	}

	result, err := h.recognizeUC.Recognize(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("有名人認識に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "有名人認識に失敗しました"})
		return
	}

	out := make([]api.DetectedCelebrityResponse, 0, len(result.Celebrities))
	for _, celeb := range result.Celebrities {
		out = append(out, api.DetectedCelebrityResponse{
			Name:            celeb.Name,
			MatchConfidence: celeb.MatchConfidence,
			Box: api.BoundingBoxResponse{
				Left:   celeb.Box.Left,
				Top:    celeb.Box.Top,
				Width:  celeb.Box.Width,
				Height: celeb.Box.Height,
			},
		})
	}
	c.JSON(http.StatusOK, out)
}

// Annotate は画像をアップロードし、認識された有名人を描画した画像を返します。
//
// エンドポイント: POST /v1/celebrities/annotate
// Content-Type: multipart/form-data
// フィールド: image（画像ファイル、最大10MB）
// レスポンス: image/jpeg（1人も認識されなかった場合は404）
func (h *RecognitionHandler) Annotate(c *gin.Context) {
	imageData, ok := readImageFile(c)
	if !ok {
		return
	}

	result, err := h.recognizeUC.Recognize(c.Request.Context(), imageData)
	if err != nil {
		slog.Error("有名人認識に失敗", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: "有名人認識に失敗しました"})
		return
	}

	if len(result.Celebrities) == 0 {
		c.JSON(http.StatusNotFound, api.MessageResponse{Message: "有名人は認識されませんでした"})
		return
	}

	annotated, err := h.annotateUC.AnnotateBytes(imageData, result)
	if err != nil {
		slog.Error("注釈画像の生成に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "注釈画像の生成に失敗しました"})
		return
	}

	c.Data(http.StatusOK, "image/jpeg", annotated)
}
