// Package handler はhistoryフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"celebrity_backend/internal/api"
	"celebrity_backend/internal/feature/history/domain/entity"
)

// HistoryUsecase は認識履歴のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type HistoryUsecase interface {
	ListRecent(ctx context.Context, limit int) ([]entity.RecognitionRun, error)
}

// HistoryHandler は認識履歴のHTTPリクエストを処理します。
type HistoryHandler struct {
	uc HistoryUsecase
}

// NewHistoryHandler はHistoryHandlerの新しいインスタンスを生成します。
func NewHistoryHandler(uc HistoryUsecase) *HistoryHandler {
	return &HistoryHandler{uc: uc}
}

// List は認識履歴を新しい順に返します。
//
// エンドポイント: GET /v1/history?limit=20
func (h *HistoryHandler) List(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "limitは正の整数で指定してください"})
			return
		}
		limit = parsed
	}

	runs, err := h.uc.ListRecent(c.Request.Context(), limit)
	if err != nil {
		slog.Error("履歴の取得に失敗", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "履歴の取得に失敗しました"})
		return
	}

	out := make([]api.RecognitionRunResponse, 0, len(runs))
	for _, run := range runs {
		out = append(out, api.RecognitionRunResponse{
			ID:             run.ID,
			Source:         run.Source,
			CelebrityCount: run.CelebrityCount,
			TopMatch:       run.TopMatch,
			TopConfidence:  run.TopConfidence,
			OutputPath:     run.OutputPath,
			CreatedAt:      run.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, out)
}
