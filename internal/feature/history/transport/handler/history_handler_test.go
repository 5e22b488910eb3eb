package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"celebrity_backend/internal/feature/history/domain/entity"
	"celebrity_backend/internal/feature/history/transport/handler"
)

// mockHistoryUsecase はHistoryUsecaseインターフェースのモック実装です。
type mockHistoryUsecase struct {
	ListRecentFunc func(ctx context.Context, limit int) ([]entity.RecognitionRun, error)
}

func (m *mockHistoryUsecase) ListRecent(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
	return m.ListRecentFunc(ctx, limit)
}

func TestHistoryHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		path           string
		mockFunc       func(ctx context.Context, limit int) ([]entity.RecognitionRun, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			path: "/history",
			mockFunc: func(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
				return []entity.RecognitionRun{
					{ID: 1, Source: "capr.jpeg", CelebrityCount: 1, TopMatch: "Will Smith", TopConfidence: 99, OutputPath: "capr-resultado.jpg"},
				}, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"top_match":"Will Smith"`,
		},
		{
			name: "success: empty history",
			path: "/history",
			mockFunc: func(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "limit is passed through",
			path: "/history?limit=5",
			mockFunc: func(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
				assert.Equal(t, 5, limit)
				return nil, nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "error: invalid limit",
			path: "/history?limit=abc",
			mockFunc: func(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
				t.Fatal("usecase should not be called")
				return nil, nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "limitは正の整数で指定してください",
		},
		{
			name: "error: repository failure maps to 500",
			path: "/history",
			mockFunc: func(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
				return nil, errors.New("db down")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "履歴の取得に失敗しました",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewHistoryHandler(&mockHistoryUsecase{ListRecentFunc: tt.mockFunc})

			r := gin.New()
			r.GET("/history", h.List)

			req, err := http.NewRequest(http.MethodGet, tt.path, nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
