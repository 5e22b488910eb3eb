package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"celebrity_backend/internal/feature/auth/transport/handler"
	"celebrity_backend/internal/feature/auth/usecase"
)

// mockAuthUsecase はAuthUsecaseインターフェースのモック実装です。
type mockAuthUsecase struct {
	IssueTokenFunc func(ctx context.Context, clientID, secret string) (string, error)
}

func (m *mockAuthUsecase) IssueToken(ctx context.Context, clientID, secret string) (string, error) {
	return m.IssueTokenFunc(ctx, clientID, secret)
}

func TestAuthHandler_Token(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		body           string
		mockFunc       func(ctx context.Context, clientID, secret string) (string, error)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "success",
			body: `{"client_id":"batch-annotator","client_secret":"super-secret-value-123"}`,
			mockFunc: func(ctx context.Context, clientID, secret string) (string, error) {
				return "signed-token", nil
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"access_token":"signed-token"`,
		},
		{
			name: "error: missing fields",
			body: `{"client_id":"batch-annotator"}`,
			mockFunc: func(ctx context.Context, clientID, secret string) (string, error) {
				t.Fatal("usecase should not be called")
				return "", nil
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "client_idとclient_secretが必要です",
		},
		{
			name: "error: invalid credentials map to 401",
			body: `{"client_id":"batch-annotator","client_secret":"wrong-secret-value"}`,
			mockFunc: func(ctx context.Context, clientID, secret string) (string, error) {
				return "", usecase.ErrInvalidCredentials
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "クライアントIDまたはシークレットが正しくありません",
		},
		{
			name: "error: unexpected failure maps to 500",
			body: `{"client_id":"batch-annotator","client_secret":"super-secret-value-123"}`,
			mockFunc: func(ctx context.Context, clientID, secret string) (string, error) {
				return "", errors.New("sign error")
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "トークンの発行に失敗しました",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := handler.NewAuthHandler(&mockAuthUsecase{IssueTokenFunc: tt.mockFunc})

			r := gin.New()
			r.POST("/auth/token", h.Token)

			req, err := http.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(tt.body))
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}
			req.Header.Set("Content-Type", "application/json")

			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}
