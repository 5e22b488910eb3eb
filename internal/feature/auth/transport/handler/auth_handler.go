// Package handler はauthフィーチャーのHTTPハンドラーを提供します。
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"celebrity_backend/internal/api"
	"celebrity_backend/internal/feature/auth/usecase"
)

// AuthUsecase はクライアント認証のユースケースインターフェースを定義します。
// Goの慣例に従い、インターフェースは利用者（handler）側で定義します。
type AuthUsecase interface {
	IssueToken(ctx context.Context, clientID, secret string) (string, error)
}

// AuthHandler はトークン発行のHTTPリクエストを処理します。
type AuthHandler struct {
	uc AuthUsecase
}

// NewAuthHandler はAuthHandlerの新しいインスタンスを生成します。
func NewAuthHandler(uc AuthUsecase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Token はクライアント資格情報を検証し、アクセストークンを発行します。
//
// エンドポイント: POST /v1/auth/token
// Content-Type: application/json
func (h *AuthHandler) Token(c *gin.Context) {
	var req api.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("トークンリクエストのバリデーションに失敗", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "client_idとclient_secretが必要です"})
		return
	}

	token, err := h.uc.IssueToken(c.Request.Context(), req.ClientID, req.ClientSecret)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("認証に失敗", "client_id", req.ClientID, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "クライアントIDまたはシークレットが正しくありません"})
			return
		}
		slog.Error("トークン発行に失敗", "error", err, "client_id", req.ClientID)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "トークンの発行に失敗しました"})
		return
	}

	c.JSON(http.StatusOK, api.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
	})
}
