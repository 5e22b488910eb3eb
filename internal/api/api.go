// Package api defines the request and response types for the HTTP API.
package api

import "time"

// ErrorResponse is the common error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple informational payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// BoundingBoxResponse は認識された顔の相対座標の矩形を表します。
type BoundingBoxResponse struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// DetectedCelebrityResponse は認識された有名人1人分のレスポンスです。
type DetectedCelebrityResponse struct {
	Name            string              `json:"name"`
	MatchConfidence float32             `json:"match_confidence"`
	Box             BoundingBoxResponse `json:"box"`
}

// TokenRequest はトークン発行リクエストです。
type TokenRequest struct {
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret" binding:"required"`
}

// TokenResponse は発行されたアクセストークンを返します。
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// ProfileRequest は有名人紹介リクエストです。
type ProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProfileResponse は生成された有名人紹介を返します。
type ProfileResponse struct {
	Name    string `json:"name"`
	Summary string `json:"summary"`
}

// RecognitionRunResponse は認識履歴1件分のレスポンスです。
type RecognitionRunResponse struct {
	ID             uint      `json:"id"`
	Source         string    `json:"source"`
	CelebrityCount int       `json:"celebrity_count"`
	TopMatch       string    `json:"top_match"`
	TopConfidence  float32   `json:"top_confidence"`
	OutputPath     string    `json:"output_path"`
	CreatedAt      time.Time `json:"created_at"`
}
