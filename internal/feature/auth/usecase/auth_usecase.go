// Package usecase はauthフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"celebrity_backend/internal/feature/auth/domain/entity"
)

const (
	// minSecretLength はクライアントシークレットの最低文字数を定義します。
	minSecretLength = 16
)

// ClientRepository はクライアントエンティティの永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type ClientRepository interface {
	// Create は新しいクライアントをストレージに永続化します。
	// 同じクライアントIDが既に存在する場合、ErrClientAlreadyExistsを返します。
	Create(ctx context.Context, client *entity.Client) error

	// FindByClientID は指定されたクライアントIDに一致するクライアントを取得します。
	// クライアントが存在しない場合、ErrClientNotFoundを返します。
	FindByClientID(ctx context.Context, clientID string) (*entity.Client, error)
}

// JWTGenerator はJWTトークン生成のインターフェースを定義します。
// Goの慣例に従い、インターフェースはプロバイダー（platform/jwt）ではなくコンシューマー（usecase）が定義します。
type JWTGenerator interface {
	// GenerateToken は指定されたクライアントの署名済みJWTトークンを生成します。
	GenerateToken(clientID string) (string, error)
}

// authUsecase はクライアント認証のビジネスロジックを実装します。
type authUsecase struct {
	clients      ClientRepository
	jwtGenerator JWTGenerator
}

// NewAuthUsecase はauthUsecaseの新しいインスタンスを生成します。
func NewAuthUsecase(clients ClientRepository, jwtGenerator JWTGenerator) *authUsecase {
	return &authUsecase{
		clients:      clients,
		jwtGenerator: jwtGenerator,
	}
}

// validateSecret はシークレットが強度要件を満たしているかチェックします。
func validateSecret(secret string) error {
	if len(secret) < minSecretLength {
		return fmt.Errorf("client secret must be at least %d characters long", minSecretLength)
	}
	return nil
}

// Register はハッシュ化されたシークレットで新規クライアントを登録します。
func (u *authUsecase) Register(ctx context.Context, clientID, secret string) error {
	if clientID == "" {
		return fmt.Errorf("client ID is required")
	}
	if err := validateSecret(secret); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash secret: %w", err)
	}
	client := &entity.Client{ClientID: clientID, SecretHash: string(hashed)}
	return u.clients.Create(ctx, client)
}

// IssueToken はクライアントを認証し、成功時にJWTトークンを返します。
// タイミング攻撃を防止するため、クライアントが存在しない場合でもbcrypt比較を実行します。
func (u *authUsecase) IssueToken(ctx context.Context, clientID, secret string) (string, error) {
	client, err := u.clients.FindByClientID(ctx, clientID)

	// クライアントが存在しない場合のタイミング攻撃緩和用ダミーハッシュ
	// bcrypt.CompareHashAndPasswordが常に呼ばれることを保証する
	secretHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy" // ダミーハッシュ
	if err == nil {
		secretHash = client.SecretHash
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(secretHash), []byte(secret))

	// クライアント未検出またはシークレット不一致の場合、汎用エラーを返す
	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, tokenErr := u.jwtGenerator.GenerateToken(client.ClientID)
	if tokenErr != nil {
		return "", fmt.Errorf("failed to generate token: %w", tokenErr)
	}

	return token, nil
}
