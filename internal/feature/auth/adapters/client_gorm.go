package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"celebrity_backend/internal/feature/auth/domain/entity"
	"celebrity_backend/internal/feature/auth/usecase"
)

// clientGorm はClientRepositoryインターフェースのGORM実装です。
// gorm.ConfigでTranslateErrorを有効にした接続を前提とします。
type clientGorm struct {
	db *gorm.DB
}

// clientGormがClientRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ClientRepository = (*clientGorm)(nil)

// NewClientGorm は指定されたgorm.DB接続でclientGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewClientGorm(db *gorm.DB) *clientGorm {
	return &clientGorm{db: db}
}

// Create はクライアントをデータベースに追加します。
// 同じクライアントIDが既に存在する場合、usecase.ErrClientAlreadyExistsを返します。
func (r *clientGorm) Create(ctx context.Context, c *entity.Client) error {
	model := ClientModelFromEntity(c)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrClientAlreadyExists
		}
		return err
	}
	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	c.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByClientID はクライアントIDでクライアントを取得します。
// クライアントが存在しない場合、usecase.ErrClientNotFoundを返します。
func (r *clientGorm) FindByClientID(ctx context.Context, clientID string) (*entity.Client, error) {
	var model ClientModel
	if err := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrClientNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}
