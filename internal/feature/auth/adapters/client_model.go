// Package adapters はauthフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"time"

	"celebrity_backend/internal/feature/auth/domain/entity"
)

// ClientModel is the GORM model for the api_clients table.
type ClientModel struct {
	ID         uint      `gorm:"primaryKey"`
	ClientID   string    `gorm:"uniqueIndex;size:255;not null"`
	SecretHash string    `gorm:"size:255;not null"`
	CreatedAt  time.Time `gorm:"not null"`
	UpdatedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM.
func (ClientModel) TableName() string {
	return "api_clients"
}

// ToEntity converts the GORM model to a domain entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:         m.ID,
		ClientID:   m.ClientID,
		SecretHash: m.SecretHash,
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}

// ClientModelFromEntity converts a domain entity to a GORM model.
func ClientModelFromEntity(c *entity.Client) *ClientModel {
	return &ClientModel{
		ID:         c.ID,
		ClientID:   c.ClientID,
		SecretHash: c.SecretHash,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
