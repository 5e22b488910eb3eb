// Package adapters はhistoryフィーチャーのリポジトリ実装を提供します。
package adapters

import (
	"time"

	"celebrity_backend/internal/feature/history/domain/entity"
)

// RecognitionLogModel is the GORM model for the recognition_logs table.
type RecognitionLogModel struct {
	ID             uint      `gorm:"primaryKey"`
	Source         string    `gorm:"size:512;not null"`
	CelebrityCount int       `gorm:"not null"`
	TopMatch       string    `gorm:"size:255"`
	TopConfidence  float32
	OutputPath     string    `gorm:"size:512"`
	CreatedAt      time.Time `gorm:"index;not null"`
}

// TableName returns the table name for GORM.
func (RecognitionLogModel) TableName() string {
	return "recognition_logs"
}

// ToEntity converts the GORM model to a domain entity.
func (m *RecognitionLogModel) ToEntity() entity.RecognitionRun {
	return entity.RecognitionRun{
		ID:             m.ID,
		Source:         m.Source,
		CelebrityCount: m.CelebrityCount,
		TopMatch:       m.TopMatch,
		TopConfidence:  m.TopConfidence,
		OutputPath:     m.OutputPath,
		CreatedAt:      m.CreatedAt,
	}
}

// RecognitionLogModelFromEntity converts a domain entity to a GORM model.
func RecognitionLogModelFromEntity(r *entity.RecognitionRun) *RecognitionLogModel {
	return &RecognitionLogModel{
		ID:             r.ID,
		Source:         r.Source,
		CelebrityCount: r.CelebrityCount,
		TopMatch:       r.TopMatch,
		TopConfidence:  r.TopConfidence,
		OutputPath:     r.OutputPath,
		CreatedAt:      r.CreatedAt,
	}
}
