package adapters

import (
	"context"

	"gorm.io/gorm"

	"celebrity_backend/internal/feature/history/domain/entity"
	"celebrity_backend/internal/feature/history/usecase"
)

// runGorm はRunRepositoryインターフェースのGORM実装です。
type runGorm struct {
	db *gorm.DB
}

// runGormがRunRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.RunRepository = (*runGorm)(nil)

// NewRunGorm は指定されたgorm.DB接続でrunGormの新しいインスタンスを生成します。
// 依存性注入用のコンストラクタです。
func NewRunGorm(db *gorm.DB) *runGorm {
	return &runGorm{db: db}
}

// Save は認識履歴をデータベースに追加します。
func (r *runGorm) Save(ctx context.Context, run *entity.RecognitionRun) error {
	model := RecognitionLogModelFromEntity(run)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}
	run.ID = model.ID
	run.CreatedAt = model.CreatedAt
	return nil
}

// ListRecent は新しい順に最大limit件の履歴を取得します。
func (r *runGorm) ListRecent(ctx context.Context, limit int) ([]entity.RecognitionRun, error) {
	var models []RecognitionLogModel
	if err := r.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&models).Error; err != nil {
		return nil, err
	}

	runs := make([]entity.RecognitionRun, 0, len(models))
	for i := range models {
		runs = append(runs, models[i].ToEntity())
	}
	return runs, nil
}
