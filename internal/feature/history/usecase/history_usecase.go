// Package usecase はhistoryフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	historyentity "celebrity_backend/internal/feature/history/domain/entity"
	recognitionentity "celebrity_backend/internal/feature/recognition/domain/entity"
	recognitionusecase "celebrity_backend/internal/feature/recognition/usecase"
)

const (
	// DefaultListLimit は履歴一覧の既定の件数です。
	DefaultListLimit = 20
	// MaxListLimit は履歴一覧の最大件数です。
	MaxListLimit = 100
)

// RunRepository は認識履歴の永続化層を抽象化します。
// Goの慣例に従い、インターフェースはプロバイダー（adapters）ではなくコンシューマー（usecase）が定義します。
type RunRepository interface {
	// Save は認識履歴を永続化します。
	Save(ctx context.Context, run *historyentity.RecognitionRun) error

	// ListRecent は新しい順に最大limit件の履歴を取得します。
	ListRecent(ctx context.Context, limit int) ([]historyentity.RecognitionRun, error)
}

// historyUsecase は認識履歴の記録・参照のビジネスロジックを提供します。
type historyUsecase struct {
	runs RunRepository
}

// historyUsecaseがバッチ処理のRunRecorderを実装していることをコンパイル時に検証します。
var _ recognitionusecase.RunRecorder = (*historyUsecase)(nil)

// NewHistoryUsecase はhistoryUsecaseの新しいインスタンスを生成します。
func NewHistoryUsecase(runs RunRepository) *historyUsecase {
	return &historyUsecase{runs: runs}
}

// RecordRun は認識結果を集計して履歴として保存します。
func (u *historyUsecase) RecordRun(ctx context.Context, source string, result *recognitionentity.RecognitionResult, outputPath string) error {
	if result == nil {
		return fmt.Errorf("recognition result is required")
	}

	run := &historyentity.RecognitionRun{
		Source:         source,
		CelebrityCount: len(result.Celebrities),
		OutputPath:     outputPath,
	}

	// 最も信頼度の高い有名人を記録する
	for _, c := range result.Celebrities {
		if c.MatchConfidence > run.TopConfidence {
			run.TopMatch = c.Name
			run.TopConfidence = c.MatchConfidence
		}
	}

	if err := u.runs.Save(ctx, run); err != nil {
		return fmt.Errorf("save recognition run: %w", err)
	}
	return nil
}

// ListRecent は新しい順に履歴を取得します。
// limitが0以下の場合はDefaultListLimit件、MaxListLimitを超える場合はMaxListLimit件に丸められます。
func (u *historyUsecase) ListRecent(ctx context.Context, limit int) ([]historyentity.RecognitionRun, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	return u.runs.ListRecent(ctx, limit)
}
