package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	historyentity "celebrity_backend/internal/feature/history/domain/entity"
	"celebrity_backend/internal/feature/history/usecase"
	recognitionentity "celebrity_backend/internal/feature/recognition/domain/entity"
)

// mockRunRepository はRunRepositoryインターフェースのモック実装です。
type mockRunRepository struct {
	Saved         []*historyentity.RecognitionRun
	ListFunc      func(ctx context.Context, limit int) ([]historyentity.RecognitionRun, error)
	LastListLimit int
}

func (m *mockRunRepository) Save(ctx context.Context, run *historyentity.RecognitionRun) error {
	m.Saved = append(m.Saved, run)
	return nil
}

func (m *mockRunRepository) ListRecent(ctx context.Context, limit int) ([]historyentity.RecognitionRun, error) {
	m.LastListLimit = limit
	if m.ListFunc != nil {
		return m.ListFunc(ctx, limit)
	}
	return nil, nil
}

func TestRecordRun(t *testing.T) {
	t.Run("最も信頼度の高い有名人が記録される", func(t *testing.T) {
		repo := &mockRunRepository{}
		uc := usecase.NewHistoryUsecase(repo)

		result := &recognitionentity.RecognitionResult{
			Celebrities: []recognitionentity.DetectedCelebrity{
				{Name: "Will Smith", MatchConfidence: 95},
				{Name: "Rihanna", MatchConfidence: 99},
				{Name: "Jojo", MatchConfidence: 91},
			},
		}

		err := uc.RecordRun(context.Background(), "group.jpg", result, "group-resultado.jpg")
		require.NoError(t, err)

		require.Len(t, repo.Saved, 1)
		run := repo.Saved[0]
		assert.Equal(t, "group.jpg", run.Source)
		assert.Equal(t, 3, run.CelebrityCount)
		assert.Equal(t, "Rihanna", run.TopMatch)
		assert.InDelta(t, 99, run.TopConfidence, 0.001)
		assert.Equal(t, "group-resultado.jpg", run.OutputPath)
	})

	t.Run("結果がnilの場合はエラー", func(t *testing.T) {
		uc := usecase.NewHistoryUsecase(&mockRunRepository{})

		err := uc.RecordRun(context.Background(), "a.jpg", nil, "")
		require.Error(t, err)
	})
}

func TestListRecent(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{name: "0以下は既定値に丸める", limit: 0, wantLimit: usecase.DefaultListLimit},
		{name: "上限を超える場合は上限に丸める", limit: 1000, wantLimit: usecase.MaxListLimit},
		{name: "範囲内はそのまま", limit: 5, wantLimit: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRunRepository{}
			uc := usecase.NewHistoryUsecase(repo)

			_, err := uc.ListRecent(context.Background(), tt.limit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, repo.LastListLimit)
		})
	}
}
