package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"celebrity_backend/internal/feature/history/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&RecognitionLogModel{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

func TestRunGorm_Save(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRunGorm(db)

	run := &entity.RecognitionRun{
		Source:         "capr.jpeg",
		CelebrityCount: 2,
		TopMatch:       "Will Smith",
		TopConfidence:  99.5,
		OutputPath:     "capr-resultado.jpg",
	}

	err := repo.Save(context.Background(), run)

	require.NoError(t, err)
	assert.NotZero(t, run.ID, "ID is not set")
	assert.False(t, run.CreatedAt.IsZero(), "CreatedAt is not set")
}

func TestRunGorm_ListRecent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRunGorm(db)

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 3; i++ {
		model := &RecognitionLogModel{
			Source:    []string{"a.jpg", "b.jpg", "c.jpg"}[i],
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		require.NoError(t, db.Create(model).Error)
	}

	runs, err := repo.ListRecent(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, runs, 2)
	// 新しい順に返る
	assert.Equal(t, "c.jpg", runs[0].Source)
	assert.Equal(t, "b.jpg", runs[1].Source)
}

func TestRunGorm_ListRecent_Empty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRunGorm(db)

	runs, err := repo.ListRecent(context.Background(), 10)

	require.NoError(t, err)
	assert.Empty(t, runs)
}
