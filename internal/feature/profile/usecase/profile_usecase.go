// Package usecase はprofileフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"
	"regexp"
	"unicode/utf8"

	"celebrity_backend/internal/feature/profile/domain/entity"
)

const (
	// ProfilePromptTemplate は有名人紹介のプロンプトテンプレートです。
	ProfilePromptTemplate = "日本語で、%sがどんな有名人かを3文で紹介して。"
	// MaxCelebrityNameLength は名前の最大文字数（rune数）です。
	MaxCelebrityNameLength = 100
)

// validCelebrityName は名前に許可される文字パターンです（文字・数字・スペース・一部の記号）。
var validCelebrityName = regexp.MustCompile(`^[\p{L}\p{N}\s・\-\.'&,]+$`)

// ProfileGenerator はプロンプトから紹介サマリーを生成するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type ProfileGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// profileUsecase は有名人の紹介サマリー生成のビジネスロジックを提供します。
type profileUsecase struct {
	generator ProfileGenerator
}

// NewProfileUsecase はprofileUsecaseの新しいインスタンスを生成します。
func NewProfileUsecase(generator ProfileGenerator) *profileUsecase {
	return &profileUsecase{generator: generator}
}

// DescribeCelebrity は名前から紹介サマリーを生成します。
func (u *profileUsecase) DescribeCelebrity(ctx context.Context, name string) (*entity.CelebrityProfile, error) {
	if u.generator == nil {
		return nil, fmt.Errorf("profile generator is not configured")
	}
	if name == "" {
		return nil, fmt.Errorf("celebrity name is required")
	}
	if utf8.RuneCountInString(name) > MaxCelebrityNameLength {
		return nil, fmt.Errorf("celebrity name exceeds maximum length of %d characters", MaxCelebrityNameLength)
	}
	if !validCelebrityName.MatchString(name) {
		return nil, fmt.Errorf("celebrity name contains invalid characters")
	}

	prompt := fmt.Sprintf(ProfilePromptTemplate, name)
	summary, err := u.generator.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("profile generator failed for %q: %w", name, err)
	}

	return &entity.CelebrityProfile{
		Name:    name,
		Summary: summary,
	}, nil
}
