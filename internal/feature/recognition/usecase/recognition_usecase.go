// Package usecase はrecognitionフィーチャーのビジネスロジックを実装します。
package usecase

import (
	"context"
	"fmt"

	"celebrity_backend/internal/feature/recognition/domain/entity"
)

const (
	// MaxImageSize は画像アップロードの最大サイズ（10MB）です。
	MaxImageSize = 10 * 1024 * 1024
)

// CelebrityRecognizer は画像から有名人を認識するリポジトリインターフェースです。
// Goの慣例に従い、インターフェースは利用者（usecase）側で定義します。
type CelebrityRecognizer interface {
	// Recognize は画像バイト列をリモート認識サービスに送信し、認識結果を返します。
	// 1回のブロッキング呼び出しのみで、リトライは行いません。
	Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error)
}

// recognitionUsecase は有名人認識のビジネスロジックを提供します。
type recognitionUsecase struct {
	recognizer CelebrityRecognizer
}

// NewRecognitionUsecase はrecognitionUsecaseの新しいインスタンスを生成します。
func NewRecognitionUsecase(r CelebrityRecognizer) *recognitionUsecase {
	return &recognitionUsecase{recognizer: r}
}

// Recognize は画像データから有名人を認識します。
// 空の認識結果は「何も認識されなかった」ことを意味し、エラーではありません。
func (u *recognitionUsecase) Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	if len(imageData) == 0 {
		return nil, fmt.Errorf("image data is empty")
	}
	if len(imageData) > MaxImageSize {
		return nil, fmt.Errorf("image size exceeds maximum of %d bytes", MaxImageSize)
	}
	return u.recognizer.Recognize(ctx, imageData)
}
