package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"celebrity_backend/internal/feature/recognition/domain/entity"
	"celebrity_backend/internal/shared/imagepath"
	"celebrity_backend/internal/shared/ratelimiter"
)

// Annotator は認識結果を画像に描画して保存するインターフェイスです。
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (annotation feature).
type Annotator interface {
	// Annotate は入力画像に注釈を描画し、outputPathに保存します。
	Annotate(imagePath, outputPath string, result *entity.RecognitionResult) error
}

// RunRecorder は1回の認識処理の履歴を永続化するインターフェイスです。
type RunRecorder interface {
	RecordRun(ctx context.Context, source string, result *entity.RecognitionResult, outputPath string) error
}

// BatchUsecase はローカル画像の一覧を順番に認識・注釈するユースケースを定義します。
type BatchUsecase struct {
	recognizer  CelebrityRecognizer
	annotator   Annotator
	recorder    RunRecorder // nilの場合は履歴を記録しない
	rateLimiter ratelimiter.RateLimiterInterface
	imagesDir   string
}

// NewBatchUsecase は新しい BatchUsecase を作成します。
func NewBatchUsecase(recognizer CelebrityRecognizer, annotator Annotator, recorder RunRecorder,
	rateLimiter ratelimiter.RateLimiterInterface, imagesDir string) *BatchUsecase {
	return &BatchUsecase{
		recognizer:  recognizer,
		annotator:   annotator,
		recorder:    recorder,
		rateLimiter: rateLimiter,
		imagesDir:   imagesDir,
	}
}

// annotateOne は1枚の画像を読み込み、リモートサービスで認識し、注釈済み画像を保存します。
// 有名人が1人も認識されなかった場合、注釈処理は呼ばれず出力ファイルも作られません。
func (bu *BatchUsecase) annotateOne(ctx context.Context, fileName string) error {
	photoPath := imagepath.ResolveInput(bu.imagesDir, fileName)

	data, err := os.ReadFile(photoPath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	if bu.rateLimiter != nil {
		bu.rateLimiter.WaitIfNeeded()
	}
	result, err := bu.recognizer.Recognize(ctx, data)
	if err != nil {
		return fmt.Errorf("recognize: %w", err)
	}

	if len(result.Celebrities) == 0 {
		slog.Info("no celebrities detected", "file", photoPath)
		return nil
	}

	outputPath := imagepath.OutputPath(photoPath)
	if err := bu.annotator.Annotate(photoPath, outputPath, result); err != nil {
		return fmt.Errorf("annotate: %w", err)
	}
	slog.Info("annotated image saved", "file", fileName, "output", outputPath)

	if bu.recorder != nil {
		// 履歴の記録失敗は画像処理自体の失敗にはしない
		if err := bu.recorder.RecordRun(ctx, fileName, result, outputPath); err != nil {
			slog.Warn("failed to record run", "file", fileName, "error", err)
		}
	}
	return nil
}

// AnnotateAll は指定された全画像ファイルを順番に処理します。
// 1つのファイルでエラーが発生しても処理を止めずにログに出力し、次のファイルを続けます。
func (bu *BatchUsecase) AnnotateAll(ctx context.Context, fileNames []string) error {
	for _, name := range fileNames {
		if err := bu.annotateOne(ctx, name); err != nil {
			slog.Error("failed to process image", "file", name, "error", err)
			continue // 次のファイルへ
		}
	}
	return nil
}
