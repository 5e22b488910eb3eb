// Package usecase は認識結果を画像に描画して保存するユースケースを提供します。
package usecase

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"

	// PNG入力のデコードに必要
	_ "image/png"

	"celebrity_backend/internal/feature/recognition/domain/entity"
	recognitionusecase "celebrity_backend/internal/feature/recognition/usecase"
)

// DefaultThreshold は描画対象とする認識信頼度の既定のしきい値です。
// 信頼度がこの値を厳密に上回る有名人のみ描画されます。
const DefaultThreshold float32 = 90

// unknownLabel は名前のない検出結果に使用するフォールバックラベルです。
const unknownLabel = "Unknown"

// jpegQuality は注釈済み画像を書き出す際のJPEG品質です。
const jpegQuality = 90

// Mark は描画すべき1つの矩形とラベルを表します。
type Mark struct {
	Rect  image.Rectangle
	Label string
}

// Renderer はマークの一覧を画像に描画するインターフェイスです。
type Renderer interface {
	Render(img image.Image, marks []Mark) (image.Image, error)
}

// AnnotateUsecase は認識結果のフィルタリングと描画・保存を行います。
type AnnotateUsecase struct {
	renderer  Renderer
	threshold float32
}

// AnnotateUsecaseがバッチ処理のAnnotatorを実装していることをコンパイル時に検証します。
var _ recognitionusecase.Annotator = (*AnnotateUsecase)(nil)

// NewAnnotateUsecase は新しい AnnotateUsecase を作成します。
// threshold が0以下の場合は DefaultThreshold が使用されます。
func NewAnnotateUsecase(renderer Renderer, threshold float32) *AnnotateUsecase {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &AnnotateUsecase{renderer: renderer, threshold: threshold}
}

// buildMarks は認識結果をピクセル座標のマーク一覧へ変換します。
// 信頼度がしきい値以下の結果は除外されます。
func (au *AnnotateUsecase) buildMarks(result *entity.RecognitionResult, width, height int) []Mark {
	marks := make([]Mark, 0, len(result.Celebrities))
	for _, c := range result.Celebrities {
		if c.MatchConfidence <= au.threshold {
			continue
		}
		label := c.Name
		if label == "" {
			label = unknownLabel
		}
		marks = append(marks, Mark{
			Rect:  c.Box.PixelRect(width, height),
			Label: label,
		})
	}
	return marks
}

// AnnotateBytes は画像バイト列に認識結果を描画し、JPEGバイト列として返します。
func (au *AnnotateUsecase) AnnotateBytes(imageData []byte, result *entity.RecognitionResult) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	marks := au.buildMarks(result, bounds.Dx(), bounds.Dy())

	annotated, err := au.renderer.Render(img, marks)
	if err != nil {
		return nil, fmt.Errorf("render marks: %w", err)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, annotated, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// Annotate は入力画像に認識結果を描画し、outputPathへ保存します。
// 既存の出力ファイルは上書きされます。
func (au *AnnotateUsecase) Annotate(imagePath, outputPath string, result *entity.RecognitionResult) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	annotated, err := au.AnnotateBytes(data, result)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, annotated, 0o644); err != nil {
		return fmt.Errorf("write annotated image: %w", err)
	}
	return nil
}
