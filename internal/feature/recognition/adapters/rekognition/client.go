// Package rekognition はAmazon Rekognitionを使用した有名人認識クライアントを提供します。
package rekognition

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsrekognition "github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"

	"celebrity_backend/internal/feature/recognition/domain/entity"
	"celebrity_backend/internal/feature/recognition/usecase"
)

// RekognitionRecognizer はAmazon RekognitionのRecognizeCelebrities APIを使用して有名人を認識します。
type RekognitionRecognizer struct {
	client *awsrekognition.Client
}

// RekognitionRecognizerがCelebrityRecognizerを実装していることをコンパイル時に検証します。
var _ usecase.CelebrityRecognizer = (*RekognitionRecognizer)(nil)

// NewRekognitionRecognizer はAWSの標準資格情報チェーンを使用して新しいインスタンスを生成します。
func NewRekognitionRecognizer(ctx context.Context, cfg Config) (*RekognitionRecognizer, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &RekognitionRecognizer{client: awsrekognition.NewFromConfig(awsCfg)}, nil
}

// Recognize は画像バイト列から有名人を認識します。
// 1人も認識されなかった場合は空のリストを返します(エラーではありません)。
func (r *RekognitionRecognizer) Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	out, err := r.client.RecognizeCelebrities(ctx, &awsrekognition.RecognizeCelebritiesInput{
		Image: &types.Image{Bytes: imageData},
	})
	if err != nil {
		return nil, fmt.Errorf("rekognition API request failed: %w", err)
	}

	celebrities := make([]entity.DetectedCelebrity, 0, len(out.CelebrityFaces))
	for _, face := range out.CelebrityFaces {
		celebrity := entity.DetectedCelebrity{
			Name:            aws.ToString(face.Name),
			MatchConfidence: aws.ToFloat32(face.MatchConfidence),
		}
		if face.Face != nil && face.Face.BoundingBox != nil {
			box := face.Face.BoundingBox
			celebrity.Box = entity.BoundingBox{
				Left:   float64(aws.ToFloat32(box.Left)),
				Top:    float64(aws.ToFloat32(box.Top)),
				Width:  float64(aws.ToFloat32(box.Width)),
				Height: float64(aws.ToFloat32(box.Height)),
			}
		}
		celebrities = append(celebrities, celebrity)
	}

	return &entity.RecognitionResult{Celebrities: celebrities}, nil
}
