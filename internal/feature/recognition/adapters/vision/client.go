// Package vision はGoogle Cloud Vision APIを使用した顔検出ベースの認識クライアントを提供します。
// 顔検出は名前を返さないため、検出された顔はすべて無名の有名人候補として扱われます。
package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"

	// 画像サイズの取得に必要なデコーダーを登録
	_ "image/jpeg"
	_ "image/png"

	gvision "cloud.google.com/go/vision/v2/apiv1"
	visionpb "cloud.google.com/go/vision/v2/apiv1/visionpb"

	"celebrity_backend/internal/feature/recognition/domain/entity"
	"celebrity_backend/internal/feature/recognition/usecase"
)

// VisionFaceRecognizer はGoogle Cloud Vision APIの顔検出を認識バックエンドとして使用します。
type VisionFaceRecognizer struct {
	client *gvision.ImageAnnotatorClient
}

// VisionFaceRecognizerがCelebrityRecognizerを実装していることをコンパイル時に検証します。
var _ usecase.CelebrityRecognizer = (*VisionFaceRecognizer)(nil)

// NewVisionFaceRecognizer はADCを使用してVisionFaceRecognizerの新しいインスタンスを生成します。
func NewVisionFaceRecognizer(ctx context.Context) (*VisionFaceRecognizer, error) {
	client, err := gvision.NewImageAnnotatorClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create vision client: %w", err)
	}
	return &VisionFaceRecognizer{client: client}, nil
}

// Close はVision APIクライアントを解放します。
func (v *VisionFaceRecognizer) Close() error {
	return v.client.Close()
}

// Recognize は画像バイト列から顔を検出し、相対座標のバウンディングボックスに変換します。
func (v *VisionFaceRecognizer) Recognize(ctx context.Context, imageData []byte) (*entity.RecognitionResult, error) {
	// Vision APIはピクセル座標を返すため、正規化には画像サイズが必要
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image dimensions: %w", err)
	}

	req := &visionpb.BatchAnnotateImagesRequest{
		Requests: []*visionpb.AnnotateImageRequest{
			{
				Image: &visionpb.Image{Content: imageData},
				Features: []*visionpb.Feature{
					{Type: visionpb.Feature_FACE_DETECTION},
				},
			},
		},
	}

	resp, err := v.client.BatchAnnotateImages(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("vision API request failed: %w", err)
	}

	if len(resp.Responses) == 0 {
		return &entity.RecognitionResult{}, nil
	}
	if resp.Responses[0].Error != nil {
		return nil, fmt.Errorf("vision API error: %s", resp.Responses[0].Error.Message)
	}

	faces := resp.Responses[0].FaceAnnotations
	celebrities := make([]entity.DetectedCelebrity, 0, len(faces))
	for _, face := range faces {
		box, ok := relativeBounds(face.BoundingPoly, cfg.Width, cfg.Height)
		if !ok {
			continue
		}
		celebrities = append(celebrities, entity.DetectedCelebrity{
			// 顔検出は人物名を持たないため空のまま(描画側でフォールバック)
			Name:            "",
			MatchConfidence: face.DetectionConfidence * 100,
			Box:             box,
		})
	}

	return &entity.RecognitionResult{Celebrities: celebrities}, nil
}

// relativeBounds はピクセル座標のポリゴンを画像サイズに対する相対座標の矩形へ変換します。
func relativeBounds(poly *visionpb.BoundingPoly, width, height int) (entity.BoundingBox, bool) {
	if poly == nil || len(poly.Vertices) == 0 || width <= 0 || height <= 0 {
		return entity.BoundingBox{}, false
	}

	minX, minY := poly.Vertices[0].X, poly.Vertices[0].Y
	maxX, maxY := minX, minY
	for _, v := range poly.Vertices[1:] {
		if v.X < minX {
			minX = v.X
		}
		if v.X > maxX {
			maxX = v.X
		}
		if v.Y < minY {
			minY = v.Y
		}
		if v.Y > maxY {
			maxY = v.Y
		}
	}

	return entity.BoundingBox{
		Left:   float64(minX) / float64(width),
		Top:    float64(minY) / float64(height),
		Width:  float64(maxX-minX) / float64(width),
		Height: float64(maxY-minY) / float64(height),
	}, true
}
