// Package entity はrecognitionフィーチャーのドメインモデルを定義します。
package entity

import "image"

// BoundingBox は画像サイズに対する比率（[0,1]）で正規化された矩形領域です。
type BoundingBox struct {
	Left   float64 // 左端（画像幅に対する比率）
	Top    float64 // 上端（画像高さに対する比率）
	Width  float64 // 幅（画像幅に対する比率）
	Height float64 // 高さ（画像高さに対する比率）
}

// PixelRect は正規化された矩形を、元画像のピクセル座標に変換します。
// 各座標は比率×画像サイズを整数に切り捨てた値になります。
func (b BoundingBox) PixelRect(imageWidth, imageHeight int) image.Rectangle {
	left := int(b.Left * float64(imageWidth))
	top := int(b.Top * float64(imageHeight))
	right := int((b.Left + b.Width) * float64(imageWidth))
	bottom := int((b.Top + b.Height) * float64(imageHeight))
	return image.Rect(left, top, right, bottom)
}

// DetectedCelebrity は画像から認識された有名人の顔を表します。
type DetectedCelebrity struct {
	Name            string      // 認識された人物名（特定できない場合は空文字）
	MatchConfidence float32     // 信頼度スコア（0 ~ 100）
	Box             BoundingBox // 顔の正規化バウンディングボックス
}

// RecognitionResult は1枚の画像に対する認識結果を表します。
// Celebritiesが空の場合は「何も認識されなかった」ことを意味します。
type RecognitionResult struct {
	Celebrities []DetectedCelebrity
}
