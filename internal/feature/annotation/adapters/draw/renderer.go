// Package draw はggライブラリを使用したマーク描画アダプターを提供します。
package draw

import (
	"fmt"
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"celebrity_backend/internal/feature/annotation/usecase"
)

const (
	// lineWidth は枠線の太さ(ピクセル)です。
	lineWidth = 3
	// labelHeight はラベル背景の高さ(ピクセル)です。枠の上端のすぐ上に描かれます。
	labelHeight = 20
	// labelPadding はラベル文字列の左右・下の余白です。
	labelPadding = 4
	// defaultFontSize はTrueTypeフォント使用時のポイントサイズです。
	defaultFontSize = 20
)

// GGRenderer はggの描画コンテキストでマークを画像に描画します。
type GGRenderer struct {
	fontPath string
	fontSize float64
}

// GGRendererがRendererを実装していることをコンパイル時に検証します。
var _ usecase.Renderer = (*GGRenderer)(nil)

// NewGGRenderer は新しい GGRenderer を作成します。
// fontPath が空の場合は組み込みのビットマップフォントを使用します。
func NewGGRenderer(fontPath string) *GGRenderer {
	return &GGRenderer{fontPath: fontPath, fontSize: defaultFontSize}
}

func (r *GGRenderer) setFont(dc *gg.Context) error {
	if r.fontPath == "" {
		dc.SetFontFace(basicfont.Face7x13)
		return nil
	}
	if err := dc.LoadFontFace(r.fontPath, r.fontSize); err != nil {
		return fmt.Errorf("load font face %q: %w", r.fontPath, err)
	}
	return nil
}

// Render はマークごとに赤い枠線と塗りつぶしラベルを描画した新しい画像を返します。
// 元の画像は変更されません。
func (r *GGRenderer) Render(img image.Image, marks []usecase.Mark) (image.Image, error) {
	dc := gg.NewContextForImage(img)
	if err := r.setFont(dc); err != nil {
		return nil, err
	}

	for _, mark := range marks {
		x := float64(mark.Rect.Min.X)
		y := float64(mark.Rect.Min.Y)

		// 枠線
		dc.SetRGB255(255, 0, 0)
		dc.SetLineWidth(lineWidth)
		dc.DrawRectangle(x, y, float64(mark.Rect.Dx()), float64(mark.Rect.Dy()))
		dc.Stroke()

		// ラベル背景(枠の上端の上。画像からはみ出す場合は内側へ寄せる)
		labelWidth, _ := dc.MeasureString(mark.Label)
		labelTop := y - labelHeight
		if labelTop < 0 {
			labelTop = 0
		}
		dc.DrawRectangle(x, labelTop, labelWidth+2*labelPadding, labelHeight)
		dc.Fill()

		// ラベル文字列
		dc.SetRGB255(255, 255, 255)
		dc.DrawString(mark.Label, x+labelPadding, labelTop+labelHeight-labelPadding)
	}

	return dc.Image(), nil
}
