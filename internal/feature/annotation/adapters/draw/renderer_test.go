package draw_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"celebrity_backend/internal/feature/annotation/adapters/draw"
	"celebrity_backend/internal/feature/annotation/usecase"
)

// whiteImage は白で塗りつぶした画像を生成するヘルパー関数です。
func whiteImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	return img
}

// isRed は描画後のピクセルが赤系かどうかを判定します。
func isRed(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xc000 && g < 0x4000 && b < 0x4000
}

// isWhite は描画後のピクセルが白のままかどうかを判定します。
func isWhite(img image.Image, x, y int) bool {
	r, g, b, _ := img.At(x, y).RGBA()
	return r > 0xf000 && g > 0xf000 && b > 0xf000
}

func TestGGRenderer_Render_DrawsOutline(t *testing.T) {
	renderer := draw.NewGGRenderer("")
	marks := []usecase.Mark{
		{Rect: image.Rect(30, 40, 70, 90), Label: "Will Smith"},
	}

	out, err := renderer.Render(whiteImage(100, 100), marks)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 100, 100), out.Bounds())

	// 枠の左辺と下辺の上に赤いピクセルがある
	assert.True(t, isRed(out, 30, 65), "left edge should be stroked red")
	assert.True(t, isRed(out, 50, 90), "bottom edge should be stroked red")

	// 枠の外側の隅は元の白のまま
	assert.True(t, isWhite(out, 99, 99), "far corner should stay untouched")
	// 枠の内側も塗りつぶされない
	assert.True(t, isWhite(out, 50, 70), "box interior should stay untouched")
}

func TestGGRenderer_Render_DrawsLabelBackground(t *testing.T) {
	renderer := draw.NewGGRenderer("")
	marks := []usecase.Mark{
		{Rect: image.Rect(30, 40, 70, 90), Label: "Will Smith"},
	}

	out, err := renderer.Render(whiteImage(100, 100), marks)
	require.NoError(t, err)

	// ラベル背景は枠の上端の上20px分を赤で塗りつぶす
	assert.True(t, isRed(out, 35, 30), "label background should be filled above the box")
	assert.False(t, isWhite(out, 35, 35), "label area should not stay white")
}

func TestGGRenderer_Render_LabelClampedAtTopEdge(t *testing.T) {
	renderer := draw.NewGGRenderer("")
	// 枠が画像の上端に接しているため、ラベルは内側に寄せられる
	marks := []usecase.Mark{
		{Rect: image.Rect(10, 0, 60, 50), Label: "Top"},
	}

	out, err := renderer.Render(whiteImage(100, 100), marks)
	require.NoError(t, err)
	assert.True(t, isRed(out, 12, 5), "label background should be drawn inside the image")
}

func TestGGRenderer_Render_NoMarksLeavesImageUnchanged(t *testing.T) {
	renderer := draw.NewGGRenderer("")

	out, err := renderer.Render(whiteImage(50, 50), nil)
	require.NoError(t, err)
	assert.True(t, isWhite(out, 25, 25))
}

func TestGGRenderer_Render_MissingFontFile(t *testing.T) {
	renderer := draw.NewGGRenderer("/nonexistent/font.ttf")

	_, err := renderer.Render(whiteImage(10, 10), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load font face")
}
