package imagepath_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"celebrity_backend/internal/shared/imagepath"
)

func TestResolveInput(t *testing.T) {
	got := imagepath.ResolveInput("images", "capr.jpeg")
	assert.Equal(t, filepath.Join("images", "capr.jpeg"), got)
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "jpeg extension becomes jpg",
			input: filepath.Join("images", "capr.jpeg"),
			want:  filepath.Join("images", "capr-resultado.jpg"),
		},
		{
			name:  "jpg keeps jpg",
			input: filepath.Join("images", "will.jpg"),
			want:  filepath.Join("images", "will-resultado.jpg"),
		},
		{
			name:  "png becomes jpg",
			input: "riana.png",
			want:  "riana-resultado.jpg",
		},
		{
			name:  "no extension",
			input: "photo",
			want:  "photo-resultado.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, imagepath.OutputPath(tt.input))
		})
	}
}
