// Package imagepath centralizes the path rules for batch image processing:
// where input images are looked up and where annotated outputs are written.
package imagepath

import (
	"path/filepath"
	"strings"
)

// outputSuffix is appended to the input file's stem to build the output name.
const outputSuffix = "-resultado"

// ResolveInput joins the images directory with a file name. The file name may
// itself contain separators, so nested inputs resolve naturally.
func ResolveInput(baseDir, fileName string) string {
	return filepath.Join(baseDir, fileName)
}

// OutputPath derives the annotated image path from an input path. The output
// lives next to the input, keeps its stem and always uses the .jpg extension,
// e.g. "images/capr.jpeg" becomes "images/capr-resultado.jpg".
func OutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	stem := strings.TrimSuffix(inputPath, ext)
	return stem + outputSuffix + ".jpg"
}
