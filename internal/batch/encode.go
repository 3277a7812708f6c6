package batch

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Formats lists the supported output image formats.
var Formats = []string{"webp", "tga", "png"}

// CheckFormat validates an output format name.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if strings.EqualFold(f, format) {
			return nil
		}
	}
	return fmt.Errorf("batch: unknown output format %q (have %s)", format, strings.Join(Formats, ", "))
}

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	var err error
	switch strings.ToLower(format) {
	case "webp":
		err = nativewebp.Encode(w, img, nil)
	case "tga":
		err = tga.Encode(w, img)
	case "png":
		err = png.Encode(w, img)
	default:
		return CheckFormat(format)
	}
	if err != nil {
		return fmt.Errorf("%s encode: %w", strings.ToUpper(format), err)
	}
	return nil
}
