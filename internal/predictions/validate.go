package predictions

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/innovyom/breedscan/pkg/formatting"
)

// validate is the input guard. Checks run cheapest first: declared content
// type, byte length against the ceiling, then structural verification.
// DecodeConfig reads only the image header, which catches non-image payloads
// disguised with an image content type without decoding pixel data.
func (s *service) validate(upload Upload) error {
	primary, _, _ := strings.Cut(upload.ContentType, "/")
	if primary != "image" {
		return ErrContentType
	}

	if int64(len(upload.Data)) > s.maxUploadSize {
		return fmt.Errorf("%w (max %s)", ErrTooLarge, formatting.FormatBytes(s.maxUploadSize))
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(upload.Data)); err != nil {
		return ErrCorruptImage
	}

	return nil
}
