package photo

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
)

// ErrNotJPEG reports a stream that does not begin with the JPEG
// start-of-image marker.
var ErrNotJPEG = errors.New("photo: not a JPEG stream")

// EncodeJPEG encodes img at the given quality (1-100).
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

// InsertAPP1 splices a marker segment into a JPEG stream immediately
// after the two-byte start-of-image marker, the position where readers
// expect EXIF metadata. Neither input is modified.
func InsertAPP1(jpg, app1 []byte) ([]byte, error) {
	if len(jpg) < 2 || jpg[0] != 0xFF || jpg[1] != 0xD8 {
		return nil, ErrNotJPEG
	}
	out := make([]byte, 0, len(jpg)+len(app1))
	out = append(out, jpg[:2]...)
	out = append(out, app1...)
	return append(out, jpg[2:]...), nil
}
