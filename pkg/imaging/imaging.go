// Package imaging validates uploaded profile photos and prepares raster
// images for embedding into generated documents.
package imaging

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"net/http"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// allowedPhotoTypes is the sniffed-MIME allowlist for profile photos.
var allowedPhotoTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ValidatePhoto sniffs the real content type (never trusting the client's
// filename or header) and enforces the size limit. Returns the detected MIME
// type and the canonical file extension.
func ValidatePhoto(data []byte, maxBytes int64) (mime, ext string, err error) {
	if len(data) == 0 {
		return "", "", fmt.Errorf("photo is empty")
	}
	if int64(len(data)) > maxBytes {
		return "", "", fmt.Errorf("photo exceeds the %d byte limit", maxBytes)
	}

	mime = http.DetectContentType(data)
	ext, ok := allowedPhotoTypes[mime]
	if !ok {
		return "", "", fmt.Errorf("unsupported photo type %s", mime)
	}
	return mime, ext, nil
}

// DecodeAndScale decodes a raster image and scales it down so that neither
// dimension exceeds maxDim pixels, re-encoding as JPEG. Images already small
// enough are only re-encoded. Returns the JPEG bytes plus final dimensions.
func DecodeAndScale(data []byte, maxDim int) ([]byte, int, int, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, 0, 0, fmt.Errorf("image has no pixels")
	}

	if w > maxDim || h > maxDim {
		scale := float64(maxDim) / float64(w)
		if h > w {
			scale = float64(maxDim) / float64(h)
		}
		dw := int(float64(w) * scale)
		dh := int(float64(h) * scale)
		if dw < 1 {
			dw = 1
		}
		if dh < 1 {
			dh = 1
		}
		dst := image.NewRGBA(image.Rect(0, 0, dw, dh))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
		w, h = dw, dh
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, src, &jpeg.Options{Quality: 85}); err != nil {
		return nil, 0, 0, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), w, h, nil
}
