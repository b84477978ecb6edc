// Package qr decodes QR symbols from uploaded images and generates the PNG
// images stored alongside code records. Each decode stage fails with its own
// domain error kind so the resolution pipeline never collapses "unreadable
// image", "no symbol" and "blank payload" into one failure.
package qr

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/makiuchi-d/gozxing"
	multiqr "github.com/makiuchi-d/gozxing/multi/qrcode"
	qrgen "github.com/skip2/go-qrcode"

	"github.com/alpha-code/activity-service/internal/domain"
)

// ImageSize is the fixed edge length of generated QR images.
const ImageSize = 300

// Decode extracts the payload string of the first QR symbol in data.
// Fails with domain.ErrInvalidImage when the bytes are not a parseable
// image, domain.ErrNoCodeFound when no symbol is detected, and
// domain.ErrEmptyPayload when the symbol decodes to a blank string.
// With several symbols present the first detection wins; detection order is
// whatever the underlying scanner returns.
func Decode(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", domain.ErrInvalidImage
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", domain.ErrInvalidImage
	}

	results, err := multiqr.NewQRCodeMultiReader().DecodeMultiple(bmp, nil)
	if err != nil || len(results) == 0 {
		return "", domain.ErrNoCodeFound
	}

	payload := results[0].GetText()
	if strings.TrimSpace(payload) == "" {
		return "", domain.ErrEmptyPayload
	}

	return payload, nil
}

// Generate renders text as a 300x300 QR PNG with medium error correction.
// The size and EC level are deliberately not configurable.
func Generate(text string) ([]byte, error) {
	png, err := qrgen.Encode(text, qrgen.Medium, ImageSize)
	if err != nil {
		return nil, fmt.Errorf("encode qr image: %w", err)
	}
	return png, nil
}
