package qrcode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	qr "github.com/skip2/go-qrcode"
)

// DefaultSize is the default image edge in pixels.
const DefaultSize = 256

var (
	ErrEmptyContent = errors.New("qrcode: content is empty")
	ErrInvalidSize  = errors.New("qrcode: size must be between 64 and 2048")
	ErrGenerate     = errors.New("qrcode: failed to generate image")
)

// Generate returns a PNG QR code for content with medium error correction.
// size <= 0 uses DefaultSize.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	if size < 64 || size > 2048 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	png, err := qr.Encode(content, qr.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// GenerateBase64Image returns the PNG as a data URI for an <img> src.
func GenerateBase64Image(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
