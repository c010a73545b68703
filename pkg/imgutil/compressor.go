package imgutil

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"

	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// JPEGQuality は JPEG 出力時の既定の品質です。
const JPEGQuality = 90

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に圧縮します。
// image.Decodeがサポートするフォーマットに対応しています。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return EncodeJPEG(img, quality)
}

// EncodeJPEG は画像をJPEG形式にエンコードします。透過部分は黒になります。
func EncodeJPEG(img image.Image, quality int) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodePNG は画像をPNG形式にエンコードします。
func EncodePNG(img image.Image) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode はラスター形式（PNG / JPEG）でエンコードし、MIME タイプと共に返します。
func Encode(img image.Image, format domain.OutputFormat) ([]byte, string, error) {
	switch format {
	case domain.FormatPNG, "":
		data, err := EncodePNG(img)
		return data, "image/png", err
	case domain.FormatJPEG:
		data, err := EncodeJPEG(img, JPEGQuality)
		return data, "image/jpeg", err
	}
	return nil, "", fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
}
