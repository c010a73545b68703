package adapters

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// AssetStore はアイコンやバッジなどの静的アセットを読み出します。
type AssetStore struct {
	reader AssetReader
}

// NewAssetStore は AssetStore を生成します。
func NewAssetStore(reader AssetReader) (*AssetStore, error) {
	if reader == nil {
		return nil, fmt.Errorf("reader is required")
	}
	return &AssetStore{reader: reader}, nil
}

// ReadBytes はアセットをそのまま読み出します。
func (s *AssetStore) ReadBytes(ctx context.Context, uri string) ([]byte, error) {
	rc, err := s.reader.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("アセットを開けませんでした (%s): %w", uri, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("アセットの読み込みに失敗しました (%s): %w", uri, err)
	}
	return data, nil
}

// LoadImage はアセットを画像として読み込み、縦横比を保って width x height に収めます。
func (s *AssetStore) LoadImage(ctx context.Context, uri string, width, height int) (image.Image, error) {
	rc, err := s.reader.Open(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("アセットを開けませんでした (%s): %w", uri, err)
	}
	defer rc.Close()

	img, err := imaging.Decode(rc)
	if err != nil {
		return nil, fmt.Errorf("アセットのデコードに失敗しました (%s): %w", uri, err)
	}
	return imaging.Fit(img, width, height, imaging.Lanczos), nil
}
