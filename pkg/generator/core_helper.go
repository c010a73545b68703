package generator

import (
	"context"
	"fmt"

	"github.com/shouni/wave-identity-kit/pkg/domain"
)

func (c *IdentityCore) rendererFor(format domain.OutputFormat) (SceneRenderer, error) {
	switch format {
	case domain.FormatPNG, domain.FormatJPEG:
		return c.raster, nil
	case domain.FormatSVG:
		if c.vector != nil {
			return c.vector, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, format)
}

func (c *IdentityCore) render(ctx context.Context, r SceneRenderer, scene *domain.Scene, format domain.OutputFormat) (*domain.ImageResponse, error) {
	data, mimeType, err := r.Render(ctx, scene, format)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("no image data")
	}

	return &domain.ImageResponse{
		Data:     data,
		MimeType: mimeType,
		UsedSeed: seedToInt64(scene.Seed),
	}, nil
}
