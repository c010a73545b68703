package generator

import (
	"context"
	"testing"

	"github.com/shouni/wave-identity-kit/pkg/composer"
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityCore_rendererFor(t *testing.T) {
	raster := &mockRenderer{}
	vector := &mockRenderer{}
	core := &IdentityCore{raster: raster, vector: vector}

	for _, f := range []domain.OutputFormat{domain.FormatPNG, domain.FormatJPEG} {
		r, err := core.rendererFor(f)
		require.NoError(t, err)
		assert.Same(t, raster, r)
	}

	r, err := core.rendererFor(domain.FormatSVG)
	require.NoError(t, err)
	assert.Same(t, vector, r)

	_, err = core.rendererFor("gif")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestIdentityCore_render(t *testing.T) {
	ctx := context.Background()
	scene, err := composer.NewComposer().Compose(composer.VariantLines, testAddress, "")
	require.NoError(t, err)

	t.Run("シーンのシードを UsedSeed に入れる", func(t *testing.T) {
		core := &IdentityCore{}
		resp, err := core.render(ctx, &mockRenderer{data: []byte{1}, mimeType: "image/png"}, scene, domain.FormatPNG)
		require.NoError(t, err)
		assert.Equal(t, int64(scene.Seed), resp.UsedSeed)
	})

	t.Run("空の描画結果はエラー", func(t *testing.T) {
		core := &IdentityCore{}
		_, err := core.render(ctx, &mockRenderer{}, scene, domain.FormatPNG)
		assert.Error(t, err)
	})
}
