package generator

import (
	"context"
	"errors"
	"testing"

	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAddress = domain.Address("0x1234567890abcdef1234567890abcdef12345678")

func TestNewIdentityCore(t *testing.T) {
	_, err := NewIdentityCore(nil, &mockRenderer{}, nil, nil)
	assert.Error(t, err, "composer 無しは拒否する")

	_, err = NewIdentityCore(&mockComposer{}, nil, nil, nil)
	assert.Error(t, err, "raster 無しは拒否する")

	_, err = NewIdentityCore(&mockComposer{}, &mockRenderer{}, nil, nil)
	assert.NoError(t, err, "vector と cache は省略できる")
}

func TestIdentityCore_GenerateIdentity(t *testing.T) {
	ctx := context.Background()

	t.Run("既定は waves の PNG でシードを返す", func(t *testing.T) {
		raster := &mockRenderer{data: []byte("png"), mimeType: "image/png"}
		core, err := NewIdentityCore(&mockComposer{}, raster, nil, nil)
		require.NoError(t, err)

		resp, err := core.GenerateIdentity(ctx, domain.IdentityRequest{Address: testAddress})
		require.NoError(t, err)

		assert.Equal(t, []byte("png"), resp.Data)
		assert.Equal(t, "image/png", resp.MimeType)
		assert.Equal(t, int64(305419896), resp.UsedSeed)
		require.Len(t, raster.scenes, 1)
		assert.Equal(t, 1000, raster.scenes[0].Width)
		assert.Equal(t, domain.FormatPNG, raster.formats[0])
	})

	t.Run("SVG はベクター描画に回す", func(t *testing.T) {
		raster := &mockRenderer{data: []byte("png"), mimeType: "image/png"}
		vector := &mockRenderer{data: []byte("<svg/>"), mimeType: "image/svg+xml"}
		core, _ := NewIdentityCore(&mockComposer{}, raster, vector, nil)

		resp, err := core.GenerateIdentity(ctx, domain.IdentityRequest{
			Address: testAddress, Variant: "lines", Format: domain.FormatSVG,
		})
		require.NoError(t, err)
		assert.Equal(t, "image/svg+xml", resp.MimeType)
		assert.Empty(t, raster.scenes)
		assert.Len(t, vector.scenes, 1)
	})

	t.Run("不正なアドレスは組み立て前に弾く", func(t *testing.T) {
		sc := &mockComposer{}
		core, _ := NewIdentityCore(sc, &mockRenderer{}, nil, nil)

		for _, a := range []string{"", "0x123", "0xZZZ4567890abcdef1234567890abcdef12345678"} {
			_, err := core.GenerateIdentity(ctx, domain.IdentityRequest{Address: domain.Address(a)})
			assert.ErrorIs(t, err, domain.ErrInvalidAddress, a)
		}
		assert.Zero(t, sc.calls)
	})

	t.Run("未知のバリアントは ErrUnknownVariant", func(t *testing.T) {
		core, _ := NewIdentityCore(&mockComposer{}, &mockRenderer{}, nil, nil)
		_, err := core.GenerateIdentity(ctx, domain.IdentityRequest{Address: testAddress, Variant: "spiral"})
		assert.ErrorIs(t, err, domain.ErrUnknownVariant)
	})

	t.Run("ベクター描画が無ければ SVG は ErrUnsupportedFormat", func(t *testing.T) {
		core, _ := NewIdentityCore(&mockComposer{}, &mockRenderer{}, nil, nil)
		_, err := core.GenerateIdentity(ctx, domain.IdentityRequest{Address: testAddress, Format: domain.FormatSVG})
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("描画の失敗はラップして返す", func(t *testing.T) {
		renderErr := errors.New("renderer crashed")
		core, _ := NewIdentityCore(&mockComposer{}, &mockRenderer{err: renderErr}, nil, nil)
		_, err := core.GenerateIdentity(ctx, domain.IdentityRequest{Address: testAddress})
		assert.ErrorIs(t, err, renderErr)
	})

	t.Run("組み立ての失敗もラップして返す", func(t *testing.T) {
		composeErr := errors.New("compose failed")
		core, _ := NewIdentityCore(&mockComposer{err: composeErr}, &mockRenderer{}, nil, nil)
		_, err := core.GenerateIdentity(ctx, domain.IdentityRequest{Address: testAddress})
		assert.ErrorIs(t, err, composeErr)
	})

	t.Run("キャッシュがあれば2回目は描画しない", func(t *testing.T) {
		sc := &mockComposer{}
		raster := &mockRenderer{data: []byte("png"), mimeType: "image/png"}
		cache := &mockCache{data: map[string]*domain.ImageResponse{}}
		core, _ := NewIdentityCore(sc, raster, nil, cache)

		req := domain.IdentityRequest{Address: testAddress, Payload: "42"}
		first, err := core.GenerateIdentity(ctx, req)
		require.NoError(t, err)
		second, err := core.GenerateIdentity(ctx, req)
		require.NoError(t, err)

		assert.Same(t, first, second)
		assert.Equal(t, 1, sc.calls)
		assert.Len(t, raster.scenes, 1)
	})
}
