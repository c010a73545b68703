package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/wave-identity-kit/pkg/composer"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// IdentityCore はシーンの組み立てと描画をまとめる生成器です。
// ラスター形式（PNG / JPEG）とベクター形式（SVG）で描画先を切り替えます。
type IdentityCore struct {
	composer SceneComposer
	raster   SceneRenderer
	vector   SceneRenderer
	cache    ImageCacher
}

// NewIdentityCore は依存関係を注入して IdentityCore を初期化します。
func NewIdentityCore(sc SceneComposer, raster SceneRenderer, vector SceneRenderer, cache ImageCacher) (*IdentityCore, error) {
	if sc == nil {
		return nil, fmt.Errorf("composer is required")
	}
	if raster == nil {
		return nil, fmt.Errorf("raster renderer is required")
	}
	// vector は nil を許容（SVG 出力なし）
	// cache は nil を許容（キャッシュなし動作）

	return &IdentityCore{
		composer: sc,
		raster:   raster,
		vector:   vector,
		cache:    cache,
	}, nil
}

// GenerateIdentity はアドレスとペイロードから識別画像を生成します。
// 同じ入力に対しては常に同じ画像を返します。
func (c *IdentityCore) GenerateIdentity(ctx context.Context, req domain.IdentityRequest) (*domain.ImageResponse, error) {
	addr, err := domain.ParseAddress(req.Address.String())
	if err != nil {
		return nil, err
	}
	variant, err := composer.ParseVariant(req.Variant)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, req.Variant)
	}
	format := req.Format
	if format == "" {
		format = domain.FormatPNG
	}
	renderer, err := c.rendererFor(format)
	if err != nil {
		return nil, err
	}

	key := cacheKey(variant, format, addr, req.Payload)
	if c.cache != nil {
		if cached, ok := c.cache.Get(key); ok {
			slog.DebugContext(ctx, "キャッシュ済みの画像を返します", "variant", variant, "format", format)
			return cached, nil
		}
	}

	scene, err := c.composer.Compose(variant, addr, req.Payload)
	if err != nil {
		return nil, fmt.Errorf("シーンの組み立てに失敗しました: %w", err)
	}

	resp, err := c.render(ctx, renderer, scene, format)
	if err != nil {
		return nil, fmt.Errorf("識別画像の描画に失敗しました (%s): %w", variant, err)
	}

	slog.InfoContext(ctx, "識別画像を生成しました",
		"variant", variant,
		"format", format,
		"seed", resp.UsedSeed,
		"bytes", len(resp.Data),
	)

	if c.cache != nil {
		c.cache.Add(key, resp)
	}
	return resp, nil
}
