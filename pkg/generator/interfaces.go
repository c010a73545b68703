package generator

import (
	"context"

	"github.com/shouni/wave-identity-kit/pkg/composer"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// IdentityGenerator はビジネスロジック層が利用する統合窓口です。
type IdentityGenerator interface {
	GenerateIdentity(ctx context.Context, req domain.IdentityRequest) (*domain.ImageResponse, error)
}

// SceneComposer は、バリアントとアドレスから描画前のシーンを組み立てるインターフェースです。
type SceneComposer interface {
	Compose(variant composer.Variant, addr domain.Address, payload domain.Payload) (*domain.Scene, error)
}

// SceneRenderer は、シーンを指定の形式の画像バイト列にするインターフェースです。
type SceneRenderer interface {
	// Render は描画結果と MIME タイプを返します。
	Render(ctx context.Context, scene *domain.Scene, format domain.OutputFormat) ([]byte, string, error)
}

// ImageCacher は、生成済みの画像をキャッシュするためのインターフェースです。
// expirable.LRU[string, *domain.ImageResponse] がこれを満たします。
type ImageCacher interface {
	// Get は、指定されたキーに紐づく画像を取得します。
	Get(key string) (*domain.ImageResponse, bool)
	// Add は、指定されたキーで画像を保存します。
	Add(key string, value *domain.ImageResponse) bool
}
