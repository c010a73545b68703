package generator

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

const (
	cacheKeyIdentity = "identity:"

	// DefaultCacheTTL は生成結果キャッシュの既定の有効期限です。
	DefaultCacheTTL = 24 * time.Hour
)

// NewImageCache は生成結果のキャッシュを作ります。size が 0 以下の場合は nil（キャッシュ無し）です。
func NewImageCache(size int, ttl time.Duration) ImageCacher {
	if size <= 0 {
		return nil
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return expirable.NewLRU[string, *domain.ImageResponse](size, nil, ttl)
}
