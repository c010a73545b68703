// Package badge はアドレスの残高を4段階のティアに分類し、ティアごとの静的アセットを返します。
package badge

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"

	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// Tier は残高による4段階の区分です。
type Tier string

const (
	TierBronze   Tier = "bronze"
	TierSilver   Tier = "silver"
	TierGold     Tier = "gold"
	TierPlatinum Tier = "platinum"
)

// Network は残高照会先のネットワーク名です。
type Network string

const (
	NetworkEthereum Network = "ethereum"
	NetworkBase     Network = "base"
	NetworkOptimism Network = "optimism"
	NetworkArbitrum Network = "arbitrum"
	NetworkPolygon  Network = "polygon"

	DefaultNetwork = NetworkEthereum
)

// Networks は受け付けるネットワークの一覧です。
func Networks() []Network {
	return []Network{NetworkEthereum, NetworkBase, NetworkOptimism, NetworkArbitrum, NetworkPolygon}
}

// ParseNetwork は文字列を Network に変換します。空文字列は DefaultNetwork です。
func ParseNetwork(s string) (Network, error) {
	if s == "" {
		return DefaultNetwork, nil
	}
	for _, n := range Networks() {
		if string(n) == s {
			return n, nil
		}
	}
	return "", fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, s)
}

var (
	platinumThreshold = big.NewFloat(1000)
	goldThreshold     = big.NewFloat(100)
)

// TierFor は残高をティアに分類します。nil と負値は 0 と同じ扱いです。
func TierFor(balance *big.Float) Tier {
	switch {
	case balance == nil || balance.Sign() <= 0:
		return TierBronze
	case balance.Cmp(platinumThreshold) >= 0:
		return TierPlatinum
	case balance.Cmp(goldThreshold) >= 0:
		return TierGold
	default:
		return TierSilver
	}
}

// BalanceQuerier は外部チェーンから読み取り専用で残高を取得します。
type BalanceQuerier interface {
	Balance(ctx context.Context, network string, addr domain.Address) (*big.Float, error)
}

// AssetReader はティアのアセットを読み出します。
type AssetReader interface {
	ReadBytes(ctx context.Context, uri string) ([]byte, error)
}

// BalanceResult は残高照会の結果です。失敗も値として保持します。
type BalanceResult struct {
	Value *big.Float
	Err   error
}

// OrZero は失敗した照会を残高 0 として扱います。
func (r BalanceResult) OrZero() *big.Float {
	if r.Err != nil || r.Value == nil {
		return new(big.Float)
	}
	return r.Value
}

// Resolver はアドレスからティアとバッジ画像を解決します。
type Resolver struct {
	querier  BalanceQuerier
	assets   AssetReader
	assetDir string
}

// NewResolver は Resolver を生成します。
func NewResolver(querier BalanceQuerier, assets AssetReader, assetDir string) (*Resolver, error) {
	if querier == nil {
		return nil, fmt.Errorf("querier is required")
	}
	if assets == nil {
		return nil, fmt.Errorf("assets is required")
	}
	return &Resolver{querier: querier, assets: assets, assetDir: assetDir}, nil
}

// Query は残高を1回だけ照会し、結果を BalanceResult に包んで返します。
func (r *Resolver) Query(ctx context.Context, network Network, addr domain.Address) BalanceResult {
	v, err := r.querier.Balance(ctx, string(network), addr)
	return BalanceResult{Value: v, Err: err}
}

// Resolve はティアを返します。照会の失敗はエラーにせず最下位ティアとします。
func (r *Resolver) Resolve(ctx context.Context, network Network, addr domain.Address) Tier {
	res := r.Query(ctx, network, addr)
	if res.Err != nil {
		slog.WarnContext(ctx, "残高の照会に失敗したため最下位ティアとして扱います",
			"network", network,
			"address", addr,
			"error", res.Err,
		)
	}
	return TierFor(res.OrZero())
}

// AssetURI はティアに対応するアセットの参照先です。
// gs:// や s3:// のスキームを壊さないよう、パスは正規化せずに連結します。
func (r *Resolver) AssetURI(t Tier) string {
	name := string(t) + ".png"
	switch {
	case r.assetDir == "":
		return name
	case strings.HasSuffix(r.assetDir, "/"):
		return r.assetDir + name
	}
	return r.assetDir + "/" + name
}

// Badge はティアを解決し、対応する静的画像を返します。
// アセットの読み込み失敗はエラーです。
func (r *Resolver) Badge(ctx context.Context, network Network, addr domain.Address) (*domain.ImageResponse, Tier, error) {
	tier := r.Resolve(ctx, network, addr)

	data, err := r.assets.ReadBytes(ctx, r.AssetURI(tier))
	if err != nil {
		return nil, tier, fmt.Errorf("バッジ画像の読み込みに失敗しました (%s): %w", tier, err)
	}

	slog.InfoContext(ctx, "バッジを解決しました", "network", network, "tier", tier)
	return &domain.ImageResponse{
		Data:     data,
		MimeType: http.DetectContentType(data),
	}, tier, nil
}
