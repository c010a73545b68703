package adapters

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// balanceOfSelector は ERC-20 balanceOf(address) の関数セレクタです。
var balanceOfSelector = []byte{0x70, 0xa0, 0x82, 0x31}

const defaultDecimals = 18

// NetworkEndpoint は1つのネットワークへの接続設定です。
// Token が空の場合はネイティブ通貨の残高を参照します。
type NetworkEndpoint struct {
	RPCURL   string
	Token    string
	Decimals int
}

// ChainReader は残高照会に必要な RPC 操作です。ethclient.Client がこれを満たします。
type ChainReader interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	Close()
}

// Dialer は RPC エンドポイントへの接続を確立します。
type Dialer func(ctx context.Context, rawURL string) (ChainReader, error)

// DialEthClient は ethclient で接続する既定の Dialer です。
func DialEthClient(ctx context.Context, rawURL string) (ChainReader, error) {
	client, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	return client, nil
}

// EthBalanceClient はチェーン RPC から読み取り専用で残高を取得します。
// リトライは行いません。
type EthBalanceClient struct {
	endpoints map[string]NetworkEndpoint
	timeout   time.Duration
	dial      Dialer
}

// NewEthBalanceClient は EthBalanceClient を生成します。
// endpoints に無いネットワークの照会は ErrUnknownNetwork になります。
func NewEthBalanceClient(endpoints map[string]NetworkEndpoint, timeout time.Duration, dial Dialer) *EthBalanceClient {
	if dial == nil {
		dial = DialEthClient
	}
	return &EthBalanceClient{endpoints: endpoints, timeout: timeout, dial: dial}
}

// Balance はアドレスの残高を小数点位置を反映した値で返します。
func (c *EthBalanceClient) Balance(ctx context.Context, network string, addr domain.Address) (*big.Float, error) {
	ep, ok := c.endpoints[network]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownNetwork, network)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	client, err := c.dial(ctx, ep.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("RPC接続に失敗しました (%s): %w", network, err)
	}
	defer client.Close()

	account := common.HexToAddress(addr.String())
	raw, err := c.rawBalance(ctx, client, ep, account)
	if err != nil {
		return nil, err
	}

	decimals := ep.Decimals
	if decimals <= 0 {
		decimals = defaultDecimals
	}
	return scaleDecimals(raw, decimals), nil
}

func (c *EthBalanceClient) rawBalance(ctx context.Context, client ChainReader, ep NetworkEndpoint, account common.Address) (*big.Int, error) {
	if ep.Token == "" {
		bal, err := client.BalanceAt(ctx, account, nil)
		if err != nil {
			return nil, fmt.Errorf("残高の取得に失敗しました: %w", err)
		}
		return bal, nil
	}

	token := common.HexToAddress(ep.Token)
	data := append(append([]byte{}, balanceOfSelector...), common.LeftPadBytes(account.Bytes(), 32)...)
	out, err := client.CallContract(ctx, ethereum.CallMsg{To: &token, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("balanceOf の呼び出しに失敗しました: %w", err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("balanceOf の応答が空です (token: %s)", ep.Token)
	}
	return new(big.Int).SetBytes(out), nil
}

func scaleDecimals(raw *big.Int, decimals int) *big.Float {
	unit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	return new(big.Float).Quo(new(big.Float).SetInt(raw), new(big.Float).SetInt(unit))
}
