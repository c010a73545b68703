package generator

import (
	"strconv"
	"strings"

	"github.com/shouni/wave-identity-kit/pkg/composer"
	"github.com/shouni/wave-identity-kit/pkg/domain"
)

// seedToInt64 はシーンのシードをレスポンス用の int64 に変換するのだ。
// アドレス由来のシードは 32bit に収まるので桁あふれしないのだ。
func seedToInt64(s uint64) int64 {
	return int64(s)
}

// cacheKey は出力を一意に決める入力だけからキーを作るのだ。
// 16進パレットはアドレスの表記をそのまま使うので、大文字小文字はそろえないのだ。
func cacheKey(variant composer.Variant, format domain.OutputFormat, addr domain.Address, payload domain.Payload) string {
	var sb strings.Builder
	sb.WriteString(cacheKeyIdentity)
	sb.WriteString(string(variant))
	sb.WriteByte('|')
	sb.WriteString(string(format))
	sb.WriteByte('|')
	sb.WriteString(addr.String())
	sb.WriteByte('|')
	sb.WriteString(strconv.Quote(string(payload)))
	return sb.String()
}
