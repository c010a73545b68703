package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidAddress はアドレスが 0x + 40桁の16進数ではないことを示します。
	ErrInvalidAddress = errors.New("valid address is required")
	// ErrUnknownVariant は存在しないバリアントが指定されたことを示します。
	ErrUnknownVariant = errors.New("unknown variant")
	// ErrUnknownNetwork は列挙外のネットワーク名が指定されたことを示します。
	ErrUnknownNetwork = errors.New("unknown network")
	// ErrUnsupportedFormat は出力フォーマットがサポート外であることを示します。
	ErrUnsupportedFormat = errors.New("unsupported format")
)

var validate = validator.New()

// Address は検証済みの 20 バイトのアカウントアドレス（0x 付き 40 桁の16進文字列）です。
type Address string

// IsValidAddress は文字列がアドレスの字句形式に一致するかを判定します。
// validator/v10 組み込みの eth_addr（^0x[0-9a-fA-F]{40}$、チェックサムは見ない）で、
// HTTP のバインディングも同じタグを使います。
func IsValidAddress(s string) bool {
	return validate.Var(s, "eth_addr") == nil
}

// ParseAddress は文字列を検証して Address を返します。
// 大文字小文字は区別せず、そのままの表記を保持します。
func ParseAddress(s string) (Address, error) {
	if !IsValidAddress(s) {
		return "", ErrInvalidAddress
	}
	return Address(s), nil
}

// Hex は 0x を除いた16進部分を返します。
func (a Address) Hex() string {
	return strings.TrimPrefix(string(a), "0x")
}

func (a Address) String() string {
	return string(a)
}

// Payload は任意のテキストです。空文字列は「指定なし」として扱います。
type Payload string

// Present はペイロードが指定されているかを返します。
func (p Payload) Present() bool {
	return p != ""
}
