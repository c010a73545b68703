// Package seed はアドレスやペイロードから決定的な整数シードを取り出します。
package seed

import (
	"github.com/shouni/wave-identity-kit/pkg/domain"
	"github.com/shouni/wave-identity-kit/pkg/utils"
)

const (
	sliceStart = 2
	sliceEnd   = 10
)

// DefaultPayloadSeed はペイロードが無い、または数値として読めない場合のシードです。
const DefaultPayloadSeed uint64 = 0

// FromAddress は 0x を除いた先頭8桁（4バイト）を16進数として解釈します。
// アドレスは上流で検証済みであることを前提とします。
func FromAddress(addr domain.Address) uint64 {
	v, _ := utils.ParseLeadingHex(window(string(addr)))
	return v
}

// FromPayload はアドレスと同じ切り出し規則をペイロードに適用します。
func FromPayload(p domain.Payload) uint64 {
	if !p.Present() {
		return DefaultPayloadSeed
	}
	v, ok := utils.ParseLeadingHex(window(string(p)))
	if !ok {
		return DefaultPayloadSeed
	}
	return v
}

func window(s string) string {
	if len(s) <= sliceStart {
		return ""
	}
	end := sliceEnd
	if len(s) < end {
		end = len(s)
	}
	return s[sliceStart:end]
}
