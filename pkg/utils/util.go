package utils

import "strings"

// ParseLeadingHex は先頭から続く16進数字だけを解釈します。
// 16進数字が1つもない場合は ok=false を返します。
func ParseLeadingHex(s string) (v uint64, ok bool) {
	for _, r := range s {
		d, isHex := hexDigit(r)
		if !isHex {
			break
		}
		v = v<<4 | d
		ok = true
	}
	return v, ok
}

// ParseLooseInt は "0x0000000a" や "12abc" のような緩い整数表記を解釈します。
// 先頭の空白と符号を許容し、0x 接頭辞があれば16進数、なければ先頭の10進数字を読みます。
// 桁あふれする長い入力は max で頭打ちにします。
func ParseLooseInt(s string, max int64) (int64, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	base := int64(10)
	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		base = 16
		s = s[2:]
	}

	var v int64
	ok := false
	for _, r := range s {
		d, isHex := hexDigit(r)
		if !isHex || int64(d) >= base {
			break
		}
		ok = true
		if v <= max {
			v = v*base + int64(d)
		}
	}
	if v > max {
		v = max
	}
	if neg {
		v = -v
	}
	return v, ok
}

func hexDigit(r rune) (uint64, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint64(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint64(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint64(r-'A') + 10, true
	}
	return 0, false
}
