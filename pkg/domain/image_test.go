package domain

import (
	"errors"
	"testing"
)

func TestParseAddress(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"正しい小文字アドレス", "0x1234567890123456789012345678901234567890", false},
		{"大文字混在も許容", "0xABCDEFabcdef0000000000000000000000000000", false},
		{"短すぎる", "0x123", true},
		{"16進数以外の文字", "0xZZZ", true},
		{"プレフィックスなし", "1234567890123456789012345678901234567890", true},
		{"長すぎる", "0x12345678901234567890123456789012345678901", true},
		{"アドレスではない", "not-an-address", true},
		{"空文字列", "", true},
		{"末尾に空白", "0x1234567890123456789012345678901234567890 ", true},
		{"大文字の接頭辞", "0X1234567890123456789012345678901234567890", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := ParseAddress(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAddress(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidAddress) {
				t.Errorf("ErrInvalidAddress を期待した: %v", err)
			}
			if !tt.wantErr && addr.String() != tt.input {
				t.Errorf("表記が保持されていない: %s", addr)
			}
		})
	}
}

func TestIsValidAddress(t *testing.T) {
	if !IsValidAddress("0xabcdefABCDEF1234567890123456789012345678") {
		t.Error("大文字小文字の混在は許容されるべき")
	}
	if IsValidAddress(" 0xabcdefABCDEF1234567890123456789012345678") {
		t.Error("前後の空白は許容されない")
	}
}

func TestAddress_Hex(t *testing.T) {
	addr := Address("0x1234567890123456789012345678901234567890")
	if got := addr.Hex(); got != "1234567890123456789012345678901234567890" {
		t.Errorf("got %s", got)
	}
}

func TestParseOutputFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    OutputFormat
		wantErr bool
	}{
		{"", FormatPNG, false},
		{"png", FormatPNG, false},
		{"jpg", FormatJPEG, false},
		{"jpeg", FormatJPEG, false},
		{"svg", FormatSVG, false},
		{"gif", "", true},
	}
	for _, tt := range tests {
		got, err := ParseOutputFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutputFormat(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseOutputFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColor_String(t *testing.T) {
	if got := HSL(96, 70, 50).String(); got != "hsl(96, 70%, 50%)" {
		t.Errorf("got %s", got)
	}
	if got := HSL(137.5, 80, 70).String(); got != "hsl(137.5, 80%, 70%)" {
		t.Errorf("got %s", got)
	}
	if got := HexColor("#123456").String(); got != "#123456" {
		t.Errorf("got %s", got)
	}
}

func TestScene_Primitives(t *testing.T) {
	t.Run("レイヤー順に全プリミティブを返す", func(t *testing.T) {
		s := Scene{Layers: []Layer{
			BackgroundLayer{},
			PrimitiveLayer{Primitives: []Primitive{Line{}, Circle{}}},
			GradientLayer{},
			PrimitiveLayer{Primitives: []Primitive{Star{}}},
			OverlayLayer{},
		}}
		got := s.Primitives()
		want := []PrimitiveKind{PrimitiveLine, PrimitiveCircle, PrimitiveStar}
		if len(got) != len(want) {
			t.Fatalf("len = %d, want %d", len(got), len(want))
		}
		for i, p := range got {
			if p.Kind() != want[i] {
				t.Errorf("index %d: got %s, want %s", i, p.Kind(), want[i])
			}
		}
	})
}
