package badge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeSeparators(t *testing.T) {
	tests := []struct {
		name              string
		value             string
		spaceToUnderscore bool
		want              string
	}{
		{"plain", "abc", true, "abc"},
		{"dash", "a-b", true, "a--b"},
		{"underscore", "a_b", true, "a__b"},
		{"space", "a b", true, "a_b"},
		{"space kept", "a b", false, "a b"},
		{"separators only", "-_ ", true, "--___"},
		{"mixed", "A - B_C", true, "A_--_B__C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeSeparators(tt.value, tt.spaceToUnderscore))
		})
	}
}

func TestDecodeAngleBrackets(t *testing.T) {
	assert.Equal(t, "<a%20b>", decodeAngleBrackets(encodeURIComponent("<a b>")))
	assert.Equal(t, "%3e%20", decodeAngleBrackets("%3e%20"))
	assert.Equal(t, "1 >= 0", decodeAngleBrackets("1 %3E= 0"))
}

func TestEncodeURIComponent(t *testing.T) {
	assert.Equal(t, "abc-_.!~*'()", encodeURIComponent("abc-_.!~*'()"))
	assert.Equal(t, "a%20b%2Fc%3Fd%26e%23f", encodeURIComponent("a b/c?d&e#f"))
	assert.Equal(t, "%E2%9C%93", encodeURIComponent("✓"))
	assert.Equal(t, "100%25", encodeURIComponent("100%"))
}

func TestEncodeParam(t *testing.T) {
	tests := []struct {
		name              string
		value             string
		spaceToUnderscore bool
		want              string
	}{
		{"word", "Foo", true, "Foo"},
		{"dash", "Bar-Baz", true, "Bar--Baz"},
		{"space", "Foo Bar", true, "Foo_Bar"},
		{"space encoded", "Foo Bar", false, "Foo%20Bar"},
		{"slash", "a/b", true, "a%2Fb"},
		{"angle brackets", "<3>", true, "<3>"},
		{"comparison", "1 < 2", true, "1_<_2"},
		{"unicode", "✓ ok", true, "%E2%9C%93_ok"},
		{"version", "v1.2.3-rc_1", true, "v1.2.3--rc__1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeParam(tt.value, tt.spaceToUnderscore))
		})
	}
}

func TestEncodeParamNotIdempotent(t *testing.T) {
	once := EncodeParam("a-b", true)
	assert.NotEqual(t, once, EncodeParam(once, true))
}
