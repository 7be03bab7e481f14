package badge

import "strings"

// separatorReplacer doubles dashes and underscores in a single pass so the
// two substitutions never see each other's output.
var separatorReplacer = strings.NewReplacer("-", "--", "_", "__")

// encodeSeparators escapes dashes and underscores the way the shields.io dash
// API expects. Spaces become underscores afterwards so they are not escaped
// a second time.
func encodeSeparators(value string, spaceToUnderscore bool) string {
	value = separatorReplacer.Replace(value)

	if spaceToUnderscore {
		value = strings.ReplaceAll(value, " ", "_")
	}

	return value
}

// decodeAngleBrackets turns URL-encoded '<' and '>' back into characters.
func decodeAngleBrackets(value string) string {
	value = strings.ReplaceAll(value, "%3E", ">")
	return strings.ReplaceAll(value, "%3C", "<")
}

const upperhex = "0123456789ABCDEF"

// encodeURIComponent percent-encodes every byte outside the ECMAScript
// unreserved set A-Z a-z 0-9 - _ . ! ~ * ' ( ).
func encodeURIComponent(value string) string {
	var sb strings.Builder
	sb.Grow(len(value))
	for i := 0; i < len(value); i++ {
		c := value[i]
		if isComponentSafe(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

func isComponentSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) >= 0
}

// EncodeParam prepares a value for one segment of the dash-based shields.io
// path.
//
// Separators are escaped first, then the value is percent-encoded and the
// angle brackets shields.io accepts literally are restored. The result is not
// safe to encode again.
//
// shields.io renders mixed dash/space or underscore/space sequences oddly even
// when escaped correctly: 'A - B - C' becomes 'A_--_B_--_C' and renders as
// 'A - B_- C'. Prefer 'A-B-C'.
func EncodeParam(value string, spaceToUnderscore bool) string {
	value = encodeSeparators(value, spaceToUnderscore)

	return decodeAngleBrackets(encodeURIComponent(value))
}
