package badge

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ErrInvalidURL is returned when a base URL is not absolute.
var ErrInvalidURL = errors.New("invalid url")

// Param is a single query parameter.
type Param struct {
	Key   string
	Value string
}

// Params is an ordered list of query parameters. Order is kept on output.
type Params []Param

// BuildURL serializes a URL from query params.
//
// The URL must have a scheme or it is considered invalid. Params with empty
// values are dropped to keep the result short. Query encoding escapes more
// than shields.io needs, so the finished URL is decoded again for use in
// badges.
func BuildURL(rawURL string, params Params) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidURL, rawURL, err)
	}
	if !u.IsAbs() {
		return "", fmt.Errorf("%w: %q has no scheme", ErrInvalidURL, rawURL)
	}
	if (u.Scheme == "http" || u.Scheme == "https") && u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}
	if u.Host != "" && u.Opaque == "" && u.Path == "" {
		u.Path = "/"
	}
	if u.RawPath != "" {
		u.RawPath = escapePath(u.RawPath)
	}

	var query strings.Builder
	query.WriteString(u.RawQuery)
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		if query.Len() > 0 {
			query.WriteByte('&')
		}
		query.WriteString(url.QueryEscape(p.Key))
		query.WriteByte('=')
		query.WriteString(url.QueryEscape(p.Value))
	}
	u.RawQuery = query.String()

	return decodeURI(u.String()), nil
}

// escapePath percent-encodes only the bytes that would make a raw path
// invalid, so existing escapes such as %2F survive serialization.
func escapePath(raw string) string {
	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if isComponentSafe(c) || strings.IndexByte("$&+,/:;=@[]%", c) >= 0 {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

// uriReserved holds the characters decodeURI leaves percent-encoded.
const uriReserved = ";/?:@&=+$,#"

// decodeURI reverses percent-encoding across a whole URL, except for escapes
// of reserved characters. Escapes that do not form valid UTF-8 stay encoded.
func decodeURI(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}

	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c, ok := unhexAt(s, i)
		if !ok {
			sb.WriteByte(s[i])
			i++
			continue
		}

		if c < utf8.RuneSelf {
			if strings.IndexByte(uriReserved, c) >= 0 {
				sb.WriteString(s[i : i+3])
			} else {
				sb.WriteByte(c)
			}
			i += 3
			continue
		}

		buf := []byte{c}
		j := i + 3
		for len(buf) < utf8.UTFMax && !utf8.FullRune(buf) {
			next, ok := unhexAt(s, j)
			if !ok {
				break
			}
			buf = append(buf, next)
			j += 3
		}
		if !utf8.Valid(buf) {
			sb.WriteString(s[i : i+3])
			i += 3
			continue
		}
		sb.Write(buf)
		i = j
	}
	return sb.String()
}

// unhexAt decodes the escape "%XX" starting at s[i].
func unhexAt(s string, i int) (byte, bool) {
	if i+2 >= len(s) || s[i] != '%' {
		return 0, false
	}
	hi, ok1 := unhex(s[i+1])
	lo, ok2 := unhex(s[i+2])
	if !ok1 || !ok2 {
		return 0, false
	}
	return hi<<4 | lo, true
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
