package badge

// LargeStyle is the shields.io style used for enlarged badges.
const LargeStyle = "for-the-badge"

// StyleParams holds the optional shields.io styling query parameters.
// An empty field is not sent.
type StyleParams struct {
	Style     string
	Logo      string
	LogoColor string
}

// LogoParams builds the params to style a badge: size (large or standard)
// and an optional logo. A logo color is only kept when a logo is set.
func LogoParams(isLarge bool, logo, logoColor string) StyleParams {
	var params StyleParams

	if isLarge {
		params.Style = LargeStyle
	}

	if logo != "" {
		params.Logo = logo

		if logoColor != "" {
			params.LogoColor = logoColor
		}
	}

	return params
}

// Params returns the style as ordered query params.
func (s StyleParams) Params() Params {
	return Params{
		{Key: "style", Value: s.Style},
		{Key: "logo", Value: s.Logo},
		{Key: "logoColor", Value: s.LogoColor},
	}
}
