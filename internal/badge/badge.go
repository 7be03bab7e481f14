// Package badge builds markdown badges backed by the shields.io static
// badge APIs.
//
// A badge is rendered as ![title](image) or [![title](image)](target). The
// image URL uses either the dash-based path API or the query-param API,
// chosen by the caller. Nothing here performs HTTP requests.
package badge

import "fmt"

// Options describes a generic badge. The zero value of each optional field
// is its default.
type Options struct {
	Label   string // optional, omitted from the badge when empty
	Message string // required
	Color   string // required, e.g. "green" or "ff69b4"

	IsLarge   bool   // use the for-the-badge style
	Target    string // link target; no link wrapper when empty
	Logo      string // simple-icons name
	LogoColor string // ignored without Logo

	OnlyQueryParams bool // use the query-param API instead of the dash path
}

// Strategy returns the URL strategy selected by the options.
func (o Options) Strategy() Strategy {
	if o.OnlyQueryParams {
		return QueryParams
	}
	return DashPath
}

// Fields returns the normalized badge fields for the options.
func (o Options) Fields() Fields {
	return Fields{
		Label:   o.Label,
		Message: o.Message,
		Color:   o.Color,
		Style:   LogoParams(o.IsLarge, o.Logo, o.LogoColor),
	}
}

// Generic renders the markdown for a generic badge.
//
// In the dash style the image path is LABEL-MESSAGE-COLOR or MESSAGE-COLOR.
// Empty message or color are not rejected; they produce a badge shields.io
// cannot render.
func Generic(opts Options) (string, error) {
	title := FormatTitle(opts.Label, opts.Message)

	imgURL, err := opts.Strategy().URL(opts.Fields())
	if err != nil {
		return "", fmt.Errorf("failed to build badge url: %w", err)
	}

	return MarkdownImageWithLink(title, imgURL, opts.Target, ""), nil
}
