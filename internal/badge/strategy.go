package badge

import (
	"errors"
	"fmt"
	"strings"
)

// shields.io endpoints for the two static badge APIs.
const (
	ShieldsBadge  = "https://img.shields.io/badge"
	ShieldsStatic = "https://img.shields.io/static/v1"
)

// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
var ErrUnknownStrategy = errors.New("unknown badge strategy")

// Fields is the normalized content of a static badge.
type Fields struct {
	Label   string
	Message string
	Color   string
	Style   StyleParams
}

// Strategy selects how badge fields are encoded into the image URL.
type Strategy int

const (
	// DashPath encodes the badge as /badge/LABEL-MESSAGE-COLOR. Short, but
	// label and message need escaping.
	DashPath Strategy = iota
	// QueryParams encodes the badge as /static/v1?label=..&message=..&color=..
	// Verbose, with all escaping left to standard query encoding.
	QueryParams
)

func (s Strategy) String() string {
	switch s {
	case DashPath:
		return "dash"
	case QueryParams:
		return "query"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps "dash" or "query" to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "dash":
		return DashPath, nil
	case "query", "params":
		return QueryParams, nil
	}
	return DashPath, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// URL builds the image URL for f using the selected strategy.
func (s Strategy) URL(f Fields) (string, error) {
	if s == QueryParams {
		return StaticParamsURL(f)
	}
	return StaticDashURL(f)
}

// dashShieldPath prepares the path for the dash-based API.
//
// The API requires MESSAGE-COLOR at the least and also accepts
// LABEL-MESSAGE-COLOR. Label and message are escaped, color is used as is.
func dashShieldPath(message, color, label string) string {
	pieces := []string{EncodeParam(message, true), color}
	if label != "" {
		pieces = append([]string{EncodeParam(label, true)}, pieces...)
	}

	return strings.Join(pieces, "-")
}

// StaticDashURL returns the image URL for a dash-based static badge.
// Sample: https://img.shields.io/badge/Foo-Bar--Baz-green
func StaticDashURL(f Fields) (string, error) {
	imgURL := ShieldsBadge + "/" + dashShieldPath(f.Message, f.Color, f.Label)

	return BuildURL(imgURL, f.Style.Params())
}

// StaticParamsURL returns the image URL for a param-based static badge.
// Sample: https://img.shields.io/static/v1?label=MichaelCurrin&message=badge-generator&color=blue&logo=github
func StaticParamsURL(f Fields) (string, error) {
	params := append(Params{
		{Key: "label", Value: f.Label},
		{Key: "message", Value: f.Message},
		{Key: "color", Value: f.Color},
	}, f.Style.Params()...)

	return BuildURL(ShieldsStatic, params)
}
