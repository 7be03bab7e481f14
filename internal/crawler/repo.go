package crawler

import (
	"fmt"
	"strings"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/badge"
	"github.com/UnitVectorY-Labs/badgegenerator/internal/models"
)

// Badge kinds stored on generated badges.
const (
	KindRepo     = "repo"
	KindLicense  = "license"
	KindLanguage = "language"
	KindRelease  = "release"
)

const repoBadgeColor = "blue"

// RepoMetadata is the repository information badges are built from.
type RepoMetadata struct {
	Owner         string
	Name          string
	HTMLURL       string
	DefaultBranch string
	License       string // SPDX identifier
	Language      string
	LatestRelease string // tag name
}

// RepoBadge links to the repository itself, labelled owner and name.
func RepoBadge(owner, name, htmlURL string) badge.Options {
	return badge.Options{
		Label:           owner,
		Message:         name,
		Color:           repoBadgeColor,
		Target:          htmlURL,
		Logo:            "github",
		OnlyQueryParams: true,
	}
}

// LicenseBadge links to the license file on the default branch.
func LicenseBadge(spdx, htmlURL, branch string) badge.Options {
	opts := badge.Options{
		Label:   "License",
		Message: spdx,
		Color:   repoBadgeColor,
	}
	if htmlURL != "" && branch != "" {
		opts.Target = fmt.Sprintf("%s/blob/%s/LICENSE", htmlURL, branch)
	}
	return opts
}

// LanguageBadge shows the main language, with its simple-icons logo.
func LanguageBadge(language string) badge.Options {
	return badge.Options{
		Label:   "Made with",
		Message: language,
		Color:   repoBadgeColor,
		Logo:    logoName(language),
	}
}

// ReleaseBadge shows the latest release tag and links to the releases page.
func ReleaseBadge(tag, htmlURL string) badge.Options {
	opts := badge.Options{
		Label:   "release",
		Message: tag,
		Color:   repoBadgeColor,
	}
	if htmlURL != "" {
		opts.Target = htmlURL + "/releases"
	}
	return opts
}

// languageLogos maps GitHub language names whose simple-icons slug differs
// from the lower-cased name. An empty slug means there is no icon.
var languageLogos = map[string]string{
	"Jupyter Notebook": "jupyter",
	"Vim Script":       "vim",
	"Shell":            "gnubash",
	"Emacs Lisp":       "gnuemacs",
	"HTML":             "html5",
	"TeX":              "latex",
	"Dockerfile":       "docker",
	"HCL":              "terraform",
	"Objective-C":      "",
	"Makefile":         "",
	"Batchfile":        "",
}

// logoName converts a GitHub language name to a simple-icons slug.
func logoName(language string) string {
	if slug, ok := languageLogos[language]; ok {
		return slug
	}
	slug := strings.ToLower(language)
	slug = strings.ReplaceAll(slug, "+", "plus")
	slug = strings.ReplaceAll(slug, "#", "sharp")
	return strings.ReplaceAll(slug, " ", "")
}

// BuildRepoBadges renders every badge that applies to the repository. Each
// rendered badge is parsed back from its markdown so the record holds the
// resolved alt text, image and target.
func BuildRepoBadges(meta RepoMetadata) ([]models.Badge, error) {
	type entry struct {
		kind string
		opts badge.Options
	}

	entries := []entry{{KindRepo, RepoBadge(meta.Owner, meta.Name, meta.HTMLURL)}}
	if meta.License != "" && meta.License != "NOASSERTION" {
		entries = append(entries, entry{KindLicense, LicenseBadge(meta.License, meta.HTMLURL, meta.DefaultBranch)})
	}
	if meta.Language != "" {
		entries = append(entries, entry{KindLanguage, LanguageBadge(meta.Language)})
	}
	if meta.LatestRelease != "" {
		entries = append(entries, entry{KindRelease, ReleaseBadge(meta.LatestRelease, meta.HTMLURL)})
	}

	badges := make([]models.Badge, 0, len(entries))
	for _, e := range entries {
		md, err := badge.Generic(e.opts)
		if err != nil {
			return nil, fmt.Errorf("failed to render %s badge for %s: %w", e.kind, meta.Name, err)
		}

		b := models.Badge{Kind: e.kind, Markdown: md}
		if parsed := ExtractBadges([]byte(md)); len(parsed) > 0 {
			p := parsed[0]
			b.AltText, b.ImageURL, b.TargetURL = p.AltText, p.ImageURL, p.TargetURL
			b.HostImage, b.HostTarget = p.HostImage, p.HostTarget
		}
		badges = append(badges, b)
	}
	return badges, nil
}
