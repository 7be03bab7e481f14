package crawler

import (
	"net/url"
	"regexp"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/models"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// htmlBadgeRegex matches <a href="..."><img src="..." alt="..."></a>.
var htmlBadgeRegex = regexp.MustCompile(`<a\s+href="([^"]+)"[^>]*>\s*<img\s+src="([^"]+)"(?:\s+alt="([^"]*)")?[^>]*>\s*</a>`)

// ExtractBadges parses markdown content and returns the badges in it, linked
// or bare, in document order. HTML anchor badges follow the markdown ones.
func ExtractBadges(content []byte) []models.Badge {
	var badges []models.Badge

	md := goldmark.New()
	reader := text.NewReader(content)
	doc := md.Parser().Parse(reader)

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}

		badge := models.Badge{
			AltText:  string(img.Text(content)),
			ImageURL: string(img.Destination),
		}
		if link, ok := img.Parent().(*ast.Link); ok {
			badge.TargetURL = string(link.Destination)
		}
		normalizeBadge(&badge)
		badges = append(badges, badge)

		return ast.WalkSkipChildren, nil
	})

	matches := htmlBadgeRegex.FindAllSubmatch(content, -1)
	for _, match := range matches {
		badge := models.Badge{
			TargetURL: string(match[1]),
			ImageURL:  string(match[2]),
			AltText:   string(match[3]),
		}
		normalizeBadge(&badge)

		badges = append(badges, badge)
	}

	return badges
}

func normalizeBadge(b *models.Badge) {
	if u, err := url.Parse(b.ImageURL); err == nil {
		b.HostImage = u.Host
	}
	if b.TargetURL == "" {
		return
	}
	if u, err := url.Parse(b.TargetURL); err == nil {
		b.HostTarget = u.Host
	}
}
