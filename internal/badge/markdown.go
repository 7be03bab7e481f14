package badge

import "fmt"

// MarkdownLink returns [altText](linkTarget).
func MarkdownLink(altText, linkTarget string) string {
	return fmt.Sprintf("[%s](%s)", altText, linkTarget)
}

// MarkdownImage returns ![altText](imageTarget), with the hover title quoted
// inside the parentheses when one is given.
func MarkdownImage(altText, imageTarget, hoverTitle string) string {
	if hoverTitle != "" {
		imageTarget = fmt.Sprintf(`%s "%s"`, imageTarget, hoverTitle)
	}
	return fmt.Sprintf("![%s](%s)", altText, imageTarget)
}

// MarkdownImageWithLink returns the image markdown, wrapped in a link when
// linkTarget is set.
func MarkdownImageWithLink(altText, imageTarget, linkTarget, hoverTitle string) string {
	image := MarkdownImage(altText, imageTarget, hoverTitle)

	if linkTarget != "" {
		return MarkdownLink(image, linkTarget)
	}
	return image
}

// FormatTitle returns "label - message", or message alone when there is no
// label.
func FormatTitle(label, message string) string {
	if label == "" {
		return message
	}
	return label + " - " + message
}
