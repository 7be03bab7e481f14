package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBadges(t *testing.T) {
	content := []byte(`# Project

[![build - passing](https://img.shields.io/badge/build-passing-green)](https://ci.example.com/job)
![Made with - Go](https://img.shields.io/badge/Made_with-Go-blue?logo=go)

Some text with a [plain link](https://example.com).

<a href="https://example.org"><img src="https://img.shields.io/badge/html-badge-red" alt="html badge"></a>
`)

	badges := ExtractBadges(content)
	require.Len(t, badges, 3)

	assert.Equal(t, "build - passing", badges[0].AltText)
	assert.Equal(t, "https://img.shields.io/badge/build-passing-green", badges[0].ImageURL)
	assert.Equal(t, "https://ci.example.com/job", badges[0].TargetURL)
	assert.Equal(t, "img.shields.io", badges[0].HostImage)
	assert.Equal(t, "ci.example.com", badges[0].HostTarget)

	assert.Equal(t, "Made with - Go", badges[1].AltText)
	assert.Equal(t, "https://img.shields.io/badge/Made_with-Go-blue?logo=go", badges[1].ImageURL)
	assert.Empty(t, badges[1].TargetURL)
	assert.Empty(t, badges[1].HostTarget)

	assert.Equal(t, "html badge", badges[2].AltText)
	assert.Equal(t, "https://example.org", badges[2].TargetURL)
	assert.Equal(t, "example.org", badges[2].HostTarget)
}

func TestExtractBadgesNone(t *testing.T) {
	assert.Empty(t, ExtractBadges([]byte("no badges [here](https://example.com)")))
}
