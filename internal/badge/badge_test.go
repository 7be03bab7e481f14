package badge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneric(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{
			name: "dash without label",
			opts: Options{Message: "passing", Color: "green"},
			want: "![passing](https://img.shields.io/badge/passing-green)",
		},
		{
			name: "dash with label and target",
			opts: Options{Label: "build", Message: "passing", Color: "green", Target: "https://example.com/ci"},
			want: "[![build - passing](https://img.shields.io/badge/build-passing-green)](https://example.com/ci)",
		},
		{
			name: "query params",
			opts: Options{Label: "build", Message: "passing", Color: "green", OnlyQueryParams: true},
			want: "![build - passing](https://img.shields.io/static/v1?label=build&message=passing&color=green)",
		},
		{
			name: "large with logo",
			opts: Options{Label: "Go", Message: "1.22", Color: "blue", IsLarge: true, Logo: "go", LogoColor: "white"},
			want: "![Go - 1.22](https://img.shields.io/badge/Go-1.22-blue?style=for-the-badge&logo=go&logoColor=white)",
		},
		{
			name: "logo color needs logo",
			opts: Options{Message: "x", Color: "red", LogoColor: "white", OnlyQueryParams: true},
			want: "![x](https://img.shields.io/static/v1?message=x&color=red)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Generic(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			again, err := Generic(tt.opts)
			require.NoError(t, err)
			assert.Equal(t, got, again)
		})
	}
}

func TestGenericDashPathSuffix(t *testing.T) {
	got, err := Generic(Options{Message: "passing", Color: "green"})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSuffix(got, ")"), "/passing-green"))
}

func TestGenericEmptyFields(t *testing.T) {
	got, err := Generic(Options{})
	require.NoError(t, err)
	assert.Equal(t, "![](https://img.shields.io/badge/-)", got)
}

func TestOptionsStrategy(t *testing.T) {
	assert.Equal(t, DashPath, Options{}.Strategy())
	assert.Equal(t, QueryParams, Options{OnlyQueryParams: true}.Strategy())
}
