package models

// Badge represents a single generated badge and what its markdown resolves to.
type Badge struct {
	Kind       string `json:"kind,omitempty"`
	Markdown   string `json:"markdown,omitempty"`
	AltText    string `json:"alt_text"`
	ImageURL   string `json:"image_url"`
	TargetURL  string `json:"target_url"`
	HostImage  string `json:"host_image"`
	HostTarget string `json:"host_target"`
}

// RepositoryData represents the crawled metadata and badges for a single repository.
type RepositoryData struct {
	Owner         string  `json:"owner"`
	Repository    string  `json:"repository"`
	RepositoryURL string  `json:"repository_url"`
	DefaultBranch string  `json:"default_branch"`
	License       string  `json:"license,omitempty"`
	Language      string  `json:"language,omitempty"`
	LatestRelease string  `json:"latest_release,omitempty"`
	Badges        []Badge `json:"badges"`
}
