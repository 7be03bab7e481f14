package generator

import (
	"html/template"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/models"
)

// DashboardViewModel is used for the index page.
type DashboardViewModel struct {
	OrgName         string
	TotalRepos      int
	TotalBadges     int
	ReposWithBadges int
	ReposNoBadges   int
	Repositories    []RepoSummary
	BadgesByKind    []KindSummary
	Content         template.HTML
	LastUpdated     string
}

// RepoSummary is a summary of a repository for listing.
type RepoSummary struct {
	Name       string
	URL        string
	BadgeCount int
	Snippet    string // repos/<name>.md, relative to the output directory
}

// KindSummary counts badges of one kind across all repositories.
type KindSummary struct {
	Kind  string
	Count int
}

// RepoSection is one repository's block in BADGES.md.
type RepoSection struct {
	Repository models.RepositoryData
	Row        string
}
