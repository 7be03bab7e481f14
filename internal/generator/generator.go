package generator

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/crawler"
	"github.com/UnitVectorY-Labs/badgegenerator/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/yuin/goldmark"
)

//go:embed templates/index.html templates/badges.md
var templateFS embed.FS

// Run executes the generation phase: it reads the crawled repository JSON
// from inputDir/repos and writes markdown snippets and an HTML preview to outputDir.
func Run(inputDir, outputDir string) error {
	logrus.WithFields(logrus.Fields{"input": inputDir, "output": outputDir}).Info("Starting generation")

	if err := os.MkdirAll(filepath.Join(outputDir, "repos"), 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", outputDir, err)
	}

	lastUpdated := loadTimestamp(inputDir)

	repos, err := loadRepos(inputDir)
	if err != nil {
		return err
	}

	// Render per-repository snippets
	var sections []RepoSection
	for _, repo := range repos {
		row := BadgeRow(repo.Badges)
		sections = append(sections, RepoSection{Repository: repo, Row: row})

		path := filepath.Join(outputDir, "repos", crawler.NormalizeRepoName(repo.Repository)+".md")
		if err := os.WriteFile(path, []byte(row+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}

	orgName := orgFromRepos(repos)

	// Render the combined markdown document
	mdTmpl, err := texttemplate.ParseFS(templateFS, "templates/badges.md")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	var doc bytes.Buffer
	if err := mdTmpl.ExecuteTemplate(&doc, "badges.md", struct {
		OrgName  string
		Sections []RepoSection
	}{orgName, sections}); err != nil {
		return fmt.Errorf("failed to render BADGES.md: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "BADGES.md"), doc.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write BADGES.md: %w", err)
	}

	// Render the HTML preview
	var content bytes.Buffer
	if err := goldmark.Convert(doc.Bytes(), &content); err != nil {
		return fmt.Errorf("failed to convert BADGES.md to HTML: %w", err)
	}

	vm := buildDashboard(repos, orgName, lastUpdated)
	vm.Content = template.HTML(content.String())

	tmpl, err := template.ParseFS(templateFS, "templates/index.html")
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	if err := renderTemplate(tmpl, filepath.Join(outputDir, "index.html"), "index.html", vm); err != nil {
		return err
	}

	logrus.WithField("repos", len(repos)).Info("Generation complete")
	return nil
}

// BadgeRow joins badge markdown with spaces so they render inline as one row.
func BadgeRow(badges []models.Badge) string {
	parts := make([]string, 0, len(badges))
	for _, b := range badges {
		if b.Markdown != "" {
			parts = append(parts, b.Markdown)
		}
	}
	return strings.Join(parts, " ")
}

func loadRepos(inputDir string) ([]models.RepositoryData, error) {
	files, err := filepath.Glob(filepath.Join(inputDir, crawler.ReposDir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list input files: %w", err)
	}

	var repos []models.RepositoryData
	for _, f := range files {
		file, err := os.Open(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", f, err)
		}

		var repo models.RepositoryData
		if err := json.NewDecoder(file).Decode(&repo); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to decode %s: %w", f, err)
		}
		file.Close()
		repos = append(repos, repo)
	}

	sort.Slice(repos, func(i, j int) bool {
		return repos[i].Repository < repos[j].Repository
	})
	return repos, nil
}

func orgFromRepos(repos []models.RepositoryData) string {
	for _, r := range repos {
		if r.Owner != "" {
			return r.Owner
		}
	}
	return ""
}

func buildDashboard(repos []models.RepositoryData, orgName, lastUpdated string) DashboardViewModel {
	vm := DashboardViewModel{
		OrgName:     orgName,
		TotalRepos:  len(repos),
		LastUpdated: lastUpdated,
	}

	kinds := make(map[string]int)
	for _, r := range repos {
		vm.TotalBadges += len(r.Badges)
		if len(r.Badges) > 0 {
			vm.ReposWithBadges++
		} else {
			vm.ReposNoBadges++
		}

		for _, b := range r.Badges {
			kind := b.Kind
			if kind == "" {
				kind = "Unknown"
			}
			kinds[kind]++
		}

		vm.Repositories = append(vm.Repositories, RepoSummary{
			Name:       r.Repository,
			URL:        r.RepositoryURL,
			BadgeCount: len(r.Badges),
			Snippet:    "repos/" + crawler.NormalizeRepoName(r.Repository) + ".md",
		})
	}

	for kind, count := range kinds {
		vm.BadgesByKind = append(vm.BadgesByKind, KindSummary{Kind: kind, Count: count})
	}
	sort.Slice(vm.BadgesByKind, func(i, j int) bool {
		if vm.BadgesByKind[i].Count != vm.BadgesByKind[j].Count {
			return vm.BadgesByKind[i].Count > vm.BadgesByKind[j].Count
		}
		return vm.BadgesByKind[i].Kind < vm.BadgesByKind[j].Kind
	})

	return vm
}

func renderTemplate(tmpl *template.Template, path, name string, data interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()
	if err := tmpl.ExecuteTemplate(file, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}
	return nil
}

func loadTimestamp(inputDir string) string {
	tsPath := filepath.Join(inputDir, "timestamp.json")
	file, err := os.Open(tsPath)
	if err != nil {
		return "Unknown"
	}
	defer file.Close()

	var data map[string]string
	if err := json.NewDecoder(file).Decode(&data); err != nil {
		return "Unknown"
	}

	lastCrawled, ok := data["last_crawled"]
	if !ok {
		return "Unknown"
	}

	t, err := time.Parse(time.RFC3339Nano, lastCrawled)
	if err != nil {
		return "Unknown"
	}

	// Format as "January 2, 2006 15:04 MST"
	return t.UTC().Format("January 2, 2006 15:04 MST")
}
