package crawler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/UnitVectorY-Labs/badgegenerator/internal/models"
	"github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const DefaultWorkerCount = 10

// ReposDir is the subdirectory of the output directory holding one JSON
// file per repository. timestamp.json sits beside it, so repository names
// cannot collide with it.
const ReposDir = "repos"

// Options configures a crawl.
type Options struct {
	Org            string
	OutputDir      string
	Token          string
	IncludePrivate bool
	Workers        int
	// BaseURL overrides the GitHub API endpoint, e.g. for GitHub Enterprise.
	BaseURL string
}

// Run executes the crawl phase: list the organization's repositories, build
// their badges and write one JSON file per repository.
func Run(ctx context.Context, opts Options) error {
	client, err := newClient(ctx, opts.Token, opts.BaseURL)
	if err != nil {
		return err
	}

	// Ensure output directories exist
	if err := os.MkdirAll(filepath.Join(opts.OutputDir, ReposDir), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	log := logrus.WithField("org", opts.Org)

	// 1. List all repositories
	log.Info("Fetching repositories")
	var allRepos []*github.Repository
	listOpt := &github.RepositoryListByOrgOptions{
		ListOptions: github.ListOptions{PerPage: 100},
	}
	for {
		repos, resp, err := client.Repositories.ListByOrg(ctx, opts.Org, listOpt)
		if err != nil {
			return fmt.Errorf("failed to list repositories: %w", err)
		}
		allRepos = append(allRepos, repos...)
		if resp.NextPage == 0 {
			break
		}
		listOpt.Page = resp.NextPage
	}
	log.WithField("count", len(allRepos)).Info("Found repositories")

	// Filter out private repos unless includePrivate is set
	if !opts.IncludePrivate {
		var publicRepos []*github.Repository
		for _, repo := range allRepos {
			if !repo.GetPrivate() {
				publicRepos = append(publicRepos, repo)
			}
		}
		log.WithField("count", len(publicRepos)).Info("Filtered to public repositories")
		allRepos = publicRepos
	}

	// 2. Worker pool for building badges
	jobs := make(chan *github.Repository, len(allRepos))
	results := make(chan error, len(allRepos))
	var wg sync.WaitGroup

	workerCount := opts.Workers
	if workerCount <= 0 {
		workerCount = DefaultWorkerCount
	}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for repo := range jobs {
				results <- processRepo(ctx, client, repo, opts.OutputDir)
			}
		}()
	}

	for _, repo := range allRepos {
		jobs <- repo
	}
	close(jobs)

	wg.Wait()
	close(results)

	errCount := 0
	for err := range results {
		if err != nil {
			log.WithError(err).Error("Error processing repo")
			errCount++
		}
	}

	log.WithField("errors", errCount).Info("Crawl complete")

	timestampData := map[string]string{
		"last_crawled": time.Now().Format(time.RFC3339Nano),
	}
	return writeJSON(filepath.Join(opts.OutputDir, "timestamp.json"), timestampData)
}

func newClient(ctx context.Context, token, baseURL string) (*github.Client, error) {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token},
		)
		httpClient = oauth2.NewClient(ctx, ts)
	}
	client := github.NewClient(httpClient)

	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse GitHub base URL: %w", err)
		}
		client.BaseURL = u
	}
	return client, nil
}

func processRepo(ctx context.Context, client *github.Client, repo *github.Repository, outputDir string) error {
	meta := RepoMetadata{
		Owner:         repo.GetOwner().GetLogin(),
		Name:          repo.GetName(),
		HTMLURL:       repo.GetHTMLURL(),
		DefaultBranch: repo.GetDefaultBranch(),
		License:       repo.GetLicense().GetSPDXID(),
		Language:      repo.GetLanguage(),
	}

	release, resp, err := client.Repositories.GetLatestRelease(ctx, meta.Owner, meta.Name)
	switch {
	case err == nil:
		meta.LatestRelease = release.GetTagName()
	case resp != nil && resp.StatusCode == http.StatusNotFound:
		logrus.WithField("repo", meta.Name).Debug("No release found")
	default:
		return fmt.Errorf("failed to fetch latest release for %s: %w", meta.Name, err)
	}

	badges, err := BuildRepoBadges(meta)
	if err != nil {
		return err
	}

	data := models.RepositoryData{
		Owner:         meta.Owner,
		Repository:    meta.Name,
		RepositoryURL: meta.HTMLURL,
		DefaultBranch: meta.DefaultBranch,
		License:       meta.License,
		Language:      meta.Language,
		LatestRelease: meta.LatestRelease,
		Badges:        badges,
	}

	filename := filepath.Join(outputDir, ReposDir, fmt.Sprintf("%s.json", NormalizeRepoName(meta.Name)))
	return writeJSON(filename, data)
}

func writeJSON(path string, v interface{}) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return nil
}

// NormalizeRepoName returns a lower-case, slash-free name usable as a file name.
func NormalizeRepoName(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), "/", "-")
}
