package docubot

import (
	"net/url"
	"time"
)

// Default crawl budgets and pacing, used when a CrawlJob leaves them zero.
const (
	DefaultMaxPages     = 100
	DefaultMaxDepth     = 3
	DefaultConcurrency  = 5
	DefaultRequestDelay = time.Second
)

// DefaultExcludePatterns rejects anchors, non-HTTP schemes, and common
// binary/media/asset extensions. Matching is plain substring containment.
var DefaultExcludePatterns = []string{
	"#", "mailto:", "javascript:", "tel:", "sms:", "ftp:",
	".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp", ".ico",
	".css", ".js", ".json", ".xml", ".zip", ".tar", ".gz",
	".mp4", ".avi", ".mov", ".wmv", ".flv", ".webm",
	".mp3", ".wav", ".ogg", ".aac", ".flac",
}

// CrawlJob is the immutable configuration for one crawl invocation.
// Pattern slices use substring matching against the full URL string.
type CrawlJob struct {
	SeedURL         string        `json:"seedUrl"`
	MaxPages        int           `json:"maxPages"`
	MaxDepth        int           `json:"maxDepth"`
	Concurrency     int           `json:"concurrency"`
	RequestDelay    time.Duration `json:"requestDelay"`
	SameDomainOnly  bool          `json:"sameDomainOnly"`
	IncludePatterns []string      `json:"includePatterns"`
	ExcludePatterns []string      `json:"excludePatterns"`
}

// Validate returns an error if the job contains invalid fields.
func (j *CrawlJob) Validate() error {
	if j.SeedURL == "" {
		return Errorf(EINVALID, "crawl job seed URL required")
	}
	u, err := url.Parse(j.SeedURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return Errorf(EINVALID, "crawl job seed URL %q is not an absolute HTTP(S) URL", j.SeedURL)
	}
	return nil
}

// WithDefaults returns a copy of the job with zero-valued budgets, pacing,
// and exclusion patterns replaced by package defaults.
func (j CrawlJob) WithDefaults() CrawlJob {
	if j.MaxPages <= 0 {
		j.MaxPages = DefaultMaxPages
	}
	if j.MaxDepth <= 0 {
		j.MaxDepth = DefaultMaxDepth
	}
	if j.Concurrency <= 0 {
		j.Concurrency = DefaultConcurrency
	}
	if j.RequestDelay <= 0 {
		j.RequestDelay = DefaultRequestDelay
	}
	if j.ExcludePatterns == nil {
		j.ExcludePatterns = DefaultExcludePatterns
	}
	return j
}

// DocSiteJob returns a CrawlJob preset tuned for documentation sites:
// same-domain only, scoped to common documentation path patterns, and with
// auth/search pages excluded alongside the binary defaults.
func DocSiteJob(seedURL string) CrawlJob {
	return CrawlJob{
		SeedURL:        seedURL,
		MaxPages:       100,
		MaxDepth:       4,
		SameDomainOnly: true,
		IncludePatterns: []string{
			"/docs/", "/documentation/", "/guide/", "/tutorial/",
			"/api/", "/reference/", "/help/", "/manual/",
		},
		ExcludePatterns: []string{
			"#", "mailto:", "javascript:", ".pdf", ".jpg", ".png", ".gif",
			".zip", ".tar", ".gz", "/search", "/login", "/register",
		},
	}
}
