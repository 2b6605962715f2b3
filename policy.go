package docubot

import (
	"net/url"
	"strings"
)

// LinkPolicy decides whether a discovered link belongs in the crawl frontier.
// It is a pure decision function over the job's scoping configuration; it
// never consults crawl state.
type LinkPolicy struct {
	seedHost       string
	sameDomainOnly bool
	include        []string
	exclude        []string
}

// NewLinkPolicy builds the policy for a crawl job.
// Returns EINVALID if the job's seed URL cannot be parsed.
func NewLinkPolicy(job CrawlJob) (*LinkPolicy, error) {
	seed, err := url.Parse(job.SeedURL)
	if err != nil || seed.Host == "" {
		return nil, Errorf(EINVALID, "invalid seed URL %q", job.SeedURL)
	}
	return &LinkPolicy{
		seedHost:       seed.Host,
		sameDomainOnly: job.SameDomainOnly,
		include:        job.IncludePatterns,
		exclude:        job.ExcludePatterns,
	}, nil
}

// ShouldCrawl reports whether the link passes domain scoping and the
// include/exclude substring patterns. Malformed URLs are rejected.
func (p *LinkPolicy) ShouldCrawl(link string) bool {
	u, err := url.Parse(link)
	if err != nil {
		return false
	}

	if p.sameDomainOnly && u.Host != p.seedHost {
		return false
	}

	for _, pattern := range p.exclude {
		if strings.Contains(link, pattern) {
			return false
		}
	}

	// An empty include list accepts by default.
	if len(p.include) > 0 {
		for _, pattern := range p.include {
			if strings.Contains(link, pattern) {
				return true
			}
		}
		return false
	}

	return true
}
