package docubot

import (
	"context"
	"regexp"
)

// URLFilter restricts discovered URLs to those matching at least one
// include expression. A nil filter or an empty include list matches all.
type URLFilter struct {
	Include []*regexp.Regexp
}

// ParseURLFilter compiles the given patterns into a URLFilter.
// Returns EINVALID if any pattern is not a valid regular expression.
func ParseURLFilter(patterns []string) (*URLFilter, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	f := &URLFilter{}
	for _, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, Errorf(EINVALID, "invalid URL filter %q: %v", p, err)
		}
		f.Include = append(f.Include, re)
	}
	return f, nil
}

// Match reports whether the URL passes the filter.
func (f *URLFilter) Match(url string) bool {
	if f == nil || len(f.Include) == 0 {
		return true
	}
	for _, re := range f.Include {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

// SitemapService discovers page URLs from a site's sitemaps.
type SitemapService interface {
	// DiscoverURLs finds all URLs from the site's sitemap, scoped to the
	// base URL's path prefix and filtered by the optional filter.
	// Returns an empty slice (not nil) if no sitemaps are found.
	DiscoverURLs(ctx context.Context, baseURL string, filter *URLFilter) ([]string, error)
}
