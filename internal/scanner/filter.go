package scanner

import (
	"strings"

	"github.com/urlscout/urlscout-go/internal/extract"
)

// Filter drops matches whose host is on the ignore list (exact or
// subdomain, case-insensitive) and, unless includeNonFQDN is set,
// matches with single-label hosts. File entries are never removed,
// only matches within them, so files-scanned accounting survives
// files left with zero matches.
func Filter(files []FileResult, ignoreDomains []string, includeNonFQDN bool) []FileResult {
	out := make([]FileResult, len(files))
	for i, f := range files {
		kept := make([]extract.Match, 0, len(f.Matches))
		for _, m := range f.Matches {
			host := strings.ToLower(extract.Host(m.URL))
			if hostIgnored(host, ignoreDomains) {
				continue
			}
			if !includeNonFQDN && !strings.Contains(host, ".") {
				continue
			}
			kept = append(kept, m)
		}
		out[i] = FileResult{Path: f.Path, Matches: kept}
	}
	return out
}

func hostIgnored(host string, ignoreDomains []string) bool {
	for _, d := range ignoreDomains {
		d = strings.ToLower(strings.TrimSpace(d))
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

// Summarize recomputes aggregate counters from a filtered result set.
func Summarize(files []FileResult) (total, unique int) {
	seen := make(map[string]struct{})
	for _, f := range files {
		for _, m := range f.Matches {
			total++
			seen[m.URL] = struct{}{}
		}
	}
	return total, len(seen)
}
