package extract

import (
	"regexp"
	"strings"
)

// hostLabel matches one dot-separated host component: alphanumeric with
// interior hyphens.
const hostLabel = `[A-Za-z0-9](?:[A-Za-z0-9-]*[A-Za-z0-9])?`

// Matcher recognizes URL-shaped substrings. It is stateless after
// construction and safe for arbitrary concurrent use; the pattern
// compiles to RE2, so matching is linear-time regardless of input.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher builds a matcher for the given scheme tokens. With
// allowNonFQDN, single-label hosts such as "localhost" are accepted;
// otherwise hosts need at least two dot-separated labels.
func NewMatcher(schemes []string, allowNonFQDN bool) *Matcher {
	quoted := make([]string, len(schemes))
	for i, s := range schemes {
		quoted[i] = regexp.QuoteMeta(s)
	}

	host := hostLabel + `(?:\.` + hostLabel + `)+`
	if allowNonFQDN {
		host = hostLabel + `(?:\.` + hostLabel + `)*`
	}

	pattern := `(?i)\b(?:` + strings.Join(quoted, "|") + `)://` +
		host +
		`(?::\d{1,5})?` +
		"(?:[/?#][^\\s\"'<>`]*)?"

	return &Matcher{re: regexp.MustCompile(pattern)}
}

// Find returns the [start, end) offsets of every URL in text, one
// left-to-right non-overlapping pass. Trailing punctuation and
// unbalanced closing delimiters are trimmed from each match.
func (m *Matcher) Find(text string) [][2]int {
	raw := m.re.FindAllStringIndex(text, -1)
	out := make([][2]int, 0, len(raw))
	for _, loc := range raw {
		trimmed := trimMatch(text[loc[0]:loc[1]])
		if len(trimmed) == 0 {
			continue
		}
		out = append(out, [2]int{loc[0], loc[0] + len(trimmed)})
	}
	return out
}

// trimMatch strips characters that belong to the enclosing syntax
// rather than the URL: trailing punctuation, and closing delimiters
// with no matching opener inside the URL itself.
func trimMatch(s string) string {
	for len(s) > 0 {
		switch s[len(s)-1] {
		case '.', ',', ';', ':', '!', '?', '\'', '"':
			s = s[:len(s)-1]
		case ')':
			if strings.Count(s, "(") >= strings.Count(s, ")") {
				return s
			}
			s = s[:len(s)-1]
		case ']':
			if strings.Count(s, "[") >= strings.Count(s, "]") {
				return s
			}
			s = s[:len(s)-1]
		case '}':
			if strings.Count(s, "{") >= strings.Count(s, "}") {
				return s
			}
			s = s[:len(s)-1]
		default:
			return s
		}
	}
	return s
}

// Host extracts the host portion of a matched URL, without port.
func Host(url string) string {
	rest := url
	if i := strings.Index(rest, "://"); i >= 0 {
		rest = rest[i+3:]
	}
	if i := strings.IndexAny(rest, "/?#"); i >= 0 {
		rest = rest[:i]
	}
	if i := strings.LastIndex(rest, ":"); i >= 0 {
		rest = rest[:i]
	}
	return rest
}
