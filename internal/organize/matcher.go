package organize

import (
	"net/url"
	"regexp"
	"strings"

	"bookmarks-organizer/internal/config"
)

// fields are the lowercased views of one record that predicates test.
// They are derived once per record and shared across every spec tried
// during resolution.
type fields struct {
	name     string
	url      string
	both     string // "<name> <url>", trimmed
	host     string // empty when the url cannot be parsed
	pathText string // source folder path joined with " > "
	root     string
}

func deriveFields(r *Record) fields {
	name := strings.ToLower(r.Node.Name)
	rawURL := strings.ToLower(r.Node.URL)
	return fields{
		name:     name,
		url:      rawURL,
		both:     strings.TrimSpace(name + " " + rawURL),
		host:     hostOf(rawURL),
		pathText: strings.ToLower(strings.Join(r.SourcePath, " > ")),
		root:     strings.ToLower(r.RootName),
	}
}

// hostOf extracts the hostname from a url. An unparseable url yields the
// empty string so host predicates simply never match.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return strings.ToLower(u.Hostname())
}

// matcher is one compiled MatchSpec. Regex patterns are compiled
// case-insensitively once; a pattern that fails to compile is dropped so
// a config typo means "never matches" instead of a failed run.
type matcher struct {
	spec *config.MatchSpec
	all  bool

	regex     []*regexp.Regexp
	pathRegex []*regexp.Regexp

	exclRegex     []*regexp.Regexp
	exclPathRegex []*regexp.Regexp
}

func newMatcher(spec *config.MatchSpec) *matcher {
	return &matcher{
		spec:          spec,
		all:           spec.Mode == "all",
		regex:         compilePatterns(spec.Regex),
		pathRegex:     compilePatterns(spec.PathRegex),
		exclRegex:     compilePatterns(spec.ExcludeRegex),
		exclPathRegex: compilePatterns(spec.ExcludePathRegex),
	}
}

func compilePatterns(patterns []string) []*regexp.Regexp {
	var compiled []*regexp.Regexp
	for _, p := range patterns {
		re, err := regexp.Compile("(?i)" + p)
		if err != nil {
			continue
		}
		compiled = append(compiled, re)
	}
	return compiled
}

// matches evaluates the spec against one record's derived fields.
// Exclusions are checked first and veto the spec regardless of mode.
// Each non-empty inclusion family contributes one boolean; with zero
// evaluated families the spec rejects by default.
func (m *matcher) matches(f fields) bool {
	s := m.spec

	if containsAny(f.both, s.ExcludeKeywords) ||
		containsAny(f.name, s.ExcludeNameContains) ||
		containsAny(f.url, s.ExcludeURLContains) ||
		domainMatch(f.host, s.ExcludeDomains) ||
		containsAny(f.pathText, s.ExcludePathContains) ||
		regexAny(f.pathText, m.exclPathRegex) ||
		regexAny(f.both, m.exclRegex) {
		return false
	}

	var results []bool
	if len(s.Keywords) > 0 {
		results = append(results, containsAny(f.both, s.Keywords))
	}
	if len(s.NameContains) > 0 {
		results = append(results, containsAny(f.name, s.NameContains))
	}
	if len(s.URLContains) > 0 {
		results = append(results, containsAny(f.url, s.URLContains))
	}
	if len(s.Domains) > 0 {
		results = append(results, domainMatch(f.host, s.Domains))
	}
	if len(s.Regex) > 0 {
		results = append(results, regexAny(f.both, m.regex))
	}
	if len(s.PathContains) > 0 {
		results = append(results, containsAny(f.pathText, s.PathContains))
	}
	if len(s.PathRegex) > 0 {
		results = append(results, regexAny(f.pathText, m.pathRegex))
	}
	if len(s.Roots) > 0 {
		results = append(results, rootMatch(f.root, s.Roots))
	}

	if len(results) == 0 {
		return false
	}
	if m.all {
		for _, ok := range results {
			if !ok {
				return false
			}
		}
		return true
	}
	for _, ok := range results {
		if ok {
			return true
		}
	}
	return false
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" && strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}

// domainMatch anchors on the host: exact equality or a "."-separated
// suffix, never a substring of the full url.
func domainMatch(host string, domains []string) bool {
	if host == "" {
		return false
	}
	for _, d := range domains {
		d = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(d)), ".")
		if d == "" {
			continue
		}
		if host == d || strings.HasSuffix(host, "."+d) {
			return true
		}
	}
	return false
}

func rootMatch(root string, roots []string) bool {
	for _, r := range roots {
		if strings.ToLower(strings.TrimSpace(r)) == root {
			return true
		}
	}
	return false
}

func regexAny(s string, patterns []*regexp.Regexp) bool {
	for _, re := range patterns {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}
