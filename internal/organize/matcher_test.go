package organize

import (
	"testing"

	"bookmarks-organizer/internal/chrome"
	"bookmarks-organizer/internal/config"

	"github.com/stretchr/testify/assert"
)

func record(name, url string) *Record {
	return &Record{
		Node:     &chrome.Node{Name: name, URL: url, Type: chrome.TypeURL},
		RootName: chrome.RootBookmarkBar,
	}
}

func matchSpec(t *testing.T, spec *config.MatchSpec, r *Record) bool {
	t.Helper()
	return newMatcher(spec).matches(deriveFields(r))
}

func TestMatcherDefaultReject(t *testing.T) {
	r := record("repo", "https://github.com/x/y")

	assert.False(t, matchSpec(t, &config.MatchSpec{}, r),
		"a spec with no inclusion predicates must never match")
	assert.False(t, matchSpec(t, &config.MatchSpec{Mode: "all"}, r),
		"mode must not change the default-reject invariant")
}

func TestMatcherExclusionsVeto(t *testing.T) {
	r := record("python tutorial", "https://docs.python.org/3/")

	tests := []struct {
		name string
		spec config.MatchSpec
	}{
		{
			name: "exclude keyword beats matching inclusion",
			spec: config.MatchSpec{
				Keywords:        []string{"python"},
				ExcludeKeywords: []string{"tutorial"},
			},
		},
		{
			name: "exclude domain beats matching inclusion",
			spec: config.MatchSpec{
				Keywords:       []string{"python"},
				ExcludeDomains: []string{"python.org"},
			},
		},
		{
			name: "exclusions ignore mode",
			spec: config.MatchSpec{
				Mode:                "all",
				Keywords:            []string{"python"},
				URLContains:         []string{"docs"},
				ExcludeNameContains: []string{"tutorial"},
			},
		},
		{
			name: "exclude regex",
			spec: config.MatchSpec{
				Keywords:     []string{"python"},
				ExcludeRegex: []string{`tutor\w+`},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, matchSpec(t, &tt.spec, r))
		})
	}
}

func TestMatcherModes(t *testing.T) {
	r := record("Go by Example", "https://gobyexample.com/channels")

	tests := []struct {
		name string
		spec config.MatchSpec
		want bool
	}{
		{
			name: "any needs one family",
			spec: config.MatchSpec{
				Keywords:    []string{"nope"},
				URLContains: []string{"gobyexample"},
			},
			want: true,
		},
		{
			name: "all needs every family",
			spec: config.MatchSpec{
				Mode:        "all",
				Keywords:    []string{"example"},
				URLContains: []string{"channels"},
			},
			want: true,
		},
		{
			name: "all fails on one miss",
			spec: config.MatchSpec{
				Mode:        "all",
				Keywords:    []string{"example"},
				URLContains: []string{"maps"},
			},
			want: false,
		},
		{
			name: "empty families are not evaluated",
			spec: config.MatchSpec{
				Mode:     "all",
				Keywords: []string{"example"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchSpec(t, &tt.spec, r))
		})
	}
}

func TestMatcherDomains(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		domains []string
		want    bool
	}{
		{"exact host", "https://github.com/x/y", []string{"github.com"}, true},
		{"subdomain", "https://gist.github.com/x", []string{"github.com"}, true},
		{"leading dot stripped", "https://github.com/x", []string{".github.com"}, true},
		{"host anchored, not substring", "https://notgithub.com/evil-github.com", []string{"github.com"}, false},
		{"different host", "https://gitlab.com/x", []string{"github.com"}, false},
		{"no host derivable", "not a url", []string{"github.com"}, false},
		{"empty url", "", []string{"github.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := &config.MatchSpec{Domains: tt.domains}
			assert.Equal(t, tt.want, matchSpec(t, spec, record("x", tt.url)))
		})
	}
}

func TestMatcherBadRegexDropped(t *testing.T) {
	r := record("repo", "https://github.com/x/y")

	// The broken pattern is dropped; the spec still matches on keywords.
	spec := &config.MatchSpec{
		Keywords: []string{"github"},
		Regex:    []string{"[unclosed"},
	}
	assert.True(t, matchSpec(t, spec, r))

	// A broken exclusion pattern cannot veto anything either.
	spec = &config.MatchSpec{
		Keywords:     []string{"github"},
		ExcludeRegex: []string{"[unclosed"},
	}
	assert.True(t, matchSpec(t, spec, r))
}

func TestMatcherCaseInsensitive(t *testing.T) {
	r := record("My GITHUB Repos", "https://GitHub.com/X/Y")

	assert.True(t, matchSpec(t, &config.MatchSpec{Keywords: []string{"GiThUb"}}, r))
	assert.True(t, matchSpec(t, &config.MatchSpec{Regex: []string{"github\\s+repos"}}, r))
	assert.True(t, matchSpec(t, &config.MatchSpec{Domains: []string{"GITHUB.COM"}}, r))
}

func TestMatcherPathAndRoots(t *testing.T) {
	r := &Record{
		Node:       &chrome.Node{Name: "pep8", URL: "https://peps.python.org/pep-0008/", Type: chrome.TypeURL},
		RootName:   chrome.RootOther,
		SourcePath: []string{"Old Stuff", "Python"},
	}

	assert.True(t, matchSpec(t, &config.MatchSpec{PathContains: []string{"old stuff > python"}}, r))
	assert.True(t, matchSpec(t, &config.MatchSpec{PathRegex: []string{`^old stuff >`}}, r))
	assert.True(t, matchSpec(t, &config.MatchSpec{Roots: []string{"other"}}, r))
	assert.False(t, matchSpec(t, &config.MatchSpec{Roots: []string{"bookmark_bar"}}, r))
	assert.False(t, matchSpec(t, &config.MatchSpec{ExcludePathContains: []string{"python"}, Keywords: []string{"pep"}}, r))
}

func TestMatcherKeywordsCoverNameAndURL(t *testing.T) {
	assert.True(t, matchSpec(t, &config.MatchSpec{Keywords: []string{"rust"}},
		record("the book", "https://doc.rust-lang.org/book/")))
	assert.True(t, matchSpec(t, &config.MatchSpec{Keywords: []string{"rust"}},
		record("rust book", "https://example.com/")))
}
