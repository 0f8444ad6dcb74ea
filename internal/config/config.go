package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"bookmarks-organizer/internal/chrome"

	"gopkg.in/yaml.v3"
)

// MatchSpec is the inclusion/exclusion rule bundle attached to one
// category node. Inclusion families are combined per Mode; any exclusion
// hit vetoes the whole spec regardless of Mode. A spec with no inclusion
// predicates never matches.
type MatchSpec struct {
	Keywords     []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	NameContains []string `json:"nameContains,omitempty" yaml:"nameContains,omitempty"`
	URLContains  []string `json:"urlContains,omitempty" yaml:"urlContains,omitempty"`
	Domains      []string `json:"domains,omitempty" yaml:"domains,omitempty"`
	Regex        []string `json:"regex,omitempty" yaml:"regex,omitempty"`
	PathContains []string `json:"pathContains,omitempty" yaml:"pathContains,omitempty"`
	PathRegex    []string `json:"pathRegex,omitempty" yaml:"pathRegex,omitempty"`
	Roots        []string `json:"roots,omitempty" yaml:"roots,omitempty"`

	ExcludeKeywords     []string `json:"excludeKeywords,omitempty" yaml:"excludeKeywords,omitempty"`
	ExcludeNameContains []string `json:"excludeNameContains,omitempty" yaml:"excludeNameContains,omitempty"`
	ExcludeURLContains  []string `json:"excludeUrlContains,omitempty" yaml:"excludeUrlContains,omitempty"`
	ExcludeDomains      []string `json:"excludeDomains,omitempty" yaml:"excludeDomains,omitempty"`
	ExcludePathContains []string `json:"excludePathContains,omitempty" yaml:"excludePathContains,omitempty"`
	ExcludePathRegex    []string `json:"excludePathRegex,omitempty" yaml:"excludePathRegex,omitempty"`
	ExcludeRegex        []string `json:"excludeRegex,omitempty" yaml:"excludeRegex,omitempty"`

	// Mode is "any" (default) or "all".
	Mode string `json:"mode,omitempty" yaml:"mode,omitempty"`
}

// CategoryNode is one destination folder definition. Categories form an
// ordered forest; order expresses authoring intent and is preserved in
// the output tree.
type CategoryNode struct {
	Name     string         `json:"name" yaml:"name"`
	Match    *MatchSpec     `json:"match,omitempty" yaml:"match,omitempty"`
	Children []CategoryNode `json:"children,omitempty" yaml:"children,omitempty"`
}

// Config is the full configuration document.
type Config struct {
	SourceRoots         []string       `json:"sourceRoots,omitempty" yaml:"sourceRoots,omitempty"`
	DestinationRoot     string         `json:"destinationRoot,omitempty" yaml:"destinationRoot,omitempty"`
	OrganizedFolderName *string        `json:"organizedFolderName,omitempty" yaml:"organizedFolderName,omitempty"`
	IncludeEmptyFolders *bool          `json:"includeEmptyFolders,omitempty" yaml:"includeEmptyFolders,omitempty"`
	DefaultPath         []string       `json:"defaultPath,omitempty" yaml:"defaultPath,omitempty"`
	Categories          []CategoryNode `json:"categories,omitempty" yaml:"categories,omitempty"`
}

// LoadDefaults fills unset fields with their documented defaults.
// OrganizedFolderName and IncludeEmptyFolders are pointers so an explicit
// empty name or false survives.
func (c *Config) LoadDefaults() {
	if len(c.SourceRoots) == 0 {
		c.SourceRoots = append([]string(nil), chrome.CanonicalRoots...)
	}
	if c.DestinationRoot == "" {
		c.DestinationRoot = chrome.RootBookmarkBar
	}
	if c.OrganizedFolderName == nil {
		name := "Organized"
		c.OrganizedFolderName = &name
	}
	if c.IncludeEmptyFolders == nil {
		include := true
		c.IncludeEmptyFolders = &include
	}
	if len(c.DefaultPath) == 0 {
		c.DefaultPath = []string{"Uncategorized"}
	}
}

// Validate rejects root names outside the canonical set. It runs before
// any document is touched.
func (c *Config) Validate() error {
	if !chrome.IsCanonicalRoot(c.DestinationRoot) {
		return fmt.Errorf("invalid destination root %q: must be one of %s",
			c.DestinationRoot, strings.Join(chrome.CanonicalRoots, ", "))
	}
	for _, r := range c.SourceRoots {
		if !chrome.IsCanonicalRoot(r) {
			return fmt.Errorf("invalid source root %q: must be one of %s",
				r, strings.Join(chrome.CanonicalRoots, ", "))
		}
	}
	return nil
}

// WrapperName returns the outer folder name, empty when wrapping is
// disabled. Call after LoadDefaults.
func (c *Config) WrapperName() string {
	return strings.TrimSpace(*c.OrganizedFolderName)
}

// IncludeEmpty reports whether empty category folders are kept in the
// output. Call after LoadDefaults.
func (c *Config) IncludeEmpty() bool {
	return *c.IncludeEmptyFolders
}

// Load reads a configuration file, decoded as YAML or JSON by extension,
// applies defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot parse config file: %w", err)
	}

	cfg.LoadDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultHistoryPath is where run history is kept unless overridden.
func DefaultHistoryPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "history.db"
	}
	return filepath.Join(homeDir, ".bookmarks-organizer", "history.db")
}
