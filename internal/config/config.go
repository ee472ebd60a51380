package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the compliance checklist the Olocus site is validated against;
// they are documented here rather than scattered through the checks.
const (
	// DefaultDescriptionMaxLength is the recommended maximum length for the
	// meta description. Search engines truncate descriptions around 155-160
	// characters, so longer descriptions trigger a warning (not an error).
	DefaultDescriptionMaxLength = 155

	// DefaultSiteOrigin is the absolute origin every canonical URL is
	// expected to start with. A canonical link pointing elsewhere is almost
	// always a copy-paste mistake, so it is flagged as a warning.
	DefaultSiteOrigin = "https://olocus.com"

	// DefaultJobs is the number of files checked concurrently.
	// 1 keeps the output strictly sequential; each file's report is fully
	// flushed before the next begins.
	DefaultJobs = 1

	// DefaultTemplatesDir is the subdirectory also scanned for HTML files,
	// in addition to the target directory itself.
	DefaultTemplatesDir = "templates"

	// AppName is the application name used for XDG directory paths.
	AppName = "seolint"

	// ChecklistDoc is printed on failure to point at remediation guidance.
	ChecklistDoc = "docs/seo-checklist.md"
)

// Default required tag sets. Copied into fresh Rules values so callers can
// mutate their own copy without affecting the defaults.
var (
	// defaultRequiredMetaTags are the <meta name="..."> tags every page must carry.
	defaultRequiredMetaTags = []string{"description", "keywords", "author", "robots", "viewport"}

	// defaultRequiredOpenGraphTags are the <meta property="og:..."> tags for link previews.
	defaultRequiredOpenGraphTags = []string{"og:type", "og:url", "og:title", "og:description", "og:image", "og:site_name"}

	// defaultRequiredTwitterTags are the <meta name="twitter:..."> card tags.
	defaultRequiredTwitterTags = []string{"twitter:card", "twitter:url", "twitter:title", "twitter:description", "twitter:image"}

	// defaultSchemaTypes are the schema.org @type values expected in JSON-LD
	// structured data. Their absence is advisory, not fatal.
	defaultSchemaTypes = []string{"Organization", "WebSite", "WebPage"}
)

// Rules holds the validation rule set applied to every file.
// The zero value is not usable; obtain one via DefaultRules or LoadRulesFile.
type Rules struct {
	// RequiredMetaTags lists the <meta name> values that must be present.
	RequiredMetaTags []string `yaml:"required_meta_tags"`

	// RequiredOpenGraphTags lists the <meta property> Open Graph values
	// that must be present.
	RequiredOpenGraphTags []string `yaml:"required_open_graph_tags"`

	// RequiredTwitterTags lists the <meta name> Twitter Card values that
	// must be present.
	RequiredTwitterTags []string `yaml:"required_twitter_tags"`

	// DescriptionMaxLength is the recommended maximum meta description
	// length in characters. Longer descriptions warn.
	DescriptionMaxLength int `yaml:"description_max_length"`

	// SiteOrigin is the absolute origin canonical URLs must start with.
	// Empty disables the canonical origin check.
	SiteOrigin string `yaml:"site_origin"`

	// SchemaTypes lists the schema.org @type values expected in JSON-LD.
	SchemaTypes []string `yaml:"schema_types"`
}

// DefaultRules returns a fresh rule set with the documented defaults.
func DefaultRules() *Rules {
	return &Rules{
		RequiredMetaTags:      append([]string(nil), defaultRequiredMetaTags...),
		RequiredOpenGraphTags: append([]string(nil), defaultRequiredOpenGraphTags...),
		RequiredTwitterTags:   append([]string(nil), defaultRequiredTwitterTags...),
		DescriptionMaxLength:  DefaultDescriptionMaxLength,
		SiteOrigin:            DefaultSiteOrigin,
		SchemaTypes:           append([]string(nil), defaultSchemaTypes...),
	}
}

// Config holds all configuration options for a seolint run.
// This struct is populated from CLI flags and passed through the application
// via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would add
// complexity without significant benefit.
type Config struct {
	// Targets are the directories or HTML files to check.
	// An empty list means the current working directory.
	Targets []string

	// Jobs is the number of files checked concurrently.
	// 1 (the default) preserves strictly sequential, streaming output.
	Jobs int

	// RulesFilePath is the path to the rules file. If empty, the tool
	// searches for .seolint in the current directory and then in the
	// user's home directory.
	RulesFilePath string

	// Rules is the effective rule set after loading and merging the
	// rules file over the defaults.
	Rules *Rules

	// JSONReport enables JSON output instead of the console format.
	// Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown output instead of the console format.
	// Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// NoColor disables terminal styling in the console format.
	NoColor bool

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// SaveToDB indicates whether to record run results in the history
	// database for later comparison.
	SaveToDB bool

	// DBDir is the directory holding the SQLite history database.
	// Defaults to the XDG data directory (~/.local/share/seolint on Linux).
	DBDir string
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor function instead of relying on
// zero values because several defaults are non-zero (jobs, rules).
// This also serves as documentation of what the defaults are.
func NewConfig() *Config {
	return &Config{
		Jobs:  DefaultJobs,
		Rules: DefaultRules(),
	}
}

// XDGDataDir returns the XDG data directory for seolint.
// On Linux: ~/.local/share/seolint
// On macOS: ~/Library/Application Support/seolint
// On Windows: %LOCALAPPDATA%\seolint
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// We return the first error found rather than collecting all errors
// because fixing one error often makes others irrelevant.
func (c *Config) Validate() error {
	if c.Jobs <= 0 {
		return ErrInvalidJobs
	}

	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	if c.Rules == nil {
		return ErrNilRules
	}

	if c.Rules.DescriptionMaxLength <= 0 {
		return ErrInvalidDescriptionLimit
	}

	return nil
}
