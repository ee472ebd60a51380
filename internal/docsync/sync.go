package docsync

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatterDelimiter marks the start and end of a YAML front-matter block.
const frontMatterDelimiter = "---"

// FrontMatter is the metadata block prepended to synced documentation.
type FrontMatter struct {
	// Title is the document title shown in the sidebar.
	Title string `yaml:"title"`

	// CustomEditURL points readers at the upstream source of the page.
	// Empty omits the field.
	CustomEditURL string `yaml:"custom_edit_url,omitempty"`
}

// Syncer copies Markdown documentation from a source tree to a target tree,
// prepending front matter.
type Syncer struct {
	// editURLBase, when non-empty, is joined with each file's relative
	// path to form its custom_edit_url.
	editURLBase string

	// logger is used for per-file progress logging.
	logger *slog.Logger
}

// SyncerOption configures a Syncer.
type SyncerOption func(*Syncer)

// WithEditURLBase sets the base URL for custom_edit_url front-matter fields.
func WithEditURLBase(base string) SyncerOption {
	return func(s *Syncer) {
		s.editURLBase = strings.TrimSuffix(base, "/")
	}
}

// WithSyncLogger sets a custom logger.
func WithSyncLogger(logger *slog.Logger) SyncerOption {
	return func(s *Syncer) {
		s.logger = logger
	}
}

// NewSyncer creates a Syncer.
func NewSyncer(opts ...SyncerOption) *Syncer {
	s := &Syncer{}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// SyncDir copies every *.md file under srcDir to the same relative path
// under dstDir, prepending front matter. Returns the number of files synced.
func (s *Syncer) SyncDir(srcDir, dstDir string) (int, error) {
	synced := 0

	err := filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		if err := s.SyncFile(path, filepath.Join(dstDir, rel)); err != nil {
			return err
		}
		synced++
		return nil
	})
	if err != nil {
		return synced, fmt.Errorf("failed to sync %s: %w", srcDir, err)
	}

	return synced, nil
}

// SyncFile copies one Markdown file to dst with front matter prepended,
// creating parent directories as needed. A source file that already has
// front matter is copied unchanged.
func (s *Syncer) SyncFile(src, dst string) error {
	data, err := os.ReadFile(src) //nolint:gosec // User-provided doc path is intentional
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", src, err)
	}

	content := string(data)
	if !HasFrontMatter(content) {
		fm := FrontMatter{
			Title: titleFor(src, content),
		}
		if s.editURLBase != "" {
			fm.CustomEditURL = s.editURLBase + "/" + filepath.Base(src)
		}

		block, err := renderFrontMatter(fm)
		if err != nil {
			return fmt.Errorf("failed to render front matter for %s: %w", src, err)
		}
		content = block + content
	}

	if dir := filepath.Dir(dst); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create target directory: %w", err)
		}
	}

	if err := os.WriteFile(dst, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", dst, err)
	}

	s.logger.Debug("synced doc", "src", src, "dst", dst)
	return nil
}

// HasFrontMatter reports whether the document already starts with a YAML
// front-matter block.
func HasFrontMatter(content string) bool {
	return strings.HasPrefix(content, frontMatterDelimiter+"\n") ||
		strings.HasPrefix(content, frontMatterDelimiter+"\r\n")
}

// renderFrontMatter serializes a front-matter block, delimiters included.
func renderFrontMatter(fm FrontMatter) (string, error) {
	body, err := yaml.Marshal(fm)
	if err != nil {
		return "", err
	}
	return frontMatterDelimiter + "\n" + string(body) + frontMatterDelimiter + "\n\n", nil
}

// titleFor derives a document title: the first H1 heading if the document
// has one, otherwise the file name with dashes and underscores spaced out.
func titleFor(path, content string) string {
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, "# "))
		}
	}

	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return base
}
