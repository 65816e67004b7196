package vault

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"htbnotes/internal/models"
	"htbnotes/internal/providers"
	"htbnotes/internal/structures"
	"htbnotes/internal/template"
)

// ErrNoteExists is returned when the target note is already present.
// Existing notes are never overwritten.
var ErrNoteExists = errors.New("note already exists")

// Manager writes notes into the vault directory and loads external
// template files for the resolver.
type Manager struct {
	dir    string
	logger providers.Logger
}

func NewManager(conf *structures.Config, logger providers.Logger) *Manager {
	return &Manager{dir: conf.Vault.Dir, logger: logger}
}

// Dir returns the vault root.
func (m *Manager) Dir() string {
	return m.dir
}

// CreateNote writes content to relPath below the vault root, creating
// parent directories as needed. The path gets a .md extension when it
// has none. Returns the absolute path of the created note.
func (m *Manager) CreateNote(relPath, content string) (string, error) {
	target, err := m.resolve(relPath)
	if err != nil {
		return "", err
	}
	if filepath.Ext(target) == "" {
		target += ".md"
	}

	if _, err := os.Stat(target); err == nil {
		return "", fmt.Errorf("%w: %s", ErrNoteExists, target)
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("checking note path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fmt.Errorf("creating note folder: %w", err)
	}
	if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("writing note: %w", err)
	}
	m.logger.Infof(providers.TypeImport, "Created note %s", target)
	return target, nil
}

// LoadTemplate reads an external template file. Relative paths are
// resolved against the vault root, so settings can point at templates
// stored inside the vault.
func (m *Manager) LoadTemplate(path string) (string, error) {
	target := path
	if !filepath.IsAbs(path) {
		var err error
		if target, err = m.resolve(path); err != nil {
			return "", err
		}
	}
	body, err := os.ReadFile(target)
	if err != nil {
		return "", fmt.Errorf("reading template %s: %w", path, err)
	}
	return string(body), nil
}

// resolve joins relPath below the vault root and rejects paths that
// escape it.
func (m *Manager) resolve(relPath string) (string, error) {
	cleaned := filepath.Clean("/" + filepath.FromSlash(relPath))
	target := filepath.Join(m.dir, cleaned)
	root := filepath.Clean(m.dir)
	if target != root && !strings.HasPrefix(target, root+string(filepath.Separator)) {
		return "", fmt.Errorf("path %q escapes the vault", relPath)
	}
	return target, nil
}

// FileName renders a note file name from the configured pattern,
// without extension. An empty pattern falls back to the record name.
func FileName(pattern string, vars map[string]string) string {
	if pattern == "" {
		pattern = "{{name}}"
	}
	name := SanitizeFileName(template.Fill(pattern, vars))
	if name == "" {
		name = "Untitled"
	}
	return name
}

// SanitizeFileName strips characters that are invalid in file names on
// common filesystems.
func SanitizeFileName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r < 0x20, strings.ContainsRune(`\/:*?"<>|`, r):
			continue
		default:
			b.WriteRune(r)
		}
	}
	return strings.Trim(b.String(), " .")
}

// MachineFileVars are the tokens the file name pattern supports for
// machines.
func MachineFileVars(m *models.Machine) map[string]string {
	return map[string]string{
		"name":       m.Name,
		"id":         m.ID,
		"os":         m.OS,
		"difficulty": m.Difficulty,
	}
}

func ChallengeFileVars(c *models.Challenge) map[string]string {
	return map[string]string{
		"name":       c.Name,
		"id":         c.ID,
		"category":   c.Category,
		"difficulty": c.Difficulty,
	}
}

func SherlockFileVars(s *models.Sherlock) map[string]string {
	category := s.Category
	if category == "" {
		category = "Forensics"
	}
	return map[string]string{
		"name":       s.Name,
		"id":         s.ID,
		"category":   category,
		"difficulty": s.Difficulty,
	}
}
