package site

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/riftlens/winreport/internal/i18n"
)

// Output file names inside the site directory.
const (
	IndexFile    = "index.html"
	StyleFile    = "style.css"
	ScriptFile   = "script.js"
	ChartsFile   = "charts.json"
	ManifestFile = "manifest.json"
)

// Manifest describes one build of the site.
type Manifest struct {
	BuildID     string         `json:"build_id"`
	BuiltAt     time.Time      `json:"built_at"`
	DefaultLang i18n.Variant   `json:"default_lang"`
	Variants    []i18n.Variant `json:"variants"`
	Sections    int            `json:"sections"`
	Charts      int            `json:"charts"`
	Files       []string       `json:"files"`
}

// WriteManifest writes m as indented JSON.
func WriteManifest(m *Manifest, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// ReadManifest loads the manifest of a previously built site directory.
func ReadManifest(siteDir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(siteDir, ManifestFile))
	if err != nil {
		return nil, err
	}
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &m, nil
}
