package site

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/riftlens/winreport/internal/i18n"
)

//go:embed content
var builtinContent embed.FS

// BuiltinContent returns the report prose shipped with the binary, rooted so
// that each variant is a top-level directory.
func BuiltinContent() fs.FS {
	sub, err := fs.Sub(builtinContent, "content")
	if err != nil {
		panic(err)
	}
	return sub
}

// Section is one markdown source file of a variant.
type Section struct {
	ID     string // unprefixed section id, e.g. "eda"
	File   string
	Source []byte
}

// LoadSections reads <variant>/*.md from fsys in file name order. A leading
// "NN-" ordering prefix is stripped from the section id.
func LoadSections(fsys fs.FS, v i18n.Variant) ([]Section, error) {
	dir := string(v)
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s content: %w", v, err)
	}

	var out []Section
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".md") {
			continue
		}
		p := path.Join(dir, e.Name())
		src, err := fs.ReadFile(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		out = append(out, Section{ID: sectionID(e.Name()), File: p, Source: src})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no markdown sections found for %s", v)
	}
	return out, nil
}

// sectionID turns "03-eda.md" into "eda".
func sectionID(name string) string {
	name = strings.TrimSuffix(name, ".md")
	if i := strings.IndexByte(name, '-'); i > 0 && isDigits(name[:i]) {
		name = name[i+1:]
	}
	return name
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
