package template

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
)

//go:embed all:templates
var embedded embed.FS

// Names of the embedded templates used by the scaffolders.
const (
	EditorConfig   = "editorconfig.txt"
	GitAttributes  = "gitattributes.txt"
	GoModule       = "golang/go.mod.tmpl"
	GoDoc          = "golang/doc.go.tmpl"
	GoWorkflow     = "golang/ci.yml"
	licensesPrefix = "licenses/"
)

// EmbeddedTemplates returns the template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		return nil, fmt.Errorf("open embedded templates: %w", err)
	}
	return sub, nil
}

// LicenseTemplate returns the template name for an SPDX license id.
func LicenseTemplate(spdx string) string {
	return licensesPrefix + spdx + ".tmpl"
}

// Licenses returns the SPDX ids that have an embedded license text, sorted.
func Licenses(fsys fs.FS) ([]string, error) {
	entries, err := fs.ReadDir(fsys, "licenses")
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if id, ok := strings.CutSuffix(e.Name(), ".tmpl"); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
