package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"sync"
	"text/template"
)

// funcs are available to every template.
var funcs = template.FuncMap{
	"lower": strings.ToLower,
	"posixPath": func(s string) string {
		return strings.ReplaceAll(s, "\\", "/")
	},
}

// leftoverToken matches placeholders that rendering should have replaced:
// ${VAR}, {{VAR}} or $VAR.
var leftoverToken = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}|\$[A-Z_][A-Z0-9_]*`)

// Renderer executes text/template files in strict mode.
type Renderer interface {
	// Render executes the named template with data. Missing keys fail with
	// ErrMissingTemplateKey and leftover placeholders with ErrUnexpandedToken.
	Render(name string, data any) ([]byte, error)
}

// renderer parses each template once and reuses it across renders.
type renderer struct {
	fsys fs.FS

	mu     sync.Mutex
	parsed map[string]*template.Template
}

// NewRenderer creates a Renderer reading templates from fsys.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys, parsed: make(map[string]*template.Template)}
}

func (r *renderer) Render(name string, data any) ([]byte, error) {
	tmpl, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}
	if tok := leftoverToken.Find(buf.Bytes()); tok != nil {
		return nil, fmt.Errorf("%w: %s left %q", ErrUnexpandedToken, name, tok)
	}
	return buf.Bytes(), nil
}

// lookup returns the parsed template for name, parsing it on first use.
func (r *renderer) lookup(name string) (*template.Template, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tmpl, ok := r.parsed[name]; ok {
		return tmpl, nil
	}
	src, err := fs.ReadFile(r.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	tmpl, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parse template %q: %w", name, err)
	}
	r.parsed[name] = tmpl
	return tmpl, nil
}
