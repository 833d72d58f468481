package mailer

import (
	"bytes"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"maps"
	"path"
	"sync"
	texttemplate "text/template"

	"github.com/dmitrymomot/folio/pkg/sanitizer"
)

// Renderer renders named email templates from a filesystem.
//
// A template named "contact" is the pair contact.html and contact.txt in the
// template directory. Either file may be absent, not both. Each may start
// with YAML front matter; keys from the .html file win over the .txt file.
type Renderer struct {
	fs    fs.FS
	dir   string
	cache map[string]*cachedTemplate
	mu    sync.RWMutex
}

// cachedTemplate holds parsed templates, never rendered output.
type cachedTemplate struct {
	metadata map[string]any
	html     *htmltemplate.Template
	text     *texttemplate.Template
}

// RendererConfig configures the renderer.
type RendererConfig struct {
	TemplateDir string // Default: "."
}

// NewRenderer creates a renderer reading templates from the filesystem root.
func NewRenderer(filesystem fs.FS) *Renderer {
	return NewRendererWithConfig(filesystem, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom config.
func NewRendererWithConfig(filesystem fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	return &Renderer{
		fs:    filesystem,
		dir:   cfg.TemplateDir,
		cache: make(map[string]*cachedTemplate),
	}
}

// RenderResult is a rendered template.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string
}

// Subject returns the Subject front matter key, if set.
func (r *RenderResult) Subject() (string, bool) {
	s, ok := r.Metadata["Subject"].(string)
	return s, ok && s != ""
}

// Render executes the named template pair with data.
// The HTML part is auto-escaped and then restricted to the email allow-list.
func (r *Renderer) Render(name string, data any) (*RenderResult, error) {
	cached, err := r.getTemplate(name)
	if err != nil {
		return nil, err
	}

	result := &RenderResult{Metadata: cached.metadata}

	if cached.html != nil {
		var buf bytes.Buffer
		if err := cached.html.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: %s.html: %v", ErrRenderFailed, name, err)
		}
		result.HTML = sanitizer.EmailHTML(buf.String())
	}

	if cached.text != nil {
		var buf bytes.Buffer
		if err := cached.text.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("%w: %s.txt: %v", ErrRenderFailed, name, err)
		}
		result.Text = buf.String()
	}

	return result, nil
}

func (r *Renderer) getTemplate(name string) (*cachedTemplate, error) {
	r.mu.RLock()
	if cached, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return cached, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}

	htmlPart, err := r.readPart(name + ".html")
	if err != nil {
		return nil, err
	}
	textPart, err := r.readPart(name + ".txt")
	if err != nil {
		return nil, err
	}
	if htmlPart == nil && textPart == nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}

	cached := &cachedTemplate{metadata: map[string]any{}}

	if textPart != nil {
		maps.Copy(cached.metadata, textPart.Metadata)
		cached.text, err = texttemplate.New(name + ".txt").Option("missingkey=error").Parse(textPart.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.txt: %v", ErrRenderFailed, name, err)
		}
	}

	if htmlPart != nil {
		maps.Copy(cached.metadata, htmlPart.Metadata)
		cached.html, err = htmltemplate.New(name + ".html").Option("missingkey=error").Parse(htmlPart.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.html: %v", ErrRenderFailed, name, err)
		}
	}

	r.cache[name] = cached
	return cached, nil
}

// readPart returns nil without error when the file does not exist.
func (r *Renderer) readPart(file string) (*Template, error) {
	content, err := fs.ReadFile(r.fs, path.Join(r.dir, file))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, file, err)
	}

	tmpl, err := ParseTemplate(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return tmpl, nil
}
