// Package receipt renders a human readable summary of a submission using
// pongo2 templates.
package receipt

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-payform/pkg/payment"
)

//go:embed templates/*.tpl
var embedded embed.FS

const defaultTemplate = "receipt.tpl"

// Receipt is the data a template renders.
type Receipt struct {
	Method      payment.Method        `json:"method"`
	Data        payment.ComponentData `json:"data"`
	Environment string                `json:"environment,omitempty"`
	SubmittedAt time.Time             `json:"submittedAt"`
}

// Option configures a Renderer.
type Option func(*config)

type config struct {
	baseDir string
	files   fs.FS
	name    string
	globals map[string]any
}

// WithBaseDir loads templates from a directory on disk.
func WithBaseDir(dir string) Option {
	return func(cfg *config) {
		cfg.baseDir = strings.TrimSpace(dir)
	}
}

// WithFS loads templates from files.
func WithFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.files = files
	}
}

// WithTemplate selects the template name rendered by Render.
func WithTemplate(name string) Option {
	return func(cfg *config) {
		if trimmed := strings.TrimSpace(name); trimmed != "" {
			cfg.name = trimmed
		}
	}
}

// WithGlobalData seeds values available to every template.
func WithGlobalData(data map[string]any) Option {
	return func(cfg *config) {
		if cfg.globals == nil {
			cfg.globals = make(map[string]any, len(data))
		}
		for key, value := range data {
			cfg.globals[strings.TrimSpace(key)] = value
		}
	}
}

// Renderer executes one receipt template.
type Renderer struct {
	mu   sync.RWMutex
	tmpl *pongo2.Template
}

var registerFilters sync.Once

// New loads the template. Without WithBaseDir or WithFS the bundled template
// is used.
func New(options ...Option) (*Renderer, error) {
	cfg := &config{name: defaultTemplate}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(cfg)
	}

	var loaders []pongo2.TemplateLoader
	if cfg.baseDir != "" {
		loader, err := pongo2.NewLocalFileSystemLoader(cfg.baseDir)
		if err != nil {
			return nil, fmt.Errorf("receipt: create local loader: %w", err)
		}
		loaders = append(loaders, loader)
	}
	if cfg.files != nil {
		loaders = append(loaders, pongo2.NewFSLoader(cfg.files))
	}
	if len(loaders) == 0 {
		sub, err := fs.Sub(embedded, "templates")
		if err != nil {
			return nil, fmt.Errorf("receipt: embedded templates: %w", err)
		}
		loaders = append(loaders, pongo2.NewFSLoader(sub))
	}

	registerFilters.Do(registerDefaultFilters)

	set := pongo2.NewSet("payform", loaders...)
	if len(cfg.globals) > 0 {
		if set.Globals == nil {
			set.Globals = make(pongo2.Context)
		}
		set.Globals.Update(pongo2.Context(cfg.globals))
	}
	tmpl, err := set.FromFile(cfg.name)
	if err != nil {
		return nil, fmt.Errorf("receipt: load template %q: %w", cfg.name, err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render executes the template for r and writes the result to every out.
func (r *Renderer) Render(rec Receipt, out ...io.Writer) (string, error) {
	if r == nil || r.tmpl == nil {
		return "", errors.New("receipt: renderer is nil")
	}
	ctx, err := toContext(rec)
	if err != nil {
		return "", fmt.Errorf("receipt: convert data: %w", err)
	}

	var buf bytes.Buffer
	r.mu.RLock()
	err = r.tmpl.ExecuteWriter(ctx, &buf)
	r.mu.RUnlock()
	if err != nil {
		return "", fmt.Errorf("receipt: execute: %w", err)
	}

	rendered := buf.String()
	for _, w := range out {
		if _, err := io.WriteString(w, rendered); err != nil {
			return "", err
		}
	}
	return rendered, nil
}

// toContext round-trips through JSON so templates address fields by their
// wire names.
func toContext(v any) (pongo2.Context, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	out := pongo2.Context{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func registerDefaultFilters() {
	if !pongo2.FilterExists("minor_units") {
		_ = pongo2.RegisterFilter("minor_units", filterMinorUnits)
	}
	if !pongo2.FilterExists("label") {
		_ = pongo2.RegisterFilter("label", filterLabel)
	}
}

// filterMinorUnits renders 1250 as "12.50".
func filterMinorUnits(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	value := in.Integer()
	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}
	return pongo2.AsValue(fmt.Sprintf("%s%d.%02d", sign, value/100, value%100)), nil
}

// filterLabel turns a camelCase wire name into "Camel case".
func filterLabel(in *pongo2.Value, _ *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	var b strings.Builder
	for i, r := range in.String() {
		switch {
		case i == 0:
			b.WriteRune(unicode.ToUpper(r))
		case unicode.IsUpper(r):
			b.WriteByte(' ')
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return pongo2.AsValue(b.String()), nil
}
