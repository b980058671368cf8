package localization

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const (
	// DefaultTable names the bundled table shipped with the library.
	DefaultTable = "payform"
	// DefaultHostTable is consulted when Params.TableName is empty.
	DefaultHostTable = "Localizable"
	// DefaultKeySeparator separates key segments in the bundled table.
	DefaultKeySeparator = "."

	defaultCacheSize = 256
)

// Params selects the host table and key separator for a lookup. A nil
// *Params behaves like the zero value.
type Params struct {
	TableName    string
	KeySeparator string
}

func (p *Params) table() string {
	if p == nil || strings.TrimSpace(p.TableName) == "" {
		return DefaultHostTable
	}
	return strings.TrimSpace(p.TableName)
}

func (p *Params) separator() string {
	if p == nil || p.KeySeparator == "" {
		return DefaultKeySeparator
	}
	return p.KeySeparator
}

// Provider resolves localized strings.
type Provider interface {
	Localize(key string, params *Params, args ...any) string
}

// ProviderFunc adapts a function into a Provider.
type ProviderFunc func(key string, params *Params, args ...any) string

// Localize calls the underlying function.
func (fn ProviderFunc) Localize(key string, params *Params, args ...any) string {
	return fn(key, params, args...)
}

// MissingTranslationHandler decides the string returned when no table holds
// the key.
type MissingTranslationHandler func(table, key string) string

func missingTranslationDefault(_ string, key string) string {
	return key
}

// Option configures a Bundle.
type Option func(*Bundle)

// WithLogger sets the logger used for missing-key diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Bundle) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// WithHostTables registers host tables consulted before the default table.
func WithHostTables(tables Tables) Option {
	return func(b *Bundle) {
		for name, entries := range tables {
			b.host[name] = entries
		}
	}
}

// WithOnMissing overrides the missing translation handler.
func WithOnMissing(handler MissingTranslationHandler) Option {
	return func(b *Bundle) {
		if handler != nil {
			b.onMissing = handler
		}
	}
}

// WithCacheSize bounds the resolved-template cache. Non-positive sizes keep
// the default.
func WithCacheSize(size int) Option {
	return func(b *Bundle) {
		if size > 0 {
			b.cacheSize = size
		}
	}
}

// Bundle is the default Provider: host tables first, bundled table second,
// key last.
type Bundle struct {
	defaults  map[string]string
	host      Tables
	onMissing MissingTranslationHandler
	logger    *zap.Logger
	cacheSize int
	cache     *lru.Cache[cacheKey, resolved]
}

type cacheKey struct {
	table     string
	separator string
	key       string
}

type resolved struct {
	value string
	found bool
}

// New builds a bundle around the bundled default table.
func New(options ...Option) (*Bundle, error) {
	tables, err := LoadTables(EmbeddedFS())
	if err != nil {
		return nil, err
	}
	defaults, ok := tables[DefaultTable]
	if !ok {
		return nil, ErrMissingDefaultTable
	}
	return NewWithDefaults(defaults, options...)
}

// NewWithDefaults builds a bundle around caller-supplied default entries.
func NewWithDefaults(defaults map[string]string, options ...Option) (*Bundle, error) {
	b := &Bundle{
		defaults:  defaults,
		host:      make(Tables),
		onMissing: missingTranslationDefault,
		logger:    zap.NewNop(),
		cacheSize: defaultCacheSize,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}
	cache, err := lru.New[cacheKey, resolved](b.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("localization: cache: %w", err)
	}
	b.cache = cache
	return b, nil
}

// MustNew panics when the bundled table cannot be loaded.
func MustNew(options ...Option) *Bundle {
	b, err := New(options...)
	if err != nil {
		panic(err)
	}
	return b
}

// Lookup returns the raw entry for key in the named table. The default table
// is addressed as DefaultTable.
func (b *Bundle) Lookup(table, key string) (string, bool) {
	if b == nil {
		return "", false
	}
	var entries map[string]string
	if table == DefaultTable {
		entries = b.defaults
	} else {
		entries = b.host[table]
	}
	value, ok := entries[key]
	if !ok || strings.TrimSpace(value) == "" {
		return "", false
	}
	return value, true
}

// Localize implements Provider.
func (b *Bundle) Localize(key string, params *Params, args ...any) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return ""
	}

	template := b.resolve(key, params)
	return formatArgs(template, args)
}

func (b *Bundle) resolve(key string, params *Params) string {
	ck := cacheKey{table: params.table(), separator: params.separator(), key: key}
	if hit, ok := b.cache.Get(ck); ok {
		if hit.found {
			return hit.value
		}
		return b.onMissing(ck.table, key)
	}

	hostKey := key
	if ck.separator != DefaultKeySeparator {
		hostKey = strings.ReplaceAll(key, DefaultKeySeparator, ck.separator)
	}

	if value, ok := b.Lookup(ck.table, hostKey); ok {
		value = sanitizeText(value)
		b.cache.Add(ck, resolved{value: value, found: true})
		return value
	}
	if value, ok := b.Lookup(DefaultTable, key); ok {
		value = sanitizeText(value)
		b.cache.Add(ck, resolved{value: value, found: true})
		return value
	}

	b.logger.Debug("translation missing",
		zap.String("table", ck.table),
		zap.String("key", key),
		zap.String("separator", ck.separator),
	)
	b.cache.Add(ck, resolved{})
	return b.onMissing(ck.table, key)
}

// formatArgs substitutes arguments into template. "%@" placeholders are
// accepted alongside fmt verbs.
func formatArgs(template string, args []any) string {
	if len(args) == 0 {
		return template
	}
	if !strings.Contains(template, "%") {
		return template
	}
	return fmt.Sprintf(rewriteVerbs(template), args...)
}

// rewriteVerbs maps "%@" to "%v" and escapes any '%' that does not start a
// complete fmt directive, so literal percentages survive Sprintf. A space
// after '%' reads as literal text rather than the space flag.
func rewriteVerbs(template string) string {
	var sb strings.Builder
	sb.Grow(len(template) + 4)
	for i := 0; i < len(template); i++ {
		ch := template[i]
		if ch != '%' {
			sb.WriteByte(ch)
			continue
		}
		if strings.HasPrefix(template[i:], "%@") {
			sb.WriteString("%v")
			i++
			continue
		}
		if strings.HasPrefix(template[i:], "%%") {
			sb.WriteString("%%")
			i++
			continue
		}
		if n := directiveLen(template[i+1:]); n > 0 {
			sb.WriteString(template[i : i+1+n])
			i += n
			continue
		}
		sb.WriteString("%%")
	}
	return sb.String()
}

// directiveLen reports how many bytes after '%' form a fmt directive, or 0.
func directiveLen(s string) int {
	i := 0
	for i < len(s) && strings.IndexByte("+-#0", s[i]) >= 0 {
		i++
	}
	if i < len(s) && s[i] == '[' {
		end := strings.IndexByte(s[i:], ']')
		if end < 0 {
			return 0
		}
		i += end + 1
	}
	i = skipWidth(s, i)
	if i < len(s) && s[i] == '.' {
		i = skipWidth(s, i+1)
	}
	if i < len(s) && strings.IndexByte("vTtbcdoOqxXUeEfFgGsp", s[i]) >= 0 {
		return i + 1
	}
	return 0
}

func skipWidth(s string, i int) int {
	if i < len(s) && s[i] == '*' {
		return i + 1
	}
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return i
}
