package language

import (
	"path/filepath"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/urlscout/urlscout-go/internal/common/cache"
)

// detectCacheSize bounds the path-detection memo; scans commonly repeat
// a handful of base names (index.js, main.go, ...) thousands of times.
const detectCacheSize = 4096

// Registry maps language names, file extensions, and well-known
// filenames to grammar configurations. Grammars are materialized lazily
// and cached per registry; a grammar that fails to load is logged once
// and treated as absent so one broken grammar cannot abort a scan.
type Registry struct {
	logger *zap.Logger

	mu       sync.RWMutex
	order    []string
	byName   map[string]*Config
	grammars map[string]*sitter.Language
	failed   map[string]struct{}

	detect *cache.Cache
}

// NewRegistry creates an empty registry.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger:   logger,
		byName:   make(map[string]*Config),
		grammars: make(map[string]*sitter.Language),
		failed:   make(map[string]struct{}),
		detect:   cache.New(detectCacheSize),
	}
}

// AddLanguage registers a language configuration. Names are
// case-insensitive; registering an existing name replaces its
// configuration in place, a new name is appended.
func (r *Registry) AddLanguage(cfg Config) {
	key := strings.ToLower(cfg.Name)

	r.mu.Lock()
	if _, exists := r.byName[key]; !exists {
		r.order = append(r.order, key)
	}
	r.byName[key] = &cfg
	// A replaced config may change grammar or extensions; drop stale
	// caches for it.
	delete(r.grammars, key)
	delete(r.failed, key)
	r.mu.Unlock()

	r.detect.Clear()
}

// Lookup returns the configuration for a language name, or nil.
func (r *Registry) Lookup(name string) *Config {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName[strings.ToLower(name)]
}

// GetLanguage resolves a language name or a leading-dot extension to its
// grammar, loading and caching it on first use. Returns nil when the
// language is unregistered or its grammar failed to load.
func (r *Registry) GetLanguage(extensionOrName string) *sitter.Language {
	name := strings.ToLower(extensionOrName)
	if strings.HasPrefix(name, ".") {
		name = r.detectByExtension(name)
		if name == Unknown {
			return nil
		}
	}
	return r.loadGrammar(name)
}

func (r *Registry) loadGrammar(name string) *sitter.Language {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lang, ok := r.grammars[name]; ok {
		return lang
	}
	if _, ok := r.failed[name]; ok {
		return nil
	}
	cfg, ok := r.byName[name]
	if !ok {
		return nil
	}

	lang := r.materialize(cfg)
	if lang == nil {
		r.failed[name] = struct{}{}
		r.logger.Warn("grammar unavailable, files will use fallback extraction",
			zap.String("language", name))
		return nil
	}

	r.grammars[name] = lang
	return lang
}

// materialize invokes the grammar source, converting a panic into an
// absent grammar.
func (r *Registry) materialize(cfg *Config) (lang *sitter.Language) {
	if cfg.Grammar == nil {
		return nil
	}
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Warn("grammar load panicked",
				zap.String("language", cfg.Name),
				zap.Any("panic", rec))
			lang = nil
		}
	}()
	return cfg.Grammar()
}

// DetectLanguageFromPath resolves a file path to a language id by exact
// filename match first, then by the longest registered extension match,
// both case-insensitive. Empty, extensionless, and unregistered paths
// resolve to Unknown.
func (r *Registry) DetectLanguageFromPath(path string) string {
	if path == "" {
		return Unknown
	}
	base := strings.ToLower(filepath.Base(path))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return Unknown
	}

	if lang, ok := r.detect.Get(base); ok {
		return lang
	}

	lang := r.detectBase(base)
	r.detect.Set(base, lang)
	return lang
}

func (r *Registry) detectBase(base string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, name := range r.order {
		for _, fn := range r.byName[name].Filenames {
			if strings.ToLower(fn) == base {
				return name
			}
		}
	}

	best := Unknown
	bestLen := 0
	for _, name := range r.order {
		for _, ext := range r.byName[name].Extensions {
			ext = strings.ToLower(ext)
			if len(ext) > bestLen && strings.HasSuffix(base, ext) {
				best = name
				bestLen = len(ext)
			}
		}
	}
	return best
}

func (r *Registry) detectByExtension(ext string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	best := Unknown
	bestLen := 0
	for _, name := range r.order {
		for _, e := range r.byName[name].Extensions {
			e = strings.ToLower(e)
			if e == ext {
				return name
			}
			if len(e) > bestLen && strings.HasSuffix(ext, e) {
				best = name
				bestLen = len(e)
			}
		}
	}
	return best
}

// SupportedLanguages returns the registered language names in
// registration order.
func (r *Registry) SupportedLanguages() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// SupportedLanguageDisplayNames returns display names in registration
// order, falling back to the language name.
func (r *Registry) SupportedLanguageDisplayNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.order))
	for _, name := range r.order {
		names = append(names, r.byName[name].Display())
	}
	return names
}
