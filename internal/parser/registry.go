package parser

import (
	"fmt"

	"github.com/ADVALAIN596/ToolPathViz/internal/logger"
	"github.com/ADVALAIN596/ToolPathViz/internal/toolpath"
)

// Registry owns the set of known parsers and routes load requests to the
// one whose filter matches.
//
// A Registry is immutable after NewRegistry returns, so SupportedFormats and
// Load are safe for concurrent use without locking, provided each concurrent
// Load targets its own Toolpath.
type Registry struct {
	parsers  []Parser
	filters  []string
	byFilter map[string]Parser
	logger   *logger.Logger
	config   *RegistryConfig
}

// NewRegistry builds a registry holding parsers in the given order. The order
// defines the SupportedFormats order and, when filters collide under
// DuplicateFirstWins, dispatch priority: the first registered parser wins.
func NewRegistry(config *RegistryConfig, log *logger.Logger, parsers ...Parser) (*Registry, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.DuplicatePolicy.Validate(); err != nil {
		return nil, err
	}

	r := &Registry{
		parsers:  make([]Parser, 0, len(parsers)),
		filters:  make([]string, 0, len(parsers)),
		byFilter: make(map[string]Parser, len(parsers)),
		logger:   log.With("component", "registry"),
		config:   config,
	}

	firstIndex := make(map[string]int, len(parsers))
	for i, p := range parsers {
		if p == nil {
			return nil, fmt.Errorf("parser at position %d is nil", i)
		}

		filter := p.Filter()
		if first, exists := firstIndex[filter]; exists {
			if r.config.DuplicatePolicy == DuplicateStrict {
				return nil, &DuplicateFilterError{Filter: filter, First: first, Second: i}
			}
			r.logger.WithFields(map[string]any{
				"filter":   filter,
				"position": i,
				"first":    first,
			}).Warn("Parser shadowed by an earlier registration")
			r.parsers = append(r.parsers, p)
			continue
		}

		firstIndex[filter] = i
		r.parsers = append(r.parsers, p)
		r.filters = append(r.filters, filter)
		r.byFilter[filter] = p
	}

	return r, nil
}

// SupportedFormats returns the filter of every registered parser in
// registration order, for use as the option set of a file-selection dialog.
// A parser shadowed under DuplicateFirstWins adds no entry of its own, since
// its filter is already listed for the parser that serves it. The returned
// slice is a copy.
func (r *Registry) SupportedFormats() []string {
	formats := make([]string, len(r.filters))
	copy(formats, r.filters)
	return formats
}

// Len returns the number of registered parsers, shadowed duplicates included.
func (r *Registry) Len() int {
	return len(r.parsers)
}

// Load decodes file into tp using the parser whose Filter equals filter
// exactly. No normalisation, content sniffing or fallback is attempted: an
// unknown filter fails with *UnsupportedFormatError and tp is not touched.
// Otherwise the parser's own result is returned, wrapped in *LoadError.
//
// A nil error is the only success signal; on failure tp must not be trusted.
func (r *Registry) Load(file File, filter string, tp *toolpath.Toolpath) error {
	p, ok := r.byFilter[filter]
	log := r.logger.WithFields(map[string]any{"filter": filter, "path": file.Path})
	if !ok {
		err := &LoadError{Filter: filter, Path: file.Path, Err: &UnsupportedFormatError{Filter: filter}}
		log.Warn("No parser registered for filter")
		return err
	}

	log.Debug("Dispatching load")
	if err := p.Load(file, tp); err != nil {
		wrapped := &LoadError{Filter: filter, Path: file.Path, Err: err}
		log.WithFields(map[string]any{"error": err.Error()}).Warn("Parser failed")
		return wrapped
	}
	return nil
}

// FilterForPath returns the filter of the first registered parser whose
// extension matches path. It is meant for pre-selecting an option in a UI;
// Load never consults it.
func (r *Registry) FilterForPath(path string) (string, bool) {
	for _, p := range r.parsers {
		if MatchExtension(p.Extension(), path) {
			return p.Filter(), true
		}
	}
	return "", false
}
