package report

import (
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/data-explain/pkg/models/domain"
)

// Constructor creates a report builder for one format.
type Constructor func(opts Options) Builder

// Format describes a registered output format.
type Format struct {
	Name        string
	ContentType string
	Extension   string
	New         Constructor
}

// Registry manages the available output formats.
type Registry interface {
	// Register adds a new format
	Register(format Format) error
	// Lookup returns the format registered under name
	Lookup(name string) (Format, error)
	// Create instantiates a report builder for the named format
	Create(name string, opts Options) (Builder, error)
	// Formats returns the registered format names, sorted
	Formats() []string
}

type registry struct {
	mu      sync.RWMutex
	formats map[string]Format
}

// NewRegistry creates an empty format registry
func NewRegistry() Registry {
	return &registry{
		formats: make(map[string]Format),
	}
}

func (r *registry) Register(format Format) error {
	if format.Name == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if format.New == nil {
		return fmt.Errorf("constructor cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formats[format.Name]; exists {
		return fmt.Errorf("format %q is already registered", format.Name)
	}

	r.formats[format.Name] = format
	return nil
}

func (r *registry) Lookup(name string) (Format, error) {
	r.mu.RLock()
	format, exists := r.formats[name]
	r.mu.RUnlock()

	if !exists {
		return Format{}, domain.NewError(domain.ErrUnknownSelector, "format %q is not registered", name)
	}
	return format, nil
}

func (r *registry) Create(name string, opts Options) (Builder, error) {
	format, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	return format.New(opts.Normalize()), nil
}

func (r *registry) Formats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.formats))
	for name := range r.formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
