package backend

import (
	"io"
	"os"
	"sort"
	"sync"

	"github.com/accntech/sharprinter/pkg/errors"
	"github.com/accntech/sharprinter/pkg/logging"
	"github.com/accntech/sharprinter/pkg/types"
	"github.com/accntech/sharprinter/pkg/ui"
	"github.com/rs/zerolog"
)

// Options configures a backend created through New.
type Options struct {
	// Output is where the console backend writes, stdout when nil.
	Output io.Writer
	// Format selects framed (FormatTerminal) or raw output for the console.
	// FormatAuto detects it from Output.
	Format ui.Format
	// PageWidth is the page grid used for placeholder lines.
	PageWidth int
	Logger    *zerolog.Logger
}

func (o Options) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

func (o Options) logger(component string) zerolog.Logger {
	if o.Logger != nil {
		return o.Logger.With().Str("backend", component).Logger()
	}
	return logging.GetLogger("backend." + component)
}

// Factory creates a backend from options.
type Factory func(opts Options) (types.Backend, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{
		"console":  func(opts Options) (types.Backend, error) { return NewConsole(opts), nil },
		"file":     func(opts Options) (types.Backend, error) { return NewFile(opts), nil },
		"recorder": func(Options) (types.Backend, error) { return NewRecorder(), nil },
	}
)

// Register adds a backend factory under name.
func Register(name string, factory Factory) error {
	if name == "" {
		return errors.New(errors.ErrInvalidInput, "backend name cannot be empty")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[name]; exists {
		return errors.Newf(errors.ErrInvalidInput, "backend '%s' is already registered", name)
	}
	factories[name] = factory
	return nil
}

// New creates the backend registered under name.
func New(name string, opts Options) (types.Backend, error) {
	mu.RLock()
	factory, ok := factories[name]
	mu.RUnlock()

	if !ok {
		return nil, errors.Newf(errors.ErrBackendUnknown, "unknown backend '%s'", name).
			WithDetail("backend", name).
			WithDetail("available", Names())
	}
	return factory(opts)
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
