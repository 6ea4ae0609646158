package config

import (
	"fmt"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/formatter"
	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/handler/consolehandler"
	"github.com/overlog/overlog/handler/filehandler"
	"github.com/overlog/overlog/handler/zaphandler"
	"github.com/overlog/overlog/override"
	"github.com/overlog/overlog/selflog"
	"github.com/overlog/overlog/sink"
)

// Applier pushes a profile's overrides into a Manager and can replace
// them wholesale when the profile changes. Owners applied from config
// are tracked so a re-apply removes exactly what the previous profile
// registered, never overrides pushed by code.
type Applier struct {
	mu       sync.Mutex
	manager  *override.Manager
	fallback handler.Handler
	applied  []string
}

// NewApplier creates an applier targeting m. fallback is the terminal
// handler for configured sinks whose HandlerConfig is empty.
func NewApplier(m *override.Manager, fallback handler.Handler) *Applier {
	return &Applier{manager: m, fallback: fallback}
}

// Apply removes any previously applied overrides and pushes the
// profile's, in file order. The first error aborts mid-apply; already
// pushed overrides stay registered so the caller can inspect state.
func (a *Applier) Apply(p *Profile) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, owner := range a.applied {
		if err := a.manager.Remove(owner); err != nil {
			selflog.Printf("[config] removing previous owner %q: %v", owner, err)
		}
	}
	a.applied = a.applied[:0]

	for _, o := range p.Overrides {
		desc, err := a.descriptor(o)
		if err != nil {
			return fmt.Errorf("config: owner %q: %w", o.Owner, err)
		}
		if err := a.manager.Push(o.Owner, desc); err != nil {
			return fmt.Errorf("config: owner %q: %w", o.Owner, err)
		}
		a.applied = append(a.applied, o.Owner)
	}
	return nil
}

// Watch re-applies the profile whenever the viper-backed file changes.
// Invalid replacement profiles are reported to the diagnostic channel
// and the previous state stays active.
func (a *Applier) Watch(v *viper.Viper) {
	v.OnConfigChange(func(fsnotify.Event) {
		p, err := LoadFrom(v)
		if err != nil {
			selflog.Printf("[config] ignoring invalid profile update: %v", err)
			return
		}
		if err := a.Apply(p); err != nil {
			selflog.Printf("[config] re-apply failed: %v", err)
		}
	})
	v.WatchConfig()
}

// descriptor translates one override's configuration into the
// descriptor handed to the override core.
func (a *Applier) descriptor(o OverrideConfig) (override.Descriptor, error) {
	if o.Sink != "" {
		return override.Descriptor{Type: o.Sink, ChainPrevious: o.ChainPrevious}, nil
	}

	// No named type: build a decorated instance from the filter fields
	h, err := a.buildHandler(o.Handler)
	if err != nil {
		return override.Descriptor{}, err
	}

	var s sink.Sink = sink.NewBasic(h)
	if o.SampleEvery > 0 {
		s = sink.NewPrompt(s, o.SampleEvery, func(e *core.Entry) {
			selflog.Printf("[prompt] %s: %s", e.Level, e.Message)
		})
	}
	if len(o.Blacklist) > 0 {
		rules := make([]sink.Rule, 0, len(o.Blacklist))
		for _, rc := range o.Blacklist {
			rules = append(rules, sink.Rule{Op: sink.ParseMatchOp(rc.Op), Pattern: rc.Pattern})
		}
		s = sink.NewBlacklist(s, rules...)
	}
	if o.Level != "" {
		s = sink.NewLevelGate(s, core.ParseLevel(o.Level))
	}

	return override.Descriptor{Instance: s, ChainPrevious: o.ChainPrevious}, nil
}

// buildHandler constructs the configured terminal handler
func (a *Applier) buildHandler(hc HandlerConfig) (handler.Handler, error) {
	switch hc.Type {
	case "":
		return a.fallback, nil
	case "console":
		return consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
			Formatter: formatterFor(hc.Format),
		}), nil
	case "file":
		return filehandler.NewFileHandler(filehandler.FileConfig{
			Filename:  hc.Path,
			Formatter: formatterFor(hc.Format),
		})
	case "zap":
		return zaphandler.NewZapHandler(nil), nil
	default:
		return nil, fmt.Errorf("unknown handler type %q", hc.Type)
	}
}

func formatterFor(format string) formatter.Formatter {
	if format == "json" {
		return formatter.NewJSONFormatter(formatter.Config{})
	}
	return formatter.NewTextFormatter(formatter.Config{})
}
