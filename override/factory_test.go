package override

import (
	"strings"
	"testing"

	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/selflog"
	"github.com/overlog/overlog/sink"
)

func TestRegistry_CanonicalName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sink.Basic", "sink.Basic"},
		{"*sink.Basic", "sink.Basic"},
		{"  *sink.Blacklist ", "sink.Blacklist"},
		{"&sink.Prompt", "sink.Prompt"},
	}
	for _, tt := range tests {
		if got := CanonicalName(tt.in); got != tt.want {
			t.Errorf("CanonicalName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRegistry_LookupByEitherForm(t *testing.T) {
	r := NewRegistry()
	r.Register("*sink.Basic", Constructors{New: func() sink.Sink { return sink.NewBasic(nil) }})

	if _, ok := r.Lookup("sink.Basic"); !ok {
		t.Error("Lookup by plain name failed")
	}
	if _, ok := r.Lookup("*sink.Basic"); !ok {
		t.Error("Lookup by pointer-decorated name failed")
	}
}

func TestFactory_BuildWithHandlerPreferred(t *testing.T) {
	def := handler.NewMemoryHandler()
	r := NewRegistry()
	var gotHandler handler.Handler
	r.Register("test.Sink", Constructors{
		WithHandler: func(h handler.Handler) sink.Sink {
			gotHandler = h
			return sink.NewBasic(h)
		},
		New: func() sink.Sink {
			t.Error("New used although WithHandler exists")
			return sink.NewBasic(nil)
		},
	})

	f := NewFactory(r, def)
	built := f.Build(Descriptor{Type: "test.Sink"}, nil, false)
	if built == nil {
		t.Fatal("Build() = nil")
	}
	if gotHandler != handler.Handler(def) {
		t.Error("WithHandler was not seeded with the default handler")
	}
}

func TestFactory_BuildFallsBackToNew(t *testing.T) {
	r := NewRegistry()
	r.Register("test.NoArg", Constructors{
		New: func() sink.Sink { return sink.NewBasic(handler.NewMemoryHandler()) },
	})

	f := NewFactory(r, handler.NewMemoryHandler())
	if f.Build(Descriptor{Type: "test.NoArg"}, nil, false) == nil {
		t.Error("Build() = nil for no-arg constructible type")
	}
}

func TestFactory_Unconstructible(t *testing.T) {
	var diag strings.Builder
	selflog.Enable(selflog.Sync(&diag))
	defer selflog.Disable()

	r := NewRegistry()
	r.Register("test.Hollow", Constructors{}) // no constructors at all

	f := NewFactory(r, handler.NewMemoryHandler())
	if built := f.Build(Descriptor{Type: "test.Hollow"}, nil, false); built != nil {
		t.Errorf("Build() = %v, want nil", built)
	}
	if !strings.Contains(diag.String(), "no usable constructor") {
		t.Errorf("diagnostic channel missing unconstructible report: %q", diag.String())
	}
}

func TestFactory_UnknownTypeUnusable(t *testing.T) {
	f := NewFactory(NewRegistry(), handler.NewMemoryHandler())

	if f.Usable(Descriptor{Type: "test.Never"}) {
		t.Error("Usable() = true for unknown type")
	}
	if f.Usable(Descriptor{}) {
		t.Error("Usable() = true for empty descriptor")
	}
	if f.Build(Descriptor{Type: "test.Never"}, nil, false) != nil {
		t.Error("Build() != nil for unknown type")
	}
}

func TestFactory_ConstructorPanicRecovered(t *testing.T) {
	var diag strings.Builder
	selflog.Enable(selflog.Sync(&diag))
	defer selflog.Disable()

	r := NewRegistry()
	r.Register("test.Explosive", Constructors{
		New: func() sink.Sink { panic("third-party constructor bug") },
	})

	f := NewFactory(r, handler.NewMemoryHandler())
	if built := f.Build(Descriptor{Type: "test.Explosive"}, nil, false); built != nil {
		t.Errorf("Build() = %v after panic, want nil", built)
	}
	if !strings.Contains(diag.String(), "panicked") {
		t.Errorf("diagnostic channel missing panic report: %q", diag.String())
	}
}

func TestFactory_InstancePassThrough(t *testing.T) {
	r := BuiltinRegistry()
	f := NewFactory(r, handler.NewMemoryHandler())

	instance := sink.NewBasic(handler.NewMemoryHandler())
	built := f.Build(Descriptor{Instance: instance}, nil, false)
	if built != sink.Sink(instance) {
		t.Error("Build() did not return the pre-built instance")
	}
}

// foreignSink is a sink type never registered as shareable.
type foreignSink struct{ *sink.Basic }

func TestFactory_InstanceCategoryRejected(t *testing.T) {
	var diag strings.Builder
	selflog.Enable(selflog.Sync(&diag))
	defer selflog.Disable()

	f := NewFactory(BuiltinRegistry(), handler.NewMemoryHandler())
	d := Descriptor{Instance: &foreignSink{sink.NewBasic(nil)}}

	if f.Usable(d) {
		t.Error("Usable() = true for non-shareable instance type")
	}
	if f.Build(d, nil, false) != nil {
		t.Error("Build() != nil for non-shareable instance type")
	}
	if !strings.Contains(diag.String(), "not registered as shareable") {
		t.Errorf("diagnostic channel missing shareable warning: %q", diag.String())
	}
}

func TestFactory_DecoratorInstancesShareable(t *testing.T) {
	f := NewFactory(BuiltinRegistry(), handler.NewMemoryHandler())

	base := sink.NewBasic(handler.NewMemoryHandler())
	for _, s := range []sink.Sink{
		sink.NewLevelGate(base, 0),
		sink.NewBlacklist(base),
		sink.NewPrompt(base, 2, nil),
	} {
		if !f.Usable(Descriptor{Instance: s}) {
			t.Errorf("Usable() = false for %s", InstanceTypeName(s))
		}
	}
}

func TestFactory_ChainPrevious(t *testing.T) {
	prevHandler := handler.NewMemoryHandler()
	prev := sink.NewBasic(prevHandler)

	r := BuiltinRegistry()
	f := NewFactory(r, handler.NewMemoryHandler())

	built := f.Build(Descriptor{Type: "sink.Basic", ChainPrevious: true}, prev, true)
	if built == nil {
		t.Fatal("Build() = nil")
	}
	if built.Handler() != handler.Handler(prevHandler) {
		t.Error("chained sink does not use the previous sink's handler")
	}
}

func TestFactory_ChainWithoutPreviousUsesDefault(t *testing.T) {
	def := handler.NewMemoryHandler()
	f := NewFactory(BuiltinRegistry(), def)

	built := f.Build(Descriptor{Type: "sink.Basic"}, nil, true)
	if built == nil {
		t.Fatal("Build() = nil")
	}
	if built.Handler() != handler.Handler(def) {
		t.Error("chained sink without a neighbor does not use the default handler")
	}
}
