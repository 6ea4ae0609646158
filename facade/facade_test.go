package facade

import (
	"errors"
	"os"
	"testing"

	"github.com/overlog/overlog/core"
	"github.com/overlog/overlog/handler"
	"github.com/overlog/overlog/sink"
)

func TestNew_NilHandler(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, ErrNilDefaultHandler) {
		t.Fatalf("New(nil) error = %v, want ErrNilDefaultHandler", err)
	}
}

func TestFacade_CurrentNeverNil(t *testing.T) {
	mem := handler.NewMemoryHandler()
	f, err := New(mem)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if f.Current() == nil {
		t.Fatal("Current() = nil before any publish")
	}
	if f.Current() != f.DefaultSink() {
		t.Error("Current() != DefaultSink() before any publish")
	}
}

func TestFacade_SetCurrentAndReset(t *testing.T) {
	mem := handler.NewMemoryHandler()
	f, _ := New(mem)

	override := sink.NewBasic(handler.NewMemoryHandler())
	f.SetCurrent(override)
	if f.Current() != sink.Sink(override) {
		t.Error("Current() did not return the published sink")
	}

	f.Reset()
	if f.Current() != f.DefaultSink() {
		t.Error("Reset() did not restore the default sink")
	}
}

func TestFacade_SetCurrentNilPanics(t *testing.T) {
	f, _ := New(handler.NewMemoryHandler())
	defer func() {
		if recover() == nil {
			t.Error("SetCurrent(nil) did not panic")
		}
	}()
	f.SetCurrent(nil)
}

func TestFacade_LogRoutesThroughCurrent(t *testing.T) {
	defaultMem := handler.NewMemoryHandler()
	f, _ := New(defaultMem)

	f.Log(core.InfoLevel, "boot", "starting", core.Int("attempt", 1))

	got := defaultMem.Entries()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Tag != "boot" || got[0].Message != "starting" {
		t.Errorf("entry = %+v", got[0])
	}

	// Swap in an override sink; subsequent logs go there
	overrideMem := handler.NewMemoryHandler()
	f.SetCurrent(sink.NewBasic(overrideMem))
	f.Info("redirected")

	if defaultMem.Len() != 1 {
		t.Errorf("default handler got %d entries, want 1", defaultMem.Len())
	}
	if overrideMem.Len() != 1 {
		t.Errorf("override handler got %d entries, want 1", overrideMem.Len())
	}
}

func TestFacade_LogError(t *testing.T) {
	mem := handler.NewMemoryHandler()
	f, _ := New(mem)

	f.LogError(errors.New("bad state"), core.String("owner", "ui"))

	got := mem.Entries()
	if len(got) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(got))
	}
	if got[0].Level != core.ErrorLevel {
		t.Errorf("Level = %v", got[0].Level)
	}
}

func TestFacade_LevelHelpers(t *testing.T) {
	mem := handler.NewMemoryHandler()
	f, _ := New(mem)

	f.Debug("d")
	f.Info("i")
	f.Warn("w")
	f.Error("e")
	f.Infof("count %d", 3)

	got := mem.Entries()
	if len(got) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(got))
	}
	wantLevels := []core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel, core.InfoLevel}
	for i, want := range wantLevels {
		if got[i].Level != want {
			t.Errorf("entry %d level = %v, want %v", i, got[i].Level, want)
		}
	}
	if got[4].Message != "count 3" {
		t.Errorf("formatted message = %q", got[4].Message)
	}
}

func TestFacade_Fatal(t *testing.T) {
	mem := handler.NewMemoryHandler()
	f, _ := New(mem)

	exitCode := -1
	osExit = func(code int) { exitCode = code }
	defer func() { osExit = os.Exit }()

	f.Fatal("goodbye")
	if exitCode != 1 {
		t.Errorf("exit code = %d, want 1", exitCode)
	}
	if mem.Len() != 1 {
		t.Errorf("fatal entry not logged")
	}
}

func TestDefaultFacade(t *testing.T) {
	old := Default()
	defer SetDefault(old)

	mem := handler.NewMemoryHandler()
	f, _ := New(mem)
	SetDefault(f)

	Info("through the package default")
	if mem.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", mem.Len())
	}
}
