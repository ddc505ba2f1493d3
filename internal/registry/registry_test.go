package registry

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/brickgame/internal/core"
)

type stubGame struct {
	deps Deps
}

func (s *stubGame) ID() string                 { return "stub" }
func (s *stubGame) Title() string              { return "Stub" }
func (s *stubGame) Step(core.Input) core.Frame { return core.Frame{} }
func (s *stubGame) Cadence() time.Duration     { return time.Millisecond }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", "Stub", func(d Deps) Game {
		return &stubGame{deps: d}
	})

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub", Deps{})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stub := g.(*stubGame)
	if stub.deps.Scores == nil || stub.deps.Rand == nil || stub.deps.Now == nil {
		t.Error("Create should fill missing collaborators with defaults")
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz_stub" {
			found = info.Title == "Stub"
		}
	}
	if !found {
		t.Error("List should report the registered title")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("does-not-exist", Deps{})
	if err == nil {
		t.Fatal("expected error for unknown game")
	}
	if !strings.Contains(err.Error(), "does-not-exist") {
		t.Errorf("error should name the game, got %v", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", "Dup", func(Deps) Game { return &stubGame{} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate registration should panic")
		}
	}()
	Register("zz_dup", "Dup", func(Deps) Game { return &stubGame{} })
}
