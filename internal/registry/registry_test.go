package registry

import (
	"testing"

	"github.com/vovakirdan/tui-blockblast/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func stub(id string) Factory {
	return func() Game { return &stubGame{id: id} }
}

func TestRegisterAndCreate(t *testing.T) {
	Register(GameInfo{ID: "zz_stub", Title: "Stub", Description: "a stub"}, stub("zz_stub"))

	if !Exists("zz_stub") {
		t.Fatal("Exists() = false after Register")
	}
	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q, want %q", g.ID(), "zz_stub")
	}

	info, ok := Lookup("zz_stub")
	if !ok || info.Title != "Stub" || info.Description != "a stub" {
		t.Errorf("Lookup() = %+v, %v", info, ok)
	}

	found := false
	for _, info := range List() {
		found = found || info.ID == "zz_stub"
	}
	if !found {
		t.Error("List() is missing the stub")
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
}

func TestRegisterDefaultsTitle(t *testing.T) {
	Register(GameInfo{ID: "zz_untitled"}, stub("zz_untitled"))
	if info, _ := Lookup("zz_untitled"); info.Title != "zz_untitled" {
		t.Errorf("Title = %q, want the ID", info.Title)
	}
}

func TestRegisterPanics(t *testing.T) {
	Register(GameInfo{ID: "zz_dup"}, stub("zz_dup"))

	tests := []struct {
		name string
		info GameInfo
		f    Factory
	}{
		{"duplicate", GameInfo{ID: "zz_dup"}, stub("zz_dup")},
		{"empty id", GameInfo{}, stub("")},
		{"nil factory", GameInfo{ID: "zz_nil"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("Register should panic")
				}
			}()
			Register(tt.info, tt.f)
		})
	}
}
