package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/burtbyproxy/gridtactics/internal/game"
)

func testUnit() game.UnitView {
	return game.UnitView{
		ID:   1,
		Char: game.CharConfig{Name: "dude-1", Avatar: "dude-avatar.png", HP: game.HP{Left: 20, Total: 40}},
	}
}

func TestPanelOpenClose(t *testing.T) {
	p := NewPanel(nil)
	if p.IsOpen() || p.Lines() != nil {
		t.Fatal("expected a closed, empty panel")
	}
	p.Open(testUnit())
	if !strings.Contains(p.Text(), "HP 20/40") {
		t.Fatalf("expected hp line, got %q", p.Text())
	}
	p.Close()
	if p.IsOpen() {
		t.Fatal("expected panel closed")
	}
}

func TestPanelCopy(t *testing.T) {
	var copied string
	orig := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = orig }()

	p := NewPanel(nil)
	if err := p.CopyToClipboard(); !errors.Is(err, ErrPanelClosed) {
		t.Fatalf("expected ErrPanelClosed, got %v", err)
	}
	p.Open(testUnit())
	if err := p.CopyToClipboard(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(copied, "dude-1\n") {
		t.Fatalf("expected panel text on clipboard, got %q", copied)
	}

	boom := errors.New("no clipboard")
	writeClipboard = func(string) error { return boom }
	if err := p.CopyToClipboard(); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped clipboard error, got %v", err)
	}
}

func TestHPColor(t *testing.T) {
	cases := []struct {
		hp   game.HP
		want uint8
	}{
		{game.HP{Left: 10, Total: 30}, ColorLightRed},
		{game.HP{Left: 20, Total: 30}, ColorYellow},
		{game.HP{Left: 30, Total: 30}, ColorLightGreen},
		{game.HP{}, ColorLightGray},
	}
	for _, c := range cases {
		if got := hpColor(c.hp); got != c.want {
			t.Fatalf("%+v: expected %d, got %d", c.hp, c.want, got)
		}
	}
}
