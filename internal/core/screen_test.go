package core

import (
	"strings"
	"testing"
)

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, want 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != "      \n      \n      " {
		t.Errorf("String() = %q", got)
	}
}

func TestScreenPutClips(t *testing.T) {
	s := NewScreen(4, 2)
	s.Put(1, 1, '#', ColorGold)
	s.Put(-1, 0, 'x', ColorRed)
	s.Put(4, 0, 'x', ColorRed)
	s.Put(0, 2, 'x', ColorRed)

	if got := s.GetCell(1, 1); got.Rune != '#' || got.Color != ColorGold {
		t.Errorf("GetCell(1, 1) = %+v", got)
	}
	if strings.ContainsRune(s.String(), 'x') {
		t.Error("out-of-bounds Put() reached the buffer")
	}
	if got := s.Get(10, 10); got != ' ' {
		t.Errorf("Get() outside the screen = %q, want space", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 2)
	s.DrawText(7, 0, "score")
	s.DrawTextColored(0, 1, "██▒▒", ColorBlue)

	if got := s.Row(0); got != "       sco" {
		t.Errorf("Row(0) = %q, want clipped text", got)
	}
	if got := s.Row(1); got != "██▒▒      " {
		t.Errorf("Row(1) = %q", got)
	}
	if got := s.GetCell(3, 1).Color; got != ColorBlue {
		t.Errorf("color = %d, want %d", got, ColorBlue)
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "GAME")
	if got := s.Row(0); got != "   GAME    " {
		t.Errorf("Row(0) = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawBox(s.Bounds(), ColorMuted)

	want := "┌───┐\n│   │\n└───┘"
	if got := s.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if got := s.GetCell(0, 0).Color; got != ColorMuted {
		t.Errorf("corner color = %d, want %d", got, ColorMuted)
	}
}

func TestScreenFillRectAndClear(t *testing.T) {
	s := NewScreen(4, 3)
	s.FillRect(NewRect(1, 1, 2, 5), '#', ColorStone)

	if got := s.String(); got != "    \n ## \n ## " {
		t.Errorf("String() = %q", got)
	}

	s.Clear()
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Clear() left content behind")
	}
}

func TestScreenResizeKeepsContent(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd")
	s.DrawText(0, 1, "efgh")

	s.Resize(2, 3)
	if got := s.String(); got != "ab\nef\n  " {
		t.Errorf("after shrink String() = %q", got)
	}

	s.Resize(3, 1)
	if got := s.String(); got != "ab " {
		t.Errorf("after regrow String() = %q", got)
	}
}

func TestColorsListsEveryColor(t *testing.T) {
	all := Colors()
	if all[0] != ColorDefault {
		t.Errorf("Colors()[0] = %d, want ColorDefault", all[0])
	}
	if all[len(all)-1] != ColorHighlight {
		t.Errorf("last color = %d, want ColorHighlight", all[len(all)-1])
	}
}
