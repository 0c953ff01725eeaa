package snap

import (
	"errors"
	"testing"
)

func TestCenterFor(t *testing.T) {
	elem := Size{Width: 60, Height: 40}
	screen := Size{Width: 400, Height: 800}
	in := Insets{Top: 10, Left: 20, Bottom: 30, Right: 40}

	tests := []struct {
		c    Corner
		want Point
	}{
		{UpperLeft, Point{30 + 40, 20 + 10}},
		{UpperRight, Point{400 - 30 - 20, 20 + 10}},
		{LowerLeft, Point{30 + 20, 800 - 20 - 30}},
		{LowerRight, Point{400 - 30 - 40, 800 - 20 - 30}},
	}

	for _, tt := range tests {
		if got := CenterFor(tt.c, elem, screen, in); got != tt.want {
			t.Fatalf("CenterFor(%v) = %+v; want %+v", tt.c, got, tt.want)
		}
	}
}

func TestCenterForEdges(t *testing.T) {
	elem := Size{Width: 60, Height: 40}
	screen := Size{Width: 400, Height: 800}
	in := Insets{Top: 10, Left: 20, Bottom: 30, Right: 40}

	tests := []struct {
		c    Corner
		want Point
	}{
		{UpperLeft, Point{30 + 20, 20 + 10}},
		{UpperRight, Point{400 - 30 - 40, 20 + 10}},
		{LowerLeft, Point{30 + 20, 800 - 20 - 30}},
		{LowerRight, Point{400 - 30 - 40, 800 - 20 - 30}},
	}

	for _, tt := range tests {
		if got := CenterForEdges(tt.c, elem, screen, in); got != tt.want {
			t.Fatalf("CenterForEdges(%v) = %+v; want %+v", tt.c, got, tt.want)
		}
	}
}

func TestCenterForUniformInsetsAgree(t *testing.T) {
	elem := Size{Width: 72, Height: 72}
	screen := Size{Width: 960, Height: 640}
	in := UniformInsets(16)
	for _, c := range Corners() {
		a := CenterFor(c, elem, screen, in)
		b := CenterForEdges(c, elem, screen, in)
		if a != b {
			t.Fatalf("%v: %+v vs %+v with uniform insets", c, a, b)
		}
	}
}

func TestCenterKeepsElementOnScreen(t *testing.T) {
	screens := []Size{{320, 480}, {960, 640}, {100, 100}}
	elems := []Size{{0, 0}, {72, 72}, {100, 30}}
	insets := []Insets{{}, UniformInsets(16), Insets{Top: 44, Bottom: 34}.Grow(16), {Top: 3, Left: 7, Bottom: 11, Right: 0}}

	for _, screen := range screens {
		for _, elem := range elems {
			for _, in := range insets {
				if elem.Width+in.Left+in.Right > screen.Width || elem.Height+in.Top+in.Bottom > screen.Height {
					continue
				}
				for _, c := range Corners() {
					for _, p := range []Point{CenterFor(c, elem, screen, in), CenterForEdges(c, elem, screen, in)} {
						if p.X-elem.Width/2 < 0 || p.X+elem.Width/2 > screen.Width ||
							p.Y-elem.Height/2 < 0 || p.Y+elem.Height/2 > screen.Height {
							t.Fatalf("%v on %+v elem %+v insets %+v: center %+v leaves the screen", c, screen, elem, in, p)
						}
					}
				}
			}
		}
	}
}

func TestCenterMatchesQuadrant(t *testing.T) {
	elem := Size{Width: 72, Height: 72}
	screen := Size{Width: 960, Height: 640}
	for _, c := range Corners() {
		p := CenterFor(c, elem, screen, UniformInsets(16))
		if got := ResolveFromPoint(p, screen); got != c {
			t.Fatalf("center of %v resolves to %v", c, got)
		}
	}
}

func TestInsetsGrow(t *testing.T) {
	got := Insets{Top: 44, Left: 0, Bottom: 34, Right: 2}.Grow(16)
	want := Insets{Top: 60, Left: 16, Bottom: 50, Right: 18}
	if got != want {
		t.Fatalf("Grow = %+v; want %+v", got, want)
	}
}

func TestParseCorner(t *testing.T) {
	tests := []struct {
		in   string
		want Corner
	}{
		{"upper-left", UpperLeft},
		{"UpperRight", UpperRight},
		{" lower_left ", LowerLeft},
		{"BR", LowerRight},
		{"top right", UpperRight},
	}
	for _, tt := range tests {
		got, err := ParseCorner(tt.in)
		if err != nil {
			t.Fatalf("ParseCorner(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseCorner(%q) = %v; want %v", tt.in, got, tt.want)
		}
	}

	if _, err := ParseCorner("middle"); !errors.Is(err, ErrUnknownCorner) {
		t.Fatalf("expected ErrUnknownCorner, got %v", err)
	}
}

func TestCornerText(t *testing.T) {
	var c Corner
	if err := c.UnmarshalText([]byte("lower-right")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if c != LowerRight {
		t.Fatalf("got %v", c)
	}
	b, err := UpperLeft.MarshalText()
	if err != nil || string(b) != "upper-left" {
		t.Fatalf("marshal: %q %v", b, err)
	}
	if _, err := Corner(7).MarshalText(); err == nil {
		t.Fatalf("expected error for invalid corner")
	}
}
