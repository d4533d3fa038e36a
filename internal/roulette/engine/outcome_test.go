package engine

import (
	"testing"

	"gonum.org/v1/gonum/stat/distuv"
)

func TestParseOutcome(t *testing.T) {
	tests := []struct {
		in      string
		want    Outcome
		wantErr bool
	}{
		{"0", 0, false},
		{"00", DoubleZero, false},
		{"17", 17, false},
		{"36", 36, false},
		{"37", 0, true},
		{"-1", 0, true},
		{"red", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseOutcome(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseOutcome(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseOutcome(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if got := Outcome(0).String(); got != "0" {
		t.Errorf("Outcome(0).String() = %q", got)
	}
	if got := DoubleZero.String(); got != "00" {
		t.Errorf("DoubleZero.String() = %q", got)
	}
	if got := Outcome(36).String(); got != "36" {
		t.Errorf("Outcome(36).String() = %q", got)
	}
}

func TestOutcomeProperties(t *testing.T) {
	tests := []struct {
		o      Outcome
		color  string
		even   bool
		low    bool
		dozen  int
		column int
	}{
		{0, "green", false, false, 0, 0},
		{DoubleZero, "green", false, false, 0, 0},
		{1, "red", false, true, 1, 1},
		{2, "black", true, true, 1, 2},
		{3, "red", false, true, 1, 3},
		{10, "black", true, true, 1, 1},
		{12, "red", true, true, 1, 3},
		{13, "black", false, true, 2, 1},
		{17, "black", false, true, 2, 2},
		{18, "red", true, true, 2, 3},
		{19, "red", false, false, 2, 1},
		{24, "black", true, false, 2, 3},
		{25, "red", false, false, 3, 1},
		{29, "black", false, false, 3, 2},
		{36, "red", true, false, 3, 3},
	}
	for _, tt := range tests {
		if got := tt.o.Color(); got != tt.color {
			t.Errorf("Outcome(%s).Color() = %q, want %q", tt.o, got, tt.color)
		}
		if got := tt.o.IsEven(); got != tt.even {
			t.Errorf("Outcome(%s).IsEven() = %v, want %v", tt.o, got, tt.even)
		}
		if got := tt.o.IsLow(); got != tt.low {
			t.Errorf("Outcome(%s).IsLow() = %v, want %v", tt.o, got, tt.low)
		}
		if got := tt.o.Dozen(); got != tt.dozen {
			t.Errorf("Outcome(%s).Dozen() = %d, want %d", tt.o, got, tt.dozen)
		}
		if got := tt.o.Column(); got != tt.column {
			t.Errorf("Outcome(%s).Column() = %d, want %d", tt.o, got, tt.column)
		}
	}
}

func TestRedPocketCount(t *testing.T) {
	// layout padrão: 18 vermelhos, 18 pretos, 2 verdes
	reds, blacks, greens := 0, 0, 0
	for i := Outcome(0); i < WheelSize; i++ {
		switch i.Color() {
		case "red":
			reds++
		case "black":
			blacks++
		case "green":
			greens++
		}
	}
	if reds != 18 || blacks != 18 || greens != 2 {
		t.Fatalf("color counts = %d red / %d black / %d green, want 18/18/2", reds, blacks, greens)
	}
}

func TestWheelSeededDeterminism(t *testing.T) {
	a := NewWheelSeeded(42)
	b := NewWheelSeeded(42)
	for i := 0; i < 100; i++ {
		if da, db := a.Draw(), b.Draw(); da != db {
			t.Fatalf("draw %d: %s != %s for identical seeds", i, da, db)
		}
	}
}

func TestWheelDrawRange(t *testing.T) {
	w := NewWheel()
	for i := 0; i < 1000; i++ {
		o := w.Draw()
		if o < 0 || o >= WheelSize {
			t.Fatalf("draw out of range: %d", o)
		}
	}
}

// Qui-quadrado contra a distribuição uniforme dos 38 bolsos.
// Semente fixa para o teste ser estável.
func TestWheelUniformity(t *testing.T) {
	const draws = 38000
	w := NewWheelSeeded(7)

	counts := make([]float64, WheelSize)
	for i := 0; i < draws; i++ {
		counts[w.Draw()]++
	}

	expected := float64(draws) / WheelSize
	chi2 := 0.0
	for _, c := range counts {
		d := c - expected
		chi2 += d * d / expected
	}

	dist := distuv.ChiSquared{K: WheelSize - 1}
	if limit := dist.Quantile(0.999); chi2 > limit {
		t.Fatalf("chi2 = %.2f exceeds %.2f (p=0.001, k=%d)", chi2, limit, WheelSize-1)
	}
}
