package engine

import "testing"

func mustBet(t *testing.T, betType, betValue string) BetSpec {
	t.Helper()
	spec, err := ParseBet("user-1", 1000, betType, betValue)
	if err != nil {
		t.Fatalf("ParseBet(%q, %q): %v", betType, betValue, err)
	}
	return spec
}

func TestRuleMultipliers(t *testing.T) {
	want := map[BetFamily]int64{
		FamilyStraight: 35,
		FamilySplit:    17,
		FamilyStreet:   11,
		FamilyCorner:   8,
		FamilyLine:     5,
		FamilyDozen:    2,
		FamilyColumn:   2,
		FamilyColor:    1,
		FamilyParity:   1,
		FamilyHighLow:  1,
	}
	if len(Rules) != len(want) {
		t.Fatalf("rule table has %d families, want %d", len(Rules), len(want))
	}
	for family, mult := range want {
		rule, ok := Rules[family]
		if !ok {
			t.Errorf("family %q missing from rule table", family)
			continue
		}
		if rule.Multiplier != mult {
			t.Errorf("family %q multiplier = %d, want %d", family, rule.Multiplier, mult)
		}
	}
}

func TestWinningSets(t *testing.T) {
	tests := []struct {
		name     string
		betType  string
		betValue string
		outcome  Outcome
		won      bool
	}{
		{"straight hit", "straight", "17", 17, true},
		{"straight miss", "straight", "17", 18, false},
		{"straight zero hit", "straight", "0", 0, true},
		{"straight double zero hit", "straight", "00", DoubleZero, true},
		{"straight zero vs double zero", "straight", "0", DoubleZero, false},

		{"split hit", "split", "8-9", 9, true},
		{"split miss", "split", "8-9", 7, false},
		{"street hit", "street", "7-8-9", 8, true},
		{"street miss", "street", "7-8-9", 10, false},
		{"corner hit", "corner", "8-9-11-12", 11, true},
		{"corner miss", "corner", "8-9-11-12", 10, false},
		{"line hit", "line", "7-8-9-10-11-12", 12, true},
		{"line miss", "line", "7-8-9-10-11-12", 13, false},

		{"dozen first hit", "dozen", "1st12", 12, true},
		{"dozen first miss", "dozen", "1st12", 13, false},
		{"dozen second hit", "dozen", "2nd12", 13, true},
		{"dozen third hit", "dozen", "3rd12", 36, true},

		{"column one hit", "column", "col1", 4, true},
		{"column two hit", "column", "col2", 5, true},
		{"column three hit", "column", "col3", 6, true},
		{"column miss", "column", "col1", 5, false},

		{"red hit", "color", "red", 17, false},
		{"black hit", "color", "black", 17, true},
		{"red on red", "color", "red", 18, true},

		{"even hit", "parity", "even", 4, true},
		{"even miss", "parity", "even", 5, false},
		{"odd hit", "parity", "odd", 5, true},

		{"low hit", "highlow", "low", 18, true},
		{"low miss", "highlow", "low", 19, false},
		{"high hit", "highlow", "high", 19, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := mustBet(t, tt.betType, tt.betValue)
			if got := Rules[spec.Family].Wins(tt.outcome, spec); got != tt.won {
				t.Fatalf("Wins(%s) = %v, want %v", tt.outcome, got, tt.won)
			}
		})
	}
}

// 0 e "00" só pagam apostas cuja família inclui esses bolsos explicitamente.
// Apostas externas (cor/paridade/metade/dúzia/coluna) nunca vencem no verde.
func TestGreenPocketsExcludeOutsideBets(t *testing.T) {
	outside := []struct{ betType, betValue string }{
		{"color", "red"},
		{"color", "black"},
		{"parity", "even"},
		{"parity", "odd"},
		{"highlow", "low"},
		{"highlow", "high"},
		{"dozen", "1st12"},
		{"dozen", "2nd12"},
		{"dozen", "3rd12"},
		{"column", "col1"},
		{"column", "col2"},
		{"column", "col3"},
	}
	for _, green := range []Outcome{0, DoubleZero} {
		for _, bet := range outside {
			spec := mustBet(t, bet.betType, bet.betValue)
			if Rules[spec.Family].Wins(green, spec) {
				t.Errorf("%s %s must lose on %s", bet.betType, bet.betValue, green)
			}
		}
	}
}

func TestFamilies(t *testing.T) {
	families := Families()
	if len(families) != len(Rules) {
		t.Fatalf("Families() returned %d entries, want %d", len(families), len(Rules))
	}
	for i := 1; i < len(families); i++ {
		if families[i-1] >= families[i] {
			t.Fatalf("Families() not sorted: %v", families)
		}
	}
}
