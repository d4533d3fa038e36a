package engine

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseBetValid(t *testing.T) {
	tests := []struct {
		name     string
		betType  string
		betValue string
		pockets  []Outcome
	}{
		{"straight number", "straight", "17", []Outcome{17}},
		{"straight zero", "straight", "0", []Outcome{0}},
		{"straight double zero", "straight", "00", []Outcome{DoubleZero}},
		{"split horizontal", "split", "8-9", []Outcome{8, 9}},
		{"split vertical", "split", "5-8", []Outcome{5, 8}},
		{"split unordered input", "split", "9-8", []Outcome{8, 9}},
		{"street", "street", "7-8-9", []Outcome{7, 8, 9}},
		{"corner", "corner", "8-9-11-12", []Outcome{8, 9, 11, 12}},
		{"line", "line", "7-8-9-10-11-12", []Outcome{7, 8, 9, 10, 11, 12}},
		{"dozen", "dozen", "1st12", nil},
		{"column", "column", "col2", nil},
		{"color upper case", "color", "RED", nil},
		{"parity", "parity", "odd", nil},
		{"highlow", "highlow", "high", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := ParseBet("user-1", 1000, tt.betType, tt.betValue)
			if err != nil {
				t.Fatalf("ParseBet: %v", err)
			}
			if spec.UserID != "user-1" || spec.AmountCents != 1000 {
				t.Errorf("spec identity fields = %+v", spec)
			}
			if got := spec.Pockets(); len(tt.pockets) > 0 && !reflect.DeepEqual(got, tt.pockets) {
				t.Errorf("pockets = %v, want %v", got, tt.pockets)
			}
		})
	}
}

func TestParseBetInvalid(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		amount   int64
		betType  string
		betValue string
	}{
		{"empty user", "", 1000, "color", "red"},
		{"zero amount", "user-1", 0, "color", "red"},
		{"negative amount", "user-1", -50, "color", "red"},
		{"empty type", "user-1", 1000, "", "red"},
		{"empty value", "user-1", 1000, "color", ""},
		{"unknown family", "user-1", 1000, "lucky7", "7"},
		{"color out of domain", "user-1", 1000, "color", "green"},
		{"parity out of domain", "user-1", 1000, "parity", "prime"},
		{"straight out of range", "user-1", 1000, "straight", "37"},
		{"straight negative", "user-1", 1000, "straight", "-1"},
		{"dozen out of domain", "user-1", 1000, "dozen", "4th12"},
		{"column out of domain", "user-1", 1000, "column", "col4"},
		{"split not adjacent", "user-1", 1000, "split", "8-10"},
		{"split across rows", "user-1", 1000, "split", "9-10"},
		{"split with green", "user-1", 1000, "split", "0-1"},
		{"split duplicate", "user-1", 1000, "split", "8-8"},
		{"street misaligned", "user-1", 1000, "street", "8-9-10"},
		{"corner third column start", "user-1", 1000, "corner", "9-10-12-13"},
		{"corner not square", "user-1", 1000, "corner", "1-2-3-4"},
		{"line misaligned", "user-1", 1000, "line", "8-9-10-11-12-13"},
		{"line past layout", "user-1", 1000, "line", "34-35-36-37-38-39"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBet(tt.userID, tt.amount, tt.betType, tt.betValue)
			if !errors.Is(err, ErrInvalidBet) {
				t.Fatalf("ParseBet err = %v, want ErrInvalidBet", err)
			}
		})
	}
}

// revalidar um spec já normalizado produz o mesmo spec
func TestParseBetIdempotent(t *testing.T) {
	first, err := ParseBet("user-1", 500, " Color ", " Red ")
	if err != nil {
		t.Fatalf("ParseBet: %v", err)
	}
	second, err := ParseBet(first.UserID, first.AmountCents, string(first.Family), first.Value)
	if err != nil {
		t.Fatalf("ParseBet (revalidate): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("revalidated spec differs: %+v != %+v", first, second)
	}
}
