package engine

import "sort"

// Rule liga uma família de aposta ao seu predicado de vitória e
// ao multiplicador de pagamento (ganho líquido = valor * multiplicador).
type Rule struct {
	Multiplier int64
	Wins       func(o Outcome, b BetSpec) bool
}

func coversOutcome(o Outcome, b BetSpec) bool { return b.covers(o) }

// Rules é a única fonte de verdade das odds americanas.
// Adicionar uma família nova significa adicionar uma entrada aqui;
// o avaliador não conhece odds.
var Rules = map[BetFamily]Rule{
	FamilyStraight: {Multiplier: 35, Wins: coversOutcome},
	FamilySplit:    {Multiplier: 17, Wins: coversOutcome},
	FamilyStreet:   {Multiplier: 11, Wins: coversOutcome},
	FamilyCorner:   {Multiplier: 8, Wins: coversOutcome},
	FamilyLine:     {Multiplier: 5, Wins: coversOutcome},
	FamilyDozen: {Multiplier: 2, Wins: func(o Outcome, b BetSpec) bool {
		switch b.Value {
		case "1st12":
			return o.Dozen() == 1
		case "2nd12":
			return o.Dozen() == 2
		default:
			return o.Dozen() == 3
		}
	}},
	FamilyColumn: {Multiplier: 2, Wins: func(o Outcome, b BetSpec) bool {
		switch b.Value {
		case "col1":
			return o.Column() == 1
		case "col2":
			return o.Column() == 2
		default:
			return o.Column() == 3
		}
	}},
	FamilyColor: {Multiplier: 1, Wins: func(o Outcome, b BetSpec) bool {
		return !o.IsGreen() && o.Color() == b.Value
	}},
	FamilyParity: {Multiplier: 1, Wins: func(o Outcome, b BetSpec) bool {
		if o.IsGreen() {
			return false
		}
		if b.Value == "even" {
			return o.IsEven()
		}
		return !o.IsEven()
	}},
	FamilyHighLow: {Multiplier: 1, Wins: func(o Outcome, b BetSpec) bool {
		if o.IsGreen() {
			return false
		}
		if b.Value == "low" {
			return o.IsLow()
		}
		return !o.IsLow()
	}},
}

// Families lista as famílias suportadas em ordem alfabética
func Families() []string {
	out := make([]string, 0, len(Rules))
	for f := range Rules {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}
