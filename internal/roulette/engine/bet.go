package engine

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidBet indica aposta malformada ou fora de domínio.
// É detectado antes de qualquer movimentação de saldo.
var ErrInvalidBet = errors.New("invalid bet")

// BetFamily é a categoria da aposta; cada família tem sua própria
// regra de vitória e multiplicador na tabela de regras.
type BetFamily string

const (
	FamilyStraight BetFamily = "straight"
	FamilySplit    BetFamily = "split"
	FamilyStreet   BetFamily = "street"
	FamilyCorner   BetFamily = "corner"
	FamilyLine     BetFamily = "line"
	FamilyDozen    BetFamily = "dozen"
	FamilyColumn   BetFamily = "column"
	FamilyColor    BetFamily = "color"
	FamilyParity   BetFamily = "parity"
	FamilyHighLow  BetFamily = "highlow"
)

// BetSpec é uma aposta já validada e normalizada.
// pockets fica preenchido apenas para as famílias de bolso
// (straight/split/street/corner/line).
type BetSpec struct {
	UserID      string
	AmountCents int64
	Family      BetFamily
	Value       string

	pockets []Outcome
}

// Pockets devolve uma cópia dos bolsos cobertos pela aposta
// (vazio para color/parity/highlow/dozen/column)
func (b BetSpec) Pockets() []Outcome {
	out := make([]Outcome, len(b.pockets))
	copy(out, b.pockets)
	return out
}

func (b BetSpec) covers(o Outcome) bool {
	for _, p := range b.pockets {
		if p == o {
			return true
		}
	}
	return false
}

// ParseBet valida e normaliza (userId, valor, tipo, palpite) em um BetSpec.
// Função pura: nunca toca o ledger. Revalidar um spec já normalizado
// produz o mesmo spec.
func ParseBet(userID string, amountCents int64, betType, betValue string) (BetSpec, error) {
	if strings.TrimSpace(userID) == "" {
		return BetSpec{}, fmt.Errorf("%w: userId required", ErrInvalidBet)
	}
	if amountCents <= 0 {
		return BetSpec{}, fmt.Errorf("%w: amount must be positive, got %d", ErrInvalidBet, amountCents)
	}

	family := BetFamily(strings.ToLower(strings.TrimSpace(betType)))
	value := strings.ToLower(strings.TrimSpace(betValue))
	if family == "" {
		return BetSpec{}, fmt.Errorf("%w: bet type required", ErrInvalidBet)
	}
	if value == "" {
		return BetSpec{}, fmt.Errorf("%w: bet value required", ErrInvalidBet)
	}

	spec := BetSpec{UserID: userID, AmountCents: amountCents, Family: family, Value: value}

	switch family {
	case FamilyStraight:
		p, err := ParseOutcome(value)
		if err != nil {
			return BetSpec{}, err
		}
		spec.pockets = []Outcome{p}

	case FamilySplit:
		ps, err := parsePockets(value, 2)
		if err != nil {
			return BetSpec{}, err
		}
		a, b := ps[0], ps[1]
		vertical := b-a == 3
		horizontal := b-a == 1 && (a-1)/3 == (b-1)/3
		if !vertical && !horizontal {
			return BetSpec{}, fmt.Errorf("%w: split %q is not adjacent on the layout", ErrInvalidBet, value)
		}
		spec.pockets = ps

	case FamilyStreet:
		ps, err := parsePockets(value, 3)
		if err != nil {
			return BetSpec{}, err
		}
		if ps[0]%3 != 1 || ps[1] != ps[0]+1 || ps[2] != ps[0]+2 {
			return BetSpec{}, fmt.Errorf("%w: street %q is not a layout row", ErrInvalidBet, value)
		}
		spec.pockets = ps

	case FamilyCorner:
		ps, err := parsePockets(value, 4)
		if err != nil {
			return BetSpec{}, err
		}
		a := ps[0]
		if a%3 == 0 || a > 32 || ps[1] != a+1 || ps[2] != a+3 || ps[3] != a+4 {
			return BetSpec{}, fmt.Errorf("%w: corner %q is not a layout square", ErrInvalidBet, value)
		}
		spec.pockets = ps

	case FamilyLine:
		ps, err := parsePockets(value, 6)
		if err != nil {
			return BetSpec{}, err
		}
		if ps[0]%3 != 1 || ps[0] > 31 {
			return BetSpec{}, fmt.Errorf("%w: line %q is not two adjacent rows", ErrInvalidBet, value)
		}
		for i := 1; i < 6; i++ {
			if ps[i] != ps[0]+Outcome(i) {
				return BetSpec{}, fmt.Errorf("%w: line %q is not two adjacent rows", ErrInvalidBet, value)
			}
		}
		spec.pockets = ps

	case FamilyDozen:
		if value != "1st12" && value != "2nd12" && value != "3rd12" {
			return BetSpec{}, fmt.Errorf("%w: dozen must be 1st12/2nd12/3rd12, got %q", ErrInvalidBet, value)
		}

	case FamilyColumn:
		if value != "col1" && value != "col2" && value != "col3" {
			return BetSpec{}, fmt.Errorf("%w: column must be col1/col2/col3, got %q", ErrInvalidBet, value)
		}

	case FamilyColor:
		if value != "red" && value != "black" {
			return BetSpec{}, fmt.Errorf("%w: color must be red or black, got %q", ErrInvalidBet, value)
		}

	case FamilyParity:
		if value != "even" && value != "odd" {
			return BetSpec{}, fmt.Errorf("%w: parity must be even or odd, got %q", ErrInvalidBet, value)
		}

	case FamilyHighLow:
		if value != "low" && value != "high" {
			return BetSpec{}, fmt.Errorf("%w: highlow must be low or high, got %q", ErrInvalidBet, value)
		}

	default:
		return BetSpec{}, fmt.Errorf("%w: unknown bet type %q", ErrInvalidBet, betType)
	}

	return spec, nil
}

// parsePockets interpreta "a-b-c" como uma lista ordenada de bolsos 1..36.
// Bolsos verdes não participam das apostas de múltiplos bolsos.
func parsePockets(value string, want int) ([]Outcome, error) {
	parts := strings.Split(value, "-")
	if len(parts) != want {
		return nil, fmt.Errorf("%w: expected %d pockets, got %q", ErrInvalidBet, want, value)
	}
	seen := make(map[Outcome]struct{}, want)
	out := make([]Outcome, 0, want)
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 1 || n > 36 {
			return nil, fmt.Errorf("%w: pocket %q out of range 1..36", ErrInvalidBet, part)
		}
		p := Outcome(n)
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: duplicate pocket %q", ErrInvalidBet, part)
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out, nil
}
