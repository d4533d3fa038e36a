package engine

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	mrand "math/rand/v2"
	"strconv"
	"sync"
)

// Outcome é o bolso vencedor de um giro: índices 0..36 para os números
// padrão e 37 para o "00" da roda americana.
type Outcome int8

// DoubleZero é o bolso "00" da roda americana.
const DoubleZero Outcome = 37

// WheelSize é o total de bolsos da roda americana (0..36 + "00").
const WheelSize = 38

// números vermelhos do layout padrão
var redPockets = map[Outcome]struct{}{
	1: {}, 3: {}, 5: {}, 7: {}, 9: {},
	12: {}, 14: {}, 16: {}, 18: {}, 19: {},
	21: {}, 23: {}, 25: {}, 27: {}, 30: {},
	32: {}, 34: {}, 36: {},
}

// String renderiza o bolso como "0".."36" ou "00"
func (o Outcome) String() string {
	if o == DoubleZero {
		return "00"
	}
	return strconv.Itoa(int(o))
}

// ParseOutcome converte "0".."36" ou "00" em Outcome
func ParseOutcome(s string) (Outcome, error) {
	if s == "00" {
		return DoubleZero, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 || n > 36 {
		return 0, fmt.Errorf("%w: pocket %q out of range", ErrInvalidBet, s)
	}
	return Outcome(n), nil
}

// IsGreen indica se o bolso é 0 ou "00" (casa)
func (o Outcome) IsGreen() bool { return o == 0 || o == DoubleZero }

// IsRed indica se o bolso é vermelho
func (o Outcome) IsRed() bool {
	_, ok := redPockets[o]
	return ok
}

// Color retorna "red", "black" ou "green"
func (o Outcome) Color() string {
	switch {
	case o.IsGreen():
		return "green"
	case o.IsRed():
		return "red"
	default:
		return "black"
	}
}

// IsEven indica paridade; 0 e "00" não contam como pares
func (o Outcome) IsEven() bool { return !o.IsGreen() && o%2 == 0 }

// IsLow indica 1..18; 0 e "00" não pertencem a nenhuma metade
func (o Outcome) IsLow() bool { return o >= 1 && o <= 18 }

// Dozen retorna 1..3 para os números 1..36; 0 para os bolsos verdes
func (o Outcome) Dozen() int {
	if o.IsGreen() {
		return 0
	}
	return (int(o)-1)/12 + 1
}

// Column retorna a coluna do layout (1..3) ou 0 para os bolsos verdes
func (o Outcome) Column() int {
	if o.IsGreen() {
		return 0
	}
	c := int(o) % 3
	if c == 0 {
		c = 3
	}
	return c
}

// Wheel sorteia bolsos uniformemente entre os 38 possíveis.
// A fonte de aleatoriedade é injetável/semeável para permitir testes
// determinísticos sem enfraquecer o sorteio em produção.
type Wheel struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewWheel cria uma roda semeada por entropia do sistema
func NewWheel() *Wheel {
	var b [16]byte
	_, _ = rand.Read(b[:])
	s1 := binary.LittleEndian.Uint64(b[0:8])
	s2 := binary.LittleEndian.Uint64(b[8:16])
	return &Wheel{rng: mrand.New(mrand.NewPCG(s1, s2))}
}

// NewWheelSeeded cria uma roda com semente fixa (apenas testes e replay local)
func NewWheelSeeded(seed uint64) *Wheel {
	return &Wheel{rng: mrand.New(mrand.NewPCG(seed, seed))}
}

// Draw sorteia um bolso. Uma rodada (single ou multibet) consome
// exatamente um sorteio; todas as apostas da rodada compartilham o resultado.
func (w *Wheel) Draw() Outcome {
	w.mu.Lock()
	defer w.mu.Unlock()
	return Outcome(w.rng.IntN(WheelSize))
}
