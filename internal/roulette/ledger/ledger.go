package ledger

import (
	"context"
	"errors"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrNotFound          = errors.New("not found")
)

// Ledger é o dono dos saldos por usuário.
// Debit e Credit são atômicos por conta: duas apostas concorrentes do mesmo
// usuário nunca passam pela checagem de saldo com uma leitura defasada.
// ref é o identificador de auditoria do movimento (ex.: "bet:{billNo}").
//
// Nenhuma operação é repetida automaticamente: um débito que falhou de forma
// ambígua deve propagar o erro, nunca ser reexecutado.
type Ledger interface {
	// Debit subtrai amountCents se o saldo cobre o valor; caso contrário
	// devolve ErrInsufficientFunds sem alterar nada. Retorna o saldo novo.
	Debit(ctx context.Context, userID string, amountCents int64, ref string) (int64, error)

	// Credit soma amountCents ao saldo e retorna o saldo novo.
	Credit(ctx context.Context, userID string, amountCents int64, ref string) (int64, error)

	// Balance retorna o saldo atual em centavos.
	Balance(ctx context.Context, userID string) (int64, error)
}
