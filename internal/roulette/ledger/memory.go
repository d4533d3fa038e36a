package ledger

import (
	"context"
	"sync"
)

// Memory é um ledger em memória com um lock por conta: contas diferentes
// não se bloqueiam, e o check-and-subtract de uma mesma conta é serializado.
// Usado em testes e em instâncias embutidas do motor.
type Memory struct {
	mu       sync.RWMutex
	accounts map[string]*account
}

type account struct {
	mu      sync.Mutex
	balance int64
	// referências de depósito já aplicadas (idempotência por external_ref)
	depositRefs map[string]struct{}
}

func NewMemory() *Memory {
	return &Memory{accounts: make(map[string]*account)}
}

// CreateAccount registra uma conta com saldo inicial; não altera conta existente
func (m *Memory) CreateAccount(userID string, initialCents int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[userID]; !ok {
		m.accounts[userID] = &account{balance: initialCents}
	}
}

func (m *Memory) lookup(userID string) (*account, error) {
	m.mu.RLock()
	acc, ok := m.accounts[userID]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	return acc, nil
}

func (m *Memory) Debit(ctx context.Context, userID string, amountCents int64, ref string) (int64, error) {
	acc, err := m.lookup(userID)
	if err != nil {
		return 0, err
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	if acc.balance < amountCents {
		return 0, ErrInsufficientFunds
	}
	acc.balance -= amountCents
	return acc.balance, nil
}

func (m *Memory) Credit(ctx context.Context, userID string, amountCents int64, ref string) (int64, error) {
	acc, err := m.lookup(userID)
	if err != nil {
		return 0, err
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	acc.balance += amountCents
	return acc.balance, nil
}

// Deposit credita criando a conta se necessário. Idempotente por
// external_ref, como a implementação Postgres: reenviar o mesmo depósito
// devolve o saldo atual sem creditar de novo.
func (m *Memory) Deposit(ctx context.Context, userID string, amountCents int64, externalRef string) (int64, error) {
	m.mu.Lock()
	acc, ok := m.accounts[userID]
	if !ok {
		acc = &account{}
		m.accounts[userID] = acc
	}
	m.mu.Unlock()

	acc.mu.Lock()
	defer acc.mu.Unlock()
	if acc.depositRefs == nil {
		acc.depositRefs = make(map[string]struct{})
	}
	if _, seen := acc.depositRefs[externalRef]; seen {
		return acc.balance, nil
	}
	acc.depositRefs[externalRef] = struct{}{}
	acc.balance += amountCents
	return acc.balance, nil
}

func (m *Memory) Balance(ctx context.Context, userID string) (int64, error) {
	acc, err := m.lookup(userID)
	if err != nil {
		return 0, err
	}
	acc.mu.Lock()
	defer acc.mu.Unlock()
	return acc.balance, nil
}
