package ledger

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// Postgres implementa o ledger sobre as tabelas wallets/wallet_ledger.
// Cada movimento roda em uma transação com lock pessimista na linha da
// carteira (SELECT ... FOR UPDATE), em tentativa única, sem retry.
type Postgres struct{ db *sql.DB }

func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// Debit subtrai o valor se houver saldo, registrando o movimento no ledger
// Saldo insuficiente não altera nada e devolve ErrInsufficientFunds
func (p *Postgres) Debit(ctx context.Context, userID string, amountCents int64, ref string) (int64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var walletID string
	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT id, balance_cents FROM wallets WHERE user_id=$1 FOR UPDATE`, userID).
		Scan(&walletID, &balance)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, err
	}

	if balance < amountCents {
		return 0, ErrInsufficientFunds
	}
	newBalance := balance - amountCents

	if _, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance_cents=$1, version=version+1 WHERE id=$2`, newBalance, walletID); err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_ledger(wallet_id, operation_type, amount_cents, description) VALUES($1,'DEBIT',$2,$3)`,
		walletID, amountCents, ref); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Credit soma o valor ao saldo e registra o movimento no ledger
func (p *Postgres) Credit(ctx context.Context, userID string, amountCents int64, ref string) (int64, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var walletID string
	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT id, balance_cents FROM wallets WHERE user_id=$1 FOR UPDATE`, userID).
		Scan(&walletID, &balance)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, err
	}

	newBalance := balance + amountCents

	if _, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance_cents=$1, version=version+1 WHERE id=$2`, newBalance, walletID); err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_ledger(wallet_id, operation_type, amount_cents, description) VALUES($1,'CREDIT',$2,$3)`,
		walletID, amountCents, ref); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return newBalance, nil
}

// Balance retorna o saldo atual de um usuário
func (p *Postgres) Balance(ctx context.Context, userID string) (int64, error) {
	var balance int64
	err := p.db.QueryRowContext(ctx, `SELECT balance_cents FROM wallets WHERE user_id=$1`, userID).Scan(&balance)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, err
	}
	return balance, nil
}

// GetOrCreate retorna o walletId e saldo de um usuário, criando a carteira
// zerada se não existir
func (p *Postgres) GetOrCreate(ctx context.Context, userID string) (walletID string, balanceCents int64, err error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return "", 0, err
	}
	defer tx.Rollback()

	err = tx.QueryRowContext(ctx, `SELECT id, balance_cents FROM wallets WHERE user_id=$1`, userID).
		Scan(&walletID, &balanceCents)
	if err == sql.ErrNoRows {
		walletID = uuid.New().String()
		if _, err = tx.ExecContext(ctx,
			`INSERT INTO wallets(id, user_id, balance_cents, version) VALUES($1,$2,0,1)`, walletID, userID); err != nil {
			return "", 0, err
		}
		balanceCents = 0
	} else if err != nil {
		return "", 0, err
	}

	if err = tx.Commit(); err != nil {
		return "", 0, err
	}
	return walletID, balanceCents, nil
}

// Deposit credita um valor criando a carteira se necessário
// (operação administrativa do wallet-service, não faz parte do fluxo de aposta).
// Idempotente por external_ref: reenviar o mesmo depósito devolve o saldo
// atual sem creditar de novo.
func (p *Postgres) Deposit(ctx context.Context, userID string, amountCents int64, externalRef string) (int64, error) {
	if _, _, err := p.GetOrCreate(ctx, userID); err != nil {
		return 0, err
	}

	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var walletID string
	var balance int64
	err = tx.QueryRowContext(ctx, `SELECT id, balance_cents FROM wallets WHERE user_id=$1 FOR UPDATE`, userID).
		Scan(&walletID, &balance)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	} else if err != nil {
		return 0, err
	}

	ref := "deposit:" + externalRef

	// Idempotência: verifica se já existe crédito para o mesmo external_ref
	var existing int64
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM wallet_ledger WHERE wallet_id=$1 AND operation_type='CREDIT' AND description=$2`,
		walletID, ref).Scan(&existing)
	if err == nil {
		return balance, tx.Commit() // depósito já aplicado
	} else if err != sql.ErrNoRows {
		return 0, err
	}

	newBalance := balance + amountCents

	if _, err = tx.ExecContext(ctx,
		`UPDATE wallets SET balance_cents=$1, version=version+1 WHERE id=$2`, newBalance, walletID); err != nil {
		return 0, err
	}

	if _, err = tx.ExecContext(ctx,
		`INSERT INTO wallet_ledger(wallet_id, operation_type, amount_cents, description) VALUES($1,'CREDIT',$2,$3)`,
		walletID, amountCents, ref); err != nil {
		return 0, err
	}

	if err = tx.Commit(); err != nil {
		return 0, err
	}
	return newBalance, nil
}
