package ledger

import (
	"context"
	"database/sql"
)

// Bootstrap cria as tabelas do ledger e da auditoria de liquidação
// quando ainda não existem. Idempotente.
func Bootstrap(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS wallets (
			id            TEXT PRIMARY KEY,
			user_id       TEXT NOT NULL UNIQUE,
			balance_cents BIGINT NOT NULL DEFAULT 0 CHECK (balance_cents >= 0),
			version       BIGINT NOT NULL DEFAULT 1
		)`,
		`CREATE TABLE IF NOT EXISTS wallet_ledger (
			id             BIGSERIAL PRIMARY KEY,
			wallet_id      TEXT NOT NULL REFERENCES wallets(id),
			operation_type TEXT NOT NULL,
			amount_cents   BIGINT NOT NULL,
			description    TEXT,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS bet_settlements (
			bill_no        TEXT PRIMARY KEY,
			user_id        TEXT NOT NULL,
			bet_type       TEXT NOT NULL,
			bet_value      TEXT NOT NULL,
			stake_cents    BIGINT NOT NULL,
			won            BOOLEAN NOT NULL,
			payout_cents   BIGINT NOT NULL,
			balance_cents  BIGINT NOT NULL,
			winning_number TEXT NOT NULL,
			resolved_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
