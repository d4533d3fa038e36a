package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/radieske/roulette-platform-poc/internal/wallet/dto"
)

type fakeRepo struct {
	balances map[string]int64
}

func (f *fakeRepo) GetOrCreate(_ context.Context, userID string) (string, int64, error) {
	if _, ok := f.balances[userID]; !ok {
		f.balances[userID] = 0
	}
	return "wallet-" + userID, f.balances[userID], nil
}

func (f *fakeRepo) Deposit(_ context.Context, userID string, amountCents int64, _ string) (int64, error) {
	f.balances[userID] += amountCents
	return f.balances[userID], nil
}

func (f *fakeRepo) Balance(_ context.Context, userID string) (int64, error) {
	return f.balances[userID], nil
}

func TestGetWalletCreatesOnFirstAccess(t *testing.T) {
	srv := NewServer(zap.NewNop(), &fakeRepo{balances: map[string]int64{}})

	req := httptest.NewRequest(http.MethodGet, "/wallet?userId=user-1", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp dto.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.UserID != "user-1" || resp.BalanceCents != 0 || resp.WalletID == "" {
		t.Fatalf("resp = %+v", resp)
	}
}

func TestGetWalletRequiresUserID(t *testing.T) {
	srv := NewServer(zap.NewNop(), &fakeRepo{balances: map[string]int64{}})
	req := httptest.NewRequest(http.MethodGet, "/wallet", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestDeposit(t *testing.T) {
	repo := &fakeRepo{balances: map[string]int64{"user-1": 500}}
	srv := NewServer(zap.NewNop(), repo)

	body, _ := json.Marshal(dto.DepositRequest{UserID: "user-1", AmountCents: 2500, ExternalRef: "topup-1"})
	req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp dto.WalletResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.BalanceCents != 3000 {
		t.Fatalf("balance = %d, want 3000", resp.BalanceCents)
	}
}

func TestDepositInvalidPayload(t *testing.T) {
	srv := NewServer(zap.NewNop(), &fakeRepo{balances: map[string]int64{}})
	tests := []dto.DepositRequest{
		{UserID: "", AmountCents: 100},
		{UserID: "user-1", AmountCents: 0},
		{UserID: "user-1", AmountCents: -5},
	}
	for _, tt := range tests {
		body, _ := json.Marshal(tt)
		req := httptest.NewRequest(http.MethodPost, "/wallet/deposit", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("status = %d for %+v, want 400", rec.Code, tt)
		}
	}
}
