package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lifeboard/internal/storage"
)

// AddTransaction appends an income or expense record.
func (s *Store) AddTransaction(ctx context.Context, date string, amount float64, typ storage.TransactionType, label string) (storage.Transaction, error) {
	if date == "" {
		date = s.today()
	}
	if _, err := time.Parse(storage.DateLayout, date); err != nil {
		return storage.Transaction{}, StateError{Kind: "transaction", ID: date, Msg: "invalid date"}
	}
	if typ != storage.TxIncome && typ != storage.TxExpense {
		return storage.Transaction{}, StateError{Kind: "transaction", ID: date, Msg: "type must be income or expense"}
	}
	if amount <= 0 {
		return storage.Transaction{}, StateError{Kind: "transaction", ID: date, Msg: "amount must be positive"}
	}

	tx := storage.Transaction{
		ID:     uuid.NewString(),
		Date:   date,
		Amount: amount,
		Type:   typ,
		Label:  label,
	}
	err := s.mutate(ctx, func(st *storage.State) error {
		st.Transactions = append(append([]storage.Transaction(nil), st.Transactions...), tx)
		s.evaluateAchievementsLocked(st, s.now())
		return nil
	})
	return tx, err
}

func (s *Store) DeleteTransaction(ctx context.Context, id string) error {
	return s.mutate(ctx, func(st *storage.State) error {
		txs := append([]storage.Transaction(nil), st.Transactions...)
		for i := range txs {
			if txs[i].ID == id {
				st.Transactions = append(txs[:i], txs[i+1:]...)
				return nil
			}
		}
		return NotFoundError{Kind: "transaction", ID: id}
	})
}
