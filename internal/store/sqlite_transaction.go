package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hance08/keasec/internal/model"
)

const defaultListLimit = 100

// CreateTransaction inserts the transaction header and any splits it carries.
// Callers wrap it in ExecTx for atomicity; split IDs are written back.
func (s *Store) CreateTransaction(tx *model.Transaction) (int64, error) {
	stmtTx, err := s.db.Prepare(`
        INSERT INTO transactions (date_posted, date_entered, memo)
        VALUES (?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare transaction SQL: %w", err)
	}
	defer func() {
		_ = stmtTx.Close()
	}()

	var newTxID int64
	err = stmtTx.QueryRow(tx.DatePosted.Unix(), tx.DateEntered.Unix(), tx.Memo).Scan(&newTxID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert transaction: %w", err)
	}
	tx.ID = newTxID

	for _, split := range tx.Splits {
		if _, err := s.CreateSplit(newTxID, split); err != nil {
			return 0, err
		}
	}

	return newTxID, nil
}

func (s *Store) GetTransactionByID(txID int64) (*model.Transaction, error) {
	row := s.db.QueryRow(`
        SELECT id, date_posted, date_entered, memo
        FROM transactions
        WHERE id = ?
    `, txID)

	tx, err := scanTransaction(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("transaction with ID %d not found: %w", txID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query transaction: %w", err)
	}

	tx.Splits, err = s.GetSplitsByTransaction(txID)
	if err != nil {
		return nil, err
	}

	return tx, nil
}

// GetAllTransactions returns headers (no splits), newest first.
func (s *Store) GetAllTransactions(limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`
        SELECT id, date_posted, date_entered, memo
        FROM transactions
        ORDER BY date_posted DESC, id DESC
        LIMIT ?
    `, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

// GetTransactionsByDateRange returns headers posted within [from, to], newest first.
func (s *Store) GetTransactionsByDateRange(from, to time.Time) ([]*model.Transaction, error) {
	rows, err := s.db.Query(`
        SELECT id, date_posted, date_entered, memo
        FROM transactions
        WHERE date_posted >= ? AND date_posted <= ?
        ORDER BY date_posted DESC, id DESC
    `, from.Unix(), to.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions by date range: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

func (s *Store) GetTransactionsByAccount(accountID int64, limit int) ([]*model.Transaction, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	rows, err := s.db.Query(`
        SELECT DISTINCT t.id, t.date_posted, t.date_entered, t.memo
        FROM transactions t
        INNER JOIN splits s ON t.id = s.transaction_id
        WHERE s.account_id = ?
        ORDER BY t.date_posted DESC, t.id DESC
        LIMIT ?
    `, accountID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanTransactions(rows)
}

// DeleteTransaction removes a transaction; its splits go with it (ON DELETE CASCADE).
func (s *Store) DeleteTransaction(txID int64) error {
	result, err := s.db.Exec(`
        DELETE FROM transactions
        WHERE id = ?
    `, txID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	return checkAffected(result, "transaction", txID)
}

func scanTransaction(row rowScanner) (*model.Transaction, error) {
	tx := &model.Transaction{}
	var posted, entered int64

	if err := row.Scan(&tx.ID, &posted, &entered, &tx.Memo); err != nil {
		return nil, err
	}

	tx.DatePosted = time.Unix(posted, 0).UTC()
	tx.DateEntered = time.Unix(entered, 0).UTC()
	return tx, nil
}

func scanTransactions(rows *sql.Rows) ([]*model.Transaction, error) {
	var transactions []*model.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}
