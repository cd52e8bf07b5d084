package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/keasec/internal/model"
)

const splitColumns = "id, transaction_id, account_id, value, shares, price, action, memo"

func (s *Store) CreateSplit(txID int64, split *model.Split) (int64, error) {
	result, err := s.db.Exec(`
        INSERT INTO splits (transaction_id, account_id, value, shares, price, action, memo)
        VALUES (?, ?, ?, ?, ?, ?, ?)
    `, txID, split.AccountID, split.Value.String(), split.Shares.String(),
		split.Price, string(split.Action), split.Memo)
	if err != nil {
		return 0, fmt.Errorf("failed to create split (account_id: %d): %w", split.AccountID, err)
	}

	splitID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert id: %w", err)
	}

	split.ID = splitID
	split.TransactionID = txID
	return splitID, nil
}

func (s *Store) GetSplitByID(splitID int64) (*model.Split, error) {
	row := s.db.QueryRow("SELECT "+splitColumns+" FROM splits WHERE id = ?", splitID)

	split, err := scanSplit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("split with ID %d not found: %w", splitID, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query split: %w", err)
	}

	return split, nil
}

func (s *Store) GetSplitsByTransaction(txID int64) ([]*model.Split, error) {
	rows, err := s.db.Query(`
        SELECT `+splitColumns+`
        FROM splits
        WHERE transaction_id = ?
        ORDER BY id
    `, txID)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanSplits(rows)
}

func (s *Store) GetAllSplits() ([]*model.Split, error) {
	rows, err := s.db.Query(`
        SELECT ` + splitColumns + `
        FROM splits
        ORDER BY transaction_id, id
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query splits: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return scanSplits(rows)
}

func (s *Store) DeleteSplit(splitID int64) error {
	result, err := s.db.Exec(`
        DELETE FROM splits
        WHERE id = ?
    `, splitID)
	if err != nil {
		return fmt.Errorf("failed to delete split: %w", err)
	}

	return checkAffected(result, "split", splitID)
}

func scanSplit(row rowScanner) (*model.Split, error) {
	split := &model.Split{}
	var action string

	err := row.Scan(
		&split.ID,
		&split.TransactionID,
		&split.AccountID,
		&split.Value,
		&split.Shares,
		&split.Price,
		&action,
		&split.Memo,
	)
	if err != nil {
		return nil, err
	}

	split.Action = model.SplitAction(action)
	return split, nil
}

func scanSplits(rows *sql.Rows) ([]*model.Split, error) {
	var splits []*model.Split
	for rows.Next() {
		split, err := scanSplit(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan split: %w", err)
		}
		splits = append(splits, split)
	}

	return splits, rows.Err()
}
