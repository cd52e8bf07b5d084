package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/hance08/keasec/internal/model"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
)

const accountColumns = "id, name, type, parent_id, currency, description, is_hidden"

func (s *Store) CreateAccount(acc *model.Account) (int64, error) {
	stmt, err := s.db.Prepare(`
        INSERT INTO accounts (name, type, currency, description, parent_id)
        VALUES (?, ?, ?, ?, ?)
        RETURNING id;
    `)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare SQL : %w", err)
	}
	defer func() {
		_ = stmt.Close()
	}()

	var newID int64

	err = stmt.QueryRow(acc.Name, string(acc.Type), acc.Currency, acc.Description, acc.ParentID).Scan(&newID)

	if err != nil {
		var sqliteErr sqlite.Error
		if errors.As(err, &sqliteErr) {
			if errors.Is(sqliteErr.ExtendedCode, sqlite.ErrConstraintUnique) {
				return 0, fmt.Errorf("failed to create account '%s': %w", acc.Name, ErrAccountExists)
			}
			if errors.Is(sqliteErr.Code, sqlite.ErrConstraint) {
				return 0, fmt.Errorf("failed to create account '%s': %w", acc.Name, ErrConstraintViolation)
			}
		}
		return 0, fmt.Errorf("failed to executing SQL insertion : %w", err)
	}

	acc.ID = newID
	return newID, nil
}

func (s *Store) GetAllAccounts() ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT ` + accountColumns + `
        FROM accounts
        ORDER BY name
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetAccountByName(name string) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE name = ?", name)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account '%s' doesn't exist: %w", name, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account '%s' : %w", name, err)
	}

	return acc, nil
}

func (s *Store) GetAccountByID(id int64) (*model.Account, error) {
	row := s.db.QueryRow("SELECT "+accountColumns+" FROM accounts WHERE id = ?", id)

	acc, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("account with ID %d not found: %w", id, ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to query account with ID %d: %w", id, err)
	}

	return acc, nil
}

func (s *Store) AccountExists(name string) (bool, error) {
	var exists bool
	row := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM accounts WHERE name = ?)", name)
	if err := row.Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check account existence: %w", err)
	}
	return exists, nil
}

func (s *Store) GetAccountsByType(accType model.AccountType) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM accounts
        WHERE type = ?
        ORDER BY name
    `, string(accType))
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

func (s *Store) GetChildAccounts(parentID int64) ([]*model.Account, error) {
	rows, err := s.db.Query(`
        SELECT `+accountColumns+`
        FROM accounts
        WHERE parent_id = ?
        ORDER BY name
    `, parentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query child accounts: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	return s.scanAccounts(rows)
}

// GetAccountBalance returns the share balance of an account. Splits are
// replayed in posting order; a SPLIT_SHARES split stores the split factor
// in its shares field and multiplies the running balance. The product is
// rounded to the share precision, since factors such as 4/3 are stored
// truncated.
func (s *Store) GetAccountBalance(accountID int64) (decimal.Decimal, error) {
	rows, err := s.db.Query(`
        SELECT s.shares, s.action
        FROM splits s
        INNER JOIN transactions t ON t.id = s.transaction_id
        WHERE s.account_id = ?
        ORDER BY t.date_posted, t.id, s.id
    `, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to calculate balance: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	balance := decimal.Zero
	for rows.Next() {
		var shares decimal.Decimal
		var action string
		if err := rows.Scan(&shares, &action); err != nil {
			return decimal.Zero, fmt.Errorf("failed to scan split for balance: %w", err)
		}

		if model.SplitAction(action) == model.ActionSplitShares {
			balance = balance.Mul(shares).Round(s.sharePrecision)
			continue
		}
		balance = balance.Add(shares)
	}

	return balance, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*model.Account, error) {
	acc := &model.Account{}
	var parentID sql.NullInt64
	var accType string

	err := row.Scan(
		&acc.ID, &acc.Name, &accType,
		&parentID, &acc.Currency, &acc.Description,
		&acc.IsHidden,
	)
	if err != nil {
		return nil, err
	}

	acc.Type = model.AccountType(accType)
	if parentID.Valid {
		acc.ParentID = &parentID.Int64
	}

	return acc, nil
}

func (s *Store) scanAccounts(rows *sql.Rows) ([]*model.Account, error) {
	var accounts []*model.Account
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, acc)
	}

	return accounts, rows.Err()
}
