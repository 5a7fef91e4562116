// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface using the pure Go driver (no CGO).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/patungan/patungan/internal/models"
	"github.com/patungan/patungan/internal/storage"
)

// Ensure SQLiteStore implements storage.Store
var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// New creates a new SQLiteStore with the given database path. It
// creates the parent directories and runs migrations automatically.
func New(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateBill persists a new bill with its friends, items, and item
// assignments in one transaction.
func (s *SQLiteStore) CreateBill(ctx context.Context, bill *models.Bill) error {
	if bill.ID == "" {
		bill.ID = uuid.New().String()
	}
	if bill.CreatedAt == 0 {
		bill.CreatedAt = time.Now().Unix()
	}
	if bill.Title == "" {
		bill.Title = generateTitle(bill.Friends)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO bills (
			id, title, tax_amount, service_amount, delivery_fee_amount, discount_amount,
			currency, locale, use_decimals, bank_name, account_number, account_name,
			created_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		bill.ID, bill.Title,
		bill.TaxAmount, bill.ServiceAmount, bill.DeliveryFeeAmount, bill.DiscountAmount,
		bill.Currency, bill.Locale, boolToInt(bill.UseDecimals),
		bill.PaymentDetails.BankName, bill.PaymentDetails.AccountNumber, bill.PaymentDetails.AccountName,
		bill.CreatedBy, bill.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert bill: %w", err)
	}

	for i := range bill.Friends {
		friend := &bill.Friends[i]
		if friend.ID == "" {
			friend.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO friends (id, bill_id, name, color, position) VALUES (?, ?, ?, ?, ?)",
			friend.ID, bill.ID, friend.Name, friend.Color, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert friend: %w", err)
		}
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		if item.ID == "" {
			item.ID = uuid.New().String()
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO items (id, bill_id, name, price, quantity, position) VALUES (?, ?, ?, ?, ?, ?)",
			item.ID, bill.ID, item.Name, item.Price, item.Quantity, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert item: %w", err)
		}

		for j, friendID := range item.AssignedTo {
			_, err = tx.ExecContext(ctx,
				"INSERT INTO item_assignments (item_id, friend_id, position) VALUES (?, ?, ?)",
				item.ID, friendID, j,
			)
			if err != nil {
				return fmt.Errorf("failed to insert item assignment: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetBill retrieves a bill by ID, including friends, items, and
// assignments in their stored order.
func (s *SQLiteStore) GetBill(ctx context.Context, billID string) (*models.Bill, error) {
	bill := &models.Bill{}
	var useDecimals int
	err := s.db.QueryRowContext(ctx,
		`SELECT id, title, tax_amount, service_amount, delivery_fee_amount, discount_amount,
			currency, locale, use_decimals, bank_name, account_number, account_name,
			created_by, created_at
		FROM bills WHERE id = ?`,
		billID,
	).Scan(
		&bill.ID, &bill.Title,
		&bill.TaxAmount, &bill.ServiceAmount, &bill.DeliveryFeeAmount, &bill.DiscountAmount,
		&bill.Currency, &bill.Locale, &useDecimals,
		&bill.PaymentDetails.BankName, &bill.PaymentDetails.AccountNumber, &bill.PaymentDetails.AccountName,
		&bill.CreatedBy, &bill.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("bill not found: %s", billID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}
	bill.UseDecimals = useDecimals != 0

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, color FROM friends WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get friends: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var friend models.Friend
		if err := rows.Scan(&friend.ID, &friend.Name, &friend.Color); err != nil {
			return nil, fmt.Errorf("failed to scan friend: %w", err)
		}
		bill.Friends = append(bill.Friends, friend)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate friends: %w", err)
	}

	itemRows, err := s.db.QueryContext(ctx,
		"SELECT id, name, price, quantity FROM items WHERE bill_id = ? ORDER BY position",
		billID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var item models.Item
		if err := itemRows.Scan(&item.ID, &item.Name, &item.Price, &item.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		bill.Items = append(bill.Items, item)
	}
	if err := itemRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate items: %w", err)
	}

	for i := range bill.Items {
		item := &bill.Items[i]
		assignRows, err := s.db.QueryContext(ctx,
			"SELECT friend_id FROM item_assignments WHERE item_id = ? ORDER BY position",
			item.ID,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to get item assignments: %w", err)
		}

		for assignRows.Next() {
			var friendID string
			if err := assignRows.Scan(&friendID); err != nil {
				assignRows.Close()
				return nil, fmt.Errorf("failed to scan assignment: %w", err)
			}
			item.AssignedTo = append(item.AssignedTo, friendID)
		}
		if err := assignRows.Err(); err != nil {
			assignRows.Close()
			return nil, fmt.Errorf("failed to iterate assignments: %w", err)
		}
		assignRows.Close()
	}

	return bill, nil
}

// generateTitle creates an auto-generated title from the friend list.
func generateTitle(friends []models.Friend) string {
	names := make([]string, len(friends))
	for i, f := range friends {
		names[i] = f.Name
	}
	if len(names) == 0 {
		return fmt.Sprintf("Bill - %s", time.Now().Format("Jan 2, 2006"))
	}
	if len(names) <= 3 {
		return fmt.Sprintf("Split with %s", strings.Join(names, ", "))
	}
	return fmt.Sprintf("Split with %s and %d others",
		strings.Join(names[:2], ", "),
		len(names)-2,
	)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
