// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/patungan/patungan/internal/models"
)

// Store defines the interface for bill and user persistence. The
// abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateBill persists a new bill. The bill's ID, CreatedAt, and an
	// auto-generated Title are populated when left empty.
	CreateBill(ctx context.Context, bill *models.Bill) error

	// GetBill retrieves a bill by its ID, with items, friends, and
	// assignments in their original order.
	GetBill(ctx context.Context, billID string) (*models.Bill, error)

	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email. Returns (nil, nil) when
	// no such user exists.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID. Returns (nil, nil) when no
	// such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// Close releases any resources held by the store.
	Close() error
}
