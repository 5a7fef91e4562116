package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/patungan/patungan/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "patungan-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func createTestUser(t *testing.T, store *SQLiteStore, email string) *models.User {
	t.Helper()

	user := models.NewUser(email, "Test User", "hash")
	if err := store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	user := createTestUser(t, store, "owner@example.com")

	t.Run("CreateBill generates ID and title", func(t *testing.T) {
		bill := &models.Bill{
			Friends: []models.Friend{
				{ID: "f1", Name: "Andi", Color: "#EF4444"},
				{ID: "f2", Name: "Budi", Color: "#3B82F6"},
			},
			Items: []models.Item{
				{Name: "Nasi Goreng", Price: 25000, Quantity: 1, AssignedTo: []string{"f1"}},
				{Name: "Es Teh", Price: 10000, Quantity: 2, AssignedTo: []string{"f1", "f2"}},
			},
			TaxAmount: 3500,
			Currency:  "Rp",
			Locale:    "id-ID",
			CreatedBy: user.ID,
		}

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		if bill.ID == "" {
			t.Error("Expected bill ID to be generated")
		}
		if bill.Title != "Split with Andi, Budi" {
			t.Errorf("Unexpected generated title: %s", bill.Title)
		}
		if bill.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetBill retrieves complete bill in stored order", func(t *testing.T) {
		original := &models.Bill{
			Title: "Team Dinner",
			Friends: []models.Friend{
				{ID: "f1", Name: "Citra", Color: "#10B981"},
				{ID: "f2", Name: "Dewi", Color: "#F59E0B"},
				{ID: "f3", Name: "Eka", Color: "#8B5CF6"},
			},
			Items: []models.Item{
				{Name: "Sate Ayam", Price: 30000, Quantity: 1, AssignedTo: []string{"f2", "f1"}},
				{Name: "Gado-Gado", Price: 20000, Quantity: 1, AssignedTo: []string{"f3"}},
				{Name: "Kerupuk", Price: 5000, Quantity: 1},
			},
			TaxAmount:         5500,
			ServiceAmount:     2750,
			DeliveryFeeAmount: 10000,
			DiscountAmount:    8000,
			Currency:          "Rp",
			Locale:            "id-ID",
			UseDecimals:       false,
			PaymentDetails: models.PaymentDetails{
				BankName:      "BCA",
				AccountNumber: "1234567890",
				AccountName:   "Citra Lestari",
			},
			CreatedBy: user.ID,
		}

		if err := store.CreateBill(ctx, original); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}

		if retrieved.Title != original.Title {
			t.Errorf("Title mismatch: got %s, want %s", retrieved.Title, original.Title)
		}
		if retrieved.TaxAmount != original.TaxAmount {
			t.Errorf("TaxAmount mismatch: got %f, want %f", retrieved.TaxAmount, original.TaxAmount)
		}
		if retrieved.UseDecimals != original.UseDecimals {
			t.Errorf("UseDecimals mismatch: got %v, want %v", retrieved.UseDecimals, original.UseDecimals)
		}
		if retrieved.PaymentDetails != original.PaymentDetails {
			t.Errorf("PaymentDetails mismatch: got %+v, want %+v", retrieved.PaymentDetails, original.PaymentDetails)
		}
		if retrieved.CreatedBy != user.ID {
			t.Errorf("CreatedBy mismatch: got %s, want %s", retrieved.CreatedBy, user.ID)
		}

		if len(retrieved.Friends) != 3 {
			t.Fatalf("Friends count mismatch: got %d, want 3", len(retrieved.Friends))
		}
		for i, friend := range retrieved.Friends {
			if friend != original.Friends[i] {
				t.Errorf("Friend %d mismatch: got %+v, want %+v", i, friend, original.Friends[i])
			}
		}

		if len(retrieved.Items) != 3 {
			t.Fatalf("Items count mismatch: got %d, want 3", len(retrieved.Items))
		}
		for i, item := range retrieved.Items {
			if item.Name != original.Items[i].Name {
				t.Errorf("Item %d name mismatch: got %s, want %s", i, item.Name, original.Items[i].Name)
			}
			if len(item.AssignedTo) != len(original.Items[i].AssignedTo) {
				t.Fatalf("Item %d assignments mismatch: got %d, want %d",
					i, len(item.AssignedTo), len(original.Items[i].AssignedTo))
			}
			// Assignment order must survive the roundtrip: it feeds the
			// equal-split weights.
			for j, friendID := range item.AssignedTo {
				if friendID != original.Items[i].AssignedTo[j] {
					t.Errorf("Item %d assignment %d mismatch: got %s, want %s",
						i, j, friendID, original.Items[i].AssignedTo[j])
				}
			}
		}
	})

	t.Run("GetBill returns error for nonexistent bill", func(t *testing.T) {
		if _, err := store.GetBill(ctx, "nonexistent-id"); err == nil {
			t.Error("Expected error for nonexistent bill, got nil")
		}
	})

	t.Run("CreateBill with no items", func(t *testing.T) {
		bill := &models.Bill{
			Friends:   []models.Friend{{ID: "f1", Name: "Fitri"}},
			Currency:  "Rp",
			Locale:    "id-ID",
			CreatedBy: user.ID,
		}

		if err := store.CreateBill(ctx, bill); err != nil {
			t.Fatalf("CreateBill failed: %v", err)
		}

		retrieved, err := store.GetBill(ctx, bill.ID)
		if err != nil {
			t.Fatalf("GetBill failed: %v", err)
		}
		if len(retrieved.Items) != 0 {
			t.Errorf("Expected 0 items, got %d", len(retrieved.Items))
		}
	})
}

func TestUsers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	user := createTestUser(t, store, "andi@example.com")

	t.Run("GetUserByEmail", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "andi@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got == nil || got.ID != user.ID {
			t.Errorf("GetUserByEmail returned %+v, want ID %s", got, user.ID)
		}
	})

	t.Run("GetUserByID", func(t *testing.T) {
		got, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if got == nil || got.Email != user.Email {
			t.Errorf("GetUserByID returned %+v, want email %s", got, user.Email)
		}
	})

	t.Run("Unknown email returns nil without error", func(t *testing.T) {
		got, err := store.GetUserByEmail(ctx, "nobody@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if got != nil {
			t.Errorf("Expected nil user, got %+v", got)
		}
	})

	t.Run("Duplicate email rejected", func(t *testing.T) {
		dup := models.NewUser("andi@example.com", "Imposter", "hash")
		if err := store.CreateUser(ctx, dup); err == nil {
			t.Error("Expected error for duplicate email, got nil")
		}
	})
}

func TestGenerateTitle(t *testing.T) {
	tests := []struct {
		name         string
		friends      []models.Friend
		wantContains string
	}{
		{"no friends", nil, "Bill -"},
		{"one friend", friendsNamed("Andi"), "Split with Andi"},
		{"three friends", friendsNamed("Andi", "Budi", "Citra"), "Split with Andi, Budi, Citra"},
		{"four friends", friendsNamed("Andi", "Budi", "Citra", "Dewi"), "and 2 others"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateTitle(tt.friends)
			if !strings.Contains(got, tt.wantContains) {
				t.Errorf("generateTitle() = %q, want to contain %q", got, tt.wantContains)
			}
		})
	}
}

func friendsNamed(names ...string) []models.Friend {
	friends := make([]models.Friend, len(names))
	for i, name := range names {
		friends[i] = models.Friend{ID: name, Name: name}
	}
	return friends
}
