package receipt

import (
	"testing"

	"github.com/patungan/patungan/internal/models"
)

func TestContentHeight(t *testing.T) {
	tests := []struct {
		name      string
		breakdown []models.BreakdownEntry
		want      float64
	}{
		{
			name:      "empty breakdown keeps only the top margin",
			breakdown: nil,
			want:      20,
		},
		{
			// 20 + 50 (header) + 2*32 (items) + 20 (divider)
			// + 30 (subtotal) + 30 (tax) + 40 (total)
			name: "one friend, two items, tax only",
			breakdown: []models.BreakdownEntry{
				{
					Friend:    models.Friend{Name: "Andi"},
					Items:     []models.ItemShare{{Name: "Nasi Goreng"}, {Name: "Es Teh"}},
					Subtotal:  40000,
					TaxAmount: 4000,
					Total:     44000,
				},
			},
			want: 254,
		},
		{
			// Zero-valued aggregates contribute no rows.
			name: "all aggregates present",
			breakdown: []models.BreakdownEntry{
				{
					Friend:            models.Friend{Name: "Budi"},
					Items:             []models.ItemShare{{Name: "Sate"}},
					Subtotal:          25000,
					TaxAmount:         2500,
					ServiceAmount:     1250,
					DeliveryFeeAmount: 5000,
					DiscountAmount:    3000,
					Total:             30750,
				},
			},
			want: 20 + 50 + 32 + 20 + 5*30 + 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := contentHeight(tt.breakdown); got != tt.want {
				t.Errorf("contentHeight() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCanvasHeight(t *testing.T) {
	breakdown := []models.BreakdownEntry{
		{
			Friend:    models.Friend{Name: "Andi"},
			Items:     []models.ItemShare{{Name: "Nasi Goreng"}, {Name: "Es Teh"}},
			Subtotal:  40000,
			TaxAmount: 4000,
			Total:     44000,
		},
	}

	want := headerHeight + 254 + paymentBoxHeight + footerHeight
	if got := canvasHeight(breakdown); got != want {
		t.Errorf("canvasHeight() = %v, want %v", got, want)
	}
}
