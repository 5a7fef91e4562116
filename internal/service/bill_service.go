// Package service implements the HTTP API: breakdown calculation,
// receipt rendering, and bill persistence.
package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/patungan/patungan/internal/calculator"
	"github.com/patungan/patungan/internal/middleware"
	"github.com/patungan/patungan/internal/models"
	"github.com/patungan/patungan/internal/receipt"
	"github.com/patungan/patungan/internal/storage"
)

var renderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Name:    "patungan_receipt_render_duration_seconds",
	Help:    "Time spent laying out and encoding receipt images.",
	Buckets: prometheus.DefBuckets,
})

// BillService handles breakdown, receipt, and bill endpoints.
type BillService struct {
	store storage.Store
}

// NewBillService creates a BillService with the given storage backend.
func NewBillService(store storage.Store) *BillService {
	return &BillService{store: store}
}

// BreakdownRequest carries everything the allocation engine consumes.
type BreakdownRequest struct {
	Items             []models.Item   `json:"items"`
	Friends           []models.Friend `json:"friends"`
	TaxAmount         float64         `json:"taxAmount"`
	ServiceAmount     float64         `json:"serviceAmount"`
	DeliveryFeeAmount float64         `json:"deliveryFeeAmount"`
	DiscountAmount    float64         `json:"discountAmount"`
	UseDecimals       bool            `json:"useDecimals"`
}

// ReceiptRequest extends a breakdown request with rendering inputs.
type ReceiptRequest struct {
	BreakdownRequest
	Currency       string                `json:"currency"`
	Locale         string                `json:"locale"`
	PaymentDetails models.PaymentDetails `json:"paymentDetails"`
	Labels         *receipt.Labels       `json:"labels,omitempty"`
}

// BreakdownResponse wraps the computed entries.
type BreakdownResponse struct {
	Breakdown []models.BreakdownEntry `json:"breakdown"`
}

// validate rejects input the engine assumes away: the engine itself has
// no failure path, so malformed numbers stop here at the boundary.
func (req *BreakdownRequest) validate() error {
	for _, a := range []struct {
		name  string
		value float64
	}{
		{"taxAmount", req.TaxAmount},
		{"serviceAmount", req.ServiceAmount},
		{"deliveryFeeAmount", req.DeliveryFeeAmount},
		{"discountAmount", req.DiscountAmount},
	} {
		if a.value < 0 || math.IsNaN(a.value) || math.IsInf(a.value, 0) {
			return fmt.Errorf("%s must be a finite non-negative number", a.name)
		}
	}
	for _, item := range req.Items {
		if item.Price < 0 || math.IsNaN(item.Price) || math.IsInf(item.Price, 0) {
			return fmt.Errorf("item %q price must be a finite non-negative number", item.Name)
		}
	}
	return nil
}

// HandleBreakdown computes the per-friend breakdown without rendering.
func (s *BillService) HandleBreakdown(w http.ResponseWriter, r *http.Request) {
	var req BreakdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entries := calculator.CalculateBreakdown(
		req.Items, req.Friends,
		req.TaxAmount, req.ServiceAmount, req.DeliveryFeeAmount, req.DiscountAmount,
		req.UseDecimals,
	)
	writeJSON(w, http.StatusOK, BreakdownResponse{Breakdown: entries})
}

// HandleReceipt computes the breakdown and renders it as a PNG.
func (s *BillService) HandleReceipt(w http.ResponseWriter, r *http.Request) {
	var req ReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	entries := calculator.CalculateBreakdown(
		req.Items, req.Friends,
		req.TaxAmount, req.ServiceAmount, req.DeliveryFeeAmount, req.DiscountAmount,
		req.UseDecimals,
	)
	s.renderReceipt(w, entries, req, time.Now())
}

// HandleCreateBill persists a bill for the authenticated user and
// returns its breakdown.
func (s *BillService) HandleCreateBill(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, fmt.Errorf("authentication required"))
		return
	}

	var bill models.Bill
	if err := json.NewDecoder(r.Body).Decode(&bill); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	req := breakdownRequestFromBill(&bill)
	if err := req.validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	bill.ID = ""
	bill.CreatedAt = 0
	bill.CreatedBy = userID
	assignDefaultColors(bill.Friends)
	if err := s.store.CreateBill(r.Context(), &bill); err != nil {
		slog.Error("CreateBill failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to save bill"))
		return
	}

	entries := calculator.CalculateBreakdown(
		bill.Items, bill.Friends,
		bill.TaxAmount, bill.ServiceAmount, bill.DeliveryFeeAmount, bill.DiscountAmount,
		bill.UseDecimals,
	)
	writeJSON(w, http.StatusCreated, struct {
		Bill      models.Bill             `json:"bill"`
		Breakdown []models.BreakdownEntry `json:"breakdown"`
	}{Bill: bill, Breakdown: entries})
}

// HandleGetBill returns a stored bill with a freshly computed breakdown.
func (s *BillService) HandleGetBill(w http.ResponseWriter, r *http.Request) {
	bill, ok := s.loadOwnedBill(w, r)
	if !ok {
		return
	}

	entries := calculator.CalculateBreakdown(
		bill.Items, bill.Friends,
		bill.TaxAmount, bill.ServiceAmount, bill.DeliveryFeeAmount, bill.DiscountAmount,
		bill.UseDecimals,
	)
	writeJSON(w, http.StatusOK, struct {
		Bill      models.Bill             `json:"bill"`
		Breakdown []models.BreakdownEntry `json:"breakdown"`
	}{Bill: *bill, Breakdown: entries})
}

// HandleBillReceipt renders the receipt for a stored bill. The creation
// timestamp doubles as the receipt date, so repeated requests yield the
// same image.
func (s *BillService) HandleBillReceipt(w http.ResponseWriter, r *http.Request) {
	bill, ok := s.loadOwnedBill(w, r)
	if !ok {
		return
	}

	entries := calculator.CalculateBreakdown(
		bill.Items, bill.Friends,
		bill.TaxAmount, bill.ServiceAmount, bill.DeliveryFeeAmount, bill.DiscountAmount,
		bill.UseDecimals,
	)
	req := ReceiptRequest{
		BreakdownRequest: breakdownRequestFromBill(bill),
		Currency:         bill.Currency,
		Locale:           bill.Locale,
		PaymentDetails:   bill.PaymentDetails,
	}
	s.renderReceipt(w, entries, req, time.Unix(bill.CreatedAt, 0).UTC())
}

func (s *BillService) loadOwnedBill(w http.ResponseWriter, r *http.Request) (*models.Bill, bool) {
	userID := middleware.GetUserID(r.Context())
	if userID == "" {
		writeError(w, http.StatusUnauthorized, fmt.Errorf("authentication required"))
		return nil, false
	}

	bill, err := s.store.GetBill(r.Context(), r.PathValue("id"))
	if err != nil {
		slog.Error("GetBill failed", "bill_id", r.PathValue("id"), "error", err)
		writeError(w, http.StatusNotFound, fmt.Errorf("bill not found"))
		return nil, false
	}
	if bill.CreatedBy != userID {
		writeError(w, http.StatusForbidden, fmt.Errorf("you must be the bill creator"))
		return nil, false
	}
	return bill, true
}

func (s *BillService) renderReceipt(w http.ResponseWriter, entries []models.BreakdownEntry, req ReceiptRequest, date time.Time) {
	cfg := receipt.Config{
		Currency: req.Currency,
		Policy:   receipt.NewFormattingPolicy(req.Locale, req.UseDecimals),
		Payment:  req.PaymentDetails,
		Date:     date,
	}
	if req.Labels != nil {
		cfg.Labels = *req.Labels
	}

	start := time.Now()
	img, err := receipt.Render(entries, cfg)
	if err != nil {
		slog.Error("Render failed", "error", err)
		writeError(w, http.StatusInternalServerError, fmt.Errorf("failed to render receipt"))
		return
	}
	renderDuration.Observe(time.Since(start).Seconds())

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(img)
}

// HandleCurrencies lists the supported currency presets.
func (s *BillService) HandleCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Currencies    []models.CurrencyOption `json:"currencies"`
		DefaultColors []string                `json:"defaultColors"`
	}{Currencies: models.CurrencyOptions, DefaultColors: models.DefaultColors})
}

// assignDefaultColors fills in missing friend colors by cycling the
// palette, keyed by position so a re-submitted bill colors the same way.
func assignDefaultColors(friends []models.Friend) {
	for i := range friends {
		if friends[i].Color == "" {
			friends[i].Color = models.DefaultColors[i%len(models.DefaultColors)]
		}
	}
}

func breakdownRequestFromBill(bill *models.Bill) BreakdownRequest {
	return BreakdownRequest{
		Items:             bill.Items,
		Friends:           bill.Friends,
		TaxAmount:         bill.TaxAmount,
		ServiceAmount:     bill.ServiceAmount,
		DeliveryFeeAmount: bill.DeliveryFeeAmount,
		DiscountAmount:    bill.DiscountAmount,
		UseDecimals:       bill.UseDecimals,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
