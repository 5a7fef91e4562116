// Package receipt renders a bill breakdown into a shareable PNG: a
// paper-shaped card with per-friend item lists, prorated fees, and the
// payment destination.
//
// Rendering is deterministic: identical breakdown, config, and labels
// produce byte-identical images. The clock is injected through
// Config.Date rather than read inside the renderer.
package receipt

import (
	"bytes"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/gogpu/gg"
	ggtext "github.com/gogpu/gg/text"

	"github.com/patungan/patungan/internal/models"
)

// Config bundles everything the renderer needs besides the breakdown.
type Config struct {
	// Currency is the symbol prefixed to each friend's total, e.g. "Rp".
	Currency string

	// Policy formats every amount on the receipt.
	Policy FormattingPolicy

	// Payment is drawn verbatim into the payment box.
	Payment models.PaymentDetails

	// Labels are the localized strings; zero value falls back to English.
	Labels Labels

	// Date is printed under the title. Zero means "now".
	Date time.Time
}

// Render lays out and draws the receipt in a single pass and returns
// the PNG bytes. On any failure (fonts unavailable, encoding error) it
// returns no image rather than a partially drawn one.
func Render(breakdown []models.BreakdownEntry, cfg Config) ([]byte, error) {
	faces, err := loadTypeset()
	if err != nil {
		return nil, fmt.Errorf("acquire drawing surface: %w", err)
	}
	if cfg.Labels == (Labels{}) {
		cfg.Labels = DefaultLabels()
	}
	if cfg.Date.IsZero() {
		cfg.Date = time.Now()
	}

	height := canvasHeight(breakdown)
	r := &renderer{
		dc:     gg.NewContext(int(canvasWidth), int(height)),
		faces:  faces,
		cfg:    cfg,
		height: height,
	}

	r.drawPaper()
	r.drawHeader()
	y := contentTop
	for _, entry := range breakdown {
		y = r.drawFriendSection(entry, y)
	}
	r.drawPaymentBox(y + 10)
	r.drawFooter()

	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode receipt: %w", err)
	}
	return buf.Bytes(), nil
}

type renderer struct {
	dc     *gg.Context
	faces  *typeset
	cfg    Config
	height float64
}

// fmtAmount shortens the policy call at draw sites.
func (r *renderer) fmtAmount(v float64) string {
	return r.cfg.Policy.Format(v)
}

// drawText draws s with its top edge at yTop. align is the horizontal
// anchor in [0, 1]: 0 left, 0.5 centered, 1 right of x.
func (r *renderer) drawText(face ggtext.Face, s string, x, yTop, align float64) {
	r.dc.SetFont(face)
	w, _ := r.dc.MeasureString(s)
	r.dc.DrawString(s, x-align*w, yTop+face.Metrics().Ascent)
}

// drawPaper fills the receipt silhouette: rounded top corners, inward
// tear notches level with the header divider, and a zig-zag torn
// bottom edge, with a subtle top-to-bottom gradient.
func (r *renderer) drawPaper() {
	dc := r.dc
	w, h := canvasWidth, r.height

	dc.MoveTo(0, cornerRadius)
	dc.QuadraticTo(0, 0, cornerRadius, 0)
	dc.LineTo(w-cornerRadius, 0)
	dc.QuadraticTo(w, 0, w, cornerRadius)

	// Right edge down to the notch, then the inward semicircle.
	dc.LineTo(w, notchY-notchRadius)
	r.arcPath(w, notchY, notchRadius, -math.Pi/2, -3*math.Pi/2)

	dc.LineTo(w, h-zigzagHeight)
	for x := w; x > 0; x -= zigzagStep {
		dc.LineTo(x-zigzagStep/2, h)
		dc.LineTo(x-zigzagStep, h-zigzagHeight)
	}

	// Left edge up to the notch, inward semicircle, back to the top.
	dc.LineTo(0, notchY+notchRadius)
	r.arcPath(0, notchY, notchRadius, math.Pi/2, -math.Pi/2)
	dc.LineTo(0, cornerRadius)
	dc.ClosePath()

	gradient := gg.NewLinearGradientBrush(0, 0, 0, h).
		AddColorStop(0, gg.Hex("#ffffff")).
		AddColorStop(1, gg.Hex("#f9fafb"))
	dc.SetFillBrush(gradient)
	dc.Fill()
}

// arcPath appends a circular arc from angle a1 to a2 to the current
// path, sweeping in either direction (unlike Context.DrawArc, which
// normalizes to an increasing sweep). The current point must be the
// arc's start. Cubic approximation, at most a quarter turn per segment.
func (r *renderer) arcPath(cx, cy, radius, a1, a2 float64) {
	segments := int(math.Ceil(math.Abs(a2-a1) / (math.Pi / 2)))
	if segments == 0 {
		return
	}
	step := (a2 - a1) / float64(segments)
	for i := 0; i < segments; i++ {
		s1 := a1 + float64(i)*step
		s2 := s1 + step
		alpha := math.Sin(s2-s1) * (math.Sqrt(4+3*math.Tan((s2-s1)/2)*math.Tan((s2-s1)/2)) - 1) / 3

		cos1, sin1 := math.Cos(s1), math.Sin(s1)
		cos2, sin2 := math.Cos(s2), math.Sin(s2)
		x1, y1 := cx+radius*cos1, cy+radius*sin1
		x2, y2 := cx+radius*cos2, cy+radius*sin2

		r.dc.CubicTo(
			x1-alpha*radius*sin1, y1+alpha*radius*cos1,
			x2+alpha*radius*sin2, y2-alpha*radius*cos2,
			x2, y2,
		)
	}
}

func (r *renderer) drawHeader() {
	dc := r.dc

	dc.SetHexColor("#111827")
	r.drawText(r.faces.header, r.cfg.Labels.BillSummary, canvasWidth/2, 50, 0.5)

	dc.SetHexColor("#6B7280")
	dateStr := r.cfg.Date.Format("Monday, January 2, 2006")
	r.drawText(r.faces.date, dateStr, canvasWidth/2, 110, 0.5)

	// Dashed divider level with the tear notches.
	dc.SetHexColor("#D1D5DB")
	dc.SetLineWidth(2)
	dc.SetDash(8, 8)
	dc.MoveTo(padding, notchY)
	dc.LineTo(canvasWidth-padding, notchY)
	dc.Stroke()
	dc.ClearDash()
}

// drawFriendSection draws one friend's block starting at y and returns
// the y where the next section begins.
func (r *renderer) drawFriendSection(entry models.BreakdownEntry, y float64) float64 {
	dc := r.dc

	dotColor := entry.Friend.Color
	if dotColor == "" {
		dotColor = "#64748B"
	}
	dc.SetHexColor(dotColor)
	dc.DrawCircle(padding+10, y+10, 10)
	dc.Fill()

	dc.SetHexColor("#111827")
	r.drawText(r.faces.friendName, entry.Friend.Name, padding+35, y-5, 0)
	y += 45

	dc.SetHexColor("#4B5563")
	for _, item := range entry.Items {
		label := itemLabel(item)
		label = truncateLabel(r.faces.item, label, maxLabelWidth)
		r.drawText(r.faces.item, label, padding+35, y, 0)
		r.drawText(r.faces.item, r.fmtAmount(item.Share), canvasWidth-padding, y, 1)
		y += itemRowHeight
	}

	y += 10
	dc.SetHexColor("#F3F4F6")
	dc.SetLineWidth(2)
	dc.SetDash(4, 4)
	dc.MoveTo(padding+35, y)
	dc.LineTo(canvasWidth-padding, y)
	dc.Stroke()
	dc.ClearDash()
	y += 10

	dc.SetHexColor("#9CA3AF")
	row := func(label string, amount float64) {
		r.drawText(r.faces.subItem, label, padding+35, y, 0)
		r.drawText(r.faces.subItem, r.fmtAmount(amount), canvasWidth-padding, y, 1)
		y += aggregateRowHeight
	}
	row(r.cfg.Labels.Subtotal, entry.Subtotal)
	if entry.TaxAmount > 0 {
		row(r.cfg.Labels.Tax, entry.TaxAmount)
	}
	if entry.ServiceAmount > 0 {
		row(r.cfg.Labels.Service, entry.ServiceAmount)
	}
	if entry.DeliveryFeeAmount > 0 {
		row(r.cfg.Labels.DeliveryFee, entry.DeliveryFeeAmount)
	}
	if entry.DiscountAmount > 0 {
		row(r.cfg.Labels.Discount, entry.DiscountAmount)
	}

	y += 5
	dc.SetHexColor("#374151")
	r.drawText(r.faces.totalLabel, r.cfg.Labels.Total, padding+35, y, 0)
	total := fmt.Sprintf("%s %s", r.cfg.Currency, r.fmtAmount(entry.Total))
	r.drawText(r.faces.totalLabel, total, canvasWidth-padding, y, 1)

	return y + totalRowHeight
}

func (r *renderer) drawPaymentBox(boxY float64) {
	dc := r.dc

	dc.DrawRoundedRectangle(padding, boxY, canvasWidth-2*padding, paymentBoxHeight, 24)
	dc.SetHexColor("#ECFCCB")
	dc.FillPreserve()
	dc.SetHexColor("#84CC16")
	dc.SetLineWidth(2)
	dc.Stroke()

	center := canvasWidth / 2
	dc.SetHexColor("#3F6212")
	r.drawText(r.faces.paymentTitle, r.cfg.Labels.SendPaymentTo, center, boxY+30, 0.5)

	dc.SetHexColor("#111827")
	r.drawText(r.faces.bankName, r.cfg.Payment.BankName, center, boxY+65, 0.5)
	r.drawText(r.faces.accountNumber, r.cfg.Payment.AccountNumber, center, boxY+105, 0.5)

	dc.SetHexColor("#4B5563")
	r.drawText(r.faces.accountName, strings.ToUpper(r.cfg.Payment.AccountName), center, boxY+145, 0.5)
}

func (r *renderer) drawFooter() {
	r.dc.SetHexColor("#9CA3AF")
	r.drawText(r.faces.footer, r.cfg.Labels.Footer, canvasWidth/2, r.height-35, 0.5)
}

// itemLabel composes the display label: a quantity prefix when the
// line covers more than one unit, and a split suffix when the cost is
// shared.
func itemLabel(item models.ItemShare) string {
	label := item.Name
	if item.Quantity > 1 {
		label = fmt.Sprintf("%dx %s", item.Quantity, label)
	}
	if item.SplitCount > 1 {
		label = fmt.Sprintf("%s (1/%d)", label, item.SplitCount)
	}
	return label
}

// truncateLabel trims label rune by rune from the end, appending an
// ellipsis, until it fits maxWidth. A label already within budget is
// returned untouched; a label where nothing fits collapses to the
// ellipsis alone.
func truncateLabel(face ggtext.Face, label string, maxWidth float64) string {
	if w, _ := ggtext.Measure(label, face); w <= maxWidth {
		return label
	}
	runes := []rune(label)
	for len(runes) > 0 {
		w, _ := ggtext.Measure(string(runes)+"...", face)
		if w <= maxWidth {
			break
		}
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}
