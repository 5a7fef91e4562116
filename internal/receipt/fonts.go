package receipt

import (
	"fmt"
	"sync"

	ggtext "github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomonobold"
)

// typeset holds one face per text role on the receipt. Faces come from
// fonts embedded in the binary so output never depends on system fonts.
type typeset struct {
	header        ggtext.Face
	date          ggtext.Face
	friendName    ggtext.Face
	item          ggtext.Face
	subItem       ggtext.Face
	totalLabel    ggtext.Face
	paymentTitle  ggtext.Face
	bankName      ggtext.Face
	accountNumber ggtext.Face
	accountName   ggtext.Face
	footer        ggtext.Face
}

var (
	typesetOnce sync.Once
	typesetErr  error
	faces       *typeset
)

// loadTypeset parses the embedded fonts once and derives all faces.
// Font sources are heavyweight; faces are cheap views at a size.
func loadTypeset() (*typeset, error) {
	typesetOnce.Do(func() {
		bold, err := ggtext.NewFontSource(gobold.TTF)
		if err != nil {
			typesetErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		medium, err := ggtext.NewFontSource(gomedium.TTF)
		if err != nil {
			typesetErr = fmt.Errorf("parse medium font: %w", err)
			return
		}
		mono, err := ggtext.NewFontSource(gomonobold.TTF)
		if err != nil {
			typesetErr = fmt.Errorf("parse mono font: %w", err)
			return
		}

		faces = &typeset{
			header:        bold.Face(48),
			date:          medium.Face(20),
			friendName:    bold.Face(28),
			item:          medium.Face(20),
			subItem:       medium.Face(18),
			totalLabel:    bold.Face(24),
			paymentTitle:  bold.Face(16),
			bankName:      bold.Face(28),
			accountNumber: mono.Face(32),
			accountName:   medium.Face(20),
			footer:        medium.Face(16),
		}
	})
	return faces, typesetErr
}
