package receipt

import "testing"

func TestNewFormattingPolicy(t *testing.T) {
	tests := []struct {
		name        string
		locale      string
		useDecimals bool
		wantDigits  int
		wantLocal   bool
	}{
		{
			name:        "decimal currency",
			locale:      "en-US",
			useDecimals: true,
			wantDigits:  2,
			wantLocal:   true,
		},
		{
			name:        "whole unit currency",
			locale:      "id-ID",
			useDecimals: false,
			wantDigits:  0,
			wantLocal:   true,
		},
		{
			name:        "unparseable locale falls back",
			locale:      "!!not-a-locale!!",
			useDecimals: true,
			wantDigits:  2,
			wantLocal:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFormattingPolicy(tt.locale, tt.useDecimals)
			if p.MinFractionDigits != tt.wantDigits || p.MaxFractionDigits != tt.wantDigits {
				t.Errorf("digits = (%d, %d), want %d", p.MinFractionDigits, p.MaxFractionDigits, tt.wantDigits)
			}
			if p.localized != tt.wantLocal {
				t.Errorf("localized = %v, want %v", p.localized, tt.wantLocal)
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name        string
		locale      string
		useDecimals bool
		value       float64
		want        string
	}{
		{
			name:        "US grouping with decimals",
			locale:      "en-US",
			useDecimals: true,
			value:       1234.56,
			want:        "1,234.56",
		},
		{
			name:        "Indonesian grouping without decimals",
			locale:      "id-ID",
			useDecimals: false,
			value:       17500,
			want:        "17.500",
		},
		{
			name:        "decimals padded to two digits",
			locale:      "en-US",
			useDecimals: true,
			value:       5,
			want:        "5.00",
		},
		{
			name:        "fallback is plain fixed point",
			locale:      "!!not-a-locale!!",
			useDecimals: true,
			value:       1234.56,
			want:        "1234.56",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewFormattingPolicy(tt.locale, tt.useDecimals)
			if got := p.Format(tt.value); got != tt.want {
				t.Errorf("Format(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
