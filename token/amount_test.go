package token

import (
	"testing"

	"github.com/juju/errors"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   uint64
		decimals int
		opts     *FormatOptions
		want     string
	}{
		{name: "zero", amount: 0, decimals: 0, want: "0"},
		{name: "zero-with-decimals", amount: 0, decimals: 8, want: "0"},
		{name: "integral", amount: 123456, decimals: 0, want: "123456"},
		{name: "two-decimals", amount: 123456, decimals: 2, want: "1234.56"},
		{name: "trailing-zeros-trimmed", amount: 100, decimals: 2, want: "1"},
		{name: "sub-unit", amount: 5, decimals: 8, want: "0.00000005"},
		{name: "max-decimals", amount: 1, decimals: 19, want: "0.0000000000000000001"},
		{name: "decimals-clamped", amount: 1, decimals: 25, want: "0.0000000000000000001"},
		{name: "max-amount", amount: MaxAmount, decimals: 8, want: "92233720368.54775807"},
		{
			name:     "min-fractional-digits",
			amount:   100,
			decimals: 2,
			opts:     &FormatOptions{MinFractionalDigits: 2},
			want:     "1.00",
		},
		{
			name:     "diff",
			amount:   150,
			decimals: 2,
			opts:     &FormatOptions{Diff: true},
			want:     "+1.5",
		},
		{
			name:     "width",
			amount:   150,
			decimals: 2,
			opts:     &FormatOptions{Width: 8},
			want:     "     1.5",
		},
		{
			name:     "raw-units",
			amount:   150,
			decimals: 2,
			opts:     &FormatOptions{AppendRawUnits: true},
			want:     "1.5 (150)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatAmount(tt.amount, tt.decimals, tt.opts); got != tt.want {
				t.Errorf("FormatAmount(%d, %d) = %q, want %q", tt.amount, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		decimals int
		want     uint64
		wantErr  bool
	}{
		{name: "zero", in: "0", decimals: 8, want: 0},
		{name: "integral", in: "123456", decimals: 0, want: 123456},
		{name: "two-decimals", in: "1234.56", decimals: 2, want: 123456},
		{name: "short-fraction-padded", in: "1.5", decimals: 2, want: 150},
		{name: "excess-fraction-truncated", in: "1.567", decimals: 2, want: 156},
		{name: "leading-dot", in: ".5", decimals: 2, want: 50},
		{name: "trailing-dot", in: "5.", decimals: 2, want: 500},
		{name: "diff-prefix", in: "+1.5", decimals: 2, want: 150},
		{name: "padded", in: "   1.5", decimals: 2, want: 150},
		{name: "raw-units-annotation", in: "1.5 (150)", decimals: 2, want: 150},
		{name: "max-amount", in: "92233720368.54775807", decimals: 8, want: MaxAmount},
		{name: "empty", in: "", decimals: 2, wantErr: true},
		{name: "bare-dot", in: ".", decimals: 2, wantErr: true},
		{name: "negative", in: "-1", decimals: 2, wantErr: true},
		{name: "letters", in: "1x5", decimals: 2, wantErr: true},
		{name: "double-dot", in: "1.2.3", decimals: 2, wantErr: true},
		{name: "exceeds-max-amount", in: "92233720368.54775808", decimals: 8, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in, tt.decimals)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseAmount(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
				return
			}
			if err != nil {
				if errors.Cause(err) != ErrInvalidAmount {
					t.Errorf("ParseAmount(%q) error %v does not wrap ErrInvalidAmount", tt.in, err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestAmountRoundTrip(t *testing.T) {
	amounts := []uint64{0, 1, 9, 10, 99, 100, 12345, 1000000007, MaxAmount}
	for decimals := 0; decimals <= MaxDecimals; decimals++ {
		for _, amount := range amounts {
			s := FormatAmount(amount, decimals, nil)
			got, err := ParseAmount(s, decimals)
			if err != nil {
				t.Fatalf("ParseAmount(%q, %d): %v", s, decimals, err)
			}
			if got != amount {
				t.Errorf("round trip of %d at %d decimals: %q -> %d", amount, decimals, s, got)
			}
		}
	}
}
