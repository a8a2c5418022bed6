//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payment struct {
	Currency string          `validate:"required,currency"`
	Phone    string          `validate:"omitempty,phone"`
	Amount   decimal.Decimal `validate:"gt=0"`
	Fee      decimal.Decimal `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   payment
		wantErr string
	}{
		{
			name:  "valid",
			input: payment{Currency: "KES", Phone: "+254 712 345678", Amount: decimal.NewFromInt(1500)},
		},
		{
			name:    "lower case currency",
			input:   payment{Currency: "kes", Amount: decimal.NewFromInt(1)},
			wantErr: "Field: Currency, Tag: currency",
		},
		{
			name:    "letters in phone",
			input:   payment{Currency: "USD", Phone: "call me", Amount: decimal.NewFromInt(1)},
			wantErr: "Field: Phone, Tag: phone",
		},
		{
			name:    "zero amount",
			input:   payment{Currency: "USD", Amount: decimal.Zero},
			wantErr: "Field: Amount, Tag: gt",
		},
		{
			name:    "negative fee",
			input:   payment{Currency: "USD", Amount: decimal.NewFromInt(1), Fee: decimal.NewFromInt(-1)},
			wantErr: "Field: Fee, Tag: gte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Struct(&tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNew_ReturnsSharedInstance(t *testing.T) {
	assert.Same(t, New(), New())
}

func TestErrValidation(t *testing.T) {
	err := Struct(&payment{})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "validation failed: [")

	assert.ErrorIs(t, Invalidf("event %s is not ticketed", "e1"), ErrValidation)
	assert.EqualError(t, Invalidf("event %s is not ticketed", "e1"), "validation failed: event e1 is not ticketed")
}
