//go:build unit

package workorder_test

import (
	"testing"

	"fleet-workflow/internal/domain/workorder"
	"fleet-workflow/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartWithPrice(t *testing.T) {
	testCases := []struct {
		name    string
		price   string
		wantErr bool
	}{
		{name: "two decimals", price: "10.05"},
		{name: "trailing zeros beyond cents", price: "10.500"},
		{name: "whole amount", price: "20"},
		{name: "largest storable", price: "9999999999.99"},
		{name: "sub-cent precision", price: "10.005", wantErr: true},
		{name: "negative", price: "-1", wantErr: true},
		{name: "past the column range", price: "10000000000", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			part, err := workorder.NewPart("P1", "Bosch", "Filtro", 1)
			require.NoError(t, err)

			priced, err := part.WithPrice(decimal.RequireFromString(tc.price))

			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, errs.Is(err, workorder.ErrInvalidPart))
				assert.Equal(t, errs.KindValidation, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			price, ok := priced.UnitPrice()
			require.True(t, ok)
			assert.True(t, price.Equal(decimal.RequireFromString(tc.price)))
		})
	}
}
