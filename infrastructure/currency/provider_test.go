package currency

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProvider_DecimalDigits(t *testing.T) {
	provider := NewProvider()

	tests := []struct {
		code     string
		expected int
	}{
		{code: "usd", expected: 2},
		{code: "EUR", expected: 2},
		{code: "jpy", expected: 0},
		{code: "kwd", expected: 3},
		{code: "xyz1", expected: DefaultDecimalDigits},
		{code: "", expected: DefaultDecimalDigits},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.expected, provider.DecimalDigits(tt.code))
		})
	}
}
