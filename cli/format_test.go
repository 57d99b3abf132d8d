package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupees(t *testing.T) {
	cases := map[float64]string{
		1161695.38: "₹1,161,695.38",
		600000:     "₹600,000.00",
		9321.3:     "₹9,321.30",
		0:          "₹0.00",
		-1500.5:    "-₹1,500.50",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatRupees(in), "input %v", in)
	}
}

func TestFormatYears(t *testing.T) {
	assert.Equal(t, "1 year", FormatYears(1))
	assert.Equal(t, "2.5 years", FormatYears(2.5))
	assert.Equal(t, "10 years", FormatYears(10))
}
