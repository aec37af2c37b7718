package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{label: "sports", want: "sports"},
		{label: "Sports", want: "sports"},
		{label: "  Real   Estate ", want: "real_estate"},
		{label: "", want: ""},
		{label: "   ", want: ""},
		{label: "all", want: ""},
		{label: "ALL", want: ""},
		{label: "_categories", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryName(tt.label))
		})
	}
}
