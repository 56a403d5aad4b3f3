package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage_Normalize(t *testing.T) {
	tests := []struct {
		name string
		in   Page
		want Page
	}{
		{name: "zero value", in: Page{}, want: Page{Limit: DefaultPageLimit}},
		{name: "within bounds", in: Page{Limit: 5, Offset: 10}, want: Page{Limit: 5, Offset: 10}},
		{name: "limit too large", in: Page{Limit: 1000}, want: Page{Limit: MaxPageLimit}},
		{name: "negative values", in: Page{Limit: -1, Offset: -5}, want: Page{Limit: DefaultPageLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}
