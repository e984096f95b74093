package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "known key", input: "laptops", want: "laptops"},
		{name: "another known key", input: "phones", want: "phones"},
		{name: "unknown key", input: "fridges", want: "accessories"},
		{name: "empty", input: "", want: "accessories"},
		{name: "case sensitive", input: "Laptops", want: "accessories"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeCategory(tt.input))
		})
	}
}

func TestCategoryByKey(t *testing.T) {
	info, ok := CategoryByKey("consoles")
	assert.True(t, ok)
	assert.Equal(t, "Gaming Consoles", info.Name)

	_, ok = CategoryByKey("unknown")
	assert.False(t, ok)
}
