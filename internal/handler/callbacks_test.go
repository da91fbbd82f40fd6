package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanCallbackData(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "normal string",
			input:    "ans_2",
			expected: "ans_2",
		},
		{
			name:     "string with whitespace",
			input:    "  imp_id-1  ",
			expected: "imp_id-1",
		},
		{
			name:     "string with newline",
			input:    "ans\n_1",
			expected: "ans_1",
		},
		{
			name:     "string with tab",
			input:    "ans\t_1",
			expected: "ans_1",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "only whitespace",
			input:    "   ",
			expected: "",
		},
		{
			name:     "string with unprintable characters",
			input:    "ans\x00_1\x01",
			expected: "ans_1",
		},
		{
			name:     "farsi text survives",
			input:    "خانه",
			expected: "خانه",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := cleanCallbackData(tt.input)
			assert.Equal(t, tt.expected, result)
		})
	}
}
