package target

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		input    string
		expected string
	}{
		{input: "-", expected: "-"},
		{input: "main.swift", expected: "/main.swift"},
		{input: "./src/../main.swift", expected: "/main.swift"},
		{input: "/abs/main.swift", expected: "/abs/main.swift"},
		{input: "file:///abs/main.swift", expected: "/abs/main.swift"},
		{input: "https://example.com/main.swift", expected: "https://example.com/main.swift"},
	}
	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.input, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, testCase.expected, Normalize(testCase.input))
		})
	}
}
