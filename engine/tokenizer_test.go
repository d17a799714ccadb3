package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	type testCase struct {
		name     string
		input    string
		expected []string
	}

	cases := []testCase{
		{name: "empty input", input: "", expected: nil},
		{name: "blank input", input: "   \t ", expected: nil},
		{name: "plain words", input: "npm install lodash", expected: []string{"npm", "install", "lodash"}},
		{name: "whitespace runs", input: "npm   install\t lodash", expected: []string{"npm", "install", "lodash"}},
		{
			name:     "double quoted span",
			input:    `npm init --init-author-name="John Doe"`,
			expected: []string{"npm", "init", "--init-author-name=John Doe"},
		},
		{
			name:     "single quoted span",
			input:    "npm run 'my script'",
			expected: []string{"npm", "run", "my script"},
		},
		{
			name:     "quote delimiters stripped",
			input:    `"hello"`,
			expected: []string{"hello"},
		},
		{
			name:     "unterminated quote consumes to end",
			input:    `npm run "watch build`,
			expected: []string{"npm", "run", "watch build"},
		},
		{
			name:     "no escape handling",
			input:    `npm run a\"b`,
			expected: []string{"npm", "run", `a\b`},
		},
		{
			name:     "other quote kind kept inside span",
			input:    `npm run "it's fine"`,
			expected: []string{"npm", "run", "it's fine"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Tokenize(tc.input))
		})
	}
}
