package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name         string
		response     string
		expectedText string
		snippetCount int
	}{
		{
			name:         "plain text, no widget",
			response:     "Ваш баланс 5000₽.",
			expectedText: "Ваш баланс 5000₽.",
			snippetCount: 0,
		},
		{
			name:         "text with one jsx block",
			response:     "Вот ваш баланс:\n```jsx\nfunction Balance() { return <div>{balance}</div>; }\n```",
			expectedText: "Вот ваш баланс:",
			snippetCount: 1,
		},
		{
			name:         "tsx block is also a widget",
			response:     "```tsx\nfunction W() { return null; }\n```",
			expectedText: "",
			snippetCount: 1,
		},
		{
			name:         "two blocks",
			response:     "a\n```jsx\none\n```\nb\n```jsx\ntwo\n```",
			expectedText: "a\n\nb",
			snippetCount: 2,
		},
		{
			name:         "other languages are not widgets",
			response:     "```python\nprint('hi')\n```",
			expectedText: "```python\nprint('hi')\n```",
			snippetCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, snippets := ParseResponse(tt.response)
			assert.Equal(t, tt.expectedText, text)
			assert.Len(t, snippets, tt.snippetCount)
		})
	}
}

func TestParseResponseSnippetContents(t *testing.T) {
	text, snippets := ParseResponse("Готово!\n```jsx\nfunction Widget() {\n  return <div/>;\n}\n```")

	assert.Equal(t, "Готово!", text)
	require.Len(t, snippets, 1)
	assert.Equal(t, "jsx", snippets[0].Language)
	assert.Equal(t, "function Widget() {\n  return <div/>;\n}", snippets[0].Code)
}
