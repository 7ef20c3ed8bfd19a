package categorizer

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/ai-wallet/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name        string
		description string
		expected    string
	}{
		{
			name:        "groceries keyword",
			description: "продукты",
			expected:    models.CategoryGroceries,
		},
		{
			name:        "transport keyword",
			description: "такси до дома",
			expected:    models.CategoryTransport,
		},
		{
			name:        "health keyword",
			description: "лекарство от простуды",
			expected:    models.CategoryHealth,
		},
		{
			name:        "cafe keyword",
			description: "обед с коллегами",
			expected:    models.CategoryCafe,
		},
		{
			name:        "case insensitive",
			description: "ПРОДУКТЫ В МАГАЗИНЕ",
			expected:    models.CategoryGroceries,
		},
		{
			name:        "substring match inside a word",
			description: "видеоигры",
			expected:    models.CategoryEntertainment,
		},
		{
			name:        "no keyword falls back",
			description: "что-то непонятное",
			expected:    models.CategoryOther,
		},
		{
			name:        "empty description falls back",
			description: "",
			expected:    models.CategoryOther,
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Categorize(tt.description))
		})
	}
}

func TestCategorizeFirstRuleWins(t *testing.T) {
	// "магазин одежды" contains keywords of both Продукты ("магазин") and
	// Одежда ("одежда"); the earlier table entry must win.
	c := New()
	assert.Equal(t, models.CategoryGroceries, c.Categorize("магазин одежды"))

	// Reversing the table order must flip the outcome.
	reversed := NewWithRules([]CategoryRule{
		{Name: models.CategoryClothing, Keywords: []string{"одежда"}},
		{Name: models.CategoryGroceries, Keywords: []string{"магазин"}},
	})
	assert.Equal(t, models.CategoryClothing, reversed.Categorize("магазин одежды"))
}

func TestDefaultRulesOrder(t *testing.T) {
	// The table order is a contract, not an accident.
	expected := []string{
		models.CategoryGroceries,
		models.CategoryTransport,
		models.CategoryEntertainment,
		models.CategoryHealth,
		models.CategoryClothing,
		models.CategoryCafe,
	}
	require.Len(t, DefaultRules, len(expected))
	for i, rule := range DefaultRules {
		assert.Equal(t, expected[i], rule.Name)
		assert.NotEmpty(t, rule.Keywords)
	}
}

func TestNewFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	content := `- name: Хобби
  keywords:
    - гитара
    - книги
- name: Питомцы
  keywords:
    - корм
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	c, err := NewFromYAML(path)
	require.NoError(t, err)
	require.Len(t, c.Rules(), 2)
	assert.Equal(t, "Хобби", c.Categorize("купил книги"))
	assert.Equal(t, "Питомцы", c.Categorize("корм для кота"))
	assert.Equal(t, models.CategoryOther, c.Categorize("продукты"))
}

func TestNewFromYAMLMissingFileUsesDefaults(t *testing.T) {
	c, err := NewFromYAML(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, models.CategoryGroceries, c.Categorize("продукты"))
}
