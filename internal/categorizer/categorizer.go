// Package categorizer infers a spending category from a free-text expense
// description using keyword matching against an ordered rule table.
package categorizer

import (
	"fmt"
	"os"
	"strings"

	"fjacquet/ai-wallet/internal/models"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// CategoryRule maps a category name to the keywords that select it.
type CategoryRule struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DefaultRules is the built-in rule table. Order matters: a description
// matching keywords from several rules gets the category of the first rule
// in the table, so the table is a slice and not a map.
var DefaultRules = []CategoryRule{
	{Name: models.CategoryGroceries, Keywords: []string{"продукт", "еда", "магазин", "супермаркет", "овощ", "мясо", "хлеб", "молоко"}},
	{Name: models.CategoryTransport, Keywords: []string{"метро", "автобус", "такси", "бензин", "парковка", "проезд"}},
	{Name: models.CategoryEntertainment, Keywords: []string{"кино", "театр", "концерт", "игр", "развлечение"}},
	{Name: models.CategoryHealth, Keywords: []string{"аптека", "врач", "лекарство", "медицина", "здоровье"}},
	{Name: models.CategoryClothing, Keywords: []string{"одежда", "обувь", "магазин одежды"}},
	{Name: models.CategoryCafe, Keywords: []string{"кафе", "ресторан", "кофе", "обед", "ужин", "завтрак"}},
}

// Categorizer assigns categories to descriptions via first-match-wins
// keyword lookup over its rule table.
type Categorizer struct {
	rules []CategoryRule
}

// New creates a Categorizer with the built-in rule table.
func New() *Categorizer {
	return &Categorizer{rules: DefaultRules}
}

// NewWithRules creates a Categorizer with a custom rule table. An empty
// table means every description falls through to the fallback category.
func NewWithRules(rules []CategoryRule) *Categorizer {
	return &Categorizer{rules: rules}
}

// NewFromYAML loads the rule table from a YAML file. The file holds an
// ordered list of rules, which preserves the first-match-wins contract.
// A missing file falls back to the built-in table.
func NewFromYAML(path string) (*Categorizer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.WithField("file", path).Debug("Categories file not found, using built-in rules")
			return New(), nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var rules []CategoryRule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	if len(rules) == 0 {
		log.WithField("file", path).Warn("Categories file is empty, using built-in rules")
		return New(), nil
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(rules),
	}).Debug("Loaded category rules")
	return &Categorizer{rules: rules}, nil
}

// Rules returns the active rule table in evaluation order.
func (c *Categorizer) Rules() []CategoryRule {
	return c.rules
}

// Categorize returns the category of the first rule with a keyword that
// appears in the description, case-insensitively. Descriptions that match
// nothing get the fallback category.
func (c *Categorizer) Categorize(description string) string {
	desc := strings.ToLower(description)

	for _, rule := range c.rules {
		for _, keyword := range rule.Keywords {
			if strings.Contains(desc, strings.ToLower(keyword)) {
				log.WithFields(logrus.Fields{
					"description": description,
					"keyword":     keyword,
					"category":    rule.Name,
				}).Debug("Description categorized by keyword")
				return rule.Name
			}
		}
	}

	return models.CategoryOther
}
