// Package classifier assigns spending categories to transaction descriptions
// using an ordered list of pattern rules with an unconditional fallback.
package classifier

import (
	"context"
	"regexp"
	"strings"

	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
)

// rule is one compiled classification rule. Rules are evaluated in order and
// the first rule with any matching pattern wins.
type rule struct {
	category string
	patterns []*regexp.Regexp
}

// Classifier maps free-text transaction descriptions to category labels.
// Classification is case-insensitive: the description is lower-cased at
// match time only, stored text is never rewritten.
type Classifier struct {
	rules     []rule
	suggester Suggester
	logger    logging.Logger
}

// New builds a Classifier from ordered category configs. When configs is
// empty the built-in default rule set is used. Patterns that fail to compile
// are skipped with a warning; they never make construction fail.
func New(configs []models.CategoryConfig, logger logging.Logger) *Classifier {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if len(configs) == 0 {
		configs = DefaultCategories()
	}

	c := &Classifier{logger: logger}
	for _, cfg := range configs {
		r := rule{category: cfg.Name}
		for _, pattern := range cfg.Keywords {
			re, err := regexp.Compile(strings.ToLower(pattern))
			if err != nil {
				logger.WithError(err).WithFields(
					logging.Field{Key: logging.FieldCategory, Value: cfg.Name},
					logging.Field{Key: logging.FieldKeyword, Value: pattern},
				).Warn("Skipping invalid category pattern")
				continue
			}
			r.patterns = append(r.patterns, re)
		}
		c.rules = append(c.rules, r)
	}

	logger.WithField(logging.FieldCount, len(c.rules)).Debug("Classifier rules loaded")
	return c
}

// SetSuggester installs an optional suggestion backend consulted only when
// no rule matches, before falling back to the default category.
func (c *Classifier) SetSuggester(s Suggester) {
	c.suggester = s
}

// Categories returns the configured category labels in priority order,
// including the fallback label.
func (c *Classifier) Categories() []string {
	labels := make([]string, 0, len(c.rules)+1)
	for _, r := range c.rules {
		labels = append(labels, r.category)
	}
	return append(labels, models.CategoryOther)
}

// Classify returns the category for a description. An already-set category
// (non-blank after trimming) is returned unchanged; otherwise rules are
// evaluated in priority order and the first match wins. The fallback
// guarantees a non-empty label for any input.
func (c *Classifier) Classify(description, existingCategory string) string {
	if existing := strings.TrimSpace(existingCategory); existing != "" {
		return existing
	}

	desc := strings.ToLower(description)
	for _, r := range c.rules {
		for _, re := range r.patterns {
			if re.MatchString(desc) {
				return r.category
			}
		}
	}

	if c.suggester != nil {
		if label, ok := c.suggest(description); ok {
			return label
		}
	}

	return models.CategoryOther
}

// suggest consults the optional suggestion backend. Any error or a label
// outside the configured set falls through to the fallback category.
func (c *Classifier) suggest(description string) (string, bool) {
	label, err := c.suggester.Suggest(context.Background(), description, c.Categories())
	if err != nil {
		c.logger.WithError(err).Warn("Category suggestion failed, using fallback")
		return "", false
	}

	label = strings.TrimSpace(label)
	for _, known := range c.Categories() {
		if strings.EqualFold(label, known) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldCategory, Value: known},
			).Debug("Category assigned by suggester")
			return known, true
		}
	}

	c.logger.WithField(logging.FieldCategory, label).Debug("Suggester returned unknown label")
	return "", false
}

// ClassifyAll applies Classify to every record and returns a new slice.
// Order and all non-category fields are preserved; records that already hold
// a category are untouched, so the operation is idempotent.
func (c *Classifier) ClassifyAll(records []models.Transaction) []models.Transaction {
	if len(records) == 0 {
		return records
	}

	out := make([]models.Transaction, len(records))
	copy(out, records)
	for i := range out {
		out[i].Category = c.Classify(out[i].Description, out[i].Category)
	}
	return out
}
