package store

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"rsharma/upi-tracker/internal/logging"
	"rsharma/upi-tracker/internal/models"
)

// CategoryStore loads and saves the ordered classification rules from a YAML
// file. An absent file is not an error: the classifier falls back to its
// built-in defaults.
type CategoryStore struct {
	CategoriesFile string
	logger         logging.Logger
}

// NewCategoryStore creates a store for the category rule file.
func NewCategoryStore(categoriesFile string, logger logging.Logger) *CategoryStore {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &CategoryStore{CategoriesFile: categoriesFile, logger: logger}
}

// LoadCategories reads the rule list, preserving file order (which is the
// classification priority order). Returns nil when the file does not exist.
func (s *CategoryStore) LoadCategories() ([]models.CategoryConfig, error) {
	data, err := os.ReadFile(s.CategoriesFile)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField(logging.FieldFile, s.CategoriesFile).
				Debug("Categories file not found, using built-in rules")
			return nil, nil
		}
		return nil, fmt.Errorf("error reading categories file: %w", err)
	}

	var config models.CategoriesConfig
	if err := yaml.Unmarshal(data, &config); err == nil && len(config.Categories) > 0 {
		s.logger.WithFields(
			logging.Field{Key: logging.FieldFile, Value: s.CategoriesFile},
			logging.Field{Key: logging.FieldCount, Value: len(config.Categories)},
		).Debug("Loaded category rules")
		return config.Categories, nil
	}

	// Fallback: a bare list without the top-level "categories" key.
	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("error parsing categories file: %w", err)
	}
	return categories, nil
}

// SaveCategories writes the rule list in the canonical file format. Used by
// the init command to materialize the built-in defaults for editing.
func (s *CategoryStore) SaveCategories(categories []models.CategoryConfig) error {
	dir := filepath.Dir(s.CategoriesFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	data, err := yaml.Marshal(models.CategoriesConfig{Categories: categories})
	if err != nil {
		return fmt.Errorf("error marshaling categories: %w", err)
	}

	if err := os.WriteFile(s.CategoriesFile, data, 0644); err != nil {
		return fmt.Errorf("error writing categories file: %w", err)
	}

	s.logger.WithFields(
		logging.Field{Key: logging.FieldFile, Value: s.CategoriesFile},
		logging.Field{Key: logging.FieldCount, Value: len(categories)},
	).Debug("Saved category rules")
	return nil
}
