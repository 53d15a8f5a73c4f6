package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rsharma/upi-tracker/internal/models"
)

func TestCategoryStore_SaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewCategoryStore(path, nil)

	categories := []models.CategoryConfig{
		{Name: "Food", Keywords: []string{"zomato", "swiggy"}},
		{Name: "Transport", Keywords: []string{"uber"}},
	}
	require.NoError(t, s.SaveCategories(categories))

	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Equal(t, categories, loaded)
}

func TestCategoryStore_LoadMissingFileReturnsNil(t *testing.T) {
	s := NewCategoryStore(filepath.Join(t.TempDir(), "absent.yaml"), nil)

	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCategoryStore_LoadBareList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	content := "- name: Food\n  keywords:\n    - zomato\n- name: Transport\n  keywords:\n    - uber\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	s := NewCategoryStore(path, nil)
	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Food", loaded[0].Name)
	assert.Equal(t, []string{"uber"}, loaded[1].Keywords)
}

func TestCategoryStore_LoadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	s := NewCategoryStore(path, nil)

	categories := []models.CategoryConfig{
		{Name: "Z-first", Keywords: []string{"z"}},
		{Name: "A-second", Keywords: []string{"a"}},
	}
	require.NoError(t, s.SaveCategories(categories))

	loaded, err := s.LoadCategories()
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, "Z-first", loaded[0].Name)
	assert.Equal(t, "A-second", loaded[1].Name)
}

func TestCategoryStore_LoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not valid: yaml: at all"), 0644))

	s := NewCategoryStore(path, nil)
	_, err := s.LoadCategories()
	assert.Error(t, err)
}

func TestCategoryStore_SaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "categories.yaml")
	s := NewCategoryStore(path, nil)

	require.NoError(t, s.SaveCategories([]models.CategoryConfig{{Name: "Food"}}))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
