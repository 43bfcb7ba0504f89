package catalog

import (
	"fmt"
	"os"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gracobjo/sentencias/internal/model"
)

// Manager owns the live catalog. Readers take lock-free snapshots; updates
// validate, recompile and publish a new snapshot atomically, so every
// extractor call after a successful update observes the new catalog.
type Manager struct {
	mu   sync.Mutex // serializes writers
	snap atomic.Pointer[Snapshot]
}

// NewManager builds a manager from explicit categories and the built-in
// regex groups
func NewManager(categories []Category) (*Manager, error) {
	snap, err := compile(categories, DefaultGroups())
	if err != nil {
		return nil, err
	}
	m := &Manager{}
	m.snap.Store(snap)
	return m, nil
}

// Load builds a manager from a catalog file, or from the built-in
// categories when path is empty
func Load(path string) (*Manager, error) {
	if path == "" {
		return NewManager(DefaultCategories())
	}
	categories, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	return NewManager(categories)
}

// Snapshot returns the current immutable catalog view
func (m *Manager) Snapshot() *Snapshot {
	return m.snap.Load()
}

// CreateCategory adds a new category with the given phrase variants
func (m *Manager) CreateCategory(name string, variants []string) error {
	return m.update(func(cats []Category) ([]Category, error) {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &model.ConfigurationError{Reason: "category name is empty"}
		}
		if findCategory(cats, name) >= 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q already exists", name)}
		}
		return append(cats, Category{Name: name, Variants: variants}), nil
	})
}

// RenameCategory changes a category's name, keeping its phrases
func (m *Manager) RenameCategory(oldName, newName string) error {
	return m.update(func(cats []Category) ([]Category, error) {
		newName = strings.TrimSpace(newName)
		if newName == "" {
			return nil, &model.ConfigurationError{Reason: "new category name is empty"}
		}
		i := findCategory(cats, oldName)
		if i < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q not found", oldName)}
		}
		if j := findCategory(cats, newName); j >= 0 && j != i {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q already exists", newName)}
		}
		cats[i].Name = newName
		return cats, nil
	})
}

// DeleteCategory removes a category and all its phrases
func (m *Manager) DeleteCategory(name string) error {
	return m.update(func(cats []Category) ([]Category, error) {
		i := findCategory(cats, name)
		if i < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q not found", name)}
		}
		return append(cats[:i], cats[i+1:]...), nil
	})
}

// AddPhrase appends a phrase variant to a category
func (m *Manager) AddPhrase(category, phrase string) error {
	return m.update(func(cats []Category) ([]Category, error) {
		phrase = strings.TrimSpace(phrase)
		if phrase == "" {
			return nil, &model.ConfigurationError{Reason: "phrase is empty"}
		}
		i := findCategory(cats, category)
		if i < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q not found", category)}
		}
		cats[i].Variants = append(cats[i].Variants, phrase)
		return cats, nil
	})
}

// RemovePhrase deletes a phrase variant from a category
func (m *Manager) RemovePhrase(category, phrase string) error {
	return m.update(func(cats []Category) ([]Category, error) {
		i := findCategory(cats, category)
		if i < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q not found", category)}
		}
		j := findVariant(cats[i].Variants, phrase)
		if j < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("phrase %q not found in %q", phrase, category)}
		}
		cats[i].Variants = append(cats[i].Variants[:j], cats[i].Variants[j+1:]...)
		return cats, nil
	})
}

// RenamePhrase replaces a phrase variant inside a category
func (m *Manager) RenamePhrase(category, oldPhrase, newPhrase string) error {
	return m.update(func(cats []Category) ([]Category, error) {
		newPhrase = strings.TrimSpace(newPhrase)
		if newPhrase == "" {
			return nil, &model.ConfigurationError{Reason: "new phrase is empty"}
		}
		i := findCategory(cats, category)
		if i < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q not found", category)}
		}
		j := findVariant(cats[i].Variants, oldPhrase)
		if j < 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("phrase %q not found in %q", oldPhrase, category)}
		}
		cats[i].Variants[j] = newPhrase
		return cats, nil
	})
}

// Save writes the current categories to a catalog file
func (m *Manager) Save(path string) error {
	data, err := marshalYAML(m.Snapshot().Categories())
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write catalog: %w", err)
	}
	return nil
}

// update applies a mutation to a deep copy of the categories, revalidates
// and recompiles, and publishes the result. Nothing is published when the
// mutation or the compilation fails.
func (m *Manager) update(mutate func([]Category) ([]Category, error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cats := cloneCategories(m.Snapshot().Categories())
	cats, err := mutate(cats)
	if err != nil {
		return err
	}
	snap, err := compile(cats, DefaultGroups())
	if err != nil {
		return err
	}
	m.snap.Store(snap)
	return nil
}

func cloneCategories(categories []Category) []Category {
	out := make([]Category, len(categories))
	for i, cat := range categories {
		out[i] = Category{
			Name:     cat.Name,
			Variants: append([]string(nil), cat.Variants...),
		}
	}
	return out
}

func findCategory(categories []Category, name string) int {
	for i, cat := range categories {
		if strings.EqualFold(cat.Name, strings.TrimSpace(name)) {
			return i
		}
	}
	return -1
}

func findVariant(variants []string, phrase string) int {
	for i, v := range variants {
		if strings.EqualFold(v, strings.TrimSpace(phrase)) {
			return i
		}
	}
	return -1
}
