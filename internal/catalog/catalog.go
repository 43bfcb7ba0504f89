package catalog

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gracobjo/sentencias/internal/model"
)

// Category is a named, ordered set of phrase variants
type Category struct {
	Name     string
	Variants []string
}

// Snapshot is an immutable, fully compiled view of the catalog. Extractors
// and detectors hold it only for the duration of a single call.
type Snapshot struct {
	categories  []Category
	matchers    map[string][]VariantMatcher
	groups      map[GroupName][]*regexp.Regexp
	fingerprint string
}

// VariantMatcher pairs a phrase variant with its compiled pattern
type VariantMatcher struct {
	Phrase  string
	Pattern *regexp.Regexp
}

// Categories returns the categories in their load order
func (s *Snapshot) Categories() []Category {
	return s.categories
}

// Matchers returns the compiled matchers for one category
func (s *Snapshot) Matchers(category string) []VariantMatcher {
	return s.matchers[category]
}

// Group returns the compiled regex group with the given name
func (s *Snapshot) Group(name GroupName) []*regexp.Regexp {
	return s.groups[name]
}

// Fingerprint identifies this catalog's exact content. Caches mix it into
// their keys so analyses computed under an older catalog are never served
// after an edit.
func (s *Snapshot) Fingerprint() string {
	return s.fingerprint
}

// compile validates the categories and builds an immutable snapshot.
// Regex compilation happens exactly once per catalog load.
func compile(categories []Category, groups map[GroupName][]string) (*Snapshot, error) {
	if len(categories) == 0 {
		return nil, &model.ConfigurationError{Reason: "catalog is empty"}
	}

	seen := make(map[string]bool, len(categories))
	snap := &Snapshot{
		matchers: make(map[string][]VariantMatcher, len(categories)),
		groups:   make(map[GroupName][]*regexp.Regexp, len(groups)),
	}

	for _, cat := range categories {
		name := strings.TrimSpace(cat.Name)
		if name == "" {
			return nil, &model.ConfigurationError{Reason: "category with empty name"}
		}
		key := strings.ToLower(name)
		if seen[key] {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("duplicate category %q", name)}
		}
		seen[key] = true

		variants := dedupeVariants(cat.Variants)
		if len(variants) == 0 {
			return nil, &model.ConfigurationError{Reason: fmt.Sprintf("category %q has no phrases", name)}
		}

		matchers := make([]VariantMatcher, 0, len(variants))
		for _, v := range variants {
			pattern, err := regexp.Compile(variantPattern(v))
			if err != nil {
				return nil, &model.ConfigurationError{Reason: fmt.Sprintf("phrase %q in %q: %v", v, name, err)}
			}
			matchers = append(matchers, VariantMatcher{Phrase: v, Pattern: pattern})
		}

		snap.categories = append(snap.categories, Category{Name: name, Variants: variants})
		snap.matchers[name] = matchers
	}

	for name, patterns := range groups {
		compiled := make([]*regexp.Regexp, 0, len(patterns))
		for _, p := range patterns {
			re, err := regexp.Compile(`(?is)` + p)
			if err != nil {
				return nil, &model.ConfigurationError{Reason: fmt.Sprintf("group %s pattern %q: %v", name, p, err)}
			}
			compiled = append(compiled, re)
		}
		snap.groups[name] = compiled
	}

	snap.fingerprint = fingerprint(snap.categories)
	return snap, nil
}

// fingerprint hashes every category name and variant in order
func fingerprint(categories []Category) string {
	h := sha256.New()
	for _, cat := range categories {
		h.Write([]byte(cat.Name))
		h.Write([]byte{0})
		for _, v := range cat.Variants {
			h.Write([]byte(v))
			h.Write([]byte{1})
		}
	}
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// variantPattern builds a case-insensitive pattern that treats whitespace,
// hyphens and underscores in the variant as equivalent separators.
func variantPattern(variant string) string {
	tokens := separatorRun.Split(variant, -1)
	escaped := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		escaped = append(escaped, regexp.QuoteMeta(t))
	}
	return `(?i)` + strings.Join(escaped, `[\s\-_]+`)
}

var separatorRun = regexp.MustCompile(`[\s\-_]+`)

// dedupeVariants trims, drops empties and removes case-insensitive
// duplicates while keeping first-seen order
func dedupeVariants(variants []string) []string {
	seen := make(map[string]bool, len(variants))
	var out []string
	for _, v := range variants {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, v)
	}
	return out
}

// LoadFile reads a category→phrases mapping from a YAML file
func LoadFile(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("read %s: %v", path, err)}
	}
	return parseYAML(data)
}

func parseYAML(data []byte) ([]Category, error) {
	var raw map[string][]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &model.ConfigurationError{Reason: fmt.Sprintf("catalog is not a category mapping: %v", err)}
	}
	if len(raw) == 0 {
		return nil, &model.ConfigurationError{Reason: "catalog is empty"}
	}

	// YAML maps are unordered; sort names for a stable load order
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	categories := make([]Category, 0, len(names))
	for _, name := range names {
		categories = append(categories, Category{Name: name, Variants: raw[name]})
	}
	return categories, nil
}

// marshalYAML renders categories back to the file format
func marshalYAML(categories []Category) ([]byte, error) {
	raw := make(map[string][]string, len(categories))
	for _, cat := range categories {
		raw[cat.Name] = cat.Variants
	}
	return yaml.Marshal(raw)
}
