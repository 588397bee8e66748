// Package rules holds the rule repository the importer resolves rule
// ids against. The parser only produces keys; the repository supplies
// display metadata so unknown keys can be reported.
package rules

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Rule is the display metadata for one repository key.
type Rule struct {
	Key         string `yaml:"key"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

type document struct {
	Name  string `yaml:"name"`
	Rules []Rule `yaml:"rules"`
}

// Repository maps rule ids to metadata.
type Repository struct {
	rules map[string]Rule
}

// Remapped MISRA keys are valid without being listed individually.
var misraKeyPattern = regexp.MustCompile(
	`^M(2012-)?(\d{1,2}\.\d{1,2}|\d{1,2}-\d{1,2}-\d{1,2})$`)

// Load reads a repository from a YAML file.
func Load(path string) (*Repository, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var doc document
	if err := yaml.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing rule repository %s: %w", path, err)
	}

	repo := &Repository{rules: make(map[string]Rule, len(doc.Rules))}
	for _, r := range doc.Rules {
		repo.rules[r.Key] = r
	}
	return repo, nil
}

// Default returns a repository with no listed rules. Remapped MISRA
// keys are still recognized.
func Default() *Repository {
	return &Repository{rules: map[string]Rule{}}
}

// Get returns the metadata for key.
func (r *Repository) Get(key string) (Rule, bool) {
	rule, ok := r.rules[key]
	return rule, ok
}

// Known reports whether key is listed in the repository or has the
// shape of a remapped MISRA key.
func (r *Repository) Known(key string) bool {
	if _, ok := r.rules[key]; ok {
		return true
	}
	return misraKeyPattern.MatchString(key)
}

// Len returns the number of listed rules.
func (r *Repository) Len() int {
	return len(r.rules)
}

// WriteStarter writes a starter repository file with a handful of
// common PC-lint message numbers to build on.
func WriteStarter(path string) error {
	doc := document{
		Name: "pclint",
		Rules: []Rule{
			{Key: "530", Name: "Symbol not initialized"},
			{Key: "534", Name: "Ignoring return value of function"},
			{Key: "644", Name: "Variable may not have been initialized"},
			{Key: "714", Name: "Symbol not referenced"},
			{Key: "818", Name: "Pointer parameter could be declared as pointing to const"},
		},
	}

	d, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	return err
}
