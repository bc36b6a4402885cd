package skill

import (
	"context"
	"errors"
	"regexp"
)

var (
	// ErrCatalogUnavailable: источник каталога навыков недоступен.
	ErrCatalogUnavailable = errors.New("skill catalog unavailable")
	// ErrInvalidDefinition: определение навыка не прошло валидацию.
	ErrInvalidDefinition = errors.New("invalid skill definition")
	// ErrNotFound: навык с таким именем отсутствует в каталоге.
	ErrNotFound = errors.New("skill not found")
)

// Definition: запись каталога: каноническое имя, синонимы, категория
// и негативные guard-выражения для устранения ложных срабатываний.
type Definition struct {
	Name           string   `json:"name" yaml:"name" validate:"required,max=128"`
	Synonyms       []string `json:"synonyms" yaml:"synonyms,omitempty" validate:"dive,max=128"`
	Category       string   `json:"category" yaml:"category,omitempty" validate:"max=64"`
	NegativeGuards []string `json:"negativeGuards" yaml:"negative_guards,omitempty" validate:"dive,max=256"`
}

// Source: порт чтения всего каталога.
type Source interface {
	FetchAll(ctx context.Context) ([]Definition, error)
}

// Store: каталог с возможностью администрирования.
type Store interface {
	Source
	Upsert(ctx context.Context, d Definition) error
	Delete(ctx context.Context, name string) error
}

// Rule: скомпилированная форма Definition. После создания не меняется.
type Rule struct {
	Name     string
	Category string
	Patterns []Pattern
	// Guards compiled from Definition.NegativeGuards. They are carried with
	// the rule but not consulted by Match.
	Guards []*regexp.Regexp
}

// Matches reports whether any positive pattern of the rule occurs in text.
func (r Rule) Matches(text string) bool {
	for _, p := range r.Patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

// Pattern is a case-insensitive term pattern with optional context
// exclusions. RE2 has no lookaround, so "not followed by" and "not preceded
// by" are expressed as separate expressions checked around each hit.
type Pattern struct {
	re            *regexp.Regexp
	notFollowedBy *regexp.Regexp // anchored at the start of the text after the hit
	notPrecededBy *regexp.Regexp // anchored at the end of the text before the hit
}

// String returns the source of the main expression.
func (p Pattern) String() string {
	if p.re == nil {
		return ""
	}
	return p.re.String()
}

// MatchString reports whether text contains at least one acceptable hit.
func (p Pattern) MatchString(text string) bool {
	if p.re == nil {
		return false
	}
	if p.notFollowedBy == nil && p.notPrecededBy == nil {
		return p.re.MatchString(text)
	}
	for _, loc := range p.re.FindAllStringIndex(text, -1) {
		if p.notFollowedBy != nil && p.notFollowedBy.MatchString(text[loc[1]:]) {
			continue
		}
		if p.notPrecededBy != nil && p.notPrecededBy.MatchString(text[:loc[0]]) {
			continue
		}
		return true
	}
	return false
}
