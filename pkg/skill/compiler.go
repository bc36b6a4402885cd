package skill

import (
	"regexp"
	"strings"
	"unicode"
)

// DefaultCategory is used for definitions stored without a category.
const DefaultCategory = "General"

// override is a hand-written expression for a term the generic builder would
// get wrong: single letters colliding with longer names, or terms that are a
// prefix of an unrelated technology.
type override struct {
	expr          string
	notFollowedBy string
	notPrecededBy string
}

// overrides maps a lower-cased term to the patterns emitted instead of the
// generic one. Extend the table, not the builder.
var overrides = map[string][]override{
	"c":          {{expr: `\bc\b`, notFollowedBy: `^(?:\+\+|#)`}},
	"c++":        {{expr: `\bc\+\+`}},
	"c#":         {{expr: `\bc#`}},
	"java":       {{expr: `\bjava\b`, notFollowedBy: `^\s*script`}},
	"javascript": {{expr: `\bjavascript\b`}, {expr: `\bjs\b`}},
	"typescript": {{expr: `\btypescript\b`}, {expr: `\bts\b`}},
	"node.js":    {{expr: `\bnode\.?js\b`}},
	"nodejs":     {{expr: `\bnode\.?js\b`}},
	"next.js":    {{expr: `\bnext\.?js\b`}},
	"nextjs":     {{expr: `\bnext\.?js\b`}},
	"mongodb":    {{expr: `\bmongo\s?db\b`}},
	"mongo db":   {{expr: `\bmongo\s?db\b`}},
	"rest api":   {{expr: `\brest\s*api\b`}},
}

var compiledOverrides = func() map[string][]Pattern {
	out := make(map[string][]Pattern, len(overrides))
	for term, list := range overrides {
		for _, o := range list {
			p := Pattern{re: regexp.MustCompile(`(?i)` + o.expr)}
			if o.notFollowedBy != "" {
				p.notFollowedBy = regexp.MustCompile(`(?i)` + o.notFollowedBy)
			}
			if o.notPrecededBy != "" {
				p.notPrecededBy = regexp.MustCompile(`(?i)` + o.notPrecededBy)
			}
			out[term] = append(out[term], p)
		}
	}
	return out
}()

const (
	// separators allowed where a term has internal whitespace: "power bi"
	// matches "power bi", "powerbi" and "power-bi".
	separators = `[\s\-_/]*`
	// non-word context for edges that \b cannot describe (punctuation and
	// non-ASCII letters; RE2 \b is ASCII only).
	leadNonWord  = `(?:^|[^\p{L}\p{N}_])`
	trailNonWord = `(?:[^\p{L}\p{N}_]|$)`
)

// Compile turns a definition into a rule. It is deterministic: the same
// definition always yields patterns with identical sources in identical order.
func Compile(d Definition) Rule {
	d = Canonical(d)
	rule := Rule{Name: d.Name, Category: d.Category}

	seen := map[string]struct{}{}
	add := func(p Pattern) {
		key := p.String()
		if p.notFollowedBy != nil {
			key += "|nf:" + p.notFollowedBy.String()
		}
		if p.notPrecededBy != nil {
			key += "|np:" + p.notPrecededBy.String()
		}
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		rule.Patterns = append(rule.Patterns, p)
	}

	for _, term := range Terms(d) {
		if list, ok := compiledOverrides[term]; ok {
			for _, p := range list {
				add(p)
			}
			continue
		}
		add(Pattern{re: regexp.MustCompile(TermExpr(term))})
	}

	for _, g := range d.NegativeGuards {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)` + g)
		if err != nil {
			// not a valid expression: treat it as literal text
			re = regexp.MustCompile(`(?i)` + regexp.QuoteMeta(g))
		}
		rule.Guards = append(rule.Guards, re)
	}
	return rule
}

// Canonical lower-cases and trims name and synonyms, drops empty entries and
// fills the default category.
func Canonical(d Definition) Definition {
	out := Definition{
		Name:     strings.ToLower(strings.TrimSpace(d.Name)),
		Category: strings.TrimSpace(d.Category),
	}
	if out.Category == "" {
		out.Category = DefaultCategory
	}
	for _, s := range d.Synonyms {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out.Synonyms = append(out.Synonyms, s)
		}
	}
	for _, g := range d.NegativeGuards {
		if g = strings.TrimSpace(g); g != "" {
			out.NegativeGuards = append(out.NegativeGuards, g)
		}
	}
	return out
}

// Terms returns [name, synonyms...] lower-cased, without empty or repeated entries.
func Terms(d Definition) []string {
	var out []string
	seen := map[string]struct{}{}
	for _, t := range append([]string{d.Name}, d.Synonyms...) {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// TermExpr builds the generic whole-word expression for a lower-cased term:
// literal characters are escaped, internal punctuation is optional, internal
// whitespace accepts any run of separators, and both ends are anchored.
func TermExpr(term string) string {
	runes := []rune(term)
	if len(runes) == 0 {
		return `(?i)$^`
	}
	var b strings.Builder
	b.WriteString(`(?i)`)

	first, last := runes[0], runes[len(runes)-1]
	if isASCIIWord(first) {
		b.WriteString(`\b`)
	} else {
		b.WriteString(leadNonWord)
	}

	inSpace := false
	for i, r := range runes {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteString(separators)
			}
			inSpace = true
			continue
		}
		inSpace = false
		lit := regexp.QuoteMeta(string(r))
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_':
			b.WriteString(lit)
		case i == 0 || i == len(runes)-1:
			b.WriteString(lit)
		default:
			b.WriteString(lit + "?")
		}
	}

	switch {
	case isASCIIWord(last):
		b.WriteString(`\b`)
	case unicode.IsLetter(last) || unicode.IsDigit(last):
		b.WriteString(trailNonWord)
	}
	return b.String()
}

func isASCIIWord(r rune) bool {
	return r < unicode.MaxASCII && (r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r))
}
