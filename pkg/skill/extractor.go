package skill

import "sort"

// Match returns the names of rules with at least one positive pattern in
// text, deduplicated and sorted. Negative guards are not applied.
func Match(text string, rules []Rule) []string {
	found := map[string]struct{}{}
	for _, r := range rules {
		if _, ok := found[r.Name]; ok {
			continue
		}
		if r.Matches(text) {
			found[r.Name] = struct{}{}
		}
	}
	out := make([]string, 0, len(found))
	for name := range found {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Extractor applies the current cache snapshot.
type Extractor struct {
	cache *Cache
}

func NewExtractor(cache *Cache) *Extractor {
	return &Extractor{cache: cache}
}

// Extract returns the sorted set of catalog skills found in text.
func (e *Extractor) Extract(text string) []string {
	return Match(text, e.cache.Snapshot())
}
