package resume

import (
	"regexp"
	"strings"

	"github.com/artem13815/resumematch/pkg/nlp"
)

// Name is looked for only in the first lines of the document.
const maxNameLines = 8

var (
	reEmail = regexp.MustCompile(`(?i)[a-z0-9._%+-]+@[a-z0-9.-]+\.[a-z]{2,}`)
	// optional +91 country code, then a mobile number starting with 6-9
	rePhone    = regexp.MustCompile(`(?:\+?91[-\s]*)?[6-9]\d{9}`)
	reNameLine = regexp.MustCompile(`^[A-Za-z .'-]+$`)
)

// ExtractEmail returns the first e-mail address in text or "".
func ExtractEmail(text string) string {
	return reEmail.FindString(text)
}

// ExtractPhone returns the first mobile phone number in text or "".
func ExtractPhone(text string) string {
	return rePhone.FindString(text)
}

// GuessName returns the first short line near the top of the raw document
// that looks like a person's name: 2-4 words of letters, spaces, periods,
// apostrophes and hyphens, with no contact details on it.
func GuessName(raw string) string {
	for _, ln := range nlp.Lines(raw, maxNameLines) {
		if ExtractEmail(ln) != "" || ExtractPhone(ln) != "" {
			continue
		}
		words := nlp.Words(ln)
		if len(words) < 2 || len(words) > 4 || !reNameLine.MatchString(ln) {
			continue
		}
		return strings.Join(words, " ")
	}
	return ""
}

// BuildProfile extracts contact fields and skills from raw document text.
// The name is guessed on the raw text, everything else on the cleaned one.
func BuildProfile(raw string, skills SkillExtractor) Profile {
	text := nlp.Clean(raw)
	p := Profile{
		Name:   GuessName(raw),
		Email:  ExtractEmail(text),
		Phone:  ExtractPhone(text),
		Skills: []string{},
	}
	if skills != nil {
		if found := skills.Extract(text); found != nil {
			p.Skills = found
		}
	}
	return p
}
