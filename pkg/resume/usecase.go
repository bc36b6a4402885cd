package resume

import (
	"context"
	"log/slog"
	"strings"
)

// ParseUseCase: разбор загруженного резюме в профиль.
type ParseUseCase interface {
	Parse(ctx context.Context, filename string, data []byte) (ParseResult, error)
}

type parseService struct {
	text   TextExtractor
	skills SkillExtractor
}

// NewParseService creates the default implementation.
func NewParseService(text TextExtractor, skills SkillExtractor) ParseUseCase {
	return &parseService{text: text, skills: skills}
}

func (s *parseService) Parse(ctx context.Context, filename string, data []byte) (ParseResult, error) {
	kind, err := KindFromFilename(filename)
	if err != nil {
		return ParseResult{}, err
	}
	raw, err := s.text.ExtractText(ctx, data, kind)
	if err != nil {
		return ParseResult{}, err
	}
	if strings.TrimSpace(raw) == "" {
		return ParseResult{}, ErrEmptyDocument
	}
	p := BuildProfile(raw, s.skills)
	slog.Debug("resume parsed",
		slog.String("filename", filename),
		slog.Int("chars", len(raw)),
		slog.Int("skills", len(p.Skills)),
	)
	return ParseResult{Filename: filename, Profile: p}, nil
}
