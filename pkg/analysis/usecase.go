package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
)

const (
	DefaultHistoryLimit = 10
	MaxHistoryLimit     = 200
)

// UseCase: оценка соответствия резюме вакансии и история оценок.
type UseCase interface {
	Score(ctx context.Context, in ScoreInput) (Result, error)
	History(ctx context.Context, limit int) ([]Record, error)
}

type service struct {
	repo         Repository
	skills       SkillExtractor
	historyLimit int
}

// NewService wires the scorer. historyLimit is the default page size for
// History when the caller passes limit <= 0.
func NewService(repo Repository, skills SkillExtractor, historyLimit int) UseCase {
	if historyLimit <= 0 || historyLimit > MaxHistoryLimit {
		historyLimit = DefaultHistoryLimit
	}
	return &service{repo: repo, skills: skills, historyLimit: historyLimit}
}

// Score extracts skills from the job description, compares them with the
// resume skills and records the outcome. When only the write fails the
// computed result is returned together with an ErrPersistence error.
func (s *service) Score(ctx context.Context, in ScoreInput) (Result, error) {
	jd := in.JobDescription
	if strings.TrimSpace(jd) == "" {
		return Result{}, ErrMissingJobDescription
	}

	jdSkills := s.skills.Extract(strings.ToLower(jd))
	if jdSkills == nil {
		jdSkills = []string{}
	}
	matched, missing, score := ComputeMatch(jdSkills, in.ResumeSkills)

	rec := Record{
		Skills:  nonNil(in.ResumeSkills),
		JD:      jd,
		Matched: matched,
		Missing: missing,
		Score:   score,
	}
	if in.Resume != nil {
		rec.Filename = in.Resume.Filename
		rec.Name = in.Resume.Name
		rec.Email = in.Resume.Email
		rec.Phone = in.Resume.Phone
	}

	res := Result{
		Score:    score,
		Matched:  matched,
		Missing:  missing,
		JDSkills: jdSkills,
	}
	saved, err := s.repo.Create(ctx, rec)
	if err != nil {
		slog.Error("match record not persisted", slog.Int("score", score), slog.Any("error", err))
		return res, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	res.ID = saved.ID
	res.Persisted = true
	return res, nil
}

func (s *service) History(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = s.historyLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	items, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []Record{}
	}
	return items, nil
}

// ComputeMatch splits jdSkills into those present in resumeSkills and those
// absent (case-insensitive), keeping jdSkills order, and returns the share of
// matched skills as a rounded percentage. With no jdSkills the score is 0.
func ComputeMatch(jdSkills, resumeSkills []string) (matched, missing []string, score int) {
	have := make(map[string]struct{}, len(resumeSkills))
	for _, s := range resumeSkills {
		have[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}
	matched, missing = []string{}, []string{}
	for _, s := range jdSkills {
		if _, ok := have[strings.ToLower(s)]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	total := len(jdSkills)
	if total == 0 {
		total = 1
	}
	score = int(math.Round(float64(len(matched)) / float64(total) * 100))
	return matched, missing, score
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
