package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/resumematch/pkg/analysis"
	"github.com/artem13815/resumematch/pkg/resume"
	"github.com/artem13815/resumematch/pkg/skill"
)

type fakeText struct {
	text  string
	err   error
	calls int
}

func (f *fakeText) ExtractText(ctx context.Context, data []byte, kind resume.Kind) (string, error) {
	f.calls++
	return f.text, f.err
}

type fixedSkills []string

func (s fixedSkills) Extract(text string) []string { return s }

type fakeMatch struct {
	res     analysis.Result
	err     error
	in      analysis.ScoreInput
	items   []analysis.Record
	limit   int
	histErr error
}

func (f *fakeMatch) Score(ctx context.Context, in analysis.ScoreInput) (analysis.Result, error) {
	f.in = in
	return f.res, f.err
}

func (f *fakeMatch) History(ctx context.Context, limit int) ([]analysis.Record, error) {
	f.limit = limit
	return f.items, f.histErr
}

type fakeCatalog struct {
	snap *skill.Snapshot
	n    int
	err  error
}

func (f *fakeCatalog) Current() *skill.Snapshot { return f.snap }

func (f *fakeCatalog) Reload(ctx context.Context) (int, error) { return f.n, f.err }

type fakeStore struct {
	defs    map[string]skill.Definition
	deleted []string
}

func (s *fakeStore) FetchAll(ctx context.Context) ([]skill.Definition, error) { return nil, nil }

func (s *fakeStore) Upsert(ctx context.Context, d skill.Definition) error {
	d = skill.Canonical(d)
	s.defs[d.Name] = d
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, name string) error {
	if _, ok := s.defs[name]; !ok {
		return skill.ErrNotFound
	}
	delete(s.defs, name)
	s.deleted = append(s.deleted, name)
	return nil
}

func multipartBody(t *testing.T, field, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, target, r)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decode(t, resp)
}

func decode(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return out
}

func resumeApp(text *fakeText, maxBytes int64) *fiber.App {
	app := fiber.New()
	h := NewResumeHandler(resume.NewParseService(text, fixedSkills{"java", "sql"}), maxBytes)
	app.Post("/resumes/parse", h.Parse)
	return app
}

func postResume(t *testing.T, app *fiber.App, field, filename string, content []byte) (*http.Response, map[string]any) {
	t.Helper()
	body, ct := multipartBody(t, field, filename, content)
	req := httptest.NewRequest(http.MethodPost, "/resumes/parse", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp, decode(t, resp)
}

func TestResumeParse_OK(t *testing.T) {
	text := &fakeText{text: "Jane Doe\njane.doe@example.com\n+91 9876543210\nJava and SQL"}
	resp, body := postResume(t, resumeApp(text, 1<<20), "resume", "cv.pdf", []byte("%PDF-1.4"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Parsed successfully", body["message"])
	assert.Equal(t, "cv.pdf", body["filename"])
	extracted := body["extracted"].(map[string]any)
	assert.Equal(t, "Jane Doe", extracted["name"])
	assert.Equal(t, "jane.doe@example.com", extracted["email"])
	assert.Equal(t, []any{"java", "sql"}, extracted["skills"])
}

func TestResumeParse_MissingFieldsAreNull(t *testing.T) {
	resp, body := postResume(t, resumeApp(&fakeText{text: "curriculum vitae 2024\nSkills: SQL, Java"}, 1<<20), "resume", "cv.docx", []byte("PK"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	extracted := body["extracted"].(map[string]any)
	for _, field := range []string{"name", "email", "phone"} {
		v, ok := extracted[field]
		assert.True(t, ok, field)
		assert.Nil(t, v, field)
	}
	assert.Equal(t, []any{"java", "sql"}, extracted["skills"])
}

func TestResumeParse_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		resp, _ := postResume(t, resumeApp(&fakeText{}, 1<<20), "file", "cv.pdf", []byte("x"))
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
	t.Run("unsupported format is rejected before extraction", func(t *testing.T) {
		text := &fakeText{text: "ignored"}
		resp, body := postResume(t, resumeApp(text, 1<<20), "resume", "cv.txt", []byte("plain"))
		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
		assert.NotEmpty(t, body["message"])
		assert.Equal(t, 0, text.calls)
	})
	t.Run("too large", func(t *testing.T) {
		resp, _ := postResume(t, resumeApp(&fakeText{text: "x"}, 4), "resume", "cv.docx", []byte("0123456789"))
		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	})
	t.Run("extraction failure", func(t *testing.T) {
		text := &fakeText{err: resume.ErrExtraction}
		resp, _ := postResume(t, resumeApp(text, 1<<20), "resume", "cv.pdf", []byte("broken"))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
	t.Run("empty document", func(t *testing.T) {
		resp, body := postResume(t, resumeApp(&fakeText{text: "  \n "}, 1<<20), "resume", "cv.docx", []byte("PK"))
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Equal(t, resume.ErrEmptyDocument.Error(), body["message"])
	})
}

func matchApp(uc analysis.UseCase) *fiber.App {
	app := fiber.New()
	h := NewMatchHandler(uc)
	app.Post("/match/score", h.Score)
	app.Get("/history", h.History)
	return app
}

func TestMatchScore_OK(t *testing.T) {
	uc := &fakeMatch{res: analysis.Result{
		Score:     67,
		Matched:   []string{"java", "javascript"},
		Missing:   []string{"sql"},
		JDSkills:  []string{"java", "javascript", "sql"},
		Persisted: true,
	}}
	resp, body := doJSON(t, matchApp(uc), http.MethodPost, "/match/score", map[string]any{
		"jd":           "Java, JavaScript, SQL",
		"resumeSkills": []string{"java", "javascript"},
		"parsed":       map[string]any{"filename": "cv.pdf", "name": "Jane"},
	})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 67, body["score"])
	assert.Equal(t, []any{"sql"}, body["missing"])
	assert.Equal(t, true, body["persisted"])
	assert.NotContains(t, body, "warning")

	require.NotNil(t, uc.in.Resume)
	assert.Equal(t, "cv.pdf", uc.in.Resume.Filename)
	assert.Equal(t, []string{"java", "javascript"}, uc.in.ResumeSkills)
}

func TestMatchScore_MissingJD(t *testing.T) {
	uc := &fakeMatch{}
	resp, body := doJSON(t, matchApp(uc), http.MethodPost, "/match/score", map[string]any{"resumeSkills": []string{"go"}})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, analysis.ErrMissingJobDescription.Error(), body["message"])

	uc.err = analysis.ErrMissingJobDescription
	resp, _ = doJSON(t, matchApp(uc), http.MethodPost, "/match/score", map[string]any{"jd": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestMatchScore_PersistenceFailureStillReturnsResult(t *testing.T) {
	uc := &fakeMatch{
		res: analysis.Result{Score: 100, Matched: []string{"go"}, Missing: []string{}, JDSkills: []string{"go"}},
		err: errors.Join(analysis.ErrPersistence, errors.New("db down")),
	}
	resp, body := doJSON(t, matchApp(uc), http.MethodPost, "/match/score", map[string]any{"jd": "Go"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 100, body["score"])
	assert.Equal(t, false, body["persisted"])
	assert.NotEmpty(t, body["warning"])
}

func TestMatchScore_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/match/score", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	resp, err := matchApp(&fakeMatch{}).Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHistory(t *testing.T) {
	uc := &fakeMatch{items: []analysis.Record{{JD: "newest"}, {JD: "older"}}}
	app := matchApp(uc)

	req := httptest.NewRequest(http.MethodGet, "/history?limit=2", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, uc.limit)
	var items []analysis.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	require.Len(t, items, 2)
	assert.Equal(t, "newest", items[0].JD)

	_, _ = doJSON(t, app, http.MethodGet, "/history?limit=abc", nil)
	assert.Equal(t, 0, uc.limit)

	uc.histErr = errors.New("db down")
	resp, body := doJSON(t, app, http.MethodGet, "/history", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "internal error", body["message"])
}

func skillsApp(cat *fakeCatalog, store *fakeStore) *fiber.App {
	app := fiber.New()
	h := NewSkillHandler(cat, store)
	app.Get("/skills", h.List)
	app.Put("/skills", h.Upsert)
	app.Post("/skills/reload", h.Reload)
	app.Delete("/skills/:name", h.Delete)
	return app
}

func TestSkills_List(t *testing.T) {
	rules := []skill.Rule{
		skill.Compile(skill.Definition{Name: "java", Category: "Software"}),
		skill.Compile(skill.Definition{Name: "excel", Category: "Data"}),
	}
	app := skillsApp(&fakeCatalog{snap: &skill.Snapshot{Rules: rules}}, &fakeStore{})

	req := httptest.NewRequest(http.MethodGet, "/skills", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var items []skillItem
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&items))
	assert.Equal(t, []skillItem{{Name: "java", Category: "Software"}, {Name: "excel", Category: "Data"}}, items)
}

func TestSkills_ListBeforeLoad(t *testing.T) {
	resp, _ := doJSON(t, skillsApp(&fakeCatalog{}, &fakeStore{}), http.MethodGet, "/skills", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSkills_Reload(t *testing.T) {
	resp, body := doJSON(t, skillsApp(&fakeCatalog{n: 65}, &fakeStore{}), http.MethodPost, "/skills/reload", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["ok"])
	assert.EqualValues(t, 65, body["count"])

	failing := &fakeCatalog{err: errors.Join(skill.ErrCatalogUnavailable, errors.New("timeout"))}
	resp, _ = doJSON(t, skillsApp(failing, &fakeStore{}), http.MethodPost, "/skills/reload", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestSkills_UpsertAndDelete(t *testing.T) {
	store := &fakeStore{defs: map[string]skill.Definition{}}
	app := skillsApp(&fakeCatalog{}, store)

	resp, body := doJSON(t, app, http.MethodPut, "/skills", map[string]any{
		"name":     "Power BI",
		"synonyms": []string{"PowerBI"},
		"category": "Data",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "power bi", body["name"])
	assert.Equal(t, []string{"powerbi"}, store.defs["power bi"].Synonyms)

	resp, _ = doJSON(t, app, http.MethodPut, "/skills", map[string]any{"name": " "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	req := httptest.NewRequest(http.MethodDelete, "/skills/power%20bi", nil)
	delResp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, delResp.StatusCode)
	assert.Equal(t, []string{"power bi"}, store.deleted)

	resp, _ = doJSON(t, app, http.MethodDelete, "/skills/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

type readiness struct{ err error }

func (r readiness) Ready(ctx context.Context) error { return r.err }

func TestHealthAndReady(t *testing.T) {
	app := fiber.New()
	up := NewHealthHandler(readiness{})
	down := NewHealthHandler(readiness{err: errors.New("sqlite: database is closed")})
	app.Get("/health", up.Health)
	app.Get("/ready", up.Ready)
	app.Get("/ready-down", down.Ready)

	resp, body := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ready", body["status"])

	resp, body = doJSON(t, app, http.MethodGet, "/ready-down", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "not_ready", body["status"])
	assert.Contains(t, body["details"], "database is closed")
}
