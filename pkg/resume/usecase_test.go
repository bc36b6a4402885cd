package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeText struct {
	text  string
	err   error
	calls int
	kind  Kind
}

func (f *fakeText) ExtractText(ctx context.Context, data []byte, kind Kind) (string, error) {
	f.calls++
	f.kind = kind
	return f.text, f.err
}

func TestParse_Success(t *testing.T) {
	text := &fakeText{text: "Jane Doe\njane@example.com\nGo and SQL"}
	svc := NewParseService(text, &recordingSkills{result: []string{"go", "sql"}})

	res, err := svc.Parse(context.Background(), "jane.docx", []byte("..."))
	require.NoError(t, err)
	assert.Equal(t, KindDOCX, text.kind)
	assert.Equal(t, "jane.docx", res.Filename)
	assert.Equal(t, "Jane Doe", res.Profile.Name)
	assert.Equal(t, "jane@example.com", res.Profile.Email)
	assert.Equal(t, []string{"go", "sql"}, res.Profile.Skills)
}

func TestParse_UnsupportedExtensionSkipsExtraction(t *testing.T) {
	text := &fakeText{}
	_, err := NewParseService(text, nil).Parse(context.Background(), "cv.txt", []byte("x"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Zero(t, text.calls)
}

func TestParse_ExtractionError(t *testing.T) {
	text := &fakeText{err: errors.Join(ErrExtraction, errors.New("bad xref"))}
	_, err := NewParseService(text, nil).Parse(context.Background(), "cv.pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrExtraction)
}

func TestParse_EmptyDocument(t *testing.T) {
	_, err := NewParseService(&fakeText{text: " \n\t"}, nil).Parse(context.Background(), "scan.pdf", []byte("x"))
	assert.ErrorIs(t, err, ErrEmptyDocument)
}
