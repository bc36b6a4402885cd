package resume

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"golang.org/x/text/unicode/norm"
)

// Kind is a supported document format.
type Kind string

const (
	KindPDF  Kind = "pdf"
	KindDOCX Kind = "docx"
)

// Supported reports whether the extractor can read this kind.
func (k Kind) Supported() bool {
	return k == KindPDF || k == KindDOCX
}

// KindFromFilename maps the file extension to a Kind.
func KindFromFilename(filename string) (Kind, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return KindPDF, nil
	case ".docx":
		return KindDOCX, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// FileTextExtractor spools the upload to a temporary file, reads it with the
// pdf/docx readers and removes the file on every path, including panics in
// the readers.
type FileTextExtractor struct {
	// Dir for temporary files; empty means os.TempDir().
	Dir string
}

func NewFileTextExtractor(dir string) *FileTextExtractor {
	return &FileTextExtractor{Dir: dir}
}

func (e *FileTextExtractor) ExtractText(ctx context.Context, data []byte, kind Kind) (text string, err error) {
	if !kind.Supported() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, kind)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if e.Dir != "" {
		if err := os.MkdirAll(e.Dir, 0o755); err != nil {
			return "", fmt.Errorf("prepare upload dir: %w", err)
		}
	}
	f, err := os.CreateTemp(e.Dir, "resume-*."+string(kind))
	if err != nil {
		return "", fmt.Errorf("spool upload: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("spool upload: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("spool upload: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrExtraction, r)
		}
	}()

	switch kind {
	case KindPDF:
		text, err = readPDF(path)
	case KindDOCX:
		text, err = readDOCX(path)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	// fold ligatures, full-width forms and no-break spaces produced by PDF writers
	return norm.NFKC.String(text), nil
}

func readPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func readDOCX(path string) (string, error) {
	d, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", err
	}
	defer d.Close()
	return docxXMLToText(d.Editable().GetContent()), nil
}

var reTags = regexp.MustCompile(`<[^>]+>`)

// docxXMLToText turns word/document.xml into plain text: paragraphs and
// breaks become newlines, tabs stay tabs, runs are concatenated.
func docxXMLToText(xml string) string {
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:br/>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reTags.ReplaceAllString(xml, "")
	return strings.TrimSpace(html.UnescapeString(txt))
}
