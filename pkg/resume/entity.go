package resume

import (
	"context"
	"errors"
)

var (
	// ErrUnsupportedFormat: формат файла не pdf и не docx.
	ErrUnsupportedFormat = errors.New("unsupported file format: only pdf and docx are allowed")
	// ErrExtraction: файл поддерживаемого формата не удалось прочитать.
	ErrExtraction = errors.New("document text extraction failed")
	// ErrEmptyDocument: из файла не извлечено ни одного символа текста.
	ErrEmptyDocument = errors.New("empty resume content")
)

// Profile: структурированные данные, извлечённые из одного резюме.
// Пустая строка означает, что поле не найдено.
type Profile struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Phone  string   `json:"phone"`
	Skills []string `json:"skills"`
}

// ParseResult: результат разбора загруженного файла.
type ParseResult struct {
	Filename string  `json:"filename"`
	Profile  Profile `json:"extracted"`
}

// TextExtractor: порт конвертации документа в текст.
type TextExtractor interface {
	ExtractText(ctx context.Context, data []byte, kind Kind) (string, error)
}

// SkillExtractor: порт поиска навыков каталога в тексте.
type SkillExtractor interface {
	Extract(text string) []string
}
