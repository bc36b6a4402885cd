package nlp

import (
	"regexp"
	"strings"
)

var (
	reCtrlSpace = regexp.MustCompile(`[\r\t]`)
	reSpaces    = regexp.MustCompile(`\s+`)
)

// Clean приводит извлечённый из документа текст к одной строке:
// - \r и \t заменяются пробелом
// - любые пробельные последовательности схлопываются в один пробел
// - обрезаются пробелы по краям
//
// Регистр не меняется: поиск навыков регистронезависимый, а извлечение
// email/телефона работает по исходному написанию.
func Clean(s string) string {
	s = reCtrlSpace.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
