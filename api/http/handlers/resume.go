package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumematch/api/http/presenter"
	"github.com/artem13815/resumematch/pkg/resume"
)

var errFileTooLarge = errors.New("file too large")

type ResumeHandler struct {
	svc resume.ParseUseCase
	// Limit uploaded file size read into memory (bytes)
	maxBytes int64
}

func NewResumeHandler(svc resume.ParseUseCase, maxBytes int64) *ResumeHandler {
	if maxBytes <= 0 {
		maxBytes = 15 << 20
	}
	return &ResumeHandler{svc: svc, maxBytes: maxBytes}
}

// extractedProfile: ненайденные поля отдаются как null.
type extractedProfile struct {
	Name   *string  `json:"name"`
	Email  *string  `json:"email"`
	Phone  *string  `json:"phone"`
	Skills []string `json:"skills"`
}

type parseResponse struct {
	Message  string           `json:"message"`
	Filename string           `json:"filename"`
	Profile  extractedProfile `json:"extracted"`
}

func newExtractedProfile(p resume.Profile) extractedProfile {
	return extractedProfile{
		Name:   optional(p.Name),
		Email:  optional(p.Email),
		Phone:  optional(p.Phone),
		Skills: p.Skills,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Parse извлекает из загруженного резюме (PDF/DOCX) имя, email, телефон и навыки каталога.
// @Summary Разбор резюме
// @Tags    Резюме
// @Accept  multipart/form-data
// @Produce json
// @Param   resume formData file true "Файл резюме (PDF или DOCX)"
// @Success 200 {object} parseResponse
// @Failure 400 {object} presenter.ErrorResponse "Файл не передан"
// @Failure 413 {object} presenter.ErrorResponse "Файл слишком большой"
// @Failure 415 {object} presenter.ErrorResponse "Формат не поддерживается"
// @Failure 422 {object} presenter.ErrorResponse "Не удалось извлечь текст"
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /resumes/parse [post]
func (h *ResumeHandler) Parse(c *fiber.Ctx) error {
	fh, err := c.FormFile("resume")
	if err != nil || fh == nil {
		return presenter.Error(c, http.StatusBadRequest, "resume file is required (pdf or docx)")
	}
	// формат проверяем до чтения файла
	if _, err := resume.KindFromFilename(fh.Filename); err != nil {
		return fail(c, err)
	}
	if fh.Size > h.maxBytes {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("%v: limit is %d bytes", errFileTooLarge, h.maxBytes))
	}
	file, err := fh.Open()
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "failed to open uploaded file")
	}
	defer file.Close()

	data, err := readAtMost(file, h.maxBytes)
	if errors.Is(err, errFileTooLarge) {
		return presenter.Error(c, http.StatusRequestEntityTooLarge, err.Error())
	}
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}
	res, err := h.svc.Parse(c.Context(), fh.Filename, data)
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, parseResponse{
		Message:  "Parsed successfully",
		Filename: res.Filename,
		Profile:  newExtractedProfile(res.Profile),
	})
}

func readAtMost(f multipart.File, max int64) ([]byte, error) {
	limited := io.LimitReader(f, max+1)
	b, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	if int64(len(b)) > max {
		return nil, fmt.Errorf("%w: limit is %d bytes", errFileTooLarge, max)
	}
	return b, nil
}
