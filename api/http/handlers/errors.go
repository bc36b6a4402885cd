package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumematch/api/http/presenter"
	"github.com/artem13815/resumematch/pkg/analysis"
	"github.com/artem13815/resumematch/pkg/resume"
	"github.com/artem13815/resumematch/pkg/skill"
)

var validate = validator.New()

func errorStatus(err error) int {
	switch {
	case errors.Is(err, resume.ErrUnsupportedFormat):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, resume.ErrExtraction), errors.Is(err, resume.ErrEmptyDocument):
		return http.StatusUnprocessableEntity
	case errors.Is(err, analysis.ErrMissingJobDescription), errors.Is(err, skill.ErrInvalidDefinition):
		return http.StatusBadRequest
	case errors.Is(err, skill.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, skill.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// fail пишет ошибку доменного слоя в ответ. Текст внутренних ошибок наружу не отдаётся.
func fail(c *fiber.Ctx, err error) error {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.Any("error", err),
		)
		return presenter.Error(c, status, "internal error")
	}
	return presenter.Error(c, status, err.Error())
}
