package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumematch/api/http/presenter"
	"github.com/artem13815/resumematch/pkg/analysis"
)

type MatchHandler struct {
	uc analysis.UseCase
}

func NewMatchHandler(uc analysis.UseCase) *MatchHandler { return &MatchHandler{uc: uc} }

type parsedResume struct {
	Filename string `json:"filename" validate:"max=255"`
	Name     string `json:"name" validate:"max=255"`
	Email    string `json:"email" validate:"max=320"`
	Phone    string `json:"phone" validate:"max=32"`
}

type scoreRequest struct {
	JD           string        `json:"jd" validate:"required"`
	ResumeSkills []string      `json:"resumeSkills" validate:"dive,max=128"`
	Parsed       *parsedResume `json:"parsed"`
}

type scoreResponse struct {
	analysis.Result
	Warning string `json:"warning,omitempty"`
}

// Score сравнивает навыки из текста вакансии с навыками резюме и сохраняет результат в историю.
// @Summary Оценка соответствия резюме вакансии
// @Tags    Оценка
// @Accept  json
// @Produce json
// @Param   input body scoreRequest true "Текст вакансии и навыки резюме"
// @Success 200 {object} scoreResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /match/score [post]
func (h *MatchHandler) Score(c *fiber.Ctx) error {
	var req scoreRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Field() == "JD" {
			return fail(c, analysis.ErrMissingJobDescription)
		}
		return presenter.Error(c, http.StatusBadRequest, err.Error())
	}

	in := analysis.ScoreInput{JobDescription: req.JD, ResumeSkills: req.ResumeSkills}
	if req.Parsed != nil {
		in.Resume = &analysis.ResumeMeta{
			Filename: req.Parsed.Filename,
			Name:     req.Parsed.Name,
			Email:    req.Parsed.Email,
			Phone:    req.Parsed.Phone,
		}
	}
	res, err := h.uc.Score(c.Context(), in)
	if errors.Is(err, analysis.ErrPersistence) {
		return presenter.JSON(c, http.StatusOK, scoreResponse{Result: res, Warning: "result was not saved to history"})
	}
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, scoreResponse{Result: res})
}

// History возвращает последние оценки, новые первыми.
// @Summary История оценок
// @Tags    Оценка
// @Produce json
// @Param   limit query int false "Количество записей (по умолчанию 10, максимум 200)"
// @Success 200 {array} analysis.Record
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /history [get]
func (h *MatchHandler) History(c *fiber.Ctx) error {
	items, err := h.uc.History(c.Context(), parseLimit(c))
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, items)
}
