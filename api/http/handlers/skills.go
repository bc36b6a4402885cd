package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumematch/api/http/presenter"
	"github.com/artem13815/resumematch/pkg/skill"
)

// Catalog: активный кэш правил. Реализуется *skill.Cache.
type Catalog interface {
	Current() *skill.Snapshot
	Reload(ctx context.Context) (int, error)
}

type SkillHandler struct {
	catalog Catalog
	store   skill.Store
}

func NewSkillHandler(catalog Catalog, store skill.Store) *SkillHandler {
	return &SkillHandler{catalog: catalog, store: store}
}

type skillItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type reloadResponse struct {
	OK    bool `json:"ok"`
	Count int  `json:"count"`
}

// List возвращает навыки активного каталога.
// @Summary Список навыков
// @Tags    Навыки
// @Produce json
// @Success 200 {array} skillItem
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /skills [get]
func (h *SkillHandler) List(c *fiber.Ctx) error {
	snap := h.catalog.Current()
	if snap == nil {
		return fail(c, skill.ErrCatalogUnavailable)
	}
	out := make([]skillItem, 0, len(snap.Rules))
	for _, r := range snap.Rules {
		out = append(out, skillItem{Name: r.Name, Category: r.Category})
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Reload перечитывает каталог из хранилища и атомарно подменяет правила.
// @Summary Перезагрузить каталог навыков
// @Tags    Навыки
// @Produce json
// @Success 200 {object} reloadResponse
// @Failure 503 {object} presenter.ErrorResponse "Хранилище недоступно, действует прежний каталог"
// @Router  /skills/reload [post]
func (h *SkillHandler) Reload(c *fiber.Ctx) error {
	n, err := h.catalog.Reload(c.Context())
	if err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, reloadResponse{OK: true, Count: n})
}

// Upsert добавляет или заменяет определение навыка. Изменение применяется после reload.
// @Summary Добавить или изменить навык
// @Tags    Навыки
// @Accept  json
// @Produce json
// @Param   input body skill.Definition true "Определение навыка"
// @Success 200 {object} skill.Definition
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /skills [put]
func (h *SkillHandler) Upsert(c *fiber.Ctx) error {
	var d skill.Definition
	if err := c.BodyParser(&d); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	if err := skill.Validate(d); err != nil {
		return fail(c, err)
	}
	if err := h.store.Upsert(c.Context(), d); err != nil {
		return fail(c, err)
	}
	return presenter.JSON(c, http.StatusOK, skill.Canonical(d))
}

// Delete удаляет навык из хранилища. Изменение применяется после reload.
// @Summary Удалить навык
// @Tags    Навыки
// @Param   name path string true "Каноническое имя навыка"
// @Success 204
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /skills/{name} [delete]
func (h *SkillHandler) Delete(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid skill name")
	}
	if err := h.store.Delete(c.Context(), name); err != nil {
		return fail(c, err)
	}
	return presenter.NoContent(c)
}
