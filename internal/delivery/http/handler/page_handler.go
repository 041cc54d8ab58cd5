package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/campus-maps/internal/config"
	"github.com/campus-maps/internal/delivery/http/middleware"
	"github.com/campus-maps/internal/delivery/http/view"
	"github.com/campus-maps/internal/domain"
	"github.com/campus-maps/internal/pkg/validator"
	"github.com/campus-maps/internal/usecase"
	"github.com/campus-maps/internal/usecase/dto"
)

// PageHandler - серверный рендеринг страниц обоих приложений.
// GET монтирует приложение заново, POST применяет события формы к состоянию сессии.
type PageHandler struct {
	linesUC  *usecase.LineMapperUseCase
	campusUC *usecase.CampusPathsUseCase
	renderer *view.Renderer
	config   *config.Config
	logger   *zap.Logger
}

// NewPageHandler - создание нового PageHandler
func NewPageHandler(
	linesUC *usecase.LineMapperUseCase,
	campusUC *usecase.CampusPathsUseCase,
	renderer *view.Renderer,
	cfg *config.Config,
	logger *zap.Logger,
) *PageHandler {
	return &PageHandler{
		linesUC:  linesUC,
		campusUC: campusUC,
		renderer: renderer,
		config:   cfg,
		logger:   logger,
	}
}

func (h *PageHandler) render(c *fiber.Ctx, name string, data interface{}) error {
	html, err := h.renderer.Render(name, data)
	if err != nil {
		h.logger.Error("Failed to render page", zap.String("template", name), zap.Error(err))
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(html)
}

func (h *PageHandler) Index(c *fiber.Ctx) error {
	return h.render(c, "index.html", fiber.Map{"Title": "Campus Maps"})
}

func (h *PageHandler) LineMapper(c *fiber.Ctx) error {
	resp, err := h.linesUC.Mount(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return h.render(c, "lines.html", view.NewLineMapperPage(resp.State, nil, h.config.Lines))
}

func (h *PageHandler) SubmitLineMapper(c *fiber.Ctx) error {
	var form dto.LineMapperForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if err := validator.Validate(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}

	action := domain.Draw()
	if form.Action == "clear" {
		action = domain.Clear()
	}

	resp, err := h.linesUC.Dispatch(c.UserContext(), middleware.SessionID(c),
		domain.TextChanged(form.Edges),
		action,
	)
	if err != nil {
		return err
	}
	return h.render(c, "lines.html", view.NewLineMapperPage(resp.State, nil, h.config.Lines))
}

func (h *PageHandler) CampusPaths(c *fiber.Ctx) error {
	resp, err := h.campusUC.Mount(c.UserContext(), middleware.SessionID(c))
	if err != nil {
		return err
	}
	return h.render(c, "campus.html", view.NewCampusPathsPage(resp.State, resp.Notice, h.config.Map))
}

func (h *PageHandler) SubmitCampusPaths(c *fiber.Ctx) error {
	var form dto.CampusPathsForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}
	if err := validator.Validate(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid form")
	}

	action := domain.FindRoute()
	if form.Action == "reset" {
		action = domain.Reset()
	}

	resp, err := h.campusUC.Dispatch(c.UserContext(), middleware.SessionID(c),
		domain.StartSelected(form.Start),
		domain.EndSelected(form.End),
		action,
	)
	if err != nil {
		return err
	}
	return h.render(c, "campus.html", view.NewCampusPathsPage(resp.State, resp.Notice, h.config.Map))
}
