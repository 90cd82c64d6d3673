package handler

import (
	"github.com/fadilmartias/talent-fit/internal/dto"
	"github.com/fadilmartias/talent-fit/internal/usecase"
	"github.com/fadilmartias/talent-fit/internal/util"
	"github.com/gofiber/fiber/v2"
)

type CandidateHandler struct {
	uc *usecase.CandidateUsecase
}

func NewCandidateHandler(uc *usecase.CandidateUsecase) *CandidateHandler {
	return &CandidateHandler{uc: uc}
}

func (h *CandidateHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/candidates", h.Create)
	app.Get("/candidates", h.List)
	app.Get("/candidates/:id", h.Get)
	app.Put("/candidates/:id", h.Update)
	app.Delete("/candidates/:id", h.Delete)
}

func (h *CandidateHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	candidate, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create candidate",
		Data:    candidate,
	})
}

func (h *CandidateHandler) List(c *fiber.Ctx) error {
	candidates, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidates",
		Data:    candidates,
	})
}

func (h *CandidateHandler) Get(c *fiber.Ctx) error {
	candidate, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get candidate",
		Data:    candidate,
	})
}

func (h *CandidateHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCandidateRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	candidate, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update candidate",
		Data:    candidate,
	})
}

func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete candidate",
	})
}
