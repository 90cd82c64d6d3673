package handler

import (
	"github.com/fadilmartias/talent-fit/internal/dto"
	"github.com/fadilmartias/talent-fit/internal/usecase"
	"github.com/fadilmartias/talent-fit/internal/util"
	"github.com/gofiber/fiber/v2"
)

type RoleHandler struct {
	uc *usecase.RoleUsecase
}

func NewRoleHandler(uc *usecase.RoleUsecase) *RoleHandler {
	return &RoleHandler{uc: uc}
}

func (h *RoleHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/roles", h.Create)
	app.Get("/roles", h.List)
	app.Get("/roles/:id", h.Get)
	app.Patch("/roles/:id", h.UpdateStatus)
	app.Delete("/roles/:id", h.Delete)
}

func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	role, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create role",
		Data:    role,
	})
}

func (h *RoleHandler) List(c *fiber.Ctx) error {
	roles, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get roles",
		Data:    roles,
	})
}

func (h *RoleHandler) Get(c *fiber.Ctx) error {
	role, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get role",
		Data:    role,
	})
}

func (h *RoleHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateRoleStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badBody(c, err)
	}
	role, err := h.uc.UpdateStatus(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success update role",
		Data:    role,
	})
}

func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success delete role",
	})
}

func badBody(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Kind:    "validation",
		Message: "invalid request body",
	}, err)
}
