package handler

import (
	"github.com/fadilmartias/talent-fit/internal/dto"
	"github.com/fadilmartias/talent-fit/internal/middleware"
	"github.com/fadilmartias/talent-fit/internal/usecase"
	"github.com/fadilmartias/talent-fit/internal/util"
	"github.com/gofiber/fiber/v2"
)

type AssessmentHandler struct {
	uc *usecase.AssessmentUsecase
}

func NewAssessmentHandler(uc *usecase.AssessmentUsecase) *AssessmentHandler {
	return &AssessmentHandler{uc: uc}
}

func (h *AssessmentHandler) RegisterRoutes(app fiber.Router) {
	app.Post("/assessments", middleware.RateLimiter(middleware.AssessmentLimit), h.Create)
	app.Get("/assessments", h.List)
	app.Get("/assessments/:id", h.Get)
}

func (h *AssessmentHandler) Create(c *fiber.Ctx) error {
	req := parseAssessmentRequest(c)
	roleID, candidateID := req.IDs()
	detail, err := h.uc.Create(c.UserContext(), roleID, candidateID)
	if err != nil {
		return util.AppErrorResponse(c, err)
	}

	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success create assessment",
		Data:    dto.NewAssessmentDTO(detail.Assessment, detail.Role, detail.Candidate),
	})
}

// parseAssessmentRequest reads the ids from the body whatever its declared
// content type. An unreadable body yields empty ids, which the usecase
// rejects as missing parameters.
func parseAssessmentRequest(c *fiber.Ctx) dto.CreateAssessmentRequest {
	var req dto.CreateAssessmentRequest
	if len(c.Body()) == 0 {
		return req
	}
	if err := c.BodyParser(&req); err == nil {
		return req
	}
	if err := c.App().Config().JSONDecoder(c.Body(), &req); err != nil {
		return dto.CreateAssessmentRequest{}
	}
	return req
}

func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	rows, err := h.uc.List(c.UserContext())
	if err != nil {
		return util.AppErrorResponse(c, err)
	}

	page, pagination := paginate(c, len(rows))
	if pagination == nil {
		return util.SuccessResponse(c, util.SuccessResponseFormat{
			Message: "Success get assessments",
			Data:    rows,
		})
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message:    "Success get assessments",
		Data:       rows[page.from:page.to],
		Pagination: pagination,
	})
}

func (h *AssessmentHandler) Get(c *fiber.Ctx) error {
	detail, err := h.uc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return util.AppErrorResponse(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get assessment",
		Data:    dto.NewAssessmentDTO(detail.Assessment, detail.Role, detail.Candidate),
	})
}
