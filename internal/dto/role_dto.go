package dto

type CreateRoleRequest struct {
	Title            string `json:"title" validate:"required"`
	Description      string `json:"description" validate:"required"`
	Requirements     string `json:"requirements" validate:"required"`
	Responsibilities string `json:"responsibilities"`
}

type UpdateRoleStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}
