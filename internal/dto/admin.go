package dto

type SetOrderStatusRequestDTO struct {
	Status string `json:"status" example:"SHIPPED"`
}
