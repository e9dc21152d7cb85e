package dto

type TokenRequest struct {
	ServiceKey string `json:"service_key" binding:"required"`
}
