package teach

type ChatRequest struct {
	Message string `json:"message" validate:"required,notblank"`
}
