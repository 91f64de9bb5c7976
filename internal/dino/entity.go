package dino

type GenerateRequest struct {
	Theme string `json:"theme" validate:"omitempty,max=100"`
}
