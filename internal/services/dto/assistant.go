package dto

import (
	"github.com/tejaIG/sevak-ai-poc/internal/assistant"
)

// ChatRequest is one widget message plus the visible conversation so far.
type ChatRequest struct {
	Message string           `json:"message" validate:"required,min=1,max=2000"`
	History []assistant.Turn `json:"history" validate:"omitempty,dive"`
}

// ChatResponse carries the assistant reply back to the widget.
type ChatResponse struct {
	Reply string `json:"reply"`
}
