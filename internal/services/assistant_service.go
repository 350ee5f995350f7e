package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tejaIG/sevak-ai-poc/internal/assistant"
	"github.com/tejaIG/sevak-ai-poc/internal/knowledge"
	"github.com/tejaIG/sevak-ai-poc/internal/logger"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
)

// historyWindow is how many prior turns are forwarded to the model. Older
// turns add cost without improving answers for this widget.
const historyWindow = 4

const systemPromptFormat = `You are SevakAI Assistant, a friendly, professional, and helpful chatbot for SevakAI.
- Your personality is warm, enthusiastic, and conversational. Use emojis appropriately.
- ONLY answer questions related to SevakAI using the provided context.
- If the answer is not in the context or the question is unrelated, politely say: "I'm here to help with SevakAI's domestic helper services! How can I assist you in finding the perfect helper for your home? 🏠"
- Format your answers using markdown for better readability. Use **bold** for emphasis, bullet points for lists, and ## for section headings when appropriate.
- Always encourage users to contact SevakAI for personalized assistance.

--- RELEVANT CONTEXT ---
%s
--- END CONTEXT ---
`

// AssistantService answers widget messages from the knowledge base. It never
// returns an error to its caller; every failure becomes the canned
// contact-channel reply so the widget always has something to show.
type AssistantService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse
}

type AssistantServiceImpl struct {
	completer assistant.Completer
	timeout   time.Duration
	fallback  string
}

func NewAssistantService(completer assistant.Completer, timeout time.Duration, contactPhone string) AssistantService {
	return &AssistantServiceImpl{
		completer: completer,
		timeout:   timeout,
		fallback: fmt.Sprintf(
			"I'm having trouble connecting to my AI system. 🛠️ For immediate help, please contact our team at %s.",
			contactPhone,
		),
	}
}

func (s *AssistantServiceImpl) Chat(ctx context.Context, req *dto.ChatRequest) *dto.ChatResponse {
	sections := knowledge.Retrieve(req.Message, knowledge.Sections())
	prompt := fmt.Sprintf(systemPromptFormat, knowledge.ContextBlock(sections))

	history := req.History
	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	reply, err := s.completer.Complete(callCtx, prompt, history, req.Message)
	if err != nil {
		logger.CtxWarn(ctx, "assistant completion failed", "error", err)
		return &dto.ChatResponse{Reply: s.fallback}
	}
	if reply == "" {
		return &dto.ChatResponse{Reply: "I apologize, but I couldn't process your request. Could you please rephrase?"}
	}

	return &dto.ChatResponse{Reply: reply}
}
