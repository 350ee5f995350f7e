package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/tejaIG/sevak-ai-poc/internal/assistant"
	"github.com/tejaIG/sevak-ai-poc/internal/services/dto"
)

// fakeCompleter records the last call and returns a fixed reply or error.
type fakeCompleter struct {
	reply string
	err   error

	lastPrompt  string
	lastHistory []assistant.Turn
	lastMessage string
}

func (f *fakeCompleter) Complete(_ context.Context, systemPrompt string, history []assistant.Turn, userMessage string) (string, error) {
	f.lastPrompt = systemPrompt
	f.lastHistory = history
	f.lastMessage = userMessage
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

const testPhone = "+91 98765 43210"

func TestAssistantChat_Success(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: "Cooks cost 10,000-30,000 per month."}
	svc := NewAssistantService(fake, 5*time.Second, testPhone)

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Message: "How much does a cook cost?"})

	assert.Equal(t, "Cooks cost 10,000-30,000 per month.", resp.Reply)
	assert.Equal(t, "How much does a cook cost?", fake.lastMessage)
	// The prompt carries the retrieved context, overview included.
	assert.Contains(t, fake.lastPrompt, "Company Overview")
	assert.Contains(t, fake.lastPrompt, "RELEVANT CONTEXT")
}

func TestAssistantChat_FallbackOnError(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{err: errors.New("upstream exploded")}
	svc := NewAssistantService(fake, 5*time.Second, testPhone)

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello"})

	// The transport error never reaches the widget.
	assert.Contains(t, resp.Reply, testPhone)
	assert.NotContains(t, resp.Reply, "exploded")
}

func TestAssistantChat_FallbackWhenNotConfigured(t *testing.T) {
	t.Parallel()

	completer := assistant.NewCompleter(assistant.Config{})
	svc := NewAssistantService(completer, 5*time.Second, testPhone)

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello"})
	assert.Contains(t, resp.Reply, testPhone)
}

func TestAssistantChat_HistoryWindow(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: "ok"}
	svc := NewAssistantService(fake, 5*time.Second, testPhone)

	history := []assistant.Turn{
		{Role: "user", Content: "one"},
		{Role: "assistant", Content: "two"},
		{Role: "user", Content: "three"},
		{Role: "assistant", Content: "four"},
		{Role: "user", Content: "five"},
		{Role: "assistant", Content: "six"},
	}
	svc.Chat(context.Background(), &dto.ChatRequest{Message: "latest", History: history})

	// Only the most recent turns are forwarded.
	assert.Len(t, fake.lastHistory, 4)
	assert.Equal(t, "three", fake.lastHistory[0].Content)
	assert.Equal(t, "six", fake.lastHistory[3].Content)
}

func TestAssistantChat_EmptyReply(t *testing.T) {
	t.Parallel()

	fake := &fakeCompleter{reply: ""}
	svc := NewAssistantService(fake, 5*time.Second, testPhone)

	resp := svc.Chat(context.Background(), &dto.ChatRequest{Message: "hello"})
	assert.Contains(t, resp.Reply, "rephrase")
}
