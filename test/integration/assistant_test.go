package integration_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tejaIG/sevak-ai-poc/test/helpers"
)

// No API key is configured in tests, so the assistant serves the canned
// contact-channel reply instead of an error.
func TestAssistantChat_FallbackReply(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/assistant/chat", "", map[string]interface{}{
		"message": "How much does a cook cost?",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "+91 98765 43210")
}

func TestAssistantChat_EmptyMessageRejected(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, "POST", "/api/v1/assistant/chat", "", map[string]interface{}{
		"message": "",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, body, "message")
}

func TestAssistantChat_AcceptsHistory(t *testing.T) {
	t.Parallel()
	ts := helpers.NewTestServer(t)

	res, _ := ts.SendRequest(t, "POST", "/api/v1/assistant/chat", "", map[string]interface{}{
		"message": "And for drivers?",
		"history": []map[string]string{
			{"role": "user", "content": "How much does a maid cost?"},
			{"role": "assistant", "content": "Maids cost 8,000-25,000 per month."},
		},
	})
	assert.Equal(t, http.StatusOK, res.StatusCode)
}
