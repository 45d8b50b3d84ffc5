package openai_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/dmitrymomot/sentiment/integration/llm/openai"
	"github.com/dmitrymomot/sentiment/pkg/sentiment"
)

func newServer(t *testing.T, status int, body string) (*httptest.Server, func() []byte) {
	t.Helper()

	var (
		mu   sync.Mutex
		last []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		mu.Lock()
		last = b
		mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	return srv, func() []byte {
		mu.Lock()
		defer mu.Unlock()
		return last
	}
}

func completion(content string) string {
	return `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-4o-mini",
  "choices": [{
    "index": 0,
    "message": {"role": "assistant", "content": ` + quote(content) + `, "refusal": null},
    "finish_reason": "stop",
    "logprobs": null
  }],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	return `"` + s + `"`
}

func TestNewSession_RequiresAPIKey(t *testing.T) {
	t.Parallel()

	s, err := openai.NewSession("")
	assert.Nil(t, s)
	assert.ErrorIs(t, err, openai.ErrInvalidAPIKey)
}

func TestSession_Send(t *testing.T) {
	t.Parallel()

	srv, last := newServer(t, http.StatusOK, completion("Sentiment: Negative - Reason: sarcasm - Score: -0.6"))
	s, err := openai.NewSession("sk-test",
		openai.WithBaseURL(srv.URL),
		openai.WithTemperature(0.2),
		openai.WithMaxOutputTokens(256),
	)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", s.Model())

	reply, err := s.Send(context.Background(), "Oh great, rain again.")
	require.NoError(t, err)
	assert.Equal(t, "Sentiment: Negative - Reason: sarcasm - Score: -0.6", reply)

	body := last()
	assert.Equal(t, "gpt-4o-mini", gjson.GetBytes(body, "model").String())
	assert.Equal(t, int64(3), gjson.GetBytes(body, "messages.#").Int())
	assert.Equal(t, "system", gjson.GetBytes(body, "messages.0.role").String())
	assert.Equal(t, sentiment.SystemInstruction, gjson.GetBytes(body, "messages.0.content").String())
	assert.Equal(t, "assistant", gjson.GetBytes(body, "messages.1.role").String())
	assert.Equal(t, "user", gjson.GetBytes(body, "messages.2.role").String())
	assert.Equal(t, "Oh great, rain again.", gjson.GetBytes(body, "messages.2.content").String())
	assert.InDelta(t, 0.2, gjson.GetBytes(body, "temperature").Float(), 1e-9)
	assert.Equal(t, int64(256), gjson.GetBytes(body, "max_completion_tokens").Int())
}

func TestSession_OmitsUnsetSampling(t *testing.T) {
	t.Parallel()

	srv, last := newServer(t, http.StatusOK, completion("Sentiment: Neutral - Reason: r - Score: 0"))
	s, err := openai.NewSession("sk-test", openai.WithBaseURL(srv.URL), openai.WithModel("gpt-4.1"))
	require.NoError(t, err)

	_, err = s.Send(context.Background(), "x")
	require.NoError(t, err)

	body := last()
	assert.Equal(t, "gpt-4.1", gjson.GetBytes(body, "model").String())
	assert.False(t, gjson.GetBytes(body, "temperature").Exists())
	assert.False(t, gjson.GetBytes(body, "max_completion_tokens").Exists())
}

func TestSession_TransportError(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, http.StatusBadRequest,
		`{"error": {"message": "model overloaded", "type": "invalid_request_error", "param": null, "code": null}}`)
	s, err := openai.NewSession("sk-test", openai.WithBaseURL(srv.URL), openai.WithMaxRetries(0))
	require.NoError(t, err)

	reply, err := s.Send(context.Background(), "x")
	assert.Empty(t, reply)
	assert.ErrorIs(t, err, openai.ErrCompletionFailed)
	assert.Contains(t, err.Error(), "model overloaded")
}

func TestSession_EmptyReply(t *testing.T) {
	t.Parallel()

	srv, _ := newServer(t, http.StatusOK, completion(""))
	s, err := openai.NewSession("sk-test", openai.WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = s.Send(context.Background(), "x")
	assert.ErrorIs(t, err, openai.ErrEmptyReply)
}
