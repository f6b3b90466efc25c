package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerParser_Decision(t *testing.T) {
	p := NewMarkerParser()

	tests := []struct {
		name     string
		reply    string
		expected bool
	}{
		{"explicit yes", "SUITABLE: YES\nCONFIDENCE: High", true},
		{"explicit no", "SUITABLE: NO\nCONFIDENCE: High\nREASONING: entry-level, junior, graduate", false},
		{"lowercase marker", "suitable: yes", true},
		{"markdown emphasis", "**SUITABLE:** YES", true},
		{"emphasis around label", "**Suitable**: no", false},
		{
			name:     "fallback three positive one negative",
			reply:    "This is an entry-level role for a graduate, ideal for a junior, though it mentions a senior mentor.",
			expected: true,
		},
		{
			name:     "fallback tie is not suitable",
			reply:    "A junior could apply but the team wants someone experienced.",
			expected: false,
		},
		{
			name:     "repeated phrase counts once",
			reply:    "junior junior junior. Senior engineers review work, expert guidance given.",
			expected: false,
		},
		{"no signals", "I cannot tell.", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _ := p.Parse(tt.reply)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestMarkerParser_Rationale(t *testing.T) {
	p := NewMarkerParser()

	tests := []struct {
		name     string
		reply    string
		expected string
	}{
		{
			name:     "between reasoning and key factors",
			reply:    "SUITABLE: YES\nCONFIDENCE: High\nREASONING: Entry-level role with mentoring.\nKEY_FACTORS: graduate scheme",
			expected: "Entry-level role with mentoring.",
		},
		{
			name:     "numbered list",
			reply:    "1. SUITABLE: NO\n2. CONFIDENCE: Medium\n3. REASONING: Needs 5+ years of Go.\n4. KEY_FACTORS: seniority",
			expected: "Needs 5+ years of Go.",
		},
		{
			name:     "markdown",
			reply:    "**SUITABLE:** YES\n**REASONING:** Clear junior role.\n**KEY_FACTORS:** none",
			expected: "Clear junior role.",
		},
		{
			name:     "reasoning runs to the end",
			reply:    "SUITABLE: NO\nREASONING: Requires leading a team of 0-2 people",
			expected: "Requires leading a team of 0-2 people",
		},
		{
			name:     "marker words inside the sentence",
			reply:    "SUITABLE: NO\nREASONING: The role is not suitable: it needs 5 years. Confidence: low for juniors.\nKEY_FACTORS: experience",
			expected: "The role is not suitable: it needs 5 years. Confidence: low for juniors.",
		},
		{
			name:     "no reasoning marker",
			reply:    "SUITABLE: YES",
			expected: "Analysis completed - see full response for details",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, rationale := p.Parse(tt.reply)
			assert.Equal(t, tt.expected, rationale)
		})
	}
}

type stubChat struct {
	reply    string
	err      error
	messages []Message
}

func (s *stubChat) Chat(ctx context.Context, messages []Message) (string, error) {
	s.messages = messages
	return s.reply, s.err
}

func TestClassifier_Classify(t *testing.T) {
	chat := &stubChat{reply: "SUITABLE: YES\nREASONING: Graduate scheme.\nKEY_FACTORS: training"}
	c := NewClassifier(chat, nil)

	got := c.Classify(context.Background(), "Graduate Engineer", "Join our graduate scheme.", "Acme")

	assert.True(t, got.Accepted)
	assert.Equal(t, "Graduate scheme.", got.Rationale)
	assert.Equal(t, chat.reply, got.RawOutput)

	require.Len(t, chat.messages, 2)
	assert.Equal(t, "system", chat.messages[0].Role)
	assert.Contains(t, chat.messages[0].Content, "expert career advisor")
	assert.Equal(t, "user", chat.messages[1].Role)
	assert.Contains(t, chat.messages[1].Content, "JOB TITLE: Graduate Engineer")
	assert.Contains(t, chat.messages[1].Content, "COMPANY: Acme")
	assert.Contains(t, chat.messages[1].Content, "Join our graduate scheme.")
}

func TestClassifier_BackendFailure(t *testing.T) {
	c := NewClassifier(&stubChat{err: errors.New("connection refused")}, nil)

	got := c.Classify(context.Background(), "Graduate Engineer", "desc", "")

	assert.False(t, got.Accepted)
	assert.Equal(t, "Analysis failed: connection refused", got.Rationale)
	assert.Empty(t, got.RawOutput)
}

func TestBuildUserPrompt_TruncatesDescription(t *testing.T) {
	desc := strings.Repeat("é", descriptionLimit) + "TAIL"

	prompt := buildUserPrompt("t", desc, "c")

	assert.NotContains(t, prompt, "TAIL")
	assert.Contains(t, prompt, strings.Repeat("é", descriptionLimit))
}

func TestOllamaClient_Chat(t *testing.T) {
	var got ollamaChatRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"model":"gemma3:latest","message":{"role":"assistant","content":" SUITABLE: YES "},"done":true}`))
	}))
	defer server.Close()

	client := NewOllamaClient(server.URL+"/", "gemma3:latest", 5*time.Second)
	reply, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "hi"}})

	require.NoError(t, err)
	assert.Equal(t, "SUITABLE: YES", reply)
	assert.Equal(t, "gemma3:latest", got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, 0.3, got.Options["temperature"])
	assert.Equal(t, []Message{{Role: "user", Content: "hi"}}, got.Messages)
}

func TestOllamaClient_ChatErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"model error", http.StatusNotFound, `{"error":"model 'gemma3' not found"}`},
		{"server error", http.StatusInternalServerError, `boom`},
		{"empty reply", http.StatusOK, `{"message":{"content":"  "}}`},
		{"garbage", http.StatusOK, `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewOllamaClient(server.URL, "gemma3", time.Second).Chat(context.Background(), nil)
			assert.Error(t, err)
		})
	}
}

func TestOllamaClient_CheckModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/tags", r.URL.Path)
		w.Write([]byte(`{"models":[{"name":"gemma3:latest","model":"gemma3:latest"},{"name":"llama3.1:8b"}]}`))
	}))
	defer server.Close()

	tests := []struct {
		model string
		found bool
	}{
		{"gemma3:latest", true},
		{"gemma3", true},
		{"llama3.1:8b", true},
		{"llama3.1", false},
		{"mistral", false},
	}

	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			err := NewOllamaClient(server.URL, tt.model, time.Second).CheckModel(context.Background())
			if tt.found {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrModelNotFound)
			}
		})
	}
}

func TestOllamaClient_CheckModelUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewOllamaClient(url, "gemma3", time.Second).CheckModel(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrModelNotFound)
}
