package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mindbase/mindbase/internal/config"
)

// testAIConfig points both clients at the given test server.
func testAIConfig(serverURL string) config.AIConfig {
	return config.AIConfig{
		GeminiAPIKey:  "test-key",
		GeminiModel:   "gemini-2.5-flash",
		GeminiBaseURL: serverURL,
		HFAPIKey:      "test-key",
		HFModel:       "SamLowe/roberta-base-go_emotions",
		HFBaseURL:     serverURL,
		Timeout:       2 * time.Second,
	}
}

// --- Completer ---

func TestComplete_ReturnsReply(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.SystemInstruction == nil {
			t.Error("expected a system instruction")
		}
		json.NewEncoder(w).Encode(geminiResponse{
			Candidates: []geminiCandidate{
				{Content: geminiContent{Parts: []geminiPart{{Text: "That sounds hard. Tell me more?"}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewCompleter(testAIConfig(srv.URL))
	got := c.Complete(context.Background(), nil, "Alice", "", "I had a rough day")
	if got != "That sounds hard. Tell me more?" {
		t.Errorf("unexpected reply: %q", got)
	}
}

func TestComplete_TruncatesHistoryWindow(t *testing.T) {
	var gotContents int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		json.NewDecoder(r.Body).Decode(&req)
		gotContents = len(req.Contents)
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	history := make([]Turn, 50)
	for i := range history {
		history[i] = Turn{Role: "user", Text: "older message"}
	}

	c := NewCompleter(testAIConfig(srv.URL))
	c.Complete(context.Background(), history, "Alice", "", "newest")

	// 20 replayed turns plus the new message.
	if gotContents != historyWindow+1 {
		t.Errorf("expected %d contents, got %d", historyWindow+1, gotContents)
	}
}

func TestComplete_EmptyCandidatesGetsListeningPrompt(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(geminiResponse{})
	}))
	defer srv.Close()

	c := NewCompleter(testAIConfig(srv.URL))
	if got := c.Complete(context.Background(), nil, "Alice", "", "hi"); got != emptyReply {
		t.Errorf("expected %q, got %q", emptyReply, got)
	}
}

func TestComplete_ServerErrorFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewCompleter(testAIConfig(srv.URL))
	if got := c.Complete(context.Background(), nil, "Alice", "", "hi"); got != fallbackReply {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestComplete_UnreachableServerFallsBack(t *testing.T) {
	cfg := testAIConfig("http://127.0.0.1:1")
	c := NewCompleter(cfg)
	if got := c.Complete(context.Background(), nil, "Alice", "", "hi"); got != fallbackReply {
		t.Errorf("expected fallback, got %q", got)
	}
}

func TestComplete_MissingKeyFallsBack(t *testing.T) {
	cfg := testAIConfig("http://unused")
	cfg.GeminiAPIKey = ""
	c := NewCompleter(cfg)
	if got := c.Complete(context.Background(), nil, "Alice", "", "hi"); got != fallbackReply {
		t.Errorf("expected fallback, got %q", got)
	}
}

// --- Labeler ---

func TestLabel_ReturnsTopTwoByScore(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]hfPrediction{{
			{Label: "sadness", Score: 0.2},
			{Label: "joy", Score: 0.7},
			{Label: "relief", Score: 0.5},
		}})
	}))
	defer srv.Close()

	l := NewLabeler(testAIConfig(srv.URL))
	got := l.Label(context.Background(), "had a lovely walk")
	if len(got) != 2 || got[0] != "joy" || got[1] != "relief" {
		t.Errorf("expected [joy relief], got %v", got)
	}
}

func TestLabel_SingleLabelPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([][]hfPrediction{{{Label: "fear", Score: 0.9}}})
	}))
	defer srv.Close()

	l := NewLabeler(testAIConfig(srv.URL))
	got := l.Label(context.Background(), "worried about tomorrow")
	if len(got) != 1 || got[0] != "fear" {
		t.Errorf("expected [fear], got %v", got)
	}
}

func TestLabel_ModelLoadingSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	l := NewLabeler(testAIConfig(srv.URL))
	got := l.Label(context.Background(), "text")
	if len(got) != 1 || got[0] != "model loading..." {
		t.Errorf("expected model-loading sentinel, got %v", got)
	}
}

func TestLabel_FailureSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	l := NewLabeler(testAIConfig(srv.URL))
	got := l.Label(context.Background(), "text")
	if len(got) != 1 || got[0] != "analysis error" {
		t.Errorf("expected failure sentinel, got %v", got)
	}
}

func TestLabel_UnexpectedShapeSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	l := NewLabeler(testAIConfig(srv.URL))
	got := l.Label(context.Background(), "text")
	if len(got) != 1 || got[0] != "neutral" {
		t.Errorf("expected neutral sentinel, got %v", got)
	}
}

func TestLabel_MissingKeySentinel(t *testing.T) {
	cfg := testAIConfig("http://unused")
	cfg.HFAPIKey = ""
	l := NewLabeler(cfg)
	got := l.Label(context.Background(), "text")
	if len(got) != 1 || got[0] != "Neutral" {
		t.Errorf("expected Neutral sentinel, got %v", got)
	}
}
