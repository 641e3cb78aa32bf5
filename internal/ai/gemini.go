// Package ai implements the two hosted AI collaborators MindBase depends
// on: a chat-completion service for companion replies and an emotion
// inference service for journal sentiment labels.
//
// Both clients absorb every failure at the boundary -- network errors,
// non-2xx responses, unexpected payloads -- and return a fallback value
// instead. They never return an error to callers: storage and handler
// logic must keep working when the hosted services don't.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mindbase/mindbase/internal/config"
)

// historyWindow bounds how many recent messages are replayed to the
// completion API on each turn.
const historyWindow = 20

// fallbackReply is returned whenever the completion call fails for any reason.
const fallbackReply = "I apologize, I'm having trouble processing that right now. Could you try again?"

// emptyReply is returned when the API answers successfully but with no text.
const emptyReply = "I'm listening, please go on."

// Turn is one prior exchange in the companion conversation, oldest first.
type Turn struct {
	Role string // "user" or "model"
	Text string
}

// Completer produces companion replies from conversation history and a new
// user message. Implementations must not return errors; on failure they
// return a safe fallback string.
type Completer interface {
	Complete(ctx context.Context, history []Turn, userName, userBio, message string) string
}

// geminiCompleter implements Completer against the Gemini generateContent
// REST API.
type geminiCompleter struct {
	cfg    config.AIConfig
	client *http.Client
}

// NewCompleter creates the default chat completion client.
func NewCompleter(cfg config.AIConfig) Completer {
	return &geminiCompleter{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// Request/response shapes for the generateContent endpoint. Only the fields
// MindBase uses are modeled.
type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
}

type geminiCandidate struct {
	Content geminiContent `json:"content"`
}

type geminiResponse struct {
	Candidates []geminiCandidate `json:"candidates"`
}

// Complete sends the bounded recent history plus the new message and returns
// the model's reply. Any failure along the way yields the fallback apology.
func (g *geminiCompleter) Complete(ctx context.Context, history []Turn, userName, userBio, message string) string {
	if g.cfg.GeminiAPIKey == "" {
		slog.Warn("chat completion unavailable: GEMINI_API_KEY not set")
		return fallbackReply
	}

	// Replay at most the last historyWindow turns, then the new message.
	recent := history
	if len(recent) > historyWindow {
		recent = recent[len(recent)-historyWindow:]
	}

	contents := make([]geminiContent, 0, len(recent)+1)
	for _, turn := range recent {
		contents = append(contents, geminiContent{
			Role:  turn.Role,
			Parts: []geminiPart{{Text: turn.Text}},
		})
	}
	contents = append(contents, geminiContent{
		Role:  "user",
		Parts: []geminiPart{{Text: message}},
	})

	reqBody := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemInstruction(userName, userBio)}},
		},
		Contents: contents,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		slog.Error("encoding completion request", slog.Any("error", err))
		return fallbackReply
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		g.cfg.GeminiBaseURL, g.cfg.GeminiModel, g.cfg.GeminiAPIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		slog.Error("building completion request", slog.Any("error", err))
		return fallbackReply
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		slog.Warn("chat completion request failed", slog.Any("error", err))
		return fallbackReply
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("chat completion returned non-OK status",
			slog.Int("status", resp.StatusCode),
		)
		return fallbackReply
	}

	var out geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		slog.Warn("decoding completion response", slog.Any("error", err))
		return fallbackReply
	}

	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return emptyReply
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return emptyReply
	}
	return text
}

// systemInstruction builds the companion persona prompt from the user's
// name and bio so replies can reference their background.
func systemInstruction(userName, userBio string) string {
	if userBio == "" {
		userBio = "The user has not provided a bio yet."
	}
	return fmt.Sprintf(`You are MindBase, a compassionate, supportive, and empathetic mental health companion.
Your user is named %s.

User's Personal Background/Bio:
%q

Use this background information to personalize your advice and understanding of their situation.
For example, if the bio mentions specific struggles or interests, reference them gently where appropriate.

Provide supportive, non-judgmental responses.
If the user seems in immediate danger, strictly advise them to seek professional help or call emergency services immediately.
Keep responses concise but warm.`, userName, userBio)
}
