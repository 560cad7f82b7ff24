package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction content   `json:"systemInstruction"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Remote asks a generative-language service for a move.
type Remote struct {
	endpoint string
	model    string
	apiKey   string
	timeout  time.Duration
	client   *http.Client
}

func NewRemote(endpoint, model, apiKey string, timeout time.Duration) *Remote {
	return &Remote{
		endpoint: strings.TrimRight(endpoint, "/"),
		model:    model,
		apiKey:   apiKey,
		timeout:  timeout,
		client:   &http.Client{},
	}
}

// Propose posts the rendered instruction to the generateContent endpoint and
// returns the first line of the reply. Transport failures and non-200 replies
// are returned as errors; retrying is up to the caller.
func (r *Remote) Propose(ctx context.Context, view View) (string, error) {
	instruction, err := Instruction(view)
	if err != nil {
		return "", fmt.Errorf("failed to render instruction: %w", err)
	}

	payload := generateRequest{
		SystemInstruction: content{Parts: []part{{Text: instruction}}},
		Contents:          []content{{Role: "user", Parts: []part{{Text: movePrompt}}}},
	}
	bodyBytes, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", r.endpoint, r.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", r.apiKey)

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("move request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("model returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", fmt.Errorf("failed to decode model reply: %w", err)
	}

	var text strings.Builder
	if len(gr.Candidates) > 0 {
		for _, p := range gr.Candidates[0].Content.Parts {
			text.WriteString(p.Text)
		}
	}

	log.Debug().
		Str("player", view.Player.String()).
		Str("model", r.model).
		Dur("latency", time.Since(start)).
		Str("reply", text.String()).
		Msg("model replied")

	return extractMove(text.String())
}

// extractMove picks the first non-empty line of a reply, dropping the code
// fences and quotes models like to add.
func extractMove(reply string) (string, error) {
	for _, line := range strings.Split(reply, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "```") {
			continue
		}
		line = strings.Trim(line, "`\"'.")
		if line == "" {
			continue
		}
		if strings.Contains(strings.ToLower(line), "no valid move") {
			return "", ErrNoMove
		}
		return line, nil
	}
	return "", ErrNoMove
}
