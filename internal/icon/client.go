// Package icon suggests a display glyph for task text by asking a generative
// model for a single emoji. Every failure path degrades to DefaultIcon; the
// caller never sees an error.
package icon

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

const (
	// PlaceholderIcon marks a task whose icon request has not resolved yet.
	PlaceholderIcon = "⏳"
	// DefaultIcon is the fallback when no credential is configured, the
	// request fails, or the reply does not look like an emoji.
	DefaultIcon = "✏️"
)

const (
	geminiBaseURL  = "https://generativelanguage.googleapis.com/v1beta/models"
	geminiModel    = "gemini-2.5-flash"
	promptTemplate = `為以下學習任務建議一個最相關的表情符號，只回傳表情符號本身，不要有任何其他文字： "%s"`
	// Low temperature keeps icon selection close to deterministic.
	generationTemperature = 0.2
)

type Client struct {
	apiKey  string
	baseURL string
	model   string
	client  *http.Client

	mu    sync.Mutex
	cache map[string]string
}

type generateRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []contentPart `json:"parts"`
}

type contentPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []contentPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

type generateError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: geminiBaseURL,
		model:   geminiModel,
		client:  &http.Client{},
		cache:   make(map[string]string),
	}
}

// Suggest returns an emoji for the given task text. It never fails: a missing
// credential, transport error, or non-emoji reply yields DefaultIcon.
// Successful replies are cached for the life of the process, keyed by the
// literal prompt sent upstream.
func (c *Client) Suggest(ctx context.Context, text string) string {
	if c == nil || c.apiKey == "" {
		return DefaultIcon
	}
	prompt := fmt.Sprintf(promptTemplate, text)
	if cached, ok := c.cached(prompt); ok {
		return cached
	}

	reply, err := c.generate(ctx, prompt)
	if err != nil {
		return DefaultIcon
	}
	emoji := strings.TrimSpace(reply)
	if emoji == "" || !containsEmoji(emoji) {
		return DefaultIcon
	}
	c.remember(prompt, emoji)
	return emoji
}

func (c *Client) cached(prompt string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	got, ok := c.cache[prompt]
	return got, ok
}

func (c *Client) remember(prompt string, emoji string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cache[prompt] = emoji
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	payload := generateRequest{
		Contents:         []requestContent{{Parts: []contentPart{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: generationTemperature},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("http request failed: %w", err)
	}
	respBody, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr generateError
		if json.Unmarshal(respBody, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("generate API error (%d): %s", resp.StatusCode, apiErr.Error.Message)
		}
		return "", fmt.Errorf("generate API error (%d): %s", resp.StatusCode, string(respBody))
	}

	var parsed generateResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Candidates) == 0 {
		return "", fmt.Errorf("no candidates returned")
	}

	var b strings.Builder
	for _, p := range parsed.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return b.String(), nil
}

// containsEmoji reports whether s holds at least one rune from the common
// emoji and pictograph blocks.
func containsEmoji(s string) bool {
	for _, r := range s {
		switch {
		case r >= 0x1F300 && r <= 0x1F5FF, // symbols and pictographs
			r >= 0x1F600 && r <= 0x1F64F, // emoticons
			r >= 0x1F680 && r <= 0x1F6FF, // transport
			r >= 0x1F900 && r <= 0x1F9FF, // supplemental symbols
			r >= 0x1FA70 && r <= 0x1FAFF, // extended pictographs
			r >= 0x2600 && r <= 0x26FF,   // miscellaneous symbols
			r >= 0x2700 && r <= 0x27BF,   // dingbats
			r >= 0x2B00 && r <= 0x2BFF:   // arrows and stars
			return true
		}
	}
	return false
}
