package generate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// GeminiConfig configures the Gemini REST client.
type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// DefaultGeminiConfig returns sensible defaults for the given API key.
func DefaultGeminiConfig(apiKey string) GeminiConfig {
	return GeminiConfig{
		APIKey:  apiKey,
		BaseURL: defaultBaseURL,
		Model:   "gemini-2.5-flash",
		Timeout: 30 * time.Second,
	}
}

// GeminiClient implements Generator against the generativelanguage
// generateContent endpoint.
type GeminiClient struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	log        *zap.Logger
}

func NewGeminiClient(cfg GeminiConfig, log *zap.Logger) *GeminiClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GeminiClient{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiGenerationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

func buildPrompt(req Request) string {
	return fmt.Sprintf(`Generate 5 daily tasks for someone on a %s journey.
Focus areas: %s
Difficulty: %s
Time: %s

Return ONLY this JSON array format (no other text):
[{"title": "task 1"},{"title": "task 2"},{"title": "task 3"},{"title": "task 4"},{"title": "task 5"}]`,
		req.Arc,
		strings.Join(req.FocusAreas, ", "),
		req.Difficulty,
		req.TimeAvailable,
	)
}

// GenerateTasks asks the model for daily task titles. Exactly 5 are
// requested but any non-empty list is accepted.
func (c *GeminiClient) GenerateTasks(ctx context.Context, req Request) ([]string, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrGeneration)
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: buildPrompt(req)}}}},
		GenerationConfig: geminiGenerationConfig{
			Temperature:     0.7,
			MaxOutputTokens: 2048,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: marshal request: %v", ErrGeneration, err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, c.apiKey)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrGeneration, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Warn("generation call failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("generation call returned error status", zap.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrGeneration, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", ErrGeneration, err)
	}

	var gr geminiResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrGeneration, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no text generated", ErrGeneration)
	}

	titles, err := parseTaskTitles(gr.Candidates[0].Content.Parts[0].Text)
	if err != nil {
		return nil, err
	}
	c.log.Debug("generated daily tasks", zap.Int("count", len(titles)))
	return titles, nil
}

// parseTaskTitles extracts the JSON array from the model's text output.
// The model is told to return only the array, but a fenced or prefixed
// reply still parses as long as one array is present.
func parseTaskTitles(text string) ([]string, error) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("%w: no JSON array in response", ErrGeneration)
	}

	var entries []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &entries); err != nil {
		return nil, fmt.Errorf("%w: parse task array: %v", ErrGeneration, err)
	}

	titles := make([]string, 0, len(entries))
	for _, e := range entries {
		if t := strings.TrimSpace(e.Title); t != "" {
			titles = append(titles, t)
		}
	}
	if len(titles) == 0 {
		return nil, fmt.Errorf("%w: empty task array", ErrGeneration)
	}
	return titles, nil
}
