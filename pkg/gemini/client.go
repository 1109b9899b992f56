// Package gemini wraps the GenAI SDK behind the single call the coach needs.
package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 30 * time.Second

	jsonMIMEType = "application/json"
)

// Options configures a Client. An empty BaseURL targets the public Gemini API.
type Options struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Request is a single-turn prompt. A non-nil Schema asks for JSON output shaped by it.
type Request struct {
	Prompt string
	Schema *genai.Schema
}

// Client generates content with one model.
type Client struct {
	models *genai.Models
	model  string
}

// NewClient builds a client. An empty API key is rejected so the SDK never falls back to
// ambient credentials.
func NewClient(ctx context.Context, opts Options) (*Client, error) {
	if strings.TrimSpace(opts.APIKey) == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimRight(opts.BaseURL, "/") + "/"}
	}

	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &Client{models: client.Models, model: opts.Model}, nil
}

// Model returns the model the client targets.
func (c *Client) Model() string {
	return c.model
}

// GenerateContent sends the prompt and returns the text of the first candidate. An
// answer with no text yields an empty string and no error.
func (c *Client) GenerateContent(ctx context.Context, req Request) (string, error) {
	var config *genai.GenerateContentConfig
	if req.Schema != nil {
		config = &genai.GenerateContentConfig{
			ResponseMIMEType: jsonMIMEType,
			ResponseSchema:   req.Schema,
		}
	}

	resp, err := c.models.GenerateContent(ctx, c.model, genai.Text(req.Prompt), config)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return firstCandidateText(resp), nil
}

func firstCandidateText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String()
}

// String is a shorthand for a string schema restricted to values when given.
func String(values ...string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Enum: values}
}

// Integer is a shorthand for an integer schema.
func Integer() *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger}
}

// ArrayOf wraps items in an array schema.
func ArrayOf(items *genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: items}
}

// Object builds an object schema from its properties.
func Object(properties map[string]*genai.Schema) *genai.Schema {
	return &genai.Schema{Type: genai.TypeObject, Properties: properties}
}
