// Package openai implements the narrative Generator against the OpenAI
// chat-completions API.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/drivewise/drivewise/internal/api/middleware"
	"github.com/drivewise/drivewise/internal/narrative"
	"github.com/drivewise/drivewise/internal/provider/resilience"
)

const (
	// ProviderName identifies this narrative provider.
	ProviderName = "openai"

	// DefaultBaseURL is the OpenAI API base URL.
	DefaultBaseURL = "https://api.openai.com/v1"

	// DefaultModel is the chat model used for justifications.
	DefaultModel = "gpt-4o-mini"

	// Generation settings: low temperature for consistent phrasing, short
	// output since the justification is two sentences.
	temperature = 0.1
	maxTokens   = 150
)

const systemPrompt = "You are an expert Dubai automotive consultant with deep knowledge " +
	"of local market conditions, costs, and practical considerations."

// ClientConfig holds configuration for the OpenAI client.
type ClientConfig struct {
	// APIKey is the OpenAI API key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the OpenAI API).
	BaseURL string

	// Model overrides the default chat model (optional).
	Model string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Registry records request outcomes for health reporting (optional).
	Registry *resilience.Registry

	// Metrics records request duration and outcome counters (optional).
	Metrics *middleware.ProviderMetrics

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an OpenAI chat-completions client for narrative generation.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *resilience.Client
	registry   *resilience.Registry
	metrics    *middleware.ProviderMetrics
	logger     zerolog.Logger
}

// NewClient creates a new OpenAI narrative client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	if cfg.Registry != nil {
		cfg.Registry.Register(ProviderName, httpClient)
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		registry:   cfg.Registry,
		metrics:    cfg.Metrics,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Generate asks the chat model for a two-sentence justification of the
// recommended option.
func (c *Client) Generate(ctx context.Context, s narrative.Summary) (string, error) {
	start := time.Now()
	text, err := c.complete(ctx, buildPrompt(s))
	if c.metrics != nil {
		c.metrics.RecordRequest(ProviderName, "chat-completion", time.Since(start), err)
	}
	if c.registry != nil {
		if err != nil {
			c.registry.RecordFailure(ProviderName, err)
		} else {
			c.registry.RecordSuccess(ProviderName)
		}
	}
	return text, err
}

func (c *Client) complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("decoding response: %w", err)
	}

	if len(chatResp.Choices) == 0 || chatResp.Choices[0].Message.Content == "" {
		return "", narrative.ErrEmptyCompletion
	}

	return chatResp.Choices[0].Message.Content, nil
}

// buildPrompt renders the structured summary into the consultant prompt.
func buildPrompt(s narrative.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are a Dubai automotive consultant. Based on the analysis for %d days, "+
		"provide detailed reasoning for recommending %s.\n\n", s.TotalDays, s.Recommended)

	fmt.Fprintf(&b, "Cost comparison:\n")
	fmt.Fprintf(&b, "- Rent: %.0f AED (%.0f AED/day)\n", s.RentTotal, s.RentDaily)
	fmt.Fprintf(&b, "- Buy: %.0f AED (%.0f AED/day)\n", s.BuyTotal, s.BuyDaily)
	fmt.Fprintf(&b, "- Driver: %.0f AED (%.0f AED/day)\n", s.DriverTotal, s.DriverDaily)

	if s.DistanceKm != nil {
		origin := "origin"
		if s.OriginOffice != nil {
			origin = *s.OriginOffice
		}
		fmt.Fprintf(&b, "\nTravel details: Distance from %s to Fujairah: %.0fkm\n", origin, *s.DistanceKm)
	}

	b.WriteString("\nConsider Dubai-specific factors:\n")
	b.WriteString("- Harsh climate affecting car depreciation\n")
	b.WriteString("- Heavy traffic and parking challenges\n")
	b.WriteString("- Salik toll system\n")
	b.WriteString("- Insurance and registration requirements\n")
	b.WriteString("- Fuel costs and maintenance\n")
	if s.DistanceKm != nil {
		b.WriteString("- Long distance travel considerations and fuel efficiency\n")
	}
	if s.OriginOffice != nil && *s.OriginOffice == "muscat" {
		b.WriteString("- Cross-border travel from Oman to UAE\n")
	}
	if s.VehicleType != nil {
		fmt.Fprintf(&b, "- Requested vehicle class: %s", *s.VehicleType)
		if s.RequiresOffroad {
			b.WriteString(" (off-road site access required)")
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nProvide clear, actionable advice in exactly 2 short sentences explaining "+
		"why %s is the best choice for this duration and distance.", s.Recommended)

	return b.String()
}

// OpenAI API request/response structures.

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}
