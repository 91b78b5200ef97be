package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"

	"finbuddy/pkg/config"

	"go.uber.org/zap"
)

type Role string

const (
	SystemRole    Role = "system"
	UserRole      Role = "user"
	AssistantRole Role = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Network-level failure classes. The chat handler maps each to its own
// status code and user-facing message.
var (
	ErrTimeout    = errors.New("ai service timed out")
	ErrConnection = errors.New("cannot connect to ai service")
)

// UpstreamError is a non-200 reply from the chat-completion API. The
// response body is logged by the client, never carried to the caller.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ai service returned status %d", e.StatusCode)
}

// GroqClient issues chat-completion requests to the Groq OpenAI-compatible
// endpoint. One synchronous POST per completion, no retries.
type GroqClient struct {
	config     *config.GroqConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewGroqClient(cfg *config.GroqConfig, logger *zap.Logger) *GroqClient {
	return &GroqClient{
		config: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}
}

type groqRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature"`
	MaxTokens   int       `json:"max_tokens"`
}

type groqResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends the message list and returns the first completion's text.
func (c *GroqClient) Complete(ctx context.Context, messages []Message) (string, error) {
	reqBody := groqRequest{
		Model:       c.config.Model,
		Messages:    messages,
		Temperature: c.config.Temperature,
		MaxTokens:   c.config.MaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode groq request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to build groq request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", c.classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read groq response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("Groq API returned an error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body),
		)
		return "", &UpstreamError{StatusCode: resp.StatusCode}
	}

	var result groqResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse groq response: %w", err)
	}

	if len(result.Choices) == 0 {
		return "", errors.New("no completion in groq response")
	}

	return result.Choices[0].Message.Content, nil
}

func (c *GroqClient) classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		c.logger.Error("Groq API request timed out", zap.Error(err))
		return ErrTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		c.logger.Error("Groq API request timed out", zap.Error(err))
		return ErrTimeout
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) {
		c.logger.Error("Groq API connection failed", zap.Error(err))
		return ErrConnection
	}

	c.logger.Error("Groq API request failed", zap.Error(err))
	return fmt.Errorf("groq request failed: %w", err)
}
