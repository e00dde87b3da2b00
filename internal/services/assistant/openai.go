package assistant

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	logpkg "petminder/internal/logger"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
	"go.uber.org/zap"
)

const (
	// DefaultModel is the default model to use
	DefaultModel = "gpt-4o-mini"
	// DefaultBaseURL is the default OpenAI API base URL
	DefaultBaseURL = "https://api.openai.com/v1"
	// DefaultTimeout is the default timeout for API calls
	DefaultTimeout = 30 * time.Second
	// maxReplyTokens caps the assistant's answer length
	maxReplyTokens = 300
)

// systemPreamble pins the assistant's role, tone, and domain. It rides
// along with every request since there is no session state.
const systemPreamble = "You are a friendly pet-care assistant for a reminder app. " +
	"Answer questions about pet health, grooming, medication schedules, and " +
	"day-to-day care. Reply in the language the owner writes in, keep answers " +
	"under 120 words, use plain text without markdown, and recommend seeing a " +
	"veterinarian for anything that sounds urgent or medical. Politely decline " +
	"questions unrelated to pets."

// OpenAIProvider implements the Provider interface using OpenAI's API
type OpenAIProvider struct {
	client    openai.Client
	model     string
	logger    *zap.Logger
	debugMode bool
}

var _ Provider = (*OpenAIProvider)(nil)

// NewOpenAIProvider creates a new OpenAI provider
func NewOpenAIProvider(apiKey string, model string) *OpenAIProvider {
	return NewOpenAIProviderWithLogger(apiKey, DefaultBaseURL, model, nil, false)
}

// NewOpenAIProviderWithLogger creates a new OpenAI provider with logger support
func NewOpenAIProviderWithLogger(apiKey string, baseURL string, model string, logger *zap.Logger, debugMode bool) *OpenAIProvider {
	if model == "" {
		model = DefaultModel
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := &http.Client{
		Timeout: DefaultTimeout,
	}

	client := openai.NewClient(
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithHTTPClient(httpClient),
	)

	return &OpenAIProvider{
		client:    client,
		model:     model,
		logger:    logger,
		debugMode: debugMode,
	}
}

// Chat sends a single message with the fixed system preamble and returns
// the reply text.
func (p *OpenAIProvider) Chat(ctx context.Context, message string) (string, error) {
	req := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPreamble),
			openai.UserMessage(message),
		},
		MaxTokens: openai.Int(maxReplyTokens),
	}

	if p.logger != nil && p.debugMode {
		p.logger.Debug("assistant_request",
			zap.String("model", p.model),
			zap.String("message_preview", logpkg.SanitizeDebugContent(message)),
		)
	}

	resp, err := p.client.Chat.Completions.New(ctx, req)
	if err != nil {
		if p.logger != nil && p.debugMode {
			p.logger.Debug("assistant_request_failed",
				zap.String("error", logpkg.SanitizeError(err)),
			)
		}
		return "", fmt.Errorf("chat completion failed: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrEmptyReply
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", ErrEmptyReply
	}

	if p.logger != nil && p.debugMode {
		p.logger.Debug("assistant_response",
			zap.String("content_preview", logpkg.SanitizeDebugContent(content)),
		)
	}

	return content, nil
}
