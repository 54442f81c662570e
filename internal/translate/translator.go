package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/kpauljoseph/ankihelper/internal/apperr"
	"github.com/kpauljoseph/ankihelper/pkg/logger"
)

const DefaultModel = "gpt-4o"

const SystemPrompt = "You are a helpful Danish to English translator. " +
	"Respond ONLY with a JSON object with these fields: " +
	"1. 'danish': the original Danish text, " +
	"2. 'english': the English translation, " +
	"3. 'pronunciation': Danish pronunciation guide (if relevant), " +
	"4. 'notes': any additional context, usage notes or grammar explanations. " +
	"Format your response as valid JSON without additional commentary."

var errNoChoices = errors.New("chat completion returned no choices")

// ChatCompleter is the part of *openai.Client the translator uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Translator struct {
	client ChatCompleter
	model  string
	logger *logger.Logger
}

func New(client ChatCompleter, model string, logger *logger.Logger) *Translator {
	if model == "" {
		model = DefaultModel
	}
	return &Translator{
		client: client,
		model:  model,
		logger: logger,
	}
}

// NewOpenAIClient builds the shared chat client. An empty baseURL keeps the
// SDK's default endpoint.
func NewOpenAIClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return openai.NewClientWithConfig(cfg)
}

func (t *Translator) Model() string {
	return t.model
}

func (t *Translator) Translate(ctx context.Context, danishText string) (Result, error) {
	if strings.TrimSpace(danishText) == "" {
		return nil, apperr.Validation("Danish text is required")
	}

	request := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: SystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: danishText},
		},
	}

	t.logger.Debug("Requesting translation from %s (%d chars)", t.model, len(danishText))

	response, err := t.client.CreateChatCompletion(ctx, request)
	if err != nil {
		return nil, apperr.Upstream(fmt.Sprintf("Error translating text: %v", err), err)
	}

	if len(response.Choices) == 0 {
		return nil, apperr.Upstream(fmt.Sprintf("Error translating text: %v", errNoChoices), errNoChoices)
	}

	content := response.Choices[0].Message.Content
	t.logger.Trace("Model output: %s", content)

	result := newResult(danishText, content)
	if result.Degraded() {
		t.logger.Debug("Model output is not valid JSON, returning it as the English text")
	}

	return result, nil
}
