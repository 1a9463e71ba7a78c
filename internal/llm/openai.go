package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/forageapp/forage/internal/model"
	"github.com/sashabaranov/go-openai"
)

const parserSystemPrompt = `You parse recipe ingredient lines into JSON.
Respond with exactly one JSON object, no prose, with these fields:
  name     (string, required: the normalized ingredient name)
  amount   (number, optional: the quantity; omit if the line has none)
  unit     (string, optional: the unit; omit for unitless counts)
  prep     (string, optional: preparation like "diced" or "sifted")
  optional (boolean, optional: true if the line marks the ingredient optional)
If the line is not an ingredient at all, respond with {"skip": true}.`

// OpenAIParser implements IngredientParser on the OpenAI chat API.
type OpenAIParser struct {
	client *openai.Client
	config Config
}

// NewOpenAIParser creates an OpenAI-backed parser.
func NewOpenAIParser(config Config) (*OpenAIParser, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("OpenAI API key is required")
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIParser{
		client: openai.NewClientWithConfig(clientConfig),
		config: config,
	}, nil
}

// Name returns the provider name.
func (p *OpenAIParser) Name() string {
	return "openai"
}

// Parse structures one ingredient line via a chat completion.
func (p *OpenAIParser) Parse(ctx context.Context, line string) (*model.StructuredIngredient, error) {
	chatModel := p.config.Model
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}

	maxTokens := p.config.MaxTokens
	if maxTokens == 0 {
		maxTokens = 500
	}

	timeout := time.Duration(p.config.Timeout) * time.Second
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	ctxWithTimeout, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resp, err := p.client.CreateChatCompletion(ctxWithTimeout, openai.ChatCompletionRequest{
		Model: chatModel,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: parserSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: line},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.1,
	})
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	return decodeParsedIngredient(resp.Choices[0].Message.Content, line)
}

// parsedIngredient is the response contract.
type parsedIngredient struct {
	Skip     bool     `json:"skip"`
	Name     string   `json:"name"`
	Amount   *float64 `json:"amount"`
	Unit     string   `json:"unit"`
	Prep     string   `json:"prep"`
	Optional bool     `json:"optional"`
}

// decodeParsedIngredient validates a model response and builds the
// structured record. Invalid responses are rejected so the caller
// falls back to the free-text form.
func decodeParsedIngredient(content string, line string) (*model.StructuredIngredient, error) {
	content = stripCodeFence(content)

	var parsed parsedIngredient
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("unparseable response: %w", err)
	}

	if parsed.Skip {
		return nil, nil
	}
	if strings.TrimSpace(parsed.Name) == "" {
		return nil, fmt.Errorf("response missing ingredient name")
	}
	if parsed.Amount != nil && *parsed.Amount < 0 {
		return nil, fmt.Errorf("response has negative amount %v", *parsed.Amount)
	}

	structured := &model.StructuredIngredient{
		Item:     line,
		Name:     strings.TrimSpace(parsed.Name),
		Prep:     strings.TrimSpace(parsed.Prep),
		Optional: parsed.Optional,
	}
	if parsed.Amount != nil {
		structured.Quantity = &model.Quantity{
			Amount: *parsed.Amount,
			Unit:   strings.TrimSpace(parsed.Unit),
		}
	}

	return structured, nil
}

// stripCodeFence removes a Markdown code fence some models wrap JSON
// in despite instructions.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
