package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sashabaranov/go-openai"

	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/model"
	"github.com/DidUJustTouchMyButt/Mobile-Supply-Closet/internal/stock"
)

// OpenAIClient implements Client against the OpenAI chat-completion API.
type OpenAIClient struct {
	client *openai.Client
	model  string
}

// NewOpenAIClient creates a client for the given API key and model.
func NewOpenAIClient(apiKey, chatModel string) *OpenAIClient {
	if chatModel == "" {
		chatModel = openai.GPT4oMini
	}
	return &OpenAIClient{
		client: openai.NewClient(apiKey),
		model:  chatModel,
	}
}

// AnalyzeItemInput implements Client.
func (c *OpenAIClient) AnalyzeItemInput(ctx context.Context, freeText string) (*ItemAnalysis, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analyzeSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: freeText},
		},
	})
	if err != nil {
		slog.Error("item analysis request failed", "error", err)
		return nil, fmt.Errorf("analyzing item input: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("analyzing item input: no choices returned")
	}

	return parseItemAnalysis(resp.Choices[0].Message.Content)
}

// GenerateUtilizationPlan implements Client. Items with zero quantity are
// dropped before the request is issued.
func (c *OpenAIClient) GenerateUtilizationPlan(ctx context.Context, items []model.Item, mode PlanMode) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("unknown plan mode %q", mode)
	}

	available := stock.Available(items)
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: planPrompt(available, mode)},
		},
	})
	if err != nil {
		slog.Error("utilization plan request failed", "mode", mode, "error", err)
		return "", fmt.Errorf("generating utilization plan: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("generating utilization plan: no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// parseItemAnalysis decodes the model's JSON reply.
func parseItemAnalysis(content string) (*ItemAnalysis, error) {
	analysis := &ItemAnalysis{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(content)), analysis); err != nil {
		return nil, fmt.Errorf("parsing item analysis: %w", err)
	}
	if analysis.Name == "" {
		return nil, fmt.Errorf("parsing item analysis: missing name")
	}
	return analysis, nil
}
