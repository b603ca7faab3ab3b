package repository

import (
	"context"
	"fmt"

	"github.com/ayush6624/go-chatgpt"
)

type GptRepository interface {
	CreateChatCompletion(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
}

type gptRepositoryHandler struct {
	GptClient *chatgpt.Client
	Model     string
}

// NewGptRepository builds a chat client. baseUrl may point at any
// OpenAI-compatible endpoint; empty means the OpenAI default.
func NewGptRepository(apiKey string, baseUrl string, model string) (GptRepository, error) {
	var client *chatgpt.Client
	var err error
	if baseUrl == "" {
		client, err = chatgpt.NewClient(apiKey)
	} else {
		client, err = chatgpt.NewClientWithConfig(&chatgpt.Config{
			APIKey:  apiKey,
			BaseURL: baseUrl,
		})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to construct gpt client: %w", err)
	}

	return gptRepositoryHandler{
		GptClient: client,
		Model:     model,
	}, nil
}

func (h gptRepositoryHandler) CreateChatCompletion(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	res, err := h.GptClient.Send(ctx, &chatgpt.ChatCompletionRequest{
		Model: chatgpt.ChatGPTModel(h.Model),
		Messages: []chatgpt.ChatMessage{
			{
				Role:    chatgpt.ChatGPTModelRoleSystem,
				Content: systemPrompt,
			},
			{
				Role:    chatgpt.ChatGPTModelRoleUser,
				Content: userPrompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(res.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return res.Choices[0].Message.Content, nil
}
