package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sashabaranov/go-openai"

	"github.com/decentraestate/marketd/internal/valuation"
)

// Provider implements the valuation.Provider interface against the OpenAI
// chat-completion API.
type Provider struct {
	client *openai.Client
	model  string
}

// NewProvider creates a live provider. The caller is responsible for only
// constructing one when an API key is configured.
func NewProvider(apiKey string, model string) *Provider {
	client := openai.NewClient(apiKey)
	if model == "" {
		model = openai.GPT4o
	}
	return &Provider{
		client: client,
		model:  model,
	}
}

// Valuate implements the valuation.Provider interface.
func (p *Provider) Valuate(ctx context.Context, details string) (*valuation.Evaluation, error) {
	prompt := fmt.Sprintf(`Analyze the following property details and provide a market valuation.
Details: %s

Output format is JSON:
{
    "estimated_value": float,
    "confidence": "High" | "Medium" | "Low",
    "comparables": [{"address": string, "sale_price": float}, ...]
}

estimated_value is the estimated market value of the property in USD.
comparables lists nearby properties used for the valuation and may be empty.`, details)

	resp, err := p.createChatCompletion(ctx, []openai.ChatCompletionMessage{
		{
			Role:    openai.ChatMessageRoleUser,
			Content: prompt,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to valuate property: %w", err)
	}

	var result struct {
		EstimatedValue float64                `json:"estimated_value"`
		Confidence     string                 `json:"confidence"`
		Comparables    []valuation.Comparable `json:"comparables"`
	}

	if err := json.Unmarshal([]byte(resp), &result); err != nil {
		return nil, fmt.Errorf("failed to parse valuation response: %w", err)
	}
	if result.EstimatedValue == 0 || result.Confidence == "" {
		return nil, fmt.Errorf("valuation response missing mandatory fields")
	}

	return &valuation.Evaluation{
		EstimatedValue: result.EstimatedValue,
		Confidence:     result.Confidence,
		Comparables:    result.Comparables,
		Source:         valuation.SourceLive,
	}, nil
}

// VerifyDocument implements the valuation.Provider interface. The document
// is sent inline as a data URI image part.
func (p *Provider) VerifyDocument(ctx context.Context, documentBase64, mimeType string) (*valuation.DocumentVerification, error) {
	prompt := `Analyze this property deed document. Extract the owner's name, property address, and date of registration. Confirm if it appears to be a valid legal document and list any potential issues.

Output format is JSON:
{
    "owner_name": string,
    "property_address": string,
    "registration_date": "YYYY-MM-DD",
    "is_valid": bool,
    "issues": [string, ...]
}`

	resp, err := p.createChatCompletion(ctx, []openai.ChatCompletionMessage{
		{
			Role: openai.ChatMessageRoleUser,
			MultiContent: []openai.ChatMessagePart{
				{
					Type: openai.ChatMessagePartTypeImageURL,
					ImageURL: &openai.ChatMessageImageURL{
						URL: fmt.Sprintf("data:%s;base64,%s", mimeType, documentBase64),
					},
				},
				{
					Type: openai.ChatMessagePartTypeText,
					Text: prompt,
				},
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify document: %w", err)
	}

	var result struct {
		OwnerName        string   `json:"owner_name"`
		PropertyAddress  string   `json:"property_address"`
		RegistrationDate string   `json:"registration_date"`
		IsValid          bool     `json:"is_valid"`
		Issues           []string `json:"issues"`
	}

	if err := json.Unmarshal([]byte(resp), &result); err != nil {
		return nil, fmt.Errorf("failed to parse verification response: %w", err)
	}
	if result.OwnerName == "" || result.PropertyAddress == "" || result.RegistrationDate == "" {
		return nil, fmt.Errorf("verification response missing mandatory fields")
	}

	issues := result.Issues
	if issues == nil {
		issues = []string{}
	}

	return &valuation.DocumentVerification{
		OwnerName:        result.OwnerName,
		PropertyAddress:  result.PropertyAddress,
		RegistrationDate: result.RegistrationDate,
		IsValid:          result.IsValid,
		Issues:           issues,
		Source:           valuation.SourceLive,
	}, nil
}

// createChatCompletion is a helper function for the OpenAI API round trip.
func (p *Provider) createChatCompletion(ctx context.Context, messages []openai.ChatCompletionMessage) (string, error) {
	system := openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: "You are a professional real-estate analyst specialized in market valuations and deed review. Always return results as JSON only, with no surrounding text.",
	}

	resp, err := p.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model:       p.model,
			Messages:    append([]openai.ChatCompletionMessage{system}, messages...),
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}
