package describer

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Describe sends the style guide as the system instruction and the transcript
// as the user message, and returns the generated description. Errors from the
// transport propagate as-is; there is no retry and the output is not validated
// against the style rules. The model is trusted to follow them.
func (d *implDescriber) Describe(ctx context.Context, transcript string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  d.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: d.styleGuide}},
		},
		MaxOutputTokens: d.maxOutputTokens,
	}

	d.logger.Debug(ctx, "Requesting description from %s (%d transcript chars)", d.model, len(transcript))

	result, err := client.Models.GenerateContent(ctx, d.model, genai.Text(UserMessage(transcript)), cfg)
	if err != nil {
		return "", fmt.Errorf("generate description: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	if text == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return text, nil
}
