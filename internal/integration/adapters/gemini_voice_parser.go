// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/gkeele21/family-budget/internal/application/adapter"
)

// GeminiVoiceParser implements the VoiceTransactionParser using Google
// Gemini.
type GeminiVoiceParser struct {
	apiKey    string
	modelName string
}

// NewGeminiVoiceParser creates a new Gemini voice parser instance.
func NewGeminiVoiceParser(apiKey, modelName string) *GeminiVoiceParser {
	if modelName == "" {
		modelName = "gemini-2.5-flash-lite"
	}
	return &GeminiVoiceParser{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the parser is properly configured.
func (s *GeminiVoiceParser) IsAvailable() bool {
	return s.apiKey != ""
}

// ParseTranscript extracts structured transactions from a spoken transcript.
func (s *GeminiVoiceParser) ParseTranscript(ctx context.Context, transcript string, vc adapter.VoiceContext) (*adapter.VoiceParseResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini parser is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.2)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(transcript, vc)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiVoiceParser) buildPrompt(transcript string, vc adapter.VoiceContext) string {
	var sb strings.Builder

	sb.WriteString(`You are a transaction entry assistant for an envelope budgeting app. The user dictated one or more money transactions. Extract every transaction mentioned in the transcript.

RULES:
- "amount" is a positive decimal string, no currency symbol.
- "type" is "expense" or "income". Spending, buying and paying are expenses; salary, refunds and deposits are income.
- "date" is YYYY-MM-DD. Resolve relative dates ("yesterday", "last Tuesday") against today's date given below. Leave empty when no date was spoken.
- Match "account_name", "category_name" and "payee_name" to the known names listed below when the transcript clearly refers to one of them; otherwise repeat the name as spoken. Leave a field empty when the transcript does not mention it.
- Never invent transactions that were not spoken.
- "confidence" is your overall confidence in the extraction, 0.0 to 1.0.

TODAY: ` + vc.Today + "\n")

	sb.WriteString("\nKNOWN ACCOUNTS:\n")
	writeNameList(&sb, vc.AccountNames)
	sb.WriteString("\nKNOWN CATEGORIES:\n")
	writeNameList(&sb, vc.CategoryNames)
	sb.WriteString("\nKNOWN PAYEES:\n")
	writeNameList(&sb, vc.PayeeNames)

	sb.WriteString("\nTRANSCRIPT:\n")
	sb.WriteString(transcript)

	sb.WriteString(`

Respond with a single JSON object:
{
  "transactions": [
    {
      "amount": "12.50",
      "type": "expense" | "income",
      "account_name": "string or empty",
      "category_name": "string or empty",
      "payee_name": "string or empty",
      "date": "YYYY-MM-DD or empty",
      "memo": "short note or empty"
    }
  ],
  "confidence": 0.0-1.0
}

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

func writeNameList(sb *strings.Builder, names []string) {
	if len(names) == 0 {
		sb.WriteString("(none)\n")
		return
	}
	for _, name := range names {
		sb.WriteString("- " + name + "\n")
	}
}

// parseResponse parses the Gemini response into a VoiceParseResult.
func (s *GeminiVoiceParser) parseResponse(resp *genai.GenerateContentResponse) (*adapter.VoiceParseResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var result adapter.VoiceParseResult
	if err := json.Unmarshal([]byte(textContent), &result); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	return &result, nil
}
