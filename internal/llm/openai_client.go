package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/daypulse/daypulse/internal/domain"
)

var (
	// ErrOpenAIUnavailable indicates the OpenAI service is not configured or unavailable.
	ErrOpenAIUnavailable = errors.New("OpenAI service unavailable")
	// ErrOpenAIRequest indicates an error during the OpenAI API request.
	ErrOpenAIRequest = errors.New("OpenAI request failed")
	// ErrOpenAIResponse indicates an error parsing the OpenAI response.
	ErrOpenAIResponse = errors.New("failed to parse OpenAI response")
)

const systemPrompt = `You are a non-medical productivity planning assistant.

You receive one day's computed recovery score, hourly productivity scores,
energy-flow windows, and candidate deep-work blocks for a single user. You
must base your conclusions only on the provided numbers.

Your goals:
- Summarize what kind of day this is (recovered vs. run down, where the energy peaks fall).
- Explain, in plain language, when the user should schedule demanding work and when to avoid it.
- If several deep-work blocks score equally, express a preference between them using their start hours.
- Mention accumulated sleep debt only if it is present in the data.

Rules:
- Do NOT provide medical advice or diagnoses.
- Do NOT mention diseases, disorders, doctors, or treatment.
- Never invent time windows; only reference the block start hours you were given.
- Be concise and concrete.

You must respond as strict JSON with exactly this shape:

{
  "commentary": "2-4 sentences describing the day's recovery and the best use of its energy peaks.",
  "block_preference": [9, 15],
  "cautions": ["0-3 short cautions, e.g. about the post-lunch dip or elevated sleep debt."]
}

"block_preference" must contain only start hours of the provided focus blocks,
best first. It may be empty. No extra fields. No comments. No backticks.`

const userPromptTemplate = `Here is JSON describing today's computed plan.

- "recovery" holds the normalized recovery score and its per-metric components.
- "baseline" holds the trailing 7-day statistics the recovery score was judged against.
- "focus_blocks" are the candidate deep-work blocks (start/end in 24h clock hours).
- "energy_flow" holds the wake-anchored energy windows.
- "sleep_debt", when present, is the accumulated deficit in hours.

JSON:

%s

Based on this data, respond in the required JSON format.`

// AdvisoryLLM is the interface for generating day-plan commentary using an LLM.
type AdvisoryLLM interface {
	// GenerateAdvisory takes a day context and returns LLM-generated commentary.
	GenerateAdvisory(ctx context.Context, dayCtx *domain.DayContext) (*domain.AdvisoryOutput, error)
}

// OpenAIClient implements AdvisoryLLM using the OpenAI API.
type OpenAIClient struct {
	client openai.Client
	model  string
}

// NewOpenAIClient creates a new OpenAI client for generating advisories.
// Returns nil if apiKey is empty.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if apiKey == "" {
		return nil
	}

	if model == "" {
		model = "gpt-4o-mini"
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))

	return &OpenAIClient{
		client: client,
		model:  model,
	}
}

// GenerateAdvisory calls OpenAI to generate day-plan commentary.
func (c *OpenAIClient) GenerateAdvisory(ctx context.Context, dayCtx *domain.DayContext) (*domain.AdvisoryOutput, error) {
	if c == nil {
		return nil, ErrOpenAIUnavailable
	}

	// Serialize context to JSON
	contextJSON, err := json.MarshalIndent(dayCtx, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize context: %v", ErrOpenAIRequest, err)
	}

	userPrompt := fmt.Sprintf(userPromptTemplate, string(contextJSON))

	// Call OpenAI
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessage(userPrompt),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIRequest, err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("%w: no choices in response", ErrOpenAIResponse)
	}

	content := resp.Choices[0].Message.Content

	// Parse the JSON response
	var output domain.AdvisoryOutput
	if err := json.Unmarshal([]byte(content), &output); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenAIResponse, err)
	}

	return &output, nil
}
