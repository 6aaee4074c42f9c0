package composer

import (
	"context"
	"errors"
	"time"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"trip_planner/internal/adapters/observability"
)

const systemPrompt = `You are an AI travel planner.

You receive:
- User's natural language request.
- Structured flight options, hotel options, and places (already pre-selected).
- Weather info.

Task:
- Create a realistic day-wise itinerary.
- Respect budget and preferences.
- Choose one flight and one hotel from the options provided.
- Use suitable places for each day.
- Output sections: Trip Summary, Flight, Hotel, Day-wise Plan, Estimated Cost, Reasoning.`

// OpenAI composes itineraries with an OpenAI chat model. The planner input is
// treated as a single human message; the returned text is opaque to the rest
// of the system.
type OpenAI struct {
	llm         *openai.LLM
	temperature float64
}

func New(apiKey, model string) (*OpenAI, error) {
	if apiKey == "" {
		return nil, errors.New("composer: API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(model),
	)
	if err != nil {
		return nil, err
	}
	return &OpenAI{llm: client, temperature: 0.4}, nil
}

func (o *OpenAI) Compose(ctx context.Context, plannerInput string) (string, error) {
	messages := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemPrompt),
		llms.TextParts(llms.ChatMessageTypeHuman, plannerInput),
	}

	start := time.Now()
	resp, err := o.llm.GenerateContent(ctx, messages, llms.WithTemperature(o.temperature))
	if err != nil {
		observability.ObserveExternal("openai", "compose", 0, time.Since(start))
		return "", err
	}
	observability.ObserveExternal("openai", "compose", 200, time.Since(start))

	if len(resp.Choices) == 0 {
		return "", errors.New("composer: empty response")
	}
	return resp.Choices[0].Content, nil
}
