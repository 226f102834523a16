package agent

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"github.com/rs/zerolog"

	"github.com/Knuckles-Team/arr-mcp/config"
	"github.com/Knuckles-Team/arr-mcp/internal"
)

const defaultSystemPrompt = `You are a media management assistant. You have tools for
managing movies, TV series, music, books, indexers, subtitles, and media requests.
Use the search_tools and list_services tools to discover what is available before
guessing at endpoints. Prefer lookup tools before adding media so identifiers are
correct. Keep answers short and factual; include titles and years when reporting
media. If a tool call fails, report the error instead of retrying blindly.`

// Agent drives a tool-calling chat loop against an OpenAI-compatible model.
type Agent struct {
	client     openai.Client
	cfg        config.AgentConfig
	dispatcher *Dispatcher
	tools      []openai.ChatCompletionToolUnionParam
	system     string
	log        zerolog.Logger
}

func New(cfg config.AgentConfig, d *Dispatcher) *Agent {
	var opts []option.RequestOption
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	if cfg.APIKey != "" {
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	}

	system := cfg.SystemPrompt
	if system == "" {
		system = defaultSystemPrompt
	}

	return &Agent{
		client:     openai.NewClient(opts...),
		cfg:        cfg,
		dispatcher: d,
		tools:      d.Definitions(),
		system:     system,
		log:        internal.Component("agent"),
	}
}

// Run appends the user message to the conversation and iterates model turns,
// executing any tool calls, until the model produces a plain reply or the
// iteration cap is hit. It returns the reply and the updated history.
func (a *Agent) Run(ctx context.Context, history []openai.ChatCompletionMessageParamUnion, message string) (string, []openai.ChatCompletionMessageParamUnion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(history)+2)
	messages = append(messages, openai.SystemMessage(a.system))
	messages = append(messages, history...)
	messages = append(messages, openai.UserMessage(message))

	for i := 0; i < a.cfg.MaxIterations; i++ {
		resp, err := a.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
			Model:       openai.ChatModel(a.cfg.Model),
			Messages:    messages,
			Tools:       a.tools,
			MaxTokens:   openai.Int(a.cfg.MaxTokens),
			Temperature: openai.Float(a.cfg.Temperature),
			TopP:        openai.Float(a.cfg.TopP),
		})
		if err != nil {
			return "", history, fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", history, fmt.Errorf("chat completion returned no choices")
		}

		msg := resp.Choices[0].Message
		messages = append(messages, msg.ToParam())

		if len(msg.ToolCalls) == 0 {
			// Strip the leading system message before persisting.
			return msg.Content, messages[1:], nil
		}

		for _, tc := range msg.ToolCalls {
			a.log.Debug().
				Str("tool", tc.Function.Name).
				Str("call_id", tc.ID).
				Msg("executing tool call")
			toolCallsTotal.WithLabelValues(tc.Function.Name).Inc()

			out, err := a.dispatcher.Call(ctx, tc.Function.Name, tc.Function.Arguments)
			if err != nil {
				toolErrorsTotal.WithLabelValues(tc.Function.Name).Inc()
				out = fmt.Sprintf("tool error: %v", err)
			}
			out = truncateResult(out, a.cfg.MaxToolResultKB)
			messages = append(messages, openai.ToolMessage(out, tc.ID))
		}
	}

	return "", messages[1:], fmt.Errorf("no final answer after %d iterations", a.cfg.MaxIterations)
}
