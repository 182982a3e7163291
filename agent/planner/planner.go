// Package planner implements the contract.Planner on the OpenAI
// chat-completions protocol with function tools.
package planner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	openaisdk "github.com/openai/openai-go"

	"ristora/agent/contract"
)

type Config struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int
}

// OpenAIPlanner asks the model for either tool calls or a final answer. It
// keeps no state between calls; the whole turn travels in PlannerRequest.
type OpenAIPlanner struct {
	client *openaisdk.Client
	cfg    Config
}

func New(client *openaisdk.Client, cfg Config) (*OpenAIPlanner, error) {
	if client == nil {
		return nil, errors.New("openai client is required")
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, errors.New("model is required")
	}
	return &OpenAIPlanner{client: client, cfg: cfg}, nil
}

func (p *OpenAIPlanner) Plan(ctx context.Context, req contract.PlannerRequest) (contract.PlannerDecision, error) {
	params := openaisdk.ChatCompletionNewParams{
		Model:    openaisdk.ChatModel(p.cfg.Model),
		Messages: buildMessages(req),
		Tools:    buildTools(req.Tools),
	}
	if p.cfg.Temperature > 0 {
		params.Temperature = openaisdk.Float(p.cfg.Temperature)
	}
	if p.cfg.MaxCompletionTokens > 0 {
		params.MaxCompletionTokens = openaisdk.Int(int64(p.cfg.MaxCompletionTokens))
	}

	resp, err := p.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return contract.PlannerDecision{}, fmt.Errorf("%w: %v", contract.ErrModelInvoke, err)
	}
	if len(resp.Choices) == 0 {
		return contract.PlannerDecision{}, fmt.Errorf("%w: empty choices", contract.ErrModelInvoke)
	}

	return decodeChoice(resp.Choices[0])
}

func buildMessages(req contract.PlannerRequest) []openaisdk.ChatCompletionMessageParamUnion {
	messages := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(req.Messages)+2*len(req.Steps))

	for _, m := range req.Messages {
		switch m.Role {
		case contract.RoleSystem:
			messages = append(messages, openaisdk.SystemMessage(m.Content))
		case contract.RoleAI:
			messages = append(messages, openaisdk.AssistantMessage(m.Content))
		default:
			messages = append(messages, openaisdk.UserMessage(m.Content))
		}
	}

	// Replay this turn's tool exchanges as plain text so the model sees its
	// own prior calls and their observations.
	for _, step := range req.Steps {
		if step.Call.Request.Tool == "" {
			messages = append(messages, openaisdk.UserMessage(step.Result))
			continue
		}
		argsJSON, err := json.Marshal(step.Call.Request.Args)
		if err != nil {
			argsJSON = []byte("{}")
		}
		messages = append(messages, openaisdk.AssistantMessage(
			fmt.Sprintf("Calling tool %s with arguments %s", step.Call.Request.Tool, argsJSON),
		))
		messages = append(messages, openaisdk.UserMessage(
			fmt.Sprintf("Observation from %s:\n%s", step.Call.Request.Tool, step.Result),
		))
	}

	return messages
}

func buildTools(specs []contract.ToolSpec) []openaisdk.ChatCompletionToolParam {
	tools := make([]openaisdk.ChatCompletionToolParam, 0, len(specs))
	for _, spec := range specs {
		properties := make(map[string]any, len(spec.Params))
		required := make([]string, 0, len(spec.Params))
		for _, p := range spec.Params {
			properties[p.Name] = map[string]any{
				"type":        p.Type,
				"description": p.Description,
			}
			if p.Required {
				required = append(required, p.Name)
			}
		}

		tools = append(tools, openaisdk.ChatCompletionToolParam{
			Function: openaisdk.FunctionDefinitionParam{
				Name:        spec.Name,
				Description: openaisdk.String(spec.Description),
				Parameters: openaisdk.FunctionParameters{
					"type":       "object",
					"properties": properties,
					"required":   required,
				},
			},
		})
	}
	return tools
}

func decodeChoice(choice openaisdk.ChatCompletionChoice) (contract.PlannerDecision, error) {
	msg := choice.Message

	if len(msg.ToolCalls) > 0 {
		calls := make([]contract.ToolCall, 0, len(msg.ToolCalls))
		for _, tc := range msg.ToolCalls {
			args, err := decodeArguments(tc.Function.Arguments)
			if err != nil {
				return contract.PlannerDecision{}, fmt.Errorf(
					"%w: tool=%s: %v", contract.ErrMalformedToolCall, tc.Function.Name, err,
				)
			}
			calls = append(calls, contract.ToolCall{
				ID: tc.ID,
				Request: contract.ToolRequest{
					Tool: tc.Function.Name,
					Args: args,
				},
			})
		}
		return contract.PlannerDecision{ToolCalls: calls}, nil
	}

	answer := strings.TrimSpace(msg.Content)
	if answer == "" {
		return contract.PlannerDecision{}, fmt.Errorf("%w: no tool calls and no answer", contract.ErrMalformedToolCall)
	}
	return contract.PlannerDecision{FinalAnswer: answer}, nil
}

// decodeArguments accepts the argument payload as JSON text. Values are
// carried as strings on our side of the boundary; scalars the model sends
// as numbers or booleans are converted.
func decodeArguments(raw string) (map[string]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return map[string]string{}, nil
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(trimmed), &decoded); err != nil {
		return nil, fmt.Errorf("decode arguments: %w", err)
	}

	args := make(map[string]string, len(decoded))
	for key, val := range decoded {
		args[key] = stringifyArg(val)
	}
	return args, nil
}

func stringifyArg(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}
