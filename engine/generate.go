package engine

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/crewsearch/crewsearch/entity"
	"github.com/crewsearch/crewsearch/errors"
	"github.com/crewsearch/crewsearch/tool"
	goopenai "github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"
)

type (
	GenerateRequest struct {
		System string
		Prompt string
		Model  string
		Tools  []tool.Tool

		// ToolChoice forces one tool invocation with pinned arguments before
		// the model produces its answer.
		ToolChoice *entity.ToolChoice

		MaxTurns int
	}

	ToolCallRecord struct {
		Name      string `json:"name"`
		Arguments string `json:"arguments"`
		Result    string `json:"result"`
	}

	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
		TotalTokens  int `json:"total_tokens"`
	}

	GenerateResponse struct {
		Text      string           `json:"text"`
		ToolCalls []ToolCallRecord `json:"tool_calls,omitempty"`
		Usage     Usage            `json:"usage"`
	}
)

// Generate runs one task turn loop: send the prompt with the available tool
// definitions, execute any tool calls the model returns, feed the results
// back, and repeat until the model answers with text or MaxTurns is hit.
func (e *Engine) Generate(ctx context.Context, req *GenerateRequest) (*GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = e.config.ModelName
	}

	messages := []goopenai.ChatCompletionMessageParamUnion{}
	if req.System != "" {
		messages = append(messages, goopenai.SystemMessage(req.System))
	}
	messages = append(messages, goopenai.UserMessage(req.Prompt))

	res := &GenerateResponse{}

	if req.ToolChoice != nil {
		forced, err := e.runForcedToolCall(ctx, req.ToolChoice)
		if err != nil {
			return nil, err
		}
		res.ToolCalls = append(res.ToolCalls, *forced)
		messages = append(messages, forcedToolCallMessages(forced)...)
	}

	params := goopenai.ChatCompletionNewParams{
		Model:    goopenai.String(model),
		Messages: goopenai.F(messages),
	}
	if e.config.Temperature != 0 {
		params.Temperature = goopenai.Float(e.config.Temperature)
	}
	if len(req.Tools) > 0 {
		toolParams, err := convertTools(req.Tools)
		if err != nil {
			return nil, err
		}
		params.Tools = goopenai.F(toolParams)
	}

	maxTurns := req.MaxTurns
	if maxTurns <= 0 {
		maxTurns = e.config.MaxTurns
	}

	for turn := 0; ; turn++ {
		if turn >= maxTurns {
			return nil, errors.Errorf("exceeded %d turns without a final answer", maxTurns)
		}

		completion, err := e.client.Complete(ctx, params)
		if err != nil {
			return nil, errors.Wrapf(err, "chat completion failed")
		}
		if len(completion.Choices) == 0 {
			return nil, errors.New("chat completion returned no choices")
		}

		res.Usage.InputTokens += int(completion.Usage.PromptTokens)
		res.Usage.OutputTokens += int(completion.Usage.CompletionTokens)
		res.Usage.TotalTokens += int(completion.Usage.TotalTokens)

		message := completion.Choices[0].Message
		if len(message.ToolCalls) == 0 {
			res.Text = message.Content
			return res, nil
		}

		params.Messages.Value = append(params.Messages.Value, message)
		for _, toolCall := range message.ToolCalls {
			record, err := e.runToolCall(ctx, toolCall.Function.Name, json.RawMessage(toolCall.Function.Arguments))
			if err != nil {
				return nil, err
			}
			res.ToolCalls = append(res.ToolCalls, *record)
			params.Messages.Value = append(params.Messages.Value, goopenai.ToolMessage(toolCall.ID, record.Result))
		}
	}
}

func (e *Engine) runToolCall(ctx context.Context, name string, args json.RawMessage) (*ToolCallRecord, error) {
	t, err := e.toolManager.GetTool(name)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("tool call", "name", name, "arguments", string(args))

	result, err := t.Call(ctx, args)
	if err != nil {
		return nil, err
	}

	return &ToolCallRecord{
		Name:      name,
		Arguments: string(args),
		Result:    result,
	}, nil
}

func (e *Engine) runForcedToolCall(ctx context.Context, choice *entity.ToolChoice) (*ToolCallRecord, error) {
	args, err := json.Marshal(choice.Arguments)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal pinned arguments for tool %s", choice.Name)
	}
	return e.runToolCall(ctx, choice.Name, args)
}

// forcedToolCallMessages replays a pre-executed tool call as a regular
// assistant/tool message pair, so the model sees it the way it would see its
// own call.
func forcedToolCallMessages(record *ToolCallRecord) []goopenai.ChatCompletionMessageParamUnion {
	callID := fmt.Sprintf("call_%s", record.Name)
	assistant := goopenai.ChatCompletionAssistantMessageParam{
		Role: goopenai.F(goopenai.ChatCompletionAssistantMessageParamRoleAssistant),
		ToolCalls: goopenai.F([]goopenai.ChatCompletionMessageToolCallParam{
			{
				ID:   goopenai.F(callID),
				Type: goopenai.F(goopenai.ChatCompletionMessageToolCallTypeFunction),
				Function: goopenai.F(goopenai.ChatCompletionMessageToolCallFunctionParam{
					Name:      goopenai.F(record.Name),
					Arguments: goopenai.F(record.Arguments),
				}),
			},
		}),
	}

	return []goopenai.ChatCompletionMessageParamUnion{
		assistant,
		goopenai.ToolMessage(callID, record.Result),
	}
}

func convertTools(tools []tool.Tool) ([]goopenai.ChatCompletionToolParam, error) {
	toolParams := make([]goopenai.ChatCompletionToolParam, 0, len(tools))
	for _, t := range tools {
		parameters, err := schemaToMap(t)
		if err != nil {
			return nil, err
		}
		toolParams = append(toolParams, goopenai.ChatCompletionToolParam{
			Type: goopenai.F(goopenai.ChatCompletionToolTypeFunction),
			Function: goopenai.F(shared.FunctionDefinitionParam{
				Name:        goopenai.F(t.Name()),
				Description: goopenai.F(t.Description()),
				Parameters:  goopenai.F(goopenai.FunctionParameters(parameters)),
			}),
		})
	}
	return toolParams, nil
}

func schemaToMap(t tool.Tool) (map[string]any, error) {
	data, err := json.Marshal(t.InputSchema())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal input schema for tool %s", t.Name())
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrapf(err, "failed to decode input schema for tool %s", t.Name())
	}
	return m, nil
}
