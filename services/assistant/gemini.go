package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lashstudio/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const (
	// maxToolRounds caps the tool-call loop inside a single user turn.
	maxToolRounds = 5
	// generateTimeout bounds a full model turn including tool rounds.
	generateTimeout = 30 * time.Second
)

// GenerateRequest carries the client-replayed history and the new utterance.
type GenerateRequest struct {
	History []models.Message
	Prompt  string
}

// GenerateResult is the model's reply plus every tool call it performed
// while producing it.
type GenerateResult struct {
	Text        string
	Invocations []ToolInvocation
}

// ChatModel abstracts the hosted language model so the orchestrator can be
// tested without network access.
type ChatModel interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

// GeminiModel drives Gemini with function calling enabled.
type GeminiModel struct {
	model *genai.GenerativeModel
	tools *ToolDispatcher
}

func NewGeminiModel(apiKey, systemPrompt string, tools *ToolDispatcher) (*GeminiModel, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-2.0-flash")
	// High temperature: phrasing is meant to vary between turns.
	model.SetTemperature(0.9)
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemPrompt)}}
	model.Tools = tools.Declarations()

	return &GeminiModel{model: model, tools: tools}, nil
}

// Generate sends the user turn to Gemini, executing any tool calls the model
// requests until it produces a plain-text reply or the round cap is hit.
func (g *GeminiModel) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	cs := g.model.StartChat()
	cs.History = toGenaiHistory(req.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Prompt))
	if err != nil {
		return nil, fmt.Errorf("gemini generate error: %w", err)
	}

	var invocations []ToolInvocation
	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		var parts []genai.Part
		for _, call := range calls {
			out := g.tools.Dispatch(ctx, ToolName(call.Name), call.Args)
			invocations = append(invocations, ToolInvocation{Name: ToolName(call.Name), Output: out})
			parts = append(parts, genai.FunctionResponse{Name: call.Name, Response: out})
		}

		resp, err = cs.SendMessage(ctx, parts...)
		if err != nil {
			return nil, fmt.Errorf("gemini tool round error: %w", err)
		}
	}

	return &GenerateResult{
		Text:        responseText(resp),
		Invocations: invocations,
	}, nil
}

func toGenaiHistory(history []models.Message) []*genai.Content {
	var contents []*genai.Content
	for _, msg := range history {
		// Only user and model turns are replayed; anything else the client
		// sends is dropped.
		if msg.Role != models.RoleUser && msg.Role != models.RoleModel {
			continue
		}
		contents = append(contents, &genai.Content{
			Role:  msg.Role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return calls
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			calls = append(calls, call)
		}
	}
	return calls
}

func responseText(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
