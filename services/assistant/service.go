package assistant

import (
	"context"
	"fmt"

	"lashstudio/models"

	"go.uber.org/zap"
)

const fallbackReply = "I'm sorry, I'm having a little trouble right now. Please try again in a moment, or contact us directly. ✨"

// AssistantService turns a user utterance plus replayed history into a reply
// and, when a booking was created during the turn, a booking number.
type AssistantService interface {
	Converse(ctx context.Context, req models.ConverseRequest) (*models.ConverseResponse, error)
}

// DefaultAssistantService is a stateless orchestrator: the response is a pure
// function of (history, prompt). All dialogue state lives in the transcript
// the client replays on every turn.
type DefaultAssistantService struct {
	Model  ChatModel
	Logger *zap.Logger
}

func NewDefaultAssistantService(model ChatModel, logger *zap.Logger) *DefaultAssistantService {
	return &DefaultAssistantService{Model: model, Logger: logger}
}

// Converse runs one assistant turn. Model failures degrade to a friendly
// fallback reply; the caller always gets text back.
func (s *DefaultAssistantService) Converse(ctx context.Context, req models.ConverseRequest) (*models.ConverseResponse, error) {
	result, err := s.Model.Generate(ctx, GenerateRequest{
		History: req.History,
		Prompt:  req.Prompt,
	})
	if err != nil {
		s.Logger.Error("Assistant model call failed", zap.Error(err))
		return &models.ConverseResponse{Reply: fallbackReply}, nil
	}

	reply := result.Text
	var bookingNumber string
	for _, inv := range result.Invocations {
		switch inv.Name {
		case ToolCreateBooking:
			if n, ok := inv.Output["bookingNumber"].(string); ok && n != "" {
				bookingNumber = n
			}
		case ToolEnquiryRedirect:
			if link, ok := inv.Output["link"].(string); ok && link != "" {
				reply = fmt.Sprintf("No problem, please use this link to chat with us on WhatsApp about your booking: %s", link)
			}
		}
	}

	if reply == "" {
		reply = fallbackReply
	}

	return &models.ConverseResponse{
		Reply:         reply,
		BookingNumber: bookingNumber,
	}, nil
}
