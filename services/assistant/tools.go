package assistant

import (
	"context"
	"fmt"
	"net/url"

	"lashstudio/models"
	"lashstudio/services/booking"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// ToolName identifies one of the closed set of tools the model may call.
type ToolName string

const (
	ToolPolicyInfo      ToolName = "getPolicyInfo"
	ToolServiceInfo     ToolName = "getServiceInfo"
	ToolCreateBooking   ToolName = "createBooking"
	ToolBookingDetails  ToolName = "getBookingDetails"
	ToolCancelBooking   ToolName = "cancelBooking"
	ToolEnquiryRedirect ToolName = "createEnquiryRedirect"
)

// ToolInvocation records one executed tool call within a model turn.
type ToolInvocation struct {
	Name   ToolName
	Output map[string]any
}

// ToolDispatcher executes tool calls against the booking service. Tool
// failures are folded into apologetic output fields rather than returned as
// errors; the model weaves them into its reply.
type ToolDispatcher struct {
	Bookings booking.BookingService
	// Contact is the WhatsApp number embedded in enquiry redirect links.
	Contact string
	Logger  *zap.Logger
}

// Declarations returns the function schemas advertised to the model.
func (d *ToolDispatcher) Declarations() []*genai.Tool {
	return []*genai.Tool{{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        string(ToolPolicyInfo),
				Description: "Retrieves information about business policies like cancellation, deposits, or lateness.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"topic": {Type: genai.TypeString, Description: `The policy topic, e.g., "cancellation", "deposit", "sickness", "lateness"`},
					},
					Required: []string{"topic"},
				},
			},
			{
				Name:        string(ToolServiceInfo),
				Description: `Provides information about available lash services, like "Classic", "Hybrid", or "Volume" lashes, or recommendations.`,
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"serviceName":         {Type: genai.TypeString, Description: "The specific service to get info about."},
						"recommendationQuery": {Type: genai.TypeString, Description: `A user query asking for a service recommendation, e.g., "I want a natural look".`},
					},
				},
			},
			{
				Name:        string(ToolCreateBooking),
				Description: "Use this tool to finalize and create a new booking appointment when you have all the required information.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"name":     {Type: genai.TypeString, Description: "The customer's full name."},
						"email":    {Type: genai.TypeString, Description: "The customer's email address."},
						"phone":    {Type: genai.TypeString, Description: "The customer's phone number."},
						"postcode": {Type: genai.TypeString, Description: "The customer's postcode."},
						"service":  {Type: genai.TypeString, Description: "The requested service."},
						"date":     {Type: genai.TypeString, Description: "The desired date for the appointment, formatted as a string like 'Dec 25, 2025'."},
						"notes":    {Type: genai.TypeString, Description: "Optional notes from the customer."},
					},
					Required: []string{"name", "email", "phone", "postcode", "service", "date"},
				},
			},
			{
				Name:        string(ToolBookingDetails),
				Description: "Retrieves the details of an existing booking using the booking number.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"bookingNumber": {Type: genai.TypeString},
					},
					Required: []string{"bookingNumber"},
				},
			},
			{
				Name:        string(ToolCancelBooking),
				Description: "Cancels a booking using the booking number.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"bookingNumber": {Type: genai.TypeString},
					},
					Required: []string{"bookingNumber"},
				},
			},
			{
				Name:        string(ToolEnquiryRedirect),
				Description: "Creates a WhatsApp redirect link for a user to make an enquiry about a specific booking.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"bookingNumber": {Type: genai.TypeString},
					},
					Required: []string{"bookingNumber"},
				},
			},
		},
	}}
}

// Dispatch runs a single tool call and returns its structured output.
func (d *ToolDispatcher) Dispatch(ctx context.Context, name ToolName, args map[string]any) map[string]any {
	switch name {
	case ToolPolicyInfo:
		return map[string]any{"info": PolicyInfo(argString(args, "topic"))}

	case ToolServiceInfo:
		return d.serviceInfo(args)

	case ToolCreateBooking:
		return d.createBooking(ctx, args)

	case ToolBookingDetails:
		return d.bookingDetails(ctx, argString(args, "bookingNumber"))

	case ToolCancelBooking:
		return d.cancelBooking(ctx, argString(args, "bookingNumber"))

	case ToolEnquiryRedirect:
		return d.enquiryRedirect(ctx, argString(args, "bookingNumber"))

	default:
		d.Logger.Warn("Model requested unknown tool", zap.String("tool", string(name)))
		return map[string]any{"error": "unknown tool"}
	}
}

func (d *ToolDispatcher) serviceInfo(args map[string]any) map[string]any {
	if name := argString(args, "serviceName"); name != "" {
		return map[string]any{"info": ServiceInfo(name)}
	}
	if query := argString(args, "recommendationQuery"); query != "" {
		return map[string]any{"info": RecommendService(query)}
	}
	return map[string]any{"info": "We offer Classic, Hybrid, and Volume lashes, as well as Infills and Removals. Which service are you interested in?"}
}

func (d *ToolDispatcher) createBooking(ctx context.Context, args map[string]any) map[string]any {
	req := models.BookingRequest{
		Name:     argString(args, "name"),
		Email:    argString(args, "email"),
		Phone:    argString(args, "phone"),
		Postcode: argString(args, "postcode"),
		Service:  argString(args, "service"),
		Date:     argString(args, "date"),
		Notes:    argString(args, "notes"),
	}
	resp, err := d.Bookings.CreateBooking(ctx, req)
	if err != nil {
		d.Logger.Warn("Assistant booking creation failed", zap.Error(err))
		return map[string]any{"error": "I couldn't complete the booking. Please double-check the details and try again."}
	}
	return map[string]any{"bookingNumber": resp.BookingNumber}
}

func (d *ToolDispatcher) bookingDetails(ctx context.Context, number string) map[string]any {
	b, err := d.Bookings.GetBookingDetails(ctx, number)
	if err != nil {
		d.Logger.Warn("Assistant booking lookup failed", zap.Error(err))
		return map[string]any{
			"details":       "I'm having trouble looking that booking up right now. Please try again in a moment.",
			"isCancellable": false,
		}
	}
	if b == nil {
		return map[string]any{
			"details":       fmt.Sprintf("I couldn't find a booking with the number %s. Please check the number and try again.", number),
			"isCancellable": false,
		}
	}
	return map[string]any{
		"details":       fmt.Sprintf("Booking #%s for %s on %s.", b.BookingNumber, b.Service, b.Date),
		"isCancellable": b.Status != models.StatusCancelled,
	}
}

func (d *ToolDispatcher) cancelBooking(ctx context.Context, number string) map[string]any {
	if err := d.Bookings.CancelBooking(ctx, number); err != nil {
		return map[string]any{
			"result": fmt.Sprintf("There was an error cancelling booking #%s. The booking may not exist or has already been cancelled.", number),
		}
	}
	return map[string]any{
		"result": fmt.Sprintf("Your booking #%s has been successfully cancelled. A confirmation email has been sent.", number),
	}
}

func (d *ToolDispatcher) enquiryRedirect(ctx context.Context, number string) map[string]any {
	b, err := d.Bookings.GetBookingDetails(ctx, number)
	if err != nil || b == nil {
		return map[string]any{
			"error": fmt.Sprintf("I couldn't find a booking with the number %s. Please check the number and try again.", number),
		}
	}
	if d.Contact == "" {
		return map[string]any{"error": "I'm sorry, I can't create a WhatsApp link right now. Please contact us directly."}
	}
	message := fmt.Sprintf("Hi, my name is %s, these are my booking details: Booking #%s for %s on %s.",
		b.Name, b.BookingNumber, b.Service, b.Date)
	link := fmt.Sprintf("https://wa.me/%s?text=%s", d.Contact, url.QueryEscape(message))
	return map[string]any{"link": link}
}

func argString(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}
