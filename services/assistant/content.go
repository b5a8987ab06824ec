package assistant

import "strings"

// Policy and service copy the assistant serves from its tools. Kept in code
// rather than the database: the studio edits these a few times a year.

var policies = map[string]string{
	"cancellation": "You may cancel up to 24 hours before your appointment. Cancellations with less notice may result in a fee. To cancel, I need your booking number.",
	"deposit":      "To secure an appointment, a non-refundable booking fee is required. This fee will be discounted off the cost of your treatment.",
	"sickness":     "If you or someone in your household has a contagious illness, please contact me as soon as possible to reschedule.",
	"lateness":     "Please arrive on time. If you are more than 10 minutes late, your appointment may be shortened or rescheduled, and the full fee may still apply.",
	"general":      "I can help with bookings, cancellations, and questions about our services and policies. What would you like to do?",
}

var services = map[string]string{
	"classic lashes": "Classic lashes are a 1:1 application, perfect for a natural, subtle enhancement. They add length and curl.",
	"hybrid lashes":  "Hybrid lashes are a mix of Classic and Volume lashes, offering a fuller look than classics but less dramatic than full volume. It's a great in-between!",
	"volume lashes":  "Volume lashes use handmade fans of multiple fine lashes applied to each natural lash, creating a dense, full, and dramatic look.",
	"infill":         "Infills are for maintaining your lash extensions. They should be booked every 2-3 weeks to keep your lashes looking full.",
	"lash removal":   "A professional removal service to safely and gently remove your eyelash extensions without damaging your natural lashes.",
}

// PolicyInfo returns the policy text for a topic.
func PolicyInfo(topic string) string {
	if text, ok := policies[strings.ToLower(strings.TrimSpace(topic))]; ok {
		return text
	}
	return "I don't have information on that specific policy. The main policies are about cancellations, deposits, sickness, and lateness."
}

// ServiceInfo returns the description of a named service.
func ServiceInfo(serviceName string) string {
	key := strings.ToLower(strings.TrimSpace(serviceName))
	if text, ok := services[key]; ok {
		return text
	}
	// Tolerate short names like "classic" or "removal".
	for name, text := range services {
		if strings.Contains(name, key) && key != "" {
			return text
		}
	}
	return "I don't recognize that service. Available services are: Classic, Hybrid, Volume, Infill, and Removal."
}

// RecommendService maps a free-text wish to a service tier.
func RecommendService(query string) string {
	q := strings.ToLower(query)
	switch {
	case strings.Contains(q, "natural") || strings.Contains(q, "subtle"):
		return "For a natural look, I'd recommend Classic Lashes. They enhance your natural lashes beautifully."
	case strings.Contains(q, "dramatic") || strings.Contains(q, "full"):
		return "If you want a full, dramatic look, Volume Lashes are the way to go!"
	default:
		return "For a look that's not too natural but not too dramatic, Hybrid Lashes are the perfect choice. Would you like to book one of these?"
	}
}
