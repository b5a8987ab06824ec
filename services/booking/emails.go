package booking

import (
	"fmt"

	"lashstudio/models"
)

// confirmationEmail builds the customer-facing confirmation message.
func (s *DefaultBookingService) confirmationEmail(b models.Booking) (subject, body string) {
	subject = "Your Appointment is Confirmed ✨"
	body = fmt.Sprintf(`<div style="font-family: 'Helvetica', Arial, sans-serif; background:#39040C; padding:25px; color:#FCEFEF;">
  <h2 style="text-align:center; margin-bottom:10px; color:#FCEFEF;">Your Appointment is Confirmed ✨</h2>
  <p>Hi <strong>%s</strong>,</p>
  <p>Thank you for booking with <strong>%s</strong>.<br>Your appointment has been successfully scheduled.</p>
  <p><strong>Appointment Details:</strong><br>
    • Booking Number: <strong>%s</strong><br>
    • Service: <strong>%s</strong><br>
    • Date: <strong>%s</strong><br>
    • Location: <strong>%s</strong>
  </p>
  <p>Please arrive a few minutes early so we can get you comfortably settled before we start.
    If you need to make any changes, just reply to this email or contact us on <strong>%s</strong>.</p>
  <p style="margin-top:20px;">We can’t wait to see you and make you feel even more beautiful. 💛</p>
  <p>Warm regards,<br><strong>%s</strong></p>
  <div style="text-align:center; margin-top:25px; font-size:13px; opacity:0.9;">
    Follow us:<br>Instagram: %s<br>TikTok: %s
  </div>
</div>`,
		b.Name, s.Business.Name, b.BookingNumber, b.Service, b.Date,
		s.Business.Address, s.Business.Contact, s.Business.Name,
		s.Business.InstagramHandle, s.Business.TikTokHandle)
	return subject, body
}

// adminNewBookingEmail builds the internal copy sent to the business owner.
func (s *DefaultBookingService) adminNewBookingEmail(b models.Booking) (subject, body string) {
	subject = fmt.Sprintf("New Booking Request: %s - %s", b.Name, b.Service)
	notes := ""
	if b.Notes != "" {
		notes = fmt.Sprintf("<p><strong>Notes:</strong> %s</p>", b.Notes)
	}
	body = fmt.Sprintf(`<h2>New Booking Request</h2>
<p><strong>Booking Number:</strong> %s</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Postcode:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Date:</strong> %s</p>
%s`,
		b.BookingNumber, b.Name, b.Email, b.Phone, b.Postcode, b.Service, b.Date, notes)
	return subject, body
}

// cancellationEmail builds the customer-facing cancellation notice.
func (s *DefaultBookingService) cancellationEmail(b models.Booking) (subject, body string) {
	subject = "Appointment Cancelled"
	body = fmt.Sprintf(`<div style="background-color:#39040C; font-family:Arial, sans-serif; padding:20px; color:#FFFFFF;">
  <h2 style="text-align:center;">Appointment Cancelled</h2>
  <p>Hi <strong>%s</strong>,<br><br>
    We’re sorry to let you know that your appointment scheduled for
    <strong>%s</strong> has been <span style="color:#D4AF37;"><strong>cancelled</strong></span>.<br><br>
    If this wasn’t intentional or you’d like to rebook, please feel free to reply to this email
    or book again through our website.</p>
  <p style="text-align:center;">
    <a href="%s#booking" style="background-color:#D4AF37; color:#39040C; text-decoration:none; padding:12px 24px; border-radius:6px; font-weight:bold; display:inline-block;">Book a New Appointment</a>
  </p>
  <p style="font-size:13px; text-align:center; opacity:0.8;">Thank you for your understanding.<br><strong>%s</strong></p>
</div>`,
		b.Name, b.Date, s.Business.SiteURL, s.Business.Name)
	return subject, body
}

// adminCancellationEmail builds the internal cancellation notification.
func (s *DefaultBookingService) adminCancellationEmail(b models.Booking) (subject, body string) {
	subject = fmt.Sprintf("Booking Cancellation: #%s", b.BookingNumber)
	body = fmt.Sprintf(`<h2>Booking Cancellation Notification</h2>
<p>The following booking has been cancelled by the customer:</p>
<p><strong>Booking Number:</strong> %s</p>
<p><strong>Name:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Service:</strong> %s</p>
<p><strong>Original Date:</strong> %s</p>`,
		b.BookingNumber, b.Name, b.Email, b.Service, b.Date)
	return subject, body
}
