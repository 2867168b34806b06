package notify

import (
	"fmt"
	"strings"
)

type Message struct {
	Subject string
	Body    string
}

// Templates renders the studio's transactional emails.
type Templates struct {
	StudioName   string
	ContactEmail string
}

func (t Templates) signature() string {
	return fmt.Sprintf("Best regards,\n%s Team\n%s\n", t.StudioName, t.ContactEmail)
}

func (t Templates) VerificationInstructions(name string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	fmt.Fprintf(&b, "Thank you for booking with %s!\n\n", t.StudioName)
	b.WriteString("As a first-time client, we require ID verification for studio security. ")
	b.WriteString("This is a one-time process that takes just a few minutes.\n\n")
	b.WriteString("VERIFICATION INSTRUCTIONS:\n")
	b.WriteString("1. Reply to this email with a clear photo of your government-issued ID (driver's license, passport, or state ID)\n")
	b.WriteString("2. Include a selfie of yourself holding your ID next to your face\n")
	b.WriteString("3. We'll review and approve your verification within 24 hours\n\n")
	b.WriteString("Once verified, you won't need to complete this process again for future bookings.\n\n")
	b.WriteString("Questions? Reply to this email or call us.\n\n")
	b.WriteString(t.signature())

	return Message{
		Subject: t.StudioName + " - ID Verification Required",
		Body:    b.String(),
	}
}

func (t Templates) VerificationComplete(name string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("Great news! Your ID verification has been approved.\n\n")
	b.WriteString("Your booking requests are now being processed and we'll contact you within 24 hours to confirm your sessions.\n\n")
	fmt.Fprintf(&b, "Thank you for choosing %s!\n\n", t.StudioName)
	b.WriteString(t.signature())

	return Message{
		Subject: t.StudioName + " - Verification Complete",
		Body:    b.String(),
	}
}

// BookingReceived acknowledges a booking request. Unverified clients are
// told that verification comes first.
func (t Templates) BookingReceived(name, serviceType, date, start, end string, needsVerification bool) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", name)
	b.WriteString("We received your booking request:\n\n")
	if serviceType != "" {
		fmt.Fprintf(&b, "Service: %s\n", serviceType)
	}
	fmt.Fprintf(&b, "Date: %s\n", date)
	fmt.Fprintf(&b, "Time: %s - %s\n\n", start, end)
	if needsVerification {
		b.WriteString("Before we can confirm it, we need to verify your ID. Watch for a separate email with instructions.\n\n")
	} else {
		b.WriteString("We'll contact you within 24 hours to confirm your session.\n\n")
	}
	b.WriteString(t.signature())

	return Message{
		Subject: t.StudioName + " - Booking Request Received",
		Body:    b.String(),
	}
}

func (t Templates) ContactSubmission(name, email, message string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "New contact form submission from %s website:\n\n", t.StudioName)
	fmt.Fprintf(&b, "Name: %s\n", name)
	fmt.Fprintf(&b, "Email: %s\n\n", email)
	fmt.Fprintf(&b, "Message:\n%s\n\n", message)
	fmt.Fprintf(&b, "---\nThis message was sent from the %s contact form.\n", t.StudioName)

	return Message{
		Subject: "New Contact Form Submission from " + name,
		Body:    b.String(),
	}
}
