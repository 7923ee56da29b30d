package messaging

import (
	"net/url"
	"strings"
)

const waBaseURL = "https://wa.me/"

// WhatsAppLink builds the wa.me deep link carrying the order message for
// the given phone number (international format, digits only). The message
// is URL-encoded; the link is a one-way handoff, nothing comes back.
func WhatsAppLink(phone, text string) string {
	digits := strings.TrimLeft(strings.TrimSpace(phone), "+")
	return waBaseURL + digits + "?text=" + url.QueryEscape(text)
}
