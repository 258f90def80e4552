// Package msglink builds deep links the UI hands to a messaging or email
// client. The links carry invoice details verbatim; no message is sent from
// the backend.
package msglink

import (
	"net/url"
	"strings"
)

// WhatsApp returns a wa.me link that opens a chat with the given phone number
// and a prefilled message. Non-digit characters are stripped from the number.
func WhatsApp(phone, message string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(message)
}

// Mailto returns a mailto: link with subject and body prefilled.
func Mailto(email, subject, body string) string {
	q := url.Values{}
	q.Set("subject", subject)
	q.Set("body", body)
	// url.Values encodes spaces as '+', which mail clients do not decode.
	return "mailto:" + email + "?" + strings.ReplaceAll(q.Encode(), "+", "%20")
}
