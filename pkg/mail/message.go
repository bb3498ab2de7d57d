package mail

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Attachment is a file carried by an outgoing message.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Message is a single outgoing email. Messages are constructed per send and
// discarded after hand-off to the gateway.
type Message struct {
	To          string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

// EncodeRaw builds the RFC-2822-style message and returns it as URL-safe
// base64 without padding, the "raw" payload format the Gmail API expects.
func EncodeRaw(from string, msg Message) string {
	var plain string
	if len(msg.Attachments) == 0 {
		plain = encodeSimple(from, msg)
	} else {
		plain = encodeMultipart(from, msg)
	}
	return base64.RawURLEncoding.EncodeToString([]byte(plain))
}

func encodeSimple(from string, msg Message) string {
	parts := []string{
		`Content-Type: text/html; charset="UTF-8"`,
		"MIME-Version: 1.0",
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", msg.To),
		fmt.Sprintf("Subject: %s", msg.Subject),
		"",
		msg.HTMLBody,
	}
	return strings.Join(parts, "\n")
}

func encodeMultipart(from string, msg Message) string {
	boundary := "mixed_" + uuid.NewString()

	parts := []string{
		fmt.Sprintf(`Content-Type: multipart/mixed; boundary="%s"`, boundary),
		"MIME-Version: 1.0",
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", msg.To),
		fmt.Sprintf("Subject: %s", msg.Subject),
		"",
		"--" + boundary,
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		msg.HTMLBody,
	}

	for _, att := range msg.Attachments {
		contentType := att.ContentType
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		parts = append(parts,
			"",
			"--"+boundary,
			fmt.Sprintf("Content-Type: %s", contentType),
			fmt.Sprintf(`Content-Disposition: attachment; filename="%s"`, sanitizeFilename(att.Filename)),
			"Content-Transfer-Encoding: base64",
			"",
			wrapBase64(base64.StdEncoding.EncodeToString(att.Data)),
		)
	}

	parts = append(parts, "", "--"+boundary+"--")
	return strings.Join(parts, "\n")
}

// sanitizeFilename keeps the filename header parseable.
func sanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, `"`, "")
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\n", "")
	return name
}

// wrapBase64 folds encoded payloads to 76-character lines per MIME convention.
func wrapBase64(s string) string {
	const width = 76
	if len(s) <= width {
		return s
	}
	var b strings.Builder
	for len(s) > width {
		b.WriteString(s[:width])
		b.WriteString("\n")
		s = s[width:]
	}
	b.WriteString(s)
	return b.String()
}
