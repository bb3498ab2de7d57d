package mail

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) string {
	t.Helper()
	decoded, err := base64.RawURLEncoding.DecodeString(raw)
	require.NoError(t, err)
	return string(decoded)
}

func TestEncodeRaw_SinglePart(t *testing.T) {
	raw := EncodeRaw("Automation by Meir <owner@example.com>", Message{
		To:       "dana@example.com",
		Subject:  "Hello",
		HTMLBody: "<p>Hi</p>",
	})

	// URL-safe, unpadded
	assert.NotContains(t, raw, "+")
	assert.NotContains(t, raw, "/")
	assert.NotContains(t, raw, "=")

	message := decode(t, raw)
	assert.Contains(t, message, `Content-Type: text/html; charset="UTF-8"`)
	assert.Contains(t, message, "MIME-Version: 1.0")
	assert.Contains(t, message, "From: Automation by Meir <owner@example.com>")
	assert.Contains(t, message, "To: dana@example.com")
	assert.Contains(t, message, "Subject: Hello")
	assert.Contains(t, message, "<p>Hi</p>")
	assert.NotContains(t, message, "multipart/mixed")
}

func TestEncodeRaw_WithAttachments(t *testing.T) {
	raw := EncodeRaw("Automation by Meir <owner@example.com>", Message{
		To:       "owner@example.com",
		Subject:  "Brief",
		HTMLBody: "<p>See attached</p>",
		Attachments: []Attachment{
			{Filename: "spec.pdf", ContentType: "application/pdf", Data: []byte("pdf-bytes")},
			{Filename: "logo.png", ContentType: "image/png", Data: []byte("png-bytes")},
		},
	})

	message := decode(t, raw)
	assert.Contains(t, message, "Content-Type: multipart/mixed; boundary=")

	// Extract the boundary and verify part structure
	_, after, found := strings.Cut(message, `boundary="`)
	require.True(t, found)
	boundary, _, found := strings.Cut(after, `"`)
	require.True(t, found)

	assert.Equal(t, 3, strings.Count(message, "--"+boundary+"\n"), "html part plus two attachments")
	assert.True(t, strings.HasSuffix(strings.TrimRight(message, "\n"), "--"+boundary+"--"))

	assert.Contains(t, message, `Content-Disposition: attachment; filename="spec.pdf"`)
	assert.Contains(t, message, `Content-Disposition: attachment; filename="logo.png"`)
	assert.Contains(t, message, "Content-Transfer-Encoding: base64")
	assert.Contains(t, message, base64.StdEncoding.EncodeToString([]byte("pdf-bytes")))
	assert.Contains(t, message, base64.StdEncoding.EncodeToString([]byte("png-bytes")))

	// HTML body comes first
	htmlIndex := strings.Index(message, "<p>See attached</p>")
	attachmentIndex := strings.Index(message, "spec.pdf")
	assert.Less(t, htmlIndex, attachmentIndex)
}

func TestEncodeRaw_DefaultsAttachmentContentType(t *testing.T) {
	raw := EncodeRaw("Sender <s@example.com>", Message{
		To:          "r@example.com",
		Subject:     "x",
		HTMLBody:    "<p>x</p>",
		Attachments: []Attachment{{Filename: "blob.bin", Data: []byte{1, 2, 3}}},
	})

	assert.Contains(t, decode(t, raw), "Content-Type: application/octet-stream")
}

func TestEncodeRaw_SanitizesFilename(t *testing.T) {
	raw := EncodeRaw("Sender <s@example.com>", Message{
		To:          "r@example.com",
		Subject:     "x",
		HTMLBody:    "<p>x</p>",
		Attachments: []Attachment{{Filename: "evil\"\r\nname.txt", ContentType: "text/plain", Data: []byte("x")}},
	})

	message := decode(t, raw)
	assert.Contains(t, message, `filename="evilname.txt"`)
}

func TestWrapBase64(t *testing.T) {
	long := strings.Repeat("A", 200)

	wrapped := wrapBase64(long)

	for _, line := range strings.Split(wrapped, "\n") {
		assert.LessOrEqual(t, len(line), 76)
	}
	assert.Equal(t, long, strings.ReplaceAll(wrapped, "\n", ""))
	assert.Equal(t, "short", wrapBase64("short"))
}
