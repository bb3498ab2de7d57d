// Package emailhtml holds the branded email shell and the pieces shared by
// the booking and brief email bodies.
package emailhtml

import (
	"fmt"
	"html"
)

// Escape performs five-entity HTML escaping (& < > " '). It is not
// idempotent: escaping twice double-encodes, so callers apply it exactly once
// per user-supplied value. Newlines are preserved; user text is rendered with
// white-space: pre-wrap.
func Escape(s string) string {
	return html.EscapeString(s)
}

// Layout wraps body content in the branded email shell.
func Layout(content string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"><meta name="viewport" content="width=device-width, initial-scale=1.0"></head>
<body style="margin: 0; padding: 0; background-color: #000000;">
  <table role="presentation" cellpadding="0" cellspacing="0" width="100%%" style="background-color: #000000;">
    <tr><td align="center" style="padding: 40px 20px;">
      <table role="presentation" cellpadding="0" cellspacing="0" width="600" style="background-color: #202124; border-radius: 16px; border: 1px solid #2d2d30;">
        <tr><td style="background: linear-gradient(135deg, #4285F4 0%%, #34A853 100%%); height: 4px;"></td></tr>
        <tr><td align="center" style="padding: 40px 20px 30px;">
          <span style="font-family: Arial, sans-serif; font-size: 28px; font-weight: 600;">
            <span style="color: #4285F4;">Automation</span> <span style="color: #34A853;">by</span> <span style="color: #FBBC04;">Meir</span>
          </span>
        </td></tr>
        <tr><td style="padding: 0 40px 40px;">%s</td></tr>
        <tr><td align="center" style="background-color: #2d2d30; padding: 30px 40px; border-top: 1px solid #424242; font-family: Arial, sans-serif; font-size: 14px; color: #5f6368;">
          <p style="margin: 0 0 10px 0;">Automation by Meir</p>
          <p style="margin: 0;">Transform Your Business with Intelligent Automation</p>
        </td></tr>
      </table>
    </td></tr>
  </table>
</body>
</html>`, content)
}

// Button renders the gradient call-to-action link, or nothing when href is
// empty.
func Button(href, label string) string {
	if href == "" {
		return ""
	}
	return fmt.Sprintf(`<p style="text-align: center; padding: 20px 0;">
  <a href="%s" style="display: inline-block; padding: 14px 36px; background: linear-gradient(135deg, #4285F4 0%%, #34A853 100%%); color: #ffffff; font-family: Arial, sans-serif; font-size: 16px; font-weight: 600; text-decoration: none; border-radius: 50px;">%s</a>
</p>`, Escape(href), label)
}

// TextBlock renders a heading plus a pre-wrap block of escaped user text.
func TextBlock(heading, text string) string {
	return fmt.Sprintf(`<div style="background-color: #2d2d30; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
  <h3 style="font-family: Arial, sans-serif; font-size: 16px; color: #4285F4; margin: 0 0 12px 0;">%s</h3>
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #cbd5e1; margin: 0; white-space: pre-wrap; line-height: 1.6;">%s</p>
</div>`, heading, Escape(text))
}
