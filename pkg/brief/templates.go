package brief

import (
	"fmt"
	"strings"

	"github.com/meirhorwitz/site-api/internal/emailhtml"
)

func confirmationContent(name, briefText string) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h1 style="font-family: Arial, sans-serif; font-size: 24px; color: #f8f9fa; margin: 0 0 20px 0;">Hi %s,</h1>`, emailhtml.Escape(name))
	b.WriteString(`<p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; line-height: 1.6; margin: 0 0 24px 0;">Thank you for submitting your project brief! We've received your request and are excited to learn more about your automation needs.</p>`)
	b.WriteString(`<div style="background-color: #2d2d30; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
  <h2 style="font-family: Arial, sans-serif; font-size: 18px; color: #4285F4; margin: 0 0 16px 0;">What Happens Next?</h2>
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; line-height: 1.6; margin: 0;">Our team will carefully review your brief and get back to you with a customized offer within <strong style="color: #34A853;">1-3 business days</strong>. We'll provide you with:</p>
  <ul style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; line-height: 1.8; margin: 16px 0 0 0; padding-left: 24px;">
    <li>A detailed proposal tailored to your requirements</li>
    <li>Timeline and delivery estimates</li>
    <li>Pricing information</li>
    <li>Next steps to get started</li>
  </ul>
</div>`)
	b.WriteString(emailhtml.TextBlock("Your Project Brief:", briefText))
	b.WriteString(`<div style="text-align: center; padding-top: 20px; border-top: 1px solid #424242;">
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; margin: 0;">We're looking forward to working with you!</p>
  <p style="font-family: Arial, sans-serif; font-size: 18px; color: #f8f9fa; margin: 10px 0 0 0; font-weight: 600;">Meir Horwitz</p>
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 10px 0 0 0;">Automation by Meir</p>
</div>`)
	return emailhtml.Layout(b.String())
}

func notificationContent(name, email, briefText string, attachmentCount int) string {
	var b strings.Builder
	b.WriteString(`<h1 style="font-family: Arial, sans-serif; font-size: 24px; color: #f8f9fa; margin: 0 0 20px 0; text-align: center;">New Custom Project Brief Received!</h1>`)
	fmt.Fprintf(&b, `<div style="background-color: #2d2d30; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 0 0 12px 0;">Client: <span style="font-size: 16px; color: #4285F4; font-weight: 600;">%s</span></p>
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 0;">Email: <a href="mailto:%s" style="font-size: 16px; color: #34A853; text-decoration: none;">%s</a></p>`,
		emailhtml.Escape(name), emailhtml.Escape(email), emailhtml.Escape(email))
	if attachmentCount > 0 {
		fmt.Fprintf(&b, `
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 12px 0 0 0;"><strong style="color: #34A853;">Attachments:</strong> %d file(s) attached to this email</p>`, attachmentCount)
	}
	b.WriteString(`
</div>`)
	b.WriteString(emailhtml.TextBlock("Project Brief", briefText))
	b.WriteString(`<p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; text-align: center; margin: 20px 0 0 0;">Please review the brief and respond with a customized offer within 1-3 business days.</p>`)
	return emailhtml.Layout(b.String())
}
