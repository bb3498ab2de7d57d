package scheduling

import (
	"fmt"
	"strings"
	"time"

	"github.com/meirhorwitz/site-api/internal/emailhtml"
)

// EmailPayload is the data rendered into booking email bodies. Text fields
// are raw user input; escaping happens exactly once, inside the renderers.
type EmailPayload struct {
	Name     string
	Email    string
	Details  string
	Start    time.Time
	MeetLink string
}

type contentFunc func(p EmailPayload, timezone string, durationMinutes int) string

// confirmationContent maps each supported language to its renderer. Operator
// notifications do not go through this table; they are always English.
var confirmationContent = map[Language]contentFunc{
	English: englishContent,
	Hebrew:  hebrewContent,
}

var confirmationSubject = map[Language]string{
	English: "Our Consultation is Scheduled!",
	Hebrew:  "פגישת הייעוץ שלנו נקבעה!",
}

func englishContent(p EmailPayload, timezone string, durationMinutes int) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<h1 style="font-family: Arial, sans-serif; font-size: 24px; color: #f8f9fa; margin: 0 0 20px 0;">Hi %s,</h1>`, emailhtml.Escape(p.Name))
	b.WriteString(`<p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; line-height: 1.6; margin: 0 0 24px 0;">Thank you for reaching out! I'm excited to discuss your project and explore how we can transform your business with intelligent automation.</p>`)
	fmt.Fprintf(&b, `<div style="background-color: #2d2d30; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
  <h2 style="font-family: Arial, sans-serif; font-size: 18px; color: #4285F4; margin: 0 0 16px 0;">Meeting Details</h2>
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #f8f9fa; margin: 0 0 12px 0;"><strong style="color: #FBBC04;">Date &amp; Time:</strong><br>%s (%s)</p>
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #f8f9fa; margin: 0;"><strong style="color: #34A853;">Duration:</strong><br>%d minutes</p>
</div>`, formatEnglishDate(p.Start), emailhtml.Escape(timezone), durationMinutes)
	b.WriteString(emailhtml.Button(p.MeetLink, "Join Google Meet"))
	b.WriteString(emailhtml.TextBlock("Your Project Details:", p.Details))
	b.WriteString(`<p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; text-align: center; margin: 0 0 20px 0;">A calendar invitation has been sent to your email.</p>`)
	b.WriteString(`<div style="text-align: center; padding-top: 20px; border-top: 1px solid #424242;">
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; margin: 0;">Looking forward to speaking with you!</p>
  <p style="font-family: Arial, sans-serif; font-size: 18px; color: #f8f9fa; margin: 10px 0 0 0; font-weight: 600;">Meir Horwitz</p>
</div>`)
	return emailhtml.Layout(b.String())
}

func hebrewContent(p EmailPayload, timezone string, durationMinutes int) string {
	var b strings.Builder
	b.WriteString(`<div dir="rtl" style="text-align: right;">`)
	fmt.Fprintf(&b, `<h1 style="font-family: Arial, sans-serif; font-size: 24px; color: #f8f9fa; margin: 0 0 20px 0;">שלום %s,</h1>`, emailhtml.Escape(p.Name))
	b.WriteString(`<p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; line-height: 1.8; margin: 0 0 24px 0;">תודה על פנייתך! אני נרגש לדון בפרויקט שלך ולחקור כיצד נוכל לשנות את העסק שלך עם אוטומציה חכמה.</p>`)
	fmt.Fprintf(&b, `<div style="background-color: #2d2d30; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
  <h2 style="font-family: Arial, sans-serif; font-size: 18px; color: #4285F4; margin: 0 0 16px 0;">פרטי הפגישה</h2>
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #f8f9fa; margin: 0 0 12px 0;"><strong style="color: #FBBC04;">תאריך ושעה:</strong><br>%s (%s)</p>
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #f8f9fa; margin: 0;"><strong style="color: #34A853;">משך הפגישה:</strong><br>%d דקות</p>
</div>`, formatHebrewDate(p.Start), emailhtml.Escape(timezone), durationMinutes)
	b.WriteString(emailhtml.Button(p.MeetLink, "הצטרף ל-Google Meet"))
	b.WriteString(emailhtml.TextBlock("פרטי הפרויקט שלך:", p.Details))
	b.WriteString(`<p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; text-align: center; margin: 0 0 20px 0;">הזמנה לאירוע ביומן נשלחה למייל שלך.</p>`)
	b.WriteString(`<div style="text-align: center; padding-top: 20px; border-top: 1px solid #424242;">
  <p style="font-family: Arial, sans-serif; font-size: 16px; color: #cbd5e1; margin: 0;">מצפה לדבר איתך!</p>
  <p style="font-family: Arial, sans-serif; font-size: 18px; color: #f8f9fa; margin: 10px 0 0 0; font-weight: 600;">מאיר הורביץ</p>
</div></div>`)
	return emailhtml.Layout(b.String())
}

// notificationContent renders the operator notification for a new booking.
// Always English.
func notificationContent(p EmailPayload, durationMinutes int) string {
	var b strings.Builder
	b.WriteString(`<h1 style="font-family: Arial, sans-serif; font-size: 24px; color: #f8f9fa; margin: 0 0 20px 0; text-align: center;">New Consultation Scheduled!</h1>`)
	fmt.Fprintf(&b, `<div style="background-color: #2d2d30; border-radius: 12px; padding: 24px; margin-bottom: 24px;">
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 0 0 12px 0;">Client: <span style="font-size: 16px; color: #4285F4; font-weight: 600;">%s</span></p>
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 0 0 12px 0;">Email: <a href="mailto:%s" style="font-size: 16px; color: #34A853; text-decoration: none;">%s</a></p>
  <p style="font-family: Arial, sans-serif; font-size: 14px; color: #5f6368; margin: 0;">Time: <span style="font-size: 16px; color: #FBBC04; font-weight: 600;">%s &middot; %d min</span></p>
</div>`, emailhtml.Escape(p.Name), emailhtml.Escape(p.Email), emailhtml.Escape(p.Email), formatEnglishDate(p.Start), durationMinutes)
	b.WriteString(emailhtml.Button(p.MeetLink, "Join Google Meet"))
	b.WriteString(emailhtml.TextBlock("Project Details", p.Details))
	return emailhtml.Layout(b.String())
}

// formatEnglishDate mirrors the en-US "full date, short time" style.
func formatEnglishDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006 at 3:04 PM")
}

var hebrewWeekdays = [...]string{"ראשון", "שני", "שלישי", "רביעי", "חמישי", "שישי", "שבת"}

var hebrewMonths = [...]string{
	"ינואר", "פברואר", "מרץ", "אפריל", "מאי", "יוני",
	"יולי", "אוגוסט", "ספטמבר", "אוקטובר", "נובמבר", "דצמבר",
}

// formatHebrewDate mirrors the he-IL "full date, short time" style.
func formatHebrewDate(t time.Time) string {
	return fmt.Sprintf("יום %s, %d ב%s %d בשעה %02d:%02d",
		hebrewWeekdays[int(t.Weekday())], t.Day(), hebrewMonths[int(t.Month())-1], t.Year(), t.Hour(), t.Minute())
}
