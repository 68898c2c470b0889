package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"cms/config"
)

// SendEmail sends an HTML email through the configured SMTP account.
// A blank sender disables outgoing mail entirely.
func SendEmail(cfg *config.Config, to []string, subject string, htmlBody string) error {
	if cfg.EmailSender == "" {
		return nil
	}

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := cfg.EmailSender
	password := cfg.EmailPassword

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Membership Desk <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// WelcomeEmailBody renders the registration confirmation message.
func WelcomeEmailBody(firstName string) string {
	content := fmt.Sprintf(`
		<h2>Welcome, %s!</h2>
		<p>Your membership registration has been received. We are glad to
		have you with us and will reach out with next steps for your
		fellowship group soon.</p>
		<p>God bless you.</p>`, firstName)
	return getEmailTemplate("Registration Received", content)
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>%s</h1></div>
			<div class="content">%s</div>
			<div class="footer">This is an automated message from the membership registration system.</div>
		</div>
	</body>
	</html>`, title, bodyContent)
}
