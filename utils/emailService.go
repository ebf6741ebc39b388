package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"ccrm/config"
)

// SendEmail sends a plain-text + HTML mail through the configured SMTP
// relay with the fixed sender identity. Transport errors are returned to
// the caller; request paths surface them, the reminder sweep swallows them.
func SendEmail(to []string, subject, textBody, htmlBody string) error {
	cfg := config.AppConfig
	from := cfg.EmailSender

	boundary := "ccrm-alt-boundary"
	var msg strings.Builder
	msg.WriteString("MIME-version: 1.0;\r\n")
	msg.WriteString(fmt.Sprintf("From: Course CRM <%s>\r\n", from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", strings.Join(to, ",")))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString(fmt.Sprintf("Content-Type: multipart/alternative; boundary=%q\r\n\r\n", boundary))
	msg.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/plain; charset=\"UTF-8\"\r\n\r\n%s\r\n", boundary, textBody))
	msg.WriteString(fmt.Sprintf("--%s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s\r\n", boundary, htmlBody))
	msg.WriteString(fmt.Sprintf("--%s--\r\n", boundary))

	auth := smtp.PlainAuth("", from, cfg.Password, cfg.SMTPHost)

	err := smtp.SendMail(cfg.SMTPHost+":"+cfg.SMTPPort, auth, from, to, []byte(msg.String()))
	if err != nil {
		log.Printf("[MAIL] send to %v failed: %v", to, err)
		return err
	}
	return nil
}

// getEmailTemplate wraps body content in the shared HTML shell.
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #00004D; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #00004D; line-height: 1.6; }
			.content h2 { color: #00004D; margin-top: 0; }
			.content table { border-collapse: collapse; width: 100%%; }
			.content td, .content th { border: 1px solid #E0E0E0; padding: 8px 12px; text-align: left; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			.btn { display: inline-block; padding: 12px 24px; background-color: #007BFF; color: #FFFFFF; text-decoration: none; border-radius: 4px; font-weight: bold; margin-top: 20px; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>COURSE CRM</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated message. Please do not reply.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendChildAdminWelcomeEmail mails login credentials to a freshly created
// child admin. The caller decides whether a transport failure is fatal.
func SendChildAdminWelcomeEmail(email, userName, password string) error {
	subject := "Internal User Account Created"

	textBody := fmt.Sprintf(`Hello %s,

Your internal user account has been successfully created.
Login email: %s
Temporary password: %s
`, userName, email, password)

	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Your internal user account has been created.</p>
		<p>Your email is <strong>%s</strong></p>
		<p>Your temporary password is <strong>%s</strong></p>
		<p>Please <a href="%s/login">log in</a> and change your password.</p>
	`, userName, email, password, config.AppConfig.FrontendURL)

	return SendEmail([]string{email}, subject, textBody, getEmailTemplate("Account Created", body))
}

// SendStudentInviteEmail mails a tokenized registration link to a student.
func SendStudentInviteEmail(email, inviteLink string) error {
	subject := "Student Registration Invitation"

	textBody := "You have been invited to register as a student. Click here: " + inviteLink

	body := fmt.Sprintf(`
		<p>Hello,</p>
		<p>You have been invited to register as a student under your institute.</p>
		<p>Click the button below to complete your registration:</p>
		<a href="%s" class="btn">Register Now</a>
		<p>This link will expire in 24 hours.</p>
	`, inviteLink)

	return SendEmail([]string{email}, subject, textBody, getEmailTemplate("You're Invited", body))
}
