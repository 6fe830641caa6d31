package services

import (
	"fmt"
	"log"
	"time"

	"github.com/endri-fradomos/local-api/internal/infrastructure/config"

	"gopkg.in/gomail.v2"
)

// InterfaceMailService defines the outbound mail interface
type InterfaceMailService interface {
	SendWelcomeEmail(toEmail, firstName string)
}

// MailService sends transactional email over SMTP
type MailService struct {
	Config *config.Config
}

// NewMailService creates a new mail service
func NewMailService(cfg *config.Config) InterfaceMailService {
	return &MailService{Config: cfg}
}

// SendWelcomeEmail sends the registration welcome email. Delivery is best
// effort and runs in the background; a mail failure never fails the request.
func (s *MailService) SendWelcomeEmail(toEmail, firstName string) {
	if s.Config.SMTPUsername == "" {
		log.Printf("[mail] SMTP not configured, skipping welcome email to %s", toEmail)
		return
	}

	go func() {
		if firstName == "" {
			firstName = "there"
		}

		m := gomail.NewMessage()
		m.SetHeader("From", fmt.Sprintf("Fradomos <%s>", s.Config.SMTPFrom))
		m.SetHeader("To", toEmail)
		m.SetHeader("Subject", "Welcome to Fradomos!")
		m.SetBody("text/html", fmt.Sprintf(`
			<div style="font-family: Arial, sans-serif; color: #333; text-align: center; padding: 20px;">
				<h2>Hello %s, welcome to Fradomos Smart Home</h2>
				<p>Thank you for joining us. Feel at home, from anywhere!</p>
				<a href="https://fradomos.al"
					 style="display: inline-block; padding: 12px 24px; margin-top: 20px;
									background-color: #007BFF; color: white; text-decoration: none;
									border-radius: 6px; font-weight: bold;">
					Visit Fradomos
				</a>
				<p style="margin-top: 40px; font-size: 12px; color: #888;">
					&copy; %d Fradomos Smart Home
				</p>
			</div>
		`, firstName, time.Now().Year()))

		d := gomail.NewDialer(s.Config.SMTPHost, s.Config.SMTPPort, s.Config.SMTPUsername, s.Config.SMTPPassword)
		if err := d.DialAndSend(m); err != nil {
			log.Printf("[mail] failed to send welcome email to %s: %v", toEmail, err)
			return
		}
		log.Printf("[mail] welcome email sent to %s", toEmail)
	}()
}
