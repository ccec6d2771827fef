package smtp

import (
	"fmt"
	"net/smtp"

	"forms-service/internal/app/contracts"
	"forms-service/internal/app/drivers/mailer"
	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/exceptions"
)

type smtpService struct {
	Client *mailer.SMTPClient
}

func NewSmtpService(client *mailer.SMTPClient) contracts.SMTPService {
	return &smtpService{
		Client: client,
	}
}

func (svc *smtpService) SendEmail(to, subject, body string) error {
	from := svc.Client.EmailSender
	msg := []byte(fmt.Sprintf(constvars.EmailSendBasicEmailFormat, to, subject, body))
	addr := fmt.Sprintf("%s:%d", svc.Client.Host, svc.Client.Port)
	err := smtp.SendMail(addr, svc.Client.Auth, from, []string{to}, msg)
	if err != nil {
		return exceptions.ErrSMTPSendEmail(err, svc.Client.Host)
	}
	return nil
}
