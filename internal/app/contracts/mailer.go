package contracts

type SMTPService interface {
	SendEmail(to, subject, body string) error
}
