package interfaces

import "context"

type MailAttachment struct {
	Filename string
	Content  []byte
}

type MailMessage struct {
	To          string
	Subject     string
	HTML        string
	Attachments []MailAttachment
}

// IMailer abstracts email dispatch. Delivery failures never roll back a
// committed business transition: callers log and report them separately.
type IMailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
