package notify

import "context"

//go:generate mockgen -source=./type.go -package=notifymocks -destination=./mocks/notify.mock.go -typed Sender
type Sender interface {
	SendMail(ctx context.Context, mail Mail) error
}

type Mail struct {
	From    string
	To      string
	Subject string
	Body    []byte
}
