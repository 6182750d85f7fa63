package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
)

type Page struct {
	Offset int `json:"offset,omitempty"`
	Limit  int `json:"limit,omitempty"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type ReportReq struct {
	// Limit 报告里最多包含多少封最近处理的邮件
	Limit int `json:"limit,omitempty"`
}

type Email struct {
	Id          int64        `json:"id"`
	Sender      string       `json:"sender"`
	Subject     string       `json:"subject"`
	Body        string       `json:"body,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Category    string       `json:"category"`
	RequestType string       `json:"request_type"`
	Summary     string       `json:"summary"`
	Duplicate   bool         `json:"duplicate"`
	Utime       int64        `json:"utime"`
}

type Attachment struct {
	Filename string `json:"filename"`
	Text     string `json:"text,omitempty"`
}

type EmailList struct {
	Total  int64   `json:"total"`
	Emails []Email `json:"emails"`
}

func newEmail(e domain.Email) Email {
	return Email{
		Id:          e.Id,
		Sender:      e.Sender,
		Subject:     e.Subject,
		Body:        e.Body,
		Attachments: newAttachments(e.Attachments),
		Category:    e.Category,
		RequestType: e.RequestType,
		Summary:     e.Summary,
		Duplicate:   e.Duplicate,
		Utime:       e.Utime,
	}
}

func newAttachments(atts []domain.Attachment) []Attachment {
	return slice.Map(atts, func(idx int, src domain.Attachment) Attachment {
		return Attachment{
			Filename: src.Filename,
			Text:     src.Text,
		}
	})
}
