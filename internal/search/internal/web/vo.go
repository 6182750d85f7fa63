package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mailtriage/internal/search/internal/domain"
)

type SearchReq struct {
	Keywords string `json:"keywords"`
	Offset   int    `json:"offset,omitempty"`
	Limit    int    `json:"limit,omitempty"`
}

type SearchResp struct {
	Emails []Email `json:"emails"`
}

type Email struct {
	Id          int64  `json:"id"`
	Sender      string `json:"sender"`
	Subject     string `json:"subject"`
	Category    string `json:"category"`
	RequestType string `json:"request_type"`
	Summary     string `json:"summary"`
	Utime       int64  `json:"utime"`
}

func newSearchResp(emails []domain.Email) SearchResp {
	return SearchResp{
		Emails: slice.Map(emails, func(idx int, src domain.Email) Email {
			return Email{
				Id:          src.Id,
				Sender:      src.Sender,
				Subject:     src.Subject,
				Category:    src.Category,
				RequestType: src.RequestType,
				Summary:     src.Summary,
				Utime:       src.Utime,
			}
		}),
	}
}
