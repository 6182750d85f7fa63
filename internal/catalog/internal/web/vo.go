package web

import "github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"

type RequestType struct {
	Id       int64  `json:"id,omitempty"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

func newRequestType(rt domain.RequestType) RequestType {
	return RequestType{
		Id:       rt.Id,
		Category: rt.Category,
		Name:     rt.Name,
	}
}
