package search

import "github.com/ecodeclub/mailtriage/internal/search/internal/event"

type Module struct {
	SearchSvc SearchService
	SyncSvc   SyncService
	c         *event.EmailIndexConsumer
	Hdl       *Handler
}
