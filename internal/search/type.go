package search

import (
	"github.com/ecodeclub/mailtriage/internal/search/internal/service"
	"github.com/ecodeclub/mailtriage/internal/search/internal/web"
)

type SearchService = service.SearchService
type SyncService = service.SyncService
type Handler = web.Handler
