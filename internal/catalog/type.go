package catalog

import (
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/service"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/web"
)

type RequestType = domain.RequestType
type Service = service.Service
type Handler = web.Handler
