package email

import (
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/email/internal/event"
	"github.com/ecodeclub/mailtriage/internal/email/internal/service"
	"github.com/ecodeclub/mailtriage/internal/email/internal/web"
)

type Email = domain.Email
type Attachment = domain.Attachment
type Service = service.Service
type ReportService = service.ReportService
type Handler = web.Handler
type AdminHandler = web.AdminHandler

type EmailProcessedEvent = event.EmailProcessedEvent

const EmailProcessedTopic = event.EmailProcessedTopic
