package ai

import (
	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/web"
)

type LLMRequest = domain.LLMRequest
type LLMResponse = domain.LLMResponse
type LLMService = llm.Service

type Triage = domain.Triage
type TriageOption = service.TriageOption
type TriageService = service.TriageService

type AdminHandler = web.AdminHandler

const BizEmailTriage = domain.BizEmailTriage
