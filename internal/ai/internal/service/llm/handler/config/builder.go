package config

import (
	"context"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler"
)

// HandlerBuilder 从数据库里加载业务配置，放进请求里
type HandlerBuilder struct {
	repo repository.ConfigRepository
}

var _ handler.Builder = &HandlerBuilder{}

func NewHandler(repo repository.ConfigRepository) *HandlerBuilder {
	return &HandlerBuilder{repo: repo}
}

func (h *HandlerBuilder) Name() string {
	return "config"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		cfg, err := h.repo.GetConfig(ctx, req.Biz)
		if err != nil {
			return domain.LLMResponse{}, err
		}
		req.Config = cfg
		return next.Handle(ctx, req)
	})
}
