package record

import (
	"context"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler"
	"github.com/gotomicro/ego/core/elog"
)

// HandlerBuilder 持久化每一次 LLM 调用
type HandlerBuilder struct {
	repo   repository.LLMRecordRepo
	logger *elog.Component
}

func NewHandler(repo repository.LLMRecordRepo) *HandlerBuilder {
	return &HandlerBuilder{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
}

func (h *HandlerBuilder) Name() string {
	return "record"
}

func (h *HandlerBuilder) Next(next handler.Handler) handler.Handler {
	return handler.HandleFunc(func(ctx context.Context, req domain.LLMRequest) (domain.LLMResponse, error) {
		record := domain.LLMRecord{
			Tid:            req.Tid,
			Biz:            req.Biz,
			Uid:            req.Uid,
			Input:          req.Input,
			Status:         domain.RecordStatusProcessing,
			PromptTemplate: req.Config.PromptTemplate,
		}
		defer func() {
			_, err1 := h.repo.Save(ctx, record)
			if err1 != nil {
				h.logger.Error("保存 LLM 访问记录失败", elog.FieldErr(err1))
			}
		}()
		resp, err := next.Handle(ctx, req)
		if err != nil {
			record.Status = domain.RecordStatusFailed
			return domain.LLMResponse{}, err
		}
		record.Tokens = resp.Tokens
		record.Amount = resp.Amount
		record.Status = domain.RecordStatusSuccess
		record.Answer = resp.Answer
		return resp, err
	})
}
