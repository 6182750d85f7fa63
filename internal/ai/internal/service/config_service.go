package service

import (
	"context"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository"
)

// ConfigService 后台管理 LLM 业务配置
type ConfigService interface {
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
	GetByBiz(ctx context.Context, biz string) (domain.BizConfig, error)
}

type configService struct {
	repo repository.ConfigRepository
}

func NewConfigService(repo repository.ConfigRepository) ConfigService {
	return &configService{repo: repo}
}

func (s *configService) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	return s.repo.Save(ctx, cfg)
}

func (s *configService) List(ctx context.Context) ([]domain.BizConfig, error) {
	return s.repo.List(ctx)
}

func (s *configService) GetByBiz(ctx context.Context, biz string) (domain.BizConfig, error) {
	return s.repo.GetConfig(ctx, biz)
}
