// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository/dao"
)

type ConfigRepository interface {
	GetConfig(ctx context.Context, biz string) (domain.BizConfig, error)
	Save(ctx context.Context, cfg domain.BizConfig) (int64, error)
	List(ctx context.Context) ([]domain.BizConfig, error)
}

// CachedConfigRepository 配置几乎不变，后续性能瓶颈了再加缓存
type CachedConfigRepository struct {
	dao dao.ConfigDAO
}

func NewCachedConfigRepository(dao dao.ConfigDAO) ConfigRepository {
	return &CachedConfigRepository{dao: dao}
}

func (repo *CachedConfigRepository) GetConfig(ctx context.Context, biz string) (domain.BizConfig, error) {
	res, err := repo.dao.GetConfig(ctx, biz)
	if err != nil {
		return domain.BizConfig{}, err
	}
	return repo.toDomain(res), nil
}

func (repo *CachedConfigRepository) Save(ctx context.Context, cfg domain.BizConfig) (int64, error) {
	return repo.dao.Save(ctx, dao.BizConfig{
		Id:             cfg.Id,
		Biz:            cfg.Biz,
		MaxInput:       cfg.MaxInput,
		Model:          cfg.Model,
		Price:          cfg.Price,
		Temperature:    cfg.Temperature,
		TopP:           cfg.TopP,
		SystemPrompt:   cfg.SystemPrompt,
		PromptTemplate: cfg.PromptTemplate,
	})
}

func (repo *CachedConfigRepository) List(ctx context.Context) ([]domain.BizConfig, error) {
	cfgs, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(cfgs, func(idx int, src dao.BizConfig) domain.BizConfig {
		return repo.toDomain(src)
	}), nil
}

func (repo *CachedConfigRepository) toDomain(res dao.BizConfig) domain.BizConfig {
	return domain.BizConfig{
		Id:             res.Id,
		Biz:            res.Biz,
		MaxInput:       res.MaxInput,
		Model:          res.Model,
		Price:          res.Price,
		Temperature:    res.Temperature,
		TopP:           res.TopP,
		SystemPrompt:   res.SystemPrompt,
		PromptTemplate: res.PromptTemplate,
		Utime:          res.Utime,
	}
}
