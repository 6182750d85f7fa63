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
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

//go:generate mockgen -source=./request_type.go -package=repomocks -destination=mocks/request_type.mock.go RequestTypeRepository
type RequestTypeRepository interface {
	List(ctx context.Context) ([]domain.RequestType, error)
	Save(ctx context.Context, rt domain.RequestType) (int64, error)
}

type CachedRequestTypeRepository struct {
	dao    dao.RequestTypeDAO
	cache  cache.RequestTypeCache
	logger *elog.Component
}

func NewCachedRequestTypeRepository(d dao.RequestTypeDAO, c cache.RequestTypeCache) RequestTypeRepository {
	return &CachedRequestTypeRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedRequestTypeRepository) List(ctx context.Context) ([]domain.RequestType, error) {
	res, err := repo.cache.GetList(ctx)
	if err == nil && len(res) > 0 {
		return res, nil
	}
	rts, err := repo.dao.List(ctx)
	if err != nil {
		return nil, err
	}
	res = slice.Map(rts, func(idx int, src dao.RequestType) domain.RequestType {
		return repo.toDomain(src)
	})
	// 缓存失败不影响正常返回
	if err = repo.cache.SetList(ctx, res); err != nil {
		repo.logger.Error("缓存请求类型列表失败", elog.FieldErr(err))
	}
	return res, nil
}

func (repo *CachedRequestTypeRepository) Save(ctx context.Context, rt domain.RequestType) (int64, error) {
	id, err := repo.dao.Save(ctx, dao.RequestType{
		Id:       rt.Id,
		Category: rt.Category,
		Name:     rt.Name,
	})
	if err != nil {
		return 0, err
	}
	if err = repo.cache.Delete(ctx); err != nil {
		repo.logger.Error("清理请求类型缓存失败", elog.FieldErr(err))
	}
	return id, nil
}

func (repo *CachedRequestTypeRepository) toDomain(rt dao.RequestType) domain.RequestType {
	return domain.RequestType{
		Id:       rt.Id,
		Category: rt.Category,
		Name:     rt.Name,
		Utime:    rt.Utime,
	}
}
