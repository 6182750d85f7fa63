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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/repository"
)

var ErrInvalidRequestType = errors.New("类目或者请求类型不能为空")

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	List(ctx context.Context) ([]domain.RequestType, error)
	Save(ctx context.Context, rt domain.RequestType) (int64, error)
}

type service struct {
	repo repository.RequestTypeRepository
}

func NewService(repo repository.RequestTypeRepository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.RequestType, error) {
	return s.repo.List(ctx)
}

func (s *service) Save(ctx context.Context, rt domain.RequestType) (int64, error) {
	rt.Category = strings.TrimSpace(rt.Category)
	rt.Name = strings.TrimSpace(rt.Name)
	if rt.Category == "" || rt.Name == "" {
		return 0, ErrInvalidRequestType
	}
	return s.repo.Save(ctx, rt)
}
