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

	"github.com/ecodeclub/mailtriage/internal/search/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/search/internal/repository"
)

//go:generate mockgen -source=./search.go -package=svcmocks -destination=mocks/search.mock.go SearchService
type SearchService interface {
	Search(ctx context.Context, offset, limit int, keywords string) ([]domain.Email, error)
}

type searchService struct {
	repo repository.EmailRepo
}

func NewSearchService(repo repository.EmailRepo) SearchService {
	return &searchService{repo: repo}
}

func (s *searchService) Search(ctx context.Context,
	offset, limit int, keywords string) ([]domain.Email, error) {
	return s.repo.SearchEmail(ctx, offset, limit, keywords)
}
