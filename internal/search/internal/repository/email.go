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
	"github.com/ecodeclub/mailtriage/internal/search/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/search/internal/repository/dao"
)

type EmailRepo interface {
	SearchEmail(ctx context.Context, offset, limit int, keywords string) ([]domain.Email, error)
}

type emailRepository struct {
	dao dao.EmailDAO
}

func NewEmailRepo(d dao.EmailDAO) EmailRepo {
	return &emailRepository{dao: d}
}

func (e *emailRepository) SearchEmail(ctx context.Context,
	offset, limit int, keywords string) ([]domain.Email, error) {
	es, err := e.dao.SearchEmail(ctx, offset, limit, keywords)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.Email) domain.Email {
		return domain.Email{
			Id:          src.Id,
			Sender:      src.Sender,
			Subject:     src.Subject,
			Body:        src.Body,
			Category:    src.Category,
			RequestType: src.RequestType,
			Summary:     src.Summary,
			Utime:       src.Utime,
		}
	}), nil
}
