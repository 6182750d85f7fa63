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
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/email/internal/repository/dao"
)

var (
	ErrDataNotFound   = dao.ErrDataNotFound
	ErrDuplicateEmail = dao.ErrDuplicateEmail
)

//go:generate mockgen -source=./email.go -package=repomocks -destination=mocks/email.mock.go ProcessedEmailRepository
type ProcessedEmailRepository interface {
	Create(ctx context.Context, e domain.Email) (int64, error)
	FindByHash(ctx context.Context, hash string) (domain.Email, error)
	FindById(ctx context.Context, id int64) (domain.Email, error)
	List(ctx context.Context, offset, limit int) ([]domain.Email, error)
	Count(ctx context.Context) (int64, error)
}

type processedEmailRepository struct {
	dao dao.ProcessedEmailDAO
}

func NewProcessedEmailRepository(d dao.ProcessedEmailDAO) ProcessedEmailRepository {
	return &processedEmailRepository{dao: d}
}

func (repo *processedEmailRepository) Create(ctx context.Context, e domain.Email) (int64, error) {
	return repo.dao.Insert(ctx, repo.toEntity(e))
}

func (repo *processedEmailRepository) FindByHash(ctx context.Context, hash string) (domain.Email, error) {
	e, err := repo.dao.FindByHash(ctx, hash)
	if err != nil {
		return domain.Email{}, err
	}
	return repo.toDomain(e), nil
}

func (repo *processedEmailRepository) FindById(ctx context.Context, id int64) (domain.Email, error) {
	e, err := repo.dao.FindById(ctx, id)
	if err != nil {
		return domain.Email{}, err
	}
	return repo.toDomain(e), nil
}

func (repo *processedEmailRepository) List(ctx context.Context, offset, limit int) ([]domain.Email, error) {
	es, err := repo.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(es, func(idx int, src dao.ProcessedEmail) domain.Email {
		return repo.toDomain(src)
	}), nil
}

func (repo *processedEmailRepository) Count(ctx context.Context) (int64, error) {
	return repo.dao.Count(ctx)
}

func (repo *processedEmailRepository) toEntity(e domain.Email) dao.ProcessedEmail {
	return dao.ProcessedEmail{
		Id:       e.Id,
		Sender:   e.Sender,
		Subject:  e.Subject,
		Body:     e.Body,
		BodyHash: e.BodyHash,
		Attachments: sqlx.JsonColumn[[]domain.Attachment]{
			Val:   e.Attachments,
			Valid: len(e.Attachments) > 0,
		},
		Category:    e.Category,
		RequestType: e.RequestType,
		Summary:     e.Summary,
	}
}

func (repo *processedEmailRepository) toDomain(e dao.ProcessedEmail) domain.Email {
	return domain.Email{
		Id:          e.Id,
		Sender:      e.Sender,
		Subject:     e.Subject,
		Body:        e.Body,
		BodyHash:    e.BodyHash,
		Attachments: e.Attachments.Val,
		Category:    e.Category,
		RequestType: e.RequestType,
		Summary:     e.Summary,
		Ctime:       e.Ctime,
		Utime:       e.Utime,
	}
}
