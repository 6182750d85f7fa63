package repository

import (
	"context"

	"github.com/ecodeclub/mailtriage/internal/search/internal/repository/dao"
)

type AnyRepo interface {
	Input(ctx context.Context, index string, docID string, data string) error
}

type anyRepo struct {
	dao dao.AnyDAO
}

func NewAnyRepo(d dao.AnyDAO) AnyRepo {
	return &anyRepo{dao: d}
}

func (a *anyRepo) Input(ctx context.Context, index string, docID string, data string) error {
	return a.dao.Input(ctx, index, docID, data)
}
