package dao

import (
	"context"
)

type EmailDAO interface {
	SearchEmail(ctx context.Context, offset, limit int, keywords string) ([]Email, error)
}

type AnyDAO interface {
	Input(ctx context.Context, index string, docID string, data string) error
}
