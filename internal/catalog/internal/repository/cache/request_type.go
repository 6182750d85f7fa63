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

package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mailtriage/internal/catalog/internal/domain"
)

//go:generate mockgen -source=./request_type.go -package=cachemocks -destination=mocks/request_type.mock.go RequestTypeCache
type RequestTypeCache interface {
	GetList(ctx context.Context) ([]domain.RequestType, error)
	SetList(ctx context.Context, rts []domain.RequestType) error
	Delete(ctx context.Context) error
}

type RequestTypeECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

// NewRequestTypeECache 注意缓存前缀
func NewRequestTypeECache(c ecache.Cache) RequestTypeCache {
	return &RequestTypeECache{
		cache: &ecache.NamespaceCache{
			Namespace: "catalog:",
			C:         c,
		},
		// 类目变动很少，可以放得久一点
		expiration: time.Minute * 30,
	}
}

func (c *RequestTypeECache) GetList(ctx context.Context) ([]domain.RequestType, error) {
	var res []domain.RequestType
	err := c.cache.Get(ctx, c.key()).JSONScan(&res)
	return res, err
}

func (c *RequestTypeECache) SetList(ctx context.Context, rts []domain.RequestType) error {
	data, err := json.Marshal(rts)
	if err != nil {
		return err
	}
	return c.cache.Set(ctx, c.key(), data, c.expiration)
}

func (c *RequestTypeECache) Delete(ctx context.Context) error {
	_, err := c.cache.Delete(ctx, c.key())
	return err
}

func (c *RequestTypeECache) key() string {
	return "request_type:list"
}
