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

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository/dao"
)

// LLMRecordRepo 每次 LLM 调用都会留一条记录
type LLMRecordRepo interface {
	Save(ctx context.Context, r domain.LLMRecord) (int64, error)
}

type llmRecordRepo struct {
	dao dao.LLMRecordDAO
}

func NewLLMRecordRepo(d dao.LLMRecordDAO) LLMRecordRepo {
	return &llmRecordRepo{dao: d}
}

func (g *llmRecordRepo) Save(ctx context.Context, r domain.LLMRecord) (int64, error) {
	return g.dao.Save(ctx, g.toEntity(r))
}

func (g *llmRecordRepo) toEntity(r domain.LLMRecord) dao.LLMRecord {
	return dao.LLMRecord{
		Id:     r.Id,
		Tid:    r.Tid,
		Uid:    r.Uid,
		Biz:    r.Biz,
		Tokens: r.Tokens,
		Amount: r.Amount,
		Input: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   r.Input,
		},
		Status:         r.Status.ToUint8(),
		PromptTemplate: sqlx.NewNullString(r.PromptTemplate),
		Answer:         sqlx.NewNullString(r.Answer),
	}
}
