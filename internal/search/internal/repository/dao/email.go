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

package dao

import (
	"context"
	"encoding/json"

	"github.com/olivere/elastic/v7"
)

const EmailIndexName = "email_index"

// todo 添加分词器
type Email struct {
	Id          int64  `json:"id"`
	Sender      string `json:"sender"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Category    string `json:"category"`
	RequestType string `json:"request_type"`
	Summary     string `json:"summary"`
	Utime       int64  `json:"utime"`
}

type EmailElasticDAO struct {
	client *elastic.Client
	index  string
}

func NewEmailElasticDAO(client *elastic.Client) *EmailElasticDAO {
	return &EmailElasticDAO{
		client: client,
		index:  EmailIndexName,
	}
}

func (e *EmailElasticDAO) SearchEmail(ctx context.Context,
	offset, limit int, keywords string) ([]Email, error) {
	query := elastic.NewBoolQuery().Must(
		elastic.NewBoolQuery().Should(
			elastic.NewMatchQuery("subject", keywords).Boost(3),
			elastic.NewMatchQuery("summary", keywords).Boost(2),
			elastic.NewMatchQuery("body", keywords),
			elastic.NewMatchQuery("sender", keywords),
			elastic.NewMatchQuery("category", keywords),
			elastic.NewMatchQuery("request_type", keywords),
		))
	resp, err := e.client.Search(e.index).
		From(offset).
		Size(limit).
		Query(query).
		Do(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]Email, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		var ele Email
		if err = json.Unmarshal(hit.Source, &ele); err != nil {
			return nil, err
		}
		res = append(res, ele)
	}
	return res, nil
}
