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

package event

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ecodeclub/mailtriage/internal/search/internal/repository/dao"
	"github.com/ecodeclub/mailtriage/internal/search/internal/service"
	mq "github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

const emailProcessedTopic = "email_processed_events"

// emailProcessedEvent 消费侧只关心要进索引的字段
type emailProcessedEvent struct {
	Id          int64  `json:"id"`
	Sender      string `json:"sender"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Category    string `json:"category"`
	RequestType string `json:"request_type"`
	Summary     string `json:"summary"`
	Utime       int64  `json:"utime"`
}

type EmailIndexConsumer struct {
	svc      service.SyncService
	consumer mq.Consumer
	logger   *elog.Component
}

func NewEmailIndexConsumer(svc service.SyncService, q mq.MQ) (*EmailIndexConsumer, error) {
	groupID := "search_email"
	consumer, err := q.Consumer(emailProcessedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &EmailIndexConsumer{
		svc:      svc,
		consumer: consumer,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *EmailIndexConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt emailProcessedEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("序列化文档失败: %w", err)
	}
	docId := strconv.FormatInt(evt.Id, 10)
	err = c.svc.Input(ctx, dao.EmailIndexName, docId, string(data))
	if err != nil {
		c.logger.Error("同步邮件到搜索失败",
			elog.FieldErr(err), elog.Int64("id", evt.Id))
	}
	return err
}

func (c *EmailIndexConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("消费邮件处理事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *EmailIndexConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}
