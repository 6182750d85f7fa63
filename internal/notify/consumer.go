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

package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/mail"

	"github.com/ecodeclub/mailtriage/internal/email"
	mq "github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

// AckConsumer 在邮件处理完成之后给发件人回一封确认邮件。
// 回执失败只记日志，不影响主流程。
type AckConsumer struct {
	sender   Sender
	consumer mq.Consumer
	from     string
	logger   *elog.Component
}

func NewAckConsumer(sender Sender, q mq.MQ, from string) (*AckConsumer, error) {
	groupID := "notify_ack"
	consumer, err := q.Consumer(email.EmailProcessedTopic, groupID)
	if err != nil {
		return nil, err
	}
	return &AckConsumer{
		sender:   sender,
		consumer: consumer,
		from:     from,
		logger:   elog.DefaultLogger,
	}, nil
}

func (c *AckConsumer) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt email.EmailProcessedEvent
	if err = json.Unmarshal(msg.Value, &evt); err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	to := senderAddress(evt.Sender)
	if to == "" {
		c.logger.Warn("发件人地址无法解析，跳过回执",
			elog.String("sender", evt.Sender), elog.Int64("id", evt.Id))
		return nil
	}
	err = c.sender.SendMail(ctx, Mail{
		From:    c.from,
		To:      to,
		Subject: fmt.Sprintf("Re: %s", evt.Subject),
		Body:    ackBody(evt),
	})
	if err != nil {
		c.logger.Error("发送回执邮件失败",
			elog.FieldErr(err), elog.Int64("id", evt.Id))
	}
	return err
}

func (c *AckConsumer) Start(ctx context.Context) {
	go func() {
		for {
			err := c.Consume(ctx)
			if err != nil {
				c.logger.Error("处理回执事件失败", elog.FieldErr(err))
			}
		}
	}()
}

func (c *AckConsumer) Stop(_ context.Context) error {
	return c.consumer.Close()
}

// senderAddress 从 "Name <addr@example.com>" 这种写法里取出纯地址
func senderAddress(sender string) string {
	addr, err := mail.ParseAddress(sender)
	if err != nil {
		return ""
	}
	return addr.Address
}

func ackBody(evt email.EmailProcessedEvent) []byte {
	return []byte(fmt.Sprintf(
		"<p>We have received your request and classified it as "+
			"<b>%s / %s</b>.</p><p>Summary: %s</p>",
		evt.Category, evt.RequestType, evt.Summary))
}
