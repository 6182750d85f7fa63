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
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
)

const EmailProcessedTopic = "email_processed_events"

// EmailProcessedEvent 处理完一封邮件之后发出去，搜索等下游各取所需
type EmailProcessedEvent struct {
	Id          int64  `json:"id"`
	Sender      string `json:"sender"`
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	Category    string `json:"category"`
	RequestType string `json:"request_type"`
	Summary     string `json:"summary"`
	Utime       int64  `json:"utime"`
}

func NewEmailProcessedEvent(e domain.Email) EmailProcessedEvent {
	return EmailProcessedEvent{
		Id:          e.Id,
		Sender:      e.Sender,
		Subject:     e.Subject,
		Body:        e.Body,
		Category:    e.Category,
		RequestType: e.RequestType,
		Summary:     e.Summary,
		Utime:       e.Utime,
	}
}
