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

package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/pkg/htmlx"
	"github.com/jhillyerd/enmime"
)

//go:generate mockgen -source=./parser.go -package=svcmocks -destination=mocks/parser.mock.go EmailParser
type EmailParser interface {
	Parse(r io.Reader) (domain.IncomingEmail, error)
}

type emailParser struct {
}

func NewEmailParser() EmailParser {
	return &emailParser{}
}

func (p *emailParser) Parse(r io.Reader) (domain.IncomingEmail, error) {
	env, err := enmime.ReadEnvelope(r)
	if err != nil {
		return domain.IncomingEmail{}, fmt.Errorf("解析 .eml 失败: %w", err)
	}
	res := domain.IncomingEmail{
		Sender:  env.GetHeader("From"),
		Subject: env.GetHeader("Subject"),
		Body:    strings.TrimSpace(env.Text),
	}
	// 只有 HTML 正文的邮件退化成纯文本
	if res.Body == "" && env.HTML != "" {
		res.Body = htmlx.CleanToText(env.HTML)
	}
	for _, att := range env.Attachments {
		if att.FileName == "" {
			continue
		}
		res.Attachments = append(res.Attachments, domain.RawAttachment{
			Filename: att.FileName,
			Content:  att.Content,
		})
	}
	return res, nil
}
