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
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/mailtriage/internal/ai"
	"github.com/ecodeclub/mailtriage/internal/catalog"
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/email/internal/event"
	"github.com/ecodeclub/mailtriage/internal/email/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/pkg/document"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

// 入口是上传接口，没有真实用户身份
const systemUid int64 = -1

//go:generate mockgen -source=./service.go -package=svcmocks -destination=mocks/service.mock.go Service
type Service interface {
	// Process 处理一封 .eml 邮件。
	// 内容完全相同的邮件只会触发一次 LLM 调用，
	// 后续的重复提交直接返回第一次的结果，并把 Duplicate 置为 true。
	Process(ctx context.Context, r io.Reader) (domain.Email, error)
	List(ctx context.Context, offset, limit int) ([]domain.Email, int64, error)
	Detail(ctx context.Context, id int64) (domain.Email, error)
}

type service struct {
	parser     EmailParser
	storage    AttachmentStorage
	extractors *document.Registry
	catalogSvc catalog.Service
	triageSvc  ai.TriageService
	repo       repository.ProcessedEmailRepository
	producer   event.EmailProcessedProducer
	logger     *elog.Component
}

func NewService(parser EmailParser,
	storage AttachmentStorage,
	extractors *document.Registry,
	catalogSvc catalog.Service,
	triageSvc ai.TriageService,
	repo repository.ProcessedEmailRepository,
	producer event.EmailProcessedProducer) Service {
	return &service{
		parser:     parser,
		storage:    storage,
		extractors: extractors,
		catalogSvc: catalogSvc,
		triageSvc:  triageSvc,
		repo:       repo,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) Process(ctx context.Context, r io.Reader) (domain.Email, error) {
	incoming, err := s.parser.Parse(r)
	if err != nil {
		return domain.Email{}, err
	}
	atts, err := s.saveAttachments(incoming.Attachments)
	if err != nil {
		return domain.Email{}, err
	}
	texts := slice.Map(atts, func(idx int, src domain.Attachment) string {
		return src.Text
	})
	hash := contentHash(incoming.Body, texts)

	// 先查重，重复的邮件不再打 LLM
	existing, err := s.repo.FindByHash(ctx, hash)
	if err == nil {
		existing.Duplicate = true
		return existing, nil
	}
	if !errors.Is(err, repository.ErrDataNotFound) {
		return domain.Email{}, err
	}

	triage, err := s.classify(ctx, incoming.Body, texts)
	if err != nil {
		return domain.Email{}, err
	}

	res := domain.Email{
		Sender:      incoming.Sender,
		Subject:     incoming.Subject,
		Body:        incoming.Body,
		BodyHash:    hash,
		Attachments: atts,
		Category:    triage.Category,
		RequestType: triage.RequestType,
		Summary:     triage.Summary,
	}
	id, err := s.repo.Create(ctx, res)
	if errors.Is(err, repository.ErrDuplicateEmail) {
		// 并发提交同一封邮件，另一个请求先落库了
		existing, err = s.repo.FindByHash(ctx, hash)
		if err != nil {
			return domain.Email{}, err
		}
		existing.Duplicate = true
		return existing, nil
	}
	if err != nil {
		return domain.Email{}, err
	}
	res.Id = id

	evt := event.NewEmailProcessedEvent(res)
	if err = s.producer.Produce(ctx, evt); err != nil {
		// 发送失败不影响处理结果，等搜索那边自己补数据
		s.logger.Error("发送邮件处理完成事件失败",
			elog.FieldErr(err), elog.Int64("id", id))
	}
	return res, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Email, int64, error) {
	var (
		eg    errgroup.Group
		es    []domain.Email
		total int64
	)
	eg.Go(func() error {
		var err error
		es, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	return es, total, nil
}

func (s *service) Detail(ctx context.Context, id int64) (domain.Email, error) {
	return s.repo.FindById(ctx, id)
}

func (s *service) saveAttachments(raws []domain.RawAttachment) ([]domain.Attachment, error) {
	res := make([]domain.Attachment, 0, len(raws))
	for _, raw := range raws {
		path, err := s.storage.Save(raw.Filename, raw.Content)
		if err != nil {
			return nil, err
		}
		res = append(res, domain.Attachment{
			Filename: raw.Filename,
			Path:     path,
		})
	}
	// 并发提取文本，PDF 可能比较慢
	var eg errgroup.Group
	for i := range res {
		eg.Go(func() error {
			res[i].Text = s.extractors.Extract(res[i].Path)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) classify(ctx context.Context,
	body string, texts []string) (ai.Triage, error) {
	rts, err := s.catalogSvc.List(ctx)
	if err != nil {
		return ai.Triage{}, fmt.Errorf("获取请求类型列表失败: %w", err)
	}
	options := slice.Map(rts, func(idx int, src catalog.RequestType) ai.TriageOption {
		return ai.TriageOption{
			Category:    src.Category,
			RequestType: src.Name,
		}
	})
	content := fmt.Sprintf("Email Body:\n%s\n\nAttachments:\n%s",
		body, strings.Join(texts, "\n\n"))
	return s.triageSvc.Classify(ctx, systemUid, content, options)
}

// contentHash 对正文和附件文本整体求 SHA-256，作为去重的 key
func contentHash(body string, texts []string) string {
	h := sha256.New()
	h.Write([]byte(body))
	h.Write([]byte(strings.Join(texts, "\n")))
	return hex.EncodeToString(h.Sum(nil))
}
