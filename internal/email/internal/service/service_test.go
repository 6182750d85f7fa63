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
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ecodeclub/mailtriage/internal/ai"
	"github.com/ecodeclub/mailtriage/internal/catalog"
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/email/internal/event"
	"github.com/ecodeclub/mailtriage/internal/email/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeParser struct {
	res domain.IncomingEmail
}

func (f *fakeParser) Parse(r io.Reader) (domain.IncomingEmail, error) {
	return f.res, nil
}

type fakeStorage struct {
	dir string
}

func (f *fakeStorage) Save(filename string, content []byte) (string, error) {
	return filepath.Join(f.dir, filename), nil
}

type fakeCatalog struct {
	rts []catalog.RequestType
}

func (f *fakeCatalog) List(ctx context.Context) ([]catalog.RequestType, error) {
	return f.rts, nil
}

func (f *fakeCatalog) Save(ctx context.Context, rt catalog.RequestType) (int64, error) {
	return 0, nil
}

type fakeTriage struct {
	gotContent string
	gotOptions []ai.TriageOption
	res        ai.Triage
	err        error
}

func (f *fakeTriage) Classify(ctx context.Context, uid int64,
	content string, options []ai.TriageOption) (ai.Triage, error) {
	f.gotContent = content
	f.gotOptions = options
	return f.res, f.err
}

type fakeRepo struct {
	byHash  map[string]domain.Email
	created []domain.Email
}

func (f *fakeRepo) Create(ctx context.Context, e domain.Email) (int64, error) {
	f.created = append(f.created, e)
	return int64(len(f.created)), nil
}

func (f *fakeRepo) FindByHash(ctx context.Context, hash string) (domain.Email, error) {
	if e, ok := f.byHash[hash]; ok {
		return e, nil
	}
	return domain.Email{}, repository.ErrDataNotFound
}

func (f *fakeRepo) FindById(ctx context.Context, id int64) (domain.Email, error) {
	return domain.Email{}, repository.ErrDataNotFound
}

func (f *fakeRepo) List(ctx context.Context, offset, limit int) ([]domain.Email, error) {
	return f.created, nil
}

func (f *fakeRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.created)), nil
}

type fakeProducer struct {
	evts []event.EmailProcessedEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.EmailProcessedEvent) error {
	f.evts = append(f.evts, evt)
	return nil
}

func newTestService(parser EmailParser, triage *fakeTriage,
	repo *fakeRepo, producer *fakeProducer, dir string) Service {
	return NewService(parser,
		&fakeStorage{dir: dir},
		document.NewRegistry(),
		&fakeCatalog{rts: []catalog.RequestType{
			{Category: "Loan Services", Name: "Apply for Loan"},
		}},
		triage,
		repo,
		producer)
}

func TestService_Process(t *testing.T) {
	dir := t.TempDir()
	parser := &fakeParser{res: domain.IncomingEmail{
		Sender:  "alice@example.com",
		Subject: "Need a loan",
		Body:    "I would like to apply for a loan.",
	}}
	triage := &fakeTriage{res: ai.Triage{
		Category:    "Loan Services",
		RequestType: "Apply for Loan",
		Summary:     "Customer wants a loan",
	}}
	repo := &fakeRepo{byHash: map[string]domain.Email{}}
	producer := &fakeProducer{}
	svc := newTestService(parser, triage, repo, producer, dir)

	res, err := svc.Process(context.Background(), strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Id)
	assert.False(t, res.Duplicate)
	assert.Equal(t, "Loan Services", res.Category)
	assert.Equal(t, "Customer wants a loan", res.Summary)
	// 给 LLM 的内容带固定的标签格式
	assert.Equal(t,
		"Email Body:\nI would like to apply for a loan.\n\nAttachments:\n",
		triage.gotContent)
	require.Len(t, triage.gotOptions, 1)
	assert.Equal(t, "Apply for Loan", triage.gotOptions[0].RequestType)
	require.Len(t, producer.evts, 1)
	assert.Equal(t, "Need a loan", producer.evts[0].Subject)

	h := sha256.Sum256([]byte("I would like to apply for a loan."))
	assert.Equal(t, hex.EncodeToString(h[:]), res.BodyHash)
}

func TestService_Process_Duplicate(t *testing.T) {
	dir := t.TempDir()
	body := "Please close my account."
	hash := contentHash(body, nil)
	parser := &fakeParser{res: domain.IncomingEmail{
		Sender: "bob@example.com",
		Body:   body,
	}}
	triage := &fakeTriage{}
	repo := &fakeRepo{byHash: map[string]domain.Email{
		hash: {
			Id:       7,
			BodyHash: hash,
			Category: "Account Management",
			Summary:  "Close the account",
		},
	}}
	producer := &fakeProducer{}
	svc := newTestService(parser, triage, repo, producer, dir)

	res, err := svc.Process(context.Background(), strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.True(t, res.Duplicate)
	assert.Equal(t, int64(7), res.Id)
	// 重复提交既不会再打 LLM，也不会再发事件
	assert.Empty(t, triage.gotContent)
	assert.Empty(t, repo.created)
	assert.Empty(t, producer.evts)
}

func TestService_Process_LLMError(t *testing.T) {
	dir := t.TempDir()
	parser := &fakeParser{res: domain.IncomingEmail{
		Sender: "carol@example.com",
		Body:   "My card was stolen.",
	}}
	mockErr := errors.New("模拟 LLM 失败")
	triage := &fakeTriage{err: mockErr}
	repo := &fakeRepo{byHash: map[string]domain.Email{}}
	producer := &fakeProducer{}
	svc := newTestService(parser, triage, repo, producer, dir)

	_, err := svc.Process(context.Background(), strings.NewReader("ignored"))
	assert.ErrorIs(t, err, mockErr)
	// 分类失败不能留下任何记录，下次重试还要走完整流程
	assert.Empty(t, repo.created)
	assert.Empty(t, producer.evts)
}

func TestContentHash(t *testing.T) {
	h1 := contentHash("body", []string{"a", "b"})
	h2 := contentHash("body", []string{"a", "b"})
	assert.Equal(t, h1, h2)
	assert.NotEqual(t, h1, contentHash("body", []string{"a"}))
	assert.Len(t, h1, 64)
}
