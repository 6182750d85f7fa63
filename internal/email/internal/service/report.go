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
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/lukasjarosch/go-docx"
)

//go:generate mockgen -source=./report.go -package=svcmocks -destination=mocks/report.mock.go ReportService
type ReportService interface {
	// Generate 生成一份 docx 格式的处理报告，返回文件路径
	Generate(ctx context.Context, limit int) (string, error)
}

type reportService struct {
	svc          Service
	templatePath string
	outDir       string
}

func NewReportService(svc Service, templatePath, outDir string) ReportService {
	return &reportService{
		svc:          svc,
		templatePath: templatePath,
		outDir:       outDir,
	}
}

func (s *reportService) Generate(ctx context.Context, limit int) (string, error) {
	emails, total, err := s.svc.List(ctx, 0, limit)
	if err != nil {
		return "", err
	}
	// 直接写入的方法只有商用包才有，退而求其次用模版替换生成 word 文档
	replaceMap := docx.PlaceholderMap{
		"generated_at": time.Now().Format(time.DateTime),
		"total":        fmt.Sprintf("%d", total),
		"breakdown":    s.breakdown(emails),
		"recent":       s.recent(emails),
	}
	doc, err := docx.Open(s.templatePath)
	if err != nil {
		return "", fmt.Errorf("打开模版docx文件失败: %w", err)
	}
	if err = doc.ReplaceAll(replaceMap); err != nil {
		return "", fmt.Errorf("替换元素失败: %w", err)
	}
	if err = os.MkdirAll(s.outDir, 0o755); err != nil {
		return "", fmt.Errorf("创建报告目录失败: %w", err)
	}
	out := filepath.Join(s.outDir,
		fmt.Sprintf("triage_report_%s.docx", time.Now().Format("20060102_150405")))
	if err = doc.WriteToFile(out); err != nil {
		return "", fmt.Errorf("写入报告失败: %w", err)
	}
	return out, nil
}

func (s *reportService) breakdown(emails []domain.Email) string {
	counts := make(map[string]int)
	order := make([]string, 0, len(emails))
	for _, e := range emails {
		key := fmt.Sprintf("%s / %s", e.Category, e.RequestType)
		if _, ok := counts[key]; !ok {
			order = append(order, key)
		}
		counts[key]++
	}
	lines := make([]string, 0, len(order))
	for _, key := range order {
		lines = append(lines, fmt.Sprintf("%s: %d", key, counts[key]))
	}
	return strings.Join(lines, "\n")
}

func (s *reportService) recent(emails []domain.Email) string {
	lines := make([]string, 0, len(emails))
	for _, e := range emails {
		lines = append(lines, fmt.Sprintf("[%s] %s - %s",
			e.Category, e.Subject, e.Summary))
	}
	return strings.Join(lines, "\n")
}
