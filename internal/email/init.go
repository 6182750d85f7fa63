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

package email

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"github.com/ecodeclub/mailtriage/internal/email/internal/event"
	"github.com/ecodeclub/mailtriage/internal/email/internal/repository/dao"
	"github.com/ecodeclub/mailtriage/internal/email/internal/service"
	"github.com/ecodeclub/mailtriage/internal/pkg/document"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ProcessedEmailDAO {
	once.Do(func() {
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
	return dao.NewGORMProcessedEmailDAO(db)
}

type config struct {
	AttachmentDir string `yaml:"attachmentDir"`
	// Node 雪花算法的节点 ID，多实例部署的时候各自配一个
	Node   int64 `yaml:"node"`
	Report struct {
		Template string `yaml:"template"`
		OutDir   string `yaml:"outDir"`
	} `yaml:"report"`
}

func loadConfig() config {
	cfg := config{
		AttachmentDir: "data/attachments",
		Node:          1,
	}
	cfg.Report.Template = "doc/report_template.docx"
	cfg.Report.OutDir = "data/reports"
	if err := econf.UnmarshalKey("email", &cfg); err != nil {
		panic(err)
	}
	return cfg
}

func initStorage() service.AttachmentStorage {
	cfg := loadConfig()
	node, err := snowflake.NewNode(cfg.Node)
	if err != nil {
		panic(err)
	}
	storage, err := service.NewDiskAttachmentStorage(cfg.AttachmentDir, node)
	if err != nil {
		panic(err)
	}
	return storage
}

func initRegistry() *document.Registry {
	return document.NewRegistry()
}

func initReportService(svc service.Service) service.ReportService {
	cfg := loadConfig()
	return service.NewReportService(svc, cfg.Report.Template, cfg.Report.OutDir)
}

func initProducer(q mq.MQ) event.EmailProcessedProducer {
	producer, err := event.NewEmailProcessedProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
