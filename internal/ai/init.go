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

package ai

import (
	"fmt"
	"sync"

	"github.com/ecodeclub/mailtriage/internal/ai/internal/domain"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/repository/dao"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/biz"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/config"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/log"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/platform/mistral"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/platform/zhipu"
	"github.com/ecodeclub/mailtriage/internal/ai/internal/service/llm/handler/record"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"gorm.io/gorm/clause"
)

// defaultTriagePrompt 默认的分类 prompt，第一个 %s 是类目列表，第二个是邮件内容
const defaultTriagePrompt = `Classify the following bank customer query into a request type and sub-request type using the available categories below. Then generate a brief summary.
Available Request Types and Sub-Requests:
%s

Query: %s
Provide the response in JSON format with keys: request_type, sub_request_type, summary.`

var initTableOnce sync.Once

func initTables(db *egorm.Component) {
	initTableOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		// 种一条默认的分类配置，已经有就不动
		err = db.Clauses(clause.OnConflict{DoNothing: true}).Create(&dao.BizConfig{
			Biz:            domain.BizEmailTriage,
			MaxInput:       4000,
			Model:          "mistral-7b-instruct",
			PromptTemplate: defaultTriagePrompt,
		}).Error
		if err != nil {
			panic(err)
		}
	})
}

func initConfigDAO(db *egorm.Component) dao.ConfigDAO {
	initTables(db)
	return dao.NewGORMConfigDAO(db)
}

func initRecordDAO(db *egorm.Component) dao.LLMRecordDAO {
	initTables(db)
	return dao.NewGORMLLMRecordDAO(db)
}

// initRootHandler 组装调用链：配置 -> prompt 拼接 -> 日志 -> 记录 -> 平台
func initRootHandler(configRepo repository.ConfigRepository,
	recordRepo repository.LLMRecordRepo) handler.Handler {
	platform := initPlatform()
	chain := handler.NewCompositionHandler([]handler.Builder{
		config.NewHandler(configRepo),
		biz.NewEmailTriageBizHandlerBuilder(),
		log.NewHandler(),
		record.NewHandler(recordRepo),
	}, platform)
	return biz.NewHandler(map[string]handler.Handler{
		domain.BizEmailTriage: chain,
	})
}

// initPlatform 根据配置选平台，默认走兼容 OpenAI 协议的 Mistral
func initPlatform() handler.Handler {
	type Config struct {
		Platform string `yaml:"platform"`
		Zhipu    struct {
			APIKey string `yaml:"apikey"`
		} `yaml:"zhipu"`
		Mistral struct {
			BaseURL string `yaml:"baseURL"`
			APIKey  string `yaml:"apikey"`
		} `yaml:"mistral"`
	}
	var cfg Config
	err := econf.UnmarshalKey("ai", &cfg)
	if err != nil {
		panic(fmt.Errorf("读取 AI 配置失败: %w", err))
	}
	switch cfg.Platform {
	case "zhipu":
		h, err := zhipu.NewHandler(cfg.Zhipu.APIKey)
		if err != nil {
			panic(fmt.Errorf("初始化智谱客户端失败: %w", err))
		}
		return h
	default:
		return mistral.NewHandler(cfg.Mistral.BaseURL, cfg.Mistral.APIKey)
	}
}
