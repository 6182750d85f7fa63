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

//go:build wireinject

package email

import (
	"github.com/ecodeclub/mailtriage/internal/ai"
	"github.com/ecodeclub/mailtriage/internal/catalog"
	"github.com/ecodeclub/mailtriage/internal/email/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/email/internal/service"
	"github.com/ecodeclub/mailtriage/internal/email/internal/web"
	mq "github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, q mq.MQ,
	aiModule *ai.Module, catalogModule *catalog.Module) *Module {
	wire.Build(
		InitTablesOnce,
		initStorage,
		initRegistry,
		initProducer,
		initReportService,
		repository.NewProcessedEmailRepository,
		service.NewEmailParser,
		service.NewService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.FieldsOf(new(*ai.Module), "Svc"),
		wire.FieldsOf(new(*catalog.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
