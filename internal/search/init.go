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

package search

import (
	"context"
	"sync"

	"github.com/ecodeclub/mailtriage/internal/search/internal/event"
	"github.com/ecodeclub/mailtriage/internal/search/internal/repository"
	"github.com/ecodeclub/mailtriage/internal/search/internal/repository/dao"
	"github.com/ecodeclub/mailtriage/internal/search/internal/service"
	mq "github.com/ecodeclub/mq-api"
	"github.com/olivere/elastic/v7"
)

var daoOnce = sync.Once{}

func InitIndexOnce(es *elastic.Client) {
	daoOnce.Do(func() {
		err := dao.InitES(es)
		if err != nil {
			panic(err)
		}
	})
}

func initEmailDAO(es *elastic.Client) dao.EmailDAO {
	InitIndexOnce(es)
	return dao.NewEmailElasticDAO(es)
}

func InitSyncSvc(es *elastic.Client) service.SyncService {
	InitIndexOnce(es)
	anyDAO := dao.NewAnyESDAO(es)
	anyRepo := repository.NewAnyRepo(anyDAO)
	return service.NewSyncService(anyRepo)
}

func initIndexConsumer(svc service.SyncService, q mq.MQ) *event.EmailIndexConsumer {
	c, err := event.NewEmailIndexConsumer(svc, q)
	if err != nil {
		panic(err)
	}
	c.Start(context.Background())
	return c
}
