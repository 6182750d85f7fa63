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

package catalog

import (
	"sync"
	"time"

	"github.com/ecodeclub/mailtriage/internal/catalog/internal/repository/dao"
	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

var once = &sync.Once{}

// defaultRequestTypes 初始类目，管理员可以在此基础上再增加
var defaultRequestTypes = [][2]string{
	{"Account Management", "Update Contact Details"},
	{"Account Management", "Close Account"},
	{"Transaction Issues", "Failed Transaction"},
	{"Transaction Issues", "Disputed Transaction"},
	{"Loan Services", "Apply for Loan"},
	{"Loan Services", "Loan Repayment Issues"},
	{"Credit Card Services", "Lost or Stolen Card"},
	{"Credit Card Services", "Request Credit Limit Increase"},
}

func InitTablesOnce(db *egorm.Component) dao.RequestTypeDAO {
	once.Do(func() {
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
		if err := seedRequestTypes(db); err != nil {
			panic(err)
		}
	})
	return dao.NewGORMRequestTypeDAO(db)
}

func seedRequestTypes(db *egorm.Component) error {
	now := time.Now().UnixMilli()
	rts := make([]dao.RequestType, 0, len(defaultRequestTypes))
	for _, pair := range defaultRequestTypes {
		rts = append(rts, dao.RequestType{
			Category: pair[0],
			Name:     pair[1],
			Ctime:    now,
			Utime:    now,
		})
	}
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "name"}},
		DoNothing: true,
	}).Create(&rts).Error
}
