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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type RequestTypeDAO interface {
	List(ctx context.Context) ([]RequestType, error)
	Save(ctx context.Context, rt RequestType) (int64, error)
}

type GORMRequestTypeDAO struct {
	db *egorm.Component
}

func NewGORMRequestTypeDAO(db *egorm.Component) RequestTypeDAO {
	return &GORMRequestTypeDAO{db: db}
}

func (dao *GORMRequestTypeDAO) List(ctx context.Context) ([]RequestType, error) {
	var res []RequestType
	err := dao.db.WithContext(ctx).
		Order("category ASC, name ASC").Find(&res).Error
	return res, err
}

// Save 依赖 (category, name) 上的唯一索引，重复保存是幂等的
func (dao *GORMRequestTypeDAO) Save(ctx context.Context, rt RequestType) (int64, error) {
	now := time.Now().UnixMilli()
	rt.Ctime = now
	rt.Utime = now
	err := dao.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}, {Name: "name"}},
		DoNothing: true,
	}).Create(&rt).Error
	return rt.Id, err
}

type RequestType struct {
	Id       int64  `gorm:"primaryKey,autoIncrement"`
	Category string `gorm:"type:varchar(128);uniqueIndex:unq_category_name"`
	Name     string `gorm:"type:varchar(128);uniqueIndex:unq_category_name"`
	Ctime    int64
	Utime    int64
}

func (RequestType) TableName() string {
	return "request_types"
}
