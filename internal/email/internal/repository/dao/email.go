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
	"errors"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/mailtriage/internal/email/internal/domain"
	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// ErrDataNotFound 通用的数据没找到
var ErrDataNotFound = gorm.ErrRecordNotFound

// ErrDuplicateEmail 同样内容的邮件已经处理过
var ErrDuplicateEmail = errors.New("邮件已经处理过")

//go:generate mockgen -source=./email.go -package=daomocks -destination=mocks/email.mock.go ProcessedEmailDAO
type ProcessedEmailDAO interface {
	Insert(ctx context.Context, e ProcessedEmail) (int64, error)
	FindByHash(ctx context.Context, hash string) (ProcessedEmail, error)
	FindById(ctx context.Context, id int64) (ProcessedEmail, error)
	List(ctx context.Context, offset, limit int) ([]ProcessedEmail, error)
	Count(ctx context.Context) (int64, error)
}

type GORMProcessedEmailDAO struct {
	db *egorm.Component
}

func NewGORMProcessedEmailDAO(db *egorm.Component) ProcessedEmailDAO {
	return &GORMProcessedEmailDAO{db: db}
}

func (dao *GORMProcessedEmailDAO) Insert(ctx context.Context, e ProcessedEmail) (int64, error) {
	now := time.Now().UnixMilli()
	e.Ctime = now
	e.Utime = now
	err := dao.db.WithContext(ctx).Create(&e).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return 0, ErrDuplicateEmail
		}
	}
	return e.Id, err
}

func (dao *GORMProcessedEmailDAO) FindByHash(ctx context.Context, hash string) (ProcessedEmail, error) {
	var res ProcessedEmail
	err := dao.db.WithContext(ctx).First(&res, "body_hash = ?", hash).Error
	return res, err
}

func (dao *GORMProcessedEmailDAO) FindById(ctx context.Context, id int64) (ProcessedEmail, error) {
	var res ProcessedEmail
	err := dao.db.WithContext(ctx).First(&res, "id = ?", id).Error
	return res, err
}

func (dao *GORMProcessedEmailDAO) List(ctx context.Context, offset, limit int) ([]ProcessedEmail, error) {
	var res []ProcessedEmail
	err := dao.db.WithContext(ctx).
		Order("id DESC").Offset(offset).Limit(limit).Find(&res).Error
	return res, err
}

func (dao *GORMProcessedEmailDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := dao.db.WithContext(ctx).Model(&ProcessedEmail{}).Count(&count).Error
	return count, err
}

type ProcessedEmail struct {
	Id      int64  `gorm:"primaryKey,autoIncrement"`
	Sender  string `gorm:"type:varchar(512)"`
	Subject string `gorm:"type:varchar(1024)"`
	Body    string `gorm:"type:longtext"`
	// BodyHash 是正文 + 附件文本算出来的 SHA-256，十六进制 64 个字符
	BodyHash    string                               `gorm:"type:varchar(64);uniqueIndex:unq_body_hash"`
	Attachments sqlx.JsonColumn[[]domain.Attachment] `gorm:"type:text"`
	Category    string                               `gorm:"type:varchar(128)"`
	RequestType string                               `gorm:"type:varchar(128)"`
	Summary     string                               `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}

func (ProcessedEmail) TableName() string {
	return "processed_emails"
}
