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

package domain

// IncomingEmail 解析 .eml 之后、分类之前的邮件
type IncomingEmail struct {
	Sender      string
	Subject     string
	Body        string
	Attachments []RawAttachment
}

// RawAttachment 附件的原始内容，还没有落盘
type RawAttachment struct {
	Filename string
	Content  []byte
}

// Email 处理完毕的邮件
type Email struct {
	Id      int64
	Sender  string
	Subject string
	Body    string
	// BodyHash 正文 + 附件文本的 SHA-256，用来去重
	BodyHash    string
	Attachments []Attachment
	Category    string
	RequestType string
	Summary     string
	// Duplicate 表示这封邮件之前处理过，本次直接复用此前的结果
	Duplicate bool
	Ctime     int64
	Utime     int64
}

// Attachment 已经落盘并提取过文本的附件
type Attachment struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
	Text     string `json:"text"`
}
