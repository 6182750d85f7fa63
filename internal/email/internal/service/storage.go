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
	"fmt"
	"os"
	"path/filepath"

	"github.com/bwmarrin/snowflake"
)

//go:generate mockgen -source=./storage.go -package=svcmocks -destination=mocks/storage.mock.go AttachmentStorage
type AttachmentStorage interface {
	Save(filename string, content []byte) (string, error)
}

// DiskAttachmentStorage 把附件存到本地目录。
// 文件名加上雪花 ID 前缀，同名附件不会互相覆盖。
type DiskAttachmentStorage struct {
	dir  string
	node *snowflake.Node
}

func NewDiskAttachmentStorage(dir string, node *snowflake.Node) (*DiskAttachmentStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("创建附件目录失败: %w", err)
	}
	return &DiskAttachmentStorage{dir: dir, node: node}, nil
}

func (s *DiskAttachmentStorage) Save(filename string, content []byte) (string, error) {
	// 丢掉上传方可能带上的路径部分
	name := filepath.Base(filename)
	path := filepath.Join(s.dir, fmt.Sprintf("%s_%s", s.node.Generate().String(), name))
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("保存附件 %s 失败: %w", name, err)
	}
	return path, nil
}
