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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailParser_Parse(t *testing.T) {
	raw := strings.Join([]string{
		"From: Alice <alice@example.com>",
		"To: support@bank.example.com",
		"Subject: Failed transfer",
		"MIME-Version: 1.0",
		"Content-Type: multipart/mixed; boundary=\"b1\"",
		"",
		"--b1",
		"Content-Type: text/plain; charset=utf-8",
		"",
		"My transfer of $500 failed yesterday.",
		"--b1",
		"Content-Type: text/plain; charset=utf-8",
		"Content-Disposition: attachment; filename=\"details.txt\"",
		"",
		"Transaction ID: TX-123",
		"--b1--",
		"",
	}, "\r\n")

	p := NewEmailParser()
	got, err := p.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Alice <alice@example.com>", got.Sender)
	assert.Equal(t, "Failed transfer", got.Subject)
	assert.Equal(t, "My transfer of $500 failed yesterday.", got.Body)
	require.Len(t, got.Attachments, 1)
	assert.Equal(t, "details.txt", got.Attachments[0].Filename)
	assert.Equal(t, "Transaction ID: TX-123", strings.TrimSpace(string(got.Attachments[0].Content)))
}

func TestEmailParser_Parse_HTMLOnly(t *testing.T) {
	raw := strings.Join([]string{
		"From: bob@example.com",
		"Subject: Close my account",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=utf-8",
		"",
		"<html><body><p>Please close my account.</p></body></html>",
		"",
	}, "\r\n")

	p := NewEmailParser()
	got, err := p.Parse(strings.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, "Please close my account.", got.Body)
	assert.Empty(t, got.Attachments)
}

func TestEmailParser_Parse_Invalid(t *testing.T) {
	p := NewEmailParser()
	_, err := p.Parse(strings.NewReader(""))
	assert.Error(t, err)
}
