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

package notify

import (
	"testing"

	"github.com/ecodeclub/mailtriage/internal/email"
	"github.com/stretchr/testify/assert"
)

func TestSenderAddress(t *testing.T) {
	assert.Equal(t, "alice@example.com", senderAddress("Alice <alice@example.com>"))
	assert.Equal(t, "bob@example.com", senderAddress("bob@example.com"))
	assert.Empty(t, senderAddress("not an address"))
	assert.Empty(t, senderAddress(""))
}

func TestAckBody(t *testing.T) {
	body := ackBody(email.EmailProcessedEvent{
		Category:    "Loan Services",
		RequestType: "Apply for Loan",
		Summary:     "Customer wants a loan",
	})
	assert.Contains(t, string(body), "Loan Services / Apply for Loan")
	assert.Contains(t, string(body), "Customer wants a loan")
}
