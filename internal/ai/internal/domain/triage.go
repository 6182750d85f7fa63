package domain

// Triage 一封邮件的分类结果
type Triage struct {
	// 请求大类，比如 Loan Services
	Category string `json:"request_type"`
	// 具体请求类型，比如 Apply for Loan
	RequestType string `json:"sub_request_type"`
	// 邮件摘要
	Summary string `json:"summary"`
	// 本次调用花费的金额
	Amount int64 `json:"-"`
}

const (
	// UnknownCategory LLM 没有给出分类时的兜底值
	UnknownCategory = "Unknown"
	// NoSummary LLM 没有给出摘要时的兜底值
	NoSummary = "No summary provided"
)
