package ai

type Module struct {
	// Svc 邮件分类 + 摘要
	Svc TriageService
	// LLMSvc 通用的 LLM 调用入口
	LLMSvc LLMService
	// AdminHandler 管理 biz 配置
	AdminHandler *AdminHandler
}
