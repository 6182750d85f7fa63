package errs

var (
	SystemError = ErrorCode{Code: 517001, Msg: "系统错误"}
	InvalidFile = ErrorCode{Code: 417001, Msg: "只支持 .eml 文件"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
