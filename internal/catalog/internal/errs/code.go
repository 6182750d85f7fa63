package errs

var (
	SystemError  = ErrorCode{Code: 516001, Msg: "系统错误"}
	InvalidInput = ErrorCode{Code: 416001, Msg: "类目或者请求类型不能为空"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
