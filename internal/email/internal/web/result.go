package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/mailtriage/internal/email/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidFileResult = ginx.Result{
		Code: errs.InvalidFile.Code,
		Msg:  errs.InvalidFile.Msg,
	}
)
