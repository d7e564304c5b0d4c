package util

import (
	"encoding/json"
	"errors"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"
)

// JSONF 将对象序列化为字符串，仅用于日志
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}

func Fail(err error) *studio.Response {
	var en *consts.Errno
	if errors.As(err, &en) {
		return &studio.Response{
			Code: int64(en.GRPCStatus().Code()),
			Msg:  en.Error(),
		}
	}
	return &studio.Response{
		Code: int64(consts.ErrCall.GRPCStatus().Code()),
		Msg:  err.Error(),
	}
}
