package util

import (
	"encoding/json"
	"fmt"

	"assignment-hub/biz/application/dto/assign/show"
)

// JSONF 序列化为json字符串，用于日志打印
func JSONF(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%+v", v)
	}
	return string(data)
}

func Succeed(msg string) (*show.Response, error) {
	return &show.Response{Code: 0, Msg: msg}, nil
}

func Fail(code int64, msg string) *show.Response {
	return &show.Response{Code: code, Msg: msg}
}
