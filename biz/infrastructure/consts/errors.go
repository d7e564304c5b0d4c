package consts

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type Errno struct {
	err  error
	code codes.Code
}

// GRPCStatus 实现 GRPCStatus 方法
func (en *Errno) GRPCStatus() *status.Status {
	return status.New(en.code, en.err.Error())
}

// 实现 Error 方法
func (en *Errno) Error() string {
	return en.err.Error()
}

// NewErrno 创建自定义错误
func NewErrno(code codes.Code, err error) *Errno {
	return &Errno{
		err:  err,
		code: code,
	}
}

// 定义常量错误
var (
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("forbidden"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrCreateClassroom   = NewErrno(codes.Code(1101), errors.New("创建课程失败，请重试"))
	ErrUpdateClassroom   = NewErrno(codes.Code(1102), errors.New("更新课程失败，请重试"))
	ErrGetClassroom      = NewErrno(codes.Code(1103), errors.New("获取课程详情失败"))
	ErrAttachResource    = NewErrno(codes.Code(1104), errors.New("附件入库失败，请重试"))
	ErrInlineResource    = NewErrno(codes.Code(1105), errors.New("附件内容未上传，请先申请加签url上传后再提交"))
	ErrApplySignedUrl    = NewErrno(codes.Code(1106), errors.New("申请加签url失败，请重试"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("参数错误"))
	ErrCall          = NewErrno(codes.Unknown, errors.New("调用接口失败，请重试"))
)

// 数据库相关错误
var (
	ErrNotFound = NewErrno(codes.NotFound, errors.New("not found"))
	ErrUpdate   = NewErrno(codes.Code(2001), errors.New("更新失败"))
)
