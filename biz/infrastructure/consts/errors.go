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
	ErrForbidden         = NewErrno(codes.PermissionDenied, errors.New("access denied"))
	ErrNotAuthentication = NewErrno(codes.Code(1000), errors.New("not authentication"))
	ErrSignUp            = NewErrno(codes.Code(1001), errors.New("sign up failed, please retry"))
	ErrSignIn            = NewErrno(codes.Code(1002), errors.New("incorrect email or password"))
	ErrEmailExists       = NewErrno(codes.AlreadyExists, errors.New("a user with this email already exists"))
	ErrInvalidRole       = NewErrno(codes.InvalidArgument, errors.New("role must be teacher or student"))

	ErrAssignmentNotFound = NewErrno(codes.NotFound, errors.New("assignment not found"))
	ErrSubmissionNotFound = NewErrno(codes.NotFound, errors.New("submission not found"))
	ErrUserNotFound       = NewErrno(codes.NotFound, errors.New("user not found"))

	// 作业状态机前置条件，提示语需要稳定，前端与测试都依赖
	ErrDueDateNotFuture      = NewErrno(codes.FailedPrecondition, errors.New("due date must be in the future"))
	ErrOnlyDraftUpdate       = NewErrno(codes.FailedPrecondition, errors.New("only draft assignments can be updated"))
	ErrOnlyDraftDelete       = NewErrno(codes.FailedPrecondition, errors.New("only draft assignments can be deleted"))
	ErrOnlyDraftPublish      = NewErrno(codes.FailedPrecondition, errors.New("only draft assignments can be published"))
	ErrOnlyPublishedComplete = NewErrno(codes.FailedPrecondition, errors.New("only published assignments can be completed"))

	// 条件更新落空，读到的状态已被并发修改，服务层翻译成对应的前置条件错误
	ErrStatusChanged = NewErrno(codes.FailedPrecondition, errors.New("assignment status has changed"))

	// 提交准入
	ErrNotAvailableForSubmission = NewErrno(codes.FailedPrecondition, errors.New("assignment not available for submission"))
	ErrDeadlinePassed            = NewErrno(codes.FailedPrecondition, errors.New("assignment submission deadline has passed"))
	ErrAlreadySubmitted          = NewErrno(codes.AlreadyExists, errors.New("already submitted"))
)

// ErrInvalidParams 调用时错误
var (
	ErrInvalidParams = NewErrno(codes.InvalidArgument, errors.New("invalid params"))
)

// 数据库相关错误
var (
	ErrNotFound        = NewErrno(codes.NotFound, errors.New("not found"))
	ErrInvalidObjectId = NewErrno(codes.InvalidArgument, errors.New("invalid id"))
	ErrUpdate          = NewErrno(codes.Code(2001), errors.New("update failed"))
)
