package service

import (
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/assignment"
	"assignment-hub/biz/infrastructure/repository/user"
)

type assignmentOp int

const (
	opUpdateAssignment assignmentOp = iota
	opDeleteAssignment
	opPublishAssignment
	opCompleteAssignment
	opListSubmissions
)

// statusPrecondition 各写操作的状态前置条件
// publish/complete 走状态机转移表，update/delete 只允许草稿
var statusPrecondition = map[assignmentOp]func(assignment.Status) error{
	opUpdateAssignment: func(st assignment.Status) error {
		if st != assignment.StatusDraft {
			return consts.ErrOnlyDraftUpdate
		}
		return nil
	},
	opDeleteAssignment: func(st assignment.Status) error {
		if st != assignment.StatusDraft {
			return consts.ErrOnlyDraftDelete
		}
		return nil
	},
	opPublishAssignment: func(st assignment.Status) error {
		if !st.CanTransitionTo(assignment.StatusPublished) {
			return consts.ErrOnlyDraftPublish
		}
		return nil
	},
	opCompleteAssignment: func(st assignment.Status) error {
		if !st.CanTransitionTo(assignment.StatusCompleted) {
			return consts.ErrOnlyPublishedComplete
		}
		return nil
	},
}

// staleStatusErr 条件写落空说明状态已被并发推进，对外仍给该操作的前置条件错误
var staleStatusErr = map[assignmentOp]error{
	opUpdateAssignment:   consts.ErrOnlyDraftUpdate,
	opDeleteAssignment:   consts.ErrOnlyDraftDelete,
	opPublishAssignment:  consts.ErrOnlyDraftPublish,
	opCompleteAssignment: consts.ErrOnlyPublishedComplete,
}

// authorizeAssignmentWrite 作业写操作统一鉴权
// 判定顺序固定: 角色 -> 归属 -> 状态前置条件
// 存在性由调用方加载实体时保证，顺序不可调换，外部可通过错误类型区分
func authorizeAssignmentWrite(u *user.User, a *assignment.Assignment, op assignmentOp) error {
	if u.Role != consts.RoleTeacher {
		return consts.ErrForbidden
	}
	if a.TeacherID != u.ID.Hex() {
		return consts.ErrForbidden
	}
	if check, ok := statusPrecondition[op]; ok {
		return check(a.Status)
	}
	return nil
}

// canViewAssignment 读可见性: published 所有已登录用户可见，其余仅归属老师可见
func canViewAssignment(u *user.User, a *assignment.Assignment) bool {
	if a.Status == assignment.StatusPublished {
		return true
	}
	return u.Role == consts.RoleTeacher && a.TeacherID == u.ID.Hex()
}
