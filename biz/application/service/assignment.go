package service

import (
	"context"
	"time"

	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/cache"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/assignment"
	"assignment-hub/biz/infrastructure/repository/submission"
	"assignment-hub/biz/infrastructure/repository/user"
	"assignment-hub/biz/infrastructure/util"
	"assignment-hub/biz/infrastructure/util/log"
	pageutil "assignment-hub/biz/infrastructure/util/page"

	"github.com/google/wire"
	"github.com/samber/lo"
)

type IAssignmentService interface {
	CreateAssignment(ctx context.Context, req *show.CreateAssignmentReq) (*show.CreateAssignmentResp, error)
	ListAssignments(ctx context.Context, req *show.ListAssignmentsReq) (*show.ListAssignmentsResp, error)
	GetAssignment(ctx context.Context, req *show.GetAssignmentReq) (*show.GetAssignmentResp, error)
	UpdateAssignment(ctx context.Context, req *show.UpdateAssignmentReq) (*show.UpdateAssignmentResp, error)
	DeleteAssignment(ctx context.Context, req *show.DeleteAssignmentReq) (*show.Response, error)
	PublishAssignment(ctx context.Context, req *show.PublishAssignmentReq) (*show.PublishAssignmentResp, error)
	CompleteAssignment(ctx context.Context, req *show.CompleteAssignmentReq) (*show.CompleteAssignmentResp, error)
	ListAssignmentSubmissions(ctx context.Context, req *show.ListAssignmentSubmissionsReq) (*show.ListAssignmentSubmissionsResp, error)
}

type AssignmentService struct {
	AssignmentMapper assignment.IMongoMapper
	SubmissionMapper submission.IMongoMapper
	UserMapper       user.IMongoMapper
	DetailCache      cache.IDetailCacheMapper
}

var AssignmentServiceSet = wire.NewSet(
	wire.Struct(new(AssignmentService), "*"),
	wire.Bind(new(IAssignmentService), new(*AssignmentService)),
)

// CreateAssignment 老师创建作业，初始状态为草稿
func (s *AssignmentService) CreateAssignment(ctx context.Context, req *show.CreateAssignmentReq) (*show.CreateAssignmentResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if u.Role != consts.RoleTeacher {
		return nil, consts.ErrForbidden
	}

	dueDate := time.Unix(req.DueDate, 0)
	if !dueDate.After(time.Now()) {
		return nil, consts.ErrDueDateNotFuture
	}

	a := &assignment.Assignment{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Status:      assignment.StatusDraft,
		TeacherID:   u.ID.Hex(),
	}
	if err = s.AssignmentMapper.Insert(ctx, a); err != nil {
		log.CtxError(ctx, "create assignment failed: %v", err)
		return nil, err
	}

	return &show.CreateAssignmentResp{Assignment: assignmentInfo(a, u)}, nil
}

// ListAssignments 老师看自己名下全部作业，学生只看已发布作业，都按创建时间倒序
func (s *AssignmentService) ListAssignments(ctx context.Context, req *show.ListAssignmentsReq) (*show.ListAssignmentsResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)

	if u.Role == consts.RoleTeacher {
		assignments, total, err := s.AssignmentMapper.FindByTeacher(ctx, u.ID.Hex(), page, pageSize)
		if err != nil {
			return nil, err
		}
		infos := lo.Map(assignments, func(a *assignment.Assignment, _ int) *show.AssignmentInfo {
			return assignmentInfo(a, u)
		})
		return &show.ListAssignmentsResp{Assignments: infos, Total: total}, nil
	}

	assignments, total, err := s.AssignmentMapper.FindByStatus(ctx, assignment.StatusPublished, page, pageSize)
	if err != nil {
		return nil, err
	}
	infos := make([]*show.AssignmentInfo, 0, len(assignments))
	teachers := make(map[string]*user.User)
	for _, a := range assignments {
		t, ok := teachers[a.TeacherID]
		if !ok {
			t, err = s.UserMapper.FindOne(ctx, a.TeacherID)
			if err != nil {
				t = nil
			}
			teachers[a.TeacherID] = t
		}
		infos = append(infos, assignmentInfo(a, t))
	}
	return &show.ListAssignmentsResp{Assignments: infos, Total: total}, nil
}

// GetAssignment 获取作业详情，草稿和已结束的作业仅归属老师可见
func (s *AssignmentService) GetAssignment(ctx context.Context, req *show.GetAssignmentReq) (*show.GetAssignmentResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrAssignmentNotFound
	}
	if !canViewAssignment(u, a) {
		return nil, consts.ErrForbidden
	}

	// 详情缓存只省老师信息那次查询，鉴权必须在命中前完成
	if cached, err := s.DetailCache.Get(ctx, req.Id); err == nil {
		return &show.GetAssignmentResp{Assignment: cached}, nil
	}

	teacher, err := s.UserMapper.FindOne(ctx, a.TeacherID)
	if err != nil {
		teacher = nil
	}
	info := assignmentInfo(a, teacher)
	if err := s.DetailCache.Set(ctx, req.Id, info); err != nil {
		log.CtxError(ctx, "cache assignment detail failed: %v", err)
	}
	return &show.GetAssignmentResp{Assignment: info}, nil
}

// UpdateAssignment 仅归属老师可改，仅草稿可改
func (s *AssignmentService) UpdateAssignment(ctx context.Context, req *show.UpdateAssignmentReq) (*show.UpdateAssignmentResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrAssignmentNotFound
	}
	if err = authorizeAssignmentWrite(u, a, opUpdateAssignment); err != nil {
		return nil, err
	}

	if req.Title != nil {
		a.Title = *req.Title
	}
	if req.Description != nil {
		a.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate := time.Unix(*req.DueDate, 0)
		if !dueDate.After(time.Now()) {
			return nil, consts.ErrDueDateNotFuture
		}
		a.DueDate = dueDate
	}

	if err = s.AssignmentMapper.Update(ctx, a, assignment.StatusDraft); err != nil {
		if err == consts.ErrStatusChanged {
			return nil, staleStatusErr[opUpdateAssignment]
		}
		log.CtxError(ctx, "update assignment failed: %v", err)
		return nil, err
	}
	s.invalidateDetail(ctx, req.Id)

	return &show.UpdateAssignmentResp{Assignment: assignmentInfo(a, u)}, nil
}

// DeleteAssignment 仅草稿可删，物理删除
// 草稿不可能有提交，无需级联清理
func (s *AssignmentService) DeleteAssignment(ctx context.Context, req *show.DeleteAssignmentReq) (*show.Response, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrAssignmentNotFound
	}
	if err = authorizeAssignmentWrite(u, a, opDeleteAssignment); err != nil {
		return nil, err
	}

	if err = s.AssignmentMapper.Delete(ctx, req.Id, assignment.StatusDraft); err != nil {
		if err == consts.ErrStatusChanged {
			return nil, staleStatusErr[opDeleteAssignment]
		}
		log.CtxError(ctx, "delete assignment failed: %v", err)
		return nil, err
	}
	s.invalidateDetail(ctx, req.Id)

	return util.Succeed("删除成功")
}

// PublishAssignment 草稿 -> 已发布
func (s *AssignmentService) PublishAssignment(ctx context.Context, req *show.PublishAssignmentReq) (*show.PublishAssignmentResp, error) {
	a, u, err := s.transition(ctx, req.Id, opPublishAssignment, assignment.StatusPublished)
	if err != nil {
		return nil, err
	}
	return &show.PublishAssignmentResp{Assignment: assignmentInfo(a, u)}, nil
}

// CompleteAssignment 已发布 -> 已结束
func (s *AssignmentService) CompleteAssignment(ctx context.Context, req *show.CompleteAssignmentReq) (*show.CompleteAssignmentResp, error) {
	a, u, err := s.transition(ctx, req.Id, opCompleteAssignment, assignment.StatusCompleted)
	if err != nil {
		return nil, err
	}
	return &show.CompleteAssignmentResp{Assignment: assignmentInfo(a, u)}, nil
}

// transition 作业状态推进的公共流程: 加载 -> 鉴权 -> 查表转移 -> 条件落库
// 落库按鉴权时读到的状态做条件更新，并发下输掉的一方拿前置条件错误
func (s *AssignmentService) transition(ctx context.Context, id string, op assignmentOp, to assignment.Status) (*assignment.Assignment, *user.User, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, id)
	if err != nil {
		return nil, nil, consts.ErrAssignmentNotFound
	}
	if err = authorizeAssignmentWrite(u, a, op); err != nil {
		return nil, nil, err
	}

	from := a.Status
	a.Status = to
	if err = s.AssignmentMapper.Update(ctx, a, from); err != nil {
		if err == consts.ErrStatusChanged {
			return nil, nil, staleStatusErr[op]
		}
		log.CtxError(ctx, "transition assignment to %s failed: %v", to, err)
		return nil, nil, err
	}
	s.invalidateDetail(ctx, id)
	return a, u, nil
}

// ListAssignmentSubmissions 老师查看自己作业下的全部提交，按提交时间倒序
func (s *AssignmentService) ListAssignmentSubmissions(ctx context.Context, req *show.ListAssignmentSubmissionsReq) (*show.ListAssignmentSubmissionsResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrAssignmentNotFound
	}
	if err = authorizeAssignmentWrite(u, a, opListSubmissions); err != nil {
		return nil, err
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	submissions, total, err := s.SubmissionMapper.FindByAssignment(ctx, req.Id, page, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]*show.SubmissionInfo, 0, len(submissions))
	students := make(map[string]*user.User)
	for _, sub := range submissions {
		info := submissionInfo(sub)
		st, ok := students[sub.StudentID]
		if !ok {
			st, err = s.UserMapper.FindOne(ctx, sub.StudentID)
			if err != nil {
				st = nil
			}
			students[sub.StudentID] = st
		}
		fillStudent(info, st)
		fillAssignment(info, a)
		infos = append(infos, info)
	}

	return &show.ListAssignmentSubmissionsResp{Submissions: infos, Total: total}, nil
}

func (s *AssignmentService) invalidateDetail(ctx context.Context, id string) {
	if err := s.DetailCache.Delete(ctx, id); err != nil {
		log.CtxError(ctx, "invalidate assignment detail cache failed: %v", err)
	}
}
