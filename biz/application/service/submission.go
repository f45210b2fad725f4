package service

import (
	"context"
	"time"

	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/assignment"
	"assignment-hub/biz/infrastructure/repository/submission"
	"assignment-hub/biz/infrastructure/repository/user"
	"assignment-hub/biz/infrastructure/util"
	"assignment-hub/biz/infrastructure/util/log"
	pageutil "assignment-hub/biz/infrastructure/util/page"

	"github.com/google/wire"
)

type ISubmissionService interface {
	SubmitAnswer(ctx context.Context, req *show.SubmitAnswerReq) (*show.SubmitAnswerResp, error)
	ListMySubmissions(ctx context.Context, req *show.ListMySubmissionsReq) (*show.ListMySubmissionsResp, error)
	GetSubmission(ctx context.Context, req *show.GetSubmissionReq) (*show.GetSubmissionResp, error)
	ReviewSubmission(ctx context.Context, req *show.ReviewSubmissionReq) (*show.ReviewSubmissionResp, error)
}

type SubmissionService struct {
	AssignmentMapper assignment.IMongoMapper
	SubmissionMapper submission.IMongoMapper
	UserMapper       user.IMongoMapper
	NotifyClient     util.INotifyClient
}

var SubmissionServiceSet = wire.NewSet(
	wire.Struct(new(SubmissionService), "*"),
	wire.Bind(new(ISubmissionService), new(*SubmissionService)),
)

// SubmitAnswer 学生提交作业答案
// 校验顺序: 角色 -> 作业存在 -> 作业可提交 -> 截止时间 -> 重复提交
// 最后的唯一索引兜底并发下的重复提交
func (s *SubmissionService) SubmitAnswer(ctx context.Context, req *show.SubmitAnswerReq) (*show.SubmitAnswerResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if u.Role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	a, err := s.AssignmentMapper.FindOne(ctx, req.AssignmentId)
	if err != nil {
		return nil, consts.ErrAssignmentNotFound
	}
	if a.Status != assignment.StatusPublished {
		return nil, consts.ErrNotAvailableForSubmission
	}
	if deadlinePassed(time.Now(), a.DueDate) {
		return nil, consts.ErrDeadlinePassed
	}

	if _, err = s.SubmissionMapper.FindByStudentAndAssignment(ctx, u.ID.Hex(), req.AssignmentId); err == nil {
		return nil, consts.ErrAlreadySubmitted
	}

	sub := &submission.Submission{
		AssignmentID: req.AssignmentId,
		StudentID:    u.ID.Hex(),
		Answer:       req.Answer,
	}
	if err = s.SubmissionMapper.Insert(ctx, sub); err != nil {
		log.CtxError(ctx, "submit answer failed: %v", err)
		return nil, err
	}

	info := submissionInfo(sub)
	fillStudent(info, u)
	fillAssignment(info, a)
	return &show.SubmitAnswerResp{Submission: info}, nil
}

// ListMySubmissions 学生查看自己的全部提交，附带作业摘要
func (s *SubmissionService) ListMySubmissions(ctx context.Context, req *show.ListMySubmissionsReq) (*show.ListMySubmissionsResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}
	if u.Role != consts.RoleStudent {
		return nil, consts.ErrForbidden
	}

	page, pageSize := pageutil.ParsePageOpt(req.PaginationOptions)
	submissions, total, err := s.SubmissionMapper.FindByStudent(ctx, u.ID.Hex(), page, pageSize)
	if err != nil {
		return nil, err
	}

	infos := make([]*show.SubmissionInfo, 0, len(submissions))
	assignments := make(map[string]*assignment.Assignment)
	for _, sub := range submissions {
		info := submissionInfo(sub)
		fillStudent(info, u)
		a, ok := assignments[sub.AssignmentID]
		if !ok {
			a, err = s.AssignmentMapper.FindOne(ctx, sub.AssignmentID)
			if err != nil {
				a = nil
			}
			assignments[sub.AssignmentID] = a
		}
		fillAssignment(info, a)
		infos = append(infos, info)
	}

	return &show.ListMySubmissionsResp{Submissions: infos, Total: total}, nil
}

// GetSubmission 提交详情: 本人学生或作业归属老师可见
func (s *SubmissionService) GetSubmission(ctx context.Context, req *show.GetSubmissionReq) (*show.GetSubmissionResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrSubmissionNotFound
	}

	a, err := s.AssignmentMapper.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		a = nil
	}
	if !canViewSubmission(u, sub, a) {
		return nil, consts.ErrForbidden
	}

	info := submissionInfo(sub)
	if st, err := s.UserMapper.FindOne(ctx, sub.StudentID); err == nil {
		fillStudent(info, st)
	}
	fillAssignment(info, a)
	return &show.GetSubmissionResp{Submission: info}, nil
}

// ReviewSubmission 老师复核提交
// 已复核的提交重复复核是幂等的，不刷新复核时间
func (s *SubmissionService) ReviewSubmission(ctx context.Context, req *show.ReviewSubmissionReq) (*show.ReviewSubmissionResp, error) {
	u, err := currentUser(ctx, s.UserMapper)
	if err != nil {
		return nil, err
	}

	sub, err := s.SubmissionMapper.FindOne(ctx, req.Id)
	if err != nil {
		return nil, consts.ErrSubmissionNotFound
	}

	a, err := s.AssignmentMapper.FindOne(ctx, sub.AssignmentID)
	if err != nil {
		return nil, consts.ErrAssignmentNotFound
	}
	if u.Role != consts.RoleTeacher || a.TeacherID != u.ID.Hex() {
		return nil, consts.ErrForbidden
	}

	if !sub.IsReviewed {
		sub.IsReviewed = true
		sub.ReviewTime = time.Now()
		if err = s.SubmissionMapper.Update(ctx, sub); err != nil {
			log.CtxError(ctx, "review submission failed: %v", err)
			return nil, err
		}
		// 通知失败不影响复核结果
		if s.NotifyClient != nil {
			if err := s.NotifyClient.SendReviewNotice(ctx, sub.StudentID, a.Title); err != nil {
				log.CtxError(ctx, "send review notice failed: %v", err)
			}
		}
	}

	info := submissionInfo(sub)
	if st, err := s.UserMapper.FindOne(ctx, sub.StudentID); err == nil {
		fillStudent(info, st)
	}
	fillAssignment(info, a)
	return &show.ReviewSubmissionResp{Submission: info}, nil
}

// deadlinePassed 截止判定，严格晚于截止时间才拒绝，恰好等于仍可提交
func deadlinePassed(now, due time.Time) bool {
	return now.After(due)
}

// canViewSubmission 提交可见性: 提交学生本人，或提交所属作业的归属老师
func canViewSubmission(u *user.User, sub *submission.Submission, a *assignment.Assignment) bool {
	if u.Role == consts.RoleStudent {
		return sub.StudentID == u.ID.Hex()
	}
	return a != nil && a.TeacherID == u.ID.Hex()
}
