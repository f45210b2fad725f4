package service

import (
	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/repository/assignment"
	"assignment-hub/biz/infrastructure/repository/submission"
	"assignment-hub/biz/infrastructure/repository/user"

	"github.com/jinzhu/copier"
)

// assignmentInfo 模型转响应，老师信息由调用方二次查询后传入
func assignmentInfo(a *assignment.Assignment, teacher *user.User) *show.AssignmentInfo {
	info := new(show.AssignmentInfo)
	_ = copier.Copy(info, a)
	info.Id = a.ID.Hex()
	info.Status = string(a.Status)
	info.TeacherId = a.TeacherID
	info.DueDate = a.DueDate.Unix()
	info.CreateTime = a.CreateTime.Unix()
	info.UpdateTime = a.UpdateTime.Unix()
	if teacher != nil {
		info.TeacherName = teacher.Name
		info.TeacherEmail = teacher.Email
	}
	return info
}

func submissionInfo(s *submission.Submission) *show.SubmissionInfo {
	info := new(show.SubmissionInfo)
	_ = copier.Copy(info, s)
	info.Id = s.ID.Hex()
	info.AssignmentId = s.AssignmentID
	info.StudentId = s.StudentID
	info.SubmitTime = s.SubmitTime.Unix()
	if !s.ReviewTime.IsZero() {
		info.ReviewTime = s.ReviewTime.Unix()
	}
	return info
}

func fillStudent(info *show.SubmissionInfo, student *user.User) {
	if student == nil {
		return
	}
	info.StudentName = student.Name
	info.StudentEmail = student.Email
}

func fillAssignment(info *show.SubmissionInfo, a *assignment.Assignment) {
	if a == nil {
		return
	}
	info.AssignmentTitle = a.Title
	info.AssignmentDueDate = a.DueDate.Unix()
	info.AssignmentStatus = string(a.Status)
}

func userInfo(u *user.User) *show.UserInfo {
	return &show.UserInfo{
		Id:    u.ID.Hex(),
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
