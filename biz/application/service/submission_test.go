package service

import (
	"sync"
	"testing"
	"time"

	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/assignment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitAnswer(t *testing.T) {
	env := newTestEnv()
	teacher := env.addTeacher("wang")
	student := env.addStudent("li")
	due := time.Now().Add(24 * time.Hour)

	t.Run("已发布且未截止可提交", func(t *testing.T) {
		a := env.addAssignment(teacher, assignment.StatusPublished, due)
		resp, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "我的答案",
		})
		require.NoError(t, err)
		assert.Equal(t, student.ID.Hex(), resp.Submission.StudentId)
		assert.Equal(t, a.ID.Hex(), resp.Submission.AssignmentId)
		assert.False(t, resp.Submission.IsReviewed)
		assert.NotZero(t, resp.Submission.SubmitTime)
	})

	t.Run("老师不能提交", func(t *testing.T) {
		a := env.addAssignment(teacher, assignment.StatusPublished, due)
		_, err := env.submissionSvc.SubmitAnswer(ctxAs(teacher), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "老师的答案",
		})
		assert.Equal(t, consts.ErrForbidden, err)
	})

	t.Run("草稿作业不可提交", func(t *testing.T) {
		a := env.addAssignment(teacher, assignment.StatusDraft, due)
		_, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "x",
		})
		assert.Equal(t, consts.ErrNotAvailableForSubmission, err)
	})

	t.Run("已结束作业不可提交", func(t *testing.T) {
		a := env.addAssignment(teacher, assignment.StatusCompleted, due)
		_, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "x",
		})
		assert.Equal(t, consts.ErrNotAvailableForSubmission, err)
	})

	t.Run("过了截止时间不可提交", func(t *testing.T) {
		a := env.addAssignment(teacher, assignment.StatusPublished, time.Now().Add(-time.Minute))
		_, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "x",
		})
		assert.Equal(t, consts.ErrDeadlinePassed, err)
	})

	t.Run("重复提交被拒", func(t *testing.T) {
		a := env.addAssignment(teacher, assignment.StatusPublished, due)
		_, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "第一次",
		})
		require.NoError(t, err)
		_, err = env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: a.ID.Hex(),
			Answer:       "第二次",
		})
		assert.Equal(t, consts.ErrAlreadySubmitted, err)
	})

	t.Run("作业不存在", func(t *testing.T) {
		_, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
			AssignmentId: "ffffffffffffffffffffffff",
			Answer:       "x",
		})
		assert.Equal(t, consts.ErrAssignmentNotFound, err)
	})
}

// TestDeadlineBoundary 截止边界: 严格晚于截止时间才算过期，恰好等于仍可提交
func TestDeadlineBoundary(t *testing.T) {
	due := time.Date(2026, 6, 1, 23, 59, 59, 0, time.UTC)

	assert.False(t, deadlinePassed(due, due))
	assert.False(t, deadlinePassed(due.Add(-time.Nanosecond), due))
	assert.True(t, deadlinePassed(due.Add(time.Nanosecond), due))
}

// TestSubmitAnswerConcurrent 同一学生并发重复提交，只允许成功一次
func TestSubmitAnswerConcurrent(t *testing.T) {
	env := newTestEnv()
	teacher := env.addTeacher("wang")
	student := env.addStudent("li")
	a := env.addAssignment(teacher, assignment.StatusPublished, time.Now().Add(24*time.Hour))

	const n = 16
	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
				AssignmentId: a.ID.Hex(),
				Answer:       "并发提交",
			})
		}(i)
	}
	wg.Wait()

	var ok, dup int
	for _, err := range errs {
		switch err {
		case nil:
			ok++
		case consts.ErrAlreadySubmitted:
			dup++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, n-1, dup)
}

func TestListMySubmissions(t *testing.T) {
	env := newTestEnv()
	teacher := env.addTeacher("wang")
	s1 := env.addStudent("li")
	s2 := env.addStudent("chen")
	due := time.Now().Add(24 * time.Hour)

	a1 := env.addAssignment(teacher, assignment.StatusPublished, due)
	a2 := env.addAssignment(teacher, assignment.StatusPublished, due)

	_, err := env.submissionSvc.SubmitAnswer(ctxAs(s1), &show.SubmitAnswerReq{AssignmentId: a1.ID.Hex(), Answer: "a1"})
	require.NoError(t, err)
	_, err = env.submissionSvc.SubmitAnswer(ctxAs(s1), &show.SubmitAnswerReq{AssignmentId: a2.ID.Hex(), Answer: "a2"})
	require.NoError(t, err)
	_, err = env.submissionSvc.SubmitAnswer(ctxAs(s2), &show.SubmitAnswerReq{AssignmentId: a1.ID.Hex(), Answer: "b1"})
	require.NoError(t, err)

	t.Run("只返回本人的，带作业摘要", func(t *testing.T) {
		resp, err := env.submissionSvc.ListMySubmissions(ctxAs(s1), &show.ListMySubmissionsReq{})
		require.NoError(t, err)
		assert.Equal(t, int64(2), resp.Total)
		for _, sub := range resp.Submissions {
			assert.Equal(t, s1.ID.Hex(), sub.StudentId)
			assert.NotEmpty(t, sub.AssignmentTitle)
		}
	})

	t.Run("老师没有自己的提交列表", func(t *testing.T) {
		_, err := env.submissionSvc.ListMySubmissions(ctxAs(teacher), &show.ListMySubmissionsReq{})
		assert.Equal(t, consts.ErrForbidden, err)
	})
}

func TestGetSubmission(t *testing.T) {
	env := newTestEnv()
	owner := env.addTeacher("wang")
	other := env.addTeacher("zhao")
	s1 := env.addStudent("li")
	s2 := env.addStudent("chen")
	a := env.addAssignment(owner, assignment.StatusPublished, time.Now().Add(24*time.Hour))

	submitted, err := env.submissionSvc.SubmitAnswer(ctxAs(s1), &show.SubmitAnswerReq{
		AssignmentId: a.ID.Hex(),
		Answer:       "我的答案",
	})
	require.NoError(t, err)
	id := submitted.Submission.Id

	t.Run("提交学生本人可见", func(t *testing.T) {
		resp, err := env.submissionSvc.GetSubmission(ctxAs(s1), &show.GetSubmissionReq{Id: id})
		require.NoError(t, err)
		assert.Equal(t, "我的答案", resp.Submission.Answer)
	})

	t.Run("作业归属老师可见", func(t *testing.T) {
		resp, err := env.submissionSvc.GetSubmission(ctxAs(owner), &show.GetSubmissionReq{Id: id})
		require.NoError(t, err)
		assert.Equal(t, s1.ID.Hex(), resp.Submission.StudentId)
	})

	t.Run("其他学生不可见", func(t *testing.T) {
		_, err := env.submissionSvc.GetSubmission(ctxAs(s2), &show.GetSubmissionReq{Id: id})
		assert.Equal(t, consts.ErrForbidden, err)
	})

	t.Run("其他老师不可见", func(t *testing.T) {
		_, err := env.submissionSvc.GetSubmission(ctxAs(other), &show.GetSubmissionReq{Id: id})
		assert.Equal(t, consts.ErrForbidden, err)
	})

	t.Run("提交不存在", func(t *testing.T) {
		_, err := env.submissionSvc.GetSubmission(ctxAs(s1), &show.GetSubmissionReq{Id: "ffffffffffffffffffffffff"})
		assert.Equal(t, consts.ErrSubmissionNotFound, err)
	})
}

func TestReviewSubmission(t *testing.T) {
	env := newTestEnv()
	owner := env.addTeacher("wang")
	other := env.addTeacher("zhao")
	student := env.addStudent("li")
	a := env.addAssignment(owner, assignment.StatusPublished, time.Now().Add(24*time.Hour))

	submitted, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
		AssignmentId: a.ID.Hex(),
		Answer:       "待复核",
	})
	require.NoError(t, err)
	id := submitted.Submission.Id

	t.Run("学生不能复核", func(t *testing.T) {
		_, err := env.submissionSvc.ReviewSubmission(ctxAs(student), &show.ReviewSubmissionReq{Id: id})
		assert.Equal(t, consts.ErrForbidden, err)
	})

	t.Run("非归属老师不能复核", func(t *testing.T) {
		_, err := env.submissionSvc.ReviewSubmission(ctxAs(other), &show.ReviewSubmissionReq{Id: id})
		assert.Equal(t, consts.ErrForbidden, err)
	})

	t.Run("归属老师复核成功并触发通知", func(t *testing.T) {
		resp, err := env.submissionSvc.ReviewSubmission(ctxAs(owner), &show.ReviewSubmissionReq{Id: id})
		require.NoError(t, err)
		assert.True(t, resp.Submission.IsReviewed)
		assert.NotZero(t, resp.Submission.ReviewTime)
		assert.Len(t, env.notify.calls, 1)
	})

	t.Run("重复复核幂等，复核时间不变", func(t *testing.T) {
		first, err := env.submissionSvc.GetSubmission(ctxAs(owner), &show.GetSubmissionReq{Id: id})
		require.NoError(t, err)

		resp, err := env.submissionSvc.ReviewSubmission(ctxAs(owner), &show.ReviewSubmissionReq{Id: id})
		require.NoError(t, err)
		assert.True(t, resp.Submission.IsReviewed)
		assert.Equal(t, first.Submission.ReviewTime, resp.Submission.ReviewTime)
		// 不重复通知
		assert.Len(t, env.notify.calls, 1)
	})
}

// 通知挂了不影响复核落库
func TestReviewSubmissionNotifyFailure(t *testing.T) {
	env := newTestEnv()
	env.notify.fail = true
	owner := env.addTeacher("wang")
	student := env.addStudent("li")
	a := env.addAssignment(owner, assignment.StatusPublished, time.Now().Add(24*time.Hour))

	submitted, err := env.submissionSvc.SubmitAnswer(ctxAs(student), &show.SubmitAnswerReq{
		AssignmentId: a.ID.Hex(),
		Answer:       "x",
	})
	require.NoError(t, err)

	resp, err := env.submissionSvc.ReviewSubmission(ctxAs(owner), &show.ReviewSubmissionReq{Id: submitted.Submission.Id})
	require.NoError(t, err)
	assert.True(t, resp.Submission.IsReviewed)
}
