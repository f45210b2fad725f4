package service

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"assignment-hub/biz/adaptor"
	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/application/dto/basic"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/repository/assignment"
	"assignment-hub/biz/infrastructure/repository/submission"
	"assignment-hub/biz/infrastructure/repository/user"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 内存版mapper，语义与mongo实现对齐:
// 找不到返回 consts.ErrNotFound，唯一约束冲突返回对应的领域错误

type fakeAssignmentMapper struct {
	mu    sync.Mutex
	items map[string]*assignment.Assignment
}

var _ assignment.IMongoMapper = (*fakeAssignmentMapper)(nil)

func newFakeAssignmentMapper() *fakeAssignmentMapper {
	return &fakeAssignmentMapper{items: make(map[string]*assignment.Assignment)}
}

func (m *fakeAssignmentMapper) Insert(_ context.Context, a *assignment.Assignment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
		a.CreateTime = time.Now()
		a.UpdateTime = a.CreateTime
	}
	cp := *a
	m.items[a.ID.Hex()] = &cp
	return nil
}

// Update 与mongo条件更新同语义: 库内状态不等于读到的状态时落空
func (m *fakeAssignmentMapper) Update(_ context.Context, a *assignment.Assignment, from assignment.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[a.ID.Hex()]
	if !ok || stored.Status != from {
		return consts.ErrStatusChanged
	}
	a.UpdateTime = time.Now()
	cp := *a
	m.items[a.ID.Hex()] = &cp
	return nil
}

func (m *fakeAssignmentMapper) FindOne(_ context.Context, id string) (*assignment.Assignment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.items[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *a
	return &cp, nil
}

func (m *fakeAssignmentMapper) Delete(_ context.Context, id string, from assignment.Status) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.items[id]
	if !ok || stored.Status != from {
		return consts.ErrStatusChanged
	}
	delete(m.items, id)
	return nil
}

func (m *fakeAssignmentMapper) FindByTeacher(_ context.Context, teacherID string, page, pageSize int64) ([]*assignment.Assignment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return paginateAssignments(m.items, func(a *assignment.Assignment) bool {
		return a.TeacherID == teacherID
	}, page, pageSize)
}

func (m *fakeAssignmentMapper) FindByStatus(_ context.Context, status assignment.Status, page, pageSize int64) ([]*assignment.Assignment, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return paginateAssignments(m.items, func(a *assignment.Assignment) bool {
		return a.Status == status
	}, page, pageSize)
}

func paginateAssignments(items map[string]*assignment.Assignment, match func(*assignment.Assignment) bool, page, pageSize int64) ([]*assignment.Assignment, int64, error) {
	var all []*assignment.Assignment
	for _, a := range items {
		if match(a) {
			cp := *a
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreateTime.After(all[j].CreateTime)
	})
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

type fakeSubmissionMapper struct {
	mu    sync.Mutex
	items map[string]*submission.Submission
}

var _ submission.IMongoMapper = (*fakeSubmissionMapper)(nil)

func newFakeSubmissionMapper() *fakeSubmissionMapper {
	return &fakeSubmissionMapper{items: make(map[string]*submission.Submission)}
}

// Insert 与mongo唯一索引同语义: (assignment, student) 冲突返回 ErrAlreadySubmitted
// 查重和写入在同一把锁里完成，并发下也只会成功一次
func (m *fakeSubmissionMapper) Insert(_ context.Context, s *submission.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.AssignmentID == s.AssignmentID && existing.StudentID == s.StudentID {
			return consts.ErrAlreadySubmitted
		}
	}
	if s.ID.IsZero() {
		s.ID = primitive.NewObjectID()
		s.SubmitTime = time.Now()
	}
	cp := *s
	m.items[s.ID.Hex()] = &cp
	return nil
}

func (m *fakeSubmissionMapper) Update(_ context.Context, s *submission.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[s.ID.Hex()]; !ok {
		return consts.ErrNotFound
	}
	cp := *s
	m.items[s.ID.Hex()] = &cp
	return nil
}

func (m *fakeSubmissionMapper) FindOne(_ context.Context, id string) (*submission.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.items[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *s
	return &cp, nil
}

func (m *fakeSubmissionMapper) FindByAssignment(_ context.Context, assignmentID string, page, pageSize int64) ([]*submission.Submission, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return paginateSubmissions(m.items, func(s *submission.Submission) bool {
		return s.AssignmentID == assignmentID
	}, page, pageSize)
}

func (m *fakeSubmissionMapper) FindByStudent(_ context.Context, studentID string, page, pageSize int64) ([]*submission.Submission, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return paginateSubmissions(m.items, func(s *submission.Submission) bool {
		return s.StudentID == studentID
	}, page, pageSize)
}

func (m *fakeSubmissionMapper) FindByStudentAndAssignment(_ context.Context, studentID, assignmentID string) (*submission.Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range m.items {
		if s.StudentID == studentID && s.AssignmentID == assignmentID {
			cp := *s
			return &cp, nil
		}
	}
	return nil, consts.ErrNotFound
}

func paginateSubmissions(items map[string]*submission.Submission, match func(*submission.Submission) bool, page, pageSize int64) ([]*submission.Submission, int64, error) {
	var all []*submission.Submission
	for _, s := range items {
		if match(s) {
			cp := *s
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].SubmitTime.After(all[j].SubmitTime)
	})
	total := int64(len(all))
	start := (page - 1) * pageSize
	if start >= total {
		return nil, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}
	return all[start:end], total, nil
}

type fakeUserMapper struct {
	mu    sync.Mutex
	items map[string]*user.User
}

var _ user.IMongoMapper = (*fakeUserMapper)(nil)

func newFakeUserMapper() *fakeUserMapper {
	return &fakeUserMapper{items: make(map[string]*user.User)}
}

func (m *fakeUserMapper) Insert(_ context.Context, u *user.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.items {
		if existing.Email == u.Email {
			return consts.ErrEmailExists
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
		u.CreateTime = time.Now()
		u.UpdateTime = u.CreateTime
	}
	cp := *u
	m.items[u.ID.Hex()] = &cp
	return nil
}

func (m *fakeUserMapper) FindOne(_ context.Context, id string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.items[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *fakeUserMapper) FindOneByEmail(_ context.Context, email string) (*user.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.items {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, consts.ErrNotFound
}

type fakeDetailCache struct {
	mu    sync.Mutex
	items map[string]*show.AssignmentInfo
	hits  int
}

func newFakeDetailCache() *fakeDetailCache {
	return &fakeDetailCache{items: make(map[string]*show.AssignmentInfo)}
}

func (c *fakeDetailCache) Get(_ context.Context, id string) (*show.AssignmentInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	info, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("cache miss")
	}
	c.hits++
	return info, nil
}

func (c *fakeDetailCache) Set(_ context.Context, id string, data *show.AssignmentInfo) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[id] = data
	return nil
}

func (c *fakeDetailCache) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, id)
	return nil
}

type fakeNotifyClient struct {
	mu    sync.Mutex
	calls []string
	fail  bool
}

func (c *fakeNotifyClient) SendReviewNotice(_ context.Context, studentID, assignmentTitle string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.fail {
		return fmt.Errorf("notify unavailable")
	}
	c.calls = append(c.calls, studentID+":"+assignmentTitle)
	return nil
}

// testEnv 服务层测试环境，所有依赖都是内存实现
type testEnv struct {
	assignments *fakeAssignmentMapper
	submissions *fakeSubmissionMapper
	users       *fakeUserMapper
	cache       *fakeDetailCache
	notify      *fakeNotifyClient

	assignmentSvc *AssignmentService
	submissionSvc *SubmissionService
}

func newTestEnv() *testEnv {
	env := &testEnv{
		assignments: newFakeAssignmentMapper(),
		submissions: newFakeSubmissionMapper(),
		users:       newFakeUserMapper(),
		cache:       newFakeDetailCache(),
		notify:      &fakeNotifyClient{},
	}
	env.assignmentSvc = &AssignmentService{
		AssignmentMapper: env.assignments,
		SubmissionMapper: env.submissions,
		UserMapper:       env.users,
		DetailCache:      env.cache,
	}
	env.submissionSvc = &SubmissionService{
		AssignmentMapper: env.assignments,
		SubmissionMapper: env.submissions,
		UserMapper:       env.users,
		NotifyClient:     env.notify,
	}
	return env
}

func (e *testEnv) addUser(name, email, role string) *user.User {
	u := &user.User{Name: name, Email: email, Password: "x", Role: role}
	if err := e.users.Insert(context.Background(), u); err != nil {
		panic(err)
	}
	return u
}

func (e *testEnv) addTeacher(name string) *user.User {
	return e.addUser(name, name+"@school.test", consts.RoleTeacher)
}

func (e *testEnv) addStudent(name string) *user.User {
	return e.addUser(name, name+"@school.test", consts.RoleStudent)
}

// ctxAs 以指定用户身份构造请求上下文
func ctxAs(u *user.User) context.Context {
	return adaptor.InjectUserMeta(context.Background(), &basic.UserMeta{UserId: u.ID.Hex()})
}

func (e *testEnv) addAssignment(teacher *user.User, status assignment.Status, due time.Time) *assignment.Assignment {
	a := &assignment.Assignment{
		Title:       "单元测试作业",
		Description: "描述",
		DueDate:     due,
		Status:      status,
		TeacherID:   teacher.ID.Hex(),
	}
	if err := e.assignments.Insert(context.Background(), a); err != nil {
		panic(err)
	}
	return a
}
