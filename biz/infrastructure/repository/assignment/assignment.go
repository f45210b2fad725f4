package assignment

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status 作业状态，只能沿 draft -> published -> completed 单向推进
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusCompleted Status = "completed"
)

// transitions 状态机转移表，状态变更只允许查表，不做字符串比较
var transitions = map[Status]Status{
	StatusDraft:     StatusPublished,
	StatusPublished: StatusCompleted,
}

// CanTransitionTo 检查是否允许从当前状态转移到目标状态
func (s Status) CanTransitionTo(to Status) bool {
	next, ok := transitions[s]
	return ok && next == to
}

// Valid 检查是否是合法状态值
func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusPublished, StatusCompleted:
		return true
	}
	return false
}

type Assignment struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	DueDate     time.Time          `bson:"due_date" json:"dueDate"`
	Status      Status             `bson:"status" json:"status"`
	TeacherID   string             `bson:"teacher_id" json:"teacherId"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
	UpdateTime  time.Time          `bson:"update_time" json:"updateTime"`
}
