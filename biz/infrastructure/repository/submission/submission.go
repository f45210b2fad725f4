package submission

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Submission 一次学生答题记录
// answer/assignment_id/student_id 落库后不再变更，复核只翻转 is_reviewed
type Submission struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	AssignmentID string             `bson:"assignment_id" json:"assignmentId"`
	StudentID    string             `bson:"student_id" json:"studentId"`
	Answer       string             `bson:"answer" json:"answer"`
	IsReviewed   bool               `bson:"is_reviewed" json:"isReviewed"`
	SubmitTime   time.Time          `bson:"submit_time" json:"submitTime"`
	ReviewTime   time.Time          `bson:"review_time,omitempty" json:"reviewTime"`
}
