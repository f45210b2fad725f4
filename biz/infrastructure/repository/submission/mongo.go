package submission

import (
	"context"
	"errors"
	"time"

	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/biz/infrastructure/consts"
	"assignment-hub/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixSubmissionCacheKey = "cache:submission"
	SubmissionCollectionName = "submission"
)

type IMongoMapper interface {
	Insert(ctx context.Context, submission *Submission) error
	Update(ctx context.Context, submission *Submission) error
	FindOne(ctx context.Context, id string) (*Submission, error)
	FindByAssignment(ctx context.Context, assignmentID string, page, pageSize int64) ([]*Submission, int64, error)
	FindByStudent(ctx context.Context, studentID string, page, pageSize int64) ([]*Submission, int64, error)
	FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*Submission, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSubmissionMongoMapper config: %v, collection: %s", config, SubmissionCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SubmissionCollectionName, config.Cache)
	m := &MongoMapper{
		conn: conn,
	}
	// (assignment_id, student_id) 唯一索引，一个学生对一个作业只能提交一次
	// 并发重复提交由该索引保证原子性
	_, err := conn.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{
			{Key: consts.AssignmentID, Value: 1},
			{Key: consts.StudentID, Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		log.Error("create submission unique index failed: %v", err)
	}
	return m
}

func (m *MongoMapper) Insert(ctx context.Context, submission *Submission) error {
	if submission.ID.IsZero() {
		submission.ID = primitive.NewObjectID()
		submission.SubmitTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, submission)
	if mongo.IsDuplicateKeyError(err) {
		return consts.ErrAlreadySubmitted
	}
	return err
}

func (m *MongoMapper) Update(ctx context.Context, submission *Submission) error {
	_, err := m.conn.UpdateByIDNoCache(ctx, submission.ID, bson.M{"$set": submission})
	return err
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Submission, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var s Submission
	err = m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// FindByAssignment 老师视角，按提交时间倒序返回某作业下的全部提交
func (m *MongoMapper) FindByAssignment(ctx context.Context, assignmentID string, page, pageSize int64) ([]*Submission, int64, error) {
	return m.findByFilter(ctx, bson.M{consts.AssignmentID: assignmentID}, page, pageSize)
}

// FindByStudent 学生视角，按提交时间倒序返回自己的全部提交
func (m *MongoMapper) FindByStudent(ctx context.Context, studentID string, page, pageSize int64) ([]*Submission, int64, error) {
	return m.findByFilter(ctx, bson.M{consts.StudentID: studentID}, page, pageSize)
}

func (m *MongoMapper) FindByStudentAndAssignment(ctx context.Context, studentID, assignmentID string) (*Submission, error) {
	var s Submission
	err := m.conn.FindOneNoCache(ctx, &s, bson.M{
		consts.StudentID:    studentID,
		consts.AssignmentID: assignmentID,
	})
	switch {
	case err == nil:
		return &s, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M, page, pageSize int64) ([]*Submission, int64, error) {
	var submissions []*Submission

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &submissions, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.SubmitTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return submissions, total, nil
}
