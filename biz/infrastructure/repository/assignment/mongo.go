package assignment

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	prefixAssignmentCacheKey = "cache:assignment"
	AssignmentCollectionName = "assignment"
)

type IMongoMapper interface {
	Insert(ctx context.Context, assignment *Assignment) error
	Update(ctx context.Context, assignment *Assignment, from Status) error
	FindOne(ctx context.Context, id string) (*Assignment, error)
	Delete(ctx context.Context, id string, from Status) error
	FindByTeacher(ctx context.Context, teacherID string, page, pageSize int64) ([]*Assignment, int64, error)
	FindByStatus(ctx context.Context, status Status, page, pageSize int64) ([]*Assignment, int64, error)
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewAssignmentMongoMapper config: %v, collection: %s", config, AssignmentCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, AssignmentCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, assignment *Assignment) error {
	if assignment.ID.IsZero() {
		assignment.ID = primitive.NewObjectID()
		assignment.CreateTime = time.Now()
		assignment.UpdateTime = assignment.CreateTime
	}
	_, err := m.conn.InsertOneNoCache(ctx, assignment)
	return err
}

// Update 条件更新，过滤条件带上鉴权时读到的状态
// 并发下另一请求先改了状态，这里就落空，旧快照写不回去
func (m *MongoMapper) Update(ctx context.Context, assignment *Assignment, from Status) error {
	assignment.UpdateTime = time.Now()
	res, err := m.conn.UpdateOneNoCache(ctx, bson.M{
		consts.ID:     assignment.ID,
		consts.Status: from,
	}, bson.M{"$set": assignment})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return consts.ErrStatusChanged
	}
	return nil
}

func (m *MongoMapper) FindOne(ctx context.Context, id string) (*Assignment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, consts.ErrInvalidObjectId
	}
	var a Assignment
	err = m.conn.FindOneNoCache(ctx, &a, bson.M{
		consts.ID: oid,
	})
	switch {
	case err == nil:
		return &a, nil
	case errors.Is(err, monc.ErrNotFound):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

// Delete 同Update，只删仍处于读到状态的文档
func (m *MongoMapper) Delete(ctx context.Context, id string, from Status) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return consts.ErrInvalidObjectId
	}
	count, err := m.conn.DeleteOneNoCache(ctx, bson.M{
		consts.ID:     oid,
		consts.Status: from,
	})
	if err != nil {
		return err
	}
	if count == 0 {
		return consts.ErrStatusChanged
	}
	return nil
}

// FindByTeacher 老师视角，按创建时间倒序返回其名下全部作业
func (m *MongoMapper) FindByTeacher(ctx context.Context, teacherID string, page, pageSize int64) ([]*Assignment, int64, error) {
	return m.findByFilter(ctx, bson.M{consts.TeacherID: teacherID}, page, pageSize)
}

// FindByStatus 学生视角，按创建时间倒序返回指定状态的作业
func (m *MongoMapper) FindByStatus(ctx context.Context, status Status, page, pageSize int64) ([]*Assignment, int64, error) {
	return m.findByFilter(ctx, bson.M{consts.Status: status}, page, pageSize)
}

func (m *MongoMapper) findByFilter(ctx context.Context, filter bson.M, page, pageSize int64) ([]*Assignment, int64, error) {
	var assignments []*Assignment

	total, err := m.conn.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	skip := (page - 1) * pageSize
	err = m.conn.Find(ctx, &assignments, filter, &options.FindOptions{
		Skip:  &skip,
		Limit: &pageSize,
		Sort:  bson.M{consts.CreateTime: -1},
	})
	if err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}
