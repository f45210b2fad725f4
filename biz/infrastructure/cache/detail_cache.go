package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"assignment-hub/biz/application/dto/assign/show"
	"assignment-hub/biz/infrastructure/config"
	"assignment-hub/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	assignmentDetailCachePrefix = "assignment_detail"
	assignmentDetailCacheExpire = 3600 // 1小时
)

// IDetailCacheMapper 作业详情缓存
// 详情里带老师信息，读多写少，生命周期变更时删除
type IDetailCacheMapper interface {
	Get(ctx context.Context, id string) (*show.AssignmentInfo, error)
	Set(ctx context.Context, id string, data *show.AssignmentInfo) error
	Delete(ctx context.Context, id string) error
}

type DetailCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewDetailCacheMapper(config *config.Config) *DetailCacheMapper {
	return &DetailCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取作业详情
func (m *DetailCacheMapper) Get(ctx context.Context, id string) (*show.AssignmentInfo, error) {
	cacheKey := m.buildCacheKey(id)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result show.AssignmentInfo
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将作业详情存入缓存
func (m *DetailCacheMapper) Set(ctx context.Context, id string, data *show.AssignmentInfo) error {
	cacheKey := m.buildCacheKey(id)

	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), assignmentDetailCacheExpire)
}

// Delete 删除缓存
func (m *DetailCacheMapper) Delete(ctx context.Context, id string) error {
	cacheKey := m.buildCacheKey(id)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *DetailCacheMapper) buildCacheKey(id string) string {
	return fmt.Sprintf("%s:%s", assignmentDetailCachePrefix, id)
}
