package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/redis"

	gozero_redis "github.com/zeromicro/go-zero/core/stores/redis"
)

const (
	classroomDetailCachePrefix = "classroom_detail"
	classroomDetailCacheExpire = 600 // 10分钟，课程树较大，更新后主动失效
)

type IClassroomCacheMapper interface {
	Get(ctx context.Context, id int64) (*studio.ClassroomInfo, error)
	Set(ctx context.Context, id int64, data *studio.ClassroomInfo) error
	Delete(ctx context.Context, id int64) error
}

type ClassroomCacheMapper struct {
	rds *gozero_redis.Redis
}

func NewClassroomCacheMapper(config *config.Config) *ClassroomCacheMapper {
	return &ClassroomCacheMapper{
		rds: redis.GetRedis(config),
	}
}

// Get 从缓存获取课程树
func (m *ClassroomCacheMapper) Get(ctx context.Context, id int64) (*studio.ClassroomInfo, error) {
	cacheKey := m.buildCacheKey(id)

	cachedData, err := m.rds.GetCtx(ctx, cacheKey)
	if err != nil {
		return nil, err
	}

	if cachedData == "" {
		return nil, fmt.Errorf("cache miss")
	}

	var result studio.ClassroomInfo
	if err := json.Unmarshal([]byte(cachedData), &result); err != nil {
		return nil, fmt.Errorf("unmarshal cached data failed: %w", err)
	}

	return &result, nil
}

// Set 将课程树存入缓存
func (m *ClassroomCacheMapper) Set(ctx context.Context, id int64, data *studio.ClassroomInfo) error {
	cacheKey := m.buildCacheKey(id)

	resultBytes, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal data failed: %w", err)
	}

	return m.rds.SetexCtx(ctx, cacheKey, string(resultBytes), classroomDetailCacheExpire)
}

// Delete 删除缓存，创建/更新/挂载附件后调用
func (m *ClassroomCacheMapper) Delete(ctx context.Context, id int64) error {
	cacheKey := m.buildCacheKey(id)
	_, err := m.rds.DelCtx(ctx, cacheKey)
	return err
}

// buildCacheKey 构造缓存key
func (m *ClassroomCacheMapper) buildCacheKey(id int64) string {
	return fmt.Sprintf("%s:%d", classroomDetailCachePrefix, id)
}
