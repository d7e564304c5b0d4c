package synclog

import (
	"context"
	"time"

	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/util/log"

	"github.com/zeromicro/go-zero/core/stores/monc"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const SyncLogCollectionName = "sync_log"

type ISyncLogMapper interface {
	Insert(ctx context.Context, l *SyncLog) error
}

type MongoMapper struct {
	conn *monc.Model
}

func NewMongoMapper(config *config.Config) *MongoMapper {
	log.Info("NewSyncLogMongoMapper collection: %s", SyncLogCollectionName)
	conn := monc.MustNewModel(config.Mongo.URL, config.Mongo.DB, SyncLogCollectionName, config.Cache)
	return &MongoMapper{
		conn: conn,
	}
}

func (m *MongoMapper) Insert(ctx context.Context, l *SyncLog) error {
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
		l.CreateTime = time.Now()
	}
	_, err := m.conn.InsertOneNoCache(ctx, l)
	return err
}
