package synclog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SyncLog 一次课程树同步的审计记录。
// 更新路径允许单节点失败后继续，失败明细在这里留档，不阻断调用。
type SyncLog struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ClassroomID int64              `bson:"classroom_id" json:"classroomId"`
	Operation   string             `bson:"operation" json:"operation"` // create | update
	OperatorID  string             `bson:"operator_id" json:"operatorId"`
	LessonCount int64              `bson:"lesson_count" json:"lessonCount"`
	Failures    []Failure          `bson:"failures,omitempty" json:"failures,omitempty"`
	CreateTime  time.Time          `bson:"create_time" json:"createTime"`
}

type Failure struct {
	Level  string `bson:"level" json:"level"`
	Name   string `bson:"name" json:"name"`
	Index  int64  `bson:"index" json:"index"`
	Reason string `bson:"reason" json:"reason"`
}
