package module

import "time"

// Module 对应数据库中的 module 表，归属于唯一的 classroom。
// idx 为调用方给定的展示顺序，不要求连续或唯一，原样存取。
type Module struct {
	ID          int64     `db:"id"`
	ClassroomID int64     `db:"classroom_id"`
	Name        string    `db:"name"`
	Index       int64     `db:"idx"`
	Description *string   `db:"description"`
	CreateTime  time.Time `db:"create_time"`
	UpdateTime  time.Time `db:"update_time"`
}
