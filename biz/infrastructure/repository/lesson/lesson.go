package lesson

import "time"

// Lesson 对应数据库中的 lesson 表，归属于唯一的 module
type Lesson struct {
	ID          int64     `db:"id"`
	ModuleID    int64     `db:"module_id"`
	Name        string    `db:"name"`
	Index       int64     `db:"idx"`
	VideoUrl    *string   `db:"video_url"`
	VideoType   *string   `db:"video_type"`
	TextContent *string   `db:"text_content"`
	CreateTime  time.Time `db:"create_time"`
	UpdateTime  time.Time `db:"update_time"`
}
