package resource

import "time"

// Resource 对应数据库中的 resource 表，归属于唯一的 lesson。
// url 永远是可访问的外链，内联编码内容不落库。
type Resource struct {
	ID          int64     `db:"id"`
	LessonID    int64     `db:"lesson_id"`
	Url         string    `db:"url"`
	Kind        string    `db:"kind"` // LINK | FILE
	DisplayName string    `db:"display_name"`
	FileType    *string   `db:"file_type"`
	FileSize    *int64    `db:"file_size"`
	CreateTime  time.Time `db:"create_time"`
	UpdateTime  time.Time `db:"update_time"`
}
