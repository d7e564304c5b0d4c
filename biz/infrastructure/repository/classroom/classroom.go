package classroom

import "time"

// Classroom 对应数据库中的 classroom 表。
// slug 全局唯一；cover_url 永远不会是内联编码内容，未上传时为 NULL。
type Classroom struct {
	ID               int64     `db:"id"`
	CommunityID      int64     `db:"community_id"`
	Name             string    `db:"name"`
	Slug             string    `db:"slug"`
	Description      string    `db:"description"`
	Type             string    `db:"type"`
	CoverUrl         *string   `db:"cover_url"`
	OneTimePayment   *int64    `db:"one_time_payment"` // 单位：分
	TimeUnlockInDays *int64    `db:"time_unlock_days"`
	IsDraft          bool      `db:"is_draft"`
	CreateTime       time.Time `db:"create_time"`
	UpdateTime       time.Time `db:"update_time"`
}
