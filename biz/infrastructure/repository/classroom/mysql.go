package classroom

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/mysql"
)

const ClassroomTableName = "classroom"

type IClassroomMapper interface {
	InsertOne(ctx context.Context, c *Classroom) error
	Update(ctx context.Context, c *Classroom) error
	Delete(ctx context.Context, id int64) error
	FindOne(ctx context.Context, id int64) (*Classroom, error)
	FindOneBySlug(ctx context.Context, slug string) (*Classroom, error)
}

type MySQLMapper struct {
	db *sql.DB
}

func NewMySQLMapper(config *config.Config) *MySQLMapper {
	return &MySQLMapper{db: mysql.GetDB(config)}
}

func (m *MySQLMapper) InsertOne(ctx context.Context, c *Classroom) error {
	now := time.Now()
	c.CreateTime = now
	c.UpdateTime = now
	res, err := m.db.ExecContext(ctx, `
		INSERT INTO classroom
			(community_id, name, slug, description, type, cover_url, one_time_payment, time_unlock_days, is_draft, create_time, update_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.CommunityID, c.Name, c.Slug, c.Description, c.Type, c.CoverUrl, c.OneTimePayment, c.TimeUnlockInDays, c.IsDraft, c.CreateTime, c.UpdateTime)
	if err != nil {
		return err
	}
	c.ID, err = res.LastInsertId()
	return err
}

func (m *MySQLMapper) Update(ctx context.Context, c *Classroom) error {
	c.UpdateTime = time.Now()
	// 并发更新下行不存在时不报错，按无操作处理
	_, err := m.db.ExecContext(ctx, `
		UPDATE classroom
		SET name = ?, description = ?, type = ?, cover_url = ?, one_time_payment = ?, time_unlock_days = ?, is_draft = ?, update_time = ?
		WHERE id = ?
	`, c.Name, c.Description, c.Type, c.CoverUrl, c.OneTimePayment, c.TimeUnlockInDays, c.IsDraft, c.UpdateTime, c.ID)
	return err
}

// Delete 删除课程行，module/lesson/resource 由库表级联外键一并删除
func (m *MySQLMapper) Delete(ctx context.Context, id int64) error {
	_, err := m.db.ExecContext(ctx, "DELETE FROM "+ClassroomTableName+" WHERE id = ?", id)
	return err
}

func (m *MySQLMapper) FindOne(ctx context.Context, id int64) (*Classroom, error) {
	return m.findOne(ctx, `WHERE id = ?`, id)
}

func (m *MySQLMapper) FindOneBySlug(ctx context.Context, slug string) (*Classroom, error) {
	return m.findOne(ctx, `WHERE slug = ?`, slug)
}

func (m *MySQLMapper) findOne(ctx context.Context, where string, arg any) (*Classroom, error) {
	var c Classroom
	err := m.db.QueryRowContext(ctx, `
		SELECT id, community_id, name, slug, description, type, cover_url, one_time_payment, time_unlock_days, is_draft, create_time, update_time
		FROM `+ClassroomTableName+` `+where,
		arg,
	).Scan(&c.ID, &c.CommunityID, &c.Name, &c.Slug, &c.Description, &c.Type, &c.CoverUrl, &c.OneTimePayment, &c.TimeUnlockInDays, &c.IsDraft, &c.CreateTime, &c.UpdateTime)
	switch {
	case err == nil:
		return &c, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}
