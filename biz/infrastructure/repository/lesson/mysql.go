package lesson

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/mysql"
)

const LessonTableName = "lesson"

type ILessonMapper interface {
	InsertMany(ctx context.Context, ls []*Lesson) error
	Update(ctx context.Context, l *Lesson) error
	DeleteMany(ctx context.Context, moduleID int64, ids []int64) error
	FindOne(ctx context.Context, id int64) (*Lesson, error)
	FindManyByModule(ctx context.Context, moduleID int64) ([]*Lesson, error)
}

type MySQLMapper struct {
	db *sql.DB
}

func NewMySQLMapper(config *config.Config) *MySQLMapper {
	return &MySQLMapper{db: mysql.GetDB(config)}
}

// InsertMany 单条语句批量插入，要么全部成功要么全部失败
func (m *MySQLMapper) InsertMany(ctx context.Context, ls []*Lesson) error {
	if len(ls) == 0 {
		return nil
	}
	now := time.Now()
	var sb strings.Builder
	sb.WriteString("INSERT INTO " + LessonTableName + " (module_id, name, idx, video_url, video_type, text_content, create_time, update_time) VALUES ")
	args := make([]any, 0, len(ls)*8)
	for i, l := range ls {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?)")
		l.CreateTime = now
		l.UpdateTime = now
		args = append(args, l.ModuleID, l.Name, l.Index, l.VideoUrl, l.VideoType, l.TextContent, l.CreateTime, l.UpdateTime)
	}
	res, err := m.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return err
	}
	first, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for i, l := range ls {
		l.ID = first + int64(i)
	}
	return nil
}

func (m *MySQLMapper) Update(ctx context.Context, l *Lesson) error {
	l.UpdateTime = time.Now()
	_, err := m.db.ExecContext(ctx, `
		UPDATE lesson SET name = ?, idx = ?, video_url = ?, video_type = ?, text_content = ?, update_time = ?
		WHERE id = ? AND module_id = ?
	`, l.Name, l.Index, l.VideoUrl, l.VideoType, l.TextContent, l.UpdateTime, l.ID, l.ModuleID)
	return err
}

// DeleteMany 删除指定课时，附件由库表级联外键一并删除
func (m *MySQLMapper) DeleteMany(ctx context.Context, moduleID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := []any{moduleID}
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}
	query := "DELETE FROM " + LessonTableName + " WHERE module_id = ? AND id IN (" + strings.Join(placeholders, ",") + ")"
	_, err := m.db.ExecContext(ctx, query, args...)
	return err
}

func (m *MySQLMapper) FindOne(ctx context.Context, id int64) (*Lesson, error) {
	var l Lesson
	err := m.db.QueryRowContext(ctx, `
		SELECT id, module_id, name, idx, video_url, video_type, text_content, create_time, update_time
		FROM lesson WHERE id = ?
	`, id).Scan(&l.ID, &l.ModuleID, &l.Name, &l.Index, &l.VideoUrl, &l.VideoType, &l.TextContent, &l.CreateTime, &l.UpdateTime)
	switch {
	case err == nil:
		return &l, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MySQLMapper) FindManyByModule(ctx context.Context, moduleID int64) ([]*Lesson, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, module_id, name, idx, video_url, video_type, text_content, create_time, update_time
		FROM lesson WHERE module_id = ?
		ORDER BY idx ASC, id ASC
	`, moduleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ls []*Lesson
	for rows.Next() {
		var l Lesson
		if err := rows.Scan(&l.ID, &l.ModuleID, &l.Name, &l.Index, &l.VideoUrl, &l.VideoType, &l.TextContent, &l.CreateTime, &l.UpdateTime); err != nil {
			return nil, err
		}
		ls = append(ls, &l)
	}
	return ls, rows.Err()
}
