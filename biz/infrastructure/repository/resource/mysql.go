package resource

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/mysql"
)

const ResourceTableName = "resource"

type IResourceMapper interface {
	InsertOne(ctx context.Context, r *Resource) error
	InsertMany(ctx context.Context, rs []*Resource) error
	Update(ctx context.Context, r *Resource) error
	DeleteMany(ctx context.Context, lessonID int64, ids []int64) error
	FindManyByLesson(ctx context.Context, lessonID int64) ([]*Resource, error)
}

type MySQLMapper struct {
	db *sql.DB
}

func NewMySQLMapper(config *config.Config) *MySQLMapper {
	return &MySQLMapper{db: mysql.GetDB(config)}
}

func (m *MySQLMapper) InsertOne(ctx context.Context, r *Resource) error {
	now := time.Now()
	r.CreateTime = now
	r.UpdateTime = now
	res, err := m.db.ExecContext(ctx, `
		INSERT INTO resource (lesson_id, url, kind, display_name, file_type, file_size, create_time, update_time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, r.LessonID, r.Url, r.Kind, r.DisplayName, r.FileType, r.FileSize, r.CreateTime, r.UpdateTime)
	if err != nil {
		return err
	}
	r.ID, err = res.LastInsertId()
	return err
}

// InsertMany 单条语句批量插入，要么全部成功要么全部失败
func (m *MySQLMapper) InsertMany(ctx context.Context, rs []*Resource) error {
	if len(rs) == 0 {
		return nil
	}
	now := time.Now()
	var sb strings.Builder
	sb.WriteString("INSERT INTO " + ResourceTableName + " (lesson_id, url, kind, display_name, file_type, file_size, create_time, update_time) VALUES ")
	args := make([]any, 0, len(rs)*8)
	for i, r := range rs {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?, ?, ?)")
		r.CreateTime = now
		r.UpdateTime = now
		args = append(args, r.LessonID, r.Url, r.Kind, r.DisplayName, r.FileType, r.FileSize, r.CreateTime, r.UpdateTime)
	}
	res, err := m.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return err
	}
	first, err := res.LastInsertId()
	if err != nil {
		return err
	}
	for i, r := range rs {
		r.ID = first + int64(i)
	}
	return nil
}

func (m *MySQLMapper) Update(ctx context.Context, r *Resource) error {
	r.UpdateTime = time.Now()
	_, err := m.db.ExecContext(ctx, `
		UPDATE resource SET url = ?, kind = ?, display_name = ?, file_type = ?, file_size = ?, update_time = ?
		WHERE id = ? AND lesson_id = ?
	`, r.Url, r.Kind, r.DisplayName, r.FileType, r.FileSize, r.UpdateTime, r.ID, r.LessonID)
	return err
}

func (m *MySQLMapper) DeleteMany(ctx context.Context, lessonID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := []any{lessonID}
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}
	query := "DELETE FROM " + ResourceTableName + " WHERE lesson_id = ? AND id IN (" + strings.Join(placeholders, ",") + ")"
	_, err := m.db.ExecContext(ctx, query, args...)
	return err
}

func (m *MySQLMapper) FindManyByLesson(ctx context.Context, lessonID int64) ([]*Resource, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, lesson_id, url, kind, display_name, file_type, file_size, create_time, update_time
		FROM resource WHERE lesson_id = ?
		ORDER BY id ASC
	`, lessonID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs []*Resource
	for rows.Next() {
		var r Resource
		if err := rows.Scan(&r.ID, &r.LessonID, &r.Url, &r.Kind, &r.DisplayName, &r.FileType, &r.FileSize, &r.CreateTime, &r.UpdateTime); err != nil {
			return nil, err
		}
		rs = append(rs, &r)
	}
	return rs, rows.Err()
}
