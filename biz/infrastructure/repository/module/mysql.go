package module

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

const ModuleTableName = "module"

type IModuleMapper interface {
	InsertMany(ctx context.Context, ms []*Module) error
	Update(ctx context.Context, mod *Module) error
	DeleteMany(ctx context.Context, classroomID int64, ids []int64) error
	FindOne(ctx context.Context, id int64) (*Module, error)
	FindManyByClassroom(ctx context.Context, classroomID int64) ([]*Module, error)
}

type MySQLMapper struct {
	db *sql.DB
}

func NewMySQLMapper(config *config.Config) *MySQLMapper {
	return &MySQLMapper{db: mysql.GetDB(config)}
}

// InsertMany 单条语句批量插入，要么全部成功要么全部失败
func (m *MySQLMapper) InsertMany(ctx context.Context, ms []*Module) error {
	if len(ms) == 0 {
		return nil
	}
	now := time.Now()
	var sb strings.Builder
	sb.WriteString("INSERT INTO " + ModuleTableName + " (classroom_id, name, idx, description, create_time, update_time) VALUES ")
	args := make([]any, 0, len(ms)*6)
	for i, mod := range ms {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString("(?, ?, ?, ?, ?, ?)")
		mod.CreateTime = now
		mod.UpdateTime = now
		args = append(args, mod.ClassroomID, mod.Name, mod.Index, mod.Description, mod.CreateTime, mod.UpdateTime)
	}
	res, err := m.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return err
	}
	first, err := res.LastInsertId()
	if err != nil {
		return err
	}
	// 单条多行插入在 innodb 默认自增锁模式下 id 连续，按提交顺序回填
	for i, mod := range ms {
		mod.ID = first + int64(i)
	}
	return nil
}

func (m *MySQLMapper) Update(ctx context.Context, mod *Module) error {
	mod.UpdateTime = time.Now()
	_, err := m.db.ExecContext(ctx, `
		UPDATE module SET name = ?, idx = ?, description = ?, update_time = ?
		WHERE id = ? AND classroom_id = ?
	`, mod.Name, mod.Index, mod.Description, mod.UpdateTime, mod.ID, mod.ClassroomID)
	return err
}

// DeleteMany 删除指定章节，课时与附件由库表级联外键一并删除
func (m *MySQLMapper) DeleteMany(ctx context.Context, classroomID int64, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	placeholders := make([]string, len(ids))
	args := []any{classroomID}
	for i, id := range ids {
		placeholders[i] = "?"
		args = append(args, id)
	}
	query := "DELETE FROM " + ModuleTableName + " WHERE classroom_id = ? AND id IN (" + strings.Join(placeholders, ",") + ")"
	_, err := m.db.ExecContext(ctx, query, args...)
	return err
}

func (m *MySQLMapper) FindOne(ctx context.Context, id int64) (*Module, error) {
	var mod Module
	err := m.db.QueryRowContext(ctx, `
		SELECT id, classroom_id, name, idx, description, create_time, update_time
		FROM module WHERE id = ?
	`, id).Scan(&mod.ID, &mod.ClassroomID, &mod.Name, &mod.Index, &mod.Description, &mod.CreateTime, &mod.UpdateTime)
	switch {
	case err == nil:
		return &mod, nil
	case errors.Is(err, sql.ErrNoRows):
		return nil, consts.ErrNotFound
	default:
		return nil, err
	}
}

func (m *MySQLMapper) FindManyByClassroom(ctx context.Context, classroomID int64) ([]*Module, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, classroom_id, name, idx, description, create_time, update_time
		FROM module WHERE classroom_id = ?
		ORDER BY idx ASC, id ASC
	`, classroomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms []*Module
	for rows.Next() {
		var mod Module
		if err := rows.Scan(&mod.ID, &mod.ClassroomID, &mod.Name, &mod.Index, &mod.Description, &mod.CreateTime, &mod.UpdateTime); err != nil {
			return nil, err
		}
		ms = append(ms, &mod)
	}
	return ms, rows.Err()
}
