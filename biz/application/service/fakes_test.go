package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/repository/classroom"
	"classroom-sync/biz/infrastructure/repository/lesson"
	"classroom-sync/biz/infrastructure/repository/module"
	"classroom-sync/biz/infrastructure/repository/resource"
	"classroom-sync/biz/infrastructure/repository/synclog"
)

var errStore = errors.New("storage unavailable")

// fakeStore 模拟带级联外键的关系存储，四张表共享一套自增 id。
// fail* 字段用于注入单点故障。
type fakeStore struct {
	nextID     int64
	classrooms map[int64]*classroom.Classroom
	modules    map[int64]*module.Module
	lessons    map[int64]*lesson.Lesson
	resources  map[int64]*resource.Resource

	failClassroomInsert bool
	failLessonInsert    bool
	failResourceInsert  bool
	failModuleUpdateID  int64
	failLessonUpdateID  int64

	classroomDeletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		classrooms: make(map[int64]*classroom.Classroom),
		modules:    make(map[int64]*module.Module),
		lessons:    make(map[int64]*lesson.Lesson),
		resources:  make(map[int64]*resource.Resource),
	}
}

func (s *fakeStore) id() int64 {
	s.nextID++
	return s.nextID
}

// deleteModuleRow 连同课时与附件一并删除，模拟级联外键
func (s *fakeStore) deleteModuleRow(id int64) {
	delete(s.modules, id)
	for lid, l := range s.lessons {
		if l.ModuleID == id {
			s.deleteLessonRow(lid)
		}
	}
}

func (s *fakeStore) deleteLessonRow(id int64) {
	delete(s.lessons, id)
	for rid, r := range s.resources {
		if r.LessonID == id {
			delete(s.resources, rid)
		}
	}
}

type fakeClassroomMapper struct{ s *fakeStore }

func (m *fakeClassroomMapper) InsertOne(_ context.Context, c *classroom.Classroom) error {
	if m.s.failClassroomInsert {
		return errStore
	}
	c.ID = m.s.id()
	cp := *c
	m.s.classrooms[c.ID] = &cp
	return nil
}

func (m *fakeClassroomMapper) Update(_ context.Context, c *classroom.Classroom) error {
	if _, ok := m.s.classrooms[c.ID]; !ok {
		return consts.ErrNotFound
	}
	cp := *c
	m.s.classrooms[c.ID] = &cp
	return nil
}

func (m *fakeClassroomMapper) Delete(_ context.Context, id int64) error {
	m.s.classroomDeletes++
	delete(m.s.classrooms, id)
	for mid, mod := range m.s.modules {
		if mod.ClassroomID == id {
			m.s.deleteModuleRow(mid)
		}
	}
	return nil
}

func (m *fakeClassroomMapper) FindOne(_ context.Context, id int64) (*classroom.Classroom, error) {
	c, ok := m.s.classrooms[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (m *fakeClassroomMapper) FindOneBySlug(_ context.Context, slug string) (*classroom.Classroom, error) {
	for _, c := range m.s.classrooms {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, consts.ErrNotFound
}

type fakeModuleMapper struct{ s *fakeStore }

func (m *fakeModuleMapper) InsertMany(_ context.Context, ms []*module.Module) error {
	for _, mod := range ms {
		mod.ID = m.s.id()
		cp := *mod
		m.s.modules[mod.ID] = &cp
	}
	return nil
}

func (m *fakeModuleMapper) Update(_ context.Context, mod *module.Module) error {
	if mod.ID == m.s.failModuleUpdateID {
		return errStore
	}
	if _, ok := m.s.modules[mod.ID]; !ok {
		return consts.ErrNotFound
	}
	cp := *mod
	m.s.modules[mod.ID] = &cp
	return nil
}

func (m *fakeModuleMapper) DeleteMany(_ context.Context, classroomID int64, ids []int64) error {
	for _, id := range ids {
		if mod, ok := m.s.modules[id]; ok && mod.ClassroomID == classroomID {
			m.s.deleteModuleRow(id)
		}
	}
	return nil
}

func (m *fakeModuleMapper) FindOne(_ context.Context, id int64) (*module.Module, error) {
	mod, ok := m.s.modules[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *mod
	return &cp, nil
}

func (m *fakeModuleMapper) FindManyByClassroom(_ context.Context, classroomID int64) ([]*module.Module, error) {
	var ms []*module.Module
	for _, mod := range m.s.modules {
		if mod.ClassroomID == classroomID {
			cp := *mod
			ms = append(ms, &cp)
		}
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].Index != ms[j].Index {
			return ms[i].Index < ms[j].Index
		}
		return ms[i].ID < ms[j].ID
	})
	return ms, nil
}

type fakeLessonMapper struct{ s *fakeStore }

func (m *fakeLessonMapper) InsertMany(_ context.Context, ls []*lesson.Lesson) error {
	if m.s.failLessonInsert {
		return errStore
	}
	for _, l := range ls {
		l.ID = m.s.id()
		cp := *l
		m.s.lessons[l.ID] = &cp
	}
	return nil
}

func (m *fakeLessonMapper) Update(_ context.Context, l *lesson.Lesson) error {
	if l.ID == m.s.failLessonUpdateID {
		return errStore
	}
	if _, ok := m.s.lessons[l.ID]; !ok {
		return consts.ErrNotFound
	}
	cp := *l
	m.s.lessons[l.ID] = &cp
	return nil
}

func (m *fakeLessonMapper) DeleteMany(_ context.Context, moduleID int64, ids []int64) error {
	for _, id := range ids {
		if l, ok := m.s.lessons[id]; ok && l.ModuleID == moduleID {
			m.s.deleteLessonRow(id)
		}
	}
	return nil
}

func (m *fakeLessonMapper) FindOne(_ context.Context, id int64) (*lesson.Lesson, error) {
	l, ok := m.s.lessons[id]
	if !ok {
		return nil, consts.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (m *fakeLessonMapper) FindManyByModule(_ context.Context, moduleID int64) ([]*lesson.Lesson, error) {
	var ls []*lesson.Lesson
	for _, l := range m.s.lessons {
		if l.ModuleID == moduleID {
			cp := *l
			ls = append(ls, &cp)
		}
	}
	sort.Slice(ls, func(i, j int) bool {
		if ls[i].Index != ls[j].Index {
			return ls[i].Index < ls[j].Index
		}
		return ls[i].ID < ls[j].ID
	})
	return ls, nil
}

type fakeResourceMapper struct{ s *fakeStore }

func (m *fakeResourceMapper) InsertOne(_ context.Context, r *resource.Resource) error {
	if m.s.failResourceInsert {
		return errStore
	}
	r.ID = m.s.id()
	cp := *r
	m.s.resources[r.ID] = &cp
	return nil
}

func (m *fakeResourceMapper) InsertMany(_ context.Context, rs []*resource.Resource) error {
	for _, r := range rs {
		if err := m.InsertOne(nil, r); err != nil {
			return err
		}
	}
	return nil
}

func (m *fakeResourceMapper) Update(_ context.Context, r *resource.Resource) error {
	if _, ok := m.s.resources[r.ID]; !ok {
		return consts.ErrNotFound
	}
	cp := *r
	m.s.resources[r.ID] = &cp
	return nil
}

func (m *fakeResourceMapper) DeleteMany(_ context.Context, lessonID int64, ids []int64) error {
	for _, id := range ids {
		if r, ok := m.s.resources[id]; ok && r.LessonID == lessonID {
			delete(m.s.resources, id)
		}
	}
	return nil
}

func (m *fakeResourceMapper) FindManyByLesson(_ context.Context, lessonID int64) ([]*resource.Resource, error) {
	var rs []*resource.Resource
	for _, r := range m.s.resources {
		if r.LessonID == lessonID {
			cp := *r
			rs = append(rs, &cp)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i].ID < rs[j].ID })
	return rs, nil
}

type fakeSyncLogMapper struct {
	entries []*synclog.SyncLog
}

func (m *fakeSyncLogMapper) Insert(_ context.Context, l *synclog.SyncLog) error {
	m.entries = append(m.entries, l)
	return nil
}

type fakeCacheMapper struct {
	data    map[int64]*studio.ClassroomInfo
	sets    int
	deletes int
}

func newFakeCacheMapper() *fakeCacheMapper {
	return &fakeCacheMapper{data: make(map[int64]*studio.ClassroomInfo)}
}

func (m *fakeCacheMapper) Get(_ context.Context, id int64) (*studio.ClassroomInfo, error) {
	info, ok := m.data[id]
	if !ok {
		return nil, fmt.Errorf("cache miss")
	}
	return info, nil
}

func (m *fakeCacheMapper) Set(_ context.Context, id int64, data *studio.ClassroomInfo) error {
	m.sets++
	m.data[id] = data
	return nil
}

func (m *fakeCacheMapper) Delete(_ context.Context, id int64) error {
	m.deletes++
	delete(m.data, id)
	return nil
}

func newTestBuilder(s *fakeStore) *AggregateBuilder {
	return &AggregateBuilder{
		ClassroomMapper: &fakeClassroomMapper{s},
		ModuleMapper:    &fakeModuleMapper{s},
		LessonMapper:    &fakeLessonMapper{s},
		ResourceMapper:  &fakeResourceMapper{s},
	}
}

func newTestReconciler(s *fakeStore) *TreeReconciler {
	return &TreeReconciler{
		ClassroomMapper: &fakeClassroomMapper{s},
		ModuleMapper:    &fakeModuleMapper{s},
		LessonMapper:    &fakeLessonMapper{s},
		ResourceMapper:  &fakeResourceMapper{s},
	}
}

func newTestService(s *fakeStore) (*ClassroomService, *fakeSyncLogMapper, *fakeCacheMapper) {
	logs := &fakeSyncLogMapper{}
	cache := newFakeCacheMapper()
	svc := &ClassroomService{
		Builder:         newTestBuilder(s),
		Reconciler:      newTestReconciler(s),
		ClassroomMapper: &fakeClassroomMapper{s},
		ModuleMapper:    &fakeModuleMapper{s},
		LessonMapper:    &fakeLessonMapper{s},
		ResourceMapper:  &fakeResourceMapper{s},
		SyncLogMapper:   logs,
		CacheMapper:     cache,
	}
	return svc, logs, cache
}
