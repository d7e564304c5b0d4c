package service

import (
	"context"
	"fmt"
	"testing"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/repository/classroom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }
func intp(i int64) *int64   { return &i }

// twoByTwoReq 两个章节各两个课时，第一个课时带一个外链附件和一个内联附件
func twoByTwoReq() *studio.CreateClassroomReq {
	return &studio.CreateClassroomReq{
		CommunityId: 42,
		Name:        "Intro to Go",
		Description: "from zero to production",
		Type:        consts.ClassroomTypeCourse,
		IsDraft:     true,
		Modules: []*studio.ModuleNode{
			{
				Name:  "Basics",
				Index: 0,
				Lessons: []*studio.LessonNode{
					{
						Name:  "Hello World",
						Index: 0,
						Resources: []*studio.ResourceNode{
							{Type: consts.ResourceKindLink, Url: "https://go.dev/tour", Name: "tour"},
							{Type: consts.ResourceKindFile, Url: "data:application/pdf;base64,JVBERi0x", Name: "slides"},
						},
					},
					{Name: "Types", Index: 1},
				},
			},
			{
				Name:  "Concurrency",
				Index: 1,
				Lessons: []*studio.LessonNode{
					{Name: "Goroutines", Index: 0},
					{Name: "Channels", Index: 1},
				},
			},
		},
	}
}

func TestBuildCreatesFullTree(t *testing.T) {
	s := newFakeStore()
	b := newTestBuilder(s)

	resp, err := b.Build(context.Background(), twoByTwoReq())
	require.NoError(t, err)

	assert.Equal(t, "intro-to-go", resp.Slug)
	require.Contains(t, s.classrooms, resp.ClassroomId)
	assert.Len(t, s.modules, 2)
	assert.Len(t, s.lessons, 4)

	// 每个课时一条清单，id 对应持久化的行
	require.Len(t, resp.Lessons, 4)
	seen := make(map[int64]*studio.LessonManifest)
	for _, lm := range resp.Lessons {
		require.Contains(t, s.lessons, lm.Id)
		seen[lm.Id] = lm
		row := s.lessons[lm.Id]
		assert.Equal(t, lm.LessonIndex, row.Index)
	}
	assert.Len(t, seen, 4)

	// 外链附件入库，内联附件延迟，不入库
	require.Len(t, s.resources, 1)
	for _, r := range s.resources {
		assert.Equal(t, consts.ResourceKindLink, r.Kind)
		assert.Equal(t, "https://go.dev/tour", r.Url)
	}
}

func TestBuildDropsInlineCover(t *testing.T) {
	s := newFakeStore()
	b := newTestBuilder(s)

	req := twoByTwoReq()
	req.CoverUrl = strp("data:image/png;base64,iVBORw0KGgo=")

	resp, err := b.Build(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, s.classrooms[resp.ClassroomId].CoverUrl)
}

func TestBuildRollsBackOnFailure(t *testing.T) {
	s := newFakeStore()
	s.failLessonInsert = true
	b := newTestBuilder(s)

	_, err := b.Build(context.Background(), twoByTwoReq())
	require.Error(t, err)

	// 补偿删除课程行，子级级联清理，调用方看不到任何部分树
	assert.Equal(t, 1, s.classroomDeletes)
	assert.Empty(t, s.classrooms)
	assert.Empty(t, s.modules)
	assert.Empty(t, s.lessons)
	assert.Empty(t, s.resources)
}

func TestBuildRollsBackOnResourceFailure(t *testing.T) {
	s := newFakeStore()
	s.failResourceInsert = true
	b := newTestBuilder(s)

	_, err := b.Build(context.Background(), twoByTwoReq())
	require.Error(t, err)

	assert.Equal(t, 1, s.classroomDeletes)
	assert.Empty(t, s.classrooms)
	assert.Empty(t, s.modules)
	assert.Empty(t, s.lessons)
	assert.Empty(t, s.resources)
}

func TestAllocateSlugAppendsSuffix(t *testing.T) {
	s := newFakeStore()
	s.classrooms[s.id()] = &classroom.Classroom{ID: s.nextID, Slug: "my-class"}
	b := newTestBuilder(s)

	resp, err := b.Build(context.Background(), &studio.CreateClassroomReq{
		CommunityId: 42,
		Name:        "My Class",
		Type:        consts.ClassroomTypeCourse,
	})
	require.NoError(t, err)
	assert.Equal(t, "my-class-1", resp.Slug)
}

func TestAllocateSlugFloorsEmptyBase(t *testing.T) {
	s := newFakeStore()
	b := newTestBuilder(s)

	resp, err := b.Build(context.Background(), &studio.CreateClassroomReq{
		CommunityId: 42,
		Name:        "!!!",
		Type:        consts.ClassroomTypeCourse,
	})
	require.NoError(t, err)
	assert.Equal(t, "classroom", resp.Slug)

	// 兜底前缀冲突时同样追加后缀
	assert.Equal(t, "classroom-1", b.allocateSlug(context.Background(), "???"))
}

func TestAllocateSlugExhaustionFallsBack(t *testing.T) {
	s := newFakeStore()
	s.classrooms[s.id()] = &classroom.Classroom{ID: s.nextID, Slug: "my-class"}
	for i := 1; i < consts.SlugMaxAttempts; i++ {
		s.classrooms[s.id()] = &classroom.Classroom{ID: s.nextID, Slug: fmt.Sprintf("my-class-%d", i)}
	}
	b := newTestBuilder(s)

	// 候选用尽时按现状返回最后一个候选，由数据库唯一键兜底
	assert.Equal(t, "my-class-9", b.allocateSlug(context.Background(), "My Class"))
}
