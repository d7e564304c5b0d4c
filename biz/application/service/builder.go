package service

import (
	"context"
	"errors"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/repository/classroom"
	"classroom-sync/biz/infrastructure/repository/lesson"
	"classroom-sync/biz/infrastructure/repository/module"
	"classroom-sync/biz/infrastructure/repository/resource"
	"classroom-sync/biz/infrastructure/util/attachment"
	"classroom-sync/biz/infrastructure/util/log"
	slugutil "classroom-sync/biz/infrastructure/util/slug"

	"github.com/google/wire"
	"github.com/spf13/cast"
)

// AggregateBuilder 负责课程树的首次创建。
// 存储层没有跨语句事务，按课程→章节→课时→附件的依赖顺序写入，
// 任一步失败时删除课程行作为补偿，子级由库表级联外键清理，
// 对外表现为“课程从未存在过”。
type AggregateBuilder struct {
	ClassroomMapper classroom.IClassroomMapper
	ModuleMapper    module.IModuleMapper
	LessonMapper    lesson.ILessonMapper
	ResourceMapper  resource.IResourceMapper
}

var AggregateBuilderSet = wire.NewSet(
	wire.Struct(new(AggregateBuilder), "*"),
)

func (b *AggregateBuilder) Build(ctx context.Context, req *studio.CreateClassroomReq) (*studio.CreateClassroomResp, error) {
	cover := req.CoverUrl
	if cover != nil && attachment.IsInline(*cover) {
		// 内联封面不落库，等待加签上传后再补
		cover = nil
	}

	c := &classroom.Classroom{
		CommunityID:      req.CommunityId,
		Name:             req.Name,
		Slug:             b.allocateSlug(ctx, req.Name),
		Description:      req.Description,
		Type:             req.Type,
		CoverUrl:         cover,
		OneTimePayment:   req.OneTimePayment,
		TimeUnlockInDays: req.TimeUnlockInDays,
		IsDraft:          req.IsDraft,
	}
	if err := b.ClassroomMapper.InsertOne(ctx, c); err != nil {
		return nil, err
	}

	manifest, err := b.buildTree(ctx, c.ID, req.Modules)
	if err != nil {
		if derr := b.ClassroomMapper.Delete(ctx, c.ID); derr != nil {
			log.CtxError(ctx, "课程 %d 补偿删除失败: %v", c.ID, derr)
		}
		return nil, err
	}

	return &studio.CreateClassroomResp{
		ClassroomId: c.ID,
		Slug:        c.Slug,
		Lessons:     manifest,
	}, nil
}

// buildTree 按提交顺序写入三级子树，返回课时清单
func (b *AggregateBuilder) buildTree(ctx context.Context, classroomID int64, mods []*studio.ModuleNode) ([]*studio.LessonManifest, error) {
	rows := make([]*module.Module, 0, len(mods))
	for _, mn := range mods {
		rows = append(rows, &module.Module{
			ClassroomID: classroomID,
			Name:        mn.Name,
			Index:       mn.Index,
			Description: mn.Description,
		})
	}
	if err := b.ModuleMapper.InsertMany(ctx, rows); err != nil {
		return nil, err
	}

	manifest := make([]*studio.LessonManifest, 0)
	for i, mn := range mods {
		lrows := make([]*lesson.Lesson, 0, len(mn.Lessons))
		for _, ln := range mn.Lessons {
			lrows = append(lrows, &lesson.Lesson{
				ModuleID:    rows[i].ID,
				Name:        ln.Name,
				Index:       ln.Index,
				VideoUrl:    ln.VideoUrl,
				VideoType:   ln.VideoType,
				TextContent: ln.TextContent,
			})
		}
		if err := b.LessonMapper.InsertMany(ctx, lrows); err != nil {
			return nil, err
		}

		for j, ln := range mn.Lessons {
			// 只入库可直接持久化的附件，内联编码的走延迟上传
			persistable, _ := attachment.Classify(ln.Resources)
			rrows := make([]*resource.Resource, 0, len(persistable))
			for _, rn := range persistable {
				rrows = append(rrows, toResourceRow(lrows[j].ID, rn))
			}
			if err := b.ResourceMapper.InsertMany(ctx, rrows); err != nil {
				return nil, err
			}
			manifest = append(manifest, &studio.LessonManifest{
				Id:          lrows[j].ID,
				ModuleIndex: mn.Index,
				LessonIndex: ln.Index,
			})
		}
	}
	return manifest, nil
}

// allocateSlug 在归一化结果上探测唯一性，冲突时追加数字后缀。
// 候选用尽时按现状返回最后一个候选，由数据库唯一键兜底；
// 并发创建同名课程时同样由唯一键报错，作为创建失败处理。
func (b *AggregateBuilder) allocateSlug(ctx context.Context, name string) string {
	base := slugutil.Slugify(name)
	if base == "" {
		// 全符号名归一化后为空，兜底用固定前缀，避免产生前导连字符的候选
		base = "classroom"
	}
	candidate := base
	for i := 0; i < consts.SlugMaxAttempts; i++ {
		if i > 0 {
			candidate = base + "-" + cast.ToString(i)
		}
		_, err := b.ClassroomMapper.FindOneBySlug(ctx, candidate)
		if errors.Is(err, consts.ErrNotFound) {
			return candidate
		}
		if err != nil {
			log.CtxError(ctx, "slug 探测失败: %v", err)
			return candidate
		}
	}
	log.CtxInfo(ctx, "slug 候选已用尽, name=%s, 回退使用 %s", name, candidate)
	return candidate
}
