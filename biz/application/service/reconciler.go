package service

import (
	"context"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/repository/classroom"
	"classroom-sync/biz/infrastructure/repository/lesson"
	"classroom-sync/biz/infrastructure/repository/module"
	"classroom-sync/biz/infrastructure/repository/resource"
	"classroom-sync/biz/infrastructure/util/attachment"
	"classroom-sync/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/samber/lo"
)

// TreeReconciler 把持久化的课程树收敛到调用方提交的目标树。
// 逐层自顶向下，按持久化 id 匹配节点：带 id 的原地更新，无 id 的新建，
// 不在保留集里的删除（子级由级联外键清理）。与创建不同，更新不是全有全无：
// 单节点失败只记录并跳过，兄弟节点继续处理——中途放弃会让树停在比部分更新
// 更糟的状态。失败节点此前的持久化状态保持不变。
type TreeReconciler struct {
	ClassroomMapper classroom.IClassroomMapper
	ModuleMapper    module.IModuleMapper
	LessonMapper    lesson.ILessonMapper
	ResourceMapper  resource.IResourceMapper
}

var TreeReconcilerSet = wire.NewSet(
	wire.Struct(new(TreeReconciler), "*"),
)

func (r *TreeReconciler) Reconcile(ctx context.Context, c *classroom.Classroom, req *studio.UpdateClassroomReq) (*studio.UpdateClassroomResp, error) {
	// 课程标量字段无条件更新
	c.Name = req.Name
	c.Description = req.Description
	c.Type = req.Type
	c.OneTimePayment = req.OneTimePayment
	c.TimeUnlockInDays = req.TimeUnlockInDays
	c.IsDraft = req.IsDraft
	switch {
	case req.CoverUrl == nil:
		c.CoverUrl = nil
	case !attachment.IsInline(*req.CoverUrl):
		c.CoverUrl = req.CoverUrl
	default:
		// 内联封面等待加签上传，保留已持久化的旧封面
	}
	if err := r.ClassroomMapper.Update(ctx, c); err != nil {
		return nil, err
	}

	resp := &studio.UpdateClassroomResp{ClassroomId: c.ID}

	existing, err := r.ModuleMapper.FindManyByClassroom(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	keep := make(map[int64]struct{}, len(req.Modules))
	for _, mn := range req.Modules {
		row := &module.Module{
			ClassroomID: c.ID,
			Name:        mn.Name,
			Index:       mn.Index,
			Description: mn.Description,
		}
		if id, ok := existingID(mn.Id); ok {
			row.ID = id
			// 更新失败也要保留原行，不能落入删除集
			keep[id] = struct{}{}
			if err := r.ModuleMapper.Update(ctx, row); err != nil {
				r.recordFailure(ctx, resp, "module", mn.Name, mn.Index, err)
				continue
			}
		} else {
			if err := r.ModuleMapper.InsertMany(ctx, []*module.Module{row}); err != nil {
				r.recordFailure(ctx, resp, "module", mn.Name, mn.Index, err)
				continue
			}
			keep[row.ID] = struct{}{}
		}
		r.reconcileLessons(ctx, resp, row.ID, mn)
	}

	stale := lo.FilterMap(existing, func(mod *module.Module, _ int) (int64, bool) {
		_, ok := keep[mod.ID]
		return mod.ID, !ok
	})
	if err := r.ModuleMapper.DeleteMany(ctx, c.ID, stale); err != nil {
		r.recordFailure(ctx, resp, "module", "", 0, err)
	}
	return resp, nil
}

func (r *TreeReconciler) reconcileLessons(ctx context.Context, resp *studio.UpdateClassroomResp, moduleID int64, mn *studio.ModuleNode) {
	existing, err := r.LessonMapper.FindManyByModule(ctx, moduleID)
	if err != nil {
		r.recordFailure(ctx, resp, "lesson", mn.Name, mn.Index, err)
		return
	}

	keep := make(map[int64]struct{}, len(mn.Lessons))
	for _, ln := range mn.Lessons {
		row := &lesson.Lesson{
			ModuleID:    moduleID,
			Name:        ln.Name,
			Index:       ln.Index,
			VideoUrl:    ln.VideoUrl,
			VideoType:   ln.VideoType,
			TextContent: ln.TextContent,
		}
		if id, ok := existingID(ln.Id); ok {
			row.ID = id
			keep[id] = struct{}{}
			if err := r.LessonMapper.Update(ctx, row); err != nil {
				r.recordFailure(ctx, resp, "lesson", ln.Name, ln.Index, err)
				continue
			}
		} else {
			if err := r.LessonMapper.InsertMany(ctx, []*lesson.Lesson{row}); err != nil {
				r.recordFailure(ctx, resp, "lesson", ln.Name, ln.Index, err)
				continue
			}
			keep[row.ID] = struct{}{}
		}
		resp.Lessons = append(resp.Lessons, &studio.LessonManifest{
			Id:          row.ID,
			ModuleIndex: mn.Index,
			LessonIndex: ln.Index,
		})
		r.reconcileResources(ctx, resp, row.ID, ln)
	}

	stale := lo.FilterMap(existing, func(l *lesson.Lesson, _ int) (int64, bool) {
		_, ok := keep[l.ID]
		return l.ID, !ok
	})
	if err := r.LessonMapper.DeleteMany(ctx, moduleID, stale); err != nil {
		r.recordFailure(ctx, resp, "lesson", mn.Name, mn.Index, err)
	}
}

func (r *TreeReconciler) reconcileResources(ctx context.Context, resp *studio.UpdateClassroomResp, lessonID int64, ln *studio.LessonNode) {
	// 内联编码的附件不参与收敛，也不进入保留集，等待加签上传后单独挂载
	persistable, _ := attachment.Classify(ln.Resources)

	existing, err := r.ResourceMapper.FindManyByLesson(ctx, lessonID)
	if err != nil {
		r.recordFailure(ctx, resp, "resource", ln.Name, ln.Index, err)
		return
	}

	keep := make(map[int64]struct{}, len(persistable))
	for _, rn := range persistable {
		row := toResourceRow(lessonID, rn)
		if id, ok := existingID(rn.Id); ok {
			keep[id] = struct{}{}
			if err := r.ResourceMapper.Update(ctx, row); err != nil {
				r.recordFailure(ctx, resp, "resource", rn.Name, 0, err)
				continue
			}
		} else {
			if err := r.ResourceMapper.InsertOne(ctx, row); err != nil {
				r.recordFailure(ctx, resp, "resource", rn.Name, 0, err)
				continue
			}
			keep[row.ID] = struct{}{}
		}
	}

	stale := lo.FilterMap(existing, func(res *resource.Resource, _ int) (int64, bool) {
		_, ok := keep[res.ID]
		return res.ID, !ok
	})
	if err := r.ResourceMapper.DeleteMany(ctx, lessonID, stale); err != nil {
		r.recordFailure(ctx, resp, "resource", ln.Name, ln.Index, err)
	}
}

func (r *TreeReconciler) recordFailure(ctx context.Context, resp *studio.UpdateClassroomResp, level, name string, index int64, err error) {
	log.CtxError(ctx, "课程 %d 收敛失败, level=%s, name=%s, err=%v", resp.ClassroomId, level, name, err)
	resp.Failures = append(resp.Failures, &studio.SyncFailure{
		Level:  level,
		Name:   name,
		Index:  index,
		Reason: err.Error(),
	})
}
