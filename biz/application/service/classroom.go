package service

import (
	"context"
	"fmt"

	"classroom-sync/biz/adaptor"
	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/cache"
	"classroom-sync/biz/infrastructure/config"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/repository/classroom"
	"classroom-sync/biz/infrastructure/repository/lesson"
	"classroom-sync/biz/infrastructure/repository/module"
	"classroom-sync/biz/infrastructure/repository/resource"
	"classroom-sync/biz/infrastructure/repository/synclog"
	"classroom-sync/biz/infrastructure/util/attachment"
	"classroom-sync/biz/infrastructure/util/log"

	"github.com/google/wire"
	"github.com/jinzhu/copier"
)

type IClassroomService interface {
	CreateClassroom(ctx context.Context, req *studio.CreateClassroomReq) (*studio.CreateClassroomResp, error)
	UpdateClassroom(ctx context.Context, req *studio.UpdateClassroomReq) (*studio.UpdateClassroomResp, error)
	AttachResource(ctx context.Context, req *studio.AttachResourceReq) (*studio.AttachResourceResp, error)
	GetClassroom(ctx context.Context, req *studio.GetClassroomReq) (*studio.GetClassroomResp, error)
}

type ClassroomService struct {
	Builder         *AggregateBuilder
	Reconciler      *TreeReconciler
	ClassroomMapper classroom.IClassroomMapper
	ModuleMapper    module.IModuleMapper
	LessonMapper    lesson.ILessonMapper
	ResourceMapper  resource.IResourceMapper
	SyncLogMapper   synclog.ISyncLogMapper
	CacheMapper     cache.IClassroomCacheMapper
}

var ClassroomServiceSet = wire.NewSet(
	wire.Struct(new(ClassroomService), "*"),
	wire.Bind(new(IClassroomService), new(*ClassroomService)),
)

// CreateClassroom 创建课程树，全有全无：任一步失败不留下任何可见的部分树
func (s *ClassroomService) CreateClassroom(ctx context.Context, req *studio.CreateClassroomReq) (*studio.CreateClassroomResp, error) {
	// 获取用户信息
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	// 参数校验在任何存储操作之前完成
	if req.CommunityId <= 0 || req.Name == "" {
		return nil, consts.ErrInvalidParams
	}
	if err := validateTree(req.Modules); err != nil {
		return nil, err
	}

	resp, err := s.Builder.Build(ctx, req)
	if err != nil {
		log.CtxError(ctx, "创建课程失败: %v", err)
		return nil, consts.ErrCreateClassroom
	}

	s.writeSyncLog(ctx, resp.ClassroomId, consts.SyncOpCreate, userMeta.GetUserId(), int64(len(resp.Lessons)), nil)
	return resp, nil
}

// UpdateClassroom 把持久化课程树收敛到提交的目标树。
// 单节点失败不中断整体调用，失败明细随响应返回并写入审计日志。
func (s *ClassroomService) UpdateClassroom(ctx context.Context, req *studio.UpdateClassroomReq) (*studio.UpdateClassroomResp, error) {
	// 获取用户信息
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if req.ClassroomId <= 0 || req.Name == "" {
		return nil, consts.ErrInvalidParams
	}
	if err := validateTree(req.Modules); err != nil {
		return nil, err
	}

	// 验证课程是否存在
	c, err := s.ClassroomMapper.FindOne(ctx, req.ClassroomId)
	if err != nil {
		log.CtxError(ctx, "课程不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	resp, err := s.Reconciler.Reconcile(ctx, c, req)
	if err != nil {
		log.CtxError(ctx, "更新课程失败: %v", err)
		return nil, consts.ErrUpdateClassroom
	}

	s.writeSyncLog(ctx, resp.ClassroomId, consts.SyncOpUpdate, userMeta.GetUserId(), int64(len(resp.Lessons)), resp.Failures)
	s.invalidate(ctx, resp.ClassroomId)
	return resp, nil
}

// AttachResource 延迟上传完成后挂载单个附件，无收敛语义
func (s *ClassroomService) AttachResource(ctx context.Context, req *studio.AttachResourceReq) (*studio.AttachResourceResp, error) {
	// 获取用户信息
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}

	if req.LessonId <= 0 || req.Resource == nil {
		return nil, consts.ErrInvalidParams
	}
	if err := validateResource(req.Resource); err != nil {
		return nil, err
	}
	if attachment.IsInline(req.Resource.Url) {
		return nil, consts.ErrInlineResource
	}

	// 验证课时是否存在
	l, err := s.LessonMapper.FindOne(ctx, req.LessonId)
	if err != nil {
		log.CtxError(ctx, "课时不存在: %v", err)
		return nil, consts.ErrNotFound
	}

	row := toResourceRow(l.ID, req.Resource)
	row.ID = 0 // 挂载永远是新建
	if err := s.ResourceMapper.InsertOne(ctx, row); err != nil {
		log.CtxError(ctx, "附件入库失败: %v", err)
		return nil, consts.ErrAttachResource
	}

	if mod, err := s.ModuleMapper.FindOne(ctx, l.ModuleID); err == nil {
		s.invalidate(ctx, mod.ClassroomID)
	} else {
		log.CtxError(ctx, "课时 %d 定位课程失败, 详情缓存未失效: %v", l.ID, err)
	}
	return &studio.AttachResourceResp{ResourceId: row.ID}, nil
}

// GetClassroom 读取完整课程树，带缓存
func (s *ClassroomService) GetClassroom(ctx context.Context, req *studio.GetClassroomReq) (*studio.GetClassroomResp, error) {
	userMeta := adaptor.ExtractUserMeta(ctx)
	if userMeta.GetUserId() == "" {
		return nil, consts.ErrNotAuthentication
	}
	if req.ClassroomId <= 0 {
		return nil, consts.ErrInvalidParams
	}

	if cached, err := s.CacheMapper.Get(ctx, req.ClassroomId); err == nil {
		return &studio.GetClassroomResp{
			Classroom: cached,
			ShareUrl:  shareUrl(cached.Slug),
		}, nil
	}

	c, err := s.ClassroomMapper.FindOne(ctx, req.ClassroomId)
	if err != nil {
		return nil, consts.ErrNotFound
	}

	info, err := s.assembleTree(ctx, c)
	if err != nil {
		log.CtxError(ctx, "获取课程详情失败: %v", err)
		return nil, consts.ErrGetClassroom
	}

	if err := s.CacheMapper.Set(ctx, c.ID, info); err != nil {
		log.CtxError(ctx, "课程详情写缓存失败: %v", err)
	}

	return &studio.GetClassroomResp{
		Classroom: info,
		ShareUrl:  shareUrl(info.Slug),
	}, nil
}

// assembleTree 自顶向下拼出完整课程树
func (s *ClassroomService) assembleTree(ctx context.Context, c *classroom.Classroom) (*studio.ClassroomInfo, error) {
	info := &studio.ClassroomInfo{}
	if err := copier.Copy(info, c); err != nil {
		return nil, err
	}
	info.Id = c.ID
	info.CommunityId = c.CommunityID

	mods, err := s.ModuleMapper.FindManyByClassroom(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	info.Modules = make([]*studio.ModuleInfo, 0, len(mods))
	for _, mod := range mods {
		mi := &studio.ModuleInfo{
			Id:          mod.ID,
			Name:        mod.Name,
			Index:       mod.Index,
			Description: mod.Description,
		}

		ls, err := s.LessonMapper.FindManyByModule(ctx, mod.ID)
		if err != nil {
			return nil, err
		}
		mi.Lessons = make([]*studio.LessonInfo, 0, len(ls))
		for _, l := range ls {
			li := &studio.LessonInfo{}
			if err := copier.Copy(li, l); err != nil {
				return nil, err
			}
			li.Id = l.ID

			rs, err := s.ResourceMapper.FindManyByLesson(ctx, l.ID)
			if err != nil {
				return nil, err
			}
			li.Resources = make([]*studio.ResourceInfo, 0, len(rs))
			for _, r := range rs {
				li.Resources = append(li.Resources, &studio.ResourceInfo{
					Id:       r.ID,
					Type:     r.Kind,
					Url:      r.Url,
					Name:     r.DisplayName,
					FileType: r.FileType,
					FileSize: r.FileSize,
				})
			}
			mi.Lessons = append(mi.Lessons, li)
		}
		info.Modules = append(info.Modules, mi)
	}
	return info, nil
}

// writeSyncLog 同步结果留档，失败只记日志不阻断调用
func (s *ClassroomService) writeSyncLog(ctx context.Context, classroomID int64, op, operator string, lessonCount int64, failures []*studio.SyncFailure) {
	entry := &synclog.SyncLog{
		ClassroomID: classroomID,
		Operation:   op,
		OperatorID:  operator,
		LessonCount: lessonCount,
	}
	if len(failures) > 0 {
		if err := copier.Copy(&entry.Failures, failures); err != nil {
			log.CtxError(ctx, "失败明细转换失败: %v", err)
		}
	}
	if err := s.SyncLogMapper.Insert(ctx, entry); err != nil {
		log.CtxError(ctx, "同步审计日志写入失败: %v", err)
	}
}

func (s *ClassroomService) invalidate(ctx context.Context, classroomID int64) {
	if err := s.CacheMapper.Delete(ctx, classroomID); err != nil {
		log.CtxError(ctx, "课程 %d 缓存失效失败: %v", classroomID, err)
	}
}

func shareUrl(slug string) string {
	return fmt.Sprintf("%s/classroom/%s", config.GetConfig().Api.SiteURL, slug)
}

// validateTree 校验提交树的必填字段，在任何存储操作之前调用
func validateTree(mods []*studio.ModuleNode) error {
	for _, mn := range mods {
		if mn == nil || mn.Name == "" {
			return consts.ErrInvalidParams
		}
		for _, ln := range mn.Lessons {
			if ln == nil || ln.Name == "" {
				return consts.ErrInvalidParams
			}
			for _, rn := range ln.Resources {
				if err := validateResource(rn); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func validateResource(rn *studio.ResourceNode) error {
	if rn == nil || rn.Url == "" || rn.Name == "" {
		return consts.ErrInvalidParams
	}
	if rn.Type != consts.ResourceKindLink && rn.Type != consts.ResourceKindFile {
		return consts.ErrInvalidParams
	}
	return nil
}
