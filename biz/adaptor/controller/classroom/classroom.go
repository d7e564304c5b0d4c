package classroom

import (
	"context"

	"classroom-sync/biz/adaptor"
	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/util"
	"classroom-sync/biz/infrastructure/util/log"
	"classroom-sync/provider"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// CreateClassroom 创建教室及其完整内容树
func CreateClassroom(ctx context.Context, c *app.RequestContext) {
	var req studio.CreateClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	log.CtxInfo(ctx, "[CreateClassroom] req=%s", util.JSONF(&req))

	p := provider.Get()
	resp, err := p.ClassroomService.CreateClassroom(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		log.CtxError(ctx, "[CreateClassroom] 创建失败: %v", err)
		c.JSON(consts.StatusInternalServerError, util.Fail(err))
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// UpdateClassroom 按客户端内容树调和已有教室
func UpdateClassroom(ctx context.Context, c *app.RequestContext) {
	var req studio.UpdateClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	log.CtxInfo(ctx, "[UpdateClassroom] req=%s", util.JSONF(&req))

	p := provider.Get()
	resp, err := p.ClassroomService.UpdateClassroom(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		log.CtxError(ctx, "[UpdateClassroom] 更新失败: %v", err)
		c.JSON(consts.StatusInternalServerError, util.Fail(err))
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// AttachResource 向已有课时挂载单个资源
func AttachResource(ctx context.Context, c *app.RequestContext) {
	var req studio.AttachResourceReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	log.CtxInfo(ctx, "[AttachResource] req=%s", util.JSONF(&req))

	p := provider.Get()
	resp, err := p.ClassroomService.AttachResource(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		log.CtxError(ctx, "[AttachResource] 挂载失败: %v", err)
		c.JSON(consts.StatusInternalServerError, util.Fail(err))
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// GetClassroom 获取教室详情
func GetClassroom(ctx context.Context, c *app.RequestContext) {
	var req studio.GetClassroomReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	p := provider.Get()
	resp, err := p.ClassroomService.GetClassroom(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		log.CtxError(ctx, "[GetClassroom] 查询失败: %v", err)
		c.JSON(consts.StatusInternalServerError, util.Fail(err))
		return
	}
	c.JSON(consts.StatusOK, resp)
}

// ApplySignedUrl 获取资源上传的预签名链接
func ApplySignedUrl(ctx context.Context, c *app.RequestContext) {
	var req studio.ApplySignedUrlReq
	if err := c.BindAndValidate(&req); err != nil {
		c.String(consts.StatusBadRequest, err.Error())
		return
	}

	log.CtxInfo(ctx, "[ApplySignedUrl] req=%s", util.JSONF(&req))

	p := provider.Get()
	resp, err := p.StsService.ApplySignedUrl(adaptor.InjectContext(ctx, c), &req)
	if err != nil {
		log.CtxError(ctx, "[ApplySignedUrl] 签发失败: %v", err)
		c.JSON(consts.StatusInternalServerError, util.Fail(err))
		return
	}
	c.JSON(consts.StatusOK, resp)
}
