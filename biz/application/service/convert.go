package service

import (
	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"
	"classroom-sync/biz/infrastructure/repository/resource"
	"classroom-sync/biz/infrastructure/util/attachment"
)

// existingID 判定节点身份：合法的正数 id 表示更新已存在节点，否则新建。
// 身份判定只在这里做一次，各层不再散落对哨兵值的判断。
func existingID(id *int64) (int64, bool) {
	if id != nil && *id > 0 {
		return *id, true
	}
	return 0, false
}

// toResourceRow 把提交的附件节点转换为数据库行，文件类型从 url 推导
func toResourceRow(lessonID int64, rn *studio.ResourceNode) *resource.Resource {
	r := &resource.Resource{
		LessonID:    lessonID,
		Url:         rn.Url,
		Kind:        rn.Type,
		DisplayName: rn.Name,
		FileSize:    rn.Size,
	}
	if rn.Type == consts.ResourceKindFile {
		r.FileType = attachment.FileTypeOf(rn.Url)
	}
	if id, ok := existingID(rn.Id); ok {
		r.ID = id
	}
	return r
}
