package studio

// 课程编辑器（studio）提交的课程树结构。
// 任一节点带有合法的正数 id 表示“更新已存在节点”，否则表示“新建节点”。

type Response struct {
	Code int64  `json:"code"`
	Msg  string `json:"msg"`
}

type ResourceNode struct {
	Id   *int64 `json:"id,omitempty"`
	Type string `json:"type"` // LINK | FILE
	Url  string `json:"url"`
	Name string `json:"name"`
	Size *int64 `json:"size,omitempty"` // 字节数，仅 FILE 有意义
}

type LessonNode struct {
	Id          *int64          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Index       int64           `json:"index"`
	VideoUrl    *string         `json:"videoUrl,omitempty"`
	VideoType   *string         `json:"videoType,omitempty"`
	TextContent *string         `json:"textContent,omitempty"`
	Resources   []*ResourceNode `json:"resources,omitempty"`
}

type ModuleNode struct {
	Id          *int64        `json:"id,omitempty"`
	Name        string        `json:"name"`
	Index       int64         `json:"index"`
	Description *string       `json:"description,omitempty"`
	Lessons     []*LessonNode `json:"lessons,omitempty"`
}

type CreateClassroomReq struct {
	CommunityId      int64         `json:"communityId"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Type             string        `json:"type"`
	CoverUrl         *string       `json:"coverUrl,omitempty"`
	OneTimePayment   *int64        `json:"oneTimePayment,omitempty"` // 单位：分
	TimeUnlockInDays *int64        `json:"timeUnlockInDays,omitempty"`
	IsDraft          bool          `json:"isDraft"`
	Modules          []*ModuleNode `json:"modules"`
}

// LessonManifest 返回给调用方的课时清单，调用方据此完成延迟上传后再挂载附件
type LessonManifest struct {
	Id          int64 `json:"id"`
	ModuleIndex int64 `json:"moduleIndex"`
	LessonIndex int64 `json:"lessonIndex"`
}

type CreateClassroomResp struct {
	ClassroomId int64             `json:"classroomId"`
	Slug        string            `json:"slug"`
	Lessons     []*LessonManifest `json:"lessons"`
}

type UpdateClassroomReq struct {
	ClassroomId      int64         `json:"classroomId"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	Type             string        `json:"type"`
	CoverUrl         *string       `json:"coverUrl,omitempty"`
	OneTimePayment   *int64        `json:"oneTimePayment,omitempty"`
	TimeUnlockInDays *int64        `json:"timeUnlockInDays,omitempty"`
	IsDraft          bool          `json:"isDraft"`
	Modules          []*ModuleNode `json:"modules"`
}

// SyncFailure 更新过程中单个节点的失败记录，节点此前的持久化状态保持不变
type SyncFailure struct {
	Level  string `json:"level"` // module | lesson | resource
	Name   string `json:"name"`
	Index  int64  `json:"index"`
	Reason string `json:"reason"`
}

type UpdateClassroomResp struct {
	ClassroomId int64             `json:"classroomId"`
	Lessons     []*LessonManifest `json:"lessons"`
	Failures    []*SyncFailure    `json:"failures,omitempty"`
}

type AttachResourceReq struct {
	LessonId int64         `json:"lessonId"`
	Resource *ResourceNode `json:"resource"`
}

type AttachResourceResp struct {
	ResourceId int64 `json:"resourceId"`
}

type GetClassroomReq struct {
	ClassroomId int64 `query:"classroomId"`
}

type ResourceInfo struct {
	Id       int64   `json:"id"`
	Type     string  `json:"type"`
	Url      string  `json:"url"`
	Name     string  `json:"name"`
	FileType *string `json:"fileType,omitempty"`
	FileSize *int64  `json:"fileSize,omitempty"`
}

type LessonInfo struct {
	Id          int64           `json:"id"`
	Name        string          `json:"name"`
	Index       int64           `json:"index"`
	VideoUrl    *string         `json:"videoUrl,omitempty"`
	VideoType   *string         `json:"videoType,omitempty"`
	TextContent *string         `json:"textContent,omitempty"`
	Resources   []*ResourceInfo `json:"resources"`
}

type ModuleInfo struct {
	Id          int64         `json:"id"`
	Name        string        `json:"name"`
	Index       int64         `json:"index"`
	Description *string       `json:"description,omitempty"`
	Lessons     []*LessonInfo `json:"lessons"`
}

type ClassroomInfo struct {
	Id               int64         `json:"id"`
	CommunityId      int64         `json:"communityId"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	Description      string        `json:"description"`
	Type             string        `json:"type"`
	CoverUrl         *string       `json:"coverUrl,omitempty"`
	OneTimePayment   *int64        `json:"oneTimePayment,omitempty"`
	TimeUnlockInDays *int64        `json:"timeUnlockInDays,omitempty"`
	IsDraft          bool          `json:"isDraft"`
	Modules          []*ModuleInfo `json:"modules"`
}

type GetClassroomResp struct {
	Classroom *ClassroomInfo `json:"classroom"`
	ShareUrl  string         `json:"shareUrl"`
}

type ApplySignedUrlReq struct {
	Prefix *string `json:"prefix,omitempty"`
	Suffix *string `json:"suffix,omitempty"`
}

func (r *ApplySignedUrlReq) GetPrefix() string {
	if r == nil || r.Prefix == nil {
		return ""
	}
	return *r.Prefix
}

func (r *ApplySignedUrlReq) GetSuffix() string {
	if r == nil || r.Suffix == nil {
		return ""
	}
	return *r.Suffix
}

type ApplySignedUrlResp struct {
	Url          string `json:"url"`
	SessionToken string `json:"sessionToken"`
}
