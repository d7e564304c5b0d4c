package consts

// 附件类型
const (
	ResourceKindLink = "LINK"
	ResourceKindFile = "FILE"
)

// 同步操作类型
const (
	SyncOpCreate = "create"
	SyncOpUpdate = "update"
)

// http
const (
	Post            = "POST"
	ContentTypeJson = "application/json"
	CharSetUTF8     = "UTF-8"
)

// 默认值
const (
	AppId               = 17
	SlugMaxAttempts     = 10
	DataURIPrefix       = "data:"
	ClassroomTypeCourse = "course"
)
