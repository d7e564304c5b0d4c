package basic

// UserMeta 从 jwt claims 中解析出来的用户信息
type UserMeta struct {
	UserId          string `json:"userId"`
	AppId           int64  `json:"appId"`
	DeviceId        string `json:"deviceId"`
	SessionUserId   string `json:"sessionUserId"`
	SessionAppId    int64  `json:"sessionAppId"`
	SessionDeviceId string `json:"sessionDeviceId"`
}

func (u *UserMeta) GetUserId() string {
	if u == nil {
		return ""
	}
	return u.UserId
}

func (u *UserMeta) GetSessionUserId() string {
	if u == nil {
		return ""
	}
	return u.SessionUserId
}

// PaginationOptions 分页参数
type PaginationOptions struct {
	Page  *int64 `json:"page,omitempty"`
	Limit *int64 `json:"limit,omitempty"`
}
