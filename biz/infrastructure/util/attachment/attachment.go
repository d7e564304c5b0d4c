package attachment

import (
	"strings"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"
)

// IsInline 判断 url 是否为内联编码的附件内容（data uri），
// 这类内容不允许直接入库，必须先走加签 url 上传
func IsInline(url string) bool {
	return strings.HasPrefix(url, consts.DataURIPrefix)
}

// Classify 把课时提交的附件列表切分为可直接入库的和需要延迟上传的两类。
// 只有 FILE 且内容为内联编码时才延迟；LINK 一律直接入库。纯函数，不碰存储。
func Classify(resources []*studio.ResourceNode) (persistable []*studio.ResourceNode, deferred []*studio.ResourceNode) {
	for _, r := range resources {
		if r == nil {
			continue
		}
		if r.Type == consts.ResourceKindFile && IsInline(r.Url) {
			deferred = append(deferred, r)
			continue
		}
		persistable = append(persistable, r)
	}
	return persistable, deferred
}

// FileTypeOf 从 url 推导附件的文件类型（扩展名小写，无扩展名返回 nil）
func FileTypeOf(url string) *string {
	if IsInline(url) {
		return nil
	}
	// 去掉查询串再取扩展名
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	i := strings.LastIndexByte(url, '.')
	if i < 0 || i+1 >= len(url) {
		return nil
	}
	ext := strings.ToLower(url[i+1:])
	if ext == "" || strings.ContainsAny(ext, "/\\") {
		return nil
	}
	return &ext
}
