package slug

import "strings"

// Slugify 将课程名归一化为 url 安全的标识：
// 小写，连续的非字母数字字符折叠为单个连字符，去掉首尾连字符。
// 唯一性由调用方探测数据库保证，这里只做归一化。
func Slugify(name string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(name) {
		switch {
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			hyphen = false
		default:
			if !hyphen && b.Len() > 0 {
				b.WriteByte('-')
				hyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}
