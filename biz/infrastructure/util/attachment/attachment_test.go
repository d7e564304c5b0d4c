package attachment

import (
	"testing"

	"classroom-sync/biz/application/dto/classroom/studio"
	"classroom-sync/biz/infrastructure/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsInline(t *testing.T) {
	assert.True(t, IsInline("data:application/pdf;base64,JVBERi0x"))
	assert.False(t, IsInline("https://cdn.example.com/slides.pdf"))
	assert.False(t, IsInline(""))
}

func TestClassify(t *testing.T) {
	link := &studio.ResourceNode{Type: consts.ResourceKindLink, Url: "https://example.com/article", Name: "article"}
	file := &studio.ResourceNode{Type: consts.ResourceKindFile, Url: "https://cdn.example.com/slides.pdf", Name: "slides"}
	inlineFile := &studio.ResourceNode{Type: consts.ResourceKindFile, Url: "data:application/pdf;base64,JVBERi0x", Name: "draft"}
	// LINK 不会延迟，即使内容看起来是内联编码
	inlineLink := &studio.ResourceNode{Type: consts.ResourceKindLink, Url: "data:text/plain;base64,aGk=", Name: "odd"}

	persistable, deferred := Classify([]*studio.ResourceNode{link, file, inlineFile, inlineLink, nil})

	require.Len(t, persistable, 3)
	assert.Equal(t, []*studio.ResourceNode{link, file, inlineLink}, persistable)
	require.Len(t, deferred, 1)
	assert.Equal(t, inlineFile, deferred[0])
}

func TestClassifyEmpty(t *testing.T) {
	persistable, deferred := Classify(nil)
	assert.Empty(t, persistable)
	assert.Empty(t, deferred)
}

func TestFileTypeOf(t *testing.T) {
	pdf := FileTypeOf("https://cdn.example.com/slides.PDF?sign=abc#page=2")
	require.NotNil(t, pdf)
	assert.Equal(t, "pdf", *pdf)

	assert.Nil(t, FileTypeOf("https://cdn.example.com/slides"))
	assert.Nil(t, FileTypeOf("https://cdn.example.com/dir.v2/file"))
	assert.Nil(t, FileTypeOf("https://cdn.example.com/file."))
	assert.Nil(t, FileTypeOf("data:application/pdf;base64,JVBERi0x"))
}
