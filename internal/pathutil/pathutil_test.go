package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplify(t *testing.T) {
	assert.Equal(t, "/", Simplify("/"))
	assert.Equal(t, "/", Simplify(""))
	assert.Equal(t, "/", Simplify("//"))
	assert.Equal(t, "/Email", Simplify("/Email"))
	assert.Equal(t, "/Email", Simplify("Email"))
	assert.Equal(t, "/Email", Simplify("/Email/"))
	assert.Equal(t, "/Email/Work", Simplify("/Email//Work"))
	assert.Equal(t, "/Email/Work", Simplify("/Email/./Work"))
	assert.Equal(t, "/Work", Simplify("/Email/../Work"))
}

func TestSplit(t *testing.T) {
	parent, leaf := Split("/Email/Gmail")
	assert.Equal(t, "/Email", parent)
	assert.Equal(t, "Gmail", leaf)

	parent, leaf = Split("/Gmail")
	assert.Equal(t, "/", parent)
	assert.Equal(t, "Gmail", leaf)

	parent, leaf = Split("/")
	assert.Equal(t, "/", parent)
	assert.Equal(t, "", leaf)

	parent, leaf = Split("/a/b/c/")
	assert.Equal(t, "/a/b", parent)
	assert.Equal(t, "c", leaf)
}

func TestSegments(t *testing.T) {
	assert.Nil(t, Segments("/"))
	assert.Equal(t, []string{"Email"}, Segments("/Email"))
	assert.Equal(t, []string{"Email", "Work"}, Segments("/Email//Work/"))
}
