package opener

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppFor(t *testing.T) {
	apps := map[string]string{"pdf": "Preview", "md": "Typora"}

	assert.Equal(t, "Preview", AppFor("paper.PDF", apps, ""))
	assert.Equal(t, "Typora", AppFor("notes.md", apps, "Default"))
	assert.Equal(t, "Default", AppFor("image.png", apps, "Default"))
	assert.Equal(t, "", AppFor("Makefile", apps, ""))
	assert.Equal(t, "", AppFor(".md", apps, ""))
	assert.Equal(t, "", AppFor("x.pdf", nil, ""))
}

func TestFunc(t *testing.T) {
	var gotApp, gotPath string
	var o Opener = Func(func(app, path string) error {
		gotApp, gotPath = app, path
		return nil
	})

	assert.NoError(t, o.Open("Preview", "/tmp/a.pdf"))
	assert.Equal(t, "Preview", gotApp)
	assert.Equal(t, "/tmp/a.pdf", gotPath)
}
