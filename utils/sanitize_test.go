package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsScripts(t *testing.T) {
	out := Sanitize(`<script>alert(1)</script><b>bold</b> text`)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "alert")
	assert.Contains(t, out, "<b>bold</b>")
}

func TestStripTagsRemovesAllMarkup(t *testing.T) {
	assert.Equal(t, "Hello World", StripTags("<i>Hello</i> <b>World</b>"))
	assert.Equal(t, "", StripTags("<script>alert(1)</script>"))
}
