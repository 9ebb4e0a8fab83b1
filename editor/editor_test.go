package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditTypeValid(t *testing.T) {
	for _, editType := range []EditType{EditEnhance, EditRestore, EditRetouch, EditStyle, EditBackground} {
		assert.True(t, editType.Valid(), "edit type %q", editType)
		assert.NotEmpty(t, Prompt(editType))
	}

	for _, editType := range []EditType{"", "blur", "Enhance", "sharpen"} {
		assert.False(t, editType.Valid(), "edit type %q", editType)
	}
}
