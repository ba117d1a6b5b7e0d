package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert.NotNil(t, Default())
	assert.NotPanics(t, func() {
		HandleLog("loaded", "docs", 3)
		HandleError(errors.New("boom"))
	})
}
