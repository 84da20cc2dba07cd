package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "diffsnap version 1.2.3 (commit: abc1234)\n", Format("v1.2.3", "abc1234"))
	assert.Equal(t, "diffsnap version dev\n", Format("dev", ""))
}
