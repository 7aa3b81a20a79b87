package stringtest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go.toonkit.dev/toonkit/stringtest"
)

func TestJoinLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", stringtest.JoinLF())
	assert.Equal(t, "one", stringtest.JoinLF("one"))
	assert.Equal(t, "a\nb\nc", stringtest.JoinLF("a", "b", "c"))
}

func TestJoinCRLF(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", stringtest.JoinCRLF())
	assert.Equal(t, "one", stringtest.JoinCRLF("one"))
	assert.Equal(t, "a\r\nb\r\nc", stringtest.JoinCRLF("a", "b", "c"))
}
