package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestWrap_KeepsSentinelMatchable(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "find user"), "send request %d", 1)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "send request 1: find user: sentinel", err.Error())
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWrap_KeepsSentinelMatchable")
}

func TestWrap_Nil(t *testing.T) {
	assert.NoError(t, Wrap(nil, "noop"))
	assert.NoError(t, WithStack(nil))
}

func TestAs_ThroughJoin(t *testing.T) {
	err := Join(Wrap(&codedError{code: "X"}, "rollback"), New("other"))

	var target *codedError
	assert.True(t, As(err, &target))
	assert.Equal(t, "X", target.code)
}
