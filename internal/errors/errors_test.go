package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = New("sentinel")

func TestWrapKeepsIdentity(t *testing.T) {
	err := Wrapf(Wrap(errSentinel, "inner"), "outer %d", 1)

	assert.True(t, Is(err, errSentinel))
	assert.Equal(t, "outer 1: inner: sentinel", err.Error())
}

func TestWithStackCarriesTrace(t *testing.T) {
	err := WithStack(errSentinel)

	assert.True(t, Is(err, errSentinel))
	assert.Contains(t, fmt.Sprintf("%+v", err), "TestWithStackCarriesTrace")
}

func TestJoin(t *testing.T) {
	other := Errorf("code %d", 7)
	err := Join(errSentinel, other)

	assert.True(t, Is(err, errSentinel))
	assert.True(t, Is(err, other))
}

type codeError struct{ code int }

func (e *codeError) Error() string { return "code" }

func TestAs(t *testing.T) {
	err := Wrap(&codeError{code: 3}, "ctx")

	var target *codeError
	assert.True(t, As(err, &target))
	assert.Equal(t, 3, target.code)
}
