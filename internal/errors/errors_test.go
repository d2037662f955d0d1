package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type codedError struct{ code string }

func (e *codedError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	base := &codedError{code: "ALERT_NOT_FOUND"}
	wrapped := Wrap(WithStack(base), "failed to load alert")

	got, ok := AsType[*codedError](wrapped)
	assert.True(t, ok)
	assert.Same(t, base, got)

	_, ok = AsType[*codedError](New("plain"))
	assert.False(t, ok)
}

func TestWrap_KeepsSentinelMatchable(t *testing.T) {
	sentinel := New("activity event not found")

	assert.True(t, Is(Wrapf(sentinel, "alert %d", 7), sentinel))
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Contains(t, fmt.Sprintf("%+v", WithStack(sentinel)), "errors_test.go")
}
