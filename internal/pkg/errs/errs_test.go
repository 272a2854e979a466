//go:build unit

package errs_test

import (
	"testing"

	"tripfair/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIsMatchesWrappedCause(t *testing.T) {
	sentinel := errs.New("record missing")
	err := errs.Wrap(sentinel, "loading property")

	assert.True(t, errs.Is(err, sentinel))
	assert.False(t, errs.Is(err, errs.New("other")))
}

func TestIsMatchesMarkedSentinel(t *testing.T) {
	sentinel := errs.New("package not eligible")
	cause := errs.New("cart is missing service dj-set")

	err := errs.Mark(cause, sentinel)

	assert.True(t, errs.Is(err, sentinel))
	assert.True(t, errs.Is(err, cause))
}

func TestIsMatchesMarkThroughWrap(t *testing.T) {
	sentinel := errs.New("invalid location")
	err := errs.Wrap(errs.Mark(errs.New("latitude out of range"), sentinel), "quoting provider")

	assert.True(t, errs.Is(err, sentinel))
}

func TestMarkNilReturnsSentinel(t *testing.T) {
	sentinel := errs.New("not found")
	assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
}
