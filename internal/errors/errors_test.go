package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootMessage(t *testing.T) {
	base := New("database is locked")

	assert.Equal(t, "database is locked", RootMessage(Wrap(Wrapf(base, "mark %d", 1000), "handle trigger")))
	assert.Equal(t, "database is locked", RootMessage(WithStack(base)))
	assert.Empty(t, RootMessage(nil))
}

func TestNewCarriesStack(t *testing.T) {
	assert.Contains(t, fmt.Sprintf("%+v", New("boom")), "TestNewCarriesStack")
}

func TestJoinMatchesEveryMember(t *testing.T) {
	first := New("first")
	second := New("second")
	joined := Join(first, second)

	assert.True(t, Is(joined, first))
	assert.True(t, Is(joined, second))
}
