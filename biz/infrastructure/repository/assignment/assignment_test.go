package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from Status
		to   Status
		want bool
	}{
		{StatusDraft, StatusPublished, true},
		{StatusPublished, StatusCompleted, true},
		{StatusDraft, StatusCompleted, false},
		{StatusDraft, StatusDraft, false},
		{StatusPublished, StatusDraft, false},
		{StatusPublished, StatusPublished, false},
		{StatusCompleted, StatusDraft, false},
		{StatusCompleted, StatusPublished, false},
		{StatusCompleted, StatusCompleted, false},
		{Status("unknown"), StatusPublished, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.from.CanTransitionTo(c.to), "%s -> %s", c.from, c.to)
	}
}

func TestStatusValid(t *testing.T) {
	assert.True(t, StatusDraft.Valid())
	assert.True(t, StatusPublished.Valid())
	assert.True(t, StatusCompleted.Valid())
	assert.False(t, Status("").Valid())
	assert.False(t, Status("archived").Valid())
}
