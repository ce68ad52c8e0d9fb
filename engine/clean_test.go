package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalRoleKnownLabels(t *testing.T) {
	mapping := DefaultRoleMapping()

	assert.Equal(t, RolePeer, CanonicalRole("Someone who has worked as Richard's peer", mapping))
	assert.Equal(t, RoleSubordinate, CanonicalRole("Someone who reports/reported to Richard - either directly or indirectly", mapping))
	assert.Equal(t, RoleManager, CanonicalRole("Someone who has managed Richard", mapping))
	assert.Equal(t, RoleSelf, CanonicalRole("Me - Richard", mapping))
}

func TestCanonicalRoleUnknownPassesThrough(t *testing.T) {
	mapping := DefaultRoleMapping()

	for _, raw := range []string{"", "Peer view", "me - richard", " Me - Richard", "Customer"} {
		assert.Equal(t, raw, CanonicalRole(raw, mapping), "label %q should be unchanged", raw)
	}
}

func TestParseScore(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"4", 4, true},
		{" 3.5 ", 3.5, true},
		{"-1", -1, true},
		{"", 0, false},
		{"   ", 0, false},
		{"n/a", 0, false},
		{"four", 0, false},
		{"NaN", 0, false},
		{"Inf", 0, false},
	}
	for _, tc := range cases {
		got, ok := ParseScore(tc.in)
		assert.Equal(t, tc.ok, ok, "ParseScore(%q) ok", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "ParseScore(%q)", tc.in)
		}
	}
}

func TestCleanDropsDefectiveRows(t *testing.T) {
	raw := []RawResponse{
		{Group: "  Coaching ", Responder: "Me - Richard", Score: "4"},
		{Group: "Coaching", Responder: "Someone who has managed Richard", Score: ""},
		{Group: "Vision", Responder: "Someone who has managed Richard", Score: "abc"},
		{Group: "Vision\t", Responder: "Other", Score: "2"},
	}

	out, stats := Clean(raw, DefaultRoleMapping())

	require.Len(t, out, 2)
	assert.Equal(t, CleanStats{Input: 4, Kept: 2, Dropped: 2}, stats)
	assert.Equal(t, Response{Category: "Coaching", Role: RoleSelf, Score: 4}, out[0])
	assert.Equal(t, Response{Category: "Vision", Role: "Other", Score: 2}, out[1])
	assert.Equal(t, stats.Input-stats.Dropped, stats.Kept)
}
