package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleAggs = []Aggregate{
	{Category: "Coaching", Role: RoleSelf, Mean: 4, Count: 1},
	{Category: "Coaching", Role: RolePeer, Mean: 3, Count: 2},
	{Category: "Coaching", Role: RoleSubordinate, Mean: 2.5, Count: 2},
	{Category: "Innovation", Role: RolePeer, Mean: 5, Count: 1},
	{Category: "Listening to Everyone", Role: RoleManager, Mean: 1, Count: 1},
	{Category: "Vision", Role: RoleSubordinate, Mean: 3.5, Count: 2},
}

func TestPivotRestrictsRowsAndColumns(t *testing.T) {
	m := Pivot(sampleAggs,
		[]string{"Vision", "Coaching", "Innovation", "Role Modelling"},
		RoleFilter{Exclude: []string{RoleSelf}})

	assert.Equal(t, []string{"Coaching", "Innovation", "Vision"}, m.Categories)
	assert.Equal(t, []string{RolePeer, RoleSubordinate}, m.Roles)

	c, ok := m.Cell("Coaching", RolePeer)
	require.True(t, ok)
	assert.Equal(t, Cell{Value: 3, Present: true}, c)

	c, ok = m.Cell("Vision", RolePeer)
	require.True(t, ok)
	assert.False(t, c.Present, "Vision has no peer data")

	_, ok = m.Cell("Coaching", RoleSelf)
	assert.False(t, ok, "self column is excluded")
}

func TestPivotIncludeRoles(t *testing.T) {
	m := Pivot(sampleAggs,
		[]string{"Coaching", "Innovation", "Vision"},
		RoleFilter{Include: []string{RoleSubordinate, RoleSelf}})

	assert.Equal(t, []string{"Coaching", "Vision"}, m.Categories, "Innovation has only peer data")
	assert.Equal(t, []string{RoleSelf, RoleSubordinate}, m.Roles)
	assert.Equal(t, []float64{4, 0}, m.Column(RoleSelf))
	assert.Equal(t, []float64{2.5, 3.5}, m.Column(RoleSubordinate))
	assert.Nil(t, m.Column(RolePeer))
}

func TestPivotEmpty(t *testing.T) {
	m := Pivot(sampleAggs, []string{"Nothing"}, RoleFilter{})
	assert.Equal(t, 0, m.Rows())
	assert.Empty(t, m.Roles)
	assert.Empty(t, m.Cells)
}

func TestPivotViewMatchesAggregateThenPivot(t *testing.T) {
	rows := []Response{
		{"Coaching", RolePeer, 4},
		{"Coaching", RolePeer, 2},
		{"Coaching", RoleSelf, 5},
		{"Vision", RoleSubordinate, 3},
		{"Innovation", RoleSelf, 1},
	}
	spec := ViewSpec{
		Name:       "sub-vs-self",
		Categories: []string{"Coaching", "Vision", "Innovation"},
		Roles:      RoleFilter{Include: []string{RoleSubordinate, RoleSelf}},
	}
	view := BindResponses(rows)

	direct := PivotView(view, spec, 1)
	viaAggregates := Pivot(AggregateMeans(view), spec.Categories, spec.Roles)

	assert.Equal(t, viaAggregates, direct)
}

func TestPivotViewDropsThinMeans(t *testing.T) {
	view := BindResponses([]Response{
		{"Coaching", RolePeer, 4},
		{"Coaching", RolePeer, 2},
		{"Coaching", RoleSubordinate, 5},
		{"Vision", RolePeer, 3},
	})
	spec := ViewSpec{Name: "all", Categories: []string{"Coaching", "Vision"}}

	m := PivotView(view, spec, 2)
	assert.Equal(t, []string{"Coaching"}, m.Categories)
	assert.Equal(t, []string{RolePeer}, m.Roles)
	assert.Equal(t, []float64{3}, m.Column(RolePeer))
}

func TestDropThin(t *testing.T) {
	assert.Equal(t, sampleAggs, DropThin(sampleAggs, 1))

	kept := DropThin(sampleAggs, 2)
	require.Len(t, kept, 3)
	for _, a := range kept {
		assert.GreaterOrEqual(t, a.Count, 2)
	}
	assert.Len(t, sampleAggs, 6, "input is not modified")
}
