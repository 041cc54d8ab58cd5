package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegment_Drawable(t *testing.T) {
	assert.True(t, Segment{X1: 0, Y1: 0, X2: 10, Y2: 10, Color: "red"}.Drawable())
	assert.False(t, Segment{X1: math.NaN(), Y1: 0, X2: 10, Y2: 10, Color: "red"}.Drawable())
	assert.False(t, Segment{X1: 0, Y1: 0, X2: math.Inf(1), Y2: 10, Color: "red"}.Drawable())
}

func TestPath_DrawableSegments(t *testing.T) {
	path := &Path{
		Cost: 120,
		Segments: []PathSegment{
			{Cost: 120, Start: Point{X: 0, Y: 0}, End: Point{X: 10, Y: 10}},
		},
	}

	segments := path.DrawableSegments(PathColor)

	assert.Equal(t, []Segment{{X1: 0, Y1: 0, X2: 10, Y2: 10, Color: "purple"}}, segments)
}

func TestPath_DrawableSegmentsEmpty(t *testing.T) {
	segments := (&Path{}).DrawableSegments(PathColor)
	assert.NotNil(t, segments)
	assert.Empty(t, segments)
}

func TestNewCampusPathsState(t *testing.T) {
	state := NewCampusPathsState(nil)

	assert.Equal(t, PhaseEmpty, state.Phase)
	assert.Equal(t, NoBuilding, state.Start)
	assert.Equal(t, NoBuilding, state.End)
	assert.NotNil(t, state.Buildings)
	assert.Empty(t, state.Segments)
}

func TestCampusPathsState_BuildingName(t *testing.T) {
	state := NewCampusPathsState([]Building{{Key: "CSE", Name: "Paul G. Allen Center"}})

	assert.Equal(t, "Paul G. Allen Center", state.BuildingName("CSE"))
	assert.Equal(t, "", state.BuildingName("MGH"))
}

func TestSegment_JSON(t *testing.T) {
	data, err := json.Marshal(Segment{X1: 1, Y1: 2, X2: 3, Y2: 4, Color: "red"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x1":1,"y1":2,"x2":3,"y2":4,"color":"red"}`, string(data))

	var decoded Segment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Segment{X1: 1, Y1: 2, X2: 3, Y2: 4, Color: "red"}, decoded)
}

func TestSegment_JSONNaN(t *testing.T) {
	data, err := json.Marshal(Segment{X1: math.NaN(), Y1: 2, X2: 3, Y2: 4, Color: "red"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"x1":null,"y1":2,"x2":3,"y2":4,"color":"red"}`, string(data))

	var decoded Segment
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, math.IsNaN(decoded.X1))
	assert.False(t, decoded.Drawable())
}
