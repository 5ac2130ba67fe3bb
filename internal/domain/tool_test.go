package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTool_WearCost(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{"Level 1 Wears Fastest", 1, 3},
		{"Level 2", 2, 2},
		{"Level 3", 3, 1},
		{"High Level Floors At One", 9, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := Tool{Kind: "锄头", Level: tt.level}
			assert.Equal(t, tt.want, tool.WearCost())
		})
	}
}

func TestArea_Contains(t *testing.T) {
	area := Area{Kind: AreaPlanting, X: 9, Y: 1, Width: 6, Height: 5}

	assert.True(t, area.Contains(9, 1))
	assert.True(t, area.Contains(14, 5))
	assert.False(t, area.Contains(15, 5), "width is exclusive at the right edge")
	assert.False(t, area.Contains(9, 6), "height is exclusive at the bottom edge")
	assert.False(t, area.Contains(8, 3))
}
