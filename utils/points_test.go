package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/cam/core"
	"github.com/zooyer/cam/entities"
)

func circle(x, y, diameter float64) *entities.Circle {
	return &entities.Circle{
		Center:   core.Point{X: x, Y: y},
		Diameter: diameter,
	}
}

func TestSortCircles(t *testing.T) {
	circles := []*entities.Circle{
		circle(1, 0, 2),
		circle(0, 1, 1),
		circle(0, 0, 1),
	}

	sorted := SortCircles(circles)

	require.Len(t, sorted, 3)
	assert.Equal(t, circle(0, 0, 1), sorted[0])
	assert.Equal(t, circle(0, 1, 1), sorted[1])
	assert.Equal(t, circle(1, 0, 2), sorted[2])

	// 原切片不被打乱
	assert.Equal(t, circle(1, 0, 2), circles[0])
}

func TestDedupCircles(t *testing.T) {
	// 排序去重后按 (X, Y) 折叠相邻重复点：只剩 (0,0) 和 (1,0)
	circles := []*entities.Circle{
		circle(0, 0, 1),
		circle(0, 0, 1),
		circle(1, 0, 2),
	}

	result := DedupCircles(SortCircles(circles))

	require.Len(t, result, 2)
	assert.Equal(t, 0.0, result[0].Center.X)
	assert.Equal(t, 1.0, result[1].Center.X)
}

func TestDedupCircles_DifferentDiameterSamePoint(t *testing.T) {
	// 直径不同但坐标相同的点也会折叠为一个
	circles := []*entities.Circle{
		circle(2, 2, 1),
		circle(2, 2, 3),
	}

	assert.Len(t, DedupCircles(SortCircles(circles)), 1)
}

func TestSamePoint(t *testing.T) {
	assert.True(t, SamePoint(circle(1, 2, 0.5), circle(1, 2, 9)))
	assert.False(t, SamePoint(circle(1, 2, 0.5), circle(1, 2.125, 0.5)))
}
