package utils

import (
	"sort"

	"github.com/zooyer/cam/entities"
	"github.com/zooyer/golib/xmath"
)

// epsilon 坐标判等误差（数值在解析时已量化到 1/8，远大于该误差）
const epsilon = 1e-9

// SortCircles 返回按 X 再 Y 再直径升序排序的副本
func SortCircles(circles []*entities.Circle) []*entities.Circle {
	sorted := make([]*entities.Circle, len(circles))
	copy(sorted, circles)

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if !xmath.Equal(a.Center.X, b.Center.X, epsilon) {
			return a.Center.X < b.Center.X
		}
		if !xmath.Equal(a.Center.Y, b.Center.Y, epsilon) {
			return a.Center.Y < b.Center.Y
		}
		return a.Diameter < b.Diameter
	})

	return sorted
}

// DedupCircles 去除排序后相邻的重复点，只按 (X, Y) 判等
func DedupCircles(sorted []*entities.Circle) (result []*entities.Circle) {
	for i, c := range sorted {
		if i > 0 && SamePoint(c, sorted[i-1]) {
			continue
		}
		result = append(result, c)
	}

	return
}

// SamePoint 判断两个圆心是否重合（忽略直径）
func SamePoint(a, b *entities.Circle) bool {
	return xmath.Equal(a.Center.X, b.Center.X, epsilon) &&
		xmath.Equal(a.Center.Y, b.Center.Y, epsilon)
}
