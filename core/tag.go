package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DXF 实体字段组码
const (
	CodeLayer    = 8  // 图层名称
	CodeX        = 10 // X 坐标
	CodeY        = 20 // Y 坐标
	CodeZ        = 30 // Z 坐标（保留，不参与输出）
	CodeDiameter = 40 // 半径（解析后翻倍为直径）
	CodeWidth    = 41 // 全局线宽
	CodeBulge    = 42 // 圆弧凸度（不支持圆弧，仅校验）
	CodeFlags    = 70 // 多段线标志位
)

// PolylineClosed 多段线闭合标志位
const PolylineClosed = 1

// Subdivisions 坐标量化精度：所有数值字段都是 1/Subdivisions 的整数倍
const Subdivisions = 8

// Round 将数值量化到 1/Subdivisions
func Round(v float64) float64 {
	return math.Round(v*Subdivisions) / Subdivisions
}

// Tag 代表 DXF 中的一组标签对
type Tag struct {
	Code  int
	Value string
}

// Float 将值解析为量化后的 float64，失败视为致命解析错误
func (t Tag) Float() (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	if err != nil {
		return 0, fmt.Errorf("组码 %d 的数值 %q 无法解析: %w", t.Code, t.Value, err)
	}

	return Round(f), nil
}

// Int 将值解析为 int
func (t Tag) Int() (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(t.Value))
	if err != nil {
		return 0, fmt.Errorf("组码 %d 的整数 %q 无法解析: %w", t.Code, t.Value, err)
	}

	return i, nil
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// Point 代表三维空间中的一个点
type Point struct {
	X, Y, Z float64
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Point
}

// Extend 扩展包围盒使其覆盖另一个包围盒
func (b BBox) Extend(other BBox) BBox {
	return BBox{
		Min: Point{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: Point{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}
