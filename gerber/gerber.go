package gerber

import (
	"github.com/zooyer/cam/entities"
)

// Config 光绘输出配置，逐 Writer 传入，不共享可变状态
type Config struct {
	Precision       [2]int  // 坐标格式：整数位数, 小数位数
	Scale           float64 // 坐标统一缩放系数
	DefaultDiameter float64 // 零线宽轨迹的兜底画笔直径
	Comment         string  // 文件头注释
}

func DefaultConfig() Config {
	return Config{
		Precision:       [2]int{2, 6},
		Scale:           1.0,
		DefaultDiameter: 0.01,
		Comment:         "DXF to Gerber",
	}
}

// Job 一次光绘输出的全部素材。Diameters 必须覆盖整张图纸的
// 孔径与线宽（升序），光圈码按它的顺序分配。
type Job struct {
	Diameters []float64 // 0 表示未定义线宽的哨兵
	Tracks    []*entities.Polyline
	Regions   []*entities.Polyline
	Flashes   []*entities.Circle
}

// Empty 三类几何全为空时不应产生文件
func (j Job) Empty() bool {
	return len(j.Tracks) == 0 && len(j.Regions) == 0 && len(j.Flashes) == 0
}
