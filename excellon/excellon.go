package excellon

import (
	"github.com/zooyer/cam/entities"
)

// Config 钻孔输出配置
type Config struct {
	Scale           float64 // 坐标统一缩放系数
	DefaultDiameter float64 // 哨兵直径 0 意外进入刀具表时的兜底尺寸
}

func DefaultConfig() Config {
	return Config{
		Scale:           1.0,
		DefaultDiameter: 0.01,
	}
}

// Job 一次钻孔输出的素材。Tracks/Regions 对应机械层的切槽与挖空，
// 上游只有未启用的意图，这里同样不产生任何输出。
type Job struct {
	Diameters []float64 // 整图孔径/线宽，升序，0 表示未定义线宽
	Holes     []*entities.Circle
	Tracks    []*entities.Polyline
	Regions   []*entities.Polyline
}

// Empty 没有任何匹配几何时不应产生文件
func (j Job) Empty() bool {
	return len(j.Holes) == 0 && len(j.Tracks) == 0 && len(j.Regions) == 0
}
