package cam

import (
	"sort"

	"github.com/zooyer/cam/entities"
)

// Diameters 单次扫描整张图纸（不分图层），收集全部不同的孔径与线宽并升序返回。
// 缺失线宽的多段线贡献哨兵值 0。上游实现依赖无序集合的遍历顺序分配编号，
// 这里固定为升序，保证光圈码/刀具号逐次运行可复现。
func (d *Drawing) Diameters() []float64 {
	set := make(map[float64]struct{})
	for _, c := range d.Circles {
		set[c.Diameter] = struct{}{}
	}
	for _, p := range d.Polylines {
		if p.HasWidth {
			set[p.Width] = struct{}{}
		} else {
			set[0] = struct{}{}
		}
	}

	diameters := make([]float64, 0, len(set))
	for diameter := range set {
		diameters = append(diameters, diameter)
	}
	sort.Float64s(diameters)

	return diameters
}

// Entities 一次输出请求归类出的三类几何
type Entities struct {
	Tracks  []*entities.Polyline // 开放多段线
	Regions []*entities.Polyline // 闭合多段线
	Circles []*entities.Circle   // 焊盘/钻孔
}

// Collect 按图层别名集合归类实体。轨迹与区域互斥，
// 同一条多段线不会同时出现在两边。
func (d *Drawing) Collect(layers []string) (result Entities) {
	for _, layer := range layers {
		result.Tracks = append(result.Tracks, d.OpenPolylinesOnLayer(layer)...)
	}
	for _, layer := range layers {
		result.Regions = append(result.Regions, d.ClosedPolylinesOnLayer(layer)...)
	}
	for _, layer := range layers {
		result.Circles = append(result.Circles, d.CirclesOnLayer(layer)...)
	}

	return
}
