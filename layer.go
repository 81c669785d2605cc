package cam

import (
	"sort"
	"strings"

	"github.com/zooyer/cam/entities"
)

// 输出文件扩展名与图层别名的映射，一个角色可由多个图层名满足
var (
	GerberLayers = map[string][]string{
		".gbl": {"Bottom Copper", "Bottom"},
		".gbo": {"Bottom Outlines", "Bottom Overlay"},
		".gbs": {"Bottom Soldermask"},
		".gtl": {"Top Copper", "Top"},
		".gto": {"Top Outlines", "Top Overlay"},
		".gts": {"Top Soldermask"},
	}

	ExcellonLayers = map[string][]string{
		".gdd": {"Drill"},
	}

	// 机械层切槽/挖空尚未实现，只识别不输出
	MechanicalLayers = map[string][]string{
		".gm1": {"Mechanical", "Cutout", "Cut Out"},
	}
)

// Matches 图层名匹配：去首尾空白、转小写、空格换下划线后相等
func Matches(a, b string) bool {
	return normalize(a) == normalize(b)
}

func normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func (d *Drawing) CirclesOnLayer(name string) (circles []*entities.Circle) {
	for _, c := range d.Circles {
		if Matches(c.Layer(), name) {
			circles = append(circles, c)
		}
	}

	return
}

func (d *Drawing) PolylinesOnLayer(name string) (polylines []*entities.Polyline) {
	for _, p := range d.Polylines {
		if Matches(p.Layer(), name) {
			polylines = append(polylines, p)
		}
	}

	return
}

// OpenPolylinesOnLayer 开放多段线（轨迹）：没有标志位字段或闭合位未置位
func (d *Drawing) OpenPolylinesOnLayer(name string) (polylines []*entities.Polyline) {
	for _, p := range d.Polylines {
		if Matches(p.Layer(), name) && !p.Closed() {
			polylines = append(polylines, p)
		}
	}

	return
}

// ClosedPolylinesOnLayer 闭合多段线（填充区域）
func (d *Drawing) ClosedPolylinesOnLayer(name string) (polylines []*entities.Polyline) {
	for _, p := range d.Polylines {
		if Matches(p.Layer(), name) && p.Closed() {
			polylines = append(polylines, p)
		}
	}

	return
}

// LayerNames 图纸中出现过的全部图层名（升序去重），用于诊断输出
func (d *Drawing) LayerNames() []string {
	set := make(map[string]struct{})
	for _, c := range d.Circles {
		set[c.Layer()] = struct{}{}
	}
	for _, p := range d.Polylines {
		set[p.Layer()] = struct{}{}
	}

	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
