// Package cam 将 DXF 图纸转换为 PCB 生产文件。
//
// 图层名称决定实体落到哪块生产数据上，一块双面板对应：
//
//	(G) Top Overlay        -> .gto
//	(G) Top Soldermask     -> .gts
//	(G) Top Copper         -> .gtl
//	(E) Drill              -> .gdd
//	(G) Bottom Copper      -> .gbl
//	(G) Bottom Overlay     -> .gbo
//	(G) Bottom Soldermask  -> .gbs
//	(E) Mechanical         -> .gm1（切槽/挖空尚未实现）
//
// G 为 Gerber 光绘文件，E 为 Excellon 钻孔文件。
// 识别两类实体：闭合多段线是填充区域，开放多段线是轨迹，圆是焊盘或钻孔。
package cam

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/cam/core"
	"github.com/zooyer/cam/entities"
)

// Drawing 持有整张图纸解析出的实体，解析完成后不再修改
type Drawing struct {
	Circles   []*entities.Circle
	Polylines []*entities.Polyline
}

func Open(filename string) (drawing *Drawing, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

// Load 解析整个标签流。数值字段格式错误是致命的：
// 返回错误时不暴露解析了一半的图纸。
func Load(reader io.Reader) (drawing *Drawing, err error) {
	var (
		scanner = core.NewScanner(reader)
		d       = &Drawing{}
	)

	if !scanner.Next() {
		if err = scanner.Err(); err != nil {
			return nil, err
		}
		return d, nil
	}

	for {
		tag := scanner.LastTag
		if tag.Code == 0 {
			name := strings.ToUpper(tag.AsString())
			if name == "EOF" {
				break
			}
			if ent := entities.CreateEntity(name); ent != nil {
				if err = ent.Parse(scanner); err != nil {
					return nil, fmt.Errorf("解析 %s 失败: %w", name, err)
				}
				switch e := ent.(type) {
				case *entities.Circle:
					d.Circles = append(d.Circles, e)
				case *entities.Polyline:
					d.Polylines = append(d.Polylines, e)
				}
				continue // Parse 已推进到下一个实体标记
			}
		}
		if !scanner.Next() {
			break
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}

	return d, nil
}

// BBox 整张图纸的包围盒
func (d *Drawing) BBox() core.BBox {
	var (
		box   core.BBox
		first = true
	)
	extend := func(b core.BBox) {
		if first {
			box, first = b, false
		} else {
			box = box.Extend(b)
		}
	}
	for _, c := range d.Circles {
		extend(c.BBox())
	}
	for _, p := range d.Polylines {
		extend(p.BBox())
	}

	return box
}
