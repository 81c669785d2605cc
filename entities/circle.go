package entities

import (
	"io"

	"github.com/zooyer/cam/core"
)

type Circle struct {
	BaseEntity
	Center   core.Point
	Diameter float64 // 直径（组码 40 是半径，解析时翻倍）
}

func init() {
	Register("CIRCLE", func() Entity { return &Circle{BaseEntity: BaseEntity{TypeName: "CIRCLE"}} })
}

func (c *Circle) Parse(s *core.Scanner) error {
	for s.Next() {
		var (
			tag = s.LastTag
			err error
		)
		if tag.Code == 0 {
			return nil
		}
		switch tag.Code {
		case core.CodeLayer:
			c.LayerName = tag.AsString()
		case core.CodeX:
			c.Center.X, err = tag.Float()
		case core.CodeY:
			c.Center.Y, err = tag.Float()
		case core.CodeZ:
			c.Center.Z, err = tag.Float()
		case core.CodeDiameter:
			var radius float64
			if radius, err = tag.Float(); err == nil {
				c.Diameter = radius * 2
			}
		}
		if err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return err
	}

	// 实体终结组码之前流就结束了
	return io.ErrUnexpectedEOF
}

func (c *Circle) BBox() core.BBox {
	r := c.Diameter / 2
	return core.BBox{
		Min: core.Point{X: c.Center.X - r, Y: c.Center.Y - r, Z: c.Center.Z},
		Max: core.Point{X: c.Center.X + r, Y: c.Center.Y + r, Z: c.Center.Z},
	}
}

// AtOrigin 位于原点的圆视为占位符，不参与闪光/钻孔输出
func (c *Circle) AtOrigin() bool {
	return c.Center.X == 0 && c.Center.Y == 0
}
