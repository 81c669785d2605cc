package entities

import (
	"io"
	"math"
	"strings"

	"github.com/zooyer/cam/core"
)

type Polyline struct {
	BaseEntity
	Flags    int     // 组码 70 标志位
	HasFlags bool    // 标志位字段是否出现过
	Width    float64 // 组码 41 全局线宽
	HasWidth bool    // 线宽字段是否出现过（缺失的开放线是数据质量问题）
	Vertices []core.Point
}

func init() {
	Register("POLYLINE", func() Entity { return &Polyline{BaseEntity: BaseEntity{TypeName: "POLYLINE"}} })
}

// Closed 闭合判定：标志位字段存在且闭合位被置位，缺失字段一律视为开放
func (p *Polyline) Closed() bool {
	return p.HasFlags && p.Flags&core.PolylineClosed != 0
}

func (p *Polyline) Parse(s *core.Scanner) error {
	// 1. 本体字段（线宽、标志位、图层）
	var terminated bool
	for s.Next() {
		var (
			tag = s.LastTag
			err error
		)
		if tag.Code == 0 {
			terminated = true
			break
		}
		switch tag.Code {
		case core.CodeLayer:
			p.LayerName = tag.AsString()
		case core.CodeWidth:
			if p.Width, err = tag.Float(); err == nil {
				p.HasWidth = true
			}
		case core.CodeFlags:
			if p.Flags, err = tag.Int(); err == nil {
				p.HasFlags = true
			}
		}
		if err != nil {
			return err
		}
	}
	if !terminated {
		if err := s.Err(); err != nil {
			return err
		}
		// 顶点序列开始前流就结束了
		return io.ErrUnexpectedEOF
	}

	// 2. 顶点序列：抓取 VERTEX 直到 SEQEND，夹杂的其他内容忽略
	for {
		tag := s.LastTag
		if tag.Code == 0 {
			switch strings.ToUpper(tag.AsString()) {
			case "SEQEND":
				s.Next() // 消耗掉 SEQEND，停在下一实体标记上
				return s.Err()
			case "VERTEX":
				var vertex Vertex
				if err := vertex.Parse(s); err != nil {
					return err
				}
				p.Vertices = append(p.Vertices, vertex.Position)
				continue // Parse 内部已经 Next 了，直接进入下一次判断
			}
		}
		if !s.Next() {
			if err := s.Err(); err != nil {
				return err
			}
			// SEQEND 之前流就结束了
			return io.ErrUnexpectedEOF
		}
	}
}

func (p *Polyline) BBox() core.BBox {
	if len(p.Vertices) == 0 {
		return core.BBox{}
	}
	miX, miY, maX, maY := p.Vertices[0].X, p.Vertices[0].Y, p.Vertices[0].X, p.Vertices[0].Y
	for _, v := range p.Vertices {
		miX = math.Min(miX, v.X)
		miY = math.Min(miY, v.Y)
		maX = math.Max(maX, v.X)
		maY = math.Max(maY, v.Y)
	}
	return core.BBox{Min: core.Point{X: miX, Y: miY}, Max: core.Point{X: maX, Y: maY}}
}

// Vertex 是 POLYLINE 的子实体，只保留位置信息
type Vertex struct {
	Position core.Point
}

func (v *Vertex) Parse(s *core.Scanner) error {
	for s.Next() {
		var (
			tag = s.LastTag
			err error
		)
		if tag.Code == 0 {
			return nil
		}
		switch tag.Code {
		case core.CodeX:
			v.Position.X, err = tag.Float()
		case core.CodeY:
			v.Position.Y, err = tag.Float()
		case core.CodeZ:
			v.Position.Z, err = tag.Float()
		case core.CodeBulge:
			// 不支持圆弧凸度，仅做数值校验
			_, err = tag.Float()
		}
		if err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return err
	}

	// 顶点没等到终结组码
	return io.ErrUnexpectedEOF
}
