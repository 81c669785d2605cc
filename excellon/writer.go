package excellon

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/zooyer/cam/entities"
	"github.com/zooyer/cam/utils"
)

// toolBase 刀具号从 T01 开始分配
const toolBase = 1

// Writer 钻孔命令流的状态机：Header → ToolTable → DrillPlot → Trailer。
// 刀具表与当前刀具号只属于一个输出文件。
type Writer struct {
	config Config
	out    *bufio.Writer

	tools   map[float64]int // 直径 -> 刀具号（哨兵 0 不定义刀具）
	current int             // 当前选中的刀具号
}

func NewWriter(w io.Writer, config Config) *Writer {
	return &Writer{
		config:  config,
		out:     bufio.NewWriter(w),
		tools:   make(map[float64]int),
		current: -1,
	}
}

// Write 输出一份完整的钻孔文件
func (w *Writer) Write(job Job) error {
	w.header()
	w.toolTable(job.Diameters)
	w.line("%")
	w.line("G05")

	// 按直径升序钻孔，孔位先排序再去相邻重复
	holes := utils.DedupCircles(utils.SortCircles(job.Holes))
	for _, d := range job.Diameters {
		if d == 0 {
			continue // 未定义孔径的孔不钻
		}
		for _, hole := range holes {
			if hole.Diameter != d {
				continue
			}
			if err := w.drill(hole); err != nil {
				return err
			}
		}
	}

	w.line("M30")

	return w.out.Flush()
}

func (w *Writer) header() {
	w.line("%")
	w.line("M48")
	w.line("METRIC,TZ") // 公制，抑制前导零
	w.line("M71")
}

// toolTable 为每个非零直径定义刀具，哨兵 0 不参与编号
func (w *Writer) toolTable(diameters []float64) {
	code := toolBase
	for _, d := range diameters {
		if d == 0 {
			continue
		}
		w.define(code, d)
		w.tools[d] = code
		code++
	}
}

// define 刀具物理直径向上取整到 0.1
func (w *Writer) define(code int, diameter float64) {
	dia := diameter
	if dia == 0 {
		dia = w.config.DefaultDiameter
	}
	w.line(fmt.Sprintf("T%02dC%.3f", code, math.Ceil(dia*10)/10))
}

func (w *Writer) drill(c *entities.Circle) error {
	if c.AtOrigin() {
		return nil // 原点上的圆是占位符，不钻孔
	}
	if err := w.selectTool(c.Diameter); err != nil {
		return err
	}
	w.line(w.point(c.Center.X, c.Center.Y))

	return nil
}

// selectTool 选择刀具，与当前相同则不重复输出
func (w *Writer) selectTool(diameter float64) error {
	code, ok := w.tools[diameter]
	if !ok {
		return fmt.Errorf("excellon: 刀具表中没有直径 %g", diameter)
	}
	if code != w.current {
		w.line(fmt.Sprintf("T%02d", code))
		w.current = code
	}

	return nil
}

func (w *Writer) point(x, y float64) string {
	return "X" + w.coord(x) + "Y" + w.coord(y)
}

// coord 坐标按 %06.2f 格式化后去掉前导零
func (w *Writer) coord(v float64) string {
	return strings.TrimLeft(fmt.Sprintf("%06.2f", v*w.config.Scale), "0")
}

func (w *Writer) line(s string) {
	fmt.Fprintln(w.out, s)
}
