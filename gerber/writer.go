package gerber

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/zooyer/cam/core"
	"github.com/zooyer/cam/entities"
	"github.com/zooyer/cam/utils"
)

// apertureBase 光圈码从 D10 开始分配
const apertureBase = 10

// Writer 光绘命令流的状态机：Header → ApertureTable → Plot → Trailer。
// 笔位置、当前光圈、区域填充模式都只属于一个输出文件，
// 写完即弃，不跨文件共享。
type Writer struct {
	config Config
	out    *bufio.Writer

	apertures map[float64]int // 直径 -> 光圈码（哨兵 0 也参与编号）

	x, y    float64 // 当前笔位置，NaN 表示从未置位
	current int     // 当前选中的光圈码
	region  bool    // 区域填充模式

	Warnings []string // 非致命的数据质量警告
}

func NewWriter(w io.Writer, config Config) *Writer {
	return &Writer{
		config:    config,
		out:       bufio.NewWriter(w),
		apertures: make(map[float64]int),
		x:         math.NaN(),
		y:         math.NaN(),
		current:   -1,
	}
}

// Write 输出一份完整的光绘文件
func (w *Writer) Write(job Job) error {
	w.header()
	w.apertureTable(job.Diameters)
	if err := w.plot(job); err != nil {
		return err
	}
	w.trailer()

	return w.out.Flush()
}

func (w *Writer) header() {
	w.comment(w.config.Comment)
	w.parameter("FS", fmt.Sprintf("LAX%d%d", w.config.Precision[0], w.config.Precision[1]))
	w.parameter("MO", "MM") // 单位毫米
	w.parameter("SR", "X1Y1I0J0")
	w.parameter("LP", "D") // 暗色极性
}

// apertureTable 按分配顺序定义全部圆形光圈，哨兵 0 用兜底直径占位
func (w *Writer) apertureTable(diameters []float64) {
	code := apertureBase
	for _, d := range diameters {
		dia := d
		if dia == 0 {
			dia = w.config.DefaultDiameter
		}
		w.parameter(fmt.Sprintf("ADD%d", code), fmt.Sprintf("C,%f", dia*w.config.Scale))
		w.apertures[d] = code
		code++
	}
}

func (w *Writer) plot(job Job) error {
	// 1. 轨迹：按光圈直径分组输出，同宽轨迹共用一次光圈选择
	for _, d := range job.Diameters {
		for _, track := range job.Tracks {
			if trackWidth(track) != d {
				continue
			}
			if err := w.track(track); err != nil {
				return err
			}
		}
	}

	// 2. 焊盘闪光：排序去重后按直径分组
	flashes := utils.DedupCircles(utils.SortCircles(job.Flashes))
	for _, d := range job.Diameters {
		for _, c := range flashes {
			if c.Diameter != d {
				continue
			}
			if err := w.flash(c); err != nil {
				return err
			}
		}
	}

	// 3. 填充区域
	for _, region := range job.Regions {
		if err := w.fill(region); err != nil {
			return err
		}
	}

	return nil
}

func (w *Writer) trailer() {
	w.ensureRegion(false)
	w.command("M02")
}

// trackWidth 缺失线宽归到哨兵 0
func trackWidth(p *entities.Polyline) float64 {
	if p.HasWidth {
		return p.Width
	}
	return 0
}

func (w *Writer) track(p *entities.Polyline) error {
	w.ensureRegion(false)
	if !p.HasWidth {
		w.warnf("图层 %s 上的轨迹缺少线宽，使用兜底画笔 %g 绘制", p.Layer(), w.config.DefaultDiameter)
	}
	if err := w.selectAperture(trackWidth(p)); err != nil {
		return err
	}
	if len(p.Vertices) == 0 {
		return nil
	}

	w.moveTo(p.Vertices[0])
	for _, v := range p.Vertices[1:] {
		w.drawTo(v)
	}

	return nil
}

func (w *Writer) flash(c *entities.Circle) error {
	if c.AtOrigin() {
		return nil // 原点上的圆是占位符，不闪光
	}
	if err := w.selectAperture(c.Diameter); err != nil {
		return err
	}
	w.command(w.point(c.Center.X, c.Center.Y) + "D03")

	return nil
}

// fill 区域与光圈无关：开区域模式后绕轮廓一周并回到起点闭合
func (w *Writer) fill(p *entities.Polyline) error {
	if len(p.Vertices) == 0 {
		return nil
	}
	w.ensureRegion(true)

	w.moveTo(p.Vertices[0])
	for _, v := range p.Vertices[1:] {
		w.drawTo(v)
	}
	w.drawTo(p.Vertices[0])

	return nil
}

// selectAperture 选择光圈，与当前相同则不重复输出。
// 直径不在光圈表中说明测量阶段被跳过，属于不变量被破坏。
func (w *Writer) selectAperture(diameter float64) error {
	code, ok := w.apertures[diameter]
	if !ok {
		return fmt.Errorf("gerber: 光圈表中没有直径 %g", diameter)
	}
	if code != w.current {
		w.command("D" + strconv.Itoa(code))
		w.current = code
	}

	return nil
}

func (w *Writer) ensureRegion(state bool) {
	if w.region == state {
		return
	}
	if state {
		w.command("G36")
	} else {
		w.command("G37")
	}
	w.region = state
}

func (w *Writer) moveTo(p core.Point) {
	w.command(w.point(p.X, p.Y) + "D02")
}

func (w *Writer) drawTo(p core.Point) {
	w.command(w.point(p.X, p.Y) + "D01")
}

// point 只输出发生变化的坐标轴
func (w *Writer) point(x, y float64) string {
	var b strings.Builder
	if w.x != x {
		b.WriteString("X" + w.coord(x))
		w.x = x
	}
	if w.y != y {
		b.WriteString("Y" + w.coord(y))
		w.y = y
	}

	return b.String()
}

func (w *Writer) coord(v float64) string {
	scaled := v * w.config.Scale * math.Pow10(w.config.Precision[1])
	return strconv.FormatInt(int64(math.Round(scaled)), 10)
}

func (w *Writer) command(s string) {
	fmt.Fprintf(w.out, "%s*\n", s)
}

func (w *Writer) comment(s string) {
	fmt.Fprintf(w.out, "G04 %s*\n", strings.TrimSpace(s))
}

func (w *Writer) parameter(name, value string) {
	fmt.Fprintf(w.out, "%%%s%s*%%\n", name, value)
}

func (w *Writer) warnf(format string, args ...any) {
	w.Warnings = append(w.Warnings, fmt.Sprintf(format, args...))
}
