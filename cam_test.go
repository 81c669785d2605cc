package cam

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 一块最小的双面板：顶层铜皮区域、一条顶层轨迹、一个钻孔，
// 外加会被忽略的 SECTION 噪声和 LINE 实体
const sampleDXF = `0
SECTION
2
ENTITIES
0
LINE
8
Top Copper
10
0
20
0
0
POLYLINE
8
Top Copper
70
1
0
VERTEX
10
0
20
0
0
VERTEX
10
10
20
0
0
VERTEX
10
10
20
10
0
VERTEX
10
0
20
10
0
SEQEND
0
POLYLINE
8
top_copper
41
0.25
0
VERTEX
10
1
20
1
0
VERTEX
10
5
20
1
0
SEQEND
0
CIRCLE
8
Drill
10
10
20
10
40
0.25
0
ENDSEC
0
EOF
`

func load(t *testing.T) *Drawing {
	t.Helper()

	drawing, err := Load(strings.NewReader(sampleDXF))
	require.NoError(t, err)

	return drawing
}

func TestLoad(t *testing.T) {
	drawing := load(t)

	require.Len(t, drawing.Polylines, 2, "LINE 实体应被忽略")
	require.Len(t, drawing.Circles, 1)

	assert.Equal(t, 0.5, drawing.Circles[0].Diameter, "直径应是半径的两倍")
	assert.True(t, drawing.Polylines[0].Closed())
	assert.False(t, drawing.Polylines[1].Closed())
	assert.Equal(t, []string{"Drill", "Top Copper", "top_copper"}, drawing.LayerNames())
}

func TestLoad_Idempotent(t *testing.T) {
	// 同一输入解析两次得到完全相同的图纸
	first := load(t)
	second := load(t)

	assert.Equal(t, first, second)
}

func TestLoad_MalformedNumberFatal(t *testing.T) {
	data := "0\nCIRCLE\n40\nnot-a-number\n0\nEOF\n"

	drawing, err := Load(strings.NewReader(data))
	assert.Error(t, err)
	assert.Nil(t, drawing, "解析失败不应暴露半成品图纸")
}

func TestLoad_TruncatedEntityFatal(t *testing.T) {
	// 实体读到一半流就结束，不能悄悄吞掉残缺实体
	tests := []string{
		"0\nPOLYLINE\n8\nTop Copper\n0\nVERTEX\n10\n1\n20\n2\n",
		"0\nCIRCLE\n8\nDrill\n40\n0.25\n",
	}

	for _, data := range tests {
		drawing, err := Load(strings.NewReader(data))
		assert.ErrorIs(t, err, io.ErrUnexpectedEOF, "输入: %q", data)
		assert.Nil(t, drawing, "解析失败不应暴露半成品图纸")
	}
}

func TestLoad_IncompleteTagNoDrawing(t *testing.T) {
	// 组码后缺数值行：报错的同时图纸必须是 nil
	drawing, err := Load(strings.NewReader("10\n"))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Nil(t, drawing)
}

func TestMatches(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"Top Copper", "top_copper", true},
		{"TOP COPPER", "Top Copper", true},
		{"  Drill  ", "drill", true},
		{"Top Copper", "Bottom Copper", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Matches(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestClassifier_Partition(t *testing.T) {
	drawing := load(t)

	var (
		all    = drawing.PolylinesOnLayer("Top Copper")
		open   = drawing.OpenPolylinesOnLayer("Top Copper")
		closed = drawing.ClosedPolylinesOnLayer("Top Copper")
	)

	// 轨迹与区域互斥，并集恰好是该图层的全部多段线
	assert.Len(t, all, 2)
	assert.Len(t, open, 1)
	assert.Len(t, closed, 1)
	assert.NotEqual(t, open[0], closed[0])
}

func TestDiameters(t *testing.T) {
	drawing := load(t)

	// 闭合区域没有线宽，贡献哨兵 0；升序去重
	assert.Equal(t, []float64{0, 0.25, 0.5}, drawing.Diameters())
}

func TestCollect(t *testing.T) {
	drawing := load(t)

	found := drawing.Collect(GerberLayers[".gtl"])
	assert.Len(t, found.Tracks, 1)
	assert.Len(t, found.Regions, 1)
	assert.Empty(t, found.Circles)

	found = drawing.Collect(ExcellonLayers[".gdd"])
	assert.Empty(t, found.Tracks)
	assert.Empty(t, found.Regions)
	assert.Len(t, found.Circles, 1)
}
