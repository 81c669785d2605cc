package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ncruces/zenity"
	"github.com/zooyer/golib/xos"

	"github.com/zooyer/cam"
)

func init() {
	if len(os.Args) < 2 {
		// 双击启动时弹出文件选择框
		filename, err := zenity.SelectFile(
			zenity.Title("选择DXF图纸"),
			zenity.FileFilters{
				{Name: "DXF图纸", Patterns: []string{"*.dxf"}, CaseFold: true},
			},
		)
		if err != nil || filename == "" {
			fmt.Println("请把DXF文件拖入该程序上执行！")
			xos.PauseExit()
			os.Exit(1)
		}
		os.Args = append(os.Args, filename)
	}
}

func main() {
	defer xos.PauseExit()

	for _, filename := range os.Args[1:] {
		fmt.Println("处理文件:", filename)

		drawing, err := cam.Open(filename)
		if err != nil {
			panic(err)
		}

		var box = drawing.BBox()
		fmt.Printf("解析完成: %d 条多段线, %d 个圆\n", len(drawing.Polylines), len(drawing.Circles))
		fmt.Println("图层:", strings.Join(drawing.LayerNames(), ", "))
		fmt.Printf("范围: (%.2f, %.2f) - (%.2f, %.2f)\n", box.Min.X, box.Min.Y, box.Max.X, box.Max.Y)

		var base = strings.TrimSuffix(filename, filepath.Ext(filename))
		if err = cam.Convert(drawing, base, cam.DefaultConfig()); err != nil {
			panic(err)
		}

		fmt.Println("完成")
		fmt.Println()
	}
}
