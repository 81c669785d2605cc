package cam

import (
	"fmt"
	"os"
	"sort"

	"github.com/zooyer/cam/excellon"
	"github.com/zooyer/cam/gerber"
)

// Config 汇总两种输出的配置
type Config struct {
	Gerber   gerber.Config
	Excellon excellon.Config
}

func DefaultConfig() Config {
	return Config{
		Gerber:   gerber.DefaultConfig(),
		Excellon: excellon.DefaultConfig(),
	}
}

// Convert 为一张图纸生成全部生产文件，base 是不带扩展名的输出路径。
// 每个输出文件由独立的 Writer 实例产生，光圈表/刀具表不跨文件复用。
func Convert(drawing *Drawing, base string, config Config) error {
	diameters := drawing.Diameters()

	// 1. Gerber 光绘层
	for _, ext := range sortedKeys(GerberLayers) {
		var (
			filename = base + ext
			found    = drawing.Collect(GerberLayers[ext])
			job      = gerber.Job{
				Diameters: diameters,
				Tracks:    found.Tracks,
				Regions:   found.Regions,
				Flashes:   found.Circles,
			}
		)
		if job.Empty() {
			skip(filename)
			continue
		}

		fmt.Printf("写入光绘文件 %s: %d 条轨迹, %d 个区域, %d 个焊盘\n",
			filename, len(job.Tracks), len(job.Regions), len(job.Flashes))

		var warnings []string
		err := writeFile(filename, func(file *os.File) error {
			writer := gerber.NewWriter(file, config.Gerber)
			err := writer.Write(job)
			warnings = writer.Warnings
			return err
		})
		if err != nil {
			return err
		}
		for _, warning := range warnings {
			fmt.Println("警告:", warning)
		}
	}

	// 2. Excellon 钻孔层
	for _, ext := range sortedKeys(ExcellonLayers) {
		var (
			filename = base + ext
			found    = drawing.Collect(ExcellonLayers[ext])
			job      = excellon.Job{
				Diameters: diameters,
				Holes:     found.Circles,
				Tracks:    found.Tracks,
				Regions:   found.Regions,
			}
		)
		if job.Empty() {
			skip(filename)
			continue
		}

		fmt.Printf("写入钻孔文件 %s: %d 个孔\n", filename, len(job.Holes))

		if err := writeFile(filename, func(file *os.File) error {
			return excellon.NewWriter(file, config.Excellon).Write(job)
		}); err != nil {
			return err
		}
	}

	// 3. 机械层切槽/挖空尚未实现，只提示不输出
	for _, ext := range sortedKeys(MechanicalLayers) {
		found := drawing.Collect(MechanicalLayers[ext])
		if total := len(found.Tracks) + len(found.Regions) + len(found.Circles); total > 0 {
			fmt.Printf("提示: 机械层切槽/挖空尚未实现，忽略 %s 的 %d 个实体\n", base+ext, total)
		}
	}

	return nil
}

// skip 空文件不生成，上次运行留下的旧文件顺手删除
func skip(filename string) {
	fmt.Println("内容为空，跳过文件:", filename)
	_ = os.Remove(filename)
}

func writeFile(filename string, write func(*os.File) error) (err error) {
	file, err := os.Create(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return write(file)
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}
