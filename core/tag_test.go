package core

import (
	"testing"
)

func TestTag_Float(t *testing.T) {
	// 数值解析时量化到 1/8
	tests := []struct {
		value string
		want  float64
	}{
		{"0.125", 0.125},
		{"0.13", 0.125},
		{"10", 10},
		{"-1.06", -1.0},
		{"0.0624", 0.0},
	}

	for _, tt := range tests {
		f, err := Tag{Code: CodeX, Value: tt.value}.Float()
		if err != nil {
			t.Fatalf("解析 %q 失败: %v", tt.value, err)
		}
		if f != tt.want {
			t.Errorf("量化结果不符: %q 期望 %v, 得到 %v", tt.value, tt.want, f)
		}
	}
}

func TestTag_FloatInvalid(t *testing.T) {
	if _, err := (Tag{Code: CodeX, Value: "abc"}).Float(); err == nil {
		t.Error("非法数值应当报错")
	}
}

func TestTag_Int(t *testing.T) {
	i, err := Tag{Code: CodeFlags, Value: " 1 "}.Int()
	if err != nil || i != 1 {
		t.Errorf("整数解析不符: %v, %v", i, err)
	}

	if _, err = (Tag{Code: CodeFlags, Value: "x"}).Int(); err == nil {
		t.Error("非法整数应当报错")
	}
}

func TestRound(t *testing.T) {
	if Round(1.0/3.0) != 0.375 {
		t.Errorf("1/3 应量化到 0.375, 得到 %v", Round(1.0/3.0))
	}
}
