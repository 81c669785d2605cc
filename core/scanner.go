package core

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Scanner 按 (组码, 值) 标签对读取 DXF 流。
// 组码行优先按十进制解析，失败后重试十六进制；仍失败则视为噪声，
// 连同其后的值行一并丢弃（重新同步）。
type Scanner struct {
	reader  *bufio.Reader
	LastTag Tag
	err     error
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(r),
	}
}

// Next 读取下一组标签对，流结束或出错时返回 false
func (s *Scanner) Next() bool {
	for {
		// 1. 读取组码行
		codeLine, err := s.readLine()
		if err != nil {
			if err != io.EOF {
				s.err = err
			}
			return false
		}

		code, ok := parseCode(codeLine)
		if !ok {
			// 重新同步：丢弃该行以及它本应对应的值行
			if _, err = s.readLine(); err != nil {
				if err != io.EOF {
					s.err = err
				}
				return false
			}
			continue
		}

		// 2. 读取值行，组码后缺少值视为流不完整
		value, err := s.readLine()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			s.err = err
			return false
		}

		s.LastTag = Tag{Code: code, Value: value}
		return true
	}
}

func (s *Scanner) Err() error {
	return s.err
}

// readLine 读取一行并去除首尾空白，最后一行可以没有换行符
func (s *Scanner) readLine() (line string, err error) {
	line, err = s.reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if err == io.EOF && line != "" {
		err = nil
	}

	return
}

func parseCode(s string) (int, bool) {
	if code, err := strconv.Atoi(s); err == nil {
		return code, true
	}
	if code, err := strconv.ParseInt(s, 16, 32); err == nil {
		return int(code), true
	}

	return 0, false
}
