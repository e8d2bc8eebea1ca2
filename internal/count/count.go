// Package count 提供行/词/字符/字节的流式统计。
// 字符按 UTF-8 码点计数，字节按原始输入计数，词以空白分隔。
package count

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode"
)

// Counts 表示一次内容统计的产物。
type Counts struct {
	Lines uint64
	Words uint64
	Chars uint64
	Bytes uint64
}

// Add 将另一份统计叠加到当前对象，用于多文件 total 行。
func (c *Counts) Add(other Counts) {
	c.Lines += other.Lines
	c.Words += other.Words
	c.Chars += other.Chars
	c.Bytes += other.Bytes
}

// Reader 流式统计任意输入。
// 词状态跨读取边界保持，非法 UTF-8 序列按单字节字符计数。
func Reader(reader io.Reader) (Counts, error) {
	var counts Counts
	inWord := false

	buffered := bufio.NewReaderSize(reader, 64*1024)
	for {
		r, size, err := buffered.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return counts, fmt.Errorf("read input: %w", err)
		}

		counts.Bytes += uint64(size)
		counts.Chars++

		if r == '\n' {
			counts.Lines++
		}

		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			counts.Words++
		}
	}

	return counts, nil
}

// File 统计单个文件。
func File(path string) (Counts, error) {
	file, err := os.Open(path)
	if err != nil {
		return Counts{}, err
	}
	defer file.Close()

	return Reader(file)
}
