// Package diff 提供朴素的逐行文件比较。
// 两个文件按行号同步推进，不做最长公共子序列对齐，
// 因此一行插入会让其后所有行都报差异，这是该工具的既定取舍。
package diff

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrFilesDiffer 是“文件存在差异”的哨兵错误。
// 调用方据此把退出码映射为 1，与运行错误的 2 区分开。
var ErrFilesDiffer = errors.New("files differ")

// Options 存放比较行为开关。
type Options struct {
	IgnoreCase       bool
	IgnoreWhitespace bool
	Brief            bool
}

// maxLineSize 限制单行长度，超长行直接报错而不是静默截断。
const maxLineSize = 1024 * 1024

// Compare 逐行比较两个文件并向 writer 输出经典编辑指令行。
// 返回值表示是否存在差异；I/O 失败返回错误。
func Compare(writer io.Writer, firstPath string, secondPath string, options Options) (bool, error) {
	first, err := os.Open(firstPath)
	if err != nil {
		return false, err
	}
	defer first.Close()

	second, err := os.Open(secondPath)
	if err != nil {
		return false, err
	}
	defer second.Close()

	firstScanner := newLineScanner(first)
	secondScanner := newLineScanner(second)

	lineNumber := 1
	differences := false

	for {
		firstOK := firstScanner.Scan()
		secondOK := secondScanner.Scan()

		if !firstOK && !secondOK {
			break
		}

		// 文件一先耗尽：文件二剩余行按追加输出。
		if !firstOK {
			if !options.Brief {
				fmt.Fprintf(writer, "%da%d\n> %s\n", lineNumber-1, lineNumber, secondScanner.Text())
			}
			differences = true
			lineNumber++
			continue
		}

		// 文件二先耗尽：文件一剩余行按删除输出。
		if !secondOK {
			if !options.Brief {
				fmt.Fprintf(writer, "%dd%d\n< %s\n", lineNumber, lineNumber-1, firstScanner.Text())
			}
			differences = true
			lineNumber++
			continue
		}

		firstLine := normalizeLine(firstScanner.Text(), options)
		secondLine := normalizeLine(secondScanner.Text(), options)

		if firstLine != secondLine {
			if !options.Brief {
				fmt.Fprintf(writer, "%dc%d\n< %s\n---\n> %s\n",
					lineNumber, lineNumber, firstScanner.Text(), secondScanner.Text())
			}
			differences = true
		}

		lineNumber++
	}

	if err := firstScanner.Err(); err != nil {
		return differences, fmt.Errorf("read %s: %w", firstPath, err)
	}
	if err := secondScanner.Err(); err != nil {
		return differences, fmt.Errorf("read %s: %w", secondPath, err)
	}

	if options.Brief && differences {
		fmt.Fprintf(writer, "Files %s and %s differ\n", firstPath, secondPath)
	}

	return differences, nil
}

// newLineScanner 创建放宽单行长度上限的行扫描器。
func newLineScanner(reader io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner
}

// normalizeLine 按选项归一化一行内容。
// 大小写折叠只处理 ASCII 大写字母，空白忽略只剔除空格和制表符，
// 与逐字节比较的语义保持一致。
func normalizeLine(line string, options Options) string {
	if !options.IgnoreCase && !options.IgnoreWhitespace {
		return line
	}

	normalized := make([]byte, 0, len(line))
	for i := 0; i < len(line); i++ {
		b := line[i]

		if options.IgnoreWhitespace && (b == ' ' || b == '\t') {
			continue
		}

		if options.IgnoreCase && b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}

		normalized = append(normalized, b)
	}

	return string(normalized)
}
