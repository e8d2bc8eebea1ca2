// Package hexdump 提供十六进制转储输出。
// 支持规范 hex+ASCII、单字节十六进制、双字节十进制三种格式，
// 以及跳过偏移（-s）与长度截断（-n）窗口。
package hexdump

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
)

// Format 标识一种转储格式。
type Format int

const (
	Canonical Format = iota
	OneByteHex
	TwoByteDecimal
)

const (
	bytesPerLine = 16
	chunkSize    = 4096
)

// Options 存放转储窗口与格式。
// Length 为 0 表示不限长度。
type Options struct {
	Format Format
	Skip   int64
	Length int64
}

// Dump 把 reader 内容按指定格式写出。
// 可 Seek 的输入用 Seek 实现跳过，管道输入用丢弃读实现；
// 输入比跳过量还短时输出为空，不视为错误。
func Dump(writer io.Writer, reader io.Reader, options Options) error {
	if options.Skip > 0 {
		if seeker, ok := reader.(io.Seeker); ok {
			if _, err := seeker.Seek(options.Skip, io.SeekStart); err != nil {
				return fmt.Errorf("skip input: %w", err)
			}
		} else {
			if _, err := io.CopyN(io.Discard, reader, options.Skip); err != nil {
				if errors.Is(err, io.EOF) {
					return nil
				}
				return fmt.Errorf("skip input: %w", err)
			}
		}
	}

	source := reader
	if options.Length > 0 {
		source = io.LimitReader(reader, options.Length)
	}

	buffered := bufio.NewWriter(writer)
	offset := options.Skip
	chunk := make([]byte, chunkSize)

	// 块长度保持 16 的倍数（除末块外），保证各格式的换行对齐。
	for {
		n, readErr := io.ReadFull(source, chunk)
		if n > 0 {
			emitChunk(buffered, chunk[:n], offset, options.Format)
			offset += int64(n)
		}
		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}
	}

	return buffered.Flush()
}

// DumpFile 转储单个文件。
func DumpFile(writer io.Writer, path string, options Options) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return Dump(writer, file, options)
}

func emitChunk(writer *bufio.Writer, data []byte, offset int64, format Format) {
	switch format {
	case OneByteHex:
		emitOneByteHex(writer, data, offset)
	case TwoByteDecimal:
		emitTwoByteDecimal(writer, data, offset)
	default:
		for i := 0; i < len(data); i += bytesPerLine {
			lineEnd := i + bytesPerLine
			if lineEnd > len(data) {
				lineEnd = len(data)
			}
			emitCanonicalLine(writer, data[i:lineEnd], offset+int64(i))
		}
	}
}

// emitCanonicalLine 输出一行规范格式：
// 8 位偏移、每 2 字节一空格、第 8 字节后额外空格、|ASCII| 尾注。
func emitCanonicalLine(writer *bufio.Writer, data []byte, offset int64) {
	fmt.Fprintf(writer, "%08x  ", offset)

	for i := 0; i < bytesPerLine; i++ {
		if i < len(data) {
			fmt.Fprintf(writer, "%02x", data[i])
		} else {
			writer.WriteString("  ")
		}
		if i%2 == 1 {
			writer.WriteByte(' ')
		}
		if i == 7 {
			writer.WriteByte(' ')
		}
	}

	writer.WriteString(" |")
	for _, b := range data {
		if b >= 0x20 && b < 0x7f {
			writer.WriteByte(b)
		} else {
			writer.WriteByte('.')
		}
	}
	writer.WriteString("|\n")
}

func emitOneByteHex(writer *bufio.Writer, data []byte, offset int64) {
	for i, b := range data {
		if i%bytesPerLine == 0 {
			fmt.Fprintf(writer, "%08x ", offset+int64(i))
		}
		fmt.Fprintf(writer, " %02x", b)
		if (i+1)%bytesPerLine == 0 || i == len(data)-1 {
			writer.WriteByte('\n')
		}
	}
}

// emitTwoByteDecimal 按小端组词输出五位十进制，末尾落单字节按单字节输出。
func emitTwoByteDecimal(writer *bufio.Writer, data []byte, offset int64) {
	for i := 0; i < len(data); i += 2 {
		if i%bytesPerLine == 0 {
			fmt.Fprintf(writer, "%08x ", offset+int64(i))
		}

		if i+1 < len(data) {
			value := uint16(data[i+1])<<8 | uint16(data[i])
			fmt.Fprintf(writer, " %05d", value)
		} else {
			fmt.Fprintf(writer, " %05d", data[i])
		}

		if (i+2)%bytesPerLine == 0 || i+2 >= len(data) {
			writer.WriteByte('\n')
		}
	}
}
