package hexdump

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// dumpBytes 是测试辅助函数，对内存数据执行转储。
func dumpBytes(t *testing.T, data []byte, options Options) string {
	t.Helper()

	var output strings.Builder
	if err := Dump(&output, bytes.NewReader(data), options); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	return output.String()
}

// TestCanonicalFullLine 验证规范格式的完整一行：
// 偏移、成对分组、第 8 字节后的额外空格与 ASCII 尾注。
func TestCanonicalFullLine(t *testing.T) {
	output := dumpBytes(t, []byte("0123456789abcdef"), Options{Format: Canonical})

	expected := "00000000  3031 3233 3435 3637  3839 6162 6364 6566  |0123456789abcdef|\n"
	if output != expected {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestCanonicalPartialLine 验证末行不足 16 字节时的补位与占位点。
func TestCanonicalPartialLine(t *testing.T) {
	output := dumpBytes(t, []byte{0x00, 0x01, 0x02, 0xff}, Options{Format: Canonical})

	expected := "00000000  0001 02ff " +
		"     " + "      " + "     " + "     " + "     " + "     " +
		" |....|\n"
	if output != expected {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestCanonicalMultipleLines 验证偏移按行推进。
func TestCanonicalMultipleLines(t *testing.T) {
	data := make([]byte, 17)
	output := dumpBytes(t, data, Options{Format: Canonical})

	lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], "00000000  ") || !strings.HasPrefix(lines[1], "00000010  ") {
		t.Fatalf("unexpected offsets: %q", output)
	}
}

// TestOneByteHexFormat 验证单字节十六进制格式。
func TestOneByteHexFormat(t *testing.T) {
	output := dumpBytes(t, []byte{0xde, 0xad, 0xbe}, Options{Format: OneByteHex})

	expected := "00000000  de ad be\n"
	if output != expected {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestTwoByteDecimalFormat 验证双字节小端十进制格式与落单字节处理。
func TestTwoByteDecimalFormat(t *testing.T) {
	output := dumpBytes(t, []byte{0x01, 0x00, 0xff, 0x00, 0x07}, Options{Format: TwoByteDecimal})

	// 0x0001=1，0x00ff=255，末尾落单 0x07 按单字节输出。
	expected := "00000000  00001 00255 00007\n"
	if output != expected {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestSkipAndLengthWindow 验证 -s/-n 窗口与偏移显示。
func TestSkipAndLengthWindow(t *testing.T) {
	data := make([]byte, 32)
	for i := range data {
		data[i] = byte(i)
	}

	output := dumpBytes(t, data, Options{Format: OneByteHex, Skip: 16, Length: 4})

	expected := "00000010  10 11 12 13\n"
	if output != expected {
		t.Fatalf("unexpected output: %q", output)
	}
}

// TestSkipOnNonSeeker 验证管道输入用丢弃读实现跳过。
func TestSkipOnNonSeeker(t *testing.T) {
	reader := io.MultiReader(strings.NewReader("abcd"), strings.NewReader("efgh"))

	var output strings.Builder
	if err := Dump(&output, reader, Options{Format: OneByteHex, Skip: 4}); err != nil {
		t.Fatalf("dump failed: %v", err)
	}

	expected := "00000004  65 66 67 68\n"
	if output.String() != expected {
		t.Fatalf("unexpected output: %q", output.String())
	}
}

// TestSkipBeyondInput 验证输入比跳过量短时输出为空且不报错。
func TestSkipBeyondInput(t *testing.T) {
	reader := io.MultiReader(strings.NewReader("ab"))

	var output strings.Builder
	if err := Dump(&output, reader, Options{Format: Canonical, Skip: 100}); err != nil {
		t.Fatalf("dump failed: %v", err)
	}
	if output.String() != "" {
		t.Fatalf("expected empty output, got %q", output.String())
	}
}

// TestDumpEmptyInput 验证空输入输出为空。
func TestDumpEmptyInput(t *testing.T) {
	output := dumpBytes(t, nil, Options{Format: Canonical})

	if output != "" {
		t.Fatalf("expected empty output, got %q", output)
	}
}
