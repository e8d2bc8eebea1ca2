package count

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// countText 是测试辅助函数，对字符串内容执行统计。
func countText(t *testing.T, content string) Counts {
	t.Helper()

	counts, err := Reader(strings.NewReader(content))
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return counts
}

// TestCountBasic 验证行/词/字符/字节的基础统计。
func TestCountBasic(t *testing.T) {
	counts := countText(t, "hello world\nsecond line\n")

	if counts.Lines != 2 || counts.Words != 4 || counts.Chars != 24 || counts.Bytes != 24 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

// TestCountNoTrailingNewline 验证末行无换行时行数只计换行符。
func TestCountNoTrailingNewline(t *testing.T) {
	counts := countText(t, "one two")

	if counts.Lines != 0 || counts.Words != 2 || counts.Bytes != 7 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

// TestCountWordStateAcrossWhitespace 验证连续空白只分隔一次词。
func TestCountWordStateAcrossWhitespace(t *testing.T) {
	counts := countText(t, "  a\t\tb  \n\n c ")

	if counts.Words != 3 || counts.Lines != 2 {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

// TestCountUTF8Chars 验证字符按码点计数而字节按原始长度计数。
func TestCountUTF8Chars(t *testing.T) {
	counts := countText(t, "héllo 世界\n")

	if counts.Chars != 9 {
		t.Fatalf("unexpected char count: %d", counts.Chars)
	}
	if counts.Bytes != 14 {
		t.Fatalf("unexpected byte count: %d", counts.Bytes)
	}
}

// TestCountEmptyInput 验证空输入全零。
func TestCountEmptyInput(t *testing.T) {
	counts := countText(t, "")

	if counts != (Counts{}) {
		t.Fatalf("unexpected counts: %+v", counts)
	}
}

// TestCountFileAndAdd 验证文件入口与 total 叠加。
func TestCountFileAndAdd(t *testing.T) {
	tempDir := t.TempDir()
	filePath := filepath.Join(tempDir, "sample.txt")
	if err := os.WriteFile(filePath, []byte("a b\nc\n"), 0o644); err != nil {
		t.Fatalf("write fixture failed: %v", err)
	}

	counts, err := File(filePath)
	if err != nil {
		t.Fatalf("count file failed: %v", err)
	}
	if counts.Lines != 2 || counts.Words != 3 || counts.Bytes != 6 {
		t.Fatalf("unexpected counts: %+v", counts)
	}

	var total Counts
	total.Add(counts)
	total.Add(counts)
	if total.Lines != 4 || total.Words != 6 || total.Bytes != 12 {
		t.Fatalf("unexpected total: %+v", total)
	}
}
