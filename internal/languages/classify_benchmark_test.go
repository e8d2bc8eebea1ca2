package languages

import (
	"strings"
	"testing"
)

// buildBenchmarkSource 构造代码/注释/空白/字符串混合的 C 源内容。
func buildBenchmarkSource() []byte {
	var builder strings.Builder
	for i := 0; i < 2000; i++ {
		builder.WriteString("int value = 1; // inline comment\n")
		builder.WriteString("/* block\ncomment */\n")
		builder.WriteString("\n")
		builder.WriteString("const char *s = \"quoted // text\";\n")
	}
	return []byte(builder.String())
}

// BenchmarkClassify 衡量单缓冲分类性能。
func BenchmarkClassify(b *testing.B) {
	content := buildBenchmarkSource()
	syntax, ok := NewRegistry().Detect("bench.c", nil)
	if !ok {
		b.Fatalf("missing C syntax")
	}

	b.SetBytes(int64(len(content)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		Classify(content, syntax)
	}
}
