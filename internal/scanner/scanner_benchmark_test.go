package scanner

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"devutils/internal/languages"
)

// prepareBenchmarkFile 创建一个用于单文件扫描基准测试的 C 文件。
func prepareBenchmarkFile(b *testing.B) string {
	b.Helper()

	tempDir := b.TempDir()
	filePath := filepath.Join(tempDir, "large.c")

	lines := make([]string, 0, 6000)
	lines = append(lines, "#include <stdio.h>", "")
	for i := 0; i < 2000; i++ {
		lines = append(lines, "int value"+strconv.Itoa(i)+" = 1; // inline comment")
		lines = append(lines, "/* block comment */")
		lines = append(lines, "void f"+strconv.Itoa(i)+"(void) { (void)value"+strconv.Itoa(i)+"; }")
	}

	if err := os.WriteFile(filePath, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		b.Fatalf("write benchmark fixture failed: %v", err)
	}
	return filePath
}

// prepareBenchmarkDirectory 创建目录扫描基准测试数据。
func prepareBenchmarkDirectory(b *testing.B) string {
	b.Helper()

	tempDir := b.TempDir()
	for i := 0; i < 200; i++ {
		cFile := filepath.Join(tempDir, "src", "c"+strconv.Itoa(i)+".c")
		jsFile := filepath.Join(tempDir, "web", "j"+strconv.Itoa(i)+".js")

		if err := os.MkdirAll(filepath.Dir(cFile), 0o755); err != nil {
			b.Fatalf("mkdir c fixture dir failed: %v", err)
		}
		if err := os.MkdirAll(filepath.Dir(jsFile), 0o755); err != nil {
			b.Fatalf("mkdir js fixture dir failed: %v", err)
		}

		if err := os.WriteFile(cFile, []byte("int x = 1; // c\n"), 0o644); err != nil {
			b.Fatalf("write c fixture failed: %v", err)
		}
		if err := os.WriteFile(jsFile, []byte("const x = 1; // c\n"), 0o644); err != nil {
			b.Fatalf("write js fixture failed: %v", err)
		}
	}
	return tempDir
}

// BenchmarkScanSingleFile 衡量单文件扫描性能。
func BenchmarkScanSingleFile(b *testing.B) {
	filePath := prepareBenchmarkFile(b)
	service := NewService(languages.NewRegistry(), 1, nil)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.ScanPaths([]string{filePath}); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}

// BenchmarkScanDirectory 衡量目录并发扫描性能。
func BenchmarkScanDirectory(b *testing.B) {
	dirPath := prepareBenchmarkDirectory(b)
	service := NewService(languages.NewRegistry(), 8, nil)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := service.ScanPaths([]string{dirPath}); err != nil {
			b.Fatalf("scan failed: %v", err)
		}
	}
}
