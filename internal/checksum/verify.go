package checksum

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Mismatch 表示清单复核中的一条失败记录。
// 文件不可读时 Got 携带错误描述而不是摘要。
type Mismatch struct {
	Path string
	Want string
	Got  string
}

// VerifyManifest 读取“<十六进制摘要>  <路径>”格式的清单并逐条复核。
// 清单即 checksum 子命令自身的输出格式，空行跳过。
// 返回全部不匹配项；清单本身不可读或存在畸形行时报错。
func VerifyManifest(manifestPath string, algorithm Algorithm) ([]Mismatch, error) {
	file, err := os.Open(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer file.Close()

	var mismatches []Mismatch
	lineNumber := 0

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		digest, path, found := strings.Cut(line, "  ")
		if !found || digest == "" || path == "" {
			return nil, fmt.Errorf("manifest line %d: malformed entry", lineNumber)
		}

		result, sumErr := SumFile(path, algorithm)
		if sumErr != nil {
			mismatches = append(mismatches, Mismatch{
				Path: path,
				Want: digest,
				Got:  "unreadable: " + sumErr.Error(),
			})
			continue
		}

		if !strings.EqualFold(digest, result.Digest) {
			mismatches = append(mismatches, Mismatch{
				Path: path,
				Want: digest,
				Got:  result.Digest,
			})
		}
	}

	if scanErr := scanner.Err(); scanErr != nil {
		return nil, fmt.Errorf("read manifest: %w", scanErr)
	}

	return mismatches, nil
}
