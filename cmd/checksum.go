package cmd

import (
	"fmt"

	"devutils/internal/checksum"

	"github.com/spf13/cobra"
)

// checksumOptions 存放 checksum 命令的可配置参数。
type checksumOptions struct {
	useCRC32   bool
	useSum     bool
	useAdler32 bool
	useXXH3    bool
	verifyPath string
	quiet      bool
}

// algorithm 根据互斥开关确定算法，缺省 CRC32。
func (o checksumOptions) algorithm() checksum.Algorithm {
	switch {
	case o.useXXH3:
		return checksum.XXH3
	case o.useAdler32:
		return checksum.Adler32
	case o.useSum:
		return checksum.BSDSum
	default:
		return checksum.CRC32
	}
}

// newChecksumCmd 创建 checksum 子命令。
// 示例：
//
//	devutils checksum file1 file2
//	devutils checksum --adler32 file
//	devutils checksum --verify sums.txt
//	cat file | devutils checksum --quiet
func newChecksumCmd() *cobra.Command {
	var options checksumOptions

	checksumCmd := &cobra.Command{
		Use:   "checksum [file...]",
		Short: "计算文件校验和（CRC32/Adler-32/BSD sum/XXH3）",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			algorithm := options.algorithm()

			if options.verifyPath != "" {
				return runChecksumVerify(cmd, options.verifyPath, algorithm)
			}

			if len(args) == 0 {
				result, err := checksum.SumReader(cmd.InOrStdin(), algorithm)
				if err != nil {
					return err
				}
				printChecksum(cmd, result, "(standard input)", options.quiet)
				return nil
			}

			failed := 0
			for _, path := range args {
				result, err := checksum.SumFile(path, algorithm)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "checksum: %s: %v\n", path, err)
					failed++
					continue
				}
				printChecksum(cmd, result, path, options.quiet)
			}

			if failed > 0 {
				return fmt.Errorf("%d file(s) could not be read", failed)
			}
			return nil
		},
	}

	checksumCmd.Flags().BoolVarP(&options.useCRC32, "crc32", "c", false, "计算 CRC32 校验和（缺省）")
	checksumCmd.Flags().BoolVarP(&options.useSum, "sum", "s", false, "计算 BSD sum 校验和")
	checksumCmd.Flags().BoolVarP(&options.useAdler32, "adler32", "a", false, "计算 Adler-32 校验和")
	checksumCmd.Flags().BoolVarP(&options.useXXH3, "xxh3", "x", false, "计算 XXH3-64 校验和")
	checksumCmd.Flags().StringVarP(&options.verifyPath, "verify", "v", "", "按清单文件复核校验和")
	checksumCmd.Flags().BoolVarP(&options.quiet, "quiet", "q", false, "只输出校验值，不输出文件名")

	return checksumCmd
}

// printChecksum 按“摘要  文件名”的清单格式输出一条结果。
func printChecksum(cmd *cobra.Command, result checksum.Result, name string, quiet bool) {
	if quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", result.Digest)
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", result.Digest, name)
}

// runChecksumVerify 执行清单复核并报告全部不匹配项。
func runChecksumVerify(cmd *cobra.Command, manifestPath string, algorithm checksum.Algorithm) error {
	mismatches, err := checksum.VerifyManifest(manifestPath, algorithm)
	if err != nil {
		return err
	}

	for _, item := range mismatches {
		fmt.Fprintf(cmd.ErrOrStderr(), "checksum: %s: FAILED (want %s, got %s)\n",
			item.Path, item.Want, item.Got)
	}

	if len(mismatches) > 0 {
		return fmt.Errorf("%d checksum mismatch(es)", len(mismatches))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "all checksums verified (%s)\n", algorithm)
	return nil
}
