package cmd

import (
	"fmt"
	"io"

	"devutils/internal/count"

	"github.com/spf13/cobra"
)

// newCountCmd 创建 count 子命令。
// 输出列依次为行/词/字符/字节，多文件时追加 total 行。
// 示例：
//
//	devutils count file1 file2
//	cat file | devutils count
func newCountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count [file...]",
		Short: "统计行/词/字符/字节数",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				counts, err := count.Reader(cmd.InOrStdin())
				if err != nil {
					return err
				}
				printCounts(cmd.OutOrStdout(), counts, "")
				return nil
			}

			var total count.Counts
			succeeded := 0
			failed := 0

			for _, path := range args {
				counts, err := count.File(path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "count: %s: %v\n", path, err)
					failed++
					continue
				}

				printCounts(cmd.OutOrStdout(), counts, path)
				total.Add(counts)
				succeeded++
			}

			if succeeded > 1 {
				printCounts(cmd.OutOrStdout(), total, "total")
			}

			if failed > 0 {
				return fmt.Errorf("%d file(s) could not be read", failed)
			}
			return nil
		},
	}
}

// printCounts 输出右对齐的统计行，name 为空时省略文件名列。
func printCounts(writer io.Writer, counts count.Counts, name string) {
	if name == "" {
		fmt.Fprintf(writer, "%8d %8d %8d %8d\n",
			counts.Lines, counts.Words, counts.Chars, counts.Bytes)
		return
	}
	fmt.Fprintf(writer, "%8d %8d %8d %8d %s\n",
		counts.Lines, counts.Words, counts.Chars, counts.Bytes, name)
}
