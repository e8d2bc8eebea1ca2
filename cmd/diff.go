package cmd

import (
	"devutils/internal/diff"

	"github.com/spf13/cobra"
)

// newDiffCmd 创建 diff 子命令。
// 有差异时返回 ErrFilesDiffer 哨兵错误，由 main 映射为退出码 1。
// 示例：
//
//	devutils diff old.txt new.txt
//	devutils diff -q -i a.txt b.txt
func newDiffCmd() *cobra.Command {
	var options diff.Options

	diffCmd := &cobra.Command{
		Use:   "diff <file1> <file2>",
		Short: "逐行比较两个文件",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			differences, err := diff.Compare(cmd.OutOrStdout(), args[0], args[1], options)
			if err != nil {
				return err
			}
			if differences {
				return diff.ErrFilesDiffer
			}
			return nil
		},
	}

	diffCmd.Flags().BoolVarP(&options.IgnoreCase, "ignore-case", "i", false, "忽略大小写差异")
	diffCmd.Flags().BoolVarP(&options.IgnoreWhitespace, "ignore-all-space", "w", false, "忽略全部空白差异")
	diffCmd.Flags().BoolVarP(&options.Brief, "brief", "q", false, "只报告文件是否有差异")

	return diffCmd
}
