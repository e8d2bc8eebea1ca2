// Package cmd 提供 devutils 的命令行入口与子命令编排。
package cmd

import (
	"devutils/internal/languages"

	"github.com/spf13/cobra"
)

// Execute 组装根命令并执行。
// version 参数由 main 包注入，便于在 CI/CD 中打包不同版本。
func Execute(version string) error {
	registry := languages.NewRegistry()
	rootCmd := newRootCmd(version, registry)
	return rootCmd.Execute()
}

// newRootCmd 创建根命令并注册全部子命令。
// 错误统一交给 main 输出并映射退出码，因此这里同时静默 usage 与错误。
func newRootCmd(version string, registry *languages.Registry) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devutils",
		Short: "文本与字节实用工具集",
		Long: "devutils 汇集五个相互独立的文本/字节命令行工具：\n" +
			"按语言统计代码行数（scan）、文件校验和（checksum）、行词字符字节计数（count）、\n" +
			"逐行文件比较（diff）与十六进制转储（hexdump）。",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newVersionCmd(version))
	rootCmd.AddCommand(newLanguageCmd(registry))
	rootCmd.AddCommand(newScanCmd(registry))
	rootCmd.AddCommand(newChecksumCmd())
	rootCmd.AddCommand(newCountCmd())
	rootCmd.AddCommand(newDiffCmd())
	rootCmd.AddCommand(newHexdumpCmd())

	return rootCmd
}
