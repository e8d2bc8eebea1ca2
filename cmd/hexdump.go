package cmd

import (
	"errors"
	"fmt"

	"devutils/internal/hexdump"

	"github.com/spf13/cobra"
)

// hexdumpOptions 存放 hexdump 命令的可配置参数。
type hexdumpOptions struct {
	canonical      bool
	oneByteHex     bool
	twoByteDecimal bool
	skip           int64
	length         int64
}

// format 确定输出格式，缺省规范 hex+ASCII。
func (o hexdumpOptions) format() hexdump.Format {
	switch {
	case o.oneByteHex:
		return hexdump.OneByteHex
	case o.twoByteDecimal:
		return hexdump.TwoByteDecimal
	default:
		return hexdump.Canonical
	}
}

// newHexdumpCmd 创建 hexdump 子命令。
// 示例：
//
//	devutils hexdump -C file.bin
//	devutils hexdump -s 64 -n 256 file.bin
//	cat file | devutils hexdump -x
func newHexdumpCmd() *cobra.Command {
	var options hexdumpOptions

	hexdumpCmd := &cobra.Command{
		Use:   "hexdump [file...]",
		Short: "以十六进制格式显示文件内容",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.skip < 0 {
				return errors.New("skip must not be negative")
			}
			if cmd.Flags().Changed("length") && options.length <= 0 {
				return errors.New("length must be greater than 0")
			}

			dumpOptions := hexdump.Options{
				Format: options.format(),
				Skip:   options.skip,
				Length: options.length,
			}

			if len(args) == 0 {
				return hexdump.Dump(cmd.OutOrStdout(), cmd.InOrStdin(), dumpOptions)
			}

			failed := 0
			for _, path := range args {
				if err := hexdump.DumpFile(cmd.OutOrStdout(), path, dumpOptions); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "hexdump: %s: %v\n", path, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d file(s) could not be dumped", failed)
			}
			return nil
		},
	}

	hexdumpCmd.Flags().BoolVarP(&options.canonical, "canonical", "C", false, "规范 hex+ASCII 显示（缺省）")
	hexdumpCmd.Flags().BoolVarP(&options.oneByteHex, "one-byte-hex", "x", false, "单字节十六进制显示")
	hexdumpCmd.Flags().BoolVarP(&options.twoByteDecimal, "two-byte-decimal", "d", false, "双字节十进制显示")
	hexdumpCmd.Flags().Int64VarP(&options.skip, "skip", "s", 0, "跳过输入开头的字节数")
	hexdumpCmd.Flags().Int64VarP(&options.length, "length", "n", 0, "只处理指定长度的输入")

	return hexdumpCmd
}
