package cmd

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"devutils/internal/config"
	"devutils/internal/languages"
	"devutils/internal/report"
	"devutils/internal/scanner"

	"github.com/spf13/cobra"
)

// scanOptions 存放 scan 命令的可配置参数。
type scanOptions struct {
	format     string
	output     string
	workers    int
	configPath string
	excludes   []string
}

// newScanCmd 创建 scan 子命令。
// 示例：
//
//	devutils scan .
//	devutils scan src include --exclude 'vendor/*'
//	devutils scan ./project --format json --output result.json
func newScanCmd(registry *languages.Registry) *cobra.Command {
	options := scanOptions{
		format:  "table",
		output:  "output.json",
		workers: runtime.NumCPU(),
	}

	scanCmd := &cobra.Command{
		Use:   "scan [path...]",
		Short: "按语言统计目录或文件的 code/comment/blank 行数",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := strings.ToLower(strings.TrimSpace(options.format))
			if format != "table" && format != "json" {
				return errors.New("unsupported format, allowed values: table, json")
			}

			if options.workers <= 0 {
				return errors.New("workers must be greater than 0")
			}

			excludes := options.excludes
			if options.configPath != "" {
				cfg, err := config.LoadScanConfig(options.configPath)
				if err != nil {
					return err
				}
				excludes = append(append([]string(nil), cfg.Exclude...), excludes...)
				if cfg.Workers > 0 && !cmd.Flags().Changed("workers") {
					options.workers = cfg.Workers
				}
			}

			service := scanner.NewService(registry, options.workers, excludes)
			result, err := service.ScanPaths(args)
			if err != nil {
				return err
			}

			switch format {
			case "table":
				if err := report.PrintTable(cmd.OutOrStdout(), result); err != nil {
					return err
				}
			case "json":
				if err := report.PrintJSON(cmd.OutOrStdout(), result); err != nil {
					return err
				}

				outputPath := strings.TrimSpace(options.output)
				if outputPath == "" {
					outputPath = "output.json"
				}
				if err := report.WriteJSONFile(outputPath, result); err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nJSON exported to %s\n", outputPath)
			}

			// 单文件失败不阻断扫描，但要在退出码里体现。
			if len(result.Errors) > 0 {
				return fmt.Errorf("%d file(s) could not be scanned", len(result.Errors))
			}
			return nil
		},
	}

	scanCmd.Flags().StringVar(&options.format, "format", options.format, "输出格式: table 或 json")
	scanCmd.Flags().StringVar(&options.output, "output", options.output, "json 导出文件路径，默认 output.json")
	scanCmd.Flags().IntVar(&options.workers, "workers", options.workers, "并发 worker 数量")
	scanCmd.Flags().StringVar(&options.configPath, "config", "", "YAML 扫描配置文件路径")
	scanCmd.Flags().StringArrayVar(&options.excludes, "exclude", nil, "跳过匹配该通配模式的文件，可重复指定")

	return scanCmd
}
