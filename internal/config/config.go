// Package config 提供 scan 命令的 YAML 配置加载。
// 配置文件是可选的，所有字段都有命令行侧的缺省值。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScanConfig 是扫描配置文件的结构。
//
// 示例：
//
//	exclude:
//	  - vendor/*
//	  - "*_generated.go"
//	workers: 4
type ScanConfig struct {
	Exclude []string `yaml:"exclude"`
	Workers int      `yaml:"workers"`
}

// LoadScanConfig 从指定路径读取并解析扫描配置。
func LoadScanConfig(path string) (ScanConfig, error) {
	var cfg ScanConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}
