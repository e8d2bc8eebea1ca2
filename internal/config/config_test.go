package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestLoadScanConfig 验证 YAML 配置的读取与解析。
func TestLoadScanConfig(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "scan.yaml")

	content := "exclude:\n  - vendor/*\n  - \"*_generated.c\"\nworkers: 3\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	cfg, err := LoadScanConfig(configPath)
	if err != nil {
		t.Fatalf("load config failed: %v", err)
	}

	if len(cfg.Exclude) != 2 || cfg.Exclude[0] != "vendor/*" || cfg.Exclude[1] != "*_generated.c" {
		t.Fatalf("unexpected exclude list: %+v", cfg.Exclude)
	}
	if cfg.Workers != 3 {
		t.Fatalf("unexpected workers: %d", cfg.Workers)
	}
}

// TestLoadScanConfigMissingFile 验证文件不存在时报错。
func TestLoadScanConfigMissingFile(t *testing.T) {
	if _, err := LoadScanConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatalf("expected read error, got nil")
	}
}

// TestLoadScanConfigMalformed 验证非法 YAML 报解析错误。
func TestLoadScanConfigMalformed(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "scan.yaml")
	if err := os.WriteFile(configPath, []byte("exclude: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config failed: %v", err)
	}

	if _, err := LoadScanConfig(configPath); err == nil {
		t.Fatalf("expected parse error, got nil")
	}
}
