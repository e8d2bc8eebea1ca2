// Package model 定义 devutils 扫描统计的核心数据模型。
// 这些结构会被扫描器、输出层和命令层共同使用。
package model

// LineMetrics 表示一组行级统计值。
//
// 注意：
// - Code/Comment/Blank 三类互斥，每行只计入其中一类
// - 总行数不单独存储，由 Lines 方法求和得出
// - Bytes 记录参与分类的字节总量
type LineMetrics struct {
	Code    uint64 `json:"code"`
	Comment uint64 `json:"comment"`
	Blank   uint64 `json:"blank"`
	Bytes   uint64 `json:"bytes"`
}

// Lines 返回三类行数之和，即文件的总行数。
func (m LineMetrics) Lines() uint64 {
	return m.Code + m.Comment + m.Blank
}

// Add 将另一个统计结果叠加到当前对象。
func (m *LineMetrics) Add(other LineMetrics) {
	m.Code += other.Code
	m.Comment += other.Comment
	m.Blank += other.Blank
	m.Bytes += other.Bytes
}

// FileMetrics 表示单文件扫描结果。
type FileMetrics struct {
	Path     string      `json:"path"`
	Language string      `json:"language"`
	Metrics  LineMetrics `json:"metrics"`
}

// LanguageMetrics 表示某个语言的聚合结果。
type LanguageMetrics struct {
	Language   string      `json:"language"`
	Extensions []string    `json:"extensions"`
	Files      uint64      `json:"files"`
	Metrics    LineMetrics `json:"metrics"`
}

// ScanError 记录单文件扫描失败信息。
// 设计为“错误不阻断全量扫描”，便于大仓库分析时容错。
type ScanError struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// TotalMetrics 表示项目级总计信息。
// 在 LineMetrics 基础上额外增加 Files 字段，
// 用于表达“本次扫描统计到了多少个有效源码文件”。
type TotalMetrics struct {
	Files uint64 `json:"files"`
	LineMetrics
}

// AddFileMetrics 累加一个文件的统计值到项目总计中。
func (m *TotalMetrics) AddFileMetrics(other LineMetrics) {
	m.Files++
	m.LineMetrics.Add(other)
}

// ScanResult 是 scan 命令的完整输出模型。
// 包含文件级明细、语言级汇总、全局总计和错误列表。
type ScanResult struct {
	ScannedPaths []string          `json:"scanned_paths"`
	Files        []FileMetrics     `json:"files"`
	Languages    []LanguageMetrics `json:"languages"`
	Total        TotalMetrics      `json:"total"`
	Errors       []ScanError       `json:"errors"`
}
