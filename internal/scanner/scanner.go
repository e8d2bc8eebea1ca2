// Package scanner 提供并发扫描调度能力。
// 该层负责目录遍历、任务分发、并发执行和结果聚合，不负责行分类细节。
package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"devutils/internal/languages"
	"devutils/internal/model"
)

// Service 是扫描服务对象。
type Service struct {
	registry *languages.Registry
	workers  int
	excludes []string
}

// scanTask 表示一个待分类文件任务。
type scanTask struct {
	absolutePath string
	displayPath  string
}

// workerResult 表示 worker 的执行产物。
type workerResult struct {
	fileMetrics *model.FileMetrics
	scanError   *model.ScanError
}

// NewService 创建扫描服务。
// excludes 是针对文件名或相对路径的通配模式列表，命中即跳过。
func NewService(registry *languages.Registry, workers int, excludes []string) *Service {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Service{
		registry: registry,
		workers:  workers,
		excludes: excludes,
	}
}

// ScanPaths 扫描一批目录或文件。
// 目录遍历与任务分发并发执行；聚合始终由当前协程单线程完成，
// 单文件失败只记入错误列表，不中断整体扫描。
func (s *Service) ScanPaths(targetPaths []string) (model.ScanResult, error) {
	var result model.ScanResult

	if len(targetPaths) == 0 {
		return result, errors.New("scan paths are empty")
	}

	type scanTarget struct {
		absolutePath string
		isDirectory  bool
	}

	targets := make([]scanTarget, 0, len(targetPaths))
	for _, targetPath := range targetPaths {
		trimmedPath := strings.TrimSpace(targetPath)
		if trimmedPath == "" {
			return result, errors.New("scan path is empty")
		}

		absoluteTarget, err := filepath.Abs(trimmedPath)
		if err != nil {
			return result, fmt.Errorf("resolve absolute path: %w", err)
		}

		info, err := os.Stat(absoluteTarget)
		if err != nil {
			return result, fmt.Errorf("stat path: %w", err)
		}

		targets = append(targets, scanTarget{
			absolutePath: absoluteTarget,
			isDirectory:  info.IsDir(),
		})
		result.ScannedPaths = append(result.ScannedPaths, absoluteTarget)
	}

	tasks := make(chan scanTask, s.workers*4)
	results := make(chan workerResult, s.workers*4)
	walkErrChan := make(chan error, 1)

	var workerGroup sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		workerGroup.Add(1)
		go func() {
			defer workerGroup.Done()
			s.runWorker(tasks, results)
		}()
	}

	go func() {
		defer close(tasks)
		for _, target := range targets {
			if target.isDirectory {
				if err := s.enqueueDirectoryTasks(target.absolutePath, tasks); err != nil {
					walkErrChan <- err
					return
				}
				continue
			}
			if err := s.enqueueSingleFileTask(target.absolutePath, tasks); err != nil {
				walkErrChan <- err
				return
			}
		}
		walkErrChan <- nil
	}()

	go func() {
		workerGroup.Wait()
		close(results)
	}()

	result.Files = make([]model.FileMetrics, 0)
	result.Errors = make([]model.ScanError, 0)

	for item := range results {
		if item.fileMetrics != nil {
			result.Files = append(result.Files, *item.fileMetrics)
		}
		if item.scanError != nil {
			result.Errors = append(result.Errors, *item.scanError)
		}
	}

	if walkErr := <-walkErrChan; walkErr != nil {
		return result, walkErr
	}

	s.buildSummaries(&result)
	return result, nil
}

// enqueueDirectoryTasks 深度优先遍历目录并把可识别语言文件推入任务队列。
// 隐藏文件与隐藏目录跳过；显式传入的根路径本身不受隐藏规则影响。
func (s *Service) enqueueDirectoryTasks(root string, tasks chan<- scanTask) error {
	return filepath.WalkDir(root, func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}

		if path != root && strings.HasPrefix(entry.Name(), ".") {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			return nil
		}

		relativePath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = filepath.ToSlash(relativePath)

		if s.excluded(relativePath, entry.Name()) {
			return nil
		}

		if !entry.Type().IsRegular() || !s.registry.Supported(path) {
			return nil
		}

		tasks <- scanTask{
			absolutePath: path,
			displayPath:  relativePath,
		}
		return nil
	})
}

// enqueueSingleFileTask 在用户给定单文件路径时创建任务。
func (s *Service) enqueueSingleFileTask(filePath string, tasks chan<- scanTask) error {
	if !s.registry.Supported(filePath) {
		return fmt.Errorf("unsupported file extension: %s", filepath.Ext(filePath))
	}

	tasks <- scanTask{
		absolutePath: filePath,
		displayPath:  filepath.Base(filePath),
	}
	return nil
}

// excluded 按通配模式匹配相对路径与文件名。
func (s *Service) excluded(relativePath string, name string) bool {
	for _, pattern := range s.excludes {
		if matched, err := filepath.Match(pattern, relativePath); err == nil && matched {
			return true
		}
		if matched, err := filepath.Match(pattern, name); err == nil && matched {
			return true
		}
	}
	return false
}

// runWorker 读取文件内容、确定语言并执行行分类。
// 分类器消费完整字节缓冲，语言嗅探复用同一缓冲的前缀。
func (s *Service) runWorker(tasks <-chan scanTask, results chan<- workerResult) {
	for task := range tasks {
		content, readErr := os.ReadFile(task.absolutePath)
		if readErr != nil {
			results <- workerResult{
				scanError: &model.ScanError{
					Path:  task.displayPath,
					Error: readErr.Error(),
				},
			}
			continue
		}

		syntax, ok := s.registry.Detect(task.absolutePath, content)
		if !ok {
			// 入队前已校验过后缀，这里只是兜底。
			continue
		}

		metrics := languages.Classify(content, syntax)

		results <- workerResult{
			fileMetrics: &model.FileMetrics{
				Path:     task.displayPath,
				Language: syntax.Name,
				Metrics:  metrics,
			},
		}
	}
}

// buildSummaries 计算语言级汇总和总计信息。
func (s *Service) buildSummaries(result *model.ScanResult) {
	sort.Slice(result.Files, func(i int, j int) bool {
		return result.Files[i].Path < result.Files[j].Path
	})

	sort.Slice(result.Errors, func(i int, j int) bool {
		return result.Errors[i].Path < result.Errors[j].Path
	})

	byLanguage := make(map[string]*model.LanguageMetrics)
	result.Total = model.TotalMetrics{}

	for _, item := range result.Files {
		result.Total.AddFileMetrics(item.Metrics)

		summary, ok := byLanguage[item.Language]
		if !ok {
			summary = &model.LanguageMetrics{
				Language:   item.Language,
				Extensions: s.registry.ExtensionsForLanguage(item.Language),
			}
			byLanguage[item.Language] = summary
		}

		summary.Files++
		summary.Metrics.Add(item.Metrics)
	}

	result.Languages = make([]model.LanguageMetrics, 0, len(byLanguage))
	for _, item := range byLanguage {
		result.Languages = append(result.Languages, *item)
	}

	sort.Slice(result.Languages, func(i int, j int) bool {
		return result.Languages[i].Language < result.Languages[j].Language
	})
}
