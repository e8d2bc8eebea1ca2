package languages

import (
	"bytes"
	"path/filepath"
	"sort"
)

// headerProbeSize 是 .h 歧义嗅探时检查的内容前缀上限。
const headerProbeSize = 4096

// cppKeywords 是 .h 文件判定 C++ 的固定关键字表。
// 嗅探只是尽力而为的启发式，允许误判。
var cppKeywords = []string{
	"class", "namespace", "template", "typename", "operator",
	"virtual", "public:", "private:", "protected:", "friend",
}

// Descriptor 用于对外展示语言及后缀信息。
type Descriptor struct {
	Name       string
	Extensions []string
}

// Registry 管理语言描述表与后缀映射。
// 后缀匹配大小写敏感，.H 不等于 .h。
type Registry struct {
	syntaxes    []Syntax
	byExtension map[string]Syntax
	byName      map[string]Syntax
}

// NewRegistry 创建并装载内置语言表。
func NewRegistry() *Registry {
	syntaxes := builtinSyntaxes()

	registry := &Registry{
		syntaxes:    syntaxes,
		byExtension: make(map[string]Syntax),
		byName:      make(map[string]Syntax),
	}

	for _, syntax := range syntaxes {
		registry.byName[syntax.Name] = syntax
		for _, extension := range syntax.Extensions {
			if _, exists := registry.byExtension[extension]; !exists {
				registry.byExtension[extension] = syntax
			}
		}
	}

	return registry
}

// Supported 判断路径后缀是否对应已知语言。
func (r *Registry) Supported(path string) bool {
	_, ok := r.byExtension[filepath.Ext(path)]
	return ok
}

// Detect 根据后缀与内容前缀确定语言描述符。
// content 只在歧义后缀（通用头文件 .h）时被检查，
// 其余后缀的判定与内容无关。
func (r *Registry) Detect(path string, content []byte) (Syntax, bool) {
	extension := filepath.Ext(path)
	syntax, ok := r.byExtension[extension]
	if !ok {
		return Syntax{}, false
	}

	if extension == ".h" && looksLikeCPP(content) {
		return r.byName["C++"], true
	}

	return syntax, true
}

// looksLikeCPP 在内容前缀里检索 C++ 关键字。
func looksLikeCPP(content []byte) bool {
	probe := content
	if len(probe) > headerProbeSize {
		probe = probe[:headerProbeSize]
	}

	for _, keyword := range cppKeywords {
		if bytes.Contains(probe, []byte(keyword)) {
			return true
		}
	}
	return false
}

// Languages 返回已注册语言清单。
func (r *Registry) Languages() []Descriptor {
	result := make([]Descriptor, 0, len(r.syntaxes))
	for _, syntax := range r.syntaxes {
		extensions := append([]string(nil), syntax.Extensions...)
		sort.Strings(extensions)
		result = append(result, Descriptor{
			Name:       syntax.Name,
			Extensions: extensions,
		})
	}

	sort.Slice(result, func(i int, j int) bool {
		return result[i].Name < result[j].Name
	})

	return result
}

// ExtensionsForLanguage 返回指定语言对应的全部后缀。
func (r *Registry) ExtensionsForLanguage(language string) []string {
	syntax, ok := r.byName[language]
	if !ok {
		return nil
	}

	extensions := append([]string(nil), syntax.Extensions...)
	sort.Strings(extensions)
	return extensions
}
