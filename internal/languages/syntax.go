// Package languages 提供语言描述表、按后缀的语言识别，
// 以及核心的单趟行分类状态机。
package languages

// 语言数字 id。聚合与 JSON 输出只使用语言名，
// id 保留给需要稳定整数键的调用方。
const (
	LangC = iota
	LangCPP
	LangPython
	LangJava
	LangGo
	LangRust
	LangJavaScript
)

// Syntax 描述一种语言的注释约定与可识别后缀。
//
// 约束说明：
// - 三个标记均为非空 ASCII 短串，匹配时按字节逐一比较
// - 描述符是只读值，构造后不再修改，直接按值传递
type Syntax struct {
	Name        string
	Extensions  []string
	LineComment string
	BlockStart  string
	BlockEnd    string
	ID          int
}

// builtinSyntaxes 返回内置语言表。
// 每次调用返回独立切片，调用方可以安全持有，不存在共享可变全局。
func builtinSyntaxes() []Syntax {
	return []Syntax{
		{
			Name:        "C",
			Extensions:  []string{".c", ".h"},
			LineComment: "//",
			BlockStart:  "/*",
			BlockEnd:    "*/",
			ID:          LangC,
		},
		{
			Name:        "C++",
			Extensions:  []string{".cpp", ".hpp", ".cc", ".hxx", ".cxx"},
			LineComment: "//",
			BlockStart:  "/*",
			BlockEnd:    "*/",
			ID:          LangCPP,
		},
		{
			Name:        "Python",
			Extensions:  []string{".py", ".pyw"},
			LineComment: "#",
			BlockStart:  `"""`,
			BlockEnd:    `"""`,
			ID:          LangPython,
		},
		{
			Name:        "Java",
			Extensions:  []string{".java"},
			LineComment: "//",
			BlockStart:  "/*",
			BlockEnd:    "*/",
			ID:          LangJava,
		},
		{
			Name:        "Go",
			Extensions:  []string{".go"},
			LineComment: "//",
			BlockStart:  "/*",
			BlockEnd:    "*/",
			ID:          LangGo,
		},
		{
			Name:        "Rust",
			Extensions:  []string{".rs"},
			LineComment: "//",
			BlockStart:  "/*",
			BlockEnd:    "*/",
			ID:          LangRust,
		},
		{
			Name:        "JavaScript",
			Extensions:  []string{".js", ".jsx", ".mjs"},
			LineComment: "//",
			BlockStart:  "/*",
			BlockEnd:    "*/",
			ID:          LangJavaScript,
		},
	}
}
