package languages

import "devutils/internal/model"

// classifyEngine 维护单趟扫描的全部状态。
// 状态只在一次 Classify 调用内存活，调用之间没有共享。
type classifyEngine struct {
	inLineComment  bool
	inBlockComment bool
	inString       bool
	quote          byte
	hasCode        bool
}

// Classify 对整个字节缓冲执行单趟左到右扫描，
// 把每一行归入 code/comment/blank 三类之一。
//
// 规则要点（优先级从高到低）：
// - 换行结束当前行并按状态分类；行注释不跨行，块注释和字符串跨行
// - 字符串态内所有字节按字面消费，仅匹配到未转义的同类引号才退出
// - 块注释起止、行注释标记按字节字面匹配，不嵌套，不越过缓冲末尾
// - 其余非空白字节视为代码内容
//
// 缓冲不以换行结尾时，残留的末行在扫描后按当前状态补分类一次，
// 保证 code+comment+blank 恒等于行数。任意字节序列都可分类，无错误路径。
func Classify(buffer []byte, syntax Syntax) model.LineMetrics {
	metrics := model.LineMetrics{Bytes: uint64(len(buffer))}
	if len(buffer) == 0 {
		return metrics
	}

	engine := classifyEngine{}
	size := len(buffer)
	position := 0

	for position < size {
		current := buffer[position]

		// 行结束：按当前状态分类，复位行内状态。
		if current == '\n' {
			engine.closeLine(&metrics)
			position++
			continue
		}

		// 字符串态优先于一切标记匹配。
		// 转义判定只回看一个字节，反斜杠自身是否被转义不考虑。
		if engine.inString {
			if current == engine.quote && buffer[position-1] != '\\' {
				engine.inString = false
			}
			position++
			continue
		}

		// 空白字节不影响任何分类标记。
		if isSpaceByte(current) {
			position++
			continue
		}

		// 字符串起始。注释态内的引号按普通注释内容处理。
		if !engine.inLineComment && !engine.inBlockComment &&
			(current == '"' || current == '\'') {
			engine.inString = true
			engine.quote = current
			engine.hasCode = true
			position++
			continue
		}

		// 块注释起始。字符串起始检查在前，
		// 因此 Python 的 """ 标记永远先被引号规则截获，属既定行为。
		if !engine.inLineComment && !engine.inBlockComment &&
			matchMarker(buffer, position, syntax.BlockStart) {
			engine.inBlockComment = true
			position += len(syntax.BlockStart)
			continue
		}

		// 块注释结束。块注释不嵌套。
		if engine.inBlockComment && matchMarker(buffer, position, syntax.BlockEnd) {
			engine.inBlockComment = false
			position += len(syntax.BlockEnd)
			continue
		}

		// 行注释起始。
		if !engine.inLineComment && !engine.inBlockComment &&
			matchMarker(buffer, position, syntax.LineComment) {
			engine.inLineComment = true
			position += len(syntax.LineComment)
			continue
		}

		// 普通内容。注释态内的字节不标记代码。
		if !engine.inLineComment && !engine.inBlockComment {
			engine.hasCode = true
		}
		position++
	}

	// 缓冲末尾的残行补分类。标记消费可能把游标推过最后一个字节，
	// 统一在这里按状态收尾，每行只计一次。
	if buffer[size-1] != '\n' {
		engine.closeLine(&metrics)
	}

	return metrics
}

// closeLine 结束一行：块注释或行注释态计 comment，
// 有代码内容计 code，否则计 blank。
// 行注释与 hasCode 不跨行；块注释与字符串状态保留。
func (e *classifyEngine) closeLine(metrics *model.LineMetrics) {
	switch {
	case e.inLineComment || e.inBlockComment:
		metrics.Comment++
	case e.hasCode:
		metrics.Code++
	default:
		metrics.Blank++
	}

	e.inLineComment = false
	e.hasCode = false
}

// matchMarker 在 position 处做字节级字面匹配。
// 标记越过缓冲末尾时视为不匹配。
func matchMarker(buffer []byte, position int, marker string) bool {
	if marker == "" || position+len(marker) > len(buffer) {
		return false
	}
	for i := 0; i < len(marker); i++ {
		if buffer[position+i] != marker[i] {
			return false
		}
	}
	return true
}

// isSpaceByte 按字节判定空白，与码点无关。
func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
