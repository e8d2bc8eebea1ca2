// main.go 是 devutils 的程序入口。
// 该文件仅负责注入版本号、执行 Cobra 根命令并映射退出码，
// 让业务逻辑保持在 cmd/internal 目录中，便于测试和扩展。
package main

import (
	"errors"
	"fmt"
	"os"

	"devutils/cmd"
	"devutils/internal/diff"
)

// version 默认值为 dev。
// 发布时可以通过 -ldflags "-X main.version=vX.Y.Z" 覆盖该值。
var version = "dev"

func main() {
	if err := cmd.Execute(version); err != nil {
		// diff 子命令用哨兵错误表达“文件有差异”，
		// 退出码约定为 1，区别于运行错误的 2，不打印消息。
		if errors.Is(err, diff.ErrFilesDiffer) {
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "devutils error: %v\n", err)
		os.Exit(2)
	}
}
