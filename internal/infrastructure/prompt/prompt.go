// Package prompt 提供等待人工输入验证码的阻塞点
// 运行器只依赖 CodePrompter 接口，测试或非交互运行时可替换为预置验证码
package prompt

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"hellobike_login/pkg/errorx"
)

// CodePrompter 读取一条验证码
type CodePrompter interface {
	// ReadCode 阻塞直到读到一行输入或 ctx 结束
	ReadCode(ctx context.Context) (string, error)
}

// LinePrompter 从 io.Reader（通常是 os.Stdin）读取一行
// 只去掉行尾的 "\n"（及其前面的 "\r"），不做 trim，也不校验内容
type LinePrompter struct {
	reader *bufio.Reader
}

// NewLinePrompter 创建按行读取的 Prompter
func NewLinePrompter(r io.Reader) *LinePrompter {
	return &LinePrompter{reader: bufio.NewReader(r)}
}

type lineResult struct {
	line string
	err  error
}

// ReadCode 读取一行输入
// ctx 结束时立即返回，后台的读取不会被打断，此后不应再复用该 Prompter
func (p *LinePrompter) ReadCode(ctx context.Context) (string, error) {
	ch := make(chan lineResult, 1)
	go func() {
		line, err := p.reader.ReadString('\n')
		ch <- lineResult{line: line, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", errorx.Wrap(ctx.Err(), errorx.CodeInputError, "等待验证码输入被取消")
	case res := <-ch:
		if res.err != nil {
			// 最后一行没有换行符时仍然返回已读到的内容
			if errors.Is(res.err, io.EOF) && res.line != "" {
				return stripLineEnding(res.line), nil
			}
			if errors.Is(res.err, io.EOF) {
				return "", errorx.Wrap(res.err, errorx.CodeInputError, "输入已结束，未读到验证码")
			}
			return "", errorx.Wrap(res.err, errorx.CodeInputError, "读取验证码输入失败")
		}
		return stripLineEnding(res.line), nil
	}
}

func stripLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// StaticPrompter 直接返回预置的验证码
type StaticPrompter struct {
	Code string
}

// ReadCode 返回预置验证码
func (p StaticPrompter) ReadCode(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", errorx.Wrap(err, errorx.CodeInputError, "等待验证码输入被取消")
	}
	return p.Code, nil
}

var (
	_ CodePrompter = (*LinePrompter)(nil)
	_ CodePrompter = StaticPrompter{}
)
