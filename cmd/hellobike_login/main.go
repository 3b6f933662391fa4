package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hellobike_login/internal/config"
	"hellobike_login/internal/infrastructure/authapi"
	"hellobike_login/internal/infrastructure/logger"
	"hellobike_login/internal/infrastructure/prompt"
	"hellobike_login/internal/service/authflow"
)

func main() {
	os.Exit(run(os.Stdin, os.Stdout, os.Stderr))
}

// run 执行一次认证流程，返回进程退出码
// stdout 只输出提示语和接口响应，日志与错误走 stderr
func run(stdin io.Reader, stdout, stderr io.Writer) int {
	// 1. 加载配置
	conf, err := config.Load(config.SearchPaths...)
	if err != nil {
		fmt.Fprintf(stderr, "load config failed: %v\n", err)
		return 1
	}

	// 2. 初始化日志：warn 及以上始终输出到 stderr；只有显式配置 fileName 时才写文件
	logOpts := []logger.Option{logger.WithConsole(stderr)}
	if conf.LogConfig.FileName == "" {
		logOpts = append(logOpts, logger.WithoutFile())
	}
	if err := logger.Init(&conf.LogConfig, conf.Mode, logOpts...); err != nil {
		fmt.Fprintf(stderr, "init logger failed: %v\n", err)
		return 1
	}
	defer func() { _ = zap.L().Sync() }()

	// 3. 校验认证接口配置
	if err := config.Validate(&conf.AuthAPIConfig); err != nil {
		zap.L().Error("认证接口配置不完整", zap.Error(err))
		return 1
	}
	zap.L().Info("配置加载完成", zap.String("auth_api", conf.AuthAPIConfig.Summary()))

	// Ctrl+C 时取消进行中的请求和输入等待
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var prompter prompt.CodePrompter = prompt.NewLinePrompter(stdin)
	if conf.Code != "" {
		prompter = prompt.StaticPrompter{Code: conf.Code}
	}

	runner := authflow.NewRunner(authflow.Options{
		Client:         authapi.NewHTTPClient(conf.Endpoint, time.Duration(conf.TimeoutSeconds)*time.Second),
		Prompter:       prompter,
		Out:            stdout,
		SendCodeMobile: conf.SendCodeMobile,
		LoginMobile:    conf.LoginMobile,
	})

	if err := runner.Run(ctx); err != nil {
		zap.L().Error("认证流程中止", zap.Error(err))
		return 1
	}
	return 0
}
