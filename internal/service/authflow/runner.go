// Package authflow 串联"发送验证码 → 等待输入 → 验证码登录"三个步骤
// 流程严格顺序执行，任一步失败立即返回，不重试，也不会继续后续步骤
package authflow

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"hellobike_login/internal/dto/request"
	"hellobike_login/internal/dto/respond"
	"hellobike_login/internal/infrastructure/authapi"
	"hellobike_login/internal/infrastructure/prompt"
	"hellobike_login/pkg/constants"
)

// 输出到控制台的固定文案
const (
	SendCodeHeader = "发送验证码响应："
	CodePromptText = "请输入收到的验证码："
	LoginHeader    = "登录响应："
)

// Options 构造 Runner 所需的依赖与参数
type Options struct {
	Client         authapi.Client      // 认证接口客户端
	Prompter       prompt.CodePrompter // 验证码输入
	Out            io.Writer           // 提示语和响应内容的输出位置
	SendCodeMobile string              // 发送验证码的手机号
	LoginMobile    string              // 登录使用的手机号
}

// Runner 认证流程执行器，每次调用 Run 执行一次完整流程
type Runner struct {
	client         authapi.Client
	prompter       prompt.CodePrompter
	out            io.Writer
	sendCodeMobile string
	loginMobile    string
	runID          string
}

// NewRunner 创建认证流程执行器
func NewRunner(opts Options) *Runner {
	return &Runner{
		client:         opts.Client,
		prompter:       opts.Prompter,
		out:            opts.Out,
		sendCodeMobile: opts.SendCodeMobile,
		loginMobile:    opts.LoginMobile,
		runID:          uuid.NewString(),
	}
}

// Run 依次执行发送验证码、等待输入、登录
// 发送验证码失败时不会请求登录接口
func (r *Runner) Run(ctx context.Context) error {
	log := zap.L().With(zap.String("run_id", r.runID))
	if r.sendCodeMobile != r.loginMobile {
		// 两个手机号不一致多半是配置失误，但仍按配置执行，只做提示
		log.Warn("发送验证码与登录使用了不同的手机号，收到的验证码可能无法用于登录",
			zap.String("send_code_mobile", r.sendCodeMobile),
			zap.String("login_mobile", r.loginMobile),
		)
	}

	if _, err := r.SendVerificationCode(ctx, r.sendCodeMobile); err != nil {
		return fmt.Errorf("发送验证码: %w", err)
	}

	code, err := r.PromptForCode(ctx)
	if err != nil {
		return fmt.Errorf("读取验证码: %w", err)
	}

	if _, err := r.Login(ctx, r.loginMobile, code); err != nil {
		return fmt.Errorf("验证码登录: %w", err)
	}
	log.Info("认证流程结束")
	return nil
}

// SendVerificationCode 请求向 mobile 发送验证码，并原样输出响应体
// 手机号格式由调用方保证，这里不做校验
func (r *Runner) SendVerificationCode(ctx context.Context, mobile string) (*respond.RawRespond, error) {
	resp, err := r.client.PostAction(ctx, request.SendCodeRequest{
		Mobile: mobile,
		Action: constants.ACTION_SEND_CODE,
	})
	if err != nil {
		zap.L().Error("发送验证码请求失败", zap.String("run_id", r.runID), zap.String("mobile", mobile), zap.Error(err))
		return nil, err
	}
	r.logResponse(constants.ACTION_SEND_CODE, mobile, resp)

	fmt.Fprintln(r.out, SendCodeHeader)
	fmt.Fprintln(r.out, resp.Text())
	return resp, nil
}

// PromptForCode 输出提示语后阻塞等待一行输入，返回内容不做校验
func (r *Runner) PromptForCode(ctx context.Context) (string, error) {
	fmt.Fprint(r.out, CodePromptText)
	code, err := r.prompter.ReadCode(ctx)
	if err != nil {
		return "", err
	}
	zap.L().Debug("已读取验证码输入", zap.String("run_id", r.runID), zap.Int("length", len(code)))
	return code, nil
}

// Login 使用 mobile 与 code 请求登录，并原样输出响应体
func (r *Runner) Login(ctx context.Context, mobile, code string) (*respond.RawRespond, error) {
	resp, err := r.client.PostAction(ctx, request.LoginRequest{
		Mobile: mobile,
		Code:   code,
		Action: constants.ACTION_LOGIN,
	})
	if err != nil {
		zap.L().Error("登录请求失败", zap.String("run_id", r.runID), zap.String("mobile", mobile), zap.Error(err))
		return nil, err
	}
	r.logResponse(constants.ACTION_LOGIN, mobile, resp)

	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, LoginHeader)
	fmt.Fprintln(r.out, resp.Text())
	return resp, nil
}

// logResponse 记录响应摘要；响应体本身不解析，外壳字段仅在能解析时附带
func (r *Runner) logResponse(action, mobile string, resp *respond.RawRespond) {
	fields := []zap.Field{
		zap.String("run_id", r.runID),
		zap.String("action", action),
		zap.String("mobile", mobile),
		zap.Int("status", resp.StatusCode),
	}
	if env, ok := resp.Envelope(); ok {
		fields = append(fields, zap.ByteString("code", env.Code), zap.String("msg", env.Msg))
		if env.Success != nil {
			fields = append(fields, zap.Bool("success", *env.Success))
		}
	}

	if !resp.OK() {
		zap.L().Warn("认证接口返回非 2xx 状态码", fields...)
		return
	}
	zap.L().Info("认证接口已响应", fields...)
}
