package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"hellobike_login/internal/dto/respond"
	"hellobike_login/pkg/errorx"
)

type stubAuthCodeService struct {
	sent     []string
	loginErr error
}

func (s *stubAuthCodeService) SendCode(ctx context.Context, mobile string) error {
	s.sent = append(s.sent, mobile)
	return nil
}

func (s *stubAuthCodeService) Login(ctx context.Context, mobile, code string) (*respond.LoginRespond, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &respond.LoginRespond{Mobile: mobile, AccessToken: "access-" + code}, nil
}

type envelope struct {
	Code    int             `json:"code"`
	Msg     json.RawMessage `json:"msg"`
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
}

func newTestEngine(t *testing.T, svc *stubAuthCodeService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	if err := InitTrans("en"); err != nil {
		t.Fatalf("InitTrans: %v", err)
	}
	engine := gin.New()
	engine.POST("/auth", NewAuthHandler(svc).Dispatch)
	return engine
}

func post(t *testing.T, engine *gin.Engine, body string) envelope {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	engine.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return env
}

func TestDispatchSendCode(t *testing.T) {
	svc := &stubAuthCodeService{}
	env := post(t, newTestEngine(t, svc), `{"mobile":"19100000001","action":"user.account.sendCodeV2"}`)

	if env.Code != errorx.CodeSuccess || !env.Success {
		t.Fatalf("unexpected envelope: %+v", env)
	}
	if len(svc.sent) != 1 || svc.sent[0] != "19100000001" {
		t.Fatalf("SendCode calls: %v", svc.sent)
	}
}

func TestDispatchLogin(t *testing.T) {
	env := post(t, newTestEngine(t, &stubAuthCodeService{}), `{"mobile":"19100000001","code":"123456","action":"user.account.login"}`)

	var data respond.LoginRespond
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if data.AccessToken != "access-123456" || data.Mobile != "19100000001" {
		t.Fatalf("unexpected data: %+v", data)
	}
}

func TestDispatchLoginBusinessError(t *testing.T) {
	svc := &stubAuthCodeService{loginErr: errorx.ErrInvalidCode}
	env := post(t, newTestEngine(t, svc), `{"mobile":"19100000001","code":"123456","action":"user.account.login"}`)

	if env.Code != errorx.CodeInvalidCode || env.Success {
		t.Fatalf("unexpected envelope: %+v", env)
	}
}

func TestDispatchParamErrors(t *testing.T) {
	engine := newTestEngine(t, &stubAuthCodeService{})
	cases := map[string]string{
		"missing mobile": `{"action":"user.account.sendCodeV2"}`,
		"unknown action": `{"mobile":"19100000001","action":"user.account.logout"}`,
		"login no code":  `{"mobile":"19100000001","action":"user.account.login"}`,
		"short code":     `{"mobile":"19100000001","code":"123","action":"user.account.login"}`,
		"not json":       `mobile=19100000001`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			env := post(t, engine, body)
			if env.Code != errorx.CodeInvalidParam {
				t.Fatalf("code = %d, want %d (msg %s)", env.Code, errorx.CodeInvalidParam, env.Msg)
			}
		})
	}
}

func TestParamErrorUsesJSONFieldNames(t *testing.T) {
	env := post(t, newTestEngine(t, &stubAuthCodeService{}), `{"action":"user.account.sendCodeV2"}`)

	var fields map[string]string
	if err := json.Unmarshal(env.Msg, &fields); err != nil {
		t.Fatalf("msg is not a field map: %s", env.Msg)
	}
	if _, ok := fields["mobile"]; !ok {
		t.Fatalf("expected json field name in %v", fields)
	}
}
