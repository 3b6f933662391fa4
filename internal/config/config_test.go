package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"hellobike_login/pkg/constants"
	"hellobike_login/pkg/errorx"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint != constants.DEFAULT_ENDPOINT {
		t.Fatalf("endpoint = %q, want %q", cfg.Endpoint, constants.DEFAULT_ENDPOINT)
	}
	if cfg.TimeoutSeconds != 0 {
		t.Fatalf("timeout = %d, want 0 (no timeout)", cfg.TimeoutSeconds)
	}
	if cfg.MockServerConfig.Port != 8000 {
		t.Fatalf("mock port = %d, want 8000", cfg.MockServerConfig.Port)
	}
}

func TestLoadFromFileKeepsTwoMobiles(t *testing.T) {
	path := writeConfig(t, `
[authApiConfig]
endpoint = "http://127.0.0.1:9000/auth"
sendCodeMobile = "19100000001"
loginMobile = "18700000002"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SendCodeMobile != "19100000001" || cfg.LoginMobile != "18700000002" {
		t.Fatalf("unexpected mobiles: %s", cfg.AuthAPIConfig.Summary())
	}
}

func TestLoginMobileFallsBackToSendMobile(t *testing.T) {
	path := writeConfig(t, `
[authApiConfig]
sendCodeMobile = "19100000001"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LoginMobile != cfg.SendCodeMobile {
		t.Fatalf("login mobile = %q", cfg.LoginMobile)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
[authApiConfig]
endpoint = "http://127.0.0.1:9000/auth"
sendCodeMobile = "19100000001"
`)
	t.Setenv("HELLOBIKE_ENDPOINT", "http://127.0.0.1:9100/auth")
	t.Setenv("HELLOBIKE_CODE", "135792")
	t.Setenv("HELLOBIKE_TIMEOUT", "10")
	t.Setenv("REDIS_ENABLED", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Endpoint != "http://127.0.0.1:9100/auth" {
		t.Fatalf("endpoint = %q", cfg.Endpoint)
	}
	if cfg.Code != "135792" || cfg.TimeoutSeconds != 10 || !cfg.RedisConfig.Enabled {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	summary := cfg.AuthAPIConfig.Summary()
	if strings.Contains(summary, "135792") || !strings.Contains(summary, "code=******") {
		t.Fatalf("summary must mask the verification code: %s", summary)
	}
}

func TestInvalidEnvValue(t *testing.T) {
	t.Setenv("HELLOBIKE_TIMEOUT", "soon")
	_, err := Load()
	if errorx.GetCode(err) != errorx.CodeInvalidConfig {
		t.Fatalf("expected CodeInvalidConfig, got %v", err)
	}
}

func TestMalformedFile(t *testing.T) {
	path := writeConfig(t, "[authApiConfig\nendpoint=")
	if _, err := Load(path); errorx.GetCode(err) != errorx.CodeInvalidConfig {
		t.Fatalf("expected CodeInvalidConfig, got %v", err)
	}
}

func TestValidateAuthAPIConfig(t *testing.T) {
	ok := AuthAPIConfig{
		Endpoint:       "https://api.hellobike.com/auth",
		SendCodeMobile: "19100000001",
		LoginMobile:    "19100000001",
	}
	if err := Validate(&ok); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	bad := AuthAPIConfig{Endpoint: "not a url"}
	err := Validate(&bad)
	if errorx.GetCode(err) != errorx.CodeInvalidConfig {
		t.Fatalf("expected CodeInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "sendCodeMobile") || !strings.Contains(err.Error(), "endpoint") {
		t.Fatalf("expected toml field names in message, got %q", err.Error())
	}
}

func TestValidateMockServerConfig(t *testing.T) {
	if err := Validate(&MockServerConfig{Host: "127.0.0.1", Port: 70000}); err == nil {
		t.Fatal("expected port range error")
	}
}
