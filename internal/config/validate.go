package config

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/locales/en"
	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"

	"hellobike_login/pkg/errorx"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	// 报错信息使用 toml 键名，与配置文件保持一致
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	enT := en.New()
	uni := ut.New(enT, zh.New(), enT)
	trans, _ = uni.GetTranslator("zh")
	_ = zh_translations.RegisterDefaultTranslations(validate, trans)
}

// Validate 校验某个配置分组（如 &cfg.AuthAPIConfig）
// 校验失败时返回 CodeInvalidConfig，消息为翻译后的字段错误
func Validate(section any) error {
	err := validate.Struct(section)
	if err == nil {
		return nil
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errorx.Wrap(err, errorx.CodeInvalidConfig, "配置校验失败")
	}

	msgs := make([]string, 0, len(validationErrs))
	for _, msg := range validationErrs.Translate(trans) {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return errorx.Wrap(err, errorx.CodeInvalidConfig, "配置校验失败: "+strings.Join(msgs, "; "))
}
