package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

const (
	ErrInvalidFormat      = "Invalid format"
	ErrFieldRequired      = "This field is required"
	ErrFieldExceedsMaxLen = "Ensure this value has at most %s characters"
	ErrFieldBelowMinLen   = "Ensure this value has at least %s characters"
	ErrInvalidURL         = "Enter a valid URL"
	ErrInvalidEmail       = "Enter a valid email address"
	ErrInvalidChoice      = "Select a valid choice"
	ErrInvalidDate        = "Enter a valid date (YYYY-MM-DD)"
	ErrInvalidClock       = "Enter a valid time (HH:MM)"
	ErrUnknownValidation  = "Invalid value"
)

// Register 將自訂 tag 掛到 gin 的 validator 上，main 與測試啟動時呼叫一次
func Register() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected binding validator engine")
	}
	return RegisterOn(v)
}

func RegisterOn(v *validator.Validate) error {
	if err := v.RegisterValidation("isodate", validateISODate); err != nil {
		return err
	}
	if err := v.RegisterValidation("clock", validateClock); err != nil {
		return err
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return nil
}

func validateISODate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// FieldErrors 把 validator.ValidationErrors 轉成 {欄位: 訊息}，給 handler 回傳表單錯誤
func FieldErrors(err error) map[string]string {
	var vErrors validator.ValidationErrors
	if !errors.As(err, &vErrors) {
		return nil
	}
	out := make(map[string]string, len(vErrors))
	for _, ve := range vErrors {
		out[ve.Field()] = message(ve)
	}
	return out
}

func message(ve validator.FieldError) string {
	switch baseTag(ve.Tag()) {
	case "required":
		return ErrFieldRequired
	case "max":
		return strings.Replace(ErrFieldExceedsMaxLen, "%s", ve.Param(), 1)
	case "min":
		return strings.Replace(ErrFieldBelowMinLen, "%s", ve.Param(), 1)
	case "url", "http_url":
		return ErrInvalidURL
	case "email":
		return ErrInvalidEmail
	case "oneof":
		return ErrInvalidChoice
	case "isodate":
		return ErrInvalidDate
	case "clock":
		return ErrInvalidClock
	default:
		return ErrUnknownValidation
	}
}

// baseTag 取 "url|eq=" 這類 or 規則的第一個 tag 名稱
func baseTag(tag string) string {
	tag, _, _ = strings.Cut(tag, "|")
	tag, _, _ = strings.Cut(tag, "=")
	return tag
}
