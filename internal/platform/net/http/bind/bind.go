// Package bind decodes JSON request bodies and validates them with translated messages
package bind

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "mishkal/internal/platform/errors"
	"mishkal/internal/platform/logger"

	"github.com/go-playground/locales/ar"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Supported message locales
const (
	LocaleEN = "en"
	LocaleAR = "ar"
)

// ValidatorSvc holds the validator and one translator per locale
type ValidatorSvc struct {
	Validator   *validator.Validate
	translators map[string]ut.Translator
}

// Translator returns the translator for locale, falling back to english
func (s *ValidatorSvc) Translator(locale string) ut.Translator {
	if t, ok := s.translators[locale]; ok {
		return t
	}
	return s.translators[LocaleEN]
}

var (
	vOnce    sync.Once
	vSvc     *ValidatorSvc
	jsonMore = func(dec *json.Decoder) bool { return dec.More() } // seam

	labelsMu sync.RWMutex
	labels   = map[string]map[string]string{} // locale -> json field -> display label
)

// Init builds the validator singleton with english and arabic messages keyed by json names
func Init() *ValidatorSvc {
	vOnce.Do(func() {
		enLoc := en.New()
		uni := ut.New(enLoc, enLoc, ar.New())
		enT, _ := uni.GetTranslator(LocaleEN)
		arT, _ := uni.GetTranslator(LocaleAR)

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag := fld.Tag.Get("json")
			if idx := strings.Index(tag, ","); idx >= 0 {
				tag = tag[:idx]
			}
			if tag == "-" || tag == "" {
				return fld.Name
			}
			return tag
		})

		_ = en_translations.RegisterDefaultTranslations(v, enT)
		registerShort(v, enT, "min", "{0} must be at least {1}", LocaleEN)
		registerShort(v, enT, "max", "{0} must be at most {1}", LocaleEN)

		registerShort(v, arT, "required", "{0} مطلوب", LocaleAR)
		registerShort(v, arT, "min", "{0} يجب ألا يقل عن {1}", LocaleAR)
		registerShort(v, arT, "max", "{0} يجب ألا يزيد عن {1}", LocaleAR)

		vSvc = &ValidatorSvc{
			Validator:   v,
			translators: map[string]ut.Translator{LocaleEN: enT, LocaleAR: arT},
		}
	})
	return vSvc
}

// Get returns the validator singleton, initializing on first use
func Get() *ValidatorSvc { return Init() }

// RegisterLabel sets the display label used for a json field in locale messages
// e.g. RegisterLabel(LocaleAR, "text", "النص") renders "النص مطلوب"
func RegisterLabel(locale, field, label string) {
	labelsMu.Lock()
	defer labelsMu.Unlock()
	if labels[locale] == nil {
		labels[locale] = map[string]string{}
	}
	labels[locale][field] = label
}

func labelFor(locale, field string) string {
	labelsMu.RLock()
	defer labelsMu.RUnlock()
	if l, ok := labels[locale][field]; ok {
		return l
	}
	return field
}

// JSONOptions controls parsing behavior; the zero value means no limit, unknown fields allowed
type JSONOptions struct {
	MaxBytes        int64
	DisallowUnknown bool
	AllowEmptyBody  bool
	Locale          string // message locale, english when empty
}

// DefaultJSONOptions is 1MB, strict fields and a required body
func DefaultJSONOptions() JSONOptions {
	return JSONOptions{
		MaxBytes:        1 << 20,
		DisallowUnknown: true,
		Locale:          LocaleEN,
	}
}

// ParseJSON decodes JSON into T, validates it, and maps failures to project errors
// decode problems carry ErrorCodeJSON, rule violations ErrorCodeValidation
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := DefaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Error().Err(err).Msg("failed to close request body")
		}
	}()

	var reader io.Reader = r.Body
	if !o.AllowEmptyBody {
		buf := make([]byte, 1)
		n, _ := r.Body.Read(buf)
		if n == 0 {
			return zero, perr.JSONErrf("empty body")
		}
		reader = io.MultiReader(bytes.NewReader(buf[:n]), r.Body)
	}
	if o.MaxBytes > 0 {
		reader = io.LimitReader(reader, o.MaxBytes)
	}

	dec := json.NewDecoder(reader)
	if o.DisallowUnknown {
		dec.DisallowUnknownFields()
	}

	var dst T
	if err := dec.Decode(&dst); err != nil {
		if o.AllowEmptyBody && errors.Is(err, io.EOF) {
			return dst, Validate(dst, o.Locale)
		}
		return zero, perr.JSONErrf("invalid JSON: %v", err)
	}
	if jsonMore(dec) {
		return zero, perr.JSONErrf("unexpected trailing data")
	}

	if err := Validate(dst, o.Locale); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct validation on v and returns a validation error with a translated message
// the offending json field is attached to the error
func Validate[T any](v T, locale string) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.JSONErrf("validation error")
	}
	field, msg := ValidationFieldAndMessage(err, locale)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// ValidationFieldAndMessage returns the first failing field and its translated message
func ValidationFieldAndMessage(err error, locale string) (field, message string) {
	if err == nil {
		return "", ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fe.Field(), fe.Translate(Get().Translator(locale))
	}
	return "", err.Error()
}

// registerShort overrides the message for tag in one translator
// locale decides which field labels are substituted for {0}
func registerShort(v *validator.Validate, trans ut.Translator, tag, text, locale string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, labelFor(locale, fe.Field()), fe.Param())
			return msg
		},
	)
}
