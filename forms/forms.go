// Package forms decodes and validates submitted HTML forms. Every Parse function
// returns the typed form together with Errors; the form is usable only when the
// Errors are empty.
package forms

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"
)

// Errors maps a form field name to its validation messages.
type Errors map[string][]string

// Add appends a message for field.
func (e Errors) Add(field, message string) {
	e[field] = append(e[field], message)
}

// Has reports whether field has at least one message.
func (e Errors) Has(field string) bool {
	return len(e[field]) > 0
}

// Get returns the messages for field.
func (e Errors) Get(field string) []string {
	return e[field]
}

// Valid reports whether no errors were recorded.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Messages flattens the errors to "field: message" lines ordered by field name.
func (e Errors) Messages() []string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	var out []string
	for _, f := range fields {
		for _, msg := range e[f] {
			out = append(out, f+": "+msg)
		}
	}
	return out
}

var phonePattern = regexp.MustCompile(`^(\(\d{3}\)|\d{3})[-. ]?\d{3}[-. ]?\d{4}$`)

var (
	decoder  = newDecoder()
	validate = newValidator()
)

func newDecoder() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	d.ZeroEmpty(true)
	d.RegisterConverter(false, parseCheckbox)
	return d
}

// parseCheckbox accepts the values browsers and WTForms-style forms send for a checked box.
func parseCheckbox(s string) reflect.Value {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "on", "true", "1":
		return reflect.ValueOf(true)
	case "", "n", "no", "off", "false", "0":
		return reflect.ValueOf(false)
	}
	return reflect.Value{}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("schema"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "state", func(fl validator.FieldLevel) bool {
		return IsState(fl.Field().String())
	})
	mustRegister(v, "genre", func(fl validator.FieldLevel) bool {
		return IsGenre(fl.Field().String())
	})
	mustRegister(v, "phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	mustRegister(v, "starttime", func(fl validator.FieldLevel) bool {
		_, err := ParseStartTime(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("forms: register %s validation: %v", tag, err))
	}
}

// bind decodes values into dst, recording conversion failures per field.
func bind(dst any, values url.Values) Errors {
	errs := Errors{}
	if err := decoder.Decode(dst, values); err != nil {
		var multi schema.MultiError
		if errors.As(err, &multi) {
			for field, ferr := range multi {
				errs.Add(field, decodeMessage(ferr))
			}
		} else {
			errs.Add("form", "The form could not be read.")
		}
	}
	return errs
}

func decodeMessage(err error) string {
	var conv schema.ConversionError
	if errors.As(err, &conv) && conv.Type != nil {
		switch conv.Type.Kind() {
		case reflect.Int, reflect.Int64, reflect.Uint, reflect.Uint64:
			return "Not a valid integer value."
		case reflect.Bool:
			return "Not a valid choice."
		}
	}
	return "Invalid value."
}

// check runs struct validation and appends messages for fields that decoded cleanly.
func check(form any, errs Errors) {
	err := validate.Struct(form)
	if err == nil {
		return
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs.Add("form", "The form could not be validated.")
		return
	}
	decodeFailed := make(map[string]bool, len(errs))
	for f := range errs {
		decodeFailed[f] = true
	}
	for _, fe := range verrs {
		field := fieldName(fe)
		if decodeFailed[field] {
			continue
		}
		errs.Add(field, validationMessage(fe))
	}
}

// fieldName strips the slice index from names such as "genres[2]".
func fieldName(fe validator.FieldError) string {
	name := fe.Field()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	return name
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Field cannot be longer than %s characters.", fe.Param())
	case "state":
		return "Invalid value, must be one of the listed states."
	case "genre":
		return fmt.Sprintf("'%v' is not a valid choice.", fe.Value())
	case "http_url":
		return "Invalid URL."
	case "phone":
		return "Invalid phone number, use the format 123-456-7890."
	case "starttime":
		return "Not a valid datetime value, use the format 2006-01-02 15:04."
	}
	return fmt.Sprintf("Failed the '%s' check.", fe.Tag())
}

// cleanGenres trims, drops empties and removes duplicates while keeping order.
// It returns nil when nothing is left so that "required" rejects it.
func cleanGenres(genres []string) []string {
	seen := make(map[string]bool, len(genres))
	var out []string
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" || seen[g] {
			continue
		}
		seen[g] = true
		out = append(out, g)
	}
	return out
}
