// Package validation implements schema-based validation for the
// add-transaction form.
//
// Each field carries an ordered rule list; only the first violated rule's
// message is surfaced per field. Errors are plain data, never Go errors:
// validation failure is the one user-facing error channel with actionable
// messages.
package validation

import (
	"regexp"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/yktomo/kakeibo/internal/model"
)

// Form field names, matching the add-transaction form.
const (
	FieldAmount   = "amount"
	FieldCategory = "categoryId"
	FieldDate     = "date"
	FieldMemo     = "memo"
)

// Form holds the raw string state of the add-transaction form.
type Form struct {
	Amount     string
	CategoryID string
	Date       string
	Memo       string
}

// Errors maps a field name to its current error message. An absent key
// means the field either passes or has not been validated yet; the form
// does not track touched-state separately.
type Errors map[string]string

// rule is a single check with its user-facing message.
type rule struct {
	check   func(string) bool
	message string
}

var digitsPattern = regexp.MustCompile(`^\d+$`)

// schema holds the ordered rule list per field.
var schema = map[string][]rule{
	FieldAmount: {
		{
			check:   func(v string) bool { return v != "" },
			message: "金額を入力してください",
		},
		{
			check: func(v string) bool {
				if !digitsPattern.MatchString(v) {
					return false
				}
				n, err := strconv.ParseInt(v, 10, 64)
				return err == nil && n > 0
			},
			message: "1円以上の数値を入力してください",
		},
		{
			check: func(v string) bool {
				n, err := strconv.ParseInt(v, 10, 64)
				return err == nil && n <= model.MaxAmount
			},
			message: "金額が上限を超えています（1,000万円以下）",
		},
	},
	FieldCategory: {
		{
			check:   func(v string) bool { return v != "" },
			message: "カテゴリを選択してください",
		},
	},
	FieldDate: {
		{
			check: func(v string) bool {
				_, err := time.Parse(model.DateLayout, v)
				return err == nil
			},
			message: "有効な日付を選択してください",
		},
	},
	FieldMemo: {
		{
			check:   func(v string) bool { return utf8.RuneCountInString(v) <= model.MaxMemoLength },
			message: "メモは200文字以内で入力してください",
		},
	},
}

// ValidateField checks a single field value and returns the first violated
// rule's message, or "" when the field passes.
func ValidateField(field, value string) string {
	for _, r := range schema[field] {
		if !r.check(value) {
			return r.message
		}
	}
	return ""
}

// Validate checks the whole form atomically and returns the complete error
// mapping. Fields that pass are absent from the result.
func Validate(form Form) Errors {
	errs := make(Errors)
	values := map[string]string{
		FieldAmount:   form.Amount,
		FieldCategory: form.CategoryID,
		FieldDate:     form.Date,
		FieldMemo:     form.Memo,
	}
	for field, value := range values {
		if msg := ValidateField(field, value); msg != "" {
			errs[field] = msg
		}
	}
	return errs
}

// Validator tracks per-field error state across a form's lifetime.
type Validator struct {
	errors Errors
}

// NewValidator creates a validator with no recorded errors.
func NewValidator() *Validator {
	return &Validator{errors: make(Errors)}
}

// ValidateField re-checks one field, updating only that field's entry.
// Called on every field change. Returns the field's message, or "".
func (v *Validator) ValidateField(field, value string) string {
	msg := ValidateField(field, value)
	if msg == "" {
		delete(v.errors, field)
	} else {
		v.errors[field] = msg
	}
	return msg
}

// Validate re-checks the whole form, replacing the entire error mapping.
// Errors for fields not present in the failure set are implicitly cleared.
// Called on submit. Returns true when the form passes.
func (v *Validator) Validate(form Form) bool {
	v.errors = Validate(form)
	return len(v.errors) == 0
}

// Errors returns the current field-error mapping.
func (v *Validator) Errors() Errors {
	return v.errors
}

// Error returns the current message for one field, or "".
func (v *Validator) Error(field string) string {
	return v.errors[field]
}
