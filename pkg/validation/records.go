package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// RecordIssue describes why a single record was rejected.
type RecordIssue struct {
	Index   int    `json:"index"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (i RecordIssue) String() string {
	if i.Field == "" {
		return fmt.Sprintf("record %d: %s", i.Index, i.Message)
	}
	return fmt.Sprintf("record %d: %s: %s", i.Index, i.Field, i.Message)
}

// Validator checks portfolio records against their `validate` struct tags.
// Field names in issues use the JSON names of the data files.
type Validator struct {
	validate *validator.Validate
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// New constructs a Validator.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Default returns a shared Validator. validator.Validate caches struct
// metadata and is safe for concurrent use.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New()
	})
	return defaultValidator
}

// Record validates one record and returns its issues tagged with index.
func (v *Validator) Record(index int, record any) []RecordIssue {
	if v == nil || v.validate == nil {
		return nil
	}
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []RecordIssue{{Index: index, Message: err.Error()}}
	}

	issues := make([]RecordIssue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, RecordIssue{
			Index:   index,
			Field:   fieldPath(fe.Namespace()),
			Message: messageFor(fe),
		})
	}
	return issues
}

// Filter returns the records that pass validation, in their original order,
// together with the issues of the rejected ones.
func Filter[T any](v *Validator, records []T) ([]T, []RecordIssue) {
	if len(records) == 0 {
		return nil, nil
	}
	valid := make([]T, 0, len(records))
	var issues []RecordIssue
	for idx, record := range records {
		if recordIssues := v.Record(idx, record); len(recordIssues) > 0 {
			issues = append(issues, recordIssues...)
			continue
		}
		valid = append(valid, record)
	}
	return valid, issues
}

// fieldPath drops the struct type prefix, "ExperienceItem.techStack[1]"
// becomes "techStack[1]".
func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return namespace
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "url":
		return "must be an absolute URL"
	case "email":
		return "must be an email address"
	case "min":
		return "must have at least " + fe.Param() + " entries"
	default:
		if fe.Param() != "" {
			return fmt.Sprintf("failed %s=%s", fe.Tag(), fe.Param())
		}
		return "failed " + fe.Tag()
	}
}
