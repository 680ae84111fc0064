package components

import (
	"errors"
	"fmt"

	"github.com/kerbaras/library/pkg/app/styles"
	"github.com/kerbaras/library/pkg/locale"
	"github.com/kerbaras/library/pkg/services"
)

// ErrorMessage turns a validation or catalog error into the user-facing
// text. Unknown errors are shown as they are.
func ErrorMessage(msgs locale.Messages, err error) string {
	switch {
	case errors.Is(err, services.ErrEmptyTitle):
		return msgs.EmptyTitle
	case errors.Is(err, services.ErrEmptyAuthor):
		return msgs.EmptyAuthor
	case errors.Is(err, services.ErrInvalidYear):
		return msgs.InvalidYear
	case errors.Is(err, services.ErrYearOutOfRange):
		return msgs.YearOutOfRange
	case errors.Is(err, services.ErrDuplicateTitle):
		return msgs.DuplicateTitle
	case errors.Is(err, services.ErrNotFound):
		return msgs.NotFound
	case errors.Is(err, services.ErrNotAvailable):
		return msgs.NotAvailable
	case errors.Is(err, services.ErrNotOnLoan):
		return msgs.NotOnLoan
	default:
		return err.Error()
	}
}

// Feedback is the one-line result of the last action.
type Feedback struct {
	text  string
	isErr bool
}

func (f *Feedback) Success(format string, args ...any) {
	f.text = fmt.Sprintf(format, args...)
	f.isErr = false
}

func (f *Feedback) Info(text string) {
	f.text = text
	f.isErr = false
}

func (f *Feedback) Error(msgs locale.Messages, err error) {
	f.text = msgs.ErrorPrefix + ErrorMessage(msgs, err)
	f.isErr = true
}

func (f *Feedback) Clear() {
	f.text = ""
	f.isErr = false
}

func (f *Feedback) IsError() bool {
	return f.isErr
}

func (f *Feedback) Text() string {
	return f.text
}

func (f *Feedback) View() string {
	if f.text == "" {
		return ""
	}
	if f.isErr {
		return styles.ErrorStyle.Render(f.text)
	}
	return styles.SuccessStyle.Render(f.text)
}
