// Package enroll models the registration panel as a closed state machine:
// the form is validated locally, submitted through the API client, and a
// successful registration leads to a simulated M-PESA payment step. No real
// payment integration exists, the delay only imitates an STK push.
package enroll

import (
	"context"
	"fmt"
	"time"

	"dazuai_backend/pkg/catalog"
	"dazuai_backend/pkg/client"
)

type Step int

const (
	StepForm Step = iota
	StepSubmitting
	StepSuccess
	StepPayment
	StepError
)

func (s Step) String() string {
	switch s {
	case StepForm:
		return "form"
	case StepSubmitting:
		return "submitting"
	case StepSuccess:
		return "success"
	case StepPayment:
		return "payment"
	case StepError:
		return "error"
	}
	return "unknown"
}

type Form struct {
	Name   string
	Email  string
	Phone  string
	County string
	Course string
	Level  string
	Goals  string
}

// Registrar is the slice of the API client the flow needs.
type Registrar interface {
	Register(ctx context.Context, reg client.RegistrationRequest) (uint, error)
}

const defaultPaymentDelay = 2 * time.Second

type Flow struct {
	registrar    Registrar
	paymentDelay time.Duration

	step           Step
	form           Form
	fieldErrors    map[string]string
	serverMessage  string
	registrationID uint
	paymentMessage string
}

type Option func(*Flow)

// WithPaymentDelay overrides the simulated STK push duration.
func WithPaymentDelay(d time.Duration) Option {
	return func(f *Flow) {
		f.paymentDelay = d
	}
}

func NewFlow(registrar Registrar, opts ...Option) *Flow {
	f := &Flow{
		registrar:    registrar,
		paymentDelay: defaultPaymentDelay,
		step:         StepForm,
		fieldErrors:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Flow) Step() Step             { return f.step }
func (f *Flow) Form() Form             { return f.form }
func (f *Flow) ServerMessage() string  { return f.serverMessage }
func (f *Flow) RegistrationID() uint   { return f.registrationID }
func (f *Flow) PaymentMessage() string { return f.paymentMessage }

func (f *Flow) FieldErrors() map[string]string {
	errors := make(map[string]string, len(f.fieldErrors))
	for k, v := range f.fieldErrors {
		errors[k] = v
	}
	return errors
}

// SetField updates one form field and clears its pending validation error,
// matching the panel behavior of re-editing a flagged input.
func (f *Flow) SetField(name, value string) {
	switch name {
	case "name":
		f.form.Name = value
	case "email":
		f.form.Email = value
	case "phone":
		f.form.Phone = value
	case "county":
		f.form.County = value
	case "course":
		f.form.Course = value
	case "level":
		f.form.Level = value
	case "goals":
		f.form.Goals = value
	default:
		return
	}
	delete(f.fieldErrors, name)
}

func (f *Flow) SetForm(form Form) {
	f.form = form
	f.fieldErrors = make(map[string]string)
}

// CoursePrice resolves the selected course's price from the shared catalog.
// The success panel displays this value, never anything from the server.
func (f *Flow) CoursePrice() int {
	if course, ok := catalog.Find(f.form.Course); ok {
		return course.Price
	}
	return 0
}

func (f *Flow) PriceDisplay() string {
	return catalog.FormatKES(f.CoursePrice())
}

// Submit validates the form and, when clean, sends it to the registration
// service. Validation failures keep the flow on the form without any network
// call. The submit control is the sole concurrency guard, a second Submit
// while one is outstanding is a no-op.
func (f *Flow) Submit(ctx context.Context) {
	if f.step != StepForm {
		return
	}

	if errors := Validate(f.form); len(errors) > 0 {
		f.fieldErrors = errors
		return
	}

	f.step = StepSubmitting
	f.serverMessage = ""

	id, err := f.registrar.Register(ctx, client.RegistrationRequest{
		Name:   f.form.Name,
		Email:  f.form.Email,
		Phone:  f.form.Phone,
		County: f.form.County,
		Course: f.form.Course,
		Level:  f.form.Level,
		Goals:  f.form.Goals,
	})
	if err != nil {
		if apiErr, ok := err.(*client.APIError); ok && apiErr.Message != "" {
			f.serverMessage = apiErr.Message
		} else {
			f.serverMessage = "An unknown error occurred."
		}
		f.step = StepError
		return
	}

	f.registrationID = id
	f.step = StepSuccess
}

// ProceedToPayment runs the simulated STK push and presents the static
// confirmation message built from the phone number and the catalog price.
func (f *Flow) ProceedToPayment(ctx context.Context) {
	if f.step != StepSuccess {
		return
	}

	if f.paymentDelay > 0 {
		select {
		case <-time.After(f.paymentDelay):
		case <-ctx.Done():
			return
		}
	}

	f.paymentMessage = fmt.Sprintf(
		"An M-PESA payment request of %s has been sent to your phone number %s.",
		f.PriceDisplay(), f.form.Phone,
	)
	f.step = StepPayment
}

// Retry returns from the error step to an editable form, clearing the
// server message.
func (f *Flow) Retry() {
	if f.step != StepError {
		return
	}
	f.serverMessage = ""
	f.step = StepForm
}

// Reset restores the initial state, as when the panel is closed and its
// close transition completes.
func (f *Flow) Reset() {
	f.form = Form{}
	f.fieldErrors = make(map[string]string)
	f.serverMessage = ""
	f.registrationID = 0
	f.paymentMessage = ""
	f.step = StepForm
}
