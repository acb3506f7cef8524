package enroll

import (
	"context"
	"strings"
	"testing"

	"dazuai_backend/pkg/client"
)

type fakeRegistrar struct {
	calls int
	id    uint
	err   error
}

func (f *fakeRegistrar) Register(ctx context.Context, reg client.RegistrationRequest) (uint, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.id, nil
}

func TestFlowSubmit(t *testing.T) {
	t.Run("valid form reaches success with the catalog price", func(t *testing.T) {
		api := &fakeRegistrar{id: 7}
		flow := NewFlow(api)
		flow.SetForm(validForm())

		flow.Submit(context.Background())

		if flow.Step() != StepSuccess {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepSuccess, flow.Step())
		}
		if flow.RegistrationID() != 7 {
			t.Fatalf("\nwanted:\nregistration id 7\ngot:\n%d", flow.RegistrationID())
		}
		if got := flow.PriceDisplay(); got != "KES 10,000" {
			t.Fatalf("\nwanted:\nKES 10,000\ngot:\n%q", got)
		}
	})

	t.Run("validation failure blocks the network call", func(t *testing.T) {
		api := &fakeRegistrar{}
		flow := NewFlow(api)
		form := validForm()
		form.Phone = "12345"
		flow.SetForm(form)

		flow.Submit(context.Background())

		if flow.Step() != StepForm {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepForm, flow.Step())
		}
		if api.calls != 0 {
			t.Fatalf("\nwanted:\nno network call\ngot:\n%d calls", api.calls)
		}
		if _, ok := flow.FieldErrors()["phone"]; !ok {
			t.Fatalf("\nwanted:\nphone error\ngot:\n%v", flow.FieldErrors())
		}
	})

	t.Run("server error surfaces its message", func(t *testing.T) {
		api := &fakeRegistrar{err: &client.APIError{StatusCode: 400, Message: "All fields are required"}}
		flow := NewFlow(api)
		flow.SetForm(validForm())

		flow.Submit(context.Background())

		if flow.Step() != StepError {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepError, flow.Step())
		}
		if flow.ServerMessage() != "All fields are required" {
			t.Fatalf("\nwanted:\nserver message surfaced\ngot:\n%q", flow.ServerMessage())
		}
	})

	t.Run("network failure falls back to the generic message", func(t *testing.T) {
		api := &fakeRegistrar{err: context.DeadlineExceeded}
		flow := NewFlow(api)
		flow.SetForm(validForm())

		flow.Submit(context.Background())

		if flow.Step() != StepError {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepError, flow.Step())
		}
		if flow.ServerMessage() != "An unknown error occurred." {
			t.Fatalf("\nwanted:\ngeneric fallback\ngot:\n%q", flow.ServerMessage())
		}
	})

	t.Run("retry returns to an editable form", func(t *testing.T) {
		api := &fakeRegistrar{err: &client.APIError{StatusCode: 500, Message: "An error occurred during registration."}}
		flow := NewFlow(api)
		flow.SetForm(validForm())
		flow.Submit(context.Background())

		flow.Retry()

		if flow.Step() != StepForm {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepForm, flow.Step())
		}
		if flow.ServerMessage() != "" {
			t.Fatalf("\nwanted:\ncleared server message\ngot:\n%q", flow.ServerMessage())
		}
		if flow.Form().Name == "" {
			t.Fatalf("\nwanted:\nform fields preserved for retry\ngot:\nempty name")
		}
	})
}

func TestFlowPayment(t *testing.T) {
	t.Run("payment step references phone and price", func(t *testing.T) {
		api := &fakeRegistrar{id: 1}
		flow := NewFlow(api, WithPaymentDelay(0))
		flow.SetForm(validForm())
		flow.Submit(context.Background())

		flow.ProceedToPayment(context.Background())

		if flow.Step() != StepPayment {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepPayment, flow.Step())
		}
		msg := flow.PaymentMessage()
		if !strings.Contains(msg, "KES 10,000") || !strings.Contains(msg, "0712345678") {
			t.Fatalf("\nwanted:\nmessage with price and phone\ngot:\n%q", msg)
		}
	})

	t.Run("payment is unreachable from the form", func(t *testing.T) {
		flow := NewFlow(&fakeRegistrar{}, WithPaymentDelay(0))
		flow.ProceedToPayment(context.Background())
		if flow.Step() != StepForm {
			t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepForm, flow.Step())
		}
	})
}

func TestFlowReset(t *testing.T) {
	api := &fakeRegistrar{id: 3}
	flow := NewFlow(api, WithPaymentDelay(0))
	flow.SetForm(validForm())
	flow.Submit(context.Background())
	flow.ProceedToPayment(context.Background())

	flow.Reset()

	if flow.Step() != StepForm {
		t.Fatalf("\nwanted:\n%v\ngot:\n%v", StepForm, flow.Step())
	}
	if flow.Form() != (Form{}) {
		t.Fatalf("\nwanted:\nempty form\ngot:\n%+v", flow.Form())
	}
	if flow.RegistrationID() != 0 || flow.PaymentMessage() != "" {
		t.Fatalf("\nwanted:\ncleared state\ngot:\nid=%d msg=%q", flow.RegistrationID(), flow.PaymentMessage())
	}
}
