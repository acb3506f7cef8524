package notify

import (
	"context"
	"fmt"
	"testing"
	"time"

	"dazuai_backend/internal/model"
)

type fakeAppender struct {
	calls int
	err   error
}

func (f *fakeAppender) AppendRegistration(ctx context.Context, createdAt time.Time,
	name, email, phone, county, course, level, goals string) error {
	f.calls++
	return f.err
}

type fakeMailer struct {
	calls int
	err   error
}

func (f *fakeMailer) SendRegistrationNotification(name, email, phone, county, course, level, goals string) error {
	f.calls++
	return f.err
}

func testRegistration() model.Registration {
	return model.Registration{
		ID:     1,
		Name:   "Wanjiku Kamau",
		Email:  "wanjiku@example.com",
		Phone:  "0712345678",
		County: "Nairobi",
		Course: "AI Masterclass (5 sessions)",
		Level:  "Beginner",
		Goals:  "Build my own AI projects",
	}
}

func TestSinkDispatch(t *testing.T) {
	t.Run("runs both channels", func(t *testing.T) {
		sheets := &fakeAppender{}
		mail := &fakeMailer{}
		sink := &Sink{Sheets: sheets, Mail: mail}

		sink.Dispatch(context.Background(), testRegistration())

		if sheets.calls != 1 || mail.calls != 1 {
			t.Fatalf("\nwanted:\n1 sheet call and 1 mail call\ngot:\n%d and %d", sheets.calls, mail.calls)
		}
	})

	t.Run("sheet failure does not stop the email", func(t *testing.T) {
		sheets := &fakeAppender{err: fmt.Errorf("append failed")}
		mail := &fakeMailer{}
		sink := &Sink{Sheets: sheets, Mail: mail}

		sink.Dispatch(context.Background(), testRegistration())

		if mail.calls != 1 {
			t.Fatalf("\nwanted:\nmail still sent\ngot:\n%d calls", mail.calls)
		}
	})

	t.Run("mail failure is swallowed", func(t *testing.T) {
		sink := &Sink{Mail: &fakeMailer{err: fmt.Errorf("send failed")}}
		// Dispatch has no error return, it must simply not panic.
		sink.Dispatch(context.Background(), testRegistration())
	})

	t.Run("unconfigured channels are skipped", func(t *testing.T) {
		sink := &Sink{}
		sink.Dispatch(context.Background(), testRegistration())
	})
}
