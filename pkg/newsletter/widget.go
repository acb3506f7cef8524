// Package newsletter models the subscribe widget used by the footer and the
// dedicated newsletter page: one request/response cycle per explicit submit.
package newsletter

import (
	"context"
	"regexp"
	"strings"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	}
	return "unknown"
}

// Subscriber is the slice of the API client the widget needs.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) (string, error)
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

type Widget struct {
	api Subscriber

	state   State
	email   string
	message string
}

func NewWidget(api Subscriber) *Widget {
	return &Widget{api: api, state: StateIdle}
}

func (w *Widget) State() State    { return w.state }
func (w *Widget) Email() string   { return w.email }
func (w *Widget) Message() string { return w.message }

func (w *Widget) SetEmail(email string) {
	w.email = email
}

// Submit runs one subscribe cycle. The email is checked locally first, a bad
// address never reaches the network. On success the input clears and the
// message replaces the form, on error the form stays editable for a new
// explicit submission. There is no retry backoff.
func (w *Widget) Submit(ctx context.Context) {
	if w.state == StateLoading || w.state == StateSuccess {
		return
	}

	email := strings.TrimSpace(w.email)
	if email == "" {
		w.state = StateError
		w.message = "Please enter an email address."
		return
	}
	if !emailPattern.MatchString(email) {
		w.state = StateError
		w.message = "Please enter a valid email address."
		return
	}

	w.state = StateLoading
	w.message = ""

	message, err := w.api.Subscribe(ctx, email)
	if err != nil {
		w.state = StateError
		if errMsg := err.Error(); errMsg != "" {
			w.message = errMsg
		} else {
			w.message = "Could not subscribe. Please try again."
		}
		return
	}

	w.state = StateSuccess
	w.message = message
	w.email = ""
}
