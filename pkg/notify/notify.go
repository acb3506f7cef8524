// Package notify fans a successful registration out to the spreadsheet and
// the admin mailbox. Both channels are best effort: delivery is at most once,
// there is no retry, and no failure ever reaches the registration response.
package notify

import (
	"context"
	"log"
	"time"

	"dazuai_backend/internal/model"
)

type RowAppender interface {
	AppendRegistration(ctx context.Context, createdAt time.Time,
		name, email, phone, county, course, level, goals string) error
}

type Mailer interface {
	SendRegistrationNotification(name, email, phone, county, course, level, goals string) error
}

type Sink struct {
	Sheets RowAppender // nil when sheets env vars are not set
	Mail   Mailer      // nil when the mail API key is not set
}

var GlobalSink *Sink

func InitSink(sheets RowAppender, mail Mailer) {
	GlobalSink = &Sink{Sheets: sheets, Mail: mail}
}

// Dispatch runs the spreadsheet append first, then the email. The two
// channels are independent, a failure of one does not stop the other.
func (s *Sink) Dispatch(ctx context.Context, reg model.Registration) {
	if s.Sheets != nil {
		err := s.Sheets.AppendRegistration(ctx, reg.CreatedAt,
			reg.Name, reg.Email, reg.Phone, reg.County, reg.Course, reg.Level, reg.Goals)
		if err != nil {
			log.Printf("Error appending registration to Google Sheet: %v", err)
		} else {
			log.Printf("Appended registration %d to Google Sheet", reg.ID)
		}
	} else {
		log.Printf("Google Sheets is not configured, skipping sheet append for registration %d", reg.ID)
	}

	if s.Mail != nil {
		err := s.Mail.SendRegistrationNotification(
			reg.Name, reg.Email, reg.Phone, reg.County, reg.Course, reg.Level, reg.Goals)
		if err != nil {
			log.Printf("Could not send registration notification email: %v", err)
		}
	}
}
