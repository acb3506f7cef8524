// pkg/email/email.go
package email

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"time"
)

type EmailService struct {
	apiKey     string
	from       string
	adminEmail string
	templates  *template.Template
}

type EmailData struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Html    string `json:"html"`
}

// Template data structures
type RegistrationNotificationData struct {
	Name   string
	Email  string
	Phone  string
	County string
	Course string
	Level  string
	Goals  string
}

type DailyDigestData struct {
	Date              time.Time
	RegistrationCount int64
	SubscriberCount   int64
}

func NewEmailService(apiKey, adminEmail string) (*EmailService, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("resend API key is required")
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		apiKey:     apiKey,
		from:       "Dazu AI Hub <noreply@dazuaihub.com>",
		adminEmail: adminEmail,
		templates:  templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	emailData := EmailData{
		From:    s.from,
		To:      to,
		Subject: subject,
		Html:    body.String(),
	}

	jsonData, err := json.Marshal(emailData)
	if err != nil {
		return fmt.Errorf("error marshaling email data: %v", err)
	}

	req, err := http.NewRequest("POST", "https://api.resend.com/emails", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("error creating request: %v", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("error reading response body: %v", err)
	}

	log.Printf("Resend API response: Status: %d, Body: %s", resp.StatusCode, string(respBody))

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("resend API error: %s", string(respBody))
	}

	return nil
}

// SendRegistrationNotification mails the admin a summary of a new course
// registration so payment and onboarding can be followed up.
func (s *EmailService) SendRegistrationNotification(
	name, email, phone, county, course, level, goals string,
) error {
	data := RegistrationNotificationData{
		Name:   name,
		Email:  email,
		Phone:  phone,
		County: county,
		Course: course,
		Level:  level,
		Goals:  goals,
	}
	return s.sendTemplateEmail(s.adminEmail, "New Course Registration - Dazu AI Hub", "registration_notification.html", data)
}

func (s *EmailService) SendDailyDigest(date time.Time, registrationCount, subscriberCount int64) error {
	data := DailyDigestData{
		Date:              date,
		RegistrationCount: registrationCount,
		SubscriberCount:   subscriberCount,
	}
	subject := fmt.Sprintf("Daily Activity Digest - %s", date.Format("2 Jan 2006"))
	return s.sendTemplateEmail(s.adminEmail, subject, "daily_digest.html", data)
}
