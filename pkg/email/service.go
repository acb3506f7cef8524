// pkg/email/service.go
package email

var GlobalEmailService *EmailService

func InitEmailService(apiKey, adminEmail string) error {
	service, err := NewEmailService(apiKey, adminEmail)
	if err != nil {
		return err
	}
	GlobalEmailService = service
	return nil
}
