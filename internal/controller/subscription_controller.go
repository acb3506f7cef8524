package controller

import (
	"log"
	"regexp"

	"dazuai_backend/internal/model"
	"dazuai_backend/pkg/database"

	"github.com/gofiber/fiber/v2"
)

type SubscriptionInput struct {
	Email string `json:"email"`
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// CreateSubscription handles POST /subscribe.
func CreateSubscription(c *fiber.Ctx) error {
	input := new(SubscriptionInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid email is required.",
		})
	}

	if input.Email == "" || !emailPattern.MatchString(input.Email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid email is required.",
		})
	}

	var existing model.Subscriber
	if err := database.GetDB().Where("email = ?", input.Email).
		First(&existing).Error; err == nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "This email is already subscribed.",
		})
	}

	subscriber := model.Subscriber{Email: input.Email}
	if err := database.GetDB().Create(&subscriber).Error; err != nil {
		log.Printf("Subscription error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred during subscription.",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subscription successful! Thank you.",
	})
}
