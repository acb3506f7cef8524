package controller

import (
	"log"
	"strings"

	"dazuai_backend/internal/model"
	"dazuai_backend/pkg/database"
	"dazuai_backend/pkg/notify"

	"github.com/gofiber/fiber/v2"
)

type RegistrationInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	County string `json:"county"`
	Course string `json:"course"`
	Level  string `json:"level"`
	Goals  string `json:"goals"`
}

// CreateRegistration handles POST /register. The insert commits before the
// notification fan-out runs, so sink failures cannot change the response.
func CreateRegistration(c *fiber.Ctx) error {
	input := new(RegistrationInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input",
		})
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.TrimSpace(input.Email)
	input.Phone = strings.TrimSpace(input.Phone)
	input.County = strings.TrimSpace(input.County)
	input.Course = strings.TrimSpace(input.Course)
	input.Level = strings.TrimSpace(input.Level)
	input.Goals = strings.TrimSpace(input.Goals)

	if input.Name == "" || input.Email == "" || input.Phone == "" ||
		input.County == "" || input.Course == "" || input.Level == "" || input.Goals == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "All fields are required",
		})
	}

	registration := model.Registration{
		Name:   input.Name,
		Email:  input.Email,
		Phone:  input.Phone,
		County: input.County,
		Course: input.Course,
		Level:  input.Level,
		Goals:  input.Goals,
	}

	if err := database.GetDB().Create(&registration).Error; err != nil {
		log.Printf("Registration error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "An error occurred during registration.",
		})
	}

	if notify.GlobalSink != nil {
		notify.GlobalSink.Dispatch(c.Context(), registration)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Registration successful!",
		"id":      registration.ID,
	})
}
