package controller

import (
	"encoding/base64"
	"log"
	"strings"

	"dazuai_backend/pkg/assistant"

	"github.com/gofiber/fiber/v2"
)

// Fallback messages shown when a Gemini call fails. The panel keeps working,
// the user simply retries.
const (
	chatFallback   = "I'm having trouble connecting. Please try again."
	promptFallback = "Sorry, something went wrong while generating your prompt. Please try again."
	imageFallback  = "Something went wrong while generating the image. Please try again."
)

type ChatInput struct {
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}

type AskInput struct {
	Question string `json:"question"`
}

type PromptInput struct {
	Idea string `json:"idea"`
}

type ImageInput struct {
	Prompt string `json:"prompt"`
}

func assistantUnavailable(c *fiber.Ctx) error {
	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"message": "AI assistant is not configured.",
	})
}

// AssistantChat handles POST /assistant/chat.
func AssistantChat(c *fiber.Ctx) error {
	if assistant.GlobalService == nil {
		return assistantUnavailable(c)
	}

	input := new(ChatInput)
	if err := c.BodyParser(input); err != nil || strings.TrimSpace(input.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A message is required.",
		})
	}

	sessionID, reply, err := assistant.GlobalService.Chat(c.Context(), input.SessionID, input.Message)
	if err != nil {
		log.Printf("Assistant chat error: %v", err)
		return c.JSON(fiber.Map{
			"session_id": sessionID,
			"reply":      chatFallback,
		})
	}

	return c.JSON(fiber.Map{
		"session_id": sessionID,
		"reply":      reply,
	})
}

// AssistantAsk handles POST /assistant/ask, the sessionless live Q&A panel.
func AssistantAsk(c *fiber.Ctx) error {
	if assistant.GlobalService == nil {
		return assistantUnavailable(c)
	}

	input := new(AskInput)
	if err := c.BodyParser(input); err != nil || strings.TrimSpace(input.Question) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A question is required.",
		})
	}

	answer, err := assistant.GlobalService.Ask(c.Context(), input.Question)
	if err != nil {
		log.Printf("Assistant ask error: %v", err)
		return c.JSON(fiber.Map{"answer": chatFallback})
	}

	return c.JSON(fiber.Map{"answer": answer})
}

// AssistantPrompt handles POST /assistant/prompt.
func AssistantPrompt(c *fiber.Ctx) error {
	if assistant.GlobalService == nil {
		return assistantUnavailable(c)
	}

	input := new(PromptInput)
	if err := c.BodyParser(input); err != nil || strings.TrimSpace(input.Idea) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "An idea is required.",
		})
	}

	prompt, err := assistant.GlobalService.GeneratePrompt(c.Context(), input.Idea)
	if err != nil {
		log.Printf("Assistant prompt error: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": promptFallback,
		})
	}

	return c.JSON(fiber.Map{"prompt": prompt})
}

// AssistantImage handles POST /assistant/image and returns the generated
// image inline as base64.
func AssistantImage(c *fiber.Ctx) error {
	if assistant.GlobalService == nil {
		return assistantUnavailable(c)
	}

	input := new(ImageInput)
	if err := c.BodyParser(input); err != nil || strings.TrimSpace(input.Prompt) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A prompt is required.",
		})
	}

	imageBytes, mimeType, err := assistant.GlobalService.GenerateImage(c.Context(), input.Prompt)
	if err != nil {
		log.Printf("Assistant image error: %v", err)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": imageFallback,
		})
	}

	return c.JSON(fiber.Map{
		"image":     base64.StdEncoding.EncodeToString(imageBytes),
		"mime_type": mimeType,
	})
}
