package controller

import (
	"dazuai_backend/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

// ListCourses returns the fixed course catalog.
func ListCourses(c *fiber.Ctx) error {
	return c.JSON(catalog.Courses)
}
