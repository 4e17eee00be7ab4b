package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pawhaven/internal/domain"
	"pawhaven/internal/middleware"
	"pawhaven/internal/pkg/validation"
	"pawhaven/internal/service/adoption"
)

type AdoptionHandler struct {
	adoptionService adoption.Service
}

func NewAdoptionHandler(adoptionService adoption.Service) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

func (h *AdoptionHandler) Create(c *fiber.Ctx) error {
	var input domain.CreateAdoptionRequestInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return err
	}

	req, err := h.adoptionService.Submit(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

func (h *AdoptionHandler) ListAdmin(c *fiber.Ctx) error {
	requests, err := h.adoptionService.ListAll(c.Context())
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *AdoptionHandler) UpdateStatus(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	var input domain.DecideAdoptionInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}

	req, err := h.adoptionService.Decide(c.Context(), requestID, input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Adoption " + string(req.Status),
		"request": req,
	})
}

func (h *AdoptionHandler) ListByPet(c *fiber.Ctx) error {
	petID, err := uuid.Parse(c.Params("petId"))
	if err != nil {
		return middleware.BadRequest("Invalid pet ID")
	}

	requests, err := h.adoptionService.ListByPet(c.Context(), petID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(requests)
}

func (h *AdoptionHandler) Delete(c *fiber.Ctx) error {
	requestID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid request ID")
	}

	if err := h.adoptionService.Delete(c.Context(), requestID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Request deleted"})
}
