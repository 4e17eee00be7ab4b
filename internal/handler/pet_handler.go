package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"pawhaven/internal/domain"
	"pawhaven/internal/middleware"
	"pawhaven/internal/pkg/validation"
	"pawhaven/internal/service/pet"
)

type PetHandler struct {
	petService pet.Service
}

func NewPetHandler(petService pet.Service) *PetHandler {
	return &PetHandler{petService: petService}
}

func (h *PetHandler) Create(c *fiber.Ctx) error {
	var input domain.CreatePetInput
	if err := c.BodyParser(&input); err != nil {
		return middleware.BadRequest("Invalid request body")
	}
	if err := validation.Struct(input); err != nil {
		return err
	}

	created, err := h.petService.Create(c.Context(), input)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *PetHandler) List(c *fiber.Ctx) error {
	var filter domain.PetFilter
	if err := c.QueryParser(&filter); err != nil {
		return middleware.BadRequest("Invalid query parameters")
	}

	pets, err := h.petService.List(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(pets)
}

func (h *PetHandler) Get(c *fiber.Ctx) error {
	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid pet ID")
	}

	found, err := h.petService.GetByID(c.Context(), petID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(found)
}

func (h *PetHandler) Delete(c *fiber.Ctx) error {
	petID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return middleware.BadRequest("Invalid pet ID")
	}

	if err := h.petService.Delete(c.Context(), petID); err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Pet deleted"})
}
