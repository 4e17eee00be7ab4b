package adoption

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"pawhaven/internal/domain"
	"pawhaven/internal/repository"
	"pawhaven/internal/service/email"
	"pawhaven/internal/service/notification"
)

type Service interface {
	Submit(ctx context.Context, input domain.CreateAdoptionRequestInput) (*domain.AdoptionRequest, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AdoptionRequest, error)
	// ListAll returns every request newest first with the pet record
	// attached where it still exists.
	ListAll(ctx context.Context) ([]domain.AdoptionRequest, error)
	ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.AdoptionRequest, error)
	// Decide moves a pending request to approved or rejected and creates
	// the coupled global notification.
	Decide(ctx context.Context, id uuid.UUID, input domain.DecideAdoptionInput) (*domain.AdoptionRequest, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	adoptionRepo repository.AdoptionRepository
	petRepo      repository.PetRepository
	notifSvc     notification.Service
	emailSvc     email.Service
}

func NewService(
	adoptionRepo repository.AdoptionRepository,
	petRepo repository.PetRepository,
	notifSvc notification.Service,
	emailSvc email.Service,
) Service {
	return &service{
		adoptionRepo: adoptionRepo,
		petRepo:      petRepo,
		notifSvc:     notifSvc,
		emailSvc:     emailSvc,
	}
}

func (s *service) Submit(ctx context.Context, input domain.CreateAdoptionRequestInput) (*domain.AdoptionRequest, error) {
	pet, err := s.petRepo.GetByID(ctx, input.PetID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now()
	}

	req := &domain.AdoptionRequest{
		ID:                uuid.New(),
		PetID:             pet.ID,
		PetName:           pet.Name,
		PetType:           pet.Type,
		FullName:          input.FullName,
		CitizenshipNumber: input.CitizenshipNumber,
		PhoneNumber:       input.PhoneNumber,
		Email:             input.Email,
		HomeAddress:       input.HomeAddress,
		Reason:            input.Reason,
		Date:              date,
		Status:            domain.AdoptionPending,
	}

	if err := s.adoptionRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.AdoptionRequest, error) {
	return s.adoptionRepo.GetByID(ctx, id)
}

func (s *service) ListAll(ctx context.Context) ([]domain.AdoptionRequest, error) {
	requests, err := s.adoptionRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range requests {
		if pet, err := s.petRepo.GetByID(ctx, requests[i].PetID); err == nil {
			requests[i].Pet = pet
		}
	}
	return requests, nil
}

func (s *service) ListByPet(ctx context.Context, petID uuid.UUID) ([]domain.AdoptionRequest, error) {
	return s.adoptionRepo.ListByPet(ctx, petID)
}

func (s *service) Decide(ctx context.Context, id uuid.UUID, input domain.DecideAdoptionInput) (*domain.AdoptionRequest, error) {
	status := domain.AdoptionStatus(input.Status)
	if !status.Terminal() {
		return nil, domain.NewValidationError("status must be approved or rejected")
	}

	req, err := s.adoptionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	adminMessage := strings.TrimSpace(input.AdminMessage)

	decided, err := s.adoptionRepo.UpdateDecision(ctx, id, status, adminMessage)
	if err != nil {
		return nil, err
	}
	if !decided {
		return nil, fmt.Errorf("adoption request already %s: %w", req.Status, domain.ErrConflict)
	}
	req.Status = status
	req.AdminMessage = adminMessage

	// The decision is committed at this point. The notification is
	// best-effort and its failure must not undo or fail the transition.
	petName := s.resolvePetName(ctx, req)
	if _, err := s.notifSvc.Create(ctx, domain.CreateNotificationInput{
		Title:   decisionTitle(status),
		Message: decisionMessage(status, petName, adminMessage),
		Type:    string(domain.NotifAdoption),
	}); err != nil {
		log.Printf("adoption: decision notification for request %s: %v", id, err)
	}

	if s.emailSvc != nil && req.Email != "" {
		go func(req domain.AdoptionRequest, petName string) {
			ctx := context.Background()
			if err := s.emailSvc.SendAdoptionDecisionEmail(ctx, req.Email, req.FullName, petName, req.Status, req.AdminMessage); err != nil {
				log.Printf("adoption: decision email for request %s: %v", req.ID, err)
			}
		}(*req, petName)
	}

	return req, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.adoptionRepo.Delete(ctx, id)
}

// resolvePetName prefers the denormalized snapshot, then the live pet
// record. A missing name never blocks a decision.
func (s *service) resolvePetName(ctx context.Context, req *domain.AdoptionRequest) string {
	if req.PetName != "" {
		return req.PetName
	}
	if pet, err := s.petRepo.GetByID(ctx, req.PetID); err == nil && pet.Name != "" {
		return pet.Name
	}
	return "A pet"
}

func decisionTitle(status domain.AdoptionStatus) string {
	return "Adoption Request " + strings.ToUpper(string(status))
}

func decisionMessage(status domain.AdoptionStatus, petName, adminMessage string) string {
	if status == domain.AdoptionApproved {
		return petName + " has been adopted."
	}
	msg := petName + "'s adoption was rejected."
	if adminMessage != "" {
		msg += " Reason: " + adminMessage
	}
	return msg
}
