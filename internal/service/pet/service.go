package pet

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"pawhaven/internal/domain"
	"pawhaven/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreatePetInput) (*domain.Pet, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error)
	List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	petRepo  repository.PetRepository
	redis    *redis.Client
	cacheTTL time.Duration
}

func NewService(petRepo repository.PetRepository, redisClient *redis.Client, cacheTTL time.Duration) Service {
	return &service{
		petRepo:  petRepo,
		redis:    redisClient,
		cacheTTL: cacheTTL,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreatePetInput) (*domain.Pet, error) {
	petType := domain.PetType(input.Type)
	if !petType.Valid() {
		return nil, domain.NewValidationError("pet type must be Cat, Dog or Bird")
	}
	petSex := domain.PetSex(input.Sex)
	if !petSex.Valid() {
		return nil, domain.NewValidationError("pet sex must be Male or Female")
	}

	pet := &domain.Pet{
		ID:               uuid.New(),
		Name:             input.Name,
		Type:             petType,
		Age:              input.Age,
		Sex:              petSex,
		Breed:            input.Breed,
		Location:         input.Location,
		ImageURL:         input.ImageURL,
		OwnerPhoneNumber: input.OwnerPhoneNumber,
		Description:      input.Description,
	}

	if err := s.petRepo.Create(ctx, pet); err != nil {
		return nil, err
	}

	s.invalidateListCache(ctx)

	return pet, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Pet, error) {
	return s.petRepo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter domain.PetFilter) ([]domain.Pet, error) {
	cacheKey := listCacheKey(filter)

	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var pets []domain.Pet
			if err := json.Unmarshal([]byte(cached), &pets); err == nil {
				return pets, nil
			}
		}
	}

	pets, err := s.petRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(pets); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, s.cacheTTL).Err()
		}
	}

	return pets, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.petRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateListCache(ctx)
	return nil
}

func (s *service) invalidateListCache(ctx context.Context) {
	if s.redis == nil {
		return
	}
	keys, _ := s.redis.Keys(ctx, "pets:list:*").Result()
	if len(keys) > 0 {
		_ = s.redis.Del(ctx, keys...).Err()
	}
}

func listCacheKey(filter domain.PetFilter) string {
	minAge, maxAge := -1, -1
	if filter.MinAge != nil {
		minAge = *filter.MinAge
	}
	if filter.MaxAge != nil {
		maxAge = *filter.MaxAge
	}
	return fmt.Sprintf("pets:list:%s:%s:%d:%d:%s", filter.Type, filter.Sex, minAge, maxAge, filter.Search)
}
