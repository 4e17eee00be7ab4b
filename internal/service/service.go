package service

import (
	"github.com/redis/go-redis/v9"

	"pawhaven/internal/config"
	"pawhaven/internal/realtime"
	"pawhaven/internal/repository"
	"pawhaven/internal/service/adoption"
	"pawhaven/internal/service/email"
	"pawhaven/internal/service/notification"
	"pawhaven/internal/service/pet"
)

type Services struct {
	Pet          pet.Service
	Adoption     adoption.Service
	Notification notification.Service
	Email        email.Service
}

func NewServices(repos *repository.Repositories, redisClient *redis.Client, hub *realtime.Hub, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	petService := pet.NewService(repos.Pet, redisClient, cfg.PetCacheTTL)
	notificationService := notification.NewService(repos.Notification, hub)
	adoptionService := adoption.NewService(repos.Adoption, repos.Pet, notificationService, emailService)

	return &Services{
		Pet:          petService,
		Adoption:     adoptionService,
		Notification: notificationService,
		Email:        emailService,
	}
}
