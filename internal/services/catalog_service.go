package services

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"press_manager/internal/assets"
	"press_manager/internal/models"
	"press_manager/internal/pricing"
	"press_manager/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrServiceNameRequired = errors.New("service name is required")
	ErrInvalidPrice        = errors.New("price must be a decimal with at most 2 fraction digits")
	ErrUnknownPricingMode  = errors.New("unknown pricing mode")
	ErrServiceNotFound     = errors.New("service not found")
)

type CatalogService interface {
	Add(ctx context.Context, name, price string, mode models.PricingMode, image io.Reader) (*models.Service, error)
	Update(ctx context.Context, id, name, price string, mode models.PricingMode, newImage io.Reader) (*models.Service, error)
	Remove(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.Service, error)
}

type catalogService struct {
	serviceRepo repository.ServiceRepository
	assetStore  assets.Store
	publisher   SnapshotPublisher
}

func NewCatalogService(serviceRepo repository.ServiceRepository, assetStore assets.Store, publisher SnapshotPublisher) CatalogService {
	return &catalogService{serviceRepo: serviceRepo, assetStore: assetStore, publisher: publisher}
}

func validateServiceInput(name, price string, mode models.PricingMode) error {
	if name == "" {
		return ErrServiceNameRequired
	}
	if !pricing.IsDecimal(price) {
		return ErrInvalidPrice
	}
	if !mode.Valid() {
		return ErrUnknownPricingMode
	}
	return nil
}

func (s *catalogService) Add(ctx context.Context, name, price string, mode models.PricingMode, image io.Reader) (*models.Service, error) {
	if err := validateServiceInput(name, price, mode); err != nil {
		return nil, err
	}

	service := &models.Service{
		ID:          uuid.NewString(),
		Name:        name,
		Price:       price,
		PricingMode: mode,
	}

	// Upload happens before the catalog write: a failed upload aborts the
	// add and leaves no entry with a dangling image reference.
	if image != nil {
		url, err := s.assetStore.Upload(ctx, "services/"+service.ID, image)
		if err != nil {
			slog.Error("Failed to upload service image", "error", err, "serviceID", service.ID)
			return nil, err
		}
		service.ImageURL = url
	}

	if err := s.serviceRepo.Create(service); err != nil {
		slog.Error("Failed to create service", "error", err, "serviceID", service.ID)
		return nil, err
	}

	s.publish(ctx)
	return service, nil
}

func (s *catalogService) Update(ctx context.Context, id, name, price string, mode models.PricingMode, newImage io.Reader) (*models.Service, error) {
	if err := validateServiceInput(name, price, mode); err != nil {
		return nil, err
	}

	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, ErrServiceNotFound
	}

	service.Name = name
	service.Price = price
	service.PricingMode = mode

	// Re-upload only when a new image was explicitly picked; otherwise
	// the stored URL is preserved.
	if newImage != nil {
		url, err := s.assetStore.Upload(ctx, "services/"+id, newImage)
		if err != nil {
			slog.Error("Failed to upload service image", "error", err, "serviceID", id)
			return nil, err
		}
		service.ImageURL = url
	}

	if err := s.serviceRepo.Update(service); err != nil {
		slog.Error("Failed to update service", "error", err, "serviceID", id)
		return nil, err
	}

	s.publish(ctx)
	return service, nil
}

func (s *catalogService) Remove(ctx context.Context, id string) error {
	service, err := s.serviceRepo.GetByID(id)
	if err != nil {
		return err
	}
	if service == nil {
		return ErrServiceNotFound
	}

	// Best-effort asset cleanup: a failed delete is logged, never
	// surfaced, and does not block entry removal.
	if service.ImageURL != "" {
		if err := s.assetStore.Delete(ctx, "services/"+id); err != nil {
			slog.Error("Failed to delete service image", "error", err, "serviceID", id)
		}
	}

	if err := s.serviceRepo.Delete(id); err != nil {
		slog.Error("Failed to delete service", "error", err, "serviceID", id)
		return err
	}

	s.publish(ctx)
	return nil
}

func (s *catalogService) List(ctx context.Context) ([]models.Service, error) {
	return s.serviceRepo.GetAll()
}

func (s *catalogService) publish(ctx context.Context) {
	services, err := s.serviceRepo.GetAll()
	if err != nil {
		slog.Error("Failed to load services for snapshot", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, "services", services); err != nil {
		slog.Error("Failed to publish services snapshot", "error", err)
	}
}
