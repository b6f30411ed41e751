package services

import (
	"context"
	"errors"
	"log/slog"

	"press_manager/internal/models"
	"press_manager/internal/pricing"
	"press_manager/internal/repository"
)

var ErrUnknownArchive = errors.New("unknown archive collection")

// ArchiveService is a read-only projection over the two terminal
// collections, which stay disjoint from the active set and each other.
type ArchiveService interface {
	Delivered(ctx context.Context) ([]OrderView, error)
	Deleted(ctx context.Context) ([]OrderView, error)
	Purge(ctx context.Context, collection, id string) error
}

type archiveService struct {
	orderRepo   repository.OrderRepository
	serviceRepo repository.ServiceRepository
}

func NewArchiveService(orderRepo repository.OrderRepository, serviceRepo repository.ServiceRepository) ArchiveService {
	return &archiveService{orderRepo: orderRepo, serviceRepo: serviceRepo}
}

func (s *archiveService) Delivered(ctx context.Context) ([]OrderView, error) {
	return s.views(models.CollectionDelivered)
}

func (s *archiveService) Deleted(ctx context.Context) ([]OrderView, error) {
	return s.views(models.CollectionDeleted)
}

// Purge is the permanent-delete placeholder carried over as-is: the
// action exists, the actual removal does not.
// TODO: implement permanent purge once retention rules are decided.
func (s *archiveService) Purge(ctx context.Context, collection, id string) error {
	if collection != models.CollectionDelivered && collection != models.CollectionDeleted {
		return ErrUnknownArchive
	}
	slog.Warn("Permanent purge requested but not implemented", "collection", collection, "orderID", id)
	return nil
}

func (s *archiveService) views(collection string) ([]OrderView, error) {
	orders, err := s.orderRepo.GetByCollection(collection)
	if err != nil {
		return nil, err
	}
	services, err := s.serviceRepo.GetAll()
	if err != nil {
		return nil, err
	}
	return buildOrderViews(pricing.Catalog(services), orders), nil
}
