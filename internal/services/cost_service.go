package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"press_manager/internal/models"
	"press_manager/internal/pricing"
	"press_manager/internal/repository"
	"press_manager/pkg/device"

	"github.com/google/uuid"
)

var (
	ErrCostNameRequired    = errors.New("cost name is required")
	ErrCostPriceRequired   = errors.New("cost price is required")
	ErrInvalidCostPrice    = errors.New("cost price must be a decimal with at most 2 fraction digits")
	ErrDisplayNameRequired = errors.New("display name is required for an unregistered device")
)

type CostService interface {
	Add(ctx context.Context, name, price, pushToken, displayName string) (*models.Cost, error)
	List(ctx context.Context) ([]models.Cost, error)
}

type costService struct {
	costRepo  repository.CostRepository
	adminRepo repository.AdminRepository
	publisher SnapshotPublisher
}

func NewCostService(costRepo repository.CostRepository, adminRepo repository.AdminRepository, publisher SnapshotPublisher) CostService {
	return &costService{costRepo: costRepo, adminRepo: adminRepo, publisher: publisher}
}

// Add appends a cost attributed to the staff member behind the device
// token. The first entry from an unregistered device must carry a display
// name, which is persisted for every later entry from that device.
func (s *costService) Add(ctx context.Context, name, price, pushToken, displayName string) (*models.Cost, error) {
	name = strings.TrimSpace(name)
	price = strings.TrimSpace(price)

	if name == "" {
		return nil, ErrCostNameRequired
	}
	if price == "" {
		return nil, ErrCostPriceRequired
	}
	if !pricing.IsDecimal(price) {
		return nil, ErrInvalidCostPrice
	}

	deviceID, err := device.ExtractID(pushToken)
	if err != nil {
		return nil, err
	}

	admin, err := s.adminRepo.GetByDeviceID(deviceID)
	if err != nil {
		return nil, err
	}

	user := ""
	if admin != nil {
		user = admin.Name
	} else {
		displayName = strings.TrimSpace(displayName)
		if displayName == "" {
			return nil, ErrDisplayNameRequired
		}
		registration := &models.Admin{
			DeviceID:  deviceID,
			Name:      displayName,
			FullToken: pushToken,
		}
		if err := s.adminRepo.Create(registration); err != nil {
			slog.Error("Failed to register admin", "error", err, "deviceID", deviceID)
			return nil, err
		}
		s.publishAdmins(ctx)
		user = displayName
	}

	cost := &models.Cost{
		ID:    uuid.NewString(),
		Name:  name,
		Price: price,
		Date:  time.Now().UTC().Format("02/01/2006"),
		User:  user,
	}

	if err := s.costRepo.Create(cost); err != nil {
		slog.Error("Failed to record cost", "error", err)
		return nil, err
	}

	s.publishCosts(ctx)
	return cost, nil
}

func (s *costService) List(ctx context.Context) ([]models.Cost, error) {
	return s.costRepo.GetAll()
}

func (s *costService) publishCosts(ctx context.Context) {
	costs, err := s.costRepo.GetAll()
	if err != nil {
		slog.Error("Failed to load costs for snapshot", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, "costs", costs); err != nil {
		slog.Error("Failed to publish costs snapshot", "error", err)
	}
}

func (s *costService) publishAdmins(ctx context.Context) {
	admins, err := s.adminRepo.GetAll()
	if err != nil {
		slog.Error("Failed to load admins for snapshot", "error", err)
		return
	}
	if err := s.publisher.Publish(ctx, "admins", admins); err != nil {
		slog.Error("Failed to publish admins snapshot", "error", err)
	}
}
