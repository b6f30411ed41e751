package services

import (
	"context"
	"errors"
	"io"
	"sort"

	"press_manager/internal/models"
)

// In-memory stand-ins for the gorm repositories, the live hub and the
// asset store.

type fakeOrderRepo struct {
	orders map[string]*models.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*models.Order)}
}

func (f *fakeOrderRepo) Create(order *models.Order) error {
	copied := *order
	f.orders[order.ID] = &copied
	return nil
}

func (f *fakeOrderRepo) GetByID(collection, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok || order.Collection != collection {
		return nil, nil
	}
	copied := *order
	return &copied, nil
}

func (f *fakeOrderRepo) GetByCollection(collection string) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range f.orders {
		if order.Collection == collection {
			orders = append(orders, *order)
		}
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].OrderDate.Before(orders[j].OrderDate) })
	return orders, nil
}

func (f *fakeOrderRepo) UpdateStatus(collection, id string, status models.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok || order.Collection != collection {
		return errors.New("record not found")
	}
	order.Status = status
	return nil
}

func (f *fakeOrderRepo) Relocate(id, from, to string, status models.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok || order.Collection != from {
		return errors.New("record not found")
	}
	order.Collection = to
	order.Status = status
	return nil
}

type fakeServiceRepo struct {
	services map[string]*models.Service
}

func newFakeServiceRepo(seed ...models.Service) *fakeServiceRepo {
	repo := &fakeServiceRepo{services: make(map[string]*models.Service)}
	for _, service := range seed {
		copied := service
		repo.services[service.ID] = &copied
	}
	return repo
}

func (f *fakeServiceRepo) Create(service *models.Service) error {
	copied := *service
	f.services[service.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) GetByID(id string) (*models.Service, error) {
	service, ok := f.services[id]
	if !ok {
		return nil, nil
	}
	copied := *service
	return &copied, nil
}

func (f *fakeServiceRepo) GetAll() ([]models.Service, error) {
	var services []models.Service
	for _, service := range f.services {
		services = append(services, *service)
	}
	sort.Slice(services, func(i, j int) bool { return services[i].ID < services[j].ID })
	return services, nil
}

func (f *fakeServiceRepo) Update(service *models.Service) error {
	copied := *service
	f.services[service.ID] = &copied
	return nil
}

func (f *fakeServiceRepo) Delete(id string) error {
	delete(f.services, id)
	return nil
}

type fakeCostRepo struct {
	costs []models.Cost
}

func (f *fakeCostRepo) Create(cost *models.Cost) error {
	f.costs = append(f.costs, *cost)
	return nil
}

func (f *fakeCostRepo) GetAll() ([]models.Cost, error) {
	return append([]models.Cost(nil), f.costs...), nil
}

type fakeAdminRepo struct {
	admins map[string]*models.Admin
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: make(map[string]*models.Admin)}
}

func (f *fakeAdminRepo) Create(admin *models.Admin) error {
	copied := *admin
	f.admins[admin.DeviceID] = &copied
	return nil
}

func (f *fakeAdminRepo) GetByDeviceID(deviceID string) (*models.Admin, error) {
	admin, ok := f.admins[deviceID]
	if !ok {
		return nil, nil
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminRepo) GetAll() ([]models.Admin, error) {
	var admins []models.Admin
	for _, admin := range f.admins {
		admins = append(admins, *admin)
	}
	return admins, nil
}

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) Publish(ctx context.Context, collection string, items interface{}) error {
	f.published = append(f.published, collection)
	return nil
}

func (f *fakePublisher) count(collection string) int {
	n := 0
	for _, c := range f.published {
		if c == collection {
			n++
		}
	}
	return n
}

type fakeAssetStore struct {
	uploads   map[string]string
	deletes   []string
	uploadErr error
	deleteErr error
}

func newFakeAssetStore() *fakeAssetStore {
	return &fakeAssetStore{uploads: make(map[string]string)}
}

func (f *fakeAssetStore) Upload(ctx context.Context, path string, r io.Reader) (string, error) {
	if f.uploadErr != nil {
		return "", f.uploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.uploads[path] = string(data)
	return "http://assets.local/" + path, nil
}

func (f *fakeAssetStore) Delete(ctx context.Context, path string) error {
	f.deletes = append(f.deletes, path)
	return f.deleteErr
}
