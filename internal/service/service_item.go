package service

import (
	"context"
	"time"

	"github.com/MKhiriev/climate-scenarios/internal/logger"
	"github.com/MKhiriev/climate-scenarios/models"
)

const (
	defaultItemTitle  = "Default Title"
	defaultItemStatus = "active"
)

// itemService answers the items endpoints with canned values.
type itemService struct {
	now func() time.Time

	logger *logger.Logger
}

func NewItemService(logger *logger.Logger) ItemService {
	return &itemService{
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (s *itemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return []models.Item{}, nil
}

func (s *itemService) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return models.Item{}, notFound("Item", id, nil)
}

func (s *itemService) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	now := s.now()
	return models.Item{
		ID:          1,
		Title:       req.Title,
		Description: req.Description,
		Status:      defaultItemStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (s *itemService) UpdateItem(ctx context.Context, id int64, req models.UpdateItemRequest) (models.Item, error) {
	now := s.now()
	item := models.Item{
		ID:          id,
		Title:       defaultItemTitle,
		Description: req.Description,
		Status:      defaultItemStatus,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Status != nil {
		item.Status = *req.Status
	}

	return item, nil
}

func (s *itemService) DeleteItem(ctx context.Context, id int64) error {
	logger.FromContext(ctx).Debug().Int64("id", id).Msg("item delete is a no-op")
	return nil
}
