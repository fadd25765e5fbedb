package item

import (
	"context"
	"fmt"
	"strings"

	"github.com/grove-games/armory/internal/domain"
	"github.com/grove-games/armory/internal/logger"
	"github.com/grove-games/armory/internal/repository"
)

// Service defines the interface for catalog operations
type Service interface {
	CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error)
	GetItemByCode(ctx context.Context, code int) (*domain.Item, error)
	GetItemByName(ctx context.Context, name string) (*domain.Item, error)
	ListItems(ctx context.Context) ([]domain.ItemSummary, error)
}

type service struct {
	repo  repository.Catalog
	cache *catalogCache
}

// NewService creates a new catalog service with the default cache sizing.
func NewService(repo repository.Catalog) Service {
	return &service{
		repo:  repo,
		cache: newCatalogCache(DefaultCacheSize, DefaultCacheTTL),
	}
}

// CreateItem validates and persists a new catalog entry. Item codes are
// client-assigned, so duplicates surface as conflicts rather than sequence
// gaps.
func (s *service) CreateItem(ctx context.Context, item *domain.Item) (*domain.Item, error) {
	log := logger.FromContext(ctx)

	if err := validateItem(item); err != nil {
		return nil, err
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateItemFailed, err)
	}

	s.cache.Set(item)
	log.Info(LogMsgItemCreated, "itemCode", item.Code, "itemName", item.Name)
	return item, nil
}

// GetItemByCode returns the full catalog row for a code, served from the
// cache when possible.
func (s *service) GetItemByCode(ctx context.Context, code int) (*domain.Item, error) {
	if code <= 0 {
		return nil, fmt.Errorf(ErrMsgInvalidItemCodeFmt, code, domain.ErrInvalidInput)
	}

	if item, found := s.cache.GetByCode(code); found {
		return item, nil
	}

	item, err := s.repo.GetItemByCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgItemNotFoundFmt, code, domain.ErrItemNotFound)
	}

	s.cache.Set(item)
	return item, nil
}

// GetItemByName returns the full catalog row for a name.
func (s *service) GetItemByName(ctx context.Context, name string) (*domain.Item, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf(ErrMsgInvalidNameFmt, name, domain.ErrInvalidInput)
	}

	if item, found := s.cache.GetByName(name); found {
		return item, nil
	}

	item, err := s.repo.GetItemByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetItemFailed, err)
	}
	if item == nil {
		return nil, fmt.Errorf(ErrMsgItemNameNotFoundFmt, name, domain.ErrItemNotFound)
	}

	s.cache.Set(item)
	return item, nil
}

// ListItems returns the catalog as summaries ordered by item code. The list
// always reads through to the database; only point lookups are cached.
func (s *service) ListItems(ctx context.Context) ([]domain.ItemSummary, error) {
	items, err := s.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListItemsFailed, err)
	}

	summaries := make([]domain.ItemSummary, 0, len(items))
	for _, it := range items {
		summaries = append(summaries, domain.ItemSummary{
			Code:  it.Code,
			Name:  it.Name,
			Price: it.Price,
		})
	}
	return summaries, nil
}

func validateItem(item *domain.Item) error {
	if item.Code <= 0 {
		return fmt.Errorf(ErrMsgInvalidItemCodeFmt, item.Code, domain.ErrInvalidInput)
	}
	if strings.TrimSpace(item.Name) == "" {
		return fmt.Errorf(ErrMsgInvalidNameFmt, item.Name, domain.ErrInvalidInput)
	}
	if !item.Slot.IsValid() {
		return fmt.Errorf(ErrMsgInvalidSlotFmt, string(item.Slot), domain.ErrInvalidInput)
	}
	if item.Price < 0 {
		return fmt.Errorf(ErrMsgInvalidPriceFmt, item.Price, domain.ErrInvalidInput)
	}
	return nil
}
