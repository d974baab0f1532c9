package service

import (
	"context"
	"errors"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/record"
	"github.com/carson-networks/household-ledger/internal/storage"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// CategoryService handles category business logic.
type CategoryService struct {
	storage *storage.Storage
	stamper *record.Stamper
	logger  logrus.FieldLogger
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(store *storage.Storage, stamper *record.Stamper, logger logrus.FieldLogger) *CategoryService {
	return &CategoryService{storage: store, stamper: stamper, logger: logger}
}

// List returns one page of live categories, oldest first.
func (s *CategoryService) List(ctx context.Context, page, perPage int) (*paging.Page[Category], error) {
	w, err := pageWindow(page, perPage)
	if err != nil {
		return nil, err
	}

	q := sqlconfig.NewQuery().
		FilterNull(sqlconfig.ColumnDeletedAt).
		OrderBy(sqlconfig.ColumnCreatedAt, false).
		OrderBy(sqlconfig.ColumnID, false).
		Range(w.From, w.To)

	rows, total, err := s.storage.Categories.Select(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("table", sqlconfig.TableCategories).Error("CategoryService.List.storage")
		return nil, storageFailure("list", sqlconfig.TableCategories, err)
	}

	return paging.NewPage(mapRows(rows, categoryFromRow), total, page, perPage), nil
}

// Get returns the category with id, including a soft-deleted one, so
// historical transactions can still resolve its name.
func (s *CategoryService) Get(ctx context.Context, id uuid.UUID) (*Category, error) {
	row, err := findByID(ctx, s.storage.Categories, sqlconfig.TableCategories, id)
	if errors.Is(err, ErrStorage) {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableCategories, "id": id}).Error("CategoryService.Get.storage")
	}
	if err != nil {
		return nil, err
	}
	category := categoryFromRow(row)
	return &category, nil
}

// Create stores a new category. The name is upper-cased before the write.
func (s *CategoryService) Create(ctx context.Context, input CategoryInput, actor uuid.NullUUID) (*Category, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, invalid("name", "is required")
	}

	payload := record.Payload{
		sqlconfig.ColumnName: input.Name,
		sqlconfig.ColumnType: categoryTypeToStorage(input.Type),
	}
	payload = s.stamper.Stamp(record.Normalize(payload), record.OpCreate, actor)

	row, err := s.storage.Categories.Insert(ctx, sqlconfig.Values(payload))
	if err != nil {
		s.logger.WithError(err).WithField("table", sqlconfig.TableCategories).Error("CategoryService.Create.storage")
		return nil, storageFailure("create", sqlconfig.TableCategories, err)
	}

	s.logger.WithFields(logrus.Fields{"table": sqlconfig.TableCategories, "id": row.ID}).Info("CategoryService.Create.stored")
	category := categoryFromRow(row)
	return &category, nil
}

// Update changes the set fields of a live category. An update with no fields
// set still refreshes updated_at and updated_by.
func (s *CategoryService) Update(ctx context.Context, id uuid.UUID, update CategoryUpdate, actor uuid.NullUUID) (*Category, error) {
	payload := record.Payload{}
	if name, ok := update.Name.Get(); ok {
		if strings.TrimSpace(name) == "" {
			return nil, invalid("name", "must not be empty")
		}
		payload[sqlconfig.ColumnName] = name
	}
	if categoryType, ok := update.Type.Get(); ok {
		payload[sqlconfig.ColumnType] = categoryTypeToStorage(categoryType)
	}
	payload = s.stamper.Stamp(record.Normalize(payload), record.OpUpdate, actor)

	row, err := updateLive(ctx, s.storage.Categories, sqlconfig.TableCategories, "update", id, payload)
	if err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableCategories, "id": id}).Warn("CategoryService.Update.failed")
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"table": sqlconfig.TableCategories, "id": id}).Info("CategoryService.Update.stored")
	category := categoryFromRow(row)
	return &category, nil
}

// SoftDelete marks a live category deleted. Its row and id stay in place.
func (s *CategoryService) SoftDelete(ctx context.Context, id uuid.UUID, actor uuid.NullUUID) error {
	payload := s.stamper.Stamp(record.Payload{}, record.OpDelete, actor)

	if _, err := updateLive(ctx, s.storage.Categories, sqlconfig.TableCategories, "delete", id, payload); err != nil {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableCategories, "id": id}).Warn("CategoryService.SoftDelete.failed")
		return err
	}

	s.logger.WithFields(logrus.Fields{"table": sqlconfig.TableCategories, "id": id}).Info("CategoryService.SoftDelete.stored")
	return nil
}
