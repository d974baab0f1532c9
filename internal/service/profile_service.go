package service

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-ledger/internal/paging"
	"github.com/carson-networks/household-ledger/internal/storage"
	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

// defaultProfilesPerPage is large enough to fill a payer picker in one page.
const defaultProfilesPerPage = 1000

// ProfileService reads household members. Profiles are created elsewhere.
type ProfileService struct {
	storage *storage.Storage
	logger  logrus.FieldLogger
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store *storage.Storage, logger logrus.FieldLogger) *ProfileService {
	return &ProfileService{storage: store, logger: logger}
}

// List returns profiles oldest first. Zero page or perPage fall back to page 1
// of defaultProfilesPerPage.
func (s *ProfileService) List(ctx context.Context, page, perPage int) (*paging.Page[Profile], error) {
	if page == 0 {
		page = 1
	}
	if perPage == 0 {
		perPage = defaultProfilesPerPage
	}
	w, err := pageWindow(page, perPage)
	if err != nil {
		return nil, err
	}

	q := sqlconfig.NewQuery().
		OrderBy(sqlconfig.ColumnCreatedAt, false).
		OrderBy(sqlconfig.ColumnID, false).
		Range(w.From, w.To)

	rows, total, err := s.storage.Profiles.Select(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("table", sqlconfig.TableProfiles).Error("ProfileService.List.storage")
		return nil, storageFailure("list", sqlconfig.TableProfiles, err)
	}
	return paging.NewPage(mapRows(rows, profileFromRow), total, page, perPage), nil
}

// Get returns the profile with id.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*Profile, error) {
	row, err := findByID(ctx, s.storage.Profiles, sqlconfig.TableProfiles, id)
	if errors.Is(err, ErrStorage) {
		s.logger.WithError(err).WithFields(logrus.Fields{"table": sqlconfig.TableProfiles, "id": id}).Error("ProfileService.Get.storage")
	}
	if err != nil {
		return nil, err
	}
	profile := profileFromRow(row)
	return &profile, nil
}
