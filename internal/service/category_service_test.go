package service

import (
	"context"
	"errors"
	"testing"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/household-ledger/internal/storage/sqlconfig"
)

func newCategoryTestService(t *testing.T) (*CategoryService, *sqlconfig.MockITable[sqlconfig.CategoryRow]) {
	t.Helper()
	store, tables := newMockStorage(t)
	logger, _ := newTestLogger()
	return NewCategoryService(store, newTestStamper(), logger), tables.categories
}

// -- List tests --

func TestCategoryList_QueriesLiveRowsOldestFirst(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	expected := sqlconfig.NewQuery().
		FilterNull(sqlconfig.ColumnDeletedAt).
		OrderBy(sqlconfig.ColumnCreatedAt, false).
		OrderBy(sqlconfig.ColumnID, false).
		Range(10, 19)
	rows := []sqlconfig.CategoryRow{
		{ID: uuid.Must(uuid.NewV4()), Name: "FOOD", Type: "EXPENSE"},
		{ID: uuid.Must(uuid.NewV4()), Name: "SALARY", Type: "INCOME"},
	}
	mockTable.EXPECT().Select(mock.Anything, expected).Return(rows, 25, nil)

	page, err := svc.List(context.Background(), 2, 10)

	require.NoError(t, err)
	assert.Equal(t, 25, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Rows, 2)
	assert.Equal(t, "FOOD", page.Rows[0].Name)
	assert.Equal(t, CategoryTypeIncome, page.Rows[1].Type)
}

func TestCategoryList_EmptyIsPageOneOfZero(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	mockTable.EXPECT().Select(mock.Anything, mock.Anything).Return(nil, 0, nil)

	page, err := svc.List(context.Background(), 1, 10)

	require.NoError(t, err)
	assert.Empty(t, page.Rows)
	assert.Zero(t, page.TotalPages)
}

func TestCategoryList_RejectsBadPaging(t *testing.T) {
	svc, _ := newCategoryTestService(t)

	_, err := svc.List(context.Background(), 1, 0)
	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "perPage", validation.Field)

	_, err = svc.List(context.Background(), 0, 10)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "page", validation.Field)
}

func TestCategoryList_StorageError(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	mockTable.EXPECT().Select(mock.Anything, mock.Anything).Return(nil, 0, errors.New("connection refused"))

	page, err := svc.List(context.Background(), 1, 10)

	assert.Nil(t, page)
	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "connection refused", err.Error())
}

// -- Get tests --

func TestCategoryGet_IgnoresSoftDelete(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)
	id := uuid.Must(uuid.NewV4())
	deletedAt := fixedNow

	mockTable.EXPECT().Select(mock.Anything, sqlconfig.NewQuery().FilterEquals(sqlconfig.ColumnID, id)).
		Return([]sqlconfig.CategoryRow{{ID: id, Name: "OLD", DeletedAt: &deletedAt}}, 1, nil)

	category, err := svc.Get(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, "OLD", category.Name)
	assert.False(t, category.IsLive())
}

func TestCategoryGet_NotFound(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)
	id := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Select(mock.Anything, mock.Anything).Return([]sqlconfig.CategoryRow{}, 0, nil)

	_, err := svc.Get(context.Background(), id)

	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, id, notFound.ID)
	assert.Equal(t, sqlconfig.TableCategories, notFound.Table)
}

// -- Create tests --

func TestCategoryCreate_NormalizesAndStamps(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)
	actor := newActor()
	id := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v sqlconfig.Values) bool {
		return v["name"] == "GROCERIES" &&
			v["type"] == "INCOME" &&
			v["created_at"] == fixedNow &&
			v["updated_at"] == fixedNow &&
			v["created_by"] == actor.UUID &&
			v["updated_by"] == actor.UUID
	})).Return(sqlconfig.CategoryRow{ID: id, Name: "GROCERIES", Type: "INCOME", CreatedAt: fixedNow}, nil)

	category, err := svc.Create(context.Background(), CategoryInput{Name: "groceries", Type: CategoryTypeIncome}, actor)

	require.NoError(t, err)
	assert.Equal(t, id, category.ID)
	assert.Equal(t, CategoryTypeIncome, category.Type)
}

func TestCategoryCreate_DefaultsToExpense(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	mockTable.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(v sqlconfig.Values) bool {
		return v["type"] == "EXPENSE" && v["created_by"] == nil
	})).Return(sqlconfig.CategoryRow{Type: "EXPENSE"}, nil)

	category, err := svc.Create(context.Background(), CategoryInput{Name: "rent"}, uuid.NullUUID{})

	require.NoError(t, err)
	assert.Equal(t, CategoryTypeExpense, category.Type)
}

func TestCategoryCreate_RequiresName(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	_, err := svc.Create(context.Background(), CategoryInput{Name: "  "}, newActor())

	assert.ErrorIs(t, err, ErrValidation)
	mockTable.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCategoryCreate_StorageErrorIsLogged(t *testing.T) {
	store, tables := newMockStorage(t)
	logger, hook := newTestLogger()
	svc := NewCategoryService(store, newTestStamper(), logger)

	tables.categories.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(sqlconfig.CategoryRow{}, errors.New("permission denied for table categories"))

	_, err := svc.Create(context.Background(), CategoryInput{Name: "food"}, newActor())

	assert.ErrorIs(t, err, ErrStorage)
	assert.Equal(t, "permission denied for table categories", err.Error())
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
	assert.Equal(t, "CategoryService.Create.storage", hook.LastEntry().Message)
}

// -- Update tests --

func TestCategoryUpdate_ScopesToLiveRow(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)
	id := uuid.Must(uuid.NewV4())
	actor := newActor()

	mockTable.EXPECT().Update(mock.Anything, liveByID(id), mock.MatchedBy(func(v sqlconfig.Values) bool {
		_, touchesCreated := v["created_at"]
		_, touchesType := v["type"]
		return v["name"] == "TRANSPORT" &&
			v["updated_at"] == fixedNow &&
			v["updated_by"] == actor.UUID &&
			!touchesCreated && !touchesType
	})).Return([]sqlconfig.CategoryRow{{ID: id, Name: "TRANSPORT"}}, nil)

	category, err := svc.Update(context.Background(), id, CategoryUpdate{Name: omit.From("transport")}, actor)

	require.NoError(t, err)
	assert.Equal(t, "TRANSPORT", category.Name)
}

func TestCategoryUpdate_NoRowsIsNotFound(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)
	id := uuid.Must(uuid.NewV4())

	mockTable.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return([]sqlconfig.CategoryRow{}, nil)

	_, err := svc.Update(context.Background(), id, CategoryUpdate{Type: omit.From(CategoryTypeIncome)}, newActor())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategoryUpdate_RejectsEmptyName(t *testing.T) {
	svc, _ := newCategoryTestService(t)

	_, err := svc.Update(context.Background(), uuid.Must(uuid.NewV4()), CategoryUpdate{Name: omit.From("")}, newActor())

	assert.ErrorIs(t, err, ErrValidation)
}

// -- SoftDelete tests --

func TestCategorySoftDelete_StampsOnly(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)
	id := uuid.Must(uuid.NewV4())
	actor := newActor()

	mockTable.EXPECT().Update(mock.Anything, liveByID(id), sqlconfig.Values{
		"deleted_at": fixedNow,
		"deleted_by": actor.UUID,
		"updated_at": fixedNow,
	}).Return([]sqlconfig.CategoryRow{{ID: id}}, nil)

	assert.NoError(t, svc.SoftDelete(context.Background(), id, actor))
}

func TestCategorySoftDelete_AlreadyDeleted(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	mockTable.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	err := svc.SoftDelete(context.Background(), uuid.Must(uuid.NewV4()), newActor())

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCategorySoftDelete_StorageError(t *testing.T) {
	svc, mockTable := newCategoryTestService(t)

	mockTable.EXPECT().Update(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	err := svc.SoftDelete(context.Background(), uuid.Must(uuid.NewV4()), newActor())

	assert.ErrorIs(t, err, ErrStorage)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestParseCategoryType(t *testing.T) {
	for in, want := range map[string]CategoryType{"": CategoryTypeExpense, "expense": CategoryTypeExpense, "INCOME": CategoryTypeIncome, " income ": CategoryTypeIncome} {
		got, err := ParseCategoryType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseCategoryType("transfer")
	assert.ErrorIs(t, err, ErrValidation)
}
