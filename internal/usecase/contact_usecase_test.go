package usecase_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"go-contact-manager/internal/domain"
	"go-contact-manager/internal/usecase"
	"go-contact-manager/pkg/apperror"
	"go-contact-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repository
type MockContactRepo struct {
	mock.Mock
}

func (m *MockContactRepo) GetAll(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contact), args.Error(1)
}

func (m *MockContactRepo) GetPaged(ctx context.Context, limit, offset int) ([]domain.Contact, int64, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Contact), args.Get(1).(int64), args.Error(2)
}

func (m *MockContactRepo) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contact), args.Error(1)
}

func (m *MockContactRepo) Create(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepo) Update(ctx context.Context, contact *domain.Contact) error {
	return m.Called(ctx, contact).Error(0)
}

func (m *MockContactRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func newContactUsecase(repo domain.ContactRepository) domain.ContactUsecase {
	validate := validator.New()
	validation.RegisterValidators(validate)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return usecase.NewContactUsecase(repo, validate, log)
}

func dateOffset(years, days int) string {
	return time.Now().AddDate(years, 0, days).Format("2006-01-02")
}

func validDTO() domain.ContactDTO {
	return domain.ContactDTO{
		Name:        "John Smith",
		BirthDate:   "1990-05-14",
		IsMarried:   true,
		PhoneNumber: "+420777123456",
		Salary:      2500.50,
	}
}

func assertValidationError(t *testing.T, err error) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, 400, appErr.Code)
	assert.Equal(t, "Validation failed", appErr.Message)
	return appErr
}

func TestGetPaged(t *testing.T) {
	t.Run("Should report full total count and clamp defaults", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		contacts := []domain.Contact{
			{ID: 1, Name: "Alice", BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC), PhoneNumber: "1234567", Salary: 100},
			{ID: 2, Name: "Bob", BirthDate: time.Date(1985, 6, 2, 0, 0, 0, 0, time.UTC), PhoneNumber: "7654321", Salary: 200},
		}
		// page 0 / size 0 clamp to page 1, size 10 -> offset 0
		mockRepo.On("GetPaged", mock.Anything, 10, 0).Return(contacts, int64(25), nil)

		result, err := uc.GetPaged(context.Background(), domain.PaginationRequest{})
		require.NoError(t, err)

		assert.Equal(t, int64(25), result.TotalCount)
		assert.Equal(t, 1, result.PageNumber)
		assert.Equal(t, 10, result.PageSize)
		assert.LessOrEqual(t, len(result.Items), result.PageSize)
		assert.Equal(t, "Alice", result.Items[0].Name)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should derive skip offset from page number", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		mockRepo.On("GetPaged", mock.Anything, 5, 10).Return([]domain.Contact{}, int64(12), nil)

		result, err := uc.GetPaged(context.Background(), domain.PaginationRequest{PageNumber: 3, PageSize: 5})
		require.NoError(t, err)
		assert.Equal(t, 3, result.PageNumber)
		assert.Empty(t, result.Items)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Should cap oversized page requests", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		mockRepo.On("GetPaged", mock.Anything, 100, 0).Return([]domain.Contact{}, int64(0), nil)

		result, err := uc.GetPaged(context.Background(), domain.PaginationRequest{PageNumber: 1, PageSize: 100000})
		require.NoError(t, err)
		assert.Equal(t, 100, result.PageSize)
		mockRepo.AssertExpectations(t)
	})
}

func TestCreateValidation(t *testing.T) {
	t.Run("Should assign the store identifier to the DTO", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Contact")).
			Return(nil).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Contact).ID = 7
			})

		dto := validDTO()
		require.NoError(t, uc.Create(context.Background(), &dto))
		assert.Equal(t, int64(7), dto.ID)
	})

	t.Run("Should reject a future birth date", func(t *testing.T) {
		uc := newContactUsecase(new(MockContactRepo))

		dto := validDTO()
		dto.BirthDate = dateOffset(0, 2)
		appErr := assertValidationError(t, uc.Create(context.Background(), &dto))

		fields := appErr.Details.([]validation.FieldError)
		require.Len(t, fields, 1)
		assert.Equal(t, "birth_date", fields[0].Field)
		assert.Equal(t, "BirthDate must be in the past", fields[0].Message)
	})

	t.Run("Should reject a birth date older than 110 years", func(t *testing.T) {
		uc := newContactUsecase(new(MockContactRepo))

		dto := validDTO()
		dto.BirthDate = dateOffset(-111, 0)
		appErr := assertValidationError(t, uc.Create(context.Background(), &dto))

		fields := appErr.Details.([]validation.FieldError)
		require.Len(t, fields, 1)
		assert.Equal(t, "BirthDate is not valid", fields[0].Message)
	})

	t.Run("Should accept a birth date of yesterday", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		dto := validDTO()
		dto.BirthDate = dateOffset(0, -1)
		assert.NoError(t, uc.Create(context.Background(), &dto))
	})

	t.Run("Should reject zero salary and accept one cent", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

		dto := validDTO()
		dto.Salary = 0
		appErr := assertValidationError(t, uc.Create(context.Background(), &dto))
		fields := appErr.Details.([]validation.FieldError)
		require.Len(t, fields, 1)
		assert.Equal(t, "salary", fields[0].Field)
		assert.Equal(t, "Salary is required", fields[0].Message)

		dto.Salary = 0.01
		assert.NoError(t, uc.Create(context.Background(), &dto))
	})

	t.Run("Should collect all violations together", func(t *testing.T) {
		uc := newContactUsecase(new(MockContactRepo))

		dto := domain.ContactDTO{} // everything missing
		appErr := assertValidationError(t, uc.Create(context.Background(), &dto))

		fields := appErr.Details.([]validation.FieldError)
		assert.Len(t, fields, 4) // name, birth_date, phone_number, salary
	})
}

func TestUpdate(t *testing.T) {
	t.Run("Should signal not-found for a missing id", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		mockRepo.On("GetByID", mock.Anything, int64(99999)).Return(nil, nil)

		dto := validDTO()
		err := uc.Update(context.Background(), 99999, &dto)
		require.Error(t, err)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, 404, appErr.Code)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should overwrite all business fields", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		existing := &domain.Contact{ID: 4, Name: "Old Name", BirthDate: time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), PhoneNumber: "1111111", Salary: 1}
		mockRepo.On("GetByID", mock.Anything, int64(4)).Return(existing, nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contact")).
			Return(nil).
			Run(func(args mock.Arguments) {
				updated := args.Get(1).(*domain.Contact)
				assert.Equal(t, int64(4), updated.ID)
				assert.Equal(t, "John Smith", updated.Name)
				assert.Equal(t, 2500.50, updated.Salary)
			})

		dto := validDTO()
		require.NoError(t, uc.Update(context.Background(), 4, &dto))
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateField(t *testing.T) {
	existing := func() *domain.Contact {
		return &domain.Contact{
			ID:          3,
			Name:        "Jane Doe",
			BirthDate:   time.Date(1980, 3, 10, 0, 0, 0, 0, time.UTC),
			IsMarried:   false,
			PhoneNumber: "+420777123456",
			Salary:      1000,
		}
	}

	t.Run("Should reject an out-of-range salary without writing", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(existing(), nil)

		err := uc.UpdateField(context.Background(), 3, domain.FieldSalary, "-5")
		appErr := assertValidationError(t, err)
		fields := appErr.Details.([]validation.FieldError)
		require.Len(t, fields, 1)
		assert.Equal(t, "Salary must be greater than 0", fields[0].Message)
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should signal malformed input for an unparseable salary", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(existing(), nil)

		err := uc.UpdateField(context.Background(), 3, domain.FieldSalary, "lots")
		require.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Message, "Invalid number value")
		mockRepo.AssertNotCalled(t, "Update")
	})

	t.Run("Should signal malformed input for an unparseable date", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(existing(), nil)

		err := uc.UpdateField(context.Background(), 3, domain.FieldBirthDate, "not-a-date")
		require.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 400, appErr.Code)
		assert.Contains(t, appErr.Message, "Invalid date value")
	})

	t.Run("Should reject an unknown field token", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(existing(), nil)

		err := uc.UpdateField(context.Background(), 3, "shoe_size", "42")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Unknown field")
	})

	t.Run("Should write a converted boolean", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)
		mockRepo.On("GetByID", mock.Anything, int64(3)).Return(existing(), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Contact")).
			Return(nil).
			Run(func(args mock.Arguments) {
				assert.True(t, args.Get(1).(*domain.Contact).IsMarried)
			})

		require.NoError(t, uc.UpdateField(context.Background(), 3, domain.FieldIsMarried, "true"))
		mockRepo.AssertExpectations(t)
	})
}

func TestDelete(t *testing.T) {
	t.Run("Second delete of the same id signals not-found", func(t *testing.T) {
		mockRepo := new(MockContactRepo)
		uc := newContactUsecase(mockRepo)

		contact := &domain.Contact{ID: 5, Name: "Temp", BirthDate: time.Date(1995, 2, 2, 0, 0, 0, 0, time.UTC), PhoneNumber: "1234567", Salary: 10}
		mockRepo.On("GetByID", mock.Anything, int64(5)).Return(contact, nil).Once()
		mockRepo.On("Delete", mock.Anything, int64(5)).Return(nil).Once()
		mockRepo.On("GetByID", mock.Anything, int64(5)).Return(nil, nil).Once()

		require.NoError(t, uc.Delete(context.Background(), 5))

		err := uc.Delete(context.Background(), 5)
		require.Error(t, err)
		appErr := err.(*apperror.AppError)
		assert.Equal(t, 404, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}
