package usecase

import (
	"context"
	"log/slog"
	"strconv"

	"go-contact-manager/internal/domain"
	"go-contact-manager/pkg/apperror"
	"go-contact-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

type contactUsecase struct {
	repo     domain.ContactRepository
	validate *validator.Validate
	log      *slog.Logger
}

func NewContactUsecase(repo domain.ContactRepository, validate *validator.Validate, log *slog.Logger) domain.ContactUsecase {
	return &contactUsecase{
		repo:     repo,
		validate: validate,
		log:      log,
	}
}

func (u *contactUsecase) GetAll(ctx context.Context) ([]domain.ContactDTO, error) {
	contacts, err := u.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]domain.ContactDTO, 0, len(contacts))
	for i := range contacts {
		dtos = append(dtos, contacts[i].ToDTO())
	}
	return dtos, nil
}

func (u *contactUsecase) GetPaged(ctx context.Context, req domain.PaginationRequest) (*domain.PagedResult, error) {
	if req.PageNumber < 1 {
		req.PageNumber = 1
	}
	if req.PageSize < 1 {
		req.PageSize = defaultPageSize
	}
	if req.PageSize > maxPageSize {
		req.PageSize = maxPageSize
	}

	contacts, total, err := u.repo.GetPaged(ctx, req.PageSize, req.Skip())
	if err != nil {
		return nil, err
	}

	items := make([]domain.ContactDTO, 0, len(contacts))
	for i := range contacts {
		items = append(items, contacts[i].ToDTO())
	}

	u.log.Debug("retrieved contact page",
		"page", req.PageNumber, "page_size", req.PageSize, "total", total)

	return &domain.PagedResult{
		Items:      items,
		TotalCount: total,
		PageNumber: req.PageNumber,
		PageSize:   req.PageSize,
	}, nil
}

func (u *contactUsecase) GetByID(ctx context.Context, id int64) (*domain.ContactDTO, error) {
	contact, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperror.NotFound("Contact not found")
	}

	dto := contact.ToDTO()
	return &dto, nil
}

func (u *contactUsecase) Create(ctx context.Context, dto *domain.ContactDTO) error {
	if err := u.validate.Struct(dto); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	contact, err := dto.ToEntity()
	if err != nil {
		return apperror.Internal(err)
	}
	contact.ID = 0 // the store assigns identifiers

	if err := u.repo.Create(ctx, &contact); err != nil {
		return err
	}
	dto.ID = contact.ID

	u.log.Info("created contact", "id", contact.ID, "name", contact.Name)
	return nil
}

func (u *contactUsecase) Update(ctx context.Context, id int64, dto *domain.ContactDTO) error {
	if err := u.validate.Struct(dto); err != nil {
		return apperror.Validation(validation.FormatValidationErrors(err))
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Contact not found")
	}

	updated, err := dto.ToEntity()
	if err != nil {
		return apperror.Internal(err)
	}
	updated.ID = existing.ID

	if err := u.repo.Update(ctx, &updated); err != nil {
		return err
	}

	u.log.Info("updated contact", "id", id)
	return nil
}

func (u *contactUsecase) UpdateField(ctx context.Context, id int64, field, value string) error {
	contact, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return apperror.NotFound("Contact not found")
	}

	dto := contact.ToDTO()

	// ruleField stays empty for fields without validation rules
	var ruleField string
	switch field {
	case domain.FieldName:
		dto.Name = value
		ruleField = "Name"
	case domain.FieldPhoneNumber:
		dto.PhoneNumber = value
		ruleField = "PhoneNumber"
	case domain.FieldBirthDate:
		if _, err := validation.ParseDate(value); err != nil {
			return apperror.BadRequest("Invalid date value for field " + field)
		}
		dto.BirthDate = value
		ruleField = "BirthDate"
	case domain.FieldIsMarried:
		married, err := strconv.ParseBool(value)
		if err != nil {
			return apperror.BadRequest("Invalid boolean value for field " + field)
		}
		dto.IsMarried = married
	case domain.FieldSalary:
		salary, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return apperror.BadRequest("Invalid number value for field " + field)
		}
		dto.Salary = salary
		ruleField = "Salary"
	default:
		return apperror.BadRequest("Unknown field: " + field)
	}

	if ruleField != "" {
		if err := u.validate.StructPartial(dto, ruleField); err != nil {
			return apperror.Validation(validation.FormatValidationErrors(err))
		}
	}

	updated, err := dto.ToEntity()
	if err != nil {
		return apperror.Internal(err)
	}

	if err := u.repo.Update(ctx, &updated); err != nil {
		return err
	}

	u.log.Info("updated contact field", "id", id, "field", field)
	return nil
}

func (u *contactUsecase) Delete(ctx context.Context, id int64) error {
	contact, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return apperror.NotFound("Contact not found")
	}

	if err := u.repo.Delete(ctx, id); err != nil {
		return err
	}

	u.log.Info("deleted contact", "id", id)
	return nil
}
