package domain

import (
	"context"
	"time"
)

// Contact is the storage entity, one row in the contacts table.
type Contact struct {
	ID          int64
	Name        string
	BirthDate   time.Time
	IsMarried   bool
	PhoneNumber string
	Salary      float64
}

// ContactDTO is the transfer record exchanged at the HTTP boundary.
// BirthDate travels as a YYYY-MM-DD string.
type ContactDTO struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name" validate:"required,max=50"`
	BirthDate   string  `json:"birth_date" validate:"required,birthdate,birthdate_past,birthdate_min"`
	IsMarried   bool    `json:"is_married"`
	PhoneNumber string  `json:"phone_number" validate:"required,valid_phone"`
	Salary      float64 `json:"salary" validate:"required,gt=0"`
}

// Field tokens accepted by the single-field update path.
const (
	FieldName        = "name"
	FieldBirthDate   = "birth_date"
	FieldIsMarried   = "is_married"
	FieldPhoneNumber = "phone_number"
	FieldSalary      = "salary"
)

const dateLayout = "2006-01-02"

// ToDTO copies the entity into its wire shape.
func (c *Contact) ToDTO() ContactDTO {
	return ContactDTO{
		ID:          c.ID,
		Name:        c.Name,
		BirthDate:   c.BirthDate.Format(dateLayout),
		IsMarried:   c.IsMarried,
		PhoneNumber: c.PhoneNumber,
		Salary:      c.Salary,
	}
}

// ToEntity copies the transfer record into its storage shape.
// The date string must already be validated.
func (d *ContactDTO) ToEntity() (Contact, error) {
	birthDate, err := time.Parse(dateLayout, d.BirthDate)
	if err != nil {
		return Contact{}, err
	}
	return Contact{
		ID:          d.ID,
		Name:        d.Name,
		BirthDate:   birthDate,
		IsMarried:   d.IsMarried,
		PhoneNumber: d.PhoneNumber,
		Salary:      d.Salary,
	}, nil
}

type ContactRepository interface {
	GetAll(ctx context.Context) ([]Contact, error)
	GetPaged(ctx context.Context, limit, offset int) ([]Contact, int64, error)
	GetByID(ctx context.Context, id int64) (*Contact, error)
	Create(ctx context.Context, contact *Contact) error
	Update(ctx context.Context, contact *Contact) error
	Delete(ctx context.Context, id int64) error
}

type ContactUsecase interface {
	GetAll(ctx context.Context) ([]ContactDTO, error)
	GetPaged(ctx context.Context, req PaginationRequest) (*PagedResult, error)
	GetByID(ctx context.Context, id int64) (*ContactDTO, error)
	Create(ctx context.Context, dto *ContactDTO) error
	Update(ctx context.Context, id int64, dto *ContactDTO) error
	UpdateField(ctx context.Context, id int64, field, value string) error
	Delete(ctx context.Context, id int64) error
}
