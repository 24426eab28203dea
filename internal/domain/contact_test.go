package domain_test

import (
	"testing"
	"time"

	"go-contact-manager/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMappingRoundTrip(t *testing.T) {
	entity := domain.Contact{
		ID:          12,
		Name:        "Marie Curie",
		BirthDate:   time.Date(1967, 11, 7, 0, 0, 0, 0, time.UTC),
		IsMarried:   true,
		PhoneNumber: "+480123456789",
		Salary:      3210.45,
	}

	dto := entity.ToDTO()
	assert.Equal(t, "1967-11-07", dto.BirthDate)

	back, err := dto.ToEntity()
	require.NoError(t, err)
	assert.Equal(t, entity, back)
}

func TestToEntityRejectsBadDate(t *testing.T) {
	dto := domain.ContactDTO{BirthDate: "11/07/1967"}
	_, err := dto.ToEntity()
	assert.Error(t, err)
}

func TestPaginationSkip(t *testing.T) {
	assert.Equal(t, 0, domain.PaginationRequest{PageNumber: 1, PageSize: 10}.Skip())
	assert.Equal(t, 20, domain.PaginationRequest{PageNumber: 3, PageSize: 10}.Skip())
	assert.Equal(t, 0, domain.PaginationRequest{PageNumber: 0, PageSize: 10}.Skip())
}
