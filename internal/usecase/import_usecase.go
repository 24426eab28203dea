package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"go-contact-manager/internal/domain"
	"go-contact-manager/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type importUsecase struct {
	contactUC domain.ContactUsecase
	validate  *validator.Validate
	log       *slog.Logger
}

func NewImportUsecase(contactUC domain.ContactUsecase, validate *validator.Validate, log *slog.Logger) domain.ImportUsecase {
	return &importUsecase{
		contactUC: contactUC,
		validate:  validate,
		log:       log,
	}
}

// csvColumns holds the index of each contact column in the uploaded file.
// An id column, if present, is ignored.
type csvColumns struct {
	name        int
	birthDate   int
	isMarried   int
	phoneNumber int
	salary      int
}

func (u *importUsecase) ImportContacts(ctx context.Context, file io.Reader) (*domain.ImportResult, error) {
	result := &domain.ImportResult{Errors: []string{}}

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		result.Errors = append(result.Errors, "File is empty.")
		return result, nil
	}
	if err != nil {
		result.Errors = append(result.Errors, "CSV parsing error: "+err.Error())
		return result, nil
	}

	cols, err := resolveColumns(header)
	if err != nil {
		result.Errors = append(result.Errors, "CSV parsing error: "+err.Error())
		return result, nil
	}

	// Parse the whole stream up front. A structural fault anywhere aborts
	// the import with a single error and no partial parse results.
	var records []domain.ContactDTO
	rowNum := 1 // the header counts as row 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		rowNum++
		if err != nil {
			result.Errors = append(result.Errors, "CSV parsing error: "+err.Error())
			u.log.Error("aborted contact import", "row", rowNum, "error", err)
			return result, nil
		}

		dto, err := parseRow(row, cols)
		if err != nil {
			result.Errors = append(result.Errors,
				fmt.Sprintf("CSV parsing error: row %d: %v", rowNum, err))
			u.log.Error("aborted contact import", "row", rowNum, "error", err)
			return result, nil
		}
		records = append(records, dto)
	}

	// Row-level failures skip the row and continue; valid rows are
	// persisted immediately, so a partial import is possible.
	imported := 0
	for i := range records {
		rowNum := i + 2

		if err := u.validate.Struct(&records[i]); err != nil {
			fieldErrs := validation.FormatValidationErrors(err)
			messages := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				messages = append(messages, fe.Message)
			}
			result.Errors = append(result.Errors,
				fmt.Sprintf("Row %d validation errors: %s", rowNum, strings.Join(messages, ", ")))
			continue
		}

		if err := u.contactUC.Create(ctx, &records[i]); err != nil {
			return nil, err
		}
		imported++
	}

	result.Success = len(result.Errors) == 0
	u.log.Info("finished contact import",
		"imported", imported, "rejected", len(records)-imported)
	return result, nil
}

func resolveColumns(header []string) (csvColumns, error) {
	index := map[string]int{}
	for i, col := range header {
		index[normalizeColumn(col)] = i
	}

	cols := csvColumns{}
	required := []struct {
		key  string
		dest *int
	}{
		{"name", &cols.name},
		{"birthdate", &cols.birthDate},
		{"ismarried", &cols.isMarried},
		{"phonenumber", &cols.phoneNumber},
		{"salary", &cols.salary},
	}
	for _, req := range required {
		i, ok := index[req.key]
		if !ok {
			return cols, fmt.Errorf("missing column %q", req.key)
		}
		*req.dest = i
	}
	return cols, nil
}

func normalizeColumn(col string) string {
	col = strings.ToLower(strings.TrimSpace(col))
	col = strings.ReplaceAll(col, "_", "")
	return strings.ReplaceAll(col, " ", "")
}

// parseRow converts one CSV row into a transfer record. Typed columns that
// fail to parse are a structural fault, not a row validation error.
func parseRow(row []string, cols csvColumns) (domain.ContactDTO, error) {
	var dto domain.ContactDTO

	dto.Name = strings.TrimSpace(row[cols.name])
	dto.PhoneNumber = strings.TrimSpace(row[cols.phoneNumber])

	birthDate := strings.TrimSpace(row[cols.birthDate])
	if birthDate != "" {
		if _, err := validation.ParseDate(birthDate); err != nil {
			return dto, fmt.Errorf("invalid date %q", birthDate)
		}
	}
	dto.BirthDate = birthDate

	marriedRaw := strings.TrimSpace(row[cols.isMarried])
	if marriedRaw != "" {
		married, err := strconv.ParseBool(marriedRaw)
		if err != nil {
			return dto, fmt.Errorf("invalid boolean %q", marriedRaw)
		}
		dto.IsMarried = married
	}

	salaryRaw := strings.TrimSpace(row[cols.salary])
	if salaryRaw != "" {
		salary, err := strconv.ParseFloat(salaryRaw, 64)
		if err != nil {
			return dto, fmt.Errorf("invalid number %q", salaryRaw)
		}
		dto.Salary = salary
	}

	return dto, nil
}
