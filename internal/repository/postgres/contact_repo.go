package postgres

import (
	"context"
	"errors"

	"go-contact-manager/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type contactRepository struct {
	db *pgxpool.Pool
}

func NewContactRepository(db *pgxpool.Pool) domain.ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) GetAll(ctx context.Context) ([]domain.Contact, error) {
	query := `SELECT id, name, birth_date, is_married, phone_number, salary
	          FROM contacts ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanContacts(rows)
}

func (r *contactRepository) GetPaged(ctx context.Context, limit, offset int) ([]domain.Contact, int64, error) {
	// Count runs separately so TotalCount covers the whole table
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT id, name, birth_date, is_married, phone_number, salary
	          FROM contacts ORDER BY name ASC LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	contacts, err := scanContacts(rows)
	if err != nil {
		return nil, 0, err
	}
	return contacts, total, nil
}

func (r *contactRepository) GetByID(ctx context.Context, id int64) (*domain.Contact, error) {
	query := `SELECT id, name, birth_date, is_married, phone_number, salary
	          FROM contacts WHERE id = $1`

	var c domain.Contact
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.BirthDate, &c.IsMarried, &c.PhoneNumber, &c.Salary,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	query := `INSERT INTO contacts (name, birth_date, is_married, phone_number, salary)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`

	return r.db.QueryRow(ctx, query,
		contact.Name, contact.BirthDate, contact.IsMarried, contact.PhoneNumber, contact.Salary,
	).Scan(&contact.ID)
}

func (r *contactRepository) Update(ctx context.Context, contact *domain.Contact) error {
	query := `UPDATE contacts SET name=$1, birth_date=$2, is_married=$3, phone_number=$4, salary=$5
	          WHERE id=$6`

	_, err := r.db.Exec(ctx, query,
		contact.Name, contact.BirthDate, contact.IsMarried, contact.PhoneNumber, contact.Salary,
		contact.ID,
	)
	return err
}

func (r *contactRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM contacts WHERE id=$1`, id)
	return err
}

func scanContacts(rows pgx.Rows) ([]domain.Contact, error) {
	contacts := []domain.Contact{}
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.BirthDate, &c.IsMarried, &c.PhoneNumber, &c.Salary); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}
