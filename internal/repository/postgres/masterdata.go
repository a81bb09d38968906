package postgres

import (
	"context"
	"database/sql"

	"mietpark-backend/internal/domain"
	"mietpark-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO firmen (name, ust_id, adresse) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, nullString(c.VATID), nullString(c.Address)).Scan(&c.ID)
}

func (r *companyRepository) GetByID(ctx context.Context, id int32) (*domain.Company, error) {
	c := &domain.Company{}
	var vatID, address sql.NullString
	query := `SELECT id, name, ust_id, adresse FROM firmen WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &vatID, &address)
	if err != nil {
		return nil, err
	}
	c.VATID = stringPtr(vatID)
	c.Address = stringPtr(address)
	return c, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name, ust_id, adresse FROM firmen ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		var vatID, address sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &vatID, &address); err != nil {
			return nil, err
		}
		c.VATID = stringPtr(vatID)
		c.Address = stringPtr(address)
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE firmen SET name=$1, ust_id=$2, adresse=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, c.Name, nullString(c.VATID), nullString(c.Address), c.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *companyRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM firmen WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type yardRepository struct {
	db *sql.DB
}

func NewYardRepository(db *sql.DB) repository.YardRepository {
	return &yardRepository{db: db}
}

func (r *yardRepository) Create(ctx context.Context, y *domain.Yard) error {
	query := `INSERT INTO mietparks (name, adresse) VALUES ($1, $2) RETURNING id`
	return r.db.QueryRowContext(ctx, query, y.Name, nullString(y.Address)).Scan(&y.ID)
}

func (r *yardRepository) GetByID(ctx context.Context, id int32) (*domain.Yard, error) {
	y := &domain.Yard{}
	var address sql.NullString
	query := `SELECT id, name, adresse FROM mietparks WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&y.ID, &y.Name, &address); err != nil {
		return nil, err
	}
	y.Address = stringPtr(address)
	return y, nil
}

func (r *yardRepository) List(ctx context.Context) ([]domain.Yard, error) {
	query := `SELECT id, name, adresse FROM mietparks ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var yards []domain.Yard
	for rows.Next() {
		var y domain.Yard
		var address sql.NullString
		if err := rows.Scan(&y.ID, &y.Name, &address); err != nil {
			return nil, err
		}
		y.Address = stringPtr(address)
		yards = append(yards, y)
	}
	return yards, rows.Err()
}

func (r *yardRepository) Update(ctx context.Context, y *domain.Yard) error {
	query := `UPDATE mietparks SET name=$1, adresse=$2 WHERE id=$3`
	res, err := r.db.ExecContext(ctx, query, y.Name, nullString(y.Address), y.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *yardRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM mietparks WHERE id=$1`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO kunden (name, adresse, ust_id) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, nullString(c.Address), nullString(c.VATID)).Scan(&c.ID)
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	var address, vatID sql.NullString
	query := `SELECT id, name, adresse, ust_id FROM kunden WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &address, &vatID); err != nil {
		return nil, err
	}
	c.Address = stringPtr(address)
	c.VATID = stringPtr(vatID)
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, adresse, ust_id FROM kunden ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		var address, vatID sql.NullString
		if err := rows.Scan(&c.ID, &c.Name, &address, &vatID); err != nil {
			return nil, err
		}
		c.Address = stringPtr(address)
		c.VATID = stringPtr(vatID)
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE kunden SET name=$1, adresse=$2, ust_id=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, c.Name, nullString(c.Address), nullString(c.VATID), c.ID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps zero-row updates/deletes to sql.ErrNoRows so the
// service layer can translate them to a not-found condition.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
