package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/customer-admin/customer-admin/internal/model"
	"github.com/jmoiron/sqlx"
)

// CustomersRepository is the data-access contract for Customer records.
// Each write wraps a single transaction; any failure rolls back and is
// re-signaled as a persistence error wrapping the driver cause.
type CustomersRepository interface {
	Create(ctx context.Context, c *model.Customer) error
	Update(ctx context.Context, c *model.Customer) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*model.Customer, error)
	FindAll(ctx context.Context) ([]model.Customer, error)
	FindByField(ctx context.Context, field, value string) ([]model.Customer, error)
	FindByState(ctx context.Context, state bool) ([]model.Customer, error)
}

type CustomersRepositoryImpl struct {
	db *sqlx.DB
}

func NewCustomersRepository(db *sqlx.DB) *CustomersRepositoryImpl {
	return &CustomersRepositoryImpl{db: db}
}

var _ CustomersRepository = (*CustomersRepositoryImpl)(nil)

// filterColumns is the whitelist for FindByField; column names are never
// interpolated from request input directly.
var filterColumns = map[string]struct{}{
	"name":         {},
	"email":        {},
	"phone_number": {},
	"address":      {},
}

// Create inserts the customer and assigns the store-generated ID.
func (r *CustomersRepositoryImpl) Create(ctx context.Context, c *model.Customer) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.NewPersistence("create customer", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO customers (name, email, phone_number, address, state)
		VALUES (?, ?, ?, ?, ?)
	`, c.Name, c.Email, c.PhoneNumber, c.Address, c.State)
	if err != nil {
		return model.NewPersistence("create customer", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.NewPersistence("create customer", err)
	}
	if err := tx.Commit(); err != nil {
		return model.NewPersistence("create customer", err)
	}

	c.ID = id
	return nil
}

// Update replaces all mutable fields of the row identified by c.ID.
// A zero ID fails before the store is touched.
func (r *CustomersRepositoryImpl) Update(ctx context.Context, c *model.Customer) error {
	if c.ID == 0 {
		return model.NewPersistence("update called with empty ID field", nil)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.NewPersistence("update customer", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		UPDATE customers
		   SET name = ?, email = ?, phone_number = ?, address = ?, state = ?
		 WHERE id = ?
	`, c.Name, c.Email, c.PhoneNumber, c.Address, c.State, c.ID); err != nil {
		return model.NewPersistence("update customer", err)
	}
	if err := tx.Commit(); err != nil {
		return model.NewPersistence("update customer", err)
	}
	return nil
}

// Delete removes the row by id. Deleting an absent row is not an error here;
// the handler decides whether absence matters.
func (r *CustomersRepositoryImpl) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.NewPersistence("delete customer", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id); err != nil {
		return model.NewPersistence("delete customer", err)
	}
	if err := tx.Commit(); err != nil {
		return model.NewPersistence("delete customer", err)
	}
	return nil
}

// FindByID returns (nil, nil) when no row matches.
func (r *CustomersRepositoryImpl) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var c model.Customer
	err := r.db.GetContext(ctx, &c, `
		SELECT id, name, email, phone_number, address, state
		  FROM customers
		 WHERE id = ? LIMIT 1
	`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, model.NewPersistence("find customer by id", err)
	}
	return &c, nil
}

func (r *CustomersRepositoryImpl) FindAll(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.SelectContext(ctx, &customers, `
		SELECT id, name, email, phone_number, address, state
		  FROM customers
	`)
	if err != nil {
		return nil, model.NewPersistence("list customers", err)
	}
	return customers, nil
}

// FindByField performs an exact-equality filter on one of the whitelisted
// string columns (name, email, phone_number, address).
func (r *CustomersRepositoryImpl) FindByField(ctx context.Context, field, value string) ([]model.Customer, error) {
	if _, ok := filterColumns[field]; !ok {
		return nil, model.NewPersistence(fmt.Sprintf("unsupported filter field %q", field), nil)
	}

	var customers []model.Customer
	query := fmt.Sprintf(`
		SELECT id, name, email, phone_number, address, state
		  FROM customers
		 WHERE %s = ?
	`, field)
	if err := r.db.SelectContext(ctx, &customers, query, value); err != nil {
		return nil, model.NewPersistence("filter customers by "+field, err)
	}
	return customers, nil
}

func (r *CustomersRepositoryImpl) FindByState(ctx context.Context, state bool) ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.SelectContext(ctx, &customers, `
		SELECT id, name, email, phone_number, address, state
		  FROM customers
		 WHERE state = ?
	`, state)
	if err != nil {
		return nil, model.NewPersistence("filter customers by state", err)
	}
	return customers, nil
}
