package cmd

import (
	"fmt"
	"log"

	"github.com/customer-admin/customer-admin/internal/config"
	"github.com/customer-admin/customer-admin/internal/db"
	"github.com/customer-admin/customer-admin/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with demo customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		sqlDB, err := db.NewMySQLConnection(cfg.MySQL.DSN, db.MySQLOpts{
			MaxOpenConns:    cfg.MySQL.MaxOpenConns,
			MaxIdleConns:    cfg.MySQL.MaxIdleConns,
			ConnMaxLifetime: cfg.MySQL.ConnMaxLifetime,
			ConnMaxIdleTime: cfg.MySQL.ConnMaxIdleTime,
			PingTimeout:     cfg.MySQL.PingTimeout,
		})
		if err != nil {
			return fmt.Errorf("mysql connect: %w", err)
		}
		defer sqlDB.Close()

		log.Println(">> Seeding demo customers...")

		if err := seedCustomers(sqlDB); err != nil {
			return err
		}

		log.Println(">> Seed completed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// seedCustomers inserts demo customers once; a non-empty table is left alone
// so repeated seeds stay idempotent.
func seedCustomers(dbx *sqlx.DB) error {
	var count int64
	if err := dbx.Get(&count, `SELECT COUNT(*) FROM customers`); err != nil {
		return fmt.Errorf("count customers: %w", err)
	}
	if count > 0 {
		log.Printf(">> customers table already has %d rows, skipping", count)
		return nil
	}

	customers := []model.Customer{
		{Name: "Amy Pond", Email: "amy@example.com", PhoneNumber: "555-0001", Address: "1 Main St", State: true},
		{Name: "Rory Williams", Email: "rory@example.com", PhoneNumber: "555-0002", Address: "2 Main St", State: true},
		{Name: "River Song", Email: "river@example.com", PhoneNumber: "555-0003", Address: "3 Library Ln", State: true},
		{Name: "Jack Harkness", Email: "jack@example.com", PhoneNumber: "555-0004", Address: "4 Hub Plaza", State: false},
		{Name: "Clara Oswald", Email: "clara@example.com", PhoneNumber: "555-0005", Address: "5 Coal Hill Rd", State: true},
	}

	const q = `
INSERT INTO customers (name, email, phone_number, address, state)
VALUES (?, ?, ?, ?, ?)
`
	tx, err := dbx.Beginx()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, c := range customers {
		if _, err := tx.Exec(q, c.Name, c.Email, c.PhoneNumber, c.Address, c.State); err != nil {
			return fmt.Errorf("insert customer %q: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit customers: %w", err)
	}
	return nil
}
