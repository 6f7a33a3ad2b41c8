package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`CREATE TABLE IF NOT EXISTS role (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(64) NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS employee (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		first_name VARCHAR(128) NOT NULL,
		last_name VARCHAR(128) NOT NULL,
		email VARCHAR(255) NOT NULL,
		id_role UUID REFERENCES role(id) ON DELETE SET NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_employee_email ON employee (LOWER(email));`,
	`CREATE TABLE IF NOT EXISTS company (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		email VARCHAR(255),
		phone_number VARCHAR(32),
		landline_phone VARCHAR(32),
		rfc VARCHAR(13),
		tax_residence TEXT,
		constitution_date DATE,
		archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);`,
	`CREATE TABLE IF NOT EXISTS project (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name VARCHAR(255) NOT NULL,
		matter TEXT,
		description TEXT,
		category VARCHAR(64) NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT '-',
		start_date DATE NOT NULL,
		end_date DATE,
		total_hours NUMERIC(8,2),
		periodicity VARCHAR(32) NOT NULL DEFAULT '',
		is_chargeable BOOLEAN NOT NULL DEFAULT FALSE,
		area VARCHAR(32) NOT NULL,
		is_archived BOOLEAN NOT NULL DEFAULT FALSE,
		payed BOOLEAN NOT NULL DEFAULT FALSE,
		id_company UUID NOT NULL REFERENCES company(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_project_company ON project (id_company);`,
	`CREATE INDEX IF NOT EXISTS idx_project_area ON project (area);`,
	`CREATE TABLE IF NOT EXISTS task (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status VARCHAR(32) NOT NULL DEFAULT '-',
		waiting_for TEXT,
		start_date DATE NOT NULL,
		due_date DATE,
		end_date DATE,
		worked_hours NUMERIC(8,2),
		id_project UUID NOT NULL REFERENCES project(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_task_project_title ON task (id_project, title);`,
	`CREATE TABLE IF NOT EXISTS employee_task (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		id_employee UUID NOT NULL REFERENCES employee(id) ON DELETE CASCADE,
		id_task UUID NOT NULL REFERENCES task(id) ON DELETE CASCADE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS uq_employee_task_task ON employee_task (id_task);`,
	`CREATE INDEX IF NOT EXISTS idx_employee_task_employee ON employee_task (id_employee);`,
	`CREATE TABLE IF NOT EXISTS expense_report (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		start_date DATE NOT NULL,
		end_date DATE,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING' CHECK (status IN ('PENDING', 'PAYED', 'CANCELLED')),
		url_voucher TEXT,
		id_employee UUID NOT NULL REFERENCES employee(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ
	);`,
	`CREATE INDEX IF NOT EXISTS idx_expense_report_employee ON expense_report (id_employee);`,
	`CREATE TABLE IF NOT EXISTS expense (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title VARCHAR(255) NOT NULL,
		justification TEXT NOT NULL DEFAULT '',
		supplier VARCHAR(255),
		total_amount NUMERIC(12,2) NOT NULL CHECK (total_amount >= 0),
		date DATE NOT NULL,
		status VARCHAR(32),
		category VARCHAR(64),
		id_report UUID NOT NULL REFERENCES expense_report(id) ON DELETE CASCADE,
		url_file TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_expense_report ON expense (id_report);`,
}

// Migrate applies the schema statements in order. Every statement is
// idempotent.
func Migrate(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
