package commands

import (
	"fmt"
	"log"

	"github.com/pkg/errors"

	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/repository/postgresql"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{
	{
		Index:       1,
		Description: "CREATE TYPE \"user_role\" AS ENUM",
		Query: `
        CREATE TYPE "user_role" AS ENUM ('EMPLOYEE', 'ADMIN');`,
	},
	{
		Index:       2,
		Description: "Create table: users.",
		Query: `
        CREATE TABLE IF NOT EXISTS users (
            id serial primary key,
            email text not null,
            password text not null,
            role user_role,
            name text,
            phone text,
            city text,
            country text,
            profile_image text,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       3,
		Description: "Create admin with email: admin@shiftwise.local, password: 1",
		Query: `
        INSERT INTO users(email, role, password)
        SELECT 'admin@shiftwise.local', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT email FROM users WHERE email = 'admin@shiftwise.local');
        `,
	},
	{
		Index:       4,
		Description: "Create table: shifts.",
		Query: `
        CREATE TABLE IF NOT EXISTS shifts (
            id serial primary key,
            date date not null,
            start_time time not null,
            end_time time not null,
            employee_id int references users(id),
            location text,
            status text default 'pending',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       5,
		Description: "Create table: attendance.",
		Query: `
        CREATE TABLE IF NOT EXISTS attendance (
            id serial primary key,
            shift_id int references shifts(id),
            employee_id int not null references users(id),
            clock_in_time timestamp,
            clock_in_location text,
            clock_out_time timestamp,
            clock_out_location text,
            total_hours numeric(6,2),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       6,
		Description: "Create table: swap_requests.",
		Query: `
        CREATE TABLE IF NOT EXISTS swap_requests (
            id serial primary key,
            requested_by int not null references users(id),
            give_up_shift_id int not null references shifts(id),
            desired_shift_id int not null references shifts(id),
            status text default 'pending',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       7,
		Description: "Create table: coverup_shifts.",
		Query: `
        CREATE TABLE IF NOT EXISTS coverup_shifts (
            id serial primary key,
            shift_id int not null references shifts(id),
            posted_by int not null references users(id),
            claimed_by int references users(id),
            status text default 'O',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       8,
		Description: "Create table: leave_requests.",
		Query: `
        CREATE TABLE IF NOT EXISTS leave_requests (
            id serial primary key,
            employee_id int not null references users(id),
            shift_date date not null,
            shift_time text not null,
            location text,
            reason text,
            status text default 'pending',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       9,
		Description: "One leave request per employee, date and slot.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS leave_requests_employee_date_slot
        ON leave_requests (employee_id, shift_date, shift_time)
        WHERE deleted_at IS NULL;`,
	},
	{
		Index:       10,
		Description: "Create table: announcements.",
		Query: `
        CREATE TABLE IF NOT EXISTS announcements (
            id serial primary key,
            topic text not null,
            message text not null,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       11,
		Description: "Create table: announcement_recipients.",
		Query: `
        CREATE TABLE IF NOT EXISTS announcement_recipients (
            id serial primary key,
            announcement_id int not null references announcements(id),
            user_id int not null references users(id)
        );`,
	},
	{
		Index:       12,
		Description: "Create table: roles.",
		Query: `
        CREATE TABLE IF NOT EXISTS roles (
            id serial primary key,
            name text not null,
            pay_per_hour numeric(10,2),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       13,
		Description: "Create table: user_role_assignments.",
		Query: `
        CREATE TABLE IF NOT EXISTS user_role_assignments (
            id serial primary key,
            user_id int not null references users(id),
            role_id int not null references roles(id),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       14,
		Description: "Create table: payroll_runs.",
		Query: `
        CREATE TABLE IF NOT EXISTS payroll_runs (
            id serial primary key,
            start_date date not null,
            end_date date not null,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       15,
		Description: "Create table: payroll_details.",
		Query: `
        CREATE TABLE IF NOT EXISTS payroll_details (
            id serial primary key,
            payroll_run_id int not null references payroll_runs(id),
            employee_id int not null references users(id),
            worked_hours numeric(8,2),
            base_salary numeric(12,2),
            overtime_pay numeric(12,2),
            deductions numeric(12,2),
            net_salary numeric(12,2),
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       16,
		Description: "Create table: employee_inquiries.",
		Query: `
        CREATE TABLE IF NOT EXISTS employee_inquiries (
            id serial primary key,
            employee_id int not null references users(id),
            subject text not null,
            message text not null,
            answer text,
            status text default 'pending',
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
	{
		Index:       17,
		Description: "Create table: notifications.",
		Query: `
        CREATE TABLE IF NOT EXISTS notifications (
            id serial primary key,
            recipient_id int not null references users(id),
            notification_type text not null,
            message text not null,
            is_read boolean default false,
            created_at timestamp default now(),
            created_by int references users(id),
            updated_at timestamp,
            updated_by int references users(id),
            deleted_at timestamp,
            deleted_by int references users(id)
        );`,
	},
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
