package answer

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// FixtureSchema is a small EMPLOYEE/DEPARTMENT data set the answer can run against.
const FixtureSchema = `
CREATE TABLE DEPARTMENT (
	DEPARTMENT_ID INTEGER PRIMARY KEY,
	DEPARTMENT_NAME TEXT NOT NULL
);
CREATE TABLE EMPLOYEE (
	EMP_ID INTEGER PRIMARY KEY,
	FIRST_NAME TEXT NOT NULL,
	LAST_NAME TEXT NOT NULL,
	DOB DATE NOT NULL,
	GENDER TEXT,
	DEPARTMENT_ID INTEGER REFERENCES DEPARTMENT(DEPARTMENT_ID)
);
INSERT INTO DEPARTMENT VALUES (1, 'HR'), (2, 'Finance'), (3, 'Engineering');
INSERT INTO EMPLOYEE VALUES
	(1, 'John', 'Williams', '1980-05-15', 'Male', 3),
	(2, 'Sarah', 'Johnson', '1990-07-20', 'Female', 2),
	(3, 'Michael', 'Smith', '1985-02-10', 'Male', 3),
	(4, 'Emily', 'Brown', '1992-11-30', 'Female', 1),
	(5, 'David', 'Jones', '1988-09-05', 'Male', 2),
	(6, 'Olivia', 'Davis', '1995-04-12', 'Female', 1);
`

// OpenMemoryDB opens a private in-memory SQLite database. The caller
// must have the sqlite3 driver registered.
func OpenMemoryDB() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// every new connection to :memory: is a new database
	db.SetMaxOpenConns(1)

	return db, nil
}

// Result is the tabular output of running the answer.
type Result struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Verify loads FixtureSchema into db and runs FinalQuery against it.
// db should be an empty database; an in-memory SQLite one works.
func Verify(ctx context.Context, db *sql.DB) (Result, error) {
	if _, err := db.ExecContext(ctx, FixtureSchema); err != nil {
		return Result{}, fmt.Errorf("load fixture: %w", err)
	}

	rows, err := db.QueryContext(ctx, FinalQuery)
	if err != nil {
		return Result{}, fmt.Errorf("run query: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("failed to close rows", "error", err)
		}
	}()

	columns, err := rows.Columns()
	if err != nil {
		return Result{}, fmt.Errorf("read columns: %w", err)
	}

	result := Result{Columns: columns}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return Result{}, fmt.Errorf("scan row: %w", err)
		}

		row := make([]string, len(columns))
		for i, v := range values {
			if v.Valid {
				row[i] = v.String
			} else {
				row[i] = "NULL"
			}
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return Result{}, fmt.Errorf("iterate rows: %w", err)
	}

	return result, nil
}
