package storage

import (
	"database/sql"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const catalogFile = "catalog.db"

const catalogSchema = `
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	law           TEXT NOT NULL,
	integrator    TEXT NOT NULL,
	timestamp     INTEGER NOT NULL,
	mass_solar    REAL NOT NULL,
	radius_rs     REAL NOT NULL,
	dt            REAL NOT NULL,
	steps         INTEGER NOT NULL,
	steps_taken   INTEGER NOT NULL,
	absorbed      INTEGER NOT NULL,
	absorbed_step INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS runs_by_time ON runs(timestamp);
`

// Catalog is a SQLite index of saved runs. Metrics stay in metadata.json.
type Catalog struct {
	db *sql.DB
}

func OpenCatalog(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(catalogSchema); err != nil {
		db.Close()
		return nil, err
	}
	return &Catalog{db: db}, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}

func (c *Catalog) Insert(m RunMetadata) error {
	_, err := c.db.Exec(`INSERT OR REPLACE INTO runs
		(id, law, integrator, timestamp, mass_solar, radius_rs, dt, steps, steps_taken, absorbed, absorbed_step)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Law, m.Integrator, m.Timestamp.UnixNano(), m.MassSolar, m.RadiusRs,
		m.Dt, m.Steps, m.StepsTaken, m.Absorbed, m.AbsorbedStep)
	return err
}

func (c *Catalog) Delete(id string) error {
	_, err := c.db.Exec(`DELETE FROM runs WHERE id = ?`, id)
	return err
}

// List returns indexed runs, newest first. Metrics are not populated.
func (c *Catalog) List() ([]RunMetadata, error) {
	rows, err := c.db.Query(`SELECT id, law, integrator, timestamp, mass_solar, radius_rs,
		dt, steps, steps_taken, absorbed, absorbed_step FROM runs ORDER BY timestamp DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	runs := make([]RunMetadata, 0)
	for rows.Next() {
		var (
			m  RunMetadata
			ts int64
		)
		if err := rows.Scan(&m.ID, &m.Law, &m.Integrator, &ts, &m.MassSolar, &m.RadiusRs,
			&m.Dt, &m.Steps, &m.StepsTaken, &m.Absorbed, &m.AbsorbedStep); err != nil {
			return nil, err
		}
		m.Timestamp = time.Unix(0, ts)
		runs = append(runs, m)
	}
	return runs, rows.Err()
}

func sortNewestFirst(runs []RunMetadata) {
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
}
