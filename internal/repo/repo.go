// Package repo holds the storage implementations: Postgres for deployments,
// an in-memory seed-backed store for local runs and tests.
package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/thibaultthi/Mechanical-Engineer-Helper/internal/material"
)

// UserRepository stores admin accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
}

type PostgresUserRepository struct {
	db *sql.DB
}

func NewPostgresUserDB(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresUserRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

const materialColumns = `name, category, density, youngs_modulus, yield_strength,
	tensile_strength, poisson_ratio, shear_modulus, thermal_expansion,
	melting_point_c, max_service_temp_c, elongation_pct`

// PostgresMaterialRepository implements material.Repository on database/sql.
// Optional properties map to nullable columns.
type PostgresMaterialRepository struct {
	db *sql.DB
}

func NewPostgresMaterialDB(db *sql.DB) *PostgresMaterialRepository {
	return &PostgresMaterialRepository{db: db}
}

// EnsureSchema creates the materials table when missing; used by cmd/seed so
// a fresh database works without hand-run migrations.
func (r *PostgresMaterialRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS materials (
		name TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		density DOUBLE PRECISION,
		youngs_modulus DOUBLE PRECISION,
		yield_strength DOUBLE PRECISION,
		tensile_strength DOUBLE PRECISION,
		poisson_ratio DOUBLE PRECISION,
		shear_modulus DOUBLE PRECISION,
		thermal_expansion DOUBLE PRECISION,
		melting_point_c DOUBLE PRECISION,
		max_service_temp_c DOUBLE PRECISION,
		elongation_pct DOUBLE PRECISION
	)`)
	return err
}

func scanMaterial(row interface{ Scan(...any) error }) (material.Material, error) {
	var m material.Material
	var f [10]sql.NullFloat64
	err := row.Scan(&m.Name, &m.Category, &f[0], &f[1], &f[2], &f[3], &f[4], &f[5], &f[6], &f[7], &f[8], &f[9])
	if err != nil {
		return material.Material{}, err
	}
	dst := []**float64{
		&m.Density, &m.YoungsModulus, &m.YieldStrength, &m.TensileStrength,
		&m.PoissonRatio, &m.ShearModulus, &m.ThermalExpansion,
		&m.MeltingPointC, &m.MaxServiceTempC, &m.ElongationPct,
	}
	for i, d := range dst {
		if f[i].Valid {
			v := f[i].Float64
			*d = &v
		}
	}
	return m, nil
}

func nullable(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func args(m material.Material) []any {
	return []any{
		m.Name, m.Category,
		nullable(m.Density), nullable(m.YoungsModulus), nullable(m.YieldStrength),
		nullable(m.TensileStrength), nullable(m.PoissonRatio), nullable(m.ShearModulus),
		nullable(m.ThermalExpansion), nullable(m.MeltingPointC),
		nullable(m.MaxServiceTempC), nullable(m.ElongationPct),
	}
}

func (r *PostgresMaterialRepository) List(ctx context.Context, category string) ([]material.Material, error) {
	query := "SELECT " + materialColumns + " FROM materials"
	var rows *sql.Rows
	var err error
	if category != "" {
		rows, err = r.db.QueryContext(ctx, query+" WHERE category=$1 ORDER BY name", category)
	} else {
		rows, err = r.db.QueryContext(ctx, query+" ORDER BY name")
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresMaterialRepository) Get(ctx context.Context, name string) (material.Material, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+materialColumns+" FROM materials WHERE name=$1", name)
	m, err := scanMaterial(row)
	if err == sql.ErrNoRows {
		return material.Material{}, material.ErrNotFound
	}
	return m, err
}

func (r *PostgresMaterialRepository) ByNames(ctx context.Context, names []string) ([]material.Material, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+materialColumns+" FROM materials WHERE name = ANY($1) ORDER BY name",
		pq.Array(names))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collect(rows)
}

func (r *PostgresMaterialRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT category FROM materials ORDER BY category")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresMaterialRepository) Create(ctx context.Context, m material.Material) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO materials ("+materialColumns+") VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)",
		args(m)...)
	return err
}

func (r *PostgresMaterialRepository) Update(ctx context.Context, m material.Material) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE materials SET category=$2, density=$3, youngs_modulus=$4, yield_strength=$5,
		tensile_strength=$6, poisson_ratio=$7, shear_modulus=$8, thermal_expansion=$9,
		melting_point_c=$10, max_service_temp_c=$11, elongation_pct=$12 WHERE name=$1`,
		args(m)...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", material.ErrNotFound, m.Name)
	}
	return nil
}

func (r *PostgresMaterialRepository) Upsert(ctx context.Context, m material.Material) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO materials (`+materialColumns+`) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (name) DO UPDATE SET category=EXCLUDED.category, density=EXCLUDED.density,
		youngs_modulus=EXCLUDED.youngs_modulus, yield_strength=EXCLUDED.yield_strength,
		tensile_strength=EXCLUDED.tensile_strength, poisson_ratio=EXCLUDED.poisson_ratio,
		shear_modulus=EXCLUDED.shear_modulus, thermal_expansion=EXCLUDED.thermal_expansion,
		melting_point_c=EXCLUDED.melting_point_c, max_service_temp_c=EXCLUDED.max_service_temp_c,
		elongation_pct=EXCLUDED.elongation_pct`,
		args(m)...)
	return err
}

func collect(rows *sql.Rows) ([]material.Material, error) {
	var out []material.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
