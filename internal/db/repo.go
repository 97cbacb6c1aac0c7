package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"footscan-chat/pkg"
)

// Repository wraps the few database operations the service needs.  The chat
// endpoint itself never touches it; it backs readiness and the schema
// commands.
type Repository struct {
	DB *sql.DB
}

// NewRepository constructs a new Repository from an existing sql.DB.
// The caller is responsible for managing the DB connection lifecycle.
func NewRepository(db *sql.DB) *Repository { return &Repository{DB: db} }

// Open connects to Postgres and verifies the connection.
func Open(ctx context.Context, url string) (*sql.DB, error) {
	conn, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return conn, nil
}

// Ping reports whether the database is reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// MissingForeignKeys returns the declared relationships whose constraint
// does not exist in the connected database.
func (r *Repository) MissingForeignKeys(ctx context.Context) ([]pkg.Relationship, error) {
	names := make([]string, 0, len(pkg.Relationships))
	for _, rel := range pkg.Relationships {
		names = append(names, rel.ForeignKeyName)
	}
	rows, err := r.DB.QueryContext(ctx,
		`SELECT conname
         FROM pg_constraint
         WHERE contype = 'f'
           AND conname = ANY($1)`,
		pq.Array(names),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	present := make(map[string]bool, len(names))
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		present[name] = true
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return missingRelationships(present), nil
}

func missingRelationships(present map[string]bool) []pkg.Relationship {
	var missing []pkg.Relationship
	for _, rel := range pkg.Relationships {
		if !present[rel.ForeignKeyName] {
			missing = append(missing, rel)
		}
	}
	return missing
}

// InsertUserToAuth calls the insert_user_to_auth stored procedure, which
// creates an account with the auth provider and returns its id.  How the
// password is handled is up to the procedure.
func (r *Repository) InsertUserToAuth(ctx context.Context, args pkg.InsertUserToAuthArgs) (uuid.UUID, error) {
	var raw string
	err := r.DB.QueryRowContext(ctx,
		`SELECT insert_user_to_auth($1, $2)`,
		args.Email, args.Password,
	).Scan(&raw)
	if err != nil {
		return uuid.Nil, err
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert_user_to_auth returned %q: %w", raw, err)
	}
	return id, nil
}
