package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"footscan-chat/internal/db"
	"footscan-chat/pkg"
)

var errNoDatabase = errors.New("DATABASE_URL must be set")

func openDatabase(ctx context.Context) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, errNoDatabase
	}
	return db.Open(ctx, cfg.DatabaseURL)
}

func runMigrate(cmd *cobra.Command, args []string) error {
	conn, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer conn.Close()
	if err := db.Migrate(cmd.Context(), conn); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("schema applied", zap.Int("tables", len(pkg.Tables)))
	return nil
}

func runCheckSchema(cmd *cobra.Command, args []string) error {
	conn, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer conn.Close()
	missing, err := db.NewRepository(conn).MissingForeignKeys(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to inspect constraints: %w", err)
	}
	for _, rel := range missing {
		fmt.Fprintf(cmd.OutOrStdout(), "missing %s: %s(%s) -> %s(%s)\n",
			rel.ForeignKeyName, rel.Table, strings.Join(rel.Columns, ", "),
			rel.ReferencedRelation, strings.Join(rel.ReferencedColumns, ", "))
	}
	if len(missing) > 0 {
		return fmt.Errorf("%d of %d foreign keys missing", len(missing), len(pkg.Relationships))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "all %d foreign keys present\n", len(pkg.Relationships))
	return nil
}

func runCreateUser(cmd *cobra.Command, args []string) error {
	email, _ := cmd.Flags().GetString("email")
	password := os.Getenv("AUTH_PASSWORD")
	if strings.TrimSpace(email) == "" || password == "" {
		return errors.New("--email and AUTH_PASSWORD are required")
	}
	conn, err := openDatabase(cmd.Context())
	if err != nil {
		return err
	}
	defer conn.Close()
	id, err := db.NewRepository(conn).InsertUserToAuth(cmd.Context(), pkg.InsertUserToAuthArgs{Email: email, Password: password})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), id)
	return nil
}
