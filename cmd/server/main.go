package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"footscan-chat/internal/config"
	"footscan-chat/internal/logging"

	_ "github.com/lib/pq"
)

var (
	configPath string

	cfg    config.Config
	logger *zap.Logger
)

// rootCmd serves the chat endpoint when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "footscan-chat",
	Short: "Chat assistant endpoint of the foot-scan backend",
	Long: `footscan-chat serves the assistant chat endpoint used by the foot-scan app.

POST /functions/v1/antopic_chat (alias /api/chat) answers with a JSON reply,
or with a text/event-stream feed when the request sets "stream": true.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger, err = logging.New(cfg.Logging)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the chat endpoint",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the public schema tables in DATABASE_URL",
	Args:  cobra.NoArgs,
	RunE:  runMigrate,
}

var checkSchemaCmd = &cobra.Command{
	Use:   "check-schema",
	Short: "Verify that every declared foreign key exists in DATABASE_URL",
	Args:  cobra.NoArgs,
	RunE:  runCheckSchema,
}

var createUserCmd = &cobra.Command{
	Use:   "create-user",
	Short: "Create an auth account through insert_user_to_auth",
	Long: `Calls the insert_user_to_auth stored procedure and prints the new id.

The password is read from AUTH_PASSWORD so it does not end up in shell history.`,
	Args: cobra.NoArgs,
	RunE: runCreateUser,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CHAT_CONFIG"), "path to a YAML config file")
	createUserCmd.Flags().String("email", "", "account email")
	_ = createUserCmd.MarkFlagRequired("email")

	rootCmd.AddCommand(serveCmd, migrateCmd, checkSchemaCmd, createUserCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
