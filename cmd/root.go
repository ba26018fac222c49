package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"stockroom/internal/config"
	"stockroom/internal/core/container"
	"stockroom/internal/core/logger"
	"stockroom/internal/core/routes"
	"stockroom/internal/database"
	"stockroom/internal/middleware"
	"stockroom/internal/navigation"
	"stockroom/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the stockroom HTTP API.",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.NewLogger()
	defer log.Sync()

	db, err := database.NewPostgresConnection(cmd.Context(), cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()
	log.Info("Connected to the database")

	if migrate, _ := cmd.Flags().GetBool("migrate"); migrate {
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsDir, log); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}
	}

	c, err := container.NewAppContainer(cmd.Context(), db, cfg, log)
	if err != nil {
		return err
	}
	go c.RateLimiter.Run(cmd.Context())

	validation.Setup()
	router := gin.New()
	router.Use(
		gin.Logger(),
		middleware.RequestID(),
		middleware.RecoveryMiddleware(log),
		middleware.TimeoutMiddleware(cfg.RequestTimeout),
	)
	routes.RegisterUtilityRoutes(router, c)
	routes.RegisterProtectedRoutes(router, c)

	return serve(cmd.Context(), router, cfg.AppHost, log)
}

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run migrations manually.",
	Long:  `Applies pending migrations and exits. serve runs them too unless --migrate=false.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		migrationDir, _ := cmd.Flags().GetString("dir")
		if migrationDir == "" {
			migrationDir = cfg.MigrationsDir
		}

		if err := database.RunMigrations(cfg.DatabaseURL, migrationDir, logger.NewLogger()); err != nil {
			return fmt.Errorf("migrate database: %w", err)
		}

		return nil
	},
}

var GuardCmd = &cobra.Command{
	Use:   "guard [path...]",
	Short: "Evaluate client navigation rules against the API.",
	Long:  `Resolves each path against the client route table and prints where the navigation guard sends the session.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		apiURL, _ := cmd.Flags().GetString("api")
		token, _ := cmd.Flags().GetString("token")
		timeout, _ := cmd.Flags().GetDuration("timeout")

		log := logger.NewLogger()
		defer log.Sync()

		session := navigation.NewSession(token)
		guard := navigation.NewGuard(navigation.DefaultRoutes(), navigation.NewUserClient(apiURL, timeout), log)

		for _, path := range args {
			decision := guard.Navigate(cmd.Context(), session, path)
			if decision.Allowed() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tallow\t(%s)\n", path, decision.Rule)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tredirect %s\t(%s)\n", path, decision.Redirect, decision.Rule)
		}

		return nil
	},
}

func serve(ctx context.Context, handler http.Handler, addr string, log *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func init() {
	ServeCmd.Flags().Bool("migrate", true, "Apply pending migrations before serving")
	MigrateCmd.Flags().String("dir", "", "Directory containing the migration files (defaults to MIGRATIONS_DIR)")
	GuardCmd.Flags().String("api", "http://localhost:8080", "Base URL of the stockroom API")
	GuardCmd.Flags().String("token", "", "Session bearer token")
	GuardCmd.Flags().Duration("timeout", 5*time.Second, "Timeout of the current user request")
}

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "stockroom",
		Short:        "Stockroom inventory service",
		Long:         "Stockroom inventory service. Without a subcommand it behaves like serve.",
		SilenceUsage: true,
		RunE:         runServe,
	}
	rootCmd.Flags().Bool("migrate", true, "Apply pending migrations before serving")

	rootCmd.AddCommand(ServeCmd, MigrateCmd, GuardCmd)
	return rootCmd
}

func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
