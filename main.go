package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"nouasseur-portal/config"
	"nouasseur-portal/database"
	"nouasseur-portal/importer"
	"nouasseur-portal/logger"
	"nouasseur-portal/util/common"
	"nouasseur-portal/util/random"
	"nouasseur-portal/web"
	"nouasseur-portal/web/service"
	"nouasseur-portal/web/session"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func initLogger() {
	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}
}

func openDatabase() *gorm.DB {
	db, err := database.OpenWithRetry(config.GetDatabaseConfig())
	if err != nil {
		logger.Fatal(err)
	}
	return db
}

// sessionSecret returns the configured signing secret, generating a
// throwaway one when none is set. Generated secrets invalidate all
// sessions on restart, so production must configure JWT_SECRET.
func sessionSecret() string {
	if secret := config.GetSessionSecret(); secret != "" {
		return secret
	}
	logger.Warning("JWT_SECRET not set; using a generated secret, sessions will not survive restarts")
	return random.Seq(48)
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())
	initLogger()

	db := openDatabase()
	defer database.Close(db)

	server := web.NewServer(db, session.NewManager(sessionSecret()))
	if err := server.Start(); err != nil {
		logger.Fatal("failed to start web server: ", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.Info("shutting down")
	if err := server.Stop(); err != nil {
		logger.Warning("shutdown error: ", err)
	}
}

func runImport(collection, path string) error {
	initLogger()
	db := openDatabase()
	defer database.Close(db)

	var count int
	var err error
	switch collection {
	case "members":
		count, err = importer.ImportMembers(db, path)
	case "events":
		count, err = importer.ImportEvents(db, path)
	case "directories":
		count, err = importer.ImportDirectories(db, path)
	default:
		return common.NewErrorf("unknown collection %q (want members, events or directories)", collection)
	}
	if err != nil {
		return err
	}
	fmt.Printf("imported %d rows into %s\n", count, collection)
	return nil
}

func runSeedAdmin(username, email, password string) error {
	initLogger()
	db := openDatabase()
	defer database.Close(db)

	user, err := service.NewUserService(db).Upsert(username, email, password)
	if err != nil {
		return err
	}
	fmt.Printf("admin user %q ready (id %d)\n", user.Username, user.Id)
	return nil
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   config.GetName(),
		Short: "Nouasseur community portal",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Start the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	importCmd := &cobra.Command{
		Use:   "import <members|events|directories> <file.xlsx>",
		Short: "Replace a collection from a spreadsheet",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(args[0], args[1])
		},
	}

	var seedUsername, seedEmail, seedPassword string
	seedCmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create or reset the bootstrap admin user",
		RunE: func(cmd *cobra.Command, args []string) error {
			if seedPassword == "" {
				return common.NewError("--password is required")
			}
			return runSeedAdmin(seedUsername, seedEmail, seedPassword)
		},
	}
	seedCmd.Flags().StringVar(&seedUsername, "username", "admin", "admin username")
	seedCmd.Flags().StringVar(&seedEmail, "email", "admin@nouasseur.org", "admin email")
	seedCmd.Flags().StringVar(&seedPassword, "password", "", "admin password")

	rootCmd.AddCommand(runCmd, importCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
