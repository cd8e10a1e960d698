package main

import (
	"fmt"
	"os"

	"github.com/GuilleEguia/taskmanager/internal/cli"
	"github.com/GuilleEguia/taskmanager/internal/client"
	"github.com/GuilleEguia/taskmanager/internal/config"
	"github.com/GuilleEguia/taskmanager/internal/repository"
	"github.com/GuilleEguia/taskmanager/internal/service"
	"github.com/GuilleEguia/taskmanager/internal/session"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Local .env overrides are optional.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load configuration:", err)
		os.Exit(1)
	}

	log := setupLogger(cfg.LogLevel)

	db, err := repository.InitDB(cfg.DBPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not open session storage:", err)
		os.Exit(1)
	}
	defer db.Close()

	sessions := repository.NewSessionRepository(db)
	cache := repository.NewTaskCacheRepository(db)

	store, err := session.NewStore(sessions, cache, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not restore session:", err)
		os.Exit(1)
	}

	api := client.NewTaskManagerClient(cfg.APIBaseURL, store, log)

	profileService := service.NewProfileService(api, store, log)
	projectService := service.NewProjectService(api, profileService, store, log)
	taskService := service.NewTaskService(api, projectService, profileService, store, cfg.PageSize, log)
	authService := service.NewAuthService(api, store, log)

	app := &cli.App{
		Store:    store,
		Auth:     authService,
		Tasks:    taskService,
		Projects: projectService,
		Profile:  profileService,
		Config:   cfg,
		Log:      log,
		Out:      os.Stdout,
		In:       os.Stdin,
	}

	if err := cli.NewRootCommand(app).Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string) *logrus.Entry {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.WarnLevel
	}
	log.SetLevel(parsed)

	return logrus.NewEntry(log)
}
