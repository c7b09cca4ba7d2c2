package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"github.com/robfig/cron/v3"

	echoapi "github.com/accredipro/institute/apps/api/echo"
	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/registry"
	"github.com/accredipro/institute/core/resource"
	appfs "github.com/accredipro/institute/fs"
	emailsvc "github.com/accredipro/institute/services/email"
	logsvc "github.com/accredipro/institute/services/logger"
	"github.com/accredipro/institute/storage/database"
	inmemdb "github.com/accredipro/institute/storage/database/inmem"
	sqlxrepos "github.com/accredipro/institute/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	defer logger.Close()

	dbLogger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "DB : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	// set up saved widget state storage
	var stateRepo resource.StateRepository
	if conf.Database.Engine == database.EngineMemory {
		dbLogger.Warn("using the in-memory engine: saved widget states are lost on restart")
		stateRepo = inmemdb.NewWidgetStateRepository()
	} else {
		db, err := setUpDB(conf)
		if err != nil {
			logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
		}
		defer func() {
			if err = db.Close(); err != nil {
				dbLogger.Fatal("Failed to close", err)
			}
		}()
		stateRepo = sqlxrepos.NewWidgetStateRepository(db)
	}

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf, logger)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	resource.InitValidators(validate, translator)

	core.ParseEmailTemplates(appfs.FS, conf, logger)

	if err := registry.Validate(); err != nil {
		logger.Warn(fmt.Sprintf("mini diploma registry: %v", err), err)
	}

	resourceSvc := resource.NewService(stateRepo, logger, validate, conf)

	// =========================================================================
	// Start Purge Job

	if retention := conf.Resource.StateRetention; retention > 0 {
		scheduler := cron.New()
		_, err := scheduler.AddFunc(conf.Resource.PurgeSchedule, func() {
			n, err := resourceSvc.PurgeExpired(context.Background(), retention)
			if err != nil {
				dbLogger.Error(fmt.Sprintf("purging widget states: %v", err), err)
				return
			}
			dbLogger.Info(fmt.Sprintf("purged %d widget states older than %v", n, retention))
		})
		if err != nil {
			logger.Fatal(fmt.Sprintf("scheduling purge %q: %v", conf.Resource.PurgeSchedule, err), err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("database").Set(conf.Database.Engine)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.ServerDeps{
			Conf:        conf,
			Logger:      logger,
			ResourceSvc: resourceSvc,
			MailSvc:     mailSvc,
			Validate:    validate,
			Translator:  translator,
		},
	)

	go func() {
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err := <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
