package main

import (
	"log"
	"os"

	"github.com/accredipro/institute/core"
	logsvc "github.com/accredipro/institute/services/logger"
)

func main() {
	conf := core.NewConfig()
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stderr, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)

	cli := commandLine{
		conf:   conf,
		logger: logger,
		out:    os.Stdout,
	}
	err := cli.run(os.Args)
	if cli.db != nil {
		if cErr := cli.db.Close(); cErr != nil {
			logger.Error("closing database", cErr)
		}
	}
	logger.Close()
	if err != nil {
		if err != errHelp {
			logger.Error("admin: "+err.Error(), err)
		}
		os.Exit(1)
	}
}
