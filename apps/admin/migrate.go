package main

import (
	"github.com/accredipro/institute/storage/database"
)

var runMigrationsFunc = database.RunMigrations // mockable

func (cli *commandLine) migrate(args []string) error {
	if cli.db == nil {
		db, err := openDBFunc(cli.conf)
		if err != nil {
			return err
		}
		cli.db = db
	}
	return runMigrationsFunc(cli.db, args[0], args[1:]...)
}
