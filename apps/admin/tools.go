package main

import (
	"fmt"

	echoapi "github.com/accredipro/institute/apps/api/echo"
	"github.com/accredipro/institute/core/registry"
)

// registryCheck prints a summary of each mini diploma and fails on any registry problem.
func (cli *commandLine) registryCheck() error {
	for _, e := range registry.All() {
		s := e.Summary()
		_, _ = fmt.Fprintf(cli.out, "%s\t%d lessons (%d min)\t%d emails\t%d dms\n",
			s.Slug, s.LessonCount, s.TotalMinutes, s.NurtureEmails, s.DMs)
	}
	if err := registry.Validate(); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cli.out, "registry OK")
	return nil
}

func (cli *commandLine) token(subject, name, email string, isAdmin bool) error {
	token, err := echoapi.GenerateToken(cli.conf, echoapi.NewClaims(cli.conf, subject, name, email, isAdmin))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cli.out, token)
	return nil
}
