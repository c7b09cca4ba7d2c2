package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"syscall"

	"github.com/jmoiron/sqlx"
	"golang.org/x/term"

	"github.com/accredipro/institute/core"
	"github.com/accredipro/institute/core/supertools"
	supertoolssvc "github.com/accredipro/institute/services/supertools"
	"github.com/accredipro/institute/storage/database"
)

var (
	readPasswordFunc = term.ReadPassword // mockable
	openDBFunc       = database.Open     // mockable

	errHelp = errors.New("help provided")
)

type commandLine struct {
	conf    *core.Config
	logger  core.Logger
	out     io.Writer
	backend supertools.Backend // built from conf on first use when nil
	panel   *supertools.Panel
	db      *sqlx.DB
}

func (cli *commandLine) printUsage() {
	lines := []string{
		"Usage:",
		"  search -q QUERY                                   - find users by name or email",
		"  show -user ID                                     - show a user's enrollments and pods",
		"  modules -course ID                                - list a course's modules",
		"  grant -user ID -course ID                         - enroll a user in a course",
		"  complete -user ID -course ID                      - mark a course complete",
		"  reset -user ID -course ID                         - reset a user's course progress",
		"  complete-to-module -user ID -course ID -module ID - complete every lesson up to a module",
		"  remove-pod -user ID -membership ID                - remove a user from a pod",
		"  registry-check                                    - validate the mini diploma registry",
		"  token -subject ID [-admin]                        - mint an API token",
		"  migrate COMMAND [ARGS]                            - run database migrations",
	}
	for _, l := range lines {
		_, _ = fmt.Fprintln(cli.out, l)
	}
}

func (cli *commandLine) newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cli.out)
	return fs
}

// parse parses args into fs and asks for help unless every required flag is set.
func parse(fs *flag.FlagSet, args []string, required ...*string) error {
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return errHelp
		}
		return err
	}
	for _, r := range required {
		if strings.TrimSpace(*r) == "" {
			fs.Usage()
			return errHelp
		}
	}
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}
	ctx := context.Background()
	cmd, args := args[1], args[2:]

	switch cmd {
	case "search":
		fs := cli.newFlagSet(cmd)
		q := fs.String("q", "", "Name or email to search for.")
		if err := parse(fs, args, q); err != nil {
			return err
		}
		return cli.search(ctx, *q)

	case "show":
		fs := cli.newFlagSet(cmd)
		userID := fs.String("user", "", "The user's id.")
		if err := parse(fs, args, userID); err != nil {
			return err
		}
		return cli.show(ctx, *userID)

	case "modules":
		fs := cli.newFlagSet(cmd)
		courseID := fs.String("course", "", "The course's id.")
		if err := parse(fs, args, courseID); err != nil {
			return err
		}
		return cli.modules(ctx, *courseID)

	case "grant", "complete", "reset":
		fs := cli.newFlagSet(cmd)
		userID := fs.String("user", "", "The user's id.")
		courseID := fs.String("course", "", "The course's id.")
		if err := parse(fs, args, userID, courseID); err != nil {
			return err
		}
		return cli.courseAction(ctx, cmd, *userID, *courseID)

	case "complete-to-module":
		fs := cli.newFlagSet(cmd)
		userID := fs.String("user", "", "The user's id.")
		courseID := fs.String("course", "", "The course's id.")
		moduleID := fs.String("module", "", "The last module to complete. The course's modules are listed when missing.")
		if err := parse(fs, args, userID, courseID); err != nil {
			return err
		}
		if *moduleID == "" {
			if err := cli.modules(ctx, *courseID); err != nil {
				return err
			}
			fs.Usage()
			return errHelp
		}
		return cli.completeToModule(ctx, *userID, *courseID, *moduleID)

	case "remove-pod":
		fs := cli.newFlagSet(cmd)
		userID := fs.String("user", "", "The user's id.")
		membershipID := fs.String("membership", "", "The pod membership's id.")
		if err := parse(fs, args, userID, membershipID); err != nil {
			return err
		}
		return cli.removeFromPod(ctx, *userID, *membershipID)

	case "registry-check":
		return cli.registryCheck()

	case "token":
		fs := cli.newFlagSet(cmd)
		subject := fs.String("subject", "", "The token's subject (user id).")
		name := fs.String("name", "", "The subject's name.")
		email := fs.String("email", "", "The subject's email.")
		isAdmin := fs.Bool("admin", false, "Grant admin access.")
		if err := parse(fs, args, subject); err != nil {
			return err
		}
		return cli.token(*subject, *name, *email, *isAdmin)

	case "migrate":
		if len(args) == 0 {
			_, _ = fmt.Fprintln(cli.out, "Usage: migrate COMMAND [ARGS] (up, up-by-one, up-to, down, down-to, redo, reset, status, version, create, fix)")
			return errHelp
		}
		return cli.migrate(args)

	default:
		cli.printUsage()
		return errHelp
	}
}

// getPanel builds the super tools panel, prompting for the backend API token when none is configured.
func (cli *commandLine) getPanel() (*supertools.Panel, error) {
	if cli.panel != nil {
		return cli.panel, nil
	}
	if cli.backend == nil {
		conf := cli.conf.SuperTools
		if conf.APIToken == "" {
			_, _ = fmt.Fprint(cli.out, "Enter API token:")
			token, err := readPasswordFunc(syscall.Stdin)
			_, _ = fmt.Fprintln(cli.out)
			if err != nil {
				return nil, err
			}
			if conf.APIToken = strings.TrimSpace(string(token)); conf.APIToken == "" {
				return nil, errors.New("an API token is required")
			}
		}
		cli.backend = supertoolssvc.NewClient(conf)
	}
	cli.panel = supertools.NewPanel(cli.backend, supertools.NewConsoleToaster(cli.out), cli.logger)
	return cli.panel, nil
}
