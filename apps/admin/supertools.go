package main

import (
	"context"
	"fmt"

	"github.com/accredipro/institute/core/supertools"
)

func (cli *commandLine) search(ctx context.Context, query string) error {
	panel, err := cli.getPanel()
	if err != nil {
		return err
	}
	users, err := panel.Search(ctx, query)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		_, _ = fmt.Fprintln(cli.out, "no users found")
		return nil
	}
	for _, u := range users {
		_, _ = fmt.Fprintf(cli.out, "%s\t%s\t%s\t%d enrollments\n", u.ID, u.Email, u.Name, len(u.Enrollments))
	}
	return nil
}

func (cli *commandLine) show(ctx context.Context, userID string) error {
	panel, err := cli.getPanel()
	if err != nil {
		return err
	}
	u, err := panel.Select(ctx, userID)
	if err != nil {
		return err
	}
	cli.printUser(u)
	return nil
}

func (cli *commandLine) printUser(u supertools.User) {
	_, _ = fmt.Fprintf(cli.out, "%s <%s> [%s] %s\n", u.Name, u.Email, u.ID, u.Role)
	_, _ = fmt.Fprintln(cli.out, "Enrollments:")
	if len(u.Enrollments) == 0 {
		_, _ = fmt.Fprintln(cli.out, "  none")
	}
	for _, e := range u.Enrollments {
		_, _ = fmt.Fprintf(cli.out, "  %s\t%s\t%.0f%% (%d/%d lessons)\t%s\n",
			e.Course.ID, e.Course.Title, e.Progress, e.CompletedLessons, e.TotalLessons, e.Status)
	}
	_, _ = fmt.Fprintln(cli.out, "Pods:")
	if len(u.PodMemberships) == 0 {
		_, _ = fmt.Fprintln(cli.out, "  none")
	}
	for _, m := range u.PodMemberships {
		_, _ = fmt.Fprintf(cli.out, "  %s\t%s (%s)\n", m.ID, m.Pod.Name, m.Role)
	}
}

func (cli *commandLine) modules(ctx context.Context, courseID string) error {
	panel, err := cli.getPanel()
	if err != nil {
		return err
	}
	mods, err := panel.Modules(ctx, courseID)
	if err != nil {
		return err
	}
	for _, m := range mods {
		_, _ = fmt.Fprintf(cli.out, "%2d. %s (%d lessons) [%s]\n", m.Order, m.Title, m.LessonCount, m.ID)
	}
	return nil
}

// selectUser loads userID into the panel so the following action targets it.
func (cli *commandLine) selectUser(ctx context.Context, userID string) (*supertools.Panel, error) {
	panel, err := cli.getPanel()
	if err != nil {
		return nil, err
	}
	if _, err = panel.Select(ctx, userID); err != nil {
		return nil, err
	}
	return panel, nil
}

// afterMutation prints the user as re-fetched by the panel.
func (cli *commandLine) afterMutation(panel *supertools.Panel, err error) error {
	if err != nil {
		return err
	}
	if u, ok := panel.Selected(); ok {
		cli.printUser(u)
	}
	return nil
}

func (cli *commandLine) courseAction(ctx context.Context, action, userID, courseID string) error {
	panel, err := cli.selectUser(ctx, userID)
	if err != nil {
		return err
	}
	switch action {
	case "grant":
		err = panel.GrantAccess(ctx, courseID)
	case "complete":
		err = panel.CompleteCourse(ctx, courseID)
	case "reset":
		err = panel.ResetCourse(ctx, courseID)
	default:
		return fmt.Errorf("%q: no such course action", action)
	}
	return cli.afterMutation(panel, err)
}

func (cli *commandLine) completeToModule(ctx context.Context, userID, courseID, moduleID string) error {
	panel, err := cli.selectUser(ctx, userID)
	if err != nil {
		return err
	}
	return cli.afterMutation(panel, panel.CompleteToModule(ctx, courseID, moduleID))
}

func (cli *commandLine) removeFromPod(ctx context.Context, userID, membershipID string) error {
	panel, err := cli.selectUser(ctx, userID)
	if err != nil {
		return err
	}
	if u, _ := panel.Selected(); !hasMembership(u, membershipID) {
		return fmt.Errorf("user %s has no pod membership %s", userID, membershipID)
	}
	return cli.afterMutation(panel, panel.RemoveFromPod(ctx, membershipID))
}

func hasMembership(u supertools.User, membershipID string) bool {
	_, ok := u.Membership(membershipID)
	return ok
}
