package tui

import (
	"fmt"
	"strings"

	"schedfinder/pkg/view"

	"github.com/charmbracelet/huh"
)

func runCompareTUI(sess *session) error {
	var names []string

	for {
		var opts []huh.Option[string]
		for _, n := range sess.cfg.SavedStudents {
			opts = append(opts, huh.NewOption(n, n).Selected(contains(names, n)))
		}
		for _, n := range names {
			if !contains(sess.cfg.SavedStudents, n) {
				opts = append(opts, huh.NewOption(n, n).Selected(true))
			}
		}

		if len(opts) > 0 {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewMultiSelect[string]().
						Title("Who should be compared?").
						Description("Space = toggle, Enter = confirm.").
						Options(opts...).
						Value(&names),
				),
			).WithTheme(GetTheme())
			if err := form.Run(); err != nil {
				return err
			}
		}

		more := len(names) < 2
		if !more {
			ask := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title(fmt.Sprintf("Add someone else? (%d selected)", len(names))).
						Value(&more),
				),
			).WithTheme(GetTheme())
			if err := ask.Run(); err != nil {
				return err
			}
		}
		if !more {
			break
		}

		st, err := pickStudent(sess, "Add a student", nil)
		if err != nil {
			return err
		}
		if !contains(names, st.Name) {
			names = append(names, st.Name)
		}
	}

	day, err := pickDay(sess)
	if err != nil {
		return err
	}

	_, tt, err := sess.svc.Compare(names, day)
	if err != nil {
		return err
	}
	d, err := view.BuildDay(tt, day, sess.now())
	if err != nil {
		return err
	}

	printDay(fmt.Sprintf("Shared classes · %s · %s", strings.Join(names, ", "), d.Title), d)
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
