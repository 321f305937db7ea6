package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"schedfinder/pkg/exporter"
	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const searchAgain = "\x00search"

var statusStyles = map[string]lipgloss.Style{
	"Now":   lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
	"Next":  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
	"Done":  mutedStyle,
	"Later": lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
}

// pickStudent offers the saved names first and falls back to a directory
// search.
func pickStudent(sess *session, title string, saved []string) (timetable.Student, error) {
	choice := searchAgain
	if len(saved) > 0 {
		var opts []huh.Option[string]
		for _, n := range saved {
			opts = append(opts, huh.NewOption(n, n))
		}
		opts = append(opts, huh.NewOption("🔍 Someone else...", searchAgain))

		form := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(title).
					Options(opts...).
					Value(&choice),
			),
		).WithTheme(GetTheme())
		if err := form.Run(); err != nil {
			return timetable.Student{}, err
		}
	}

	if choice != searchAgain {
		return sess.svc.Student(choice)
	}

	for {
		var query string
		queryForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Search for a name").
					Description("Any part of the name works, case does not matter.").
					Value(&query).
					Validate(func(s string) error {
						if strings.TrimSpace(s) == "" {
							return fmt.Errorf("please type part of a name")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())
		if err := queryForm.Run(); err != nil {
			return timetable.Student{}, err
		}

		found, err := sess.svc.Search(query)
		if err != nil {
			return timetable.Student{}, err
		}
		if len(found) == 0 {
			fmt.Println(errorStyle.Render(fmt.Sprintf("No names matching '%s'. Try again.", query)))
			continue
		}

		var opts []huh.Option[string]
		for _, st := range found {
			opts = append(opts, huh.NewOption(fmt.Sprintf("%s (%s)", st.Name, st.RollNumber), st.Name))
		}

		var name string
		pick := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title(title).
					Options(opts...).
					Value(&name).
					Height(12),
			),
		).WithTheme(GetTheme())
		if err := pick.Run(); err != nil {
			return timetable.Student{}, err
		}
		return sess.svc.Student(name)
	}
}

func pickDay(sess *session) (string, error) {
	day := timetable.DefaultDay(sess.now())

	var opts []huh.Option[string]
	for _, d := range timetable.Weekdays {
		opts = append(opts, huh.NewOption(view.DayTitle(d), d))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which day?").
				Options(opts...).
				Value(&day),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return "", err
	}
	return day, nil
}

// printDay writes a rendered day to stdout.
func printDay(heading string, d view.Day) {
	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- %s ---", heading)))

	if len(d.Rows) == 0 {
		fmt.Println(mutedStyle.Render("No classes. Enjoy the free day!"))
		fmt.Println()
		return
	}

	for _, r := range d.Rows {
		line := fmt.Sprintf("%-20s %s", r.Time, r.Course)
		if r.Location != "" {
			line += mutedStyle.Render(" @ " + r.Location)
		}
		line += mutedStyle.Render(fmt.Sprintf("  [%s]", r.Group))
		if r.Status != "" {
			line += "  " + statusStyles[r.Status].Render(r.Status)
		}
		fmt.Println(line)
	}

	if len(d.Free) > 0 {
		fmt.Println()
		for _, f := range d.Free {
			fmt.Printf("☕ %s free after %s\n", f.Duration, f.After)
		}
	}
	fmt.Println()
}

func runTimetableTUI(sess *session) error {
	st, err := pickStudent(sess, "Whose timetable?", sess.cfg.SavedStudents)
	if err != nil {
		return err
	}
	day, err := pickDay(sess)
	if err != nil {
		return err
	}

	_, tt, err := sess.svc.Timetable(st.Name, day)
	if err != nil {
		return err
	}
	d, err := view.BuildDay(tt, day, sess.now())
	if err != nil {
		return err
	}
	printDay(fmt.Sprintf("%s · group %d · %s", st.Name, st.Group, d.Title), d)

	export := false
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export the full week to a calendar file?").
				Value(&export),
		),
	).WithTheme(GetTheme())
	if err := confirm.Run(); err != nil {
		return err
	}
	if !export {
		return nil
	}
	return runTimetableExport(sess, st)
}

func runTimetableExport(sess *session, st timetable.Student) error {
	weeksStr := "1"
	outputFile := strings.ReplaceAll(strings.ToLower(st.Name), " ", "_") + ".ics"

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many weeks?").
				Value(&weeksStr).
				Validate(func(v string) error {
					n, err := strconv.Atoi(v)
					if err != nil || n < 1 || n > 52 {
						return fmt.Errorf("please enter a number between 1 and 52")
					}
					return nil
				}),
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}
	weeks, _ := strconv.Atoi(weeksStr)

	_, week, err := sess.svc.Week(st.Name)
	if err != nil {
		return err
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateTimetableICS(week, sess.now(), weeks, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported %d week(s) of classes to %s", weeks, outputFile)))
	return nil
}
