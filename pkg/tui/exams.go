package tui

import (
	"fmt"
	"os"
	"strings"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/exporter"
	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/charmbracelet/huh"
)

func runExamsTUI(sess *session) error {
	var cycle string
	roll := ""
	if len(sess.cfg.SavedStudents) > 0 {
		if st, err := sess.svc.Student(sess.cfg.SavedStudents[0]); err == nil {
			roll = st.RollNumber
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which exams?").
				Options(
					huh.NewOption("Midsem", string(dataset.CycleMidsem)),
					huh.NewOption("Endsem", string(dataset.CycleEndsem)),
				).
				Value(&cycle),
			huh.NewInput().
				Title("Roll number").
				Placeholder("e.g. 2301CS01").
				Value(&roll).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("roll number is required")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	c := dataset.Cycle(cycle)
	results, err := sess.svc.Exams(c, roll)
	if err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- %s exams · %s ---", view.DayTitle(cycle), timetable.NormalizeRoll(roll))))
	if len(results) == 0 {
		fmt.Println(mutedStyle.Render("No exams found for this roll number."))
		fmt.Println()
		return nil
	}

	for _, r := range results {
		fmt.Printf("%-12s %-10s %-15s %s%s\n", r.Date, r.Day, r.Time, r.Course, mutedStyle.Render(" @ "+r.Location))
	}

	cd, ok, err := timetable.NextExam(results, sess.now())
	if err != nil {
		return err
	}
	if ok {
		fmt.Println(accentStyle.Render("\n⏳ " + view.CountdownLine(cd)))
	}
	fmt.Println()

	export := false
	confirm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Export these exams to a calendar file?").
				Value(&export),
		),
	).WithTheme(GetTheme())
	if err := confirm.Run(); err != nil {
		return err
	}
	if !export {
		return nil
	}

	outputFile := fmt.Sprintf("%s_%s.ics", cycle, strings.ToLower(timetable.NormalizeRoll(roll)))
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateExamICS(results, sess.loc, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}
	fmt.Println(accentStyle.Render(fmt.Sprintf("Success! Exported %d exams to %s", len(results), outputFile)))
	return nil
}
