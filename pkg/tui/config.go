package tui

import (
	"fmt"
	"strings"
	"time"

	"schedfinder/pkg/config"
	"schedfinder/pkg/dataset"
	"schedfinder/pkg/lookup"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI shows the settings menu until the user goes back.
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Settings").
					Options(
						huh.NewOption("Accent colour", "theme"),
						huh.NewOption("Saved students", "students"),
						huh.NewOption("Dataset folder", "data"),
						huh.NewOption("Exam shift times", "shifts"),
						huh.NewOption("Timezone", "timezone"),
						huh.NewOption("Show current settings", "view"),
						huh.NewOption("Back", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "theme":
			err = runSetThemeTUI(cfg)
		case "students":
			err = runSetSavedStudentsTUI(cfg)
		case "data":
			err = runSetDataDirTUI(cfg)
		case "shifts":
			err = runSetShiftsTUI(cfg)
		case "timezone":
			err = runSetTimezoneTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	src := cfg.Sources()

	fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.schedfinder.json) ---"))
	fmt.Printf("Directory: %s\n", src.Directory)
	fmt.Printf("Schedule: %s\n", src.Schedule)
	for _, c := range dataset.Cycles {
		fmt.Printf("%s exams: %s\n", c, src.Exams[c])
		if table, err := cfg.ShiftTable(c); err == nil {
			fmt.Printf("  shifts: Morning %s, Evening %s\n", table["Morning"], table["Evening"])
		}
	}
	if loc, err := cfg.Location(); err == nil {
		fmt.Printf("Timezone: %s\n", loc)
	}
	fmt.Printf("Saved Students: %s\n", strings.Join(cfg.SavedStudents, ", "))
	fmt.Printf("Opted-out Rolls: %d\n", len(cfg.OptOutRolls))
	fmt.Printf("Accent colour: %s\n", cfg.AccentColor)
	fmt.Println()
}

func runSetSavedStudentsTUI(cfg *config.AppConfig) error {
	svc, err := lookup.FromConfig(cfg, dataset.NewClient())
	if err != nil {
		return err
	}

	var query string
	queryForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Search the directory").
				Description("Matches are added to your current saved students.").
				Value(&query),
		),
	).WithTheme(GetTheme())
	if err := queryForm.Run(); err != nil {
		return err
	}

	var found []string
	var fetchErr error
	_ = spinner.New().
		Title("Searching the student directory...").
		Action(func() {
			students, err := svc.Search(query)
			if err != nil {
				fetchErr = err
				return
			}
			for _, st := range students {
				found = append(found, st.Name)
			}
		}).
		Run()
	if fetchErr != nil {
		return fmt.Errorf("failed to search directory: %w", fetchErr)
	}

	existing := make(map[string]bool)
	var options []huh.Option[string]
	for _, name := range cfg.SavedStudents {
		existing[name] = true
		options = append(options, huh.NewOption(name, name).Selected(true))
	}
	for _, name := range found {
		if !existing[name] {
			options = append(options, huh.NewOption(name, name))
		}
	}

	if len(options) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("No names matching '%s'.", query)))
		return nil
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select your saved students").
				Description("The first one is treated as you.\nSpace = toggle, Enter = confirm. Start typing to filter.").
				Options(options...).
				Value(&selected).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	cfg.SavedStudents = selected
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved %d students.\n", len(selected))))
	return nil
}

func runSetDataDirTUI(cfg *config.AppConfig) error {
	input := cfg.DataDir

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Where do the dataset files live?").
				Description("Folder with nameMap.json, schedule.json, midSemSchdl.json and endSemSchdl.json.").
				Placeholder(config.DefaultDataDir).
				Value(&input),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	cfg.DataDir = strings.TrimSpace(input)
	if err := config.Save(cfg); err != nil {
		return err
	}
	if err := dataset.ClearCache(); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Data directory saved.\n"))
	return nil
}

func runSetShiftsTUI(cfg *config.AppConfig) error {
	var cycle, preset string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which exam cycle?").
				Options(
					huh.NewOption("Midsem", string(dataset.CycleMidsem)),
					huh.NewOption("Endsem", string(dataset.CycleEndsem)),
				).
				Value(&cycle),
			huh.NewSelect[string]().
				Title("Evening shift length").
				Options(
					huh.NewOption("Two hours (15:30 - 17:30)", "default"),
					huh.NewOption("Three hours (15:00 - 18:00)", "extended"),
				).
				Value(&preset),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	if cfg.ExamShifts == nil {
		cfg.ExamShifts = make(map[string]map[string]string)
	}
	if preset == "extended" {
		cfg.ExamShifts[cycle] = map[string]string{"Evening": "15:00-18:00"}
	} else {
		delete(cfg.ExamShifts, cycle)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %s shift times saved.\n", cycle)))
	return nil
}

func runSetTimezoneTUI(cfg *config.AppConfig) error {
	input := cfg.Timezone

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Timezone").
				Description("IANA name used for today's status and calendar exports.").
				Placeholder(config.DefaultTimezone).
				Value(&input).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					if _, err := time.LoadLocation(s); err != nil {
						return fmt.Errorf("unknown timezone %q", s)
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())
	if err := form.Run(); err != nil {
		return err
	}

	cfg.Timezone = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Timezone saved.\n"))
	return nil
}

// accentPalette is offered before the custom hex option.
var accentPalette = []struct{ label, color string }{
	{"Lavender", "99"},
	{"Rose", "205"},
	{"Teal", "86"},
	{"Leaf", "42"},
	{"Amber", "214"},
}

const customAccent = "custom"

func swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("■■")
}

func validHex(s string) error {
	s = strings.TrimSpace(s)
	if len(s) != 7 || s[0] != '#' {
		return fmt.Errorf("expected # followed by six hex digits")
	}
	for _, r := range strings.ToLower(s[1:]) {
		if !strings.ContainsRune("0123456789abcdef", r) {
			return fmt.Errorf("%q is not a hex digit", r)
		}
	}
	return nil
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	choice := cfg.AccentColor
	var opts []huh.Option[string]
	for _, p := range accentPalette {
		opts = append(opts, huh.NewOption(swatch(p.color)+" "+p.label, p.color))
	}
	opts = append(opts, huh.NewOption("Custom hex colour...", customAccent))

	pick := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Accent colour").
				Description("Used for highlights in every menu and printout.").
				Options(opts...).
				Value(&choice),
		),
	).WithTheme(GetTheme())
	if err := pick.Run(); err != nil {
		return err
	}

	if choice == customAccent {
		hex := "#"
		custom := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Hex colour").
					Placeholder("#7D56F4").
					Value(&hex).
					Validate(validHex),
			),
		).WithTheme(GetTheme())
		if err := custom.Run(); err != nil {
			return err
		}
		choice = strings.TrimSpace(hex)
	}

	cfg.AccentColor = choice
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(lipgloss.NewStyle().Foreground(lipgloss.Color(choice)).Render("\n✅ Accent colour saved.\n"))
	return nil
}
