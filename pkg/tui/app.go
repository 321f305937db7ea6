package tui

import (
	"fmt"
	"time"

	"schedfinder/pkg/config"
	"schedfinder/pkg/dataset"
	"schedfinder/pkg/lookup"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

var (
	// accentStyle is replaced by GetTheme once the config is read.
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

const defaultAccent = "99"

// GetTheme builds the form theme from the saved accent colour and updates
// accentStyle to match.
func GetTheme() *huh.Theme {
	accent := defaultAccent
	if cfg, err := config.Load(); err == nil && cfg.AccentColor != "" {
		accent = cfg.AccentColor
	}

	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	return GetCustomTheme(accent)
}

// GetCustomTheme derives a huh theme from the Charm base with accent applied
// to focused fields.
func GetCustomTheme(accent string) *huh.Theme {
	c := lipgloss.Color(accent)
	t := huh.ThemeCharm()

	f := &t.Focused
	f.Base = f.Base.Border(lipgloss.RoundedBorder()).BorderForeground(c).Padding(0, 1)
	f.Title = f.Title.Foreground(c).Bold(true)
	for _, st := range []*lipgloss.Style{
		&f.SelectSelector, &f.MultiSelectSelector, &f.SelectedOption, &f.SelectedPrefix,
		&f.TextInput.Cursor, &f.TextInput.Prompt,
	} {
		*st = st.Foreground(c)
	}
	f.FocusedButton = f.FocusedButton.Foreground(lipgloss.Color("0")).Background(c)

	t.Blurred.Base = t.Blurred.Base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
	return t
}

// session is what every flow needs: settings, the lookup service and the
// local timezone.
type session struct {
	cfg *config.AppConfig
	svc *lookup.Service
	loc *time.Location
}

func (s *session) now() time.Time {
	return time.Now().In(s.loc)
}

func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	svc, err := lookup.FromConfig(cfg, dataset.NewClient())
	if err != nil {
		return nil, err
	}

	var loadErr error
	_ = spinner.New().
		Title("Loading timetable data...").
		Action(func() {
			loadErr = svc.Store().Preload()
		}).
		Run()
	if loadErr != nil {
		return nil, fmt.Errorf("failed to load datasets: %w", loadErr)
	}

	return &session{cfg: cfg, svc: svc, loc: loc}, nil
}

// RunTUI shows the main menu and runs the chosen flow.
func RunTUI() error {
	var action string

	initialForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("📅 My Timetable", "timetable"),
					huh.NewOption("👥 Compare Timetables", "compare"),
					huh.NewOption("📝 Exam Schedule", "exams"),
					huh.NewOption("⚙️ Settings", "config"),
				).
				Value(&action),
		),
	).WithTheme(GetTheme())

	if err := initialForm.Run(); err != nil {
		return err
	}

	if action == "config" {
		return RunConfigTUI()
	}

	sess, err := newSession()
	if err != nil {
		return err
	}

	switch action {
	case "compare":
		return runCompareTUI(sess)
	case "exams":
		return runExamsTUI(sess)
	}
	return runTimetableTUI(sess)
}
