package server

import (
	"errors"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/lookup"
	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/gofiber/fiber/v2"
)

type dayTab struct {
	Key    string
	Title  string
	Active bool
}

func dayTabs(active string) []dayTab {
	tabs := make([]dayTab, 0, len(timetable.Weekdays))
	for _, d := range timetable.Weekdays {
		tabs = append(tabs, dayTab{Key: d, Title: view.DayTitle(d), Active: d == active})
	}
	return tabs
}

func (s *Server) registerPageRoutes() {
	s.app.Get("/", s.timetablePage)
	s.app.Get("/compare", s.comparePage)
	s.app.Get("/midsem", s.examPage(dataset.CycleMidsem))
	s.app.Get("/endsem", s.examPage(dataset.CycleEndsem))
}

// pageError turns user mistakes into a message on the page; anything else
// goes to the error handler.
func pageError(err error) (string, error) {
	if statusFor(err) == fiber.StatusInternalServerError {
		return "", err
	}
	if errors.Is(err, timetable.ErrPreconditionViolation) {
		return "Pick at least two students to compare.", nil
	}
	return err.Error(), nil
}

func (s *Server) timetablePage(c *fiber.Ctx) error {
	day := s.dayQuery(c)
	name := c.Query("name")
	data := fiber.Map{
		"Title": "Timetable",
		"Name":  name,
		"Day":   day,
		"Days":  dayTabs(day),
	}

	if name == "" {
		return c.Render("index", data, "layout")
	}

	st, tt, err := s.svc.Timetable(name, day)
	if err == nil {
		var d view.Day
		if d, err = view.BuildDay(tt, day, s.now()); err == nil {
			data["Student"] = st
			data["Timetable"] = d
		}
	}
	if err != nil {
		if errors.Is(err, lookup.ErrUnknownStudent) {
			if found, serr := s.svc.Search(name); serr == nil {
				data["Suggestions"] = found
			}
		}
		msg, ferr := pageError(err)
		if ferr != nil {
			return ferr
		}
		data["Error"] = msg
	}
	return c.Render("index", data, "layout")
}

func (s *Server) comparePage(c *fiber.Ctx) error {
	var names []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("name") {
		if n := string(raw); n != "" {
			names = append(names, n)
		}
	}

	day := s.dayQuery(c)
	data := fiber.Map{
		"Title": "Compare",
		"Names": names,
		"Day":   day,
		"Days":  dayTabs(day),
	}
	if len(names) == 0 {
		return c.Render("compare", data, "layout")
	}

	students, tt, err := s.svc.Compare(names, day)
	if err == nil {
		var d view.Day
		if d, err = view.BuildDay(tt, day, s.now()); err == nil {
			data["Students"] = students
			data["Timetable"] = d
		}
	}
	if err != nil {
		msg, ferr := pageError(err)
		if ferr != nil {
			return ferr
		}
		data["Error"] = msg
	}
	return c.Render("compare", data, "layout")
}

func (s *Server) examPage(cycle dataset.Cycle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		roll := c.Query("idx")
		data := fiber.Map{
			"Title": view.DayTitle(string(cycle)) + " exams",
			"Cycle": string(cycle),
			"Roll":  roll,
		}
		if roll == "" {
			return c.Render("exams", data, "layout")
		}

		results, err := s.svc.Exams(cycle, roll)
		if err != nil {
			msg, ferr := pageError(err)
			if ferr != nil {
				return ferr
			}
			data["Error"] = msg
			return c.Render("exams", data, "layout")
		}

		data["Results"] = results
		cd, ok, err := timetable.NextExam(results, s.now())
		if err != nil {
			return err
		}
		if ok {
			data["Countdown"] = view.CountdownLine(cd)
		}
		return c.Render("exams", data, "layout")
	}
}
