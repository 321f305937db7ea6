package server

import (
	"bytes"

	"schedfinder/pkg/dataset"
	"schedfinder/pkg/exporter"
	"schedfinder/pkg/timetable"
	"schedfinder/pkg/view"

	"github.com/gofiber/fiber/v2"
)

type studentJSON struct {
	Name  string `json:"name"`
	Group int    `json:"group"`
	Roll  string `json:"roll"`
}

func toStudentJSON(st timetable.Student) studentJSON {
	return studentJSON{Name: st.Name, Group: st.Group, Roll: st.RollNumber}
}

func (s *Server) registerAPIRoutes() {
	// Exam lookup boundary kept at its historical paths.
	s.app.Get("/midsem/api", s.examLookup(dataset.CycleMidsem))
	s.app.Get("/endsem/api", s.examLookup(dataset.CycleEndsem))

	api := s.app.Group("/api")
	api.Get("/students", s.searchStudents)
	api.Get("/timetable", s.studentTimetable)
	api.Get("/compare", s.compareTimetables)
	api.Get("/exams/:cycle/countdown", s.examCountdown)
	api.Get("/exams/:cycle/calendar.ics", s.examCalendar)
	api.Post("/reload", s.reload)
}

func cycleParam(c *fiber.Ctx) (dataset.Cycle, error) {
	cycle, err := dataset.ParseCycle(c.Params("cycle"))
	if err != nil {
		return "", fiber.NewError(fiber.StatusNotFound, err.Error())
	}
	return cycle, nil
}

// dayQuery returns the requested day, defaulting to today (Monday on weekends).
func (s *Server) dayQuery(c *fiber.Ctx) string {
	if d := c.Query("day"); d != "" {
		return d
	}
	return timetable.DefaultDay(s.now())
}

func (s *Server) examLookup(cycle dataset.Cycle) fiber.Handler {
	return func(c *fiber.Ctx) error {
		results, err := s.svc.Exams(cycle, c.Query("idx"))
		if err != nil {
			return err
		}
		if results == nil {
			results = []timetable.ExamResult{}
		}
		return c.JSON(fiber.Map{"results": results})
	}
}

func (s *Server) searchStudents(c *fiber.Ctx) error {
	found, err := s.svc.Search(c.Query("q"))
	if err != nil {
		return err
	}
	out := make([]studentJSON, 0, len(found))
	for _, st := range found {
		out = append(out, toStudentJSON(st))
	}
	return c.JSON(fiber.Map{"results": out})
}

func (s *Server) studentTimetable(c *fiber.Ctx) error {
	day := s.dayQuery(c)
	st, tt, err := s.svc.Timetable(c.Query("name"), day)
	if err != nil {
		return err
	}
	d, err := view.BuildDay(tt, day, s.now())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"student": toStudentJSON(st), "timetable": d})
}

func (s *Server) compareTimetables(c *fiber.Ctx) error {
	var names []string
	for _, raw := range c.Context().QueryArgs().PeekMulti("name") {
		names = append(names, string(raw))
	}

	day := s.dayQuery(c)
	students, tt, err := s.svc.Compare(names, day)
	if err != nil {
		return err
	}
	d, err := view.BuildDay(tt, day, s.now())
	if err != nil {
		return err
	}

	out := make([]studentJSON, 0, len(students))
	for _, st := range students {
		out = append(out, toStudentJSON(st))
	}
	return c.JSON(fiber.Map{"students": out, "timetable": d})
}

func (s *Server) examCountdown(c *fiber.Ctx) error {
	cycle, err := cycleParam(c)
	if err != nil {
		return err
	}
	results, err := s.svc.Exams(cycle, c.Query("idx"))
	if err != nil {
		return err
	}

	cd, ok, err := timetable.NextExam(results, s.now())
	if err != nil {
		return err
	}
	if !ok {
		return c.JSON(fiber.Map{"next": nil})
	}
	return c.JSON(fiber.Map{
		"next": fiber.Map{
			"course":        cd.Exam.Course,
			"date":          cd.Exam.Date,
			"time":          cd.Exam.Time,
			"location":      cd.Exam.Location,
			"days":          cd.Days,
			"calendar_days": cd.CalendarDays,
			"hours":         cd.Hours,
			"minutes":       cd.Minutes,
			"text":          view.CountdownLine(cd),
		},
	})
}

func (s *Server) examCalendar(c *fiber.Ctx) error {
	cycle, err := cycleParam(c)
	if err != nil {
		return err
	}
	results, err := s.svc.Exams(cycle, c.Query("idx"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := exporter.GenerateExamICS(results, s.loc, &buf); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "text/calendar; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+string(cycle)+`.ics"`)
	return c.Send(buf.Bytes())
}

func (s *Server) reload(c *fiber.Ctx) error {
	if err := s.svc.Store().Reload(); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": true})
}
