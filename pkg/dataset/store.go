package dataset

import (
	"fmt"
	"sync"

	"schedfinder/pkg/timetable"
)

// Sources names where each dataset lives: a local path or an http(s) URL.
type Sources struct {
	Directory string
	Schedule  string
	Exams     map[Cycle]string
}

// Store owns the parsed datasets for the lifetime of the application.
// Each dataset is loaded on first use and then shared read-only; callers
// must not mutate what it returns.
type Store struct {
	mu     sync.Mutex
	client *Client
	src    Sources
	static bool

	directory *Directory
	week      Week
	exams     map[Cycle][]timetable.ExamSlot
}

// NewStore creates a lazily loading store.
func NewStore(src Sources, client *Client) *Store {
	if client == nil {
		client = NewClient()
	}
	return &Store{
		client: client,
		src:    src,
		exams:  make(map[Cycle][]timetable.ExamSlot),
	}
}

// NewStaticStore wraps datasets that are already in memory. Invalidate is a
// no-op on a static store.
func NewStaticStore(dir *Directory, week Week, exams map[Cycle][]timetable.ExamSlot) *Store {
	if exams == nil {
		exams = make(map[Cycle][]timetable.ExamSlot)
	}
	return &Store{
		static:    true,
		directory: dir,
		week:      week,
		exams:     exams,
	}
}

// Directory returns the student directory.
func (s *Store) Directory() (*Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.directory != nil {
		return s.directory, nil
	}
	if s.static {
		return nil, fmt.Errorf("no directory loaded")
	}

	rc, err := s.client.Open(s.src.Directory)
	if err != nil {
		return nil, fmt.Errorf("directory: %w", err)
	}
	defer rc.Close()

	dir, err := ParseDirectory(rc)
	if err != nil {
		return nil, err
	}
	s.directory = dir
	return dir, nil
}

// Week returns the weekly class schedule.
func (s *Store) Week() (Week, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.week != nil {
		return s.week, nil
	}
	if s.static {
		return nil, fmt.Errorf("no schedule loaded")
	}

	rc, err := s.client.Open(s.src.Schedule)
	if err != nil {
		return nil, fmt.Errorf("schedule: %w", err)
	}
	defer rc.Close()

	week, err := ParseWeek(rc)
	if err != nil {
		return nil, err
	}
	s.week = week
	return week, nil
}

// Exams returns the exam slots of one cycle.
func (s *Store) Exams(c Cycle) ([]timetable.ExamSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slots, ok := s.exams[c]; ok {
		return slots, nil
	}
	if s.static {
		return nil, fmt.Errorf("no %s exams loaded", c)
	}

	source, ok := s.src.Exams[c]
	if !ok || source == "" {
		return nil, fmt.Errorf("no source configured for %s exams", c)
	}

	rc, err := s.client.Open(source)
	if err != nil {
		return nil, fmt.Errorf("%s exams: %w", c, err)
	}
	defer rc.Close()

	slots, err := ParseExams(rc)
	if err != nil {
		return nil, err
	}
	s.exams[c] = slots
	return slots, nil
}

// Preload loads every configured dataset so that later reads cannot fail.
func (s *Store) Preload() error {
	if _, err := s.Directory(); err != nil {
		return err
	}
	if _, err := s.Week(); err != nil {
		return err
	}
	for c, source := range s.src.Exams {
		if source == "" {
			continue
		}
		if _, err := s.Exams(c); err != nil {
			return err
		}
	}
	return nil
}

// Invalidate drops every cached dataset; the next read reloads it.
func (s *Store) Invalidate() {
	if s.static {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory = nil
	s.week = nil
	s.exams = make(map[Cycle][]timetable.ExamSlot)
}

// Reload fetches every dataset again, bypassing the disk cache, and swaps
// the new data in only once all of it loaded. On error the previous data
// stays in place.
func (s *Store) Reload() error {
	if s.static {
		return nil
	}

	next := NewStore(s.src, s.client.refreshing())
	if err := next.Preload(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.directory = next.directory
	s.week = next.week
	s.exams = next.exams
	return nil
}
