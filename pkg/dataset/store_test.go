package dataset

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

func TestStore_LoadsOnce(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	var mu sync.Mutex
	hits := map[string]int{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits[r.URL.Path]++
		mu.Unlock()

		switch {
		case strings.HasSuffix(r.URL.Path, "nameMap.json"):
			w.Write([]byte(`{"Asha Rao":["12","2301CS01"]}`))
		case strings.HasSuffix(r.URL.Path, "schedule.json"):
			w.Write([]byte(weekJSON))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer server.Close()

	store := NewStore(Sources{
		Directory: server.URL + "/nameMap.json",
		Schedule:  server.URL + "/schedule.json",
		Exams:     map[Cycle]string{CycleMidsem: server.URL + "/midsem.json"},
	}, NewClient().WithoutCache())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.Directory(); err != nil {
				t.Errorf("Directory failed: %v", err)
			}
			if _, err := store.Week(); err != nil {
				t.Errorf("Week failed: %v", err)
			}
		}()
	}
	wg.Wait()

	if hits["/nameMap.json"] != 1 || hits["/schedule.json"] != 1 {
		t.Errorf("expected each dataset to be fetched once, got %v", hits)
	}

	if _, err := store.Exams(CycleEndsem); err == nil {
		t.Errorf("expected an error for an unconfigured cycle")
	}

	store.Invalidate()
	if _, err := store.Directory(); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if hits["/nameMap.json"] != 2 {
		t.Errorf("expected Invalidate to force a reload, got %d fetches", hits["/nameMap.json"])
	}
}

func TestStore_ReloadBypassesDiskCache(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	var mu sync.Mutex
	hits := 0
	body := `{"Asha Rao":["12","2301CS01"]}`
	fail := false
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		if !strings.HasSuffix(r.URL.Path, "nameMap.json") {
			w.Write([]byte(weekJSON))
			return
		}
		hits++
		if fail {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	src := Sources{
		Directory: server.URL + "/nameMap.json",
		Schedule:  server.URL + "/schedule.json",
	}
	store := NewStore(src, NewClient())

	if _, err := store.Directory(); err != nil {
		t.Fatalf("Directory failed: %v", err)
	}

	// A plain invalidate is served from the fresh disk cache.
	store.Invalidate()
	if _, err := store.Directory(); err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if hits != 1 {
		t.Fatalf("expected the disk cache to answer after Invalidate, got %d fetches", hits)
	}

	mu.Lock()
	body = `{"Asha Rao":["12","2301CS01"],"Ravi Kumar":["35","2301CS02"]}`
	mu.Unlock()

	if err := store.Reload(); err != nil {
		t.Fatalf("Reload failed: %v", err)
	}
	dir, err := store.Directory()
	if err != nil {
		t.Fatalf("Directory failed: %v", err)
	}
	if hits != 2 || dir.Len() != 2 {
		t.Errorf("expected Reload to fetch the new directory, got %d fetches and %d students", hits, dir.Len())
	}

	// The refreshed body was written back, so a new store sees it from cache.
	fresh := NewStore(src, NewClient())
	if d, err := fresh.Directory(); err != nil || d.Len() != 2 {
		t.Errorf("expected refreshed cache entry, got %v students, err %v", d, err)
	}

	mu.Lock()
	fail = true
	mu.Unlock()

	if err := store.Reload(); err == nil {
		t.Errorf("expected Reload to fail when the source is gone")
	}
	if dir, err := store.Directory(); err != nil || dir.Len() != 2 {
		t.Errorf("expected previous data to survive a failed reload, got err %v", err)
	}
}

func TestStaticStore(t *testing.T) {
	week, err := ParseWeek(strings.NewReader(weekJSON))
	if err != nil {
		t.Fatalf("ParseWeek failed: %v", err)
	}
	store := NewStaticStore(NewDirectory(nil), week, nil)

	store.Invalidate()
	if _, err := store.Week(); err != nil {
		t.Errorf("expected static store to keep its data after Invalidate, got %v", err)
	}
	if _, err := store.Exams(CycleMidsem); err == nil {
		t.Errorf("expected missing exams to be an error")
	}
}
