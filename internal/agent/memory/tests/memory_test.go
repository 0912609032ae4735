package tests

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/IvanChernomyrdin/go-resume-builder/internal/agent/memory"
	serr "github.com/IvanChernomyrdin/go-resume-builder/internal/shared/errors"
	"github.com/IvanChernomyrdin/go-resume-builder/internal/shared/models"
)

func resume(id string, data map[string]any) models.Resume {
	return models.Resume{ID: id, Email: "a@x.com", Template: "T", Data: data}
}

func TestResumesStore_Get_NotFound(t *testing.T) {
	s := memory.NewResumes()

	_, err := s.Get("missing")
	if !errors.Is(err, serr.ErrResumeNotFound) {
		t.Fatalf("expected ErrResumeNotFound, got %v", err)
	}
}

func TestResumesStore_Upsert_KeepsOrder(t *testing.T) {
	s := memory.NewResumes()

	s.Upsert(resume("r1", map[string]any{}))
	s.Upsert(resume("r2", map[string]any{}))
	s.Upsert(resume("r1", map[string]any{"x": 1}))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("expected 2 resumes, got %d", len(list))
	}
	if list[0].ID != "r1" || list[1].ID != "r2" {
		t.Fatalf("unexpected order: %s, %s", list[0].ID, list[1].ID)
	}
	if list[0].Data["x"] != 1 {
		t.Fatalf("expected r1 updated in place, got %#v", list[0].Data)
	}
}

func TestResumesStore_ReplaceAll(t *testing.T) {
	s := memory.NewResumes()
	s.Upsert(resume("old", map[string]any{}))

	s.ReplaceAll([]models.Resume{
		resume("r1", map[string]any{}),
		resume("r2", map[string]any{}),
		resume("r1", map[string]any{"v": 2}), // дубликат, побеждает последний
	})

	if s.Len() != 2 {
		t.Fatalf("expected 2, got %d", s.Len())
	}
	if _, err := s.Get("old"); !errors.Is(err, serr.ErrResumeNotFound) {
		t.Fatalf("expected old to be dropped, got %v", err)
	}
	r1, err := s.Get("r1")
	if err != nil {
		t.Fatalf("Get r1: %v", err)
	}
	if r1.Data["v"] != 2 {
		t.Fatalf("expected last duplicate to win, got %#v", r1.Data)
	}
}

func TestResumesStore_ReturnsCopies(t *testing.T) {
	s := memory.NewResumes()

	data := map[string]any{"name": "Ann"}
	s.Upsert(resume("r1", data))
	data["name"] = "changed"

	got, _ := s.Get("r1")
	if got.Data["name"] != "Ann" {
		t.Fatalf("store must not share caller's map, got %#v", got.Data)
	}

	got.Data["name"] = "mutated"
	again, _ := s.Get("r1")
	if again.Data["name"] != "Ann" {
		t.Fatalf("Get must return a copy, got %#v", again.Data)
	}
}

func TestResumesStore_ConcurrentUpsert(t *testing.T) {
	s := memory.NewResumes()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Upsert(resume(fmt.Sprintf("r%d", i), map[string]any{}))
			_ = s.List()
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("expected 50, got %d", s.Len())
	}
}
