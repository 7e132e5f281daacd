package usecase

import (
	"testing"

	"taskboard-aggregator/internal/model"
)

func TestStoreStalePassDiscarded(t *testing.T) {
	s := newStore()

	older := s.beginPass()
	newer := s.beginPass()

	if !s.commit(newer, []model.Task{{ID: 1}}, []int{1}) {
		t.Fatal("latest pass must commit")
	}

	// The slower, older pass completes afterwards and must be discarded.
	if s.commit(older, []model.Task{{ID: 2}}, []int{2}) {
		t.Fatal("stale pass must not commit")
	}

	tasks, members, version := s.snapshot()
	if len(tasks) != 1 || tasks[0].ID != 1 {
		t.Errorf("stale pass overwrote fresh result: %+v", tasks)
	}
	if len(members) != 1 || members[0] != 1 {
		t.Errorf("unexpected member ids: %v", members)
	}
	if version != 1 {
		t.Errorf("expected a single committed version, got %d", version)
	}
}

func TestStoreVersionBumpsPerCommit(t *testing.T) {
	s := newStore()

	for i := 0; i < 3; i++ {
		token := s.beginPass()
		if !s.commit(token, []model.Task{}, nil) {
			t.Fatalf("commit %d failed", i)
		}
	}

	_, _, version := s.snapshot()
	if version != 3 {
		t.Errorf("expected version 3, got %d", version)
	}
}

func TestStoreReplacesWholesale(t *testing.T) {
	s := newStore()

	token := s.beginPass()
	s.commit(token, []model.Task{{ID: 1}, {ID: 2}}, []int{1})

	token = s.beginPass()
	s.commit(token, []model.Task{{ID: 3}}, []int{2})

	tasks, _, _ := s.snapshot()
	if len(tasks) != 1 || tasks[0].ID != 3 {
		t.Errorf("expected wholesale replacement, got %+v", tasks)
	}
}
