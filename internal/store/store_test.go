package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/speechdrill/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "nested", "speechdrill.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestAddAndListPatients(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Unix(0, 0).UTC()
	for i, name := range []string{"Ana", "Ben", "Cleo"} {
		_, err := st.AddPatient(ctx, model.Patient{
			Name:      "  " + name + " ",
			Age:       6 + i,
			Problem:   "lisp",
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		})
		if err != nil {
			t.Fatalf("add patient: %v", err)
		}
	}

	patients, err := st.ListPatients(ctx)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(patients) != 3 {
		t.Fatalf("expected 3 patients, got %d", len(patients))
	}
	if patients[0].Name != "Ana" || patients[2].Name != "Cleo" {
		t.Fatalf("unexpected order or trimming: %+v", patients)
	}
	if patients[1].ID == "" {
		t.Fatalf("expected generated id")
	}
	if !patients[1].CreatedAt.Equal(base.Add(time.Minute)) {
		t.Fatalf("unexpected created_at: %v", patients[1].CreatedAt)
	}
}

func TestGetAndDeletePatient(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	p, err := st.AddPatient(ctx, model.Patient{Name: "Dev", Age: 9, Problem: "r sound"})
	if err != nil {
		t.Fatalf("add patient: %v", err)
	}
	got, err := st.GetPatient(ctx, p.ID)
	if err != nil {
		t.Fatalf("get patient: %v", err)
	}
	if got.Name != "Dev" || got.Age != 9 || got.Problem != "r sound" {
		t.Fatalf("unexpected patient: %+v", got)
	}
	if err := st.DeletePatient(ctx, p.ID); err != nil {
		t.Fatalf("delete patient: %v", err)
	}
	if _, err := st.GetPatient(ctx, p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if err := st.DeletePatient(ctx, p.ID); !errors.Is(err, ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound on second delete, got %v", err)
	}
}

func TestAddPatientValidation(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	if _, err := st.AddPatient(ctx, model.Patient{Name: "  "}); !errors.Is(err, ErrInvalidPatient) {
		t.Fatalf("expected ErrInvalidPatient for blank name, got %v", err)
	}
	if _, err := st.AddPatient(ctx, model.Patient{Name: "Eve", Age: -1}); !errors.Is(err, ErrInvalidPatient) {
		t.Fatalf("expected ErrInvalidPatient for negative age, got %v", err)
	}
	patients, err := st.ListPatients(ctx)
	if err != nil {
		t.Fatalf("list patients: %v", err)
	}
	if len(patients) != 0 {
		t.Fatalf("expected rejected patients not stored, got %d", len(patients))
	}
}
