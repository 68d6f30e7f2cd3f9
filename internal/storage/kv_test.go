package storage

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestKVRoundtrip(t *testing.T) {
	kv := NewKV(newTestDB(t))
	ctx := context.Background()

	if err := kv.Set(ctx, "a", []byte("one")); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := kv.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "one" {
		t.Fatalf("got %q, want %q", got, "one")
	}

	// Overwrite through the upsert path.
	if err := kv.Set(ctx, "a", []byte("two")); err != nil {
		t.Fatalf("set again: %v", err)
	}
	got, err = kv.Get(ctx, "a")
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if string(got) != "two" {
		t.Fatalf("got %q, want %q", got, "two")
	}
}

func TestKVMissingKeyIsNilNil(t *testing.T) {
	kv := NewKV(newTestDB(t))

	got, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Fatalf("got %q, want nil", got)
	}
}

func TestKVDeleteAndClear(t *testing.T) {
	kv := NewKV(newTestDB(t))
	ctx := context.Background()

	for _, k := range []string{"a", "b", "c"} {
		if err := kv.Set(ctx, k, []byte(k)); err != nil {
			t.Fatalf("set %s: %v", k, err)
		}
	}

	if err := kv.Delete(ctx, "b"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	keys, err := kv.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Fatalf("keys after delete: %v", keys)
	}

	if err := kv.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	keys, err = kv.Keys(ctx)
	if err != nil {
		t.Fatalf("keys: %v", err)
	}
	if len(keys) != 0 {
		t.Fatalf("keys after clear: %v", keys)
	}
}

func TestStateSnapshotRoundtrip(t *testing.T) {
	kv := NewKV(newTestDB(t))
	ctx := context.Background()

	missing, err := LoadState(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected nil state before first save")
	}

	st := DefaultState()
	st.Tasks = []Task{{ID: "t1", Title: "Water the plants", Status: TaskPending, Priority: PriorityMedium}}
	st.Profile.XP = 125
	st.Profile.SkillXP["mental"] = 125

	if err := SaveState(ctx, kv, st); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := LoadState(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatalf("expected state after save")
	}
	if len(got.Tasks) != 1 || got.Tasks[0].Title != "Water the plants" {
		t.Fatalf("tasks did not survive: %+v", got.Tasks)
	}
	if got.Profile.XP != 125 || got.Profile.SkillXP["mental"] != 125 {
		t.Fatalf("profile did not survive: %+v", got.Profile)
	}
}

func TestLoadStateRestoresSkillMap(t *testing.T) {
	kv := NewKV(newTestDB(t))
	ctx := context.Background()

	// A snapshot written with a nil map must hydrate with a usable one.
	if err := kv.Set(ctx, StateKey, []byte(`{"profile":{"xp":10}}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := LoadState(ctx, kv)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Profile.SkillXP == nil {
		t.Fatalf("SkillXP map not restored")
	}
}
