//go:build integration

package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/c360studio/ontogen/storage"
)

func TestStorePutGetList(t *testing.T) {
	tc := natsclient.NewTestClient(t, natsclient.WithJetStream(), natsclient.WithKV())
	ctx := context.Background()

	store, err := storage.NewStore(ctx, tc.Client, "", nil)
	if err != nil {
		t.Fatalf("NewStore() error = %v", err)
	}

	rec, err := storage.NewSchemaRecord(compileFixture(t))
	if err != nil {
		t.Fatalf("NewSchemaRecord() error = %v", err)
	}

	rev, err := store.PutSchema(ctx, rec)
	if err != nil {
		t.Fatalf("PutSchema() error = %v", err)
	}
	if rev == 0 {
		t.Error("expected non-zero revision")
	}

	got, err := store.GetSchema(ctx, "cdi")
	if err != nil {
		t.Fatalf("GetSchema() error = %v", err)
	}
	if got.Revision != rev {
		t.Errorf("Revision = %d, want %d", got.Revision, rev)
	}
	if got.GoSource != rec.GoSource {
		t.Error("GoSource differs from stored record")
	}

	other := *rec
	other.Key = "alpha"
	if _, err := store.PutSchema(ctx, &other); err != nil {
		t.Fatalf("PutSchema() error = %v", err)
	}

	list, err := store.ListSchemas(ctx)
	if err != nil {
		t.Fatalf("ListSchemas() error = %v", err)
	}
	if len(list) != 2 || list[0].Key != "alpha" || list[1].Key != "cdi" {
		t.Errorf("ListSchemas() keys unexpected: %d records", len(list))
	}

	if err := store.DeleteSchema(ctx, "alpha"); err != nil {
		t.Fatalf("DeleteSchema() error = %v", err)
	}
	if _, err := store.GetSchema(ctx, "alpha"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetSchema() after delete error = %v, want ErrNotFound", err)
	}
}
