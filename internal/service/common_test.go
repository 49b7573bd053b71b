package service_test

import (
	"context"
	"testing"
	"time"

	"eventflow/internal/artifact"
	"eventflow/internal/model"
	"eventflow/internal/storage"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func newTestBlobStore() (storage.BlobStore, afero.Fs) {
	fsys := afero.NewMemMapFs()
	return storage.NewFSBlobStore(fsys), fsys
}

func newTestQRGenerator() artifact.QRGenerator {
	return artifact.NewQRGenerator("http://testserver")
}

func newTestEvent(id, organizerID int) *model.Event {
	return &model.Event{
		ID:          id,
		Title:       "Go Meetup",
		Description: "Monthly meetup",
		Date:        time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		Time:        time.Date(0, 1, 1, 18, 30, 0, 0, time.UTC),
		Location:    "Taipei",
		Address:     "1 Main St",
		OrganizerID: organizerID,
	}
}

func strPtr(s string) *string {
	return &s
}

// putBlob 先放一個檔案到 store，回傳 ref
func putBlob(t *testing.T, store storage.BlobStore, name string, data []byte) string {
	t.Helper()
	ref, err := store.Put(context.Background(), artifact.QRCodeDir, name, data)
	require.NoError(t, err)
	return ref
}

func countBlobs(t *testing.T, fsys afero.Fs) int {
	t.Helper()
	exists, err := afero.DirExists(fsys, artifact.QRCodeDir)
	require.NoError(t, err)
	if !exists {
		return 0
	}
	entries, err := afero.ReadDir(fsys, artifact.QRCodeDir)
	require.NoError(t, err)
	return len(entries)
}
