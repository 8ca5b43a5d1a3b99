package ingestion

import (
	"testing"

	"go-storefront/internal/common/enum"
	types "go-storefront/internal/common/type"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileAllAccepted(t *testing.T) {
	f := newFixture(t, nil)
	batch := []*types.UploadedFile{
		f.scratchFile(t, "a.jpg", jpegBytes(t, 4, 4)),
		f.scratchFile(t, "b.jpg", jpegBytes(t, 4, 4)),
	}

	assert.Nil(t, f.svc.Reconcile(batch))
	for _, file := range batch {
		assert.FileExists(t, file.TemporaryPath)
	}
}

func TestReconcilePurgesWholeBatch(t *testing.T) {
	f := newFixture(t, nil)
	good := f.scratchFile(t, "good.jpg", jpegBytes(t, 4, 4))

	require.NoError(t, f.svc.scratch.EnsureDir())
	path, err := f.svc.scratch.Write("bad", []byte("x"))
	require.NoError(t, err)
	bad := &types.UploadedFile{OriginalName: "huge.png", TemporaryPath: path}
	require.NoError(t, bad.SetOutcome(types.Rejected(enum.DIMENSION_EXCEEDED, "5000x5000 exceeds 4096x4096")))

	rejection := f.svc.Reconcile([]*types.UploadedFile{good, bad})
	require.NotNil(t, rejection)

	assert.Equal(t, []string{"huge.png: DimensionExceeded: 5000x5000 exceeds 4096x4096"}, rejection.Errors)
	assert.Equal(t, []types.FileReport{
		{Filename: "good.jpg", Accepted: true},
		{Filename: "huge.png", Error: "huge.png: DimensionExceeded: 5000x5000 exceeds 4096x4096"},
	}, rejection.Files)
	assert.EqualError(t, rejection, "1 of 2 files rejected")
	assert.Empty(t, listFiles(t, f.scratchDir))
}

func TestReconcileTreatsUnsetOutcomeAsRejected(t *testing.T) {
	f := newFixture(t, nil)
	pending := &types.UploadedFile{OriginalName: "lost.png"}

	rejection := f.svc.Reconcile([]*types.UploadedFile{pending})
	require.NotNil(t, rejection)
	assert.Equal(t, []string{"lost.png: not validated"}, rejection.Errors)
}

func TestOutcomeIsSetOnce(t *testing.T) {
	file := &types.UploadedFile{OriginalName: "a.jpg"}
	require.NoError(t, file.SetOutcome(types.Accepted()))
	err := file.SetOutcome(types.Rejected(enum.SCAN_INFECTED, "late"))
	assert.ErrorIs(t, err, types.ErrOutcomeAlreadySet)
	assert.True(t, file.Outcome.IsAccepted())
}
