package pg

import (
	"context"
	"testing"
	"time"

	"github.com/itchan-dev/boardlog/shared/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown serial creates the board first", func(t *testing.T) {
		serial := generateSerial(t)
		require.Equal(t, 0, countBoards(t, serial))

		created, err := storage.CreateTestRun(ctx,
			domain.BoardUpsert{SerialNumber: serial, Revision: ptr("A")},
			domain.TestRunCreationData{Tester: "ana", FirmwareVersion: ptr("1.4.2"), FixtureVersion: ptr("fx-9"), Result: ptr(domain.ResultFail)},
		)
		require.NoError(t, err)
		assert.NotZero(t, created.BoardId)
		assert.NotZero(t, created.RunId)
		assert.Equal(t, 1, countBoards(t, serial))

		got, err := storage.GetBoard(ctx, serial)
		require.NoError(t, err)
		assert.Equal(t, created.BoardId, got.Board.Id)
		require.Len(t, got.Runs, 1)
		run := got.Runs[0]
		assert.Equal(t, created.RunId, run.Id)
		assert.Equal(t, "ana", run.Tester)
		assert.Equal(t, "1.4.2", *run.FirmwareVersion)
		assert.Equal(t, "fx-9", *run.FixtureVersion)
		assert.Equal(t, domain.ResultFail, *run.Result)
		assert.Nil(t, run.Comments)
		assert.WithinDuration(t, time.Now(), run.TestedAt, time.Minute, "tested_at defaults to creation time")
	})

	t.Run("known serial reuses the board", func(t *testing.T) {
		serial := generateSerial(t)
		first, err := storage.CreateTestRun(ctx, domain.BoardUpsert{SerialNumber: serial}, domain.TestRunCreationData{Tester: "ana"})
		require.NoError(t, err)
		second, err := storage.CreateTestRun(ctx, domain.BoardUpsert{SerialNumber: serial}, domain.TestRunCreationData{Tester: "bo"})
		require.NoError(t, err)

		assert.Equal(t, first.BoardId, second.BoardId)
		assert.NotEqual(t, first.RunId, second.RunId)
		assert.Equal(t, 1, countBoards(t, serial))
	})

	t.Run("invalid result rolls back the board upsert", func(t *testing.T) {
		serial := generateSerial(t)
		_, err := storage.CreateTestRun(ctx, domain.BoardUpsert{SerialNumber: serial}, domain.TestRunCreationData{Tester: "ana", Result: ptr("maybe")})
		requireBadRequestError(t, err)
		assert.Equal(t, 0, countBoards(t, serial))
	})

	t.Run("blank serial", func(t *testing.T) {
		_, err := storage.CreateTestRun(ctx, domain.BoardUpsert{SerialNumber: ""}, domain.TestRunCreationData{Tester: "ana"})
		requireBadRequestError(t, err)
	})
}

func TestListTestRuns(t *testing.T) {
	ctx := context.Background()

	serial := generateSerial(t)
	future := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Second)
	var ids []domain.TestRunId
	for i := 0; i < 3; i++ {
		created, err := storage.CreateTestRun(ctx, domain.BoardUpsert{SerialNumber: serial}, domain.TestRunCreationData{
			Tester:   "lister",
			TestedAt: ptr(future.Add(time.Duration(i) * time.Minute)),
		})
		require.NoError(t, err)
		ids = append(ids, created.RunId)
	}

	t.Run("newest first with serial", func(t *testing.T) {
		runs, err := storage.ListTestRuns(ctx, 500)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(runs), 3)

		// the three future-dated runs sort ahead of everything else
		assert.Equal(t, []domain.TestRunId{ids[2], ids[1], ids[0]}, []domain.TestRunId{runs[0].Id, runs[1].Id, runs[2].Id})
		for _, r := range runs[:3] {
			assert.Equal(t, serial, r.SerialNumber)
		}
		for i := 1; i < len(runs); i++ {
			assert.False(t, runs[i].TestedAt.After(runs[i-1].TestedAt), "list must be ordered by tested_at desc")
		}
	})

	t.Run("limit caps the rows", func(t *testing.T) {
		runs, err := storage.ListTestRuns(ctx, 2)
		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})
}
