package common_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finflow/dealrecon/cmd/common"
	"finflow/dealrecon/pkg/recon"
)

func TestLoadResultRequiresInput(t *testing.T) {
	r := recon.New("retail-1")
	_, err := common.LoadResult(r, "", ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--input")
}

func TestLoadResultMissingFile(t *testing.T) {
	r := recon.New("retail-1")
	_, err := common.LoadResult(r, filepath.Join(t.TempDir(), "nope.csv"), ',')
	assert.Error(t, err)
}

func TestLoadResultParsesFeed(t *testing.T) {
	csvData := "Id,Type,Date,Amount,ProjectId,CategoryId,ContractorId,CounterpartyIndividualId,TotalDealAmount,IsPrepayment,IsDealTranche,IsClosed\n" +
		"op-1,income,2024-03-01,400,p1,c1,acme,,1000,false,true,false\n"
	path := filepath.Join(t.TempDir(), "feed.csv")
	require.NoError(t, os.WriteFile(path, []byte(csvData), 0o600))

	r := recon.New("retail-1")
	res, err := common.LoadResult(r, path, ',')
	require.NoError(t, err)
	assert.Len(t, res.Keys(), 1)
}

func TestResolveAsOf(t *testing.T) {
	got, err := common.ResolveAsOf("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), got)

	now, err := common.ResolveAsOf("")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), now, time.Minute)

	_, err = common.ResolveAsOf("not-a-date")
	assert.Error(t, err)
}

func TestOpenOutput(t *testing.T) {
	w, closeFn, err := common.OpenOutput("")
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, w)
	assert.NoError(t, closeFn())

	path := filepath.Join(t.TempDir(), "out.txt")
	w, closeFn, err = common.OpenOutput(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("hello"))
	require.NoError(t, err)
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}
