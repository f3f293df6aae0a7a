package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigil-sh/vigil/internal/domain"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "sites.json"))
}

func TestLoadMissingFile(t *testing.T) {
	s := tempStore(t)
	_, err := s.Load()
	assert.ErrorIs(t, err, domain.ErrStoreNotFound)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := tempStore(t)

	sites := []domain.Site{
		{URL: "https://example.com", Interval: 10, Threshold: 4, Command: "systemctl restart app"},
		{URL: "http://other.test", Interval: 5, Threshold: 3},
	}
	require.NoError(t, s.Save(sites))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 2)

	// Configuration round-trips identically, order preserved
	assert.Equal(t, "https://example.com", loaded[0].URL)
	assert.Equal(t, 10, loaded[0].Interval)
	assert.Equal(t, 4, loaded[0].Threshold)
	assert.Equal(t, "systemctl restart app", loaded[0].Command)
	assert.Equal(t, "http://other.test", loaded[1].URL)
}

func TestLoadResetsMonitoringState(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save([]domain.Site{{
		URL:         "https://example.com",
		Interval:    5,
		Threshold:   3,
		Failures:    2,
		LastChecked: time.Now(),
		ActionFired: true,
	}}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)

	assert.Equal(t, 0, loaded[0].Failures)
	assert.True(t, loaded[0].LastChecked.IsZero())
	assert.False(t, loaded[0].ActionFired)
}

func TestLoadSaveIdempotent(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Save([]domain.Site{
		{URL: "https://a.test", Interval: 5, Threshold: 3, Failures: 1},
		{URL: "https://b.test", Interval: 9, Threshold: 2, Command: "echo hi"},
	}))

	first, err := s.Load()
	require.NoError(t, err)
	require.NoError(t, s.Save(first))
	second, err := s.Load()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestStoreFieldNames(t *testing.T) {
	s := tempStore(t)
	require.NoError(t, s.Save([]domain.Site{{URL: "https://example.com", Interval: 5, Threshold: 3}}))

	data, err := os.ReadFile(s.Path())
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)

	assert.Contains(t, raw[0], "url")
	assert.Contains(t, raw[0], "interval")
	assert.Contains(t, raw[0], "threshold")
	assert.Contains(t, raw[0], "failures")
	assert.Contains(t, raw[0], "action_fired")
}

func TestAdd(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Add(domain.Site{URL: "https://example.com"}))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, domain.DefaultInterval, loaded[0].Interval)
	assert.Equal(t, domain.DefaultThreshold, loaded[0].Threshold)
}

func TestAddDuplicate(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Add(domain.Site{URL: "https://example.com"}))
	err := s.Add(domain.Site{URL: "https://example.com"})
	assert.ErrorIs(t, err, domain.ErrSiteExists)
}

func TestAddInvalidURLNotPersisted(t *testing.T) {
	s := tempStore(t)

	err := s.Add(domain.Site{URL: "example.com"})
	assert.ErrorIs(t, err, domain.ErrInvalidURL)

	// Nothing was written
	_, err = os.Stat(s.Path())
	assert.True(t, os.IsNotExist(err))
}

func TestRemove(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Add(domain.Site{URL: "https://a.test"}))
	require.NoError(t, s.Add(domain.Site{URL: "https://b.test"}))

	require.NoError(t, s.Remove("https://a.test"))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, "https://b.test", loaded[0].URL)
}

func TestRemoveNotFound(t *testing.T) {
	s := tempStore(t)

	require.NoError(t, s.Add(domain.Site{URL: "https://a.test"}))
	assert.ErrorIs(t, s.Remove("https://missing.test"), domain.ErrSiteNotFound)

	// Missing store file reports site not found as well
	empty := tempStore(t)
	assert.ErrorIs(t, empty.Remove("https://a.test"), domain.ErrSiteNotFound)
}
