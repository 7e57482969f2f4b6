package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func TestAdd(t *testing.T) {
	t.Run("newest first", func(t *testing.T) {
		var entries []Entry
		entries = Add(entries, "Photosynthesis", false, base)
		entries = Add(entries, "Calculus", true, base.Add(time.Minute))

		require.Len(t, entries, 2)
		assert.Equal(t, Entry{Topic: "Calculus", MathMode: true, Timestamp: base.Add(time.Minute)}, entries[0])
		assert.Equal(t, "Photosynthesis", entries[1].Topic)
	})

	t.Run("case-insensitive dedupe", func(t *testing.T) {
		entries := []Entry{
			{Topic: "Calculus", Timestamp: base},
			{Topic: "photosynthesis", Timestamp: base},
			{Topic: "Gravity", Timestamp: base},
		}

		updated := Add(entries, "PhotoSynthesis", true, base.Add(time.Hour))

		require.Len(t, updated, 3)
		assert.Equal(t, "PhotoSynthesis", updated[0].Topic)
		assert.True(t, updated[0].MathMode)
		assert.Equal(t, "Calculus", updated[1].Topic)
		assert.Equal(t, "Gravity", updated[2].Topic)
		assert.Equal(t, "photosynthesis", entries[1].Topic, "input must not be modified")
	})

	t.Run("keeps at most ten", func(t *testing.T) {
		var entries []Entry
		for i := 0; i < 12; i++ {
			entries = Add(entries, fmt.Sprintf("topic-%d", i), false, base.Add(time.Duration(i)*time.Minute))
		}

		require.Len(t, entries, MaxEntries)
		assert.Equal(t, "topic-11", entries[0].Topic)
		assert.Equal(t, "topic-2", entries[MaxEntries-1].Topic)
	})
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{time.Minute, "1m ago"},
		{59 * time.Minute, "59m ago"},
		{time.Hour, "1h ago"},
		{23*time.Hour + 59*time.Minute, "23h ago"},
		{24 * time.Hour, "1d ago"},
		{10 * 24 * time.Hour, "10d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, RelativeTime(base.Add(-tt.ago), base))
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "studyhelper", "state.json"), p)
}

func TestStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "state.json")
	store := NewStore(path)

	state, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.TopicHistory)
	assert.False(t, state.DarkMode)

	require.NoError(t, store.Record("Photosynthesis", false, base))
	require.NoError(t, store.Record("Calculus", true, base.Add(time.Minute)))
	require.NoError(t, store.SetDarkMode(true))

	state, err = store.Load()
	require.NoError(t, err)
	require.Len(t, state.TopicHistory, 2)
	assert.Equal(t, "Calculus", state.TopicHistory[0].Topic)
	assert.True(t, state.TopicHistory[0].Timestamp.Equal(base.Add(time.Minute)))
	assert.True(t, state.DarkMode)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Contains(t, onDisk, "topicHistory")
	assert.Contains(t, onDisk, "darkMode")

	require.NoError(t, store.Clear())
	state, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, state.TopicHistory)
	assert.True(t, state.DarkMode)
}

func TestStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewStore(path).Load()
	assert.Error(t, err)
}
