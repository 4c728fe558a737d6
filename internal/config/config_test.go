package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marquee/internal/domain"
	"marquee/internal/eventbus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, domain.Forward, cfg.Direction)
	assert.Equal(t, 30*time.Minute, cfg.CycleDuration.D())
	assert.Equal(t, domain.PingPong, cfg.EndBehavior)
	assert.True(t, cfg.UserScrollEnabled)
	assert.Equal(t, 3*time.Second, cfg.ResumeDelay.D())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "absent.toml"), nil)

	cfg, err := svc.Load()

	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadFromPath_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
version = 1
direction = "reverse"
end_behavior = "loop"
cycle_duration = "2m30s"

[ui]
separator = " | "
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := NewConfigServiceAt(path, nil).LoadFromPath(path)

	require.NoError(t, err)
	assert.Equal(t, domain.Reverse, cfg.Direction)
	assert.Equal(t, domain.Loop, cfg.EndBehavior)
	assert.Equal(t, 150*time.Second, cfg.CycleDuration.D())
	assert.Equal(t, " | ", cfg.UISettings.Separator)
	// untouched keys
	assert.True(t, cfg.UserScrollEnabled)
	assert.Equal(t, 3*time.Second, cfg.ResumeDelay.D())
	assert.Equal(t, 33*time.Millisecond, cfg.UISettings.FrameInterval.D())
}

func TestLoadFromPath_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad direction", `direction = "sideways"`},
		{"bad end behavior", `end_behavior = "teleport"`},
		{"bad duration", `cycle_duration = "soon"`},
		{"zero cycle", `cycle_duration = "0s"`},
		{"negative resume", `resume_delay = "-1s"`},
		{"wrong version", `version = 7`},
		{"frame too slow", "[ui]\nframe_interval = \"5s\""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := NewConfigServiceAt(path, nil).LoadFromPath(path)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestLoadFromPath_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = ["), 0644))

	_, err := NewConfigServiceAt(path, nil).LoadFromPath(path)

	assert.Error(t, err)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	svc := NewConfigServiceAt(path, nil)

	cfg := DefaultConfig()
	cfg.Direction = domain.Reverse
	cfg.ResumeDelay = Duration(1500 * time.Millisecond)
	cfg.ItemsFile = "/tmp/headlines.txt"
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.True(t, strings.Contains(text, `direction = 'reverse'`) || strings.Contains(text, `direction = "reverse"`), text)
	assert.Contains(t, text, "1.5s")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestSave_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := DefaultConfig()
	cfg.CycleDuration = 0

	err := NewConfigServiceAt(path, nil).SaveToPath(cfg, path)

	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
	assert.NoFileExists(t, path)
}

func TestService_PublishesEvents(t *testing.T) {
	bus := eventbus.New(zerolog.Nop())
	defer bus.Close()

	got := make(chan eventbus.DomainEvent, 2)
	bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) { got <- e })
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) { got <- e })

	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigServiceAt(path, bus)
	require.NoError(t, svc.Save(DefaultConfig()))
	_, err := svc.Load()
	require.NoError(t, err)

	for _, want := range []eventbus.EventType{eventbus.EventConfigSaved, eventbus.EventConfigLoaded} {
		select {
		case e := <-got:
			assert.Equal(t, want, e.Type())
		case <-time.After(time.Second):
			t.Fatalf("no %s event", want)
		}
	}
}

func TestDriverOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndBehavior = domain.Loop
	cfg.UserScrollEnabled = false

	opts := cfg.DriverOptions()

	assert.Equal(t, domain.Loop, opts.EndBehavior)
	assert.False(t, opts.UserScrollEnabled)
	assert.Equal(t, 30*time.Minute, opts.CycleDuration)
}

func TestNewConfigService_DefaultPath(t *testing.T) {
	svc := NewConfigService()

	assert.True(t, strings.HasSuffix(svc.Path(), filepath.Join("marquee", "config.toml")))
}
