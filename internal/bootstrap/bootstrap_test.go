package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/middleearth/internal/config"
	"github.com/osse101/middleearth/internal/domain"
	"github.com/osse101/middleearth/internal/event"
	"github.com/osse101/middleearth/internal/logger"
	"github.com/osse101/middleearth/internal/server"
	"github.com/osse101/middleearth/internal/sse"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:          config.DefaultLogLevel,
		LogFormat:         config.DefaultLogFormat,
		Environment:       config.DefaultEnvironment,
		ServiceName:       config.DefaultServiceName,
		Version:           config.DefaultVersion,
		ContentDir:        filepath.Join("..", "..", config.DefaultContentDir),
		PlayerName:        "Pippin",
		RNGSeed:           42,
		RunProbability:    config.DefaultRunProbability,
		LowLevelUniqueCap: config.DefaultLowLevelUniqueCap,
		ShutdownTimeout:   time.Second,
	}
}

func restoreLogger(t *testing.T) {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
}

func TestSetupLogger_WritesSessionFile(t *testing.T) {
	restoreLogger(t)
	cfg := testConfig(t)
	cfg.LogDir = filepath.Join(t.TempDir(), "logs")

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	slog.Info("hello from the test")

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), LogMsgStartingGame)
	assert.Contains(t, string(data), "hello from the test")
	assert.True(t, strings.HasPrefix(filepath.Base(f.Name()), "session_"))
}

func TestSetupLogger_Stderr(t *testing.T) {
	restoreLogger(t)
	cfg := testConfig(t)

	f, err := SetupLogger(cfg)
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestLoggerConfig_AddSourceInDevOnly(t *testing.T) {
	cfg := testConfig(t)
	cfg.Environment = logger.EnvironmentDev
	assert.True(t, LoggerConfig(cfg).AddSource)

	cfg.Environment = logger.EnvironmentProduction
	assert.False(t, LoggerConfig(cfg).AddSource)
}

func TestCleanupLogs(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf(LogFileNamePattern, fmt.Sprintf("2026-01-%02d_00-00-00", i+1))
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0o600))

	cleanupLogs(dir)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var logs []string
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), LogFileExtension) {
			logs = append(logs, e.Name())
		}
	}
	assert.Len(t, logs, LogFileRetentionCount)
	assert.NotContains(t, logs, "session_2026-01-01_00-00-00.log")
	assert.Contains(t, logs, "session_2026-01-12_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "notes.txt"))
}

func TestLoadContent(t *testing.T) {
	logger.Discard()
	cfg := testConfig(t)

	content, err := LoadContent(context.Background(), cfg, rand.New(rand.NewSource(1))) //nolint:gosec // G404: test rng
	require.NoError(t, err)

	assert.Equal(t, "shire", content.World.Start().Key())
	assert.Contains(t, content.World.StorySpecies(), "uruk_hai")
	assert.NotEmpty(t, content.Monsters.Regions())
	assert.NotNil(t, content.Items)
}

func TestLoadContent_MissingDir(t *testing.T) {
	logger.Discard()
	cfg := testConfig(t)
	cfg.ContentDir = t.TempDir()

	_, err := LoadContent(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadMonsters)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadContent_UnknownStorySpecies(t *testing.T) {
	logger.Discard()
	cfg := testConfig(t)
	dir := t.TempDir()
	for _, name := range []string{config.ContentFileMonsters, config.ContentFileItems} {
		data, err := os.ReadFile(filepath.Join(cfg.ContentDir, name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
	worldYAML := `start: a
locations:
  - key: a
    name: A
    region: rohan
    story:
      waves:
        - spawns: [{species: dragon, count: 1}]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ContentFileWorld), []byte(worldYAML), 0o600))
	cfg.ContentDir = dir

	_, err := LoadContent(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedLoadWorld)
	assert.ErrorIs(t, err, domain.ErrUnknownSpecies)
}

func TestRegisterEventHandlers(t *testing.T) {
	logger.Discard()
	bus := InitializeEventSystem()
	battles := server.NewBattleLog(5, time.Hour)
	hub := sse.NewHub()
	hub.Start()
	defer hub.Stop()
	client := hub.Register(nil)

	require.NoError(t, RegisterEventHandlers(EventHandlerDependencies{EventBus: bus, BattleLog: battles, Events: hub}))

	require.NoError(t, bus.Publish(context.Background(), event.NewBattleEndedEvent(event.BattleEndedPayloadV1{
		BattleID: "b1",
		Context:  domain.ContextRandom,
		Outcome:  domain.OutcomeVictory,
		Rounds:   2,
	})))
	assert.Equal(t, 1, battles.Totals().Victories)
	select {
	case evt := <-client.EventChannel:
		assert.Equal(t, string(event.BattleEnded), evt.Type)
	case <-time.After(time.Second):
		t.Fatal("event not streamed")
	}

	assert.NoError(t, RegisterEventHandlers(EventHandlerDependencies{EventBus: event.NewMemoryBus()}),
		"the battle log is optional")
}

func TestBuildGame_Session(t *testing.T) {
	logger.Discard()
	cfg := testConfig(t)
	rng := rand.New(rand.NewSource(cfg.Seed())) //nolint:gosec // G404: test rng

	content, err := LoadContent(context.Background(), cfg, rng)
	require.NoError(t, err)

	var out bytes.Buffer
	game, err := BuildGame(cfg, content, event.NewMemoryBus(), rng, strings.NewReader("look\nstats\nquit\n"), &out)
	require.NoError(t, err)

	require.NoError(t, game.Run(context.Background()))
	assert.True(t, game.Over())
	assert.Contains(t, out.String(), "Pippin")
	assert.Contains(t, out.String(), "The Shire")
}

func TestBuildGame_InvalidEngineConfig(t *testing.T) {
	logger.Discard()
	cfg := testConfig(t)
	content, err := LoadContent(context.Background(), cfg, nil)
	require.NoError(t, err)

	cfg.RunProbability = 2
	_, err = BuildGame(cfg, content, event.NopBus{}, nil, strings.NewReader(""), &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgFailedCreateEngine)
}

func TestGracefulShutdown(t *testing.T) {
	logger.Discard()
	hub := sse.NewHub()
	hub.Start()
	client := hub.Register(nil)
	srv := server.NewServer(server.Options{Addr: "127.0.0.1:0", Events: hub}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	GracefulShutdown(ctx, ShutdownComponents{Server: srv, Events: hub})
	_, open := <-client.EventChannel
	assert.False(t, open, "streams are closed on shutdown")

	GracefulShutdown(ctx, ShutdownComponents{})
}
