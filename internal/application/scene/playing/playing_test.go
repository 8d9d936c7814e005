package playing

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/bedtime/internal/application/replay"
	"github.com/younwookim/bedtime/internal/application/scene"
	"github.com/younwookim/bedtime/internal/application/state"
	"github.com/younwookim/bedtime/internal/application/system"
	"github.com/younwookim/bedtime/internal/infrastructure/config"
)

// createTestConfig returns the defaults with a fixed seed
func createTestConfig() *config.GameConfig {
	cfg := config.Default()
	cfg.Run.Seed = 7
	return &cfg
}

func createTestPlaying(t *testing.T, recordPath string) *Playing {
	t.Helper()
	p, err := New(createTestConfig(), Options{Seed: 7, RecordPath: recordPath})
	require.NoError(t, err)
	return p
}

func TestPlaying_ImplementsScene(t *testing.T) {
	// Compile-time check that Playing implements scene.Scene
	var _ scene.Scene = (*Playing)(nil)
}

func TestNewPlaying(t *testing.T) {
	p := createTestPlaying(t, "")

	assert.NotNil(t, p.session.Layout())
	assert.Equal(t, 1, p.session.Runs())
	assert.Equal(t, int64(7), p.session.Seed())
	assert.Nil(t, p.recorder)
}

func TestNewPlaying_InvalidLayout(t *testing.T) {
	cfg := createTestConfig()
	cfg.Platforms.Count = 0

	_, err := New(cfg, Options{Seed: 1})

	assert.Error(t, err)
}

func TestPlaying_Update_ReturnsNilWhenPlaying(t *testing.T) {
	p := createTestPlaying(t, "")

	next, err := p.Update(1.0 / 60.0)

	assert.NoError(t, err)
	assert.Nil(t, next, "Should return nil when continuing to play")
}

func TestPlaying_RecordsEveryStep(t *testing.T) {
	p := createTestPlaying(t, filepath.Join(t.TempDir(), "run.json"))
	require.NotNil(t, p.recorder)
	assert.Equal(t, int64(7), p.recorder.Data().Seed, "recorder picks up the run seed")

	p.step(system.InputState{Right: true})
	p.step(system.InputState{})

	assert.Equal(t, 2, p.recorder.FrameCount())
}

func TestPlaying_SavesRecordingWhenRunEnds(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	p := createTestPlaying(t, path)

	p.step(system.InputState{})
	p.session.OnHazardOverlap(0)
	p.step(system.InputState{})

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), data.Seed)
	assert.Len(t, data.Frames, 2)
}

func TestPlaying_RestartStartsNewRecording(t *testing.T) {
	p := createTestPlaying(t, filepath.Join(t.TempDir(), "run.json"))

	p.session.OnHazardOverlap(0)
	for i := 0; i < 200 && p.session.Runs() == 1; i++ {
		p.step(system.InputState{})
	}

	require.Equal(t, 2, p.session.Runs())
	assert.Equal(t, state.Playing, p.session.Outcome())
	assert.Equal(t, 1, p.recorder.FrameCount(), "restart frame opens the new recording")
	assert.Zero(t, p.flashFrames, "reactions reset with the run")
}

func TestPlaying_CollectedSpawnsPopup(t *testing.T) {
	p := createTestPlaying(t, "")

	p.session.OnCollectibleOverlap(0)

	require.Len(t, p.popups, 1)
	assert.Equal(t, "+10", p.popups[0].text)

	for i := 0; i < popupFrames; i++ {
		p.step(system.InputState{})
	}
	assert.Empty(t, p.popups)
}

func TestPlaying_HazardHitShakesAndFlashes(t *testing.T) {
	p := createTestPlaying(t, "")

	p.session.OnHazardOverlap(0)
	assert.Equal(t, flashFrames, p.flashFrames)
	assert.Equal(t, shakeHit, p.shake)

	for i := 0; i < 60; i++ {
		p.step(system.InputState{})
	}
	assert.Zero(t, p.flashFrames)
	assert.Zero(t, p.shake)
}

func TestPlaying_CameraClamped(t *testing.T) {
	p := createTestPlaying(t, "")

	camX, camY := p.camera()

	assert.Equal(t, 0.0, camX, "player starts near the left edge")
	assert.Equal(t, 0.0, camY, "world is no taller than the screen")
}

func TestClampCam(t *testing.T) {
	tests := []struct {
		name     string
		v, limit float64
		want     float64
	}{
		{"inside", 120, 640, 120},
		{"before start", -50, 640, 0},
		{"past end", 700, 640, 640},
		{"world smaller than screen", 30, -100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clampCam(tt.v, tt.limit))
		})
	}
}

func TestPlaying_OnEnter(t *testing.T) {
	p := createTestPlaying(t, "")

	// OnEnter should not panic
	assert.NotPanics(t, func() {
		p.OnEnter()
	})
}

func TestPlaying_OnExitWithRecorder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exit.json")
	p := createTestPlaying(t, path)

	p.step(system.InputState{Right: true})
	p.step(system.InputState{Right: true})
	p.OnExit()

	data, err := replay.LoadReplay(path)
	require.NoError(t, err)
	assert.Len(t, data.Frames, 2)

	assert.False(t, p.recorder.IsRecording(), "recording stops with the scene")
	p.step(system.InputState{})
	assert.Equal(t, 2, p.recorder.FrameCount())
}

func TestPlaying_Layout(t *testing.T) {
	p := createTestPlaying(t, "")

	w, h := p.Layout(1920, 1080)

	assert.Equal(t, 960, w)
	assert.Equal(t, 700, h)
}
