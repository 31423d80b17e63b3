package automation

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/san-kum/labelmaker/internal/config"
	"github.com/stretchr/testify/require"
)

const batchYAML = `
name: december
labels:
  - preset: rates
    output: rates.svg
  - preset: simple
    title: Quick Anneal
    inline:
      schedule:
        temps: [25, 900, 25]
        times: [1, 10, 12, 10, 1]
  - config: label.yaml
`

const labelYAML = `
title: From File
schedule:
  temps: [850]
  times: [24]
`

func writeBatch(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "batch.yaml"), []byte(batchYAML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "label.yaml"), []byte(labelYAML), 0644))
	return filepath.Join(dir, "batch.yaml")
}

func TestLoadBatch(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t))
	require.NoError(t, err)
	require.Equal(t, "december", batch.Name)
	require.Len(t, batch.Labels, 3)
}

func TestParseBatchEmpty(t *testing.T) {
	_, err := ParseBatch([]byte("name: empty\n"))
	require.Error(t, err)
}

func TestResolve(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t))
	require.NoError(t, err)

	cfg, err := batch.Labels[0].Resolve(batch.dir)
	require.NoError(t, err)
	require.True(t, cfg.RateDriven())
	require.Equal(t, "rates.svg", cfg.Output.Path)

	cfg, err = batch.Labels[1].Resolve(batch.dir)
	require.NoError(t, err)
	require.Equal(t, "Quick Anneal", cfg.Title)
	require.Equal(t, []float64{25, 900, 25}, cfg.Schedule.Temps)
	require.Equal(t, config.DefaultWidth, cfg.Output.Width)

	cfg, err = batch.Labels[2].Resolve(batch.dir)
	require.NoError(t, err)
	require.Equal(t, "From File", cfg.Title)
}

func TestResolveErrors(t *testing.T) {
	l := BatchLabel{Preset: "rates", Config: "x.yaml"}
	_, err := l.Resolve("")
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	l = BatchLabel{Preset: "missing"}
	_, err = l.Resolve("")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t))
	require.NoError(t, err)

	var titles []string
	results, err := Run(context.Background(), batch, func(_ context.Context, cfg *config.Config) (string, error) {
		if _, err := cfg.BuildSchedule(); err != nil {
			return "", err
		}
		titles = append(titles, cfg.Title)
		return cfg.Title + ".svg", nil
	})
	require.NoError(t, err)
	require.Len(t, results, 3)
	require.Equal(t, []string{"Reaction Coordinate", "Quick Anneal", "From File"}, titles)
	require.Equal(t, 2, results[1].Index)
	require.Equal(t, "From File.svg", results[2].Output)
}

func TestRunCollectsErrors(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t))
	require.NoError(t, err)

	boom := errors.New("boom")
	calls := 0
	results, err := Run(context.Background(), batch, func(_ context.Context, cfg *config.Config) (string, error) {
		calls++
		if calls == 2 {
			return "", boom
		}
		return "ok", nil
	})
	require.ErrorIs(t, err, boom)
	require.ErrorContains(t, err, "label 2")
	require.Len(t, results, 3)
	require.Equal(t, 3, calls)
	require.Nil(t, results[0].Err)
	require.ErrorIs(t, results[1].Err, boom)
}

func TestRunCancelled(t *testing.T) {
	batch, err := LoadBatch(writeBatch(t))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	results, err := Run(ctx, batch, func(_ context.Context, cfg *config.Config) (string, error) {
		cancel()
		return "done", nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, results, 1)
}

func TestRunSweep(t *testing.T) {
	sweep := &RateSweep{
		Base:      config.GetPreset("rates"),
		MinFactor: 1,
		MaxFactor: 2,
		NumSteps:  2,
	}

	results, err := RunSweep(context.Background(), sweep)
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, 1.0, results[0].Factor)
	require.Equal(t, 2.0, results[1].Factor)
	require.Less(t, results[1].TotalTime, results[0].TotalTime)
	require.InDelta(t, 2*104.167, results[1].MaxRate, 1e-9)

	// the base config is untouched
	require.Equal(t, 104.167, sweep.Base.Schedule.Rates[0])
}

func TestRunSweepErrors(t *testing.T) {
	_, err := RunSweep(context.Background(), &RateSweep{Base: config.GetPreset("simple"), MinFactor: 1, MaxFactor: 2, NumSteps: 2})
	require.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = RunSweep(context.Background(), &RateSweep{Base: config.GetPreset("rates"), MinFactor: 0, MaxFactor: 2, NumSteps: 2})
	require.Error(t, err)
}

func TestRunSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunSweep(ctx, &RateSweep{Base: config.GetPreset("rates"), MinFactor: 1, MaxFactor: 3, NumSteps: 5})
	require.ErrorIs(t, err, context.Canceled)
}
