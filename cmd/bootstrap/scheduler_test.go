//go:build unit

package bootstrap

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
)

func TestCronLogger(t *testing.T) {
	var buf bytes.Buffer
	var l cron.Logger = cronLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	t.Run("info is written at debug", func(t *testing.T) {
		buf.Reset()
		l.Info("skip", "entry", 1)
		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "msg=skip")
		assert.Contains(t, buf.String(), "entry=1")
	})

	t.Run("error keeps the cause", func(t *testing.T) {
		buf.Reset()
		l.Error(errors.New("panic in job"), "panic", "stack", "trace")
		assert.Contains(t, buf.String(), "level=ERROR")
		assert.Contains(t, buf.String(), "stack=trace")
		assert.Contains(t, buf.String(), `error="panic in job"`)
	})
}

func TestSkipIfStillRunningUsesSlog(t *testing.T) {
	var buf bytes.Buffer
	cl := cronLogger{logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	release := make(chan struct{})
	started := make(chan struct{})
	job := cron.NewChain(cron.SkipIfStillRunning(cl)).Then(cron.FuncJob(func() {
		close(started)
		<-release
	}))

	done := make(chan struct{})
	go func() {
		job.Run()
		close(done)
	}()
	<-started
	job.Run()
	close(release)
	<-done

	assert.Contains(t, buf.String(), "msg=skip")
}
