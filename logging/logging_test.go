// SPDX-License-Identifier: MIT

package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvgrid/config"
	"github.com/katalvlaran/lvgrid/logging"
)

func TestForInput(t *testing.T) {
	cases := []struct {
		in      config.Input
		verbose bool
		want    logging.Level
	}{
		{config.InputActual, false, logging.LevelInfo},
		{config.InputActual, true, logging.LevelDebug},
		{config.InputTest, false, logging.LevelDebug},
		{config.InputTest, true, logging.LevelAll},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, logging.ForInput(tc.in, tc.verbose), "%v verbose=%v", tc.in, tc.verbose)
	}
}

func TestNew_Filters(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf, logging.LevelInfo)

	_ = level.Debug(logger).Log("msg", "hidden")
	_ = level.Info(logger).Log("msg", "shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "level=info")
	assert.Contains(t, out, "ts=")
	assert.Contains(t, out, "caller=logging_test.go:")
	assert.NotContains(t, out, "caller=level.go")

	buf.Reset()
	logger = logging.New(&buf, logging.LevelDebug)
	_ = level.Debug(logger).Log("msg", "visible")
	assert.Contains(t, buf.String(), "msg=visible")
}

func TestTrace_OnlyAtLevelAll(t *testing.T) {
	for _, tc := range []struct {
		lvl  logging.Level
		want bool
	}{
		{logging.LevelInfo, false},
		{logging.LevelDebug, false},
		{logging.LevelAll, true},
	} {
		var buf bytes.Buffer
		logger := logging.New(&buf, tc.lvl)
		_ = logging.Trace(logger).Log("msg", "echo")
		_ = level.Debug(logger).Log("msg", "debug record")

		out := buf.String()
		assert.Equal(t, tc.want, strings.Contains(out, "msg=echo"), "level %v", tc.lvl)
		assert.Equal(t, tc.lvl >= logging.LevelDebug, strings.Contains(out, `msg="debug record"`), "level %v", tc.lvl)
		if tc.want {
			assert.Contains(t, out, "level=trace")
			assert.Contains(t, out, "caller=logging_test.go:")
		}
	}
}

func TestLevel_String(t *testing.T) {
	assert.Equal(t, "info", logging.LevelInfo.String())
	assert.Equal(t, "debug", logging.LevelDebug.String())
	assert.Equal(t, "all", logging.LevelAll.String())
}
