package terminal

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/alexanderramin/worktimer/internal/driver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreen_RedrawsInPlace(t *testing.T) {
	var buf bytes.Buffer
	s := NewScreen(&buf)

	s.Draw(1, 0, false)
	first := buf.String()
	assert.NotContains(t, first, cursorUpClear)
	assert.Contains(t, first, "00:00:01")

	buf.Reset()
	s.Draw(1, 5, true)
	assert.True(t, strings.HasPrefix(buf.String(), cursorUpClear))
	assert.Contains(t, buf.String(), "00:00:05")

	buf.Reset()
	require.NoError(t, s.Close())
	assert.Equal(t, lineBreak, buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestScreen_SwallowsWriteErrors(t *testing.T) {
	s := NewScreen(failingWriter{})
	assert.NotPanics(t, func() { s.Draw(1, 2, false) })
}

func TestKeyboard_ClassifiesKeys(t *testing.T) {
	k := NewKeyboard(strings.NewReader("xp\x03q"), DefaultKeys)

	var got []driver.Event
	for i := 0; i < 4; i++ {
		ev, err := k.PollEvent(time.Second)
		require.NoError(t, err)
		got = append(got, ev)
	}
	assert.Equal(t, []driver.Event{driver.EventOther, driver.EventPause, driver.EventQuit, driver.EventQuit}, got)

	_, err := k.PollEvent(time.Second)
	assert.ErrorIs(t, err, ErrInputClosed)
}

func TestKeyboard_TimesOut(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() { pw.Close() })
	k := NewKeyboard(pr, DefaultKeys)

	start := time.Now()
	ev, err := k.PollEvent(20 * time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, driver.EventNone, ev)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestKeyboard_CustomKeys(t *testing.T) {
	keys, err := ParseKeys("b", "x")
	require.NoError(t, err)
	k := NewKeyboard(strings.NewReader("bpx"), keys)

	ev, _ := k.PollEvent(time.Second)
	assert.Equal(t, driver.EventPause, ev)
	ev, _ = k.PollEvent(time.Second)
	assert.Equal(t, driver.EventOther, ev)
	ev, _ = k.PollEvent(time.Second)
	assert.Equal(t, driver.EventQuit, ev)
	assert.NoError(t, k.Close())
}

func TestParseKeys_RejectsMultiChar(t *testing.T) {
	_, err := ParseKeys("pp", "q")
	assert.Error(t, err)
	_, err = ParseKeys("p", "")
	assert.Error(t, err)
}
