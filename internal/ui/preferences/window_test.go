package preferences

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleSaveParsesEntries(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) {
		saved = settings
	})

	prefs.hours.SetText("1")
	prefs.minutes.SetText("30")
	prefs.seconds.SetText("0")
	prefs.tick.SetText("250")
	prefs.chime.SetChecked(false)
	prefs.handleSave()

	assert.Equal(t, 1, saved.CountdownHours)
	assert.Equal(t, 30, saved.CountdownMinutes)
	assert.Equal(t, 0, saved.CountdownSeconds)
	assert.Equal(t, 250*time.Millisecond, saved.TickInterval)
	assert.False(t, saved.ChimeEnabled)
}

func TestHandleCancelDiscardsEdits(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, DefaultSettings(), nil)

	prefs.hours.SetText("9")
	prefs.tick.SetText("1")
	prefs.chime.SetChecked(false)
	prefs.handleCancel()

	require.Equal(t, DefaultSettings(), prefs.settings)
	assert.Equal(t, "0", prefs.hours.Text)
	assert.Equal(t, "100", prefs.tick.Text)
	assert.True(t, prefs.chime.Checked)
}
