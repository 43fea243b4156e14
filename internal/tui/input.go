package tui

import (
	"kasa/internal/ledger"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputMode says what a confirmed input submission will do.
type inputMode int

const (
	modeIdle     inputMode = iota
	modeEntering           // confirm inserts a fresh record
	modeEditing            // confirm overwrites the selected record
)

const inputFieldCount = 4

// inputTitles label the four entry fields, in buffer order.
var inputTitles = [inputFieldCount]string{
	"Amount",
	"Type (+/-)",
	"Category (FUN, RESTAURANT, SHOPPING, INVESTMENT, FREETIME, HOME, CLOTH, CAR, TRAVEL, OTHER, NONE)",
	"Date (DD.MM.YYYY)",
}

// inputState drives the multi-field text-entry mode: four buffers, a
// wrapping field cursor, and the pending edit target.
type inputState struct {
	mode   inputMode
	fields [inputFieldCount]textinput.Model
	focus  int
	target int // selection index being edited, only meaningful in modeEditing
}

func newInputState() inputState {
	st := inputState{target: -1}
	placeholders := [inputFieldCount]string{"50.00", "+ or -", "NONE", "24.12.2025"}
	for i := range st.fields {
		ti := textinput.New()
		ti.CharLimit = 64
		ti.Width = 40
		ti.Placeholder = placeholders[i]
		st.fields[i] = ti
	}
	return st
}

func (st *inputState) active() bool {
	return st.mode != modeIdle
}

// startEntering switches to fresh-record mode with empty buffers.
func (st *inputState) startEntering() tea.Cmd {
	st.mode = modeEntering
	st.focus = 0
	st.fields[0].Focus()
	return st.fields[0].Cursor.BlinkCmd()
}

// startEditing switches to update mode with buffers pre-populated from the
// record at the given selection index.
func (st *inputState) startEditing(r ledger.Record, index int) tea.Cmd {
	st.mode = modeEditing
	st.target = index
	st.focus = 0
	vals := r.EditFields()
	for i := range st.fields {
		st.fields[i].SetValue(vals[i])
		st.fields[i].Blur()
	}
	st.fields[0].Focus()
	return st.fields[0].Cursor.BlinkCmd()
}

// next advances the field cursor, wrapping past the last field.
func (st *inputState) next() tea.Cmd {
	st.fields[st.focus].Blur()
	st.focus = (st.focus + 1) % inputFieldCount
	st.fields[st.focus].Focus()
	return st.fields[st.focus].Cursor.BlinkCmd()
}

// prev retreats the field cursor, wrapping before the first field.
func (st *inputState) prev() tea.Cmd {
	st.fields[st.focus].Blur()
	st.focus = (st.focus - 1 + inputFieldCount) % inputFieldCount
	st.fields[st.focus].Focus()
	return st.fields[st.focus].Cursor.BlinkCmd()
}

// reset clears all buffers and returns to idle, whatever the current state.
func (st *inputState) reset() {
	for i := range st.fields {
		st.fields[i].SetValue("")
		st.fields[i].Blur()
	}
	st.focus = 0
	st.target = -1
	st.mode = modeIdle
}

// values snapshots the four raw buffers in validation order.
func (st *inputState) values() [inputFieldCount]string {
	var out [inputFieldCount]string
	for i := range st.fields {
		out[i] = st.fields[i].Value()
	}
	return out
}

// update forwards a key event to the focused field's text input.
func (st *inputState) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	st.fields[st.focus], cmd = st.fields[st.focus].Update(msg)
	return cmd
}
