package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yileiCS/Game-Quizzical/internal/game"
)

func TestCommandForKey(t *testing.T) {
	cases := []struct {
		name string
		ev   keyEvent
		want game.Command
	}{
		{"up arrow", keyEvent{kind: keyUp}, game.Command{Kind: game.CmdUp}},
		{"down arrow", keyEvent{kind: keyDown}, game.Command{Kind: game.CmdDown}},
		{"enter", keyEvent{kind: keyEnter}, game.Command{Kind: game.CmdEnter}},
		{"lowercase hint", keyEvent{kind: keyRune, r: 'h'}, game.Command{Kind: game.CmdHint}},
		{"uppercase hint", keyEvent{kind: keyRune, r: 'H'}, game.Command{Kind: game.CmdHint}},
		{"pause", keyEvent{kind: keyRune, r: 'p'}, game.Command{Kind: game.CmdPause}},
		{"ask host", keyEvent{kind: keyRune, r: 'A'}, game.Command{Kind: game.CmdAsk}},
		{"quit", keyEvent{kind: keyRune, r: 'q'}, game.Command{Kind: game.CmdQuit}},
		{"first option", keyEvent{kind: keyRune, r: '1'}, game.Command{Kind: game.CmdSelect, Index: 1}},
		{"fourth option", keyEvent{kind: keyRune, r: '4'}, game.Command{Kind: game.CmdSelect, Index: 4}},
		{"unmapped rune", keyEvent{kind: keyRune, r: 'z'}, game.Command{Kind: game.CmdNone}},
		{"backspace ignored", keyEvent{kind: keyBackspace}, game.Command{Kind: game.CmdNone}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, commandForKey(tc.ev))
		})
	}
}
