package ui

import "github.com/yileiCS/Game-Quizzical/internal/game"

type keyKind int

const (
	keyRune keyKind = iota
	keyUp
	keyDown
	keyEnter
	keyBackspace
)

type keyEvent struct {
	kind keyKind
	r    rune
}

// commandForKey maps one key event to a player command. Unmapped keys read
// as CmdNone so the answer loop just refreshes.
func commandForKey(ev keyEvent) game.Command {
	switch ev.kind {
	case keyUp:
		return game.Command{Kind: game.CmdUp}
	case keyDown:
		return game.Command{Kind: game.CmdDown}
	case keyEnter:
		return game.Command{Kind: game.CmdEnter}
	}
	switch ev.r {
	case 'h', 'H':
		return game.Command{Kind: game.CmdHint}
	case 'p', 'P':
		return game.Command{Kind: game.CmdPause}
	case 'a', 'A':
		return game.Command{Kind: game.CmdAsk}
	case 'q', 'Q':
		return game.Command{Kind: game.CmdQuit}
	}
	if ev.r >= '1' && ev.r <= '9' {
		return game.Command{Kind: game.CmdSelect, Index: int(ev.r - '0')}
	}
	return game.Command{Kind: game.CmdNone}
}
