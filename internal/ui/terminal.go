package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/yileiCS/Game-Quizzical/internal/game"
	"github.com/yileiCS/Game-Quizzical/internal/scores"
)

const (
	escReset     = "\x1b[0m"
	escBold      = "\x1b[1m"
	escRed       = "\x1b[31m"
	escGreen     = "\x1b[32m"
	escYellow    = "\x1b[33m"
	escCyan      = "\x1b[36m"
	escClear     = "\x1b[2J\x1b[H"
	escHideCur   = "\x1b[?25l"
	escShowCur   = "\x1b[?25h"
	crlf         = "\r\n"
	messageDwell = 1200 * time.Millisecond
)

var banner = []string{
	`  ___  _   _ ___ __________ ___ ____    _    _     `,
	` / _ \| | | |_ _|__  /__  /|_ _/ ___|  / \  | |    `,
	`| | | | | | || |  / /  / /  | | |     / _ \ | |    `,
	`| |_| | |_| || | / /_ / /_  | | |___ / ___ \| |___ `,
	` \__\_\\___/|___/____/____|___\____/_/   \_\_____|`,
}

// Terminal is the ANSI full-screen presenter. It puts stdin into raw mode
// for the lifetime of the game and decodes keys on a background goroutine so
// reads can be time-boxed.
type Terminal struct {
	in     *os.File
	out    io.Writer
	fd     int
	saved  *term.State
	keys   chan keyEvent
	width  int
	height int
}

// NewTerminal switches the controlling terminal into raw mode. Callers must
// Close to restore it.
func NewTerminal() (*Terminal, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("ui: stdin is not a terminal")
	}
	saved, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("ui: enter raw mode: %w", err)
	}
	width, height, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		width, height = 80, 24
	}
	t := &Terminal{
		in:     os.Stdin,
		out:    os.Stdout,
		fd:     fd,
		saved:  saved,
		keys:   make(chan keyEvent, 16),
		width:  width,
		height: height,
	}
	fmt.Fprint(t.out, escHideCur)
	go t.readKeys()
	return t, nil
}

// Close restores the terminal state.
func (t *Terminal) Close() error {
	fmt.Fprint(t.out, escShowCur+escReset+crlf)
	return term.Restore(t.fd, t.saved)
}

func (t *Terminal) readKeys() {
	reader := bufio.NewReader(t.in)
	for {
		b, err := reader.ReadByte()
		if err != nil {
			close(t.keys)
			return
		}
		switch {
		case b == 0x1b: // escape sequence, arrows arrive as ESC [ A/B
			next, err := reader.ReadByte()
			if err != nil {
				close(t.keys)
				return
			}
			if next != '[' {
				continue
			}
			final, err := reader.ReadByte()
			if err != nil {
				close(t.keys)
				return
			}
			switch final {
			case 'A':
				t.keys <- keyEvent{kind: keyUp}
			case 'B':
				t.keys <- keyEvent{kind: keyDown}
			}
		case b == '\r' || b == '\n':
			t.keys <- keyEvent{kind: keyEnter}
		case b == 0x7f || b == 0x08:
			t.keys <- keyEvent{kind: keyBackspace}
		case b == 0x03: // Ctrl-C quits like q
			t.keys <- keyEvent{kind: keyRune, r: 'q'}
		case b >= 0x20 && b < 0x7f:
			t.keys <- keyEvent{kind: keyRune, r: rune(b)}
		}
	}
}

// ReadCommand returns the next decoded command, or CmdNone after timeout so
// the caller can refresh the countdown.
func (t *Terminal) ReadCommand(timeout time.Duration) game.Command {
	select {
	case ev, ok := <-t.keys:
		if !ok {
			return game.Command{Kind: game.CmdQuit}
		}
		return commandForKey(ev)
	case <-time.After(timeout):
		return game.Command{Kind: game.CmdNone}
	}
}

// waitKey blocks for the next key event.
func (t *Terminal) waitKey() keyEvent {
	ev, ok := <-t.keys
	if !ok {
		return keyEvent{kind: keyRune, r: 'q'}
	}
	return ev
}

func (t *Terminal) centered(line string) string {
	pad := (t.width - len(line)) / 2
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + line
}

func (t *Terminal) flushFrame(lines []string) {
	var sb strings.Builder
	sb.WriteString(escClear)
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString(crlf)
	}
	fmt.Fprint(t.out, sb.String())
}

func toneColor(tone game.Tone) string {
	switch tone {
	case game.ToneCorrect:
		return escGreen
	case game.ToneWrong:
		return escRed
	case game.ToneHighlight:
		return escYellow
	}
	return ""
}

// Render paints the in-question screen: banner, status line, question,
// options with the selection cursor, inline message, controls footer.
func (t *Terminal) Render(v game.View) {
	lines := make([]string, 0, t.height)
	for _, b := range banner {
		lines = append(lines, escYellow+t.centered(b)+escReset)
	}
	lines = append(lines, "")
	status := fmt.Sprintf("Score: %d | Best: %d | %sTime: %ds%s",
		v.Score, v.BestScore, escCyan, v.TimeLeft, escReset)
	lines = append(lines, escBold+t.centered(status)+escReset)

	meta := fmt.Sprintf("Category: %s | Difficulty: %s", v.Category, strings.ToUpper(v.Difficulty))
	if v.IsBonus {
		meta += " | " + escYellow + "BONUS x2" + escReset
	}
	lines = append(lines, t.centered(meta), strings.Repeat("-", t.width), "")

	for _, qline := range wrapText(v.Question, t.width-4) {
		lines = append(lines, "  "+qline)
	}
	lines = append(lines, "")
	for i, answer := range v.Answers {
		cursor := "  "
		color := ""
		if i == v.Selected {
			cursor = "> "
			color = escYellow
		}
		lines = append(lines, fmt.Sprintf("   %s%s%d. %s%s", color, cursor, i+1, answer, escReset))
	}

	if v.Message != "" {
		lines = append(lines, "")
		for _, mline := range strings.Split(v.Message, "\n") {
			lines = append(lines, "  "+toneColor(v.MessageTone)+mline+escReset)
		}
	}

	lines = append(lines, "",
		t.centered("+---------------------- CONTROLS ---------------------+"),
		t.centered("|  Up/Down - Navigate  |  A - Ask Host  |  Q - Quit   |"),
		t.centered("|  Enter/1-4 - Answer  |  H - Hint      |  P - Pause  |"),
		t.centered("+-----------------------------------------------------+"),
		t.centered(fmt.Sprintf("Hints: %d | Pauses: %d | Ask host: %d",
			v.HintsRemaining, v.PausesRemaining, v.AskHostRemaining)))
	t.flushFrame(lines)
}

// Greet shows the pre-game banner.
func (t *Terminal) Greet() {
	lines := []string{"", ""}
	for _, b := range banner {
		lines = append(lines, escYellow+t.centered(b)+escReset)
	}
	lines = append(lines, "",
		t.centered("Interactive terminal trivia"),
		"",
		t.centered("Please maximize the terminal window for the best experience."))
	t.flushFrame(lines)
	time.Sleep(messageDwell)
}

// PromptStart waits in the lobby. Enter starts a match, q leaves.
func (t *Terminal) PromptStart() bool {
	t.flushFrame([]string{"", "", "",
		t.centered("Press ENTER to start the game (or Q to quit)")})
	for {
		ev := t.waitKey()
		if ev.kind == keyEnter {
			return true
		}
		if ev.r == 'q' || ev.r == 'Q' {
			return false
		}
	}
}

// PromptDifficulty asks for the next question's difficulty.
func (t *Terminal) PromptDifficulty() (string, bool) {
	t.flushFrame([]string{"", "", "",
		t.centered("Choose difficulty for the next question:"),
		"",
		t.centered("1. Easy   |   2. Medium   |   3. Hard"),
		"",
		t.centered("(number keys to select, Q to quit)")})
	for {
		ev := t.waitKey()
		switch ev.r {
		case '1':
			return game.DifficultyEasy, true
		case '2':
			return game.DifficultyMedium, true
		case '3':
			return game.DifficultyHard, true
		case 'q', 'Q':
			return "", false
		}
	}
}

// PromptBonusCategory shows the sampled candidates and returns the pick.
func (t *Terminal) PromptBonusCategory(options []game.CategoryOption) (int, bool) {
	lines := []string{"", "",
		t.centered("Please select the bonus category"),
		t.centered("(double points for correct answers!)"),
		""}
	for i, opt := range options {
		lines = append(lines, t.centered(fmt.Sprintf("%d. %s", i+1, opt.Name)))
	}
	lines = append(lines, "", t.centered("(number keys to select, Q to quit)"))
	t.flushFrame(lines)
	for {
		ev := t.waitKey()
		if ev.r == 'q' || ev.r == 'Q' {
			return 0, false
		}
		if ev.r >= '1' && int(ev.r-'0') <= len(options) {
			return int(ev.r-'0') - 1, true
		}
	}
}

// PromptName collects a display name of at most 20 characters.
func (t *Terminal) PromptName() string {
	const prompt = "Enter your name (max 20 chars): "
	var name []rune
	for {
		t.flushFrame([]string{"", "", "",
			t.centered(prompt + string(name) + "_"),
			"",
			t.centered("(Enter to confirm)")})
		ev := t.waitKey()
		switch ev.kind {
		case keyEnter:
			return strings.TrimSpace(string(name))
		case keyBackspace:
			if len(name) > 0 {
				name = name[:len(name)-1]
			}
		case keyRune:
			if len(name) < scores.MaxNameLength {
				name = append(name, ev.r)
			}
		}
	}
}

// ShowMessage displays a centered message briefly.
func (t *Terminal) ShowMessage(text string, tone game.Tone) {
	color := toneColor(tone)
	lines := []string{"", "", ""}
	for _, l := range strings.Split(text, "\n") {
		lines = append(lines, color+t.centered(l)+escReset)
	}
	t.flushFrame(lines)
	time.Sleep(messageDwell)
}

// ShowPaused renders one second of the blocking pause window.
func (t *Terminal) ShowPaused(secondsLeft int) {
	t.flushFrame([]string{"", "", "",
		escYellow + t.centered("Game paused") + escReset,
		"",
		escCyan + t.centered(fmt.Sprintf("Resuming in %ds...", secondsLeft)) + escReset})
}

// ShowGameOver displays the final score and waits for a key.
func (t *Terminal) ShowGameOver(finalScore int) {
	t.flushFrame([]string{"", "",
		escRed + escBold + t.centered("G A M E   O V E R") + escReset,
		"",
		escYellow + t.centered(fmt.Sprintf("Final Score: %d", finalScore)) + escReset,
		"",
		t.centered("Press any key to continue...")})
	t.waitKey()
}

// ShowRankingBoard displays the persisted top-10 table.
func (t *Terminal) ShowRankingBoard(entries []scores.Entry) {
	lines := []string{"",
		escYellow + escBold + t.centered("RANKING BOARD") + escReset,
		"",
		t.centered(fmt.Sprintf("%-4s  %-20s  %5s", "Rank", "Name", "Score")),
		t.centered(strings.Repeat("-", 35))}
	if len(entries) == 0 {
		lines = append(lines, t.centered("No records yet."))
	}
	for i, e := range entries {
		lines = append(lines, t.centered(fmt.Sprintf("%-4d  %-20s  %5d", i+1, e.Name, e.Score)))
	}
	lines = append(lines, "", t.centered("Press any key to continue..."))
	t.flushFrame(lines)
	t.waitKey()
}

// PromptReplay asks whether to start another match.
func (t *Terminal) PromptReplay() bool {
	t.flushFrame([]string{"", "", "",
		t.centered("Play again? (Y/N)")})
	for {
		ev := t.waitKey()
		switch ev.r {
		case 'y', 'Y':
			return true
		case 'n', 'N', 'q', 'Q':
			return false
		}
	}
}

var _ game.Presenter = (*Terminal)(nil)
