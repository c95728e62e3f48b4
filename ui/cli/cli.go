package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/notnil/chess"
	"golang.org/x/term"

	"chessmind/src/ai"
	"chessmind/src/rules"
)

// CLI is a terminal front end: the user types moves, the opponent
// replies through the scheduler so the reply is paced and tagged with
// the current generation.
type CLI struct {
	pos   *rules.Position
	sched *ai.Scheduler
	diff  ai.Difficulty
	in    *os.File
	out   io.Writer
}

func New(pos *rules.Position, sched *ai.Scheduler, diff ai.Difficulty) *CLI {
	return &CLI{pos: pos, sched: sched, diff: diff, in: os.Stdin, out: os.Stdout}
}

// Run drives the game in raw terminal mode:
// - type a SAN or UCI move and press Enter
// - left arrow takes back the last full move
// - 1/2/3 or easy/medium/hard switch difficulty
// - q or Ctrl+C quits
// Falls back to line mode when the terminal cannot be made raw.
func (c *CLI) Run() error {
	fd := int(c.in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return c.RunLineMode()
	}
	defer term.Restore(fd, oldState) //nolint:errcheck

	r := bufio.NewReader(c.in)
	var inputBuf strings.Builder

	DrawBoard(c.out, c.pos)
	c.printStatus()
	fmt.Fprint(c.out, "Type a move and press Enter, left arrow to take back, 'q' to quit.\r\n")

	for {
		b, err := r.ReadByte()
		if err != nil {
			return err
		}

		if b == 3 { // Ctrl+C
			fmt.Fprint(c.out, "\r\nInterrupted\r\n")
			return nil
		}
		if b == 0x1b { // escape sequence, possible arrow
			b1, err := r.ReadByte()
			if err != nil {
				continue
			}
			b2, err := r.ReadByte()
			if err != nil {
				continue
			}
			if b1 == '[' && b2 == 'D' { // left arrow
				c.takeBack()
				DrawBoard(c.out, c.pos)
				c.printStatus()
			}
			continue
		}

		if b == '\r' || b == '\n' {
			s := strings.TrimSpace(inputBuf.String())
			inputBuf.Reset()
			fmt.Fprint(c.out, "\r\n")
			if s == "" {
				continue
			}
			done, err := c.handleLine(s)
			if err != nil {
				return err
			}
			if done {
				return nil
			}
			continue
		}

		if b == 127 || b == 8 { // backspace
			cur := inputBuf.String()
			if len(cur) > 0 {
				inputBuf.Reset()
				inputBuf.WriteString(cur[:len(cur)-1])
				fmt.Fprint(c.out, "\b \b")
			}
			continue
		}

		if b >= 32 && b <= 126 {
			inputBuf.WriteByte(b)
			fmt.Fprintf(c.out, "%c", b)
		}
	}
}

// RunLineMode is the plain stdin fallback used by dumb terminals and
// piped input.
func (c *CLI) RunLineMode() error {
	scanner := bufio.NewScanner(c.in)
	DrawBoard(c.out, c.pos)
	c.printStatus()
	fmt.Fprintln(c.out, "Enter a move and press Enter. 'back' takes back a move, 'q' quits.")
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		done, err := c.handleLine(line)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
	return scanner.Err()
}

// handleLine processes one command or move. It returns done=true when
// the session should end.
func (c *CLI) handleLine(s string) (bool, error) {
	switch s {
	case "q", "Q", "quit":
		fmt.Fprint(c.out, "Quitting\r\n")
		return true, nil
	case "back":
		c.takeBack()
		DrawBoard(c.out, c.pos)
		c.printStatus()
		return false, nil
	case "fen":
		fmt.Fprintf(c.out, "%s\r\n", c.pos.FEN())
		return false, nil
	case "1", "easy":
		c.setDifficulty(ai.Easy)
		return false, nil
	case "2", "medium":
		c.setDifficulty(ai.Medium)
		return false, nil
	case "3", "hard":
		c.setDifficulty(ai.Hard)
		return false, nil
	}

	mv, err := c.pos.DecodeMove(s)
	if err != nil {
		fmt.Fprintf(c.out, "Invalid move: %s\r\n", s)
		return false, nil
	}
	fmt.Fprintf(c.out, "You played %s\r\n", c.pos.EncodeSAN(mv))
	c.pos.Apply(mv)
	DrawBoard(c.out, c.pos)
	c.printStatus()
	if c.pos.Terminal() {
		return true, nil
	}
	return c.engineReply()
}

// engineReply asks the scheduler for the opponent's move and applies it
// once delivered. The session advanced no generation in between, so the
// result is never stale here.
func (c *CLI) engineReply() (bool, error) {
	fmt.Fprint(c.out, "Thinking...\r\n")
	c.sched.RequestMove(c.pos, c.diff, c.sched.Generation())
	res := <-c.sched.Results()
	if res.Move == nil {
		fmt.Fprint(c.out, "No reply available\r\n")
		return true, nil
	}
	fmt.Fprintf(c.out, "Opponent played %s\r\n", c.pos.EncodeSAN(res.Move))
	c.pos.Apply(res.Move)
	DrawBoard(c.out, c.pos)
	c.printStatus()
	return c.pos.Terminal(), nil
}

// takeBack undoes the last full move (both plies) and invalidates any
// in-flight request.
func (c *CLI) takeBack() {
	if c.pos.Plies() < 2 {
		return
	}
	c.sched.Advance()
	c.pos.Undo()
	c.pos.Undo()
}

func (c *CLI) setDifficulty(d ai.Difficulty) {
	c.diff = d
	fmt.Fprintf(c.out, "Difficulty set to %s\r\n", d)
}

func (c *CLI) printStatus() {
	fmt.Fprintf(c.out, "FEN: %s\r\n", c.pos.FEN())
	switch c.pos.Status() {
	case chess.Checkmate:
		if c.pos.SideToMove() == chess.White {
			fmt.Fprint(c.out, "Checkmate, black wins\r\n")
		} else {
			fmt.Fprint(c.out, "Checkmate, white wins\r\n")
		}
	case chess.Stalemate:
		fmt.Fprint(c.out, "Stalemate\r\n")
	default:
		fmt.Fprintf(c.out, "%s to move (%s)\r\n", colorName(c.pos.SideToMove()), c.diff)
	}
}

func colorName(col chess.Color) string {
	if col == chess.White {
		return "white"
	}
	return "black"
}
