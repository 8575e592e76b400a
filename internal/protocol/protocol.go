// Package protocol is a line-based text protocol for driving the engine
// from a controller process, in the spirit of GTP (Go Text Protocol):
// one command per line, a dispatch table keyed by command name, and a
// single "= ok" / "? error" response convention. The command loop itself
// follows the teacher's bufio.Scanner-driven read loop.
package protocol

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hailam/ninuki/internal/board"
	"github.com/hailam/ninuki/internal/engine"
	"github.com/hailam/ninuki/internal/rules"
)

// Driver runs the text command loop over one board and engine instance.
type Driver struct {
	eng   *engine.Engine
	b     *board.Board
	out   io.Writer
	moves int
}

// New builds a Driver over eng, starting from an empty board.
func New(eng *engine.Engine, out io.Writer) *Driver {
	return &Driver{eng: eng, b: board.New(), out: out}
}

type handlerFunc func(d *Driver, args []string) (string, error)

var handlers = map[string]handlerFunc{
	"clear_board":  (*Driver).cmdClearBoard,
	"showboard":    (*Driver).cmdShowBoard,
	"play":         (*Driver).cmdPlay,
	"genmove":      (*Driver).cmdGenMove,
	"configure":    (*Driver).cmdConfigure,
	"clear_tt":     (*Driver).cmdClearTT,
	"tt_stats":     (*Driver).cmdTTStats,
	"captures":     (*Driver).cmdCaptures,
	"quit":         (*Driver).cmdQuit,
}

// Run reads commands from in, one per line, until "quit" or EOF, writing
// "= <result>" or "? <error>" responses to out (GTP-style response
// convention).
func (d *Driver) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		cmd, args := fields[0], fields[1:]

		handler, ok := handlers[cmd]
		if !ok {
			fmt.Fprintf(d.out, "? unknown command: %s\n", cmd)
			continue
		}
		result, err := handler(d, args)
		if err != nil {
			fmt.Fprintf(d.out, "? %v\n", err)
			continue
		}
		fmt.Fprintf(d.out, "= %s\n", result)
		if cmd == "quit" {
			return
		}
	}
}

func (d *Driver) cmdClearBoard(_ []string) (string, error) {
	d.b = board.New()
	d.moves = 0
	d.eng.ClearTT()
	return "", nil
}

func (d *Driver) cmdShowBoard(_ []string) (string, error) {
	var sb strings.Builder
	sb.WriteByte('\n')
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			switch d.b.At(board.NewPos(r, c)) {
			case board.Black:
				sb.WriteByte('X')
			case board.White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}

func parseColor(s string) (board.Stone, error) {
	switch strings.ToLower(s) {
	case "b", "black":
		return board.Black, nil
	case "w", "white":
		return board.White, nil
	default:
		return board.Empty, fmt.Errorf("invalid color: %s", s)
	}
}

func parseCoord(s string) (board.Pos, error) {
	if len(s) < 2 {
		return board.Pos{}, fmt.Errorf("invalid coordinate: %s", s)
	}
	col := int(strings.ToUpper(s[:1])[0] - 'A')
	row, err := strconv.Atoi(s[1:])
	if err != nil {
		return board.Pos{}, fmt.Errorf("invalid coordinate: %s", s)
	}
	p := board.NewPos(board.Size-row, col)
	if !p.Valid() {
		return board.Pos{}, fmt.Errorf("coordinate off board: %s", s)
	}
	return p, nil
}

func (d *Driver) cmdPlay(args []string) (string, error) {
	if len(args) != 2 {
		return "", fmt.Errorf("usage: play <color> <coord>")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	pos, err := parseCoord(args[1])
	if err != nil {
		return "", err
	}
	if !rules.IsValidMove(d.b, pos, color) {
		return "", fmt.Errorf("illegal move: %s", args[1])
	}
	captured := rules.CapturedPositions(d.b, pos, color)
	d.b.Place(pos, color)
	rules.ExecuteCaptures(d.b, captured, color)
	d.moves++
	return "ok", nil
}

func (d *Driver) cmdGenMove(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: genmove <color>")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	res := d.eng.GetBestMove(d.b, color)
	if !res.HasMove {
		return "resign", nil
	}
	captured := rules.CapturedPositions(d.b, res.Move, color)
	d.b.Place(res.Move, color)
	rules.ExecuteCaptures(d.b, captured, color)
	d.moves++
	return fmt.Sprintf("%s (%s, score=%d, nodes=%d, %dms)", res.Move.Label(), res.Kind, res.Score, res.Nodes, res.ElapsedMs), nil
}

func (d *Driver) cmdConfigure(args []string) (string, error) {
	if len(args) != 3 {
		return "", fmt.Errorf("usage: configure <tt_bytes> <max_depth> <time_budget_ms>")
	}
	ttBytes, err1 := strconv.Atoi(args[0])
	depth, err2 := strconv.Atoi(args[1])
	budget, err3 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return "", fmt.Errorf("configure expects three integers")
	}
	d.eng.Configure(ttBytes, depth, budget)
	return "ok", nil
}

func (d *Driver) cmdClearTT(_ []string) (string, error) {
	d.eng.ClearTT()
	return "ok", nil
}

func (d *Driver) cmdTTStats(_ []string) (string, error) {
	s := d.eng.TTStats()
	return fmt.Sprintf("size=%d used=%d percent=%.2f", s.Size, s.Used, s.Percent), nil
}

func (d *Driver) cmdCaptures(args []string) (string, error) {
	if len(args) != 1 {
		return "", fmt.Errorf("usage: captures <color>")
	}
	color, err := parseColor(args[0])
	if err != nil {
		return "", err
	}
	return strconv.Itoa(d.b.Captures(color)), nil
}

func (d *Driver) cmdQuit(_ []string) (string, error) {
	return "bye", nil
}
