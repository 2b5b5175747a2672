// Package cli implements the line-oriented frontend: square labels typed at the
// prompt are clicks, everything else is a command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/slices"

	"termchess/engine"
	"termchess/session"
	"termchess/types"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("wrong arguments")
)

// Command defines a command with its handler
type Command struct {
	Name        string
	ShortName   string
	Description string
	Usage       string
	Handler     func(r *Registry, args []string) error
}

// Registry manages command registration and execution
type Registry struct {
	sess     *session.Session
	out      io.Writer
	pal      palette
	opts     RenderOptions
	commands map[string]*Command
	quit     bool
}

func NewRegistry(sess *session.Session, out io.Writer, opts RenderOptions) *Registry {
	r := &Registry{
		sess:     sess,
		out:      out,
		pal:      palette{plain: opts.Plain},
		opts:     opts,
		commands: make(map[string]*Command),
	}

	r.Register(&Command{
		Name:        "board",
		ShortName:   "b",
		Description: "Show the board",
		Usage:       "board",
		Handler:     boardHandler,
	})
	r.Register(&Command{
		Name:        "moves",
		ShortName:   "m",
		Description: "List the moves of a square, or of the selection",
		Usage:       "moves [square]",
		Handler:     movesHandler,
	})
	r.Register(&Command{
		Name:        "move",
		ShortName:   "mv",
		Description: "Click two squares in a row",
		Usage:       "move <from> <to>",
		Handler:     moveHandler,
	})
	r.Register(&Command{
		Name:        "new",
		ShortName:   "n",
		Description: "Start a new game",
		Usage:       "new",
		Handler:     newHandler,
	})
	r.Register(&Command{
		Name:        "flip",
		ShortName:   "f",
		Description: "Turn the board around",
		Usage:       "flip",
		Handler:     flipHandler,
	})
	r.Register(&Command{
		Name:        "hints",
		ShortName:   "h",
		Description: "Toggle legal move markers",
		Usage:       "hints [on|off]",
		Handler:     hintsHandler,
	})
	r.Register(&Command{
		Name:        "help",
		ShortName:   "?",
		Description: "Show available commands",
		Usage:       "help [command]",
		Handler:     helpHandler,
	})
	r.Register(&Command{
		Name:        "quit",
		ShortName:   "q",
		Description: "Exit",
		Usage:       "quit",
		Handler:     quitHandler,
	})

	return r
}

func (r *Registry) Register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	if cmd.ShortName != "" {
		r.commands[cmd.ShortName] = cmd
	}
}

// Done reports whether a quit command was executed.
func (r *Registry) Done() bool {
	return r.quit
}

// Prompt describes the current game for the input line.
func (r *Registry) Prompt() string {
	state := r.sess.State()
	id := r.sess.ID()
	if len(id) > 8 {
		id = id[:8]
	}
	status := r.pal.ForPlayer(state.Turn().String(), state.Turn() == types.White)
	if winner, over := state.Winner(); over {
		status = r.pal.wrap(Magenta, winner.String()+" won")
	}
	return r.pal.Prompt(fmt.Sprintf("termchess [%s %s]", id, status))
}

// Execute runs one input line. A lone square label is a click on that square.
func (r *Registry) Execute(input string) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return
	}

	if len(parts) == 1 {
		if p, err := types.ParseLabel(parts[0]); err == nil {
			r.click(p)
			return
		}
	}

	cmd, exists := r.commands[parts[0]]
	if !exists {
		r.printf("%s\n", r.pal.wrap(Red, fmt.Sprintf("Unknown command: %s", parts[0])))
		r.printf("Type 'help' for available commands\n")
		return
	}
	if err := cmd.Handler(r, parts[1:]); err != nil {
		if errors.Is(err, ErrUsage) {
			err = fmt.Errorf("%w, usage: %s", err, cmd.Usage)
		}
		r.printf("%s\n", r.pal.wrap(Red, "Error: "+err.Error()))
	}
}

func (r *Registry) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...)
}

func (r *Registry) showBoard() {
	if err := RenderBoard(r.out, r.sess.State(), r.opts); err != nil {
		return
	}
	r.printf("%s\n", r.status())
}

func (r *Registry) status() string {
	state := r.sess.State()
	if winner, over := state.Winner(); over {
		return r.pal.wrap(Magenta, fmt.Sprintf("%s wins, king captured. Type 'new' to play again.", winner))
	}
	turn := state.Turn()
	return fmt.Sprintf("Move %d · %s to move", r.sess.MoveNumber()+1, r.pal.ForPlayer(turn.String(), turn == types.White))
}

func (r *Registry) click(p types.Position) {
	before := r.sess.State()
	t := r.sess.Click(p)

	switch t.Kind {
	case engine.Ignored:
		if before.IsGameOver() {
			r.printf("%s\n", r.status())
			return
		}
		r.printf("%s\n", r.pal.wrap(Yellow, fmt.Sprintf("Nothing happens on %s", p)))
		return
	case engine.Selected:
		state := r.sess.State()
		board := state.Board()
		if piece, ok := board[p.Y][p.X].Piece(); ok {
			r.printf("Selected %s on %s: %s\n", piece, p, formatTargets(state.SelectedMoves()))
		} else {
			r.printf("Selected empty %s\n", p)
		}
	case engine.Moved:
		line := fmt.Sprintf("%s %s-%s", t.Piece, t.From, t.To)
		if c, ok := t.Captured.Piece(); ok {
			line += fmt.Sprintf(", takes %s", c)
		}
		r.printf("%s\n", r.pal.wrap(Bold, line))
	}
	r.showBoard()
}

func formatTargets(m engine.MoveSet) string {
	if m.Len() == 0 {
		return "no moves"
	}
	targets := m.Sorted()
	labels := make([]string, len(targets))
	for i, t := range targets {
		labels[i] = t.String()
	}
	return strings.Join(labels, " ")
}

func boardHandler(r *Registry, args []string) error {
	r.showBoard()
	return nil
}

func movesHandler(r *Registry, args []string) error {
	state := r.sess.State()
	switch len(args) {
	case 0:
		sel, ok := state.Selection()
		if !ok {
			return errors.New("nothing selected")
		}
		r.printf("%s: %s\n", sel, formatTargets(state.LegalMoves(sel)))
	case 1:
		p, err := types.ParseLabel(args[0])
		if err != nil {
			return err
		}
		r.printf("%s: %s\n", p, formatTargets(state.LegalMoves(p)))
	default:
		return ErrUsage
	}
	return nil
}

func moveHandler(r *Registry, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	from, err := types.ParseLabel(args[0])
	if err != nil {
		return err
	}
	to, err := types.ParseLabel(args[1])
	if err != nil {
		return err
	}
	if !r.sess.State().LegalMoves(from).Contains(to) {
		return fmt.Errorf("%s cannot move to %s", from, to)
	}
	r.sess.Click(from)
	r.click(to)
	return nil
}

func newHandler(r *Registry, args []string) error {
	r.sess.Reset()
	r.printf("%s\n", r.pal.wrap(Cyan, "New game "+r.sess.ID()))
	r.showBoard()
	return nil
}

func flipHandler(r *Registry, args []string) error {
	r.opts.Flipped = !r.opts.Flipped
	r.showBoard()
	return nil
}

func hintsHandler(r *Registry, args []string) error {
	switch {
	case len(args) == 0:
		r.opts.ShowLegalMoves = !r.opts.ShowLegalMoves
	case len(args) == 1 && args[0] == "on":
		r.opts.ShowLegalMoves = true
	case len(args) == 1 && args[0] == "off":
		r.opts.ShowLegalMoves = false
	default:
		return ErrUsage
	}
	state := "off"
	if r.opts.ShowLegalMoves {
		state = "on"
	}
	r.printf("Move hints %s\n", state)
	return nil
}

func helpHandler(r *Registry, args []string) error {
	if len(args) > 0 {
		cmd, exists := r.commands[args[0]]
		if !exists {
			return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
		r.printf("\n%s - %s\n", r.pal.wrap(Cyan, cmd.Name), cmd.Description)
		if cmd.ShortName != "" {
			r.printf("Short form: %s\n", r.pal.wrap(Cyan, cmd.ShortName))
		}
		r.printf("Usage: %s\n", cmd.Usage)
		return nil
	}

	r.printf("\n%s\n\n", r.pal.wrap(Cyan, "Available Commands:"))

	seen := map[*Command]bool{}
	var cmds []*Command
	for _, cmd := range r.commands {
		if !seen[cmd] {
			seen[cmd] = true
			cmds = append(cmds, cmd)
		}
	}
	slices.SortFunc(cmds, func(a, b *Command) int { return strings.Compare(a.Name, b.Name) })
	for _, cmd := range cmds {
		r.printf("  [%s] %-8s %s\n", r.pal.wrap(Cyan, fmt.Sprintf("%-2s", cmd.ShortName)), cmd.Name, cmd.Description)
	}

	r.printf("\nType a square such as e2 to select a piece, then its destination to move.\n")
	return nil
}

func quitHandler(r *Registry, args []string) error {
	r.quit = true
	r.printf("%s\n", r.pal.wrap(Cyan, "Goodbye!"))
	return nil
}
