package cli

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"github.com/chzyer/readline"
)

// LineReader is the input side of the prompt loop. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewReadline opens an interactive line editor with persistent history.
func NewReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
}

// plainReader reads lines from a pipe or file without echoing prompts.
type plainReader struct {
	scanner *bufio.Scanner
}

// NewPlainReader returns a LineReader for non-interactive input.
func NewPlainReader(in io.Reader) LineReader {
	return &plainReader{scanner: bufio.NewScanner(in)}
}

func (p *plainReader) Readline() (string, error) {
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return p.scanner.Text(), nil
}

func (p *plainReader) SetPrompt(string) {}

// Run reads lines until end of input or a quit command.
func Run(r *Registry, lr LineReader) error {
	r.printf("%s\n", r.pal.wrap(Cyan, "termchess"))
	r.printf("Type a square to select or move, 'help' for commands\n\n")
	r.showBoard()

	for !r.Done() {
		lr.SetPrompt(r.Prompt())

		line, err := lr.Readline()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			line = "quit"
		}
		r.Execute(line)
	}
	return nil
}
