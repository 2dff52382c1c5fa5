package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/jpalmerr/projectboard"
	"github.com/jpalmerr/projectboard/internal/view"
	"github.com/prometheus/client_golang/prometheus"
)

const sessionHelp = `Commands:
  add <title> | <description> | <people>   add an active project
  move <id> <active|completed>             move a project, id may be a prefix
  show                                     print the board
  stats                                    print board metrics
  help                                     print this help
  quit                                     end the session
`

// session executes line commands against one board.
type session struct {
	board    *projectboard.Board
	gatherer prometheus.Gatherer
	out      io.Writer
	logger   *slog.Logger
}

func newSession(board *projectboard.Board, gatherer prometheus.Gatherer, out io.Writer, logger *slog.Logger) *session {
	return &session{
		board:    board,
		gatherer: gatherer,
		out:      out,
		logger:   logger,
	}
}

// run prints the board and then executes lines from in until quit, end of
// input or ctx is done.
func (s *session) run(ctx context.Context, in io.Reader) error {
	s.show()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				scanErr <- nil
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("session interrupted")
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-scanErr
			}
			if quit := s.exec(line); quit {
				return nil
			}
		}
	}
}

// exec runs one command line and reports whether the session should end.
func (s *session) exec(line string) (quit bool) {
	name, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch strings.ToLower(name) {
	case "":
	case "add":
		s.add(rest)
	case "move":
		s.move(rest)
	case "show":
		s.show()
	case "stats":
		s.stats()
	case "help":
		fmt.Fprint(s.out, sessionHelp)
	case "quit", "exit":
		return true
	default:
		fmt.Fprintf(s.out, "unknown command %q, type \"help\" for a list\n", name)
	}
	return false
}

func (s *session) add(args string) {
	fields := strings.Split(args, "|")
	if len(fields) != 3 {
		fmt.Fprintln(s.out, "usage: add <title> | <description> | <people>")
		return
	}

	p, err := s.board.Submit(strings.TrimSpace(fields[0]), strings.TrimSpace(fields[1]), fields[2])
	if err != nil {
		fmt.Fprintf(s.out, "  %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "added %s %s\n", view.ShortID(p.ID), p.Title)
	s.show()
}

func (s *session) move(args string) {
	fields := strings.Fields(args)
	if len(fields) != 2 {
		fmt.Fprintln(s.out, "usage: move <id> <active|completed>")
		return
	}

	status, err := projectboard.ParseStatus(fields[1])
	if err != nil {
		fmt.Fprintf(s.out, "  %v\n", err)
		return
	}

	p, err := s.board.Resolve(fields[0])
	if err != nil {
		fmt.Fprintf(s.out, "  %v\n", err)
		return
	}

	if !s.board.Move(p.ID, status) {
		fmt.Fprintf(s.out, "%s is already %s\n", view.ShortID(p.ID), status)
		return
	}

	fmt.Fprintf(s.out, "moved %s to %s\n", view.ShortID(p.ID), status)
	s.show()
}

func (s *session) show() {
	if err := s.board.Render(s.out); err != nil {
		s.logger.Error("failed to render board", "error", err)
	}
}

// stats prints every counter and gauge the board has recorded.
func (s *session) stats() {
	families, err := s.gatherer.Gather()
	if err != nil {
		s.logger.Error("failed to gather metrics", "error", err)
		return
	}

	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			name := mf.GetName()
			if labels := m.GetLabel(); len(labels) > 0 {
				pairs := make([]string, len(labels))
				for i, l := range labels {
					pairs[i] = l.GetName() + "=" + l.GetValue()
				}
				name += "{" + strings.Join(pairs, ",") + "}"
			}

			var value float64
			switch {
			case m.GetCounter() != nil:
				value = m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				value = m.GetGauge().GetValue()
			default:
				continue
			}
			fmt.Fprintf(s.out, "  %-58s %g\n", name, value)
		}
	}
}
