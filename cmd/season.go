package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hoopsdata/combine/internal/contract"
	"github.com/hoopsdata/combine/schema"
	"golang.org/x/term"
)

// promptWriter is where the season prompt is printed.
var promptWriter io.Writer = os.Stderr

// stdinReader is swapped out by tests.
var stdinReader = func() io.Reader { return os.Stdin }

// isInteractive reports whether a person can answer the season prompt.
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// resolveSeason asks for a draft class when running on a terminal and falls
// back to the default class otherwise. An empty answer takes the default.
func resolveSeason(r io.Reader, w io.Writer, interactive bool) (string, error) {
	if !interactive {
		return schema.DefaultSeason, nil
	}

	_, _ = fmt.Fprintf(w, "Please enter the draft class, e.g. %s [%s]: ", schema.DefaultSeason, schema.DefaultSeason)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read season: %w", err)
	}

	season := strings.TrimSpace(line)
	if season == "" {
		return schema.DefaultSeason, nil
	}
	if err := contract.ValidateSeason(season); err != nil {
		return "", err
	}
	return season, nil
}
