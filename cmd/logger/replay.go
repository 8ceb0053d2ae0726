package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/diepfote/golang-tools/logger"
	"github.com/mattn/go-shellwords"
	"github.com/spf13/cobra"
)

func newReplayCmd() *cobra.Command {
	var path string
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Log every line of a file as `<level> <message> [args...]`",
		Long: `replay reads lines shaped like

  warn "cache miss" $USER 3 2.5

and logs each one. Words are split like a shell would, environment
variables are expanded, empty lines and lines starting with # are skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := openScript(path, cmd.InOrStdin())
			if err != nil {
				return err
			}
			defer r.Close()

			failed, err := replay(r)
			if err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d malformed line(s) in %s", failed, scriptName(path))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&path, "file", "f", "", "file to replay; stdin when empty or -")
	return cmd
}

func scriptName(path string) string {
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}

// replay logs every entry in r and returns how many lines could not be
// parsed. The error is only set when reading fails. Lines have no length
// limit.
func replay(r io.Reader) (int, error) {
	failed := 0
	reader := bufio.NewReader(r)
	for lineNo := 1; ; lineNo++ {
		raw, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return failed, fmt.Errorf("read error: %w", err)
		}
		line := strings.TrimSpace(raw)
		if line != "" && !strings.HasPrefix(line, "#") {
			t, message, args, perr := parseLine(line)
			if perr != nil {
				logger.Error("replay", fmt.Sprintf("line %d:", lineNo), perr)
				failed++
			} else {
				logger.Log(t, message, args...)
			}
		}
		if err == io.EOF {
			return failed, nil
		}
	}
}

func parseLine(line string) (logger.LogType, string, []any, error) {
	parser := shellwords.NewParser()
	parser.ParseEnv = true
	words, err := parser.Parse(line)
	if err != nil {
		return 0, "", nil, err
	}
	// the parser stops at an unquoted | ; & < or >
	if parser.Position > 0 {
		return 0, "", nil, fmt.Errorf("unquoted shell operator at position %d", parser.Position)
	}
	if len(words) < 2 {
		return 0, "", nil, fmt.Errorf("want <level> <message> [args...], got %d word(s)", len(words))
	}
	t, err := logger.ParseLogType(words[0])
	if err != nil {
		return 0, "", nil, err
	}
	return t, words[1], parseValues(words[2:]), nil
}
