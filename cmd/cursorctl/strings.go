package main

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
	"github.com/joshuapare/bytecursor/internal/mmfile"
	"github.com/joshuapare/bytecursor/pkg/cursor"
)

var (
	stringsOffset   int
	stringsEncoding string
	stringsMinLen   int
)

func init() {
	cmd := newStringsCmd()
	cmd.Flags().IntVar(&stringsOffset, "offset", 0, "Byte offset to start at")
	cmd.Flags().StringVar(&stringsEncoding, "encoding", "", "Text encoding (default utf-8)")
	cmd.Flags().IntVar(&stringsMinLen, "min-len", 1, "Skip strings with fewer characters")
	rootCmd.AddCommand(cmd)
}

func newStringsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strings <file>",
		Short: "List NUL-terminated strings",
		Long: `The strings command reads consecutive NUL-terminated strings from --offset
until no terminator remains. Trailing bytes without a terminator are reported
but not decoded.

Example:
  cursorctl strings table.bin
  cursorctl strings table.bin --offset 0x40 --encoding windows-1252 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStrings(args)
		},
	}
	return cmd
}

type stringEntry struct {
	Offset int    `json:"offset"`
	Value  string `json:"value"`
}

type stringsReport struct {
	Strings  []stringEntry `json:"strings"`
	Trailing int           `json:"trailing"`
}

func runStrings(args []string) error {
	path := args[0]

	enc, err := lookupEncoding(stringsEncoding)
	if err != nil {
		return err
	}

	m, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer m.Close()

	c, err := cursor.NewAt(m.Bytes(), stringsOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	report := stringsReport{Strings: []stringEntry{}}
	for c.Remaining() > 0 {
		start := c.Offset()
		s, err := c.ReadNulledString(enc)
		if errors.Is(err, cursor.ErrReadNullOverflow) {
			report.Trailing = c.Remaining()
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read string at 0x%X: %w", start, err)
		}
		if utf8.RuneCountInString(s) < stringsMinLen {
			continue
		}
		report.Strings = append(report.Strings, stringEntry{Offset: start, Value: s})
	}
	logger.Debug("scanned strings", "path", path, "count", len(report.Strings), "trailing", report.Trailing)

	if jsonOut {
		return printJSON(report)
	}
	for _, e := range report.Strings {
		printInfo("%08X  %q\n", e.Offset, e.Value)
	}
	if report.Trailing > 0 {
		printInfo("(%d trailing bytes without terminator)\n", report.Trailing)
	}
	return nil
}
