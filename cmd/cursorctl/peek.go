package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
	"github.com/joshuapare/bytecursor/internal/mmfile"
	"github.com/joshuapare/bytecursor/pkg/cursor"
)

var (
	peekOffset   int
	peekType     string
	peekLE       bool
	peekLen      int
	peekEncoding string
	peekCount    int
)

func init() {
	cmd := newPeekCmd()
	cmd.Flags().IntVar(&peekOffset, "offset", 0, "Byte offset of the first field")
	cmd.Flags().StringVar(&peekType, "type", typeU32, "Field type: u8|u16|u24|u32|u64|bytes|utf8|cstr")
	cmd.Flags().BoolVar(&peekLE, "le", false, "Little-endian (default big-endian)")
	cmd.Flags().IntVar(&peekLen, "len", 1, "Byte count for bytes and utf8 fields")
	cmd.Flags().StringVar(&peekEncoding, "encoding", "", "Text encoding for cstr fields (default utf-8)")
	cmd.Flags().IntVar(&peekCount, "count", 1, "Number of consecutive fields to read")
	rootCmd.AddCommand(cmd)
}

func newPeekCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "peek <file>",
		Short: "Decode typed fields at an offset",
		Long: `The peek command maps a file read-only and decodes one or more
consecutive fields starting at --offset.

Example:
  cursorctl peek packet.bin --offset 4 --type u16
  cursorctl peek packet.bin --offset 8 --type u24 --le --count 3
  cursorctl peek packet.bin --offset 32 --type cstr --encoding windows-1252
  cursorctl peek packet.bin --type bytes --len 16 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPeek(args)
		},
	}
	return cmd
}

func runPeek(args []string) error {
	path := args[0]

	enc, err := lookupEncoding(peekEncoding)
	if err != nil {
		return err
	}

	m, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer m.Close()
	logger.Debug("mapped file", "path", path, "size", m.Len())

	c, err := cursor.NewAt(m.Bytes(), peekOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	fields := make([]fieldValue, 0, peekCount)
	for i := 0; i < peekCount; i++ {
		f, err := readField(c, peekType, peekLE, peekLen, enc)
		if err != nil {
			return fmt.Errorf("failed to read field %d: %w", i, err)
		}
		logger.Debug("read field", "type", f.Type, "offset", f.Offset, "next", f.Next)
		fields = append(fields, f)
	}

	if jsonOut {
		return printJSON(fields)
	}
	for _, f := range fields {
		printInfo("%s @ 0x%X = %s\n", f.Type, f.Offset, f)
	}
	return nil
}
