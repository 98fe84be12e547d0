package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
	"github.com/joshuapare/bytecursor/internal/mmfile"
	"github.com/joshuapare/bytecursor/pkg/cursor"
)

var (
	splitSize   int
	splitOffset int
	splitLimit  int
)

func init() {
	cmd := newSplitCmd()
	cmd.Flags().IntVar(&splitSize, "size", 16, "Chunk size in bytes")
	cmd.Flags().IntVar(&splitOffset, "offset", 0, "Byte offset to start at")
	cmd.Flags().IntVar(&splitLimit, "limit", 0, "Stop after this many chunks (0 = all)")
	rootCmd.AddCommand(cmd)
}

func newSplitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "split <file>",
		Short: "Print a file as fixed-size chunks",
		Long: `The split command walks the file from --offset in chunks of --size bytes.
The last chunk is shorter when the remaining length is not a multiple of --size.

Example:
  cursorctl split firmware.bin --size 32
  cursorctl split firmware.bin --size 512 --offset 4096 --limit 4 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSplit(args)
		},
	}
	return cmd
}

type chunkInfo struct {
	Offset int    `json:"offset"`
	Len    int    `json:"len"`
	Hex    string `json:"hex"`
}

func runSplit(args []string) error {
	path := args[0]

	m, err := mmfile.Map(path)
	if err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer m.Close()

	c, err := cursor.NewAt(m.Bytes(), splitOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}

	var chunks []chunkInfo
	ch := c.Split(splitSize)
	for ch.Next() {
		chunk := ch.Chunk()
		chunks = append(chunks, chunkInfo{
			Offset: c.Offset() - len(chunk),
			Len:    len(chunk),
			Hex:    hex.EncodeToString(chunk),
		})
		if splitLimit > 0 && len(chunks) == splitLimit {
			break
		}
	}
	if err := ch.Err(); err != nil {
		return fmt.Errorf("failed to split: %w", err)
	}
	logger.Debug("split file", "path", path, "chunks", len(chunks), "stopped_at", c.Offset())

	if jsonOut {
		if chunks == nil {
			chunks = []chunkInfo{}
		}
		return printJSON(chunks)
	}
	for _, ci := range chunks {
		printInfo("%08X  %4d  %s\n", ci.Offset, ci.Len, ci.Hex)
	}
	return nil
}
