package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
	"github.com/joshuapare/bytecursor/internal/mmfile"
	"github.com/joshuapare/bytecursor/pkg/cursor"
)

var (
	fillOffset int
	fillLen    int
	fillValue  uint8
)

func init() {
	cmd := newFillCmd()
	cmd.Flags().IntVar(&fillOffset, "offset", 0, "Byte offset to start at")
	cmd.Flags().IntVar(&fillLen, "len", 0, "Number of bytes to fill (0 = to end of file)")
	cmd.Flags().Uint8Var(&fillValue, "value", 0, "Byte value")
	rootCmd.AddCommand(cmd)
}

func newFillCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fill <file>",
		Short: "Overwrite a byte range with one value",
		Long: `The fill command overwrites --len bytes starting at --offset with --value.
Nothing is written if the range does not fit in the file.

Example:
  cursorctl fill image.bin --offset 512 --len 64
  cursorctl fill image.bin --offset 16 --value 255`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFill(args)
		},
	}
	return cmd
}

func runFill(args []string) error {
	path := args[0]

	m, err := mmfile.MapWritable(path)
	if err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer m.Close()

	c, err := cursor.NewAt(m.Bytes(), fillOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}
	n := fillLen
	if n == 0 {
		n = c.Remaining()
	}
	if err := c.Fill(fillValue, n); err != nil {
		return fmt.Errorf("failed to fill: %w", err)
	}
	if err := m.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	logger.Debug("filled range", "offset", fillOffset, "len", n, "value", fillValue)

	if jsonOut {
		return printJSON(map[string]int{"offset": fillOffset, "len": n, "value": int(fillValue)})
	}
	printInfo("filled %d bytes at 0x%X with 0x%02X\n", n, fillOffset, fillValue)
	return nil
}
