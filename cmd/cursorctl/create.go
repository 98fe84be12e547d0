package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
	"github.com/joshuapare/bytecursor/internal/writer"
)

var (
	createSize   int
	createRandom bool
	createForce  bool
)

func init() {
	cmd := newCreateCmd()
	cmd.Flags().IntVar(&createSize, "size", 0, "File size in bytes")
	cmd.Flags().BoolVar(&createRandom, "random", false, "Fill with random bytes instead of zeros")
	cmd.Flags().BoolVar(&createForce, "force", false, "Overwrite an existing file")
	_ = cmd.MarkFlagRequired("size")
	rootCmd.AddCommand(cmd)
}

func newCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <file>",
		Short: "Create a fixed-size file to poke fields into",
		Long: `The create command writes a new file of --size bytes, zeroed or random.
Files are written atomically; existing files are kept unless --force is set.

Example:
  cursorctl create packet.bin --size 64
  cursorctl create noise.bin --size 4096 --random`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(args)
		},
	}
	return cmd
}

func runCreate(args []string) error {
	path := args[0]

	alloc := writer.Zeroed
	if createRandom {
		alloc = writer.Random
	}
	b, err := alloc(createSize)
	if err != nil {
		return err
	}

	w := &writer.FileWriter{Path: path, Exclusive: !createForce}
	if err := w.Write(b); err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	logger.Debug("created file", "path", path, "size", createSize, "random", createRandom)

	if jsonOut {
		return printJSON(map[string]any{"path": path, "size": createSize, "random": createRandom})
	}
	printInfo("created %s (%d bytes)\n", path, createSize)
	return nil
}
