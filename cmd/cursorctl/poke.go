package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/joshuapare/bytecursor/internal/logger"
	"github.com/joshuapare/bytecursor/internal/mmfile"
	"github.com/joshuapare/bytecursor/pkg/cursor"
)

var (
	pokeOffset   int
	pokeType     string
	pokeLE       bool
	pokeValue    string
	pokeEncoding string
)

func init() {
	cmd := newPokeCmd()
	cmd.Flags().IntVar(&pokeOffset, "offset", 0, "Byte offset to write at")
	cmd.Flags().StringVar(&pokeType, "type", typeU32, "Field type: u8|u16|u24|u32|u64|bytes|utf8|cstr")
	cmd.Flags().BoolVar(&pokeLE, "le", false, "Little-endian (default big-endian)")
	cmd.Flags().StringVar(&pokeValue, "value", "", "Value to write (integers accept 0x/0o/0b; bytes take hex)")
	cmd.Flags().StringVar(&pokeEncoding, "encoding", "", "Text encoding for cstr fields (default utf-8)")
	_ = cmd.MarkFlagRequired("value")
	rootCmd.AddCommand(cmd)
}

func newPokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "poke <file>",
		Short: "Write a typed field in place",
		Long: `The poke command maps a file writable and encodes one field at --offset.
The file size never changes: a field that does not fit is rejected.

Example:
  cursorctl poke packet.bin --offset 4 --type u16 --value 0x1234
  cursorctl poke packet.bin --offset 8 --type u24 --le --value 70000
  cursorctl poke packet.bin --offset 32 --type cstr --value hello`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoke(args)
		},
	}
	return cmd
}

type pokeResult struct {
	Type    string `json:"type"`
	Offset  int    `json:"offset"`
	Next    int    `json:"next"`
	Written int    `json:"written"`
}

func runPoke(args []string) error {
	path := args[0]

	enc, err := lookupEncoding(pokeEncoding)
	if err != nil {
		return err
	}

	m, err := mmfile.MapWritable(path)
	if err != nil {
		return fmt.Errorf("failed to map %s: %w", path, err)
	}
	defer m.Close()

	c, err := cursor.NewAt(m.Bytes(), pokeOffset)
	if err != nil {
		return fmt.Errorf("invalid offset: %w", err)
	}
	if err := writeField(c, pokeType, pokeLE, pokeValue, enc); err != nil {
		return fmt.Errorf("failed to write %s: %w", pokeType, err)
	}
	if err := m.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}

	res := pokeResult{Type: pokeType, Offset: pokeOffset, Next: c.Offset(), Written: c.Offset() - pokeOffset}
	logger.Debug("wrote field", "type", res.Type, "offset", res.Offset, "bytes", res.Written)

	if jsonOut {
		return printJSON(res)
	}
	printInfo("wrote %d bytes at 0x%X\n", res.Written, res.Offset)
	return nil
}
