package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/tutils/trand/crypt/xor"
	"golang.org/x/term"
)

// scrambleCmd represents the scramble command
var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "XOR scramble a stream",
	Long: `Scramble stdin to stdout with a keyed XOR keystream, For example:
  trand scramble --key=816559 <plain.bin >scrambled.bin
  trand scramble --key=816559 --decode <scrambled.bin >plain.bin

The same key must be used on both sides. This is obfuscation, not
encryption.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := xor.NewCrypt(scrambleKey)

		if scrambleDecode {
			_, err := io.Copy(cmd.OutOrStdout(), c.NewDecoder(cmd.InOrStdin()))
			return err
		}

		if term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write scrambled bytes to a terminal, redirect stdout")
		}
		_, err := io.Copy(c.NewEncoder(cmd.OutOrStdout()), cmd.InOrStdin())
		return err
	},
}

const defaultXorCryptSeed = 98545715754651

var (
	scrambleKey    int64
	scrambleDecode bool
)

func init() {
	rootCmd.AddCommand(scrambleCmd)

	// Here you will define your flags and configuration settings.
	flags := scrambleCmd.Flags()
	flags.Int64VarP(&scrambleKey, "key", "k", defaultXorCryptSeed, "crypt key")
	flags.BoolVarP(&scrambleDecode, "decode", "d", false, "decode instead of encode")
}
