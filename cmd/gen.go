package cmd

import (
	"bufio"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tutils/trand/counter/period"
	"github.com/tutils/trand/pcg"
	"golang.org/x/term"
)

// genCmd represents the gen command
var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Generate random numbers",
	Long: `Generate a reproducible stream of PCG random numbers, For example:
  trand gen --variant=setseq_xsh_rr_64_32 --seed=42 --seq=54 --count=32
  trand gen --count=8 --format=dec
  trand gen --format=bytes --count=1024 >random.bin

Without --seed the engine is seeded from system entropy. --print-state
logs a resume token after the run; pass it back with --state to continue
the same stream later.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		switch genFormat {
		case "hex", "dec", "bytes":
		default:
			return fmt.Errorf("unknown format %q (hex, dec or bytes)", genFormat)
		}

		if genFormat == "bytes" && term.IsTerminal(int(os.Stdout.Fd())) {
			return fmt.Errorf("refusing to write raw bytes to a terminal, redirect stdout or pick another format")
		}

		if !flags.Changed("count") {
			if v := viper.GetInt("gen.count"); v > 0 {
				genCount = v
			}
		}

		var g pcg.Generator
		var err error
		if genState != "" {
			data, derr := base64.StdEncoding.DecodeString(genState)
			if derr != nil {
				return fmt.Errorf("invalid state token: %w", derr)
			}
			if g, err = pcg.NewFromState(data); err != nil {
				return err
			}
		} else {
			var opts []pcg.Option
			if genVariant != "" {
				opts = append(opts, pcg.WithVariant(pcg.Variant(genVariant)))
			}
			if flags.Changed("seed") {
				opts = append(opts, pcg.WithSeed(genSeed))
			}
			if flags.Changed("seq") {
				opts = append(opts, pcg.WithSeq(genSeq))
			}
			if g, err = pcg.New(opts...); err != nil {
				return err
			}
		}

		c := period.NewPeriodCounter(time.Second)
		start := time.Now()

		w := bufio.NewWriter(cmd.OutOrStdout())
		buf := make([]byte, 8)
		for i := 0; genCount == 0 || i < genCount; i++ {
			word := g.Uint64()
			var werr error
			switch genFormat {
			case "hex":
				if g.OutputBits() == 32 {
					_, werr = fmt.Fprintf(w, "0x%08x\n", uint32(word))
				} else {
					_, werr = fmt.Fprintf(w, "0x%016x\n", word)
				}
			case "dec":
				_, werr = fmt.Fprintf(w, "%d\n", word)
			case "bytes":
				binary.LittleEndian.PutUint64(buf, word)
				_, werr = w.Write(buf[:g.OutputBits()/8])
			}
			if werr != nil {
				return werr
			}
			c.Add(1)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if genStats {
			log.Printf("generated %d words in %v", c.Value(), time.Since(start).Round(time.Microsecond))
			if r := c.RatePerSec(); r > 0 {
				log.Printf("sampled rate: %d words/s", r)
			}
		}

		if genPrintState {
			data, err := g.MarshalBinary()
			if err != nil {
				return err
			}
			log.Printf("state: %s", base64.StdEncoding.EncodeToString(data))
		}
		return nil
	},
}

var (
	genVariant    string
	genSeed       uint64
	genSeq        uint64
	genCount      int
	genFormat     string
	genState      string
	genStats      bool
	genPrintState bool
)

func init() {
	rootCmd.AddCommand(genCmd)

	// Here you will define your flags and configuration settings.

	// Cobra supports local flags which will only run when this command
	// is called directly, e.g.:
	flags := genCmd.Flags()
	flags.StringVarP(&genVariant, "variant", "v", "", "engine variant (default oneseq_xsh_rr_64_32)")
	flags.Uint64VarP(&genSeed, "seed", "s", 0, "seed value (default from system entropy)")
	flags.Uint64VarP(&genSeq, "seq", "q", 0, "stream selector for setseq variants")
	flags.IntVarP(&genCount, "count", "n", 32, "number of outputs, 0 for no limit")
	flags.StringVarP(&genFormat, "format", "f", "hex", "output format: hex, dec or bytes")
	flags.StringVarP(&genState, "state", "", "", "resume token from a previous --print-state run")
	flags.BoolVarP(&genStats, "stats", "", false, "log generation statistics")
	flags.BoolVarP(&genPrintState, "print-state", "", false, "log a resume token after the run")
}
