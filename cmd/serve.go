package cmd

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"
	"github.com/tutils/trand"
	"github.com/tutils/trand/counter/period"
	"github.com/tutils/trand/httpsrv"
	"github.com/tutils/trand/pcg"
	"github.com/tutils/trand/tcp"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Random number server",
	Long: `Serve random numbers over HTTP and raw TCP, For example:
  trand serve --listen=0.0.0.0:8080 --seed=42
  trand serve --tcp-listen=0.0.0.0:9019 --listen=""

The HTTP server exposes /api/rand, /api/bytes, /api/uuid and a
websocket firehose on /stream. The TCP server writes raw random bytes
to every connection. Each connection and request draws from its own
stream of the master seed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if serveListenAddress == "" && serveTCPListenAddress == "" {
			return fmt.Errorf("must specify --listen or --tcp-listen")
		}

		seed := serveSeed
		if !cmd.Flags().Changed("seed") {
			s, err := pcg.SeedFromEntropy()
			if err != nil {
				return err
			}
			seed = s
		}
		log.Printf("master seed: %d", seed)

		if serveTCPListenAddress != "" {
			server := tcp.NewServer(
				tcp.WithListenAddress(serveTCPListenAddress),
				tcp.WithConnHandler(tcp.NewRawTCPConnHandler(newRandStreamHandler(seed))),
			)
			if serveListenAddress == "" {
				return server.ListenAndServe()
			}
			go func() {
				if err := server.ListenAndServe(); err != nil {
					log.Println(err)
				}
			}()
		}

		return httpsrv.StartServer(serveListenAddress, seed)
	},
}

// randStreamHandler writes random bytes to every connection until the
// peer goes away.
type randStreamHandler struct {
	seed uint64
}

func newRandStreamHandler(seed uint64) tcp.RawTCPHandler {
	return &randStreamHandler{
		seed: seed,
	}
}

func (h *randStreamHandler) ServeTCP(ctx context.Context, conn tcp.Conn) {
	rd := trand.NewReader(pcg.NewPCG64Seq(h.seed, pcg.NextSeq()))
	c := period.NewPeriodCounter(time.Second)
	bufw := conn.BufferWriter()
	buf := make([]byte, 4<<10)
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		rd.Read(buf)
		if _, err := bufw.Write(buf); err != nil {
			break
		}
		if err := bufw.Flush(); err != nil {
			break
		}
		c.Add(int64(len(buf)))
	}
	log.Printf("%s disconnected after %d bytes", conn.RemoteAddr(), c.Value())
}

var (
	serveListenAddress    string
	serveTCPListenAddress string
	serveSeed             uint64
)

func init() {
	rootCmd.AddCommand(serveCmd)

	// Here you will define your flags and configuration settings.
	flags := serveCmd.Flags()
	flags.StringVarP(&serveListenAddress, "listen", "l", "0.0.0.0:8080", "http server listen address")
	flags.StringVarP(&serveTCPListenAddress, "tcp-listen", "", "", "tcp firehose listen address")
	flags.Uint64VarP(&serveSeed, "seed", "s", 0, "master seed (default from system entropy)")
}
