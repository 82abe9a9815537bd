// Command pinball-relay stitches independently running boards
// edge-to-edge (spec.md §4.5, §6 CLI surface).
package main

import (
	"bufio"
	"fmt"
	"net"
	"os"

	"github.com/lguibr/pinball/internal/relay"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const defaultPort = 10987

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("pinball-relay", pflag.ContinueOnError)
	port := flags.Int("port", defaultPort, "TCP port to listen on")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "pinball-relay:", err)
		return 2
	}

	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", *port))
	if err != nil {
		logrus.WithError(err).Error("pinball-relay: listen failed")
		return 1
	}
	defer ln.Close()

	r := relay.New()
	logrus.WithField("port", *port).Info("pinball-relay: listening")

	go func() {
		if err := r.Serve(ln); err != nil {
			logrus.WithError(err).Warn("pinball-relay: accept loop stopped")
		}
	}()

	r.RunOperatorConsole(bufio.NewScanner(os.Stdin))
	r.Disconnect()
	return 0
}
