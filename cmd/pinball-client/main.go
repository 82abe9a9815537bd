// Command pinball-client loads a board file and runs its simulation,
// optionally joined to a relay (spec.md §6 CLI surface).
package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/lguibr/pinball/internal/actor"
	"github.com/lguibr/pinball/internal/config"
	"github.com/lguibr/pinball/internal/loader"
	"github.com/lguibr/pinball/internal/render"
	"github.com/lguibr/pinball/internal/sim"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	defaultPort = 10987
	defaultFile = "boards/default.fb"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := pflag.NewFlagSet("pinball-client", pflag.ContinueOnError)
	host := flags.String("host", "", "relay host to join (standalone if empty)")
	port := flags.Int("port", defaultPort, "relay port")
	debugListen := flags.String("debug-listen", "", "optional address to serve a websocket snapshot stream on, e.g. :9000")
	if err := flags.Parse(args); err != nil {
		fmt.Fprintln(os.Stderr, "pinball-client:", err)
		return 2
	}

	file := defaultFile
	if flags.NArg() > 0 {
		file = flags.Arg(0)
	}

	cfg := config.Default()
	desc, err := loader.LoadFile(file, cfg)
	if err != nil {
		logrus.WithError(err).Error("pinball-client: failed to load board")
		return 1
	}

	var client *relayClient
	var handoff sim.Handoff = sim.NoHandoff{}
	if *host != "" {
		addr := fmt.Sprintf("%s:%d", *host, *port)
		c, err := dialRelay(addr, desc.Board.Name())
		if err != nil {
			logrus.WithError(err).Error("pinball-client: failed to join relay")
			return 1
		}
		client = c
		handoff = client
	}

	engine := actor.NewEngine()
	boardPID := engine.Spawn(actor.NewProps(sim.NewBoardActorProducer(desc.Board, cfg, handoff)))
	if boardPID == nil {
		logrus.Error("pinball-client: failed to spawn board actor")
		return 1
	}

	if client != nil {
		client.bind(engine, boardPID)
		go client.run()
	}

	if *debugListen != "" {
		mux := http.NewServeMux()
		mux.Handle("/snapshot", render.SnapshotStreamHandler(desc.Board, cfg.FrameBudget))
		go func() {
			if err := http.ListenAndServe(*debugListen, mux); err != nil {
				logrus.WithError(err).Warn("pinball-client: debug snapshot listener stopped")
			}
		}()
		logrus.WithField("addr", *debugListen).Info("pinball-client: serving debug snapshot stream at /snapshot")
	}

	logrus.WithFields(logrus.Fields{"board": desc.Board.Name(), "file": file}).Info("pinball-client: running")

	ticker := time.NewTicker(cfg.FrameBudget)
	defer ticker.Stop()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)

	for {
		select {
		case <-ticker.C:
			snap := desc.Board.Snapshot()
			logrus.WithField("balls", len(snap.Balls)).Debug(render.RenderASCII(render.AdaptSnapshot(snap), 20))
		case <-sigCh:
			if client != nil {
				client.Close()
			}
			engine.Shutdown(time.Second)
			return 0
		}
	}
}
