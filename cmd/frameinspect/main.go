// Command frameinspect reads a raw byte stream (stdin by default, or a
// file given as the first argument) and reports every registered
// packet it can parse out of it, alongside outcome counts served as
// Prometheus metrics.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/basestationlabs/rframe/arena"
	"github.com/basestationlabs/rframe/metrics"
	"github.com/basestationlabs/rframe/packets"
	"github.com/basestationlabs/rframe/parser"
	"github.com/basestationlabs/rframe/registry"
	"github.com/basestationlabs/rframe/rfconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "", "path to a rfconfig TOML file (optional)")
	flag.Parse()

	cfg := rfconfig.Default()
	if *configPath != "" {
		loaded, err := rfconfig.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "frameinspect:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	log := initLogger(cfg.LogLevel)

	reg, err := buildRegistry()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build packet registry")
	}

	promReg := prometheus.NewRegistry()
	recorder := metrics.NewRecorder(promReg)
	go serveMetrics(cfg.MetricsAddr, promReg, log)

	a := arena.New(reg)
	p := parser.New(cfg.RingCapacity, reg, a, parser.WithMetrics(recorder), parser.WithLogger(log))

	src := os.Stdin
	if flag.NArg() > 0 {
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Fatal().Err(err).Str("path", flag.Arg(0)).Msg("failed to open input")
		}
		defer f.Close()
		src = f
	}

	inspect(src, p, a, reg, log)
}

func inspect(src io.Reader, p *parser.Parser, a *arena.Arena, reg *registry.Registry, log zerolog.Logger) {
	buf := make([]byte, 4096)
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if pushErr := p.Push(buf[:n]); pushErr != nil {
				log.Warn().Err(pushErr).Msg("dropping input, buffer full")
				p.ClearBuffer()
			}
			p.TryParsePackets()
			for _, cmd := range reg.Cmds() {
				if slot, ok := a.Slot(cmd); ok {
					log.Info().Uint16("cmd", cmd).Int("bytes", len(slot)).Msg("packet buffered")
				}
			}
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			log.Error().Err(err).Msg("read failed")
			return
		}
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, log zerolog.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	log.Info().Str("addr", addr).Msg("serving metrics")
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("metrics server stopped")
	}
}

func buildRegistry() (*registry.Registry, error) {
	b := registry.NewBuilder()
	packets.RegisterAll(b)
	return b.Build()
}
