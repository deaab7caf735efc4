// framepeek is a demo TCP listener that deframes a stream of length-prefixed
// gRPC messages off each connection and logs the size of each decoded
// payload at debug level. It
// exists to exercise internal/grpcframe end-to-end; the deframer itself has
// no dependency on anything in this file.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/danmuck/grpcdeframe/internal/config"
	"github.com/danmuck/grpcdeframe/internal/grpcframe"
	"github.com/danmuck/grpcdeframe/internal/logging"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML settings file")
	genConfig := flag.String("gen-config", "", "write a starter settings file to this path and exit")
	force := flag.Bool("force", false, "allow -gen-config to overwrite an existing file")
	flag.Parse()

	logging.ConfigureRuntime()

	if *genConfig != "" {
		if err := config.WriteTemplate(*genConfig, *force); err != nil {
			fmt.Fprintf(os.Stderr, "framepeek: %v\n", err)
			os.Exit(1)
		}
		log.Info().Str("path", *genConfig).Msg("wrote settings template")
		return
	}

	cfg := config.DefaultSettings()
	if *configPath != "" {
		loaded, err := config.LoadSettings(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "framepeek: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if addr := os.Getenv("FRAMEPEEK_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	metrics := grpcframe.NewMetrics()
	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, metrics); err != nil {
		fmt.Fprintf(os.Stderr, "framepeek: %v\n", err)
		os.Exit(1)
	}
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	log.Info().Str("addr", addr).Msg("serving /metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Error().Err(err).Msg("metrics server stopped")
	}
}

func run(ctx context.Context, cfg config.Settings, metrics *grpcframe.Metrics) error {
	ln, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	go func() {
		<-ctx.Done()
		_ = ln.Close()
	}()

	log.Info().Str("addr", cfg.Addr).Bool("flate", cfg.EnableFlate).Msg("framepeek listening")

	for {
		conn, err := ln.Accept()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		go handleConn(conn, cfg, metrics)
	}
}

func handleConn(conn net.Conn, cfg config.Settings, metrics *grpcframe.Metrics) {
	defer conn.Close()
	remote := conn.RemoteAddr().String()
	log.Info().Str("remote", remote).Msg("connection accepted")
	defer log.Info().Str("remote", remote).Msg("connection closed")

	limits := grpcframe.Limits{MaxPayloadSize: cfg.MaxPayloadSize}
	var decompressor grpcframe.Decompressor
	if cfg.EnableFlate {
		decompressor = grpcframe.NewFlateDecompressor()
	}
	decoder := grpcframe.NewFrameDecoder(limits, decompressor)
	deframer := grpcframe.NewDeframer(decoder, metrics)

	buf := make([]byte, 32*1024)
	for {
		n, err := conn.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			deframer.Append(chunk)

			drainErr := deframer.DrainInto(func(frame []byte) {
				log.Debug().Str("remote", remote).Int("bytes", len(frame)).Msg("frame decoded")
			})
			if drainErr != nil {
				log.Warn().Str("remote", remote).Err(drainErr).Msg("frame decode failed")
				return
			}
		}
		if err != nil {
			return
		}
	}
}
