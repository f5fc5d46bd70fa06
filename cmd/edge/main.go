// cmd/edge/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/Amir804-cell/iot-monitoring-V2/internal/config"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/console"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/edge"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/link"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/metrics"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/publish"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/sensor"
	sensormodbus "github.com/Amir804-cell/iot-monitoring-V2/internal/sensor/modbus"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/sparkplug"
	"github.com/Amir804-cell/iot-monitoring-V2/internal/transport"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: edge <config.yaml>")
	}

	cfgPath := os.Args[1]

	// --------------------
	// Load + validate config
	// --------------------

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("config validation failed: %v", err)
	}
	config.Normalize(cfg)

	level, err := log.ParseLevel(cfg.Edge.Log.Level)
	if err != nil {
		log.Fatalf("bad log level %q: %v", cfg.Edge.Log.Level, err)
	}
	log.SetLevel(level)

	// --------------------
	// Field bus
	// --------------------

	busClient, err := sensormodbus.New(sensormodbus.Config{
		Transport: cfg.Edge.Source.Transport,
		Endpoint:  cfg.Edge.Source.Endpoint,
		SlaveID:   cfg.Edge.Source.SlaveID,
		Timeout:   time.Duration(cfg.Edge.Source.TimeoutMs) * time.Millisecond,
		BaudRate:  cfg.Edge.Source.BaudRate,
		DataBits:  cfg.Edge.Source.DataBits,
		Parity:    cfg.Edge.Source.Parity,
		StopBits:  cfg.Edge.Source.StopBits,
	})
	if err != nil {
		log.Fatalf("field bus connect failed: %v", err)
	}
	defer busClient.Close()

	reader, err := sensor.NewReader(busClient)
	if err != nil {
		log.Fatalf("reader build failed: %v", err)
	}
	poller := sensor.NewPoller(reader)

	// --------------------
	// Broker side
	// --------------------

	tr, err := transport.NewPaho(transport.Config{
		BrokerURL:      cfg.Edge.Broker.URL,
		Username:       cfg.Edge.Broker.Username,
		Password:       cfg.Edge.Broker.Password,
		ConnectTimeout: time.Duration(cfg.Edge.Broker.ConnectTimeoutMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatalf("transport build failed: %v", err)
	}
	defer tr.Close()

	session, err := sparkplug.NewSession(tr,
		cfg.Edge.Identity.GroupID,
		cfg.Edge.Identity.NodeID,
		cfg.Edge.Identity.DeviceID,
	)
	if err != nil {
		log.Fatalf("session build failed: %v", err)
	}

	brokerAddr, err := link.AddrFromURL(cfg.Edge.Broker.URL)
	if err != nil {
		log.Fatalf("broker url: %v", err)
	}
	lm, err := link.New(link.Config{Addr: brokerAddr})
	if err != nil {
		log.Fatalf("link build failed: %v", err)
	}

	pub := publish.New(tr, cfg.Edge.Identity.DeviceID, cfg.Edge.Identity.NodeID)

	// --------------------
	// Scheduler + console
	// --------------------

	sched, err := edge.New(
		edge.Config{
			AutoRead: *cfg.Edge.Poll.AutoRead,
			Interval: time.Duration(cfg.Edge.Poll.IntervalS) * time.Second,
		},
		edge.Deps{
			Link:      lm,
			Session:   session,
			Transport: tr,
			Poller:    poller,
			Publisher: pub,
			Writer:    reader,
		},
	)
	if err != nil {
		log.Fatalf("scheduler build failed: %v", err)
	}

	cons := console.New(os.Stdin, os.Stdout, sched)
	cons.Start()
	sched.AttachConsole(cons)

	// --------------------
	// Observability sidecar
	// --------------------

	if cfg.Edge.Metrics.Listen != "" {
		go func() {
			if err := metrics.Serve(cfg.Edge.Metrics.Listen); err != nil {
				log.Errorf("metrics listener failed: %v", err)
			}
		}()
	}

	// --------------------
	// Run until signalled
	// --------------------

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Run(ctx)
}
