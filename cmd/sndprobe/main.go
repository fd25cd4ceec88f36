// Command sndprobe shrinks a UDP socket's send buffer, sends a burst of
// datagrams without pacing and reports how many sends found the buffer full.
package main

import (
	"flag"
	"fmt"
	stdlog "log"
	"os"

	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v2"

	"github.com/hadi77ir/go-sndprobe"
	"github.com/hadi77ir/go-sndprobe/log"
	"github.com/hadi77ir/go-sndprobe/raw"
	"github.com/hadi77ir/go-sndprobe/types"
)

var debug bool
var deferLog bool
var configFile string

var flagCfg = sndprobe.DefaultConfig()

var logger *zap.Logger

func init() {
	flag.BoolVar(&debug, "debug", false, "debug logging")
	flag.BoolVar(&deferLog, "defer-log", false, "print per-packet results after the send loop instead of during it")
	flag.StringVar(&configFile, "c", "", "configuration file (YAML)")

	flag.StringVar(&flagCfg.Network, "network", flagCfg.Network, "udp, udp4 or udp6")
	flag.StringVar(&flagCfg.LocalAddr, "local", flagCfg.LocalAddr, "local address to bind")
	flag.StringVar(&flagCfg.RemoteAddr, "remote", flagCfg.RemoteAddr, "destination address")
	flag.IntVar(&flagCfg.PacketSize, "size", flagCfg.PacketSize, "datagram size in bytes")
	flag.IntVar(&flagCfg.RequestedSendBuffer, "sndbuf", flagCfg.RequestedSendBuffer, "requested SO_SNDBUF in bytes")
	flag.IntVar(&flagCfg.PacketCount, "count", flagCfg.PacketCount, "number of datagrams to send")
	flag.BoolVar(&flagCfg.ForceSendBuffer, "force", flagCfg.ForceSendBuffer, "use SO_SNDBUFFORCE where available")
	flag.BoolVar(&flagCfg.DontFragment, "df", flagCfg.DontFragment, "set the don't fragment bit")
	flag.DurationVar(&flagCfg.Timeout, "timeout", flagCfg.Timeout, "stop sending after this long (0 disables)")
}

func main() {
	var err error

	flag.Parse()

	logger, err = newLogger(debug)
	if err != nil {
		stdlog.Fatalln("failed to create logger:", err)
	}
	defer logger.Sync() // nolint: errcheck
	log.SetDefaultLogger(newZapLogger(logger.Named("sndprobe")))

	cfg, err := loadConfig()
	if err != nil {
		logger.Sugar().Fatalf("failed to load configuration: %s", err.Error())
	}
	logger.Debug("configuration loaded", zap.Any("config", cfg))

	p, err := sndprobe.Listen(cfg)
	if err != nil {
		logger.Sugar().Fatalf("failed to acquire socket: %s", err.Error())
	}
	defer p.Close() // nolint: errcheck

	initial, err := p.SendBufferSize()
	if err != nil {
		logger.Sugar().Fatal(err)
	}
	logger.Info(fmt.Sprintf("The initial send buffer size is: %d", initial))

	actual, err := p.SetSendBufferSize(cfg.RequestedSendBuffer)
	if err != nil {
		logger.Sugar().Fatal(err)
	}
	logger.Info(fmt.Sprintf("The new send buffer size after trying to set it to %d is: %d", cfg.RequestedSendBuffer, actual))

	var journal *sndprobe.Journal
	if deferLog {
		journal, err = sndprobe.NewJournal(cfg.PacketCount)
		if err != nil {
			logger.Sugar().Fatal(err)
		}
		defer journal.Close() // nolint: errcheck
		p.SetSink(journal)
	} else {
		p.SetSink(sndprobe.SinkFunc(logEvent))
	}

	rep := p.Run()

	if journal != nil {
		if err := journal.Replay(sndprobe.SinkFunc(logEvent)); err != nil {
			logger.Warn("failed to replay send results", zap.Error(err))
		}
		if n := journal.Dropped(); n > 0 {
			logger.Warn("send results dropped from journal", zap.Int("count", n))
		}
	}

	if rep.Err != nil {
		fields := []zap.Field{zap.Error(rep.Err), zap.Int("attempts", rep.Attempts)}
		if raw.IsSendMsgSizeErr(rep.Err) {
			fields = append(fields, zap.String("hint", "datagram exceeds the path MTU with don't fragment set"))
		}
		logger.Error("send loop aborted", fields...)
	}
	logger.Info(fmt.Sprintf("WouldBlock errors encountered: %d", rep.WouldBlock),
		zap.Int("attempts", rep.Attempts),
		zap.Int("sent", rep.Sent),
	)
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}

// loadConfig layers the YAML file, if any, over the defaults, then applies
// the flags given on the command line.
func loadConfig() (sndprobe.Config, error) {
	cfg := sndprobe.DefaultConfig()
	if configFile != "" {
		f, err := os.Open(configFile)
		if err != nil {
			return cfg, fmt.Errorf("open %s: %w", configFile, err)
		}
		defer f.Close() // nolint: errcheck
		if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
			return cfg, fmt.Errorf("parse %s: %w", configFile, err)
		}
	}
	applyFlags(&cfg)
	return cfg, cfg.Validate()
}

func applyFlags(cfg *sndprobe.Config) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "network":
			cfg.Network = flagCfg.Network
		case "local":
			cfg.LocalAddr = flagCfg.LocalAddr
		case "remote":
			cfg.RemoteAddr = flagCfg.RemoteAddr
		case "size":
			cfg.PacketSize = flagCfg.PacketSize
		case "sndbuf":
			cfg.RequestedSendBuffer = flagCfg.RequestedSendBuffer
		case "count":
			cfg.PacketCount = flagCfg.PacketCount
		case "force":
			cfg.ForceSendBuffer = flagCfg.ForceSendBuffer
		case "df":
			cfg.DontFragment = flagCfg.DontFragment
		case "timeout":
			cfg.Timeout = flagCfg.Timeout
		}
	})
}

func logEvent(ev types.Event) {
	switch ev.Outcome {
	case types.OutcomeSent:
		logger.Info("Did send packet", zap.Uint32("seq", ev.Seq), zap.Int("bytes", ev.Bytes))
	case types.OutcomeWouldBlock:
		logger.Warn(fmt.Sprintf("Send buffer is full, unable to send more data, seq num: %d", ev.Seq))
	case types.OutcomeFailed:
		logger.Error("An error occurred", zap.Uint32("seq", ev.Seq), zap.Error(ev.Err))
	}
}

