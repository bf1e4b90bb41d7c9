// Command eventpipe reads lines from stdin, publishes each one as an event and
// prints them in batches from a bounded queue. It exits on EOF, SIGINT or
// SIGTERM once every queued line was printed.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/dmitrymomot/eventkit/pkg/config"
	"github.com/dmitrymomot/eventkit/pkg/eventbus"
	"github.com/dmitrymomot/eventkit/pkg/eventqueue"
	"github.com/dmitrymomot/eventkit/pkg/logger"
	"github.com/dmitrymomot/eventkit/pkg/shutdown"
)

type appConfig struct {
	Env       string `env:"APP_ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL"`
	LogFormat string `env:"LOG_FORMAT"`

	Queue    eventqueue.Config
	Shutdown shutdown.Config
}

// LineReceived is published for every line read from the input.
type LineReceived struct {
	Number int
	Text   string
}

type options struct {
	envFiles []string
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(context.Background(), opts, os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error("eventpipe failed", logger.Error(err))
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("eventpipe", pflag.ContinueOnError)
	fs.StringSliceVarP(&opts.envFiles, "env", "e", nil, "load environment from `file`; repeatable, later files win")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

func run(ctx context.Context, opts options, in io.Reader, out, logOut io.Writer) error {
	if len(opts.envFiles) > 0 {
		if err := config.LoadEnv(opts.envFiles...); err != nil {
			return err
		}
	}

	// The environment may have changed since a previous load
	var cfg appConfig
	if err := config.ForceReloadConfig(&cfg); err != nil {
		return err
	}

	log, err := newLogger(cfg, logOut)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	coord := shutdown.NewFromConfig(cfg.Shutdown, shutdown.WithLogger(log))

	lines, err := eventqueue.NewFromConfig[LineReceived](cfg.Queue,
		eventqueue.WithLogger(log.With(logger.Component("eventqueue"))),
		eventqueue.WithShutdownRegistrar(coord),
	)
	if err != nil {
		return err
	}

	bus := eventbus.New(eventbus.WithLogger(log.With(logger.Component("eventbus"))))
	if err := eventbus.RegisterType[LineReceived](bus, "eventpipe.line_received"); err != nil {
		return err
	}
	if err := eventbus.Subscribe(bus, func(ctx context.Context, e LineReceived) error {
		return lines.Offer(ctx, e)
	}); err != nil {
		return err
	}

	if err := lines.ConsumeStream(ctx, func(ctx context.Context, events iter.Seq[LineReceived]) error {
		n := 0
		for e := range events {
			if _, err := fmt.Fprintf(out, "%d: %s\n", e.Number, e.Text); err != nil {
				return err
			}
			n++
		}
		log.DebugContext(ctx, "batch printed", slog.Int("size", n))
		return nil
	}); err != nil {
		return err
	}

	readErr := make(chan error, 1)
	go func() {
		readErr <- publishLines(ctx, in, bus, log)
		coord.Trigger()
	}()

	waitErr := coord.Wait(ctx)
	var rerr error
	select {
	case rerr = <-readErr:
	default:
	}

	if waitErr != nil || rerr != nil {
		log.Error("eventpipe stopped with errors", logger.Errors(waitErr, rerr))
	}
	return errors.Join(waitErr, rerr)
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{logger.WithDevelopment("eventpipe")}
	if cfg.Env == "production" {
		opts = []logger.Option{logger.WithProduction("eventpipe")}
	}

	if cfg.LogFormat != "" {
		switch f := logger.Format(cfg.LogFormat); f {
		case logger.FormatJSON, logger.FormatText:
			opts = append(opts, logger.WithFormat(f))
		default:
			return nil, fmt.Errorf("invalid LOG_FORMAT %q: must be %q or %q", cfg.LogFormat, logger.FormatJSON, logger.FormatText)
		}
	}

	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	if cfg.Queue.Debug {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}

	opts = append(opts,
		logger.WithOutput(w),
		logger.WithAttr(slog.Int("pid", os.Getpid())),
	)
	return logger.New(opts...), nil
}

// publishLines publishes every input line until EOF or until the queue is closed.
// Lines rejected on a full queue are logged and skipped.
func publishLines(ctx context.Context, in io.Reader, bus *eventbus.Registry, log *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	for n := 1; scanner.Scan(); n++ {
		err := bus.Publish(ctx, LineReceived{Number: n, Text: scanner.Text()})
		switch {
		case err == nil:
		case errors.Is(err, eventqueue.ErrClosed):
			return nil
		case errors.Is(err, eventqueue.ErrOfferTimeout):
			log.WarnContext(ctx, "line dropped", slog.Int("line", n))
		default:
			return err
		}
	}
	return scanner.Err()
}
