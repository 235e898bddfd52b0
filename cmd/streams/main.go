// Command streams is a small driver around the stream sources and
// terminals: it prints well known integer sequences, samples random values,
// and summarizes numbers piped in on standard input.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/elastiflow/streams"
	"github.com/elastiflow/streams/sources"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

func main() {
	root := &cobra.Command{
		Use:           "streams",
		Short:         "lazy sequence pipelines from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().Bool("debug", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := zerolog.InfoLevel
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			level = zerolog.DebugLevel
		}
		log = log.Level(level)
	}

	root.AddCommand(primesCmd(), fibCmd(), randCmd(), reportCmd())
	if err := root.Execute(); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}

func primesCmd() *cobra.Command {
	var below int
	cmd := &cobra.Command{
		Use:   "primes [count]",
		Short: "print the first prime numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := sources.Primes()
			if below > 0 {
				s = s.StopWhen(func(p int) (bool, error) { return p >= below, nil })
			} else {
				n, err := countArg(args, 25)
				if err != nil {
					return err
				}
				s = s.Limit(n)
			}
			return s.Print("{}(\n)")
		},
	}
	cmd.Flags().IntVar(&below, "below", 0, "print every prime below this bound instead of a fixed count")
	return cmd
}

func fibCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fib [count]",
		Short: "print the first Fibonacci numbers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := countArg(args, 10)
			if err != nil {
				return err
			}
			return sources.Fibonacci().Limit(n).Print("{}(\n)")
		},
	}
}

func randCmd() *cobra.Command {
	var lo, hi int
	cmd := &cobra.Command{
		Use:   "rand [count]",
		Short: "print pseudo-random integers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := countArg(args, 10)
			if err != nil {
				return err
			}
			if lo > hi {
				return fmt.Errorf("lower bound %d exceeds upper bound %d", lo, hi)
			}
			log.Debug().Int("count", n).Int("min", lo).Int("max", hi).Msg("sampling")
			return sources.RandInt(lo, hi).Limit(n).Print("{}(\n)")
		},
	}
	cmd.Flags().IntVar(&lo, "min", 0, "inclusive lower bound")
	cmd.Flags().IntVar(&hi, "max", 99, "inclusive upper bound")
	return cmd
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "summarize numbers read from standard input, one per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			summary, err := streams.Report(scanFloats(cmd.InOrStdin()))
			if err != nil {
				return err
			}
			log.Debug().Int("count", summary.Count).Msg("input drained")
			fmt.Printf("count\t%d\nmin\t%g\nmax\t%g\nsum\t%g\nmean\t%g\n",
				summary.Count, summary.Min, summary.Max, summary.Sum, summary.Mean)
			return nil
		},
	}
}

// scanFloats streams the numeric lines of r; a malformed line aborts the
// stream through the evaluation stage's Raise policy.
func scanFloats(r io.Reader) *streams.Stream[float64] {
	sc := bufio.NewScanner(r)
	lines := streams.New[string](streams.ProducerFunc[string](func() (string, bool) {
		for sc.Scan() {
			if line := sc.Text(); line != "" {
				return line, true
			}
		}
		return "", false
	}), streams.LenUnknown)
	return streams.Map(lines, func(line string) (float64, error) {
		return strconv.ParseFloat(line, 64)
	}, streams.Params{OnError: streams.Raise})
}

func countArg(args []string, def int) (int, error) {
	if len(args) == 0 {
		return def, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 0 {
		return 0, fmt.Errorf("count must be a non-negative integer, got %q", args[0])
	}
	return n, nil
}
