package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"coderkit/cli"
	"coderkit/coder"
	"coderkit/metrics"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/semaphore"
)

const (
	flagRounds  = "rounds"
	flagWorkers = "workers"
)

var benchCmd = &cobra.Command{
	Use:   "bench [data]",
	Short: "Round-trips data through a configured coder concurrently and prints metrics.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cli.LoadConfig(cmd)
		if err != nil {
			return err
		}
		rounds, _ := cmd.Flags().GetInt(flagRounds)
		workers, _ := cmd.Flags().GetInt(flagWorkers)
		if rounds <= 0 || workers <= 0 {
			return errors.New("rounds and workers must be positive")
		}

		reg := prometheus.NewRegistry()
		name, _ := cmd.Flags().GetString(cli.FlagCoder)
		codec, err := cli.NewCodec(cfg, name, coder.WithMetrics(metrics.NewCollector(reg)))
		if err != nil {
			return err
		}
		in, err := cli.ReadInput(cmd, args, 0)
		if err != nil {
			return err
		}

		start := time.Now()
		if err := roundTrips(cmd.Context(), codec, in, rounds, workers); err != nil {
			return err
		}
		elapsed := time.Since(start)

		families, err := reg.Gather()
		if err != nil {
			return errors.Wrap(err, "error gathering metrics")
		}
		renderMetrics(cmd.OutOrStdout(), families)
		fmt.Fprintf(cmd.OutOrStdout(), "%d round trips in %s\n", rounds, elapsed)
		return nil
	},
}

func roundTrips(ctx context.Context, codec *cli.Codec, in []byte, rounds, workers int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	fail := func(err error) {
		once.Do(func() {
			firstErr = err
		})
	}

	for i := 0; i < rounds; i++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			fail(err)
			break
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			enc, err := codec.Encode(in)
			if err != nil {
				fail(err)
				return
			}
			out, err := codec.Decode(enc)
			if err != nil {
				fail(err)
				return
			}
			if !bytes.Equal(in, out) {
				fail(errors.New("round trip changed the input"))
			}
		}()
	}
	wg.Wait()
	return firstErr
}

func renderMetrics(w io.Writer, families []*dto.MetricFamily) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Labels", "Value"})
	sort.Slice(families, func(i, j int) bool {
		return families[i].GetName() < families[j].GetName()
	})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			var value string
			switch {
			case m.GetCounter() != nil:
				value = strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
			case m.GetHistogram() != nil:
				h := m.GetHistogram()
				value = fmt.Sprintf("n=%d sum=%s", h.GetSampleCount(), strconv.FormatFloat(h.GetSampleSum(), 'f', -1, 64))
			default:
				continue
			}
			table.Append([]string{mf.GetName(), strings.Join(labels, ","), value})
		}
	}
	table.Render()
}

func init() {
	addCoderFlag(benchCmd)
	benchCmd.Flags().Bool(cli.FlagHex, false, "Treat input as hex.")
	benchCmd.Flags().Int(flagRounds, 1000, "Number of round trips.")
	benchCmd.Flags().Int(flagWorkers, 4, "Number of concurrent workers.")
	rootCmd.AddCommand(benchCmd)
}
