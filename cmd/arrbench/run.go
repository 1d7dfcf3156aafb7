package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gosuri/uilive"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/webbmaffian/go-arr/dynarr"
	"github.com/webbmaffian/go-arr/internal/log"
	"github.com/webbmaffian/go-arr/internal/timer"
	"github.com/webbmaffian/go-arr/mmarr"
	"go.uber.org/zap"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Time the container scenarios.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		count, _ := cmd.Flags().GetInt("count")
		runs, _ := cmd.Flags().GetInt("runs")
		snapshot, _ := cmd.Flags().GetString("snapshot")
		names, _ := cmd.Flags().GetStringSlice("scenario")

		if count < 0 || runs < 1 {
			return errors.Errorf("invalid count %d or runs %d", count, runs)
		}

		selected, err := selectScenarios(names)

		if err != nil {
			return err
		}

		r := newReporter(selected, cmd.OutOrStdout())
		defer r.stop()

		if _, err = benchmark(ctx, selected, count, runs, r); err != nil {
			return err
		}

		if snapshot != "" {
			return saveSnapshot(snapshot, count)
		}

		return nil
	},
}

// result holds the timings of one scenario.
type result struct {
	name  string
	runs  int
	total time.Duration
	best  time.Duration
}

func (r *result) add(d time.Duration) {
	if r.runs == 0 || d < r.best {
		r.best = d
	}

	r.runs++
	r.total += d
}

func (r *result) avg() time.Duration {
	if r.runs == 0 {
		return 0
	}

	return r.total / time.Duration(r.runs)
}

// benchmark times every scenario runs times on freshly shuffled input. It
// stops between runs when ctx is done.
func benchmark(ctx context.Context, selected []scenario, count, runs int, r reporter) (results []result, err error) {
	results = make([]result, len(selected))

	for i, s := range selected {
		results[i].name = s.name
	}

	for run := 0; run < runs; run++ {
		if err = ctx.Err(); err != nil {
			return
		}

		input := shuffled(count)

		for i, s := range selected {
			start := timer.Now()

			if err = s.run(input); err != nil {
				return results, errors.Wrapf(err, "scenario %s", s.name)
			}

			results[i].add(timer.Since(start))
			r.report(&results[i])
		}
	}

	return
}

func saveSnapshot(path string, count int) (err error) {
	arr, err := sorted(shuffled(count))

	if err != nil {
		return
	}

	defer arr.Release()

	if err = mmarr.Save(path, arr.Slice()); err != nil {
		return
	}

	loaded, err := mmarr.Load[int](path)

	if err != nil {
		return
	}

	defer loaded.Release()

	if !dynarr.Equal(&arr, &loaded) {
		return errors.Errorf("snapshot %s does not match the sorted sequence", path)
	}

	log.Logger().Info("snapshot saved", zap.String("path", path), zap.Int("length", loaded.Len()))
	return
}

type reporter interface {
	report(res *result)
	stop()
}

func newReporter(selected []scenario, out io.Writer) reporter {
	if f, ok := out.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return newLiveReporter(selected, out)
	}

	return logReporter{}
}

type logReporter struct{}

func (logReporter) report(res *result) {
	log.Logger().Info("run finished",
		zap.String("scenario", res.name),
		zap.Int("run", res.runs),
		zap.Int64("avg_ms", timer.Millis(res.avg())),
		zap.Int64("best_ms", timer.Millis(res.best)),
	)
}

func (logReporter) stop() {}

// liveReporter redraws one line per scenario in place.
type liveReporter struct {
	writer  *uilive.Writer
	names   []string
	results map[string]result
}

func newLiveReporter(selected []scenario, out io.Writer) *liveReporter {
	writer := uilive.New()
	writer.Out = out

	r := &liveReporter{
		writer:  writer,
		results: make(map[string]result, len(selected)),
	}

	for _, s := range selected {
		r.names = append(r.names, s.name)
	}

	writer.Start()
	return r
}

func (r *liveReporter) report(res *result) {
	r.results[res.name] = *res

	for _, name := range r.names {
		res, ok := r.results[name]

		if !ok {
			fmt.Fprintf(r.writer, "%-20s waiting\n", name)
			continue
		}

		fmt.Fprintf(r.writer, "%-20s run %-3d avg %6d ms  best %6d ms\n",
			name, res.runs, timer.Millis(res.avg()), timer.Millis(res.best))
	}

	_ = r.writer.Flush()
}

func (r *liveReporter) stop() {
	r.writer.Stop()
}
