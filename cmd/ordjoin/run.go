package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alitto/pond/v2"
	"github.com/havoc-io/ordered-iter/closer"
	"github.com/havoc-io/ordered-iter/compare"
	errs "github.com/havoc-io/ordered-iter/errors"
	"github.com/havoc-io/ordered-iter/instrument"
	"github.com/havoc-io/ordered-iter/logger"
	"github.com/havoc-io/ordered-iter/ordered"
	"github.com/havoc-io/ordered-iter/records"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/atomic"
	"gopkg.in/alecthomas/kingpin.v2"
)

// environment is everything run takes from the process.
type environment struct {
	stdout           io.Writer
	stderr           io.Writer
	configureLogging func(logger.Options) *slog.Logger
	gatherer         prometheus.Gatherer
}

func run(ctx context.Context, env environment, args []string) error {
	app := registerCommands(kingpin.New("ordjoin", "Join sorted key/value files in one streaming pass."))
	app.UsageWriter(env.stderr)
	app.ErrorWriter(env.stderr)

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(*app.LogLevel)
	if err != nil {
		return err
	}

	log := env.configureLogging(logger.Options{
		Subsystem: "ordjoin",
		JSON:      *app.LogJSON,
		MinLevel:  level,
		Output:    env.stderr,
	})

	r := &runner{
		app:    app,
		log:    log,
		out:    bufio.NewWriter(env.stdout),
		opened: closer.NewCloser(),
	}

	log.Debug("starting", "command", command)

	runErr := r.dispatch(ctx, command)

	var collected errs.Collection

	collected.Add(runErr)
	collected.Add(r.out.Flush())

	for _, f := range r.files {
		collected.Add(f.Err())

		log.Debug("input done", "location", f.Location(), "records", f.Records())
	}

	collected.Add(r.opened.Close())

	if *app.Stats {
		r.logStats(env.gatherer)
	}

	return collected.Err()
}

type runner struct {
	app    *application
	log    *slog.Logger
	out    *bufio.Writer
	files  []*records.File
	opened *closer.Closer
}

func (r *runner) dispatch(ctx context.Context, command string) error {
	switch command {
	case r.app.InnerCmd.FullCommand():
		return r.inner(ctx)
	case r.app.OuterCmd.FullCommand():
		return r.outer(ctx)
	case r.app.FilterCmd.FullCommand():
		return r.filter(ctx)
	case r.app.IntersectCmd.FullCommand():
		return r.intersect(ctx)
	case r.app.CheckCmd.FullCommand():
		return r.check(ctx)
	default:
		return fmt.Errorf("unhandled command %q", command)
	}
}

func (r *runner) options(validate bool) records.Options {
	opts := records.Options{
		Separator: *r.app.Separator,
		Encoding:  *r.app.Encoding,
		Validate:  validate || *r.app.Validate,
	}

	if *r.app.Format != formatAuto {
		opts.Format = records.Format(*r.app.Format)
	}

	if *r.app.Natural {
		opts.Compare = compare.Natural
	}

	return opts
}

func (r *runner) open(ctx context.Context, location string, validate bool) (*records.File, error) {
	f, err := records.Open(ctx, location, r.options(validate))
	if err != nil {
		return nil, err
	}

	r.files = append(r.files, f)
	r.opened.Add(f)

	return f, nil
}

// openMap opens location as a map sequence, counted when --stats is set.
func (r *runner) openMap(ctx context.Context, location string) (ordered.Map[string, string], error) {
	f, err := r.open(ctx, location, false)
	if err != nil {
		return ordered.Map[string, string]{}, err
	}

	if *r.app.Stats {
		return instrument.CountMap(location, f.Map()), nil
	}

	return f.Map(), nil
}

func (r *runner) openPair(ctx context.Context, cmd pairCmd) (ordered.Map[string, string], ordered.Map[string, string], error) {
	left, err := r.openMap(ctx, *cmd.Left)
	if err != nil {
		return left, left, err
	}

	right, err := r.openMap(ctx, *cmd.Right)
	if err != nil {
		return left, right, err
	}

	return left, right, nil
}

func (r *runner) print(fields ...string) {
	_, _ = r.out.WriteString(strings.Join(fields, *r.app.Separator))
	_ = r.out.WriteByte('\n')
}

func (r *runner) inner(ctx context.Context) error {
	left, right, err := r.openPair(ctx, r.app.InnerCmd)
	if err != nil {
		return err
	}

	for key, values := range ordered.InnerJoinMap(left, right).All() {
		if err := ctx.Err(); err != nil {
			return err
		}

		a, b := values.Values()
		r.print(key, a, b)
	}

	return nil
}

func (r *runner) outer(ctx context.Context) error {
	left, right, err := r.openPair(ctx, r.app.OuterCmd)
	if err != nil {
		return err
	}

	for key, values := range ordered.OuterJoin(left, right).All() {
		if err := ctx.Err(); err != nil {
			return err
		}

		a, b := values.Values()
		r.print(key, a.GetOrElse(*r.app.Empty), b.GetOrElse(*r.app.Empty))
	}

	return nil
}

func (r *runner) filter(ctx context.Context) error {
	keys, data, err := r.openPair(ctx, r.app.FilterCmd)
	if err != nil {
		return err
	}

	for key, value := range data.InnerJoinSet(keys.Keys()).All() {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.print(key, value)
	}

	return nil
}

func (r *runner) intersect(ctx context.Context) error {
	locations := *r.app.IntersectCmd.Files
	sets := make([]ordered.Set[string], 0, len(locations))

	for _, location := range locations {
		m, err := r.openMap(ctx, location)
		if err != nil {
			return err
		}

		sets = append(sets, m.Keys())
	}

	rest := make([]ordered.SetIterator[string], 0, len(sets)-1)
	for _, s := range sets[1:] {
		rest = append(rest, s)
	}

	for key := range ordered.Intersect(sets[0], rest...).All() {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.print(key)
	}

	return nil
}

type checkResult struct {
	records int
	err     error
}

// check reads every input to its end with validation on, several at a time,
// reports each one in argument order, and fails if any of them failed.
func (r *runner) check(ctx context.Context) error {
	locations := *r.app.CheckCmd.Files
	results := make([]checkResult, len(locations))
	passed, failed := atomic.NewInt64(0), atomic.NewInt64(0)

	pool := pond.NewPool(max(1, *r.app.CheckCmd.Parallel))
	defer pool.StopAndWait()

	group := pool.NewGroup()

	for i, location := range locations {
		group.Submit(func() {
			results[i] = r.checkOne(ctx, location)

			if results[i].err != nil {
				failed.Inc()
			} else {
				passed.Inc()
			}
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	var failures errs.Collection

	for i, location := range locations {
		if err := results[i].err; err != nil {
			failures.Add(err)
			r.print(location, "error", err.Error())

			continue
		}

		r.print(location, "ok", strconv.Itoa(results[i].records))
	}

	r.log.Info("checked inputs", "passed", passed.Load(), "failed", failed.Load())

	return failures.Err()
}

func (r *runner) checkOne(ctx context.Context, location string) checkResult {
	f, err := records.Open(ctx, location, r.options(true))
	if err != nil {
		return checkResult{err: err}
	}

	defer func() {
		_ = f.Close()
	}()

	keys := f.Keys()
	if *r.app.Stats {
		keys = instrument.CountSet(location, keys)
	}

	for range keys.All() {
		if err := ctx.Err(); err != nil {
			return checkResult{err: err}
		}
	}

	if err := f.Err(); err != nil {
		r.log.Warn("input failed check", "location", location, "error", err)

		return checkResult{records: f.Records(), err: err}
	}

	r.log.Debug("input passed check", "location", location, "records", f.Records())

	return checkResult{records: f.Records()}
}

func (r *runner) logStats(gatherer prometheus.Gatherer) {
	stats, err := instrument.Snapshot(gatherer)
	if err != nil {
		r.log.Warn("reading stats", "error", err)

		return
	}

	for _, stat := range stats {
		r.log.Info("stats",
			"sequence", stat.Sequence,
			"pulled", stat.Pulled,
			"exhausted", stat.Exhausted)
	}
}
