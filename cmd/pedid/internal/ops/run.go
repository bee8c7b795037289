package ops

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/gammazero/workerpool"
	"github.com/prequel-dev/pedid"
)

type modeT int

const (
	modeGet modeT = iota
	modeSet
)

type runT struct {
	mode    modeT
	dims    pedid.Dimensions
	files   []string
	backup  bool
	force   bool
	table   bool
	verbose bool
	maxExt  int
	cpus    int
	stdout  io.Writer
	stderr  io.Writer
}

type resultT struct {
	name   string
	report pedid.Report
	backup string
	stdout bool
	err    error
}

// Run executes the parsed command line.
func Run() error {
	r, err := newRun(CLI.Get, CLI.Set)
	if err != nil {
		return err
	}

	r.files = CLI.Files
	r.backup = CLI.Backup
	r.force = CLI.Force
	r.table = CLI.Table
	r.verbose = CLI.Verbose
	r.maxExt = CLI.MaxExt
	r.cpus = CLI.Cpus

	return r.run()
}

// newRun validates the mode before any file is touched.
func newRun(get bool, set string) (*runT, error) {
	r := &runT{
		maxExt: pedid.MaxExtensions,
		cpus:   -1,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	switch {
	case get && set != "":
		return nil, fmt.Errorf("%w: --get and --set are mutually exclusive", pedid.ErrUsage)
	case get:
		r.mode = modeGet
	case set != "":
		dims, err := pedid.ParseDimensions(set)
		if err != nil {
			return nil, err
		}
		if err := dims.Validate(); err != nil {
			return nil, err
		}
		r.mode = modeSet
		r.dims = dims
	default:
		return nil, fmt.Errorf("%w: one of --get or --set is required", pedid.ErrUsage)
	}

	return r, nil
}

func (r *runT) run() error {
	if len(r.files) == 0 {
		return fmt.Errorf("%w: no file given", pedid.ErrUsage)
	}

	nStdin := 0
	for _, name := range r.files {
		if name == "-" {
			nStdin++
		}
	}
	if nStdin > 0 && (len(r.files) > 1 || r.backup) {
		return fmt.Errorf("%w: stdin must be the only file and cannot be backed up", pedid.ErrUsage)
	}

	results := r.runAll()

	var errList filesError
	for _, res := range results {
		if res.err != nil {
			errList = append(errList, fmt.Errorf("%s: %w", res.name, res.err))
		}
	}

	if err := r.render(results); err != nil {
		errList = append(errList, err)
	}

	if len(errList) == 0 {
		return nil
	}

	return errList
}

// runAll processes every file on a worker pool; results keep argument order.
func (r *runT) runAll() []resultT {
	var (
		results = make([]resultT, len(r.files))
		wp      = workerpool.New(r.nWorkers())
	)

	for i, name := range r.files {
		i, name := i, name
		wp.Submit(func() {
			results[i] = r.runOne(name)
		})
	}

	wp.StopWait()
	return results
}

func (r *runT) nWorkers() int {
	numCPU := runtime.NumCPU()
	n := r.cpus
	if n <= 0 || n > numCPU {
		n = numCPU
	}
	return min(n, max(len(r.files), 1))
}

func (r *runT) runOne(name string) (res resultT) {
	res.name = name

	tgt, err := openTarget(name, r.mode == modeSet)
	if err != nil {
		res.err = err
		return
	}
	defer tgt.Close()

	res.name = tgt.Name()

	if r.mode == modeGet {
		res.report, res.err = pedid.Get(tgt.Reader(), r.opts(tgt.Name())...)
		return
	}

	out, err := pedid.Set(tgt.Reader(), r.dims, r.opts(tgt.Name())...)
	if err != nil {
		res.err = err
		return
	}

	if r.backup {
		if res.backup, err = writeBackup(name, tgt.blob, r.force); err != nil {
			res.err = err
			return
		}
	}

	if err := tgt.WriteBack(r.stdout, out); err != nil {
		res.err = err
		return
	}

	if err := tgt.Close(); err != nil {
		res.err = err
		return
	}

	// Summarize what landed; the blob is valid so this cannot fail.
	res.report, res.err = pedid.Get(bytes.NewReader(out))
	res.stdout = tgt.Stdin()

	return
}

func (r *runT) opts(name string) []pedid.OptT {
	opts := []pedid.OptT{
		pedid.WithMaxExtensions(r.maxExt),
	}

	if r.verbose {
		cbTrace := func(blk int, kind pedid.BlockKindT, off int, desc bool) {
			what := "block"
			if desc {
				what = "descriptor"
			}
			fmt.Fprintf(r.stderr, "%s: %s %d (%s) at offset %d\n", name, what, blk, kind, off)
		}
		opts = append(opts, pedid.WithTrace(cbTrace))
	}

	return opts
}
