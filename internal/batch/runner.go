// Package batch concurrently scores a dataset of poems using a fixed-size
// worker pool, the same shape as the teacher's internal/processor pipeline:
// a bounded worker count, an mpb progress bar, and non-fatal per-record
// error collection.
package batch

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/palemoky/prosody-scorer/internal/dataset"
	"github.com/palemoky/prosody-scorer/internal/prosody"
	"github.com/palemoky/prosody-scorer/internal/rhyme"
)

// MaxErrorsToCollect caps how many per-record errors Run keeps, mirroring
// the teacher's error-buffer cap so a bad dataset can't exhaust memory.
const MaxErrorsToCollect = 100

// Options configures a batch scoring run.
type Options struct {
	Workers      int
	Book         rhyme.Book
	Detailed     bool
	ShowProgress bool
}

// RecordError pairs a dataset record's position with the error scoring it
// produced — per spec.md §7, a scoring failure is never fatal to the batch.
type RecordError struct {
	Index int
	Err   error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

// Run scores every record concurrently and returns the scored records in
// the same order as the input, alongside any per-record errors.
func Run(records []dataset.Record, opts Options) ([]dataset.ScoredRecord, []RecordError) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	total := len(records)
	results := make([]dataset.ScoredRecord, total)

	var progress *mpb.Progress
	var bar *mpb.Bar
	if opts.ShowProgress {
		progress = mpb.New(mpb.WithWidth(60), mpb.WithRefreshRate(100*time.Millisecond))
		bar = progress.AddBar(int64(total),
			mpb.PrependDecorators(
				decor.Name("Scoring: ", decor.WC{W: 10, C: decor.DindentRight}),
				decor.CountersNoUnit("%d / %d", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(
				decor.Percentage(decor.WC{W: 5}),
				decor.Name(" | "),
				decor.AverageETA(decor.ET_STYLE_GO, decor.WC{W: 6}),
				decor.Name(" | "),
				decor.AverageSpeed(0, "%.0f poems/s", decor.WC{W: 12}),
			),
		)
	}

	workCh := make(chan int, workers*2)
	errCh := make(chan RecordError, MaxErrorsToCollect)
	var errCount atomic.Int64
	var wg sync.WaitGroup

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range workCh {
				rec := records[i]
				out := prosody.Score(rec.Content, rec.Title, rec.Instruct, opts.Book, opts.Detailed)
				results[i] = dataset.ScoredRecord{
					Record:             rec,
					FormatScore:        out.Form,
					PingzeScore:        out.Tone,
					RhymeScorePingshui: out.RhymeScorePingshui,
					RhymeScoreXin:      out.RhymeScoreXin,
					RhymeScoreTong:     out.RhymeScoreTong,
					RhymeScore:         out.Rhyme,
					Report:             out.Report,
				}
				if len(out.Result.Errors) > 0 {
					errCount.Add(1)
					select {
					case errCh <- RecordError{Index: i, Err: fmt.Errorf("%v", out.Result.Errors)}:
					default:
					}
				}
				if bar != nil {
					bar.Increment()
				}
			}
		}()
	}

	for i := range records {
		workCh <- i
	}
	close(workCh)
	wg.Wait()
	close(errCh)

	if progress != nil {
		if bar != nil {
			bar.SetTotal(int64(total), true)
		}
		progress.Wait()
	}

	var errs []RecordError
	for e := range errCh {
		errs = append(errs, e)
	}

	return results, errs
}
