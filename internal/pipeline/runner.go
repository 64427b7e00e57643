// Package pipeline runs the per-play metrics computation across a whole
// dataset. Plays are independent units of work: one play's failure is
// recorded and the batch moves on.
package pipeline

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/calder/go-tackle-metrics/internal/model"
	"github.com/calder/go-tackle-metrics/internal/tackle"
)

// Failure records one play the pipeline could not analyze.
type Failure struct {
	Key model.PlayKey
	Err error
}

// Result is the outcome of one batch run.
type Result struct {
	Records  []model.TackleMetricsRecord
	Failures []Failure
	// Skipped counts plays dropped before analysis because they do not end
	// in a tackle event (incompletions, out-of-bounds, slides, scores).
	Skipped int
}

// Runner applies the gap-series -> detection -> metrics pipeline per play.
type Runner struct {
	det     tackle.DetectorConfig
	workers int
	log     zerolog.Logger
}

// New returns a Runner. workers below 1 is clamped to 1.
func New(det tackle.DetectorConfig, workers int, log zerolog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{det: det, workers: workers, log: log}
}

// Run groups the tracking frames by play and computes one metrics record
// per tackle-ending play. Reference data (plays, tackles, players) is read
// only. Records and failures come back sorted by play key regardless of
// worker scheduling.
func (r *Runner) Run(ctx context.Context, frames []model.TrackingFrame, plays []model.PlayMetadata, tackles []model.TackleAttribution, players []model.Player) (*Result, error) {
	weights := make(map[int]float64, len(players))
	for _, p := range players {
		weights[p.NFLID] = p.Weight
	}
	carrierByPlay := make(map[model.PlayKey]int, len(plays))
	for _, p := range plays {
		carrierByPlay[p.Key()] = p.BallCarrierID
	}
	tacklerByPlay := make(map[model.PlayKey]int)
	for _, t := range tackles {
		if t.Tackle == 1 {
			if _, ok := tacklerByPlay[t.Key()]; !ok {
				tacklerByPlay[t.Key()] = t.NFLID
			}
		}
	}

	byPlay := make(map[model.PlayKey][]model.TrackingFrame)
	var keys []model.PlayKey
	for _, f := range frames {
		k := f.Key()
		if _, ok := byPlay[k]; !ok {
			keys = append(keys, k)
		}
		byPlay[k] = append(byPlay[k], f)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })

	jobs := make(chan model.PlayKey)
	var (
		mu     sync.Mutex
		result Result
	)

	var wg sync.WaitGroup
	for w := 0; w < r.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for key := range jobs {
				rec, skipped, err := r.analyzePlay(byPlay[key], key, carrierByPlay, tacklerByPlay, weights)
				mu.Lock()
				switch {
				case err != nil:
					result.Failures = append(result.Failures, Failure{Key: key, Err: err})
				case skipped:
					result.Skipped++
				default:
					result.Records = append(result.Records, rec)
				}
				mu.Unlock()
				if err != nil {
					r.log.Warn().
						Int("game_id", key.GameID).
						Int("play_id", key.PlayID).
						Err(err).
						Msg("play failed")
				}
			}
		}()
	}

	for _, key := range keys {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- key:
		}
	}
	close(jobs)
	wg.Wait()

	sort.Slice(result.Records, func(i, j int) bool {
		return less(result.Records[i].Key(), result.Records[j].Key())
	})
	sort.Slice(result.Failures, func(i, j int) bool {
		return less(result.Failures[i].Key, result.Failures[j].Key)
	})

	r.log.Info().
		Int("analyzed", len(result.Records)).
		Int("failed", len(result.Failures)).
		Int("skipped", result.Skipped).
		Msg("batch complete")
	return &result, nil
}

// analyzePlay runs the pipeline for one play. The bool return marks plays
// skipped because they do not end in a tackle.
func (r *Runner) analyzePlay(frames []model.TrackingFrame, key model.PlayKey, carriers, tacklers map[model.PlayKey]int, weights map[int]float64) (model.TackleMetricsRecord, bool, error) {
	hasTackle, err := tackle.PlayContainsTackle(frames)
	if err != nil {
		return model.TackleMetricsRecord{}, false, err
	}
	if !hasTackle {
		return model.TackleMetricsRecord{}, true, nil
	}

	carrierID, ok := carriers[key]
	if !ok {
		return model.TackleMetricsRecord{}, false, &tackle.EmptyJoinError{
			Reason: "no play metadata names a ball carrier"}
	}
	tacklerID, ok := tacklers[key]
	if !ok {
		return model.TackleMetricsRecord{}, false, &tackle.EmptyJoinError{
			CarrierID: carrierID, Reason: "no credited tackler in attribution data"}
	}

	series, err := tackle.BuildGapSeries(frames, carrierID, tacklerID, weights)
	if err != nil {
		return model.TackleMetricsRecord{}, false, err
	}
	window, err := tackle.DetectTackleWindow(series, r.det)
	if err != nil {
		return model.TackleMetricsRecord{}, false, err
	}
	rec, err := tackle.ComputeMetrics(series, window, r.det)
	if err != nil {
		return model.TackleMetricsRecord{}, false, err
	}
	rec.GameID = key.GameID
	rec.PlayID = key.PlayID
	return rec, false, nil
}

func less(a, b model.PlayKey) bool {
	if a.GameID != b.GameID {
		return a.GameID < b.GameID
	}
	return a.PlayID < b.PlayID
}
