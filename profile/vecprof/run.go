package main

import (
	"fmt"
	"time"

	"github.com/edwinsyarief/vector"
	"github.com/pkg/profile"
	"go.uber.org/zap"
)

type sample struct {
	V int64
	W int64
}

// Summary is what a workload reports back.
type Summary struct {
	Ops      int
	PeakCap  int
	Checksum int64
}

type workload func(cfg Config) Summary

var workloads = map[string]workload{
	"append": runAppend,
	"insert": runInsert,
	"resize": runResize,
}

// profileMode maps a mode name to a pkg/profile option. "none" runs the
// workload without profiling.
func profileMode(mode string) (func(*profile.Profile), error) {
	switch mode {
	case "cpu":
		return profile.CPUProfile, nil
	case "mem":
		return profile.MemProfile, nil
	case "allocs":
		return profile.MemProfileAllocs, nil
	case "none":
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}
}

// Run executes the named workload under the profiler selected by cfg.Mode.
func Run(cfg Config, name string, log *zap.Logger) (Summary, error) {
	w, ok := workloads[name]
	if !ok {
		return Summary{}, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
	}
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	mode, err := profileMode(cfg.Mode)
	if err != nil {
		return Summary{}, err
	}

	log.Debug("starting workload",
		zap.String("workload", name),
		zap.Int("rounds", cfg.Rounds),
		zap.Int("iters", cfg.Iters),
		zap.Int("elements", cfg.Elements),
		zap.String("mode", cfg.Mode))

	var p interface{ Stop() }
	if mode != nil {
		p = profile.Start(mode, profile.ProfilePath(cfg.Path), profile.NoShutdownHook, profile.Quiet)
	}
	start := time.Now()
	s := w(cfg)
	elapsed := time.Since(start)
	if p != nil {
		p.Stop()
	}

	log.Info("workload finished",
		zap.String("workload", name),
		zap.Int("ops", s.Ops),
		zap.Int("peak_cap", s.PeakCap),
		zap.Int64("checksum", s.Checksum),
		zap.Duration("elapsed", elapsed))
	return s, nil
}

// runAppend fills a vector from empty and clears it, keeping the capacity
// between cycles of the same round.
func runAppend(cfg Config) Summary {
	var s Summary
	for range cfg.Rounds {
		var v vector.Vector[sample]
		for range cfg.Iters {
			for i := range cfg.Elements {
				v.PushBack(sample{V: int64(i), W: 1})
				s.Ops++
			}
			for _, e := range v.All() {
				s.Checksum += e.V + e.W
			}
			s.PeakCap = max(s.PeakCap, v.Cap())
			v.Clear()
		}
		v.Release()
	}
	return s
}

// runInsert grows a vector by inserting in the middle, then drains it from
// the front.
func runInsert(cfg Config) Summary {
	var s Summary
	for range cfg.Rounds {
		var v vector.Vector[sample]
		for range cfg.Iters {
			for i := range cfg.Elements {
				v.Insert(v.Len()/2, sample{V: int64(i)})
				s.Ops++
			}
			for _, e := range v.All() {
				s.Checksum += e.V
			}
			s.PeakCap = max(s.PeakCap, v.Cap())
			for !v.IsEmpty() {
				v.Erase(v.Begin())
				s.Ops++
			}
		}
		v.Release()
	}
	return s
}

// runResize cycles a vector through resize, reserve and shrink.
func runResize(cfg Config) Summary {
	var s Summary
	for range cfg.Rounds {
		var v vector.Vector[sample]
		for range cfg.Iters {
			v.Resize(cfg.Elements)
			for i := range v.Len() {
				v.At(i).V = int64(i)
			}
			v.Resize(cfg.Elements / 2)
			v.Reserve(cfg.Elements * 2)
			s.PeakCap = max(s.PeakCap, v.Cap())
			v.ShrinkToFit()
			for _, e := range v.All() {
				s.Checksum += e.V
			}
			v.Resize(0)
			s.Ops += 5
		}
		v.Release()
	}
	return s
}
