// Command gen regenerates the embedded Dickey-Fuller reference tables.
//
// Each table is built by Monte-Carlo simulation: a driftless random walk of
// fixed length is generated, the Dickey-Fuller regression for the given
// deterministic specification is solved in closed form, and the tau
// statistics across all replications form the empirical distribution. The
// sorted statistics are thinned to a fixed number of quantile knots and
// written as (statistic, probability) CSV rows.
//
// Usage:
//
//	go run ./dftable/gen -reps 50000 -length 400 -knots 20001 -out dftable/data
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

func main() {
	reps := flag.Int("reps", 50000, "Monte-Carlo replications per table")
	length := flag.Int("length", 400, "random-walk length per replication")
	knots := flag.Int("knots", 20001, "quantile knots per table")
	seed := flag.Int64("seed", 20240817, "base RNG seed")
	out := flag.String("out", "dftable/data", "output directory")
	flag.Parse()

	specs := []struct {
		name string
		tau  func(walk []float64) float64
	}{
		{"none", tauNone},
		{"drift", tauDrift},
		{"trend", tauTrend},
	}

	for i, spec := range specs {
		// Inverse-CDF sampling keeps the draw deterministic for a given
		// seed regardless of the distribution's internal sampler.
		rng := rand.New(rand.NewSource(*seed + int64(i) + 1))
		step := func() float64 {
			u := rng.Float64()
			for u == 0 {
				u = rng.Float64()
			}
			return distuv.UnitNormal.Quantile(u)
		}

		taus := make([]float64, *reps)
		walk := make([]float64, *length)
		for r := 0; r < *reps; r++ {
			y := 0.0
			for t := range walk {
				walk[t] = y
				y += step()
			}
			taus[r] = spec.tau(walk)
		}
		sort.Float64s(taus)

		path := filepath.Join(*out, spec.name+".csv")
		if err := writeTable(path, taus, *knots); err != nil {
			log.Fatalf("writing %s: %v", path, err)
		}
		fmt.Printf("%s: 1%%=%.3f 5%%=%.3f 10%%=%.3f (%d reps)\n",
			spec.name,
			taus[int(0.01*float64(*reps))],
			taus[int(0.05*float64(*reps))],
			taus[int(0.10*float64(*reps))],
			*reps)
	}
}

// tauNone solves delta_y = rho*y_{t-1} + e and returns rho_hat / se(rho_hat).
// The walk holds y_0..y_{n-1}; the differences are recovered pairwise.
func tauNone(walk []float64) float64 {
	n := len(walk) - 1
	var sxx, sxy, syy float64
	for t := 0; t < n; t++ {
		x := walk[t]
		e := walk[t+1] - walk[t]
		sxx += x * x
		sxy += x * e
		syy += e * e
	}
	rho := sxy / sxx
	rss := syy - rho*rho*sxx
	s2 := rss / float64(n-1)
	return rho / math.Sqrt(s2/sxx)
}

// tauDrift adds an intercept: both sides are demeaned before the simple
// regression.
func tauDrift(walk []float64) float64 {
	n := len(walk) - 1
	var mx, me float64
	for t := 0; t < n; t++ {
		mx += walk[t]
		me += walk[t+1] - walk[t]
	}
	mx /= float64(n)
	me /= float64(n)

	var sxx, sxy, syy float64
	for t := 0; t < n; t++ {
		dx := walk[t] - mx
		de := walk[t+1] - walk[t] - me
		sxx += dx * dx
		sxy += dx * de
		syy += de * de
	}
	rho := sxy / sxx
	rss := syy - rho*rho*sxx
	s2 := rss / float64(n-2)
	return rho / math.Sqrt(s2/sxx)
}

// tauTrend adds an intercept and linear trend. Both sides are residualized
// on [1, t] first (Frisch-Waugh), then the simple regression gives the same
// rho_hat and standard error as the full three-column solve.
func tauTrend(walk []float64) float64 {
	n := len(walk) - 1
	mt := float64(n-1) / 2
	var stt, mx, me float64
	for t := 0; t < n; t++ {
		d := float64(t) - mt
		stt += d * d
		mx += walk[t]
		me += walk[t+1] - walk[t]
	}
	mx /= float64(n)
	me /= float64(n)

	var bx, be float64
	for t := 0; t < n; t++ {
		d := float64(t) - mt
		bx += d * (walk[t] - mx)
		be += d * (walk[t+1] - walk[t] - me)
	}
	bx /= stt
	be /= stt

	var sxx, sxy, syy float64
	for t := 0; t < n; t++ {
		d := float64(t) - mt
		rx := walk[t] - mx - bx*d
		re := walk[t+1] - walk[t] - me - be*d
		sxx += rx * rx
		sxy += rx * re
		syy += re * re
	}
	rho := sxy / sxx
	rss := syy - rho*rho*sxx
	s2 := rss / float64(n-3)
	return rho / math.Sqrt(s2/sxx)
}

// writeTable thins the sorted statistics to evenly spaced quantile knots and
// writes them with their plotting-position probabilities. Knots that round
// to an already written statistic are dropped so the table stays strictly
// ascending.
func writeTable(path string, taus []float64, knots int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	defer w.Flush()

	if _, err := w.WriteString("statistic,probability\n"); err != nil {
		return err
	}

	n := len(taus)
	prev := ""
	for j := 0; j < knots; j++ {
		idx := int(math.Round(float64(j) * float64(n-1) / float64(knots-1)))
		stat := fmt.Sprintf("%.6f", taus[idx])
		if stat == prev {
			continue
		}
		prev = stat
		prob := (float64(idx) + 0.5) / float64(n)
		if _, err := fmt.Fprintf(w, "%s,%.6f\n", stat, prob); err != nil {
			return err
		}
	}
	return nil
}
