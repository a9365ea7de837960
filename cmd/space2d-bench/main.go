package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/oliverbestmann/space2d/gm"
	"github.com/pkg/profile"
)

type config struct {
	Polygons   int
	Vertices   int
	Iterations int
}

type result struct {
	Transformed int
	Rejected    int
	Area        float64
}

func main() {
	var cfg config

	flag.IntVar(&cfg.Polygons, "polygons", 1000, "number of polygons to transform per iteration")
	flag.IntVar(&cfg.Vertices, "vertices", 8, "number of vertices per polygon")
	flag.IntVar(&cfg.Iterations, "iterations", 100, "number of iterations")
	profileMode := flag.String("profile", "", "write a profile: cpu or mem")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	gm.SetLogger(logger)

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	default:
		logger.Error("Unknown profile mode", slog.String("mode", *profileMode))
		os.Exit(2)
	}

	startTime := time.Now()

	res, err := run(cfg)
	if err != nil {
		logger.Error("Benchmark failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	logger.Info("Benchmark finished",
		slog.Int("transformed", res.Transformed),
		slog.Int("rejected", res.Rejected),
		slog.Float64("area", res.Area),
		slog.Duration("duration", time.Since(startTime)),
	)
}

func run(cfg config) (result, error) {
	if cfg.Vertices < 3 {
		return result{}, fmt.Errorf("need at least three vertices, got %d", cfg.Vertices)
	}

	polygons := make([]gm.Poly2[float64], cfg.Polygons)
	for idx := range polygons {
		poly, err := regularPolygon(cfg.Vertices, gm.RandomIn(1.0, 10.0))
		if err != nil {
			return result{}, fmt.Errorf("create polygon %d: %w", idx, err)
		}

		polygons[idx] = poly
	}

	var res result

	for range cfg.Iterations {
		m := randomTransform()

		for idx, poly := range polygons {
			transformed, err := gm.TransformShape(m, poly)
			if err != nil {
				res.Rejected++
				continue
			}

			res.Transformed++
			res.Area += transformed.Area()

			// move the polygon back so it does not run away
			polygons[idx] = transformed.MoveCenterTo(gm.Point2[float64]{})
		}
	}

	return res, nil
}

func regularPolygon(vertices int, radius float64) (gm.Poly2[float64], error) {
	points := make([]gm.Point2[float64], vertices)

	for idx := range points {
		angle := gm.PiRadians(2 * float64(idx) / float64(vertices))
		points[idx] = gm.NormVec2FromAngle[float64](angle).Vec().Mul(radius).Point()
	}

	return gm.NewPoly2(points...)
}

func randomTransform() gm.Mat {
	return gm.Identity[float64]().
		Translate(gm.RandomVec[float64]().Mul(100)).
		RotateAround(gm.RandomAngle(), gm.RandomVec[float64]().Point()).
		Shear(gm.RandomIn(-0.1, 0.1), gm.RandomIn(-0.1, 0.1)).
		Scale(gm.RandomIn(0.9, 1.1), gm.RandomIn(0.9, 1.1))
}
