package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"schedsim/api"
	"schedsim/config"
	"schedsim/internal/render"
	"schedsim/internal/schedulers"
)

func main() {
	cfg := config.GetSchedulerConfig()

	// with a CSV process file argument, run the offline comparison instead
	// of serving
	if len(os.Args) > 1 {
		if err := runFile(os.Args[1], cfg); err != nil {
			log.Fatalln(err)
		}
		return
	}

	app := fiber.New()
	handler := api.NewSchedulerHandlerImpl(cfg)

	apiGroup := app.Group("/api")
	v1 := apiGroup.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sweep", handler.QuantumSweep)
		v1.Post("/adaptive", handler.AdaptiveQuantum)
		v1.Post("/compare", handler.Compare)
	}

	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}

func runFile(path string, cfg *config.SchedulerConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: error opening process file", err)
	}
	defer f.Close()

	processes, err := loadProcesses(f)
	if err != nil {
		return err
	}

	fcfs, err := schedulers.SimulateFCFS(processes)
	if err != nil {
		return err
	}
	render.Schedule(os.Stdout, "First-come, first-serve", fcfs)

	quantum := float64(cfg.RoundRobinTimeQuantum)
	roundRobin, err := schedulers.SimulateRoundRobin(processes, quantum)
	if err != nil {
		return err
	}
	render.Schedule(os.Stdout, fmt.Sprintf("Round-robin (quantum=%v)", quantum), roundRobin)

	qMin, qMax := cfg.SweepMinQuantum, cfg.SweepMaxQuantum
	if qMin == 0 || qMax == 0 {
		qMin, qMax = schedulers.DefaultQuantumRange(processes)
	}
	points, err := schedulers.AnalyzeQuantumRange(processes, qMin, qMax)
	if err != nil {
		return err
	}
	adaptive, err := schedulers.AdaptiveQuantum(processes)
	if err != nil {
		return err
	}
	optimal, _ := schedulers.OptimalQuantum(points)
	render.Sweep(os.Stdout, points, optimal.TimeQuantum, adaptive)
	return nil
}

// loadProcesses reads "id,arrival,burst" rows, skipping an optional header.
func loadProcesses(r io.Reader) ([]schedulers.Process, error) {
	rows, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: reading CSV", err)
	}

	processes := make([]schedulers.Process, 0, len(rows))
	for i, row := range rows {
		if len(row) != 3 {
			return nil, fmt.Errorf("row %d: want 3 columns id,arrival,burst, got %d", i+1, len(row))
		}
		id, err := strconv.Atoi(row[0])
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		arrival, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		burst, err := strconv.ParseFloat(row[2], 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		processes = append(processes, schedulers.Process{
			ID:          id,
			ArrivalTime: arrival,
			BurstTime:   burst,
		})
	}
	return processes, nil
}
