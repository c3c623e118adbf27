package api

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"schedsim/config"
	"schedsim/internal/requests"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	QuantumSweep(ctx *fiber.Ctx) error
	AdaptiveQuantum(ctx *fiber.Ctx) error
	Compare(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}
	log.Println("running fcfs algorithm")
	result, err := schedulers.SimulateFCFS(requests.Processes(request.Jobs))
	if err != nil {
		return engineError(ctx, err)
	}
	return ctx.JSON(responses.PackScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}
	quantum := request.TimeQuantum
	if quantum == 0 {
		quantum = float64(s.config.RoundRobinTimeQuantum)
	}
	log.Println("running roundRobin algorithm with timeQuantum =", quantum)
	result, err := schedulers.SimulateRoundRobin(requests.Processes(request.Jobs), quantum)
	if err != nil {
		return engineError(ctx, err)
	}
	return ctx.JSON(responses.PackScheduleResponse(result))
}

func (s *SchedulerHandlerImpl) QuantumSweep(ctx *fiber.Ctx) error {
	var request requests.SweepRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}
	processes := requests.Processes(request.Jobs)

	qMin, qMax := request.MinQuantum, request.MaxQuantum
	if qMin == 0 && qMax == 0 {
		if s.config.SweepMinQuantum > 0 && s.config.SweepMaxQuantum > 0 {
			qMin, qMax = s.config.SweepMinQuantum, s.config.SweepMaxQuantum
		} else {
			qMin, qMax = schedulers.DefaultQuantumRange(processes)
		}
	}
	log.Println("running quantum sweep over range [", qMin, ",", qMax, "]")

	points, err := schedulers.AnalyzeQuantumRange(processes, qMin, qMax)
	if err != nil {
		return engineError(ctx, err)
	}
	adaptive, err := schedulers.AdaptiveQuantum(processes)
	if err != nil {
		return engineError(ctx, err)
	}
	optimal, _ := schedulers.OptimalQuantum(points)
	return ctx.JSON(responses.PackSweepResponse(points, optimal.TimeQuantum, adaptive))
}

func (s *SchedulerHandlerImpl) AdaptiveQuantum(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}
	adaptive, err := schedulers.AdaptiveQuantum(requests.Processes(request.Jobs))
	if err != nil {
		return engineError(ctx, err)
	}
	return ctx.JSON(responses.AdaptiveResponse{AdaptiveQuantum: adaptive})
}

func (s *SchedulerHandlerImpl) Compare(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx)
	}
	processes := requests.Processes(request.Jobs)
	quantum := request.TimeQuantum
	if quantum == 0 {
		quantum = float64(s.config.RoundRobinTimeQuantum)
	}
	log.Println("running fcfs and roundRobin comparison with timeQuantum =", quantum)

	fcfs, err := schedulers.SimulateFCFS(processes)
	if err != nil {
		return engineError(ctx, err)
	}
	roundRobin, err := schedulers.SimulateRoundRobin(processes, quantum)
	if err != nil {
		return engineError(ctx, err)
	}
	return ctx.JSON(responses.CompareResponse{
		TimeQuantum:         quantum,
		FirstComeFirstServe: responses.PackScheduleResponse(fcfs),
		RoundRobin:          responses.PackScheduleResponse(roundRobin),
	})
}

func badRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request format",
	})
}

func engineError(ctx *fiber.Ctx, err error) error {
	if errors.Is(err, schedulers.ErrEmptyInput) ||
		errors.Is(err, schedulers.ErrInvalidQuantum) ||
		errors.Is(err, schedulers.ErrInvalidRange) ||
		errors.Is(err, schedulers.ErrInvalidProcess) {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "can not process request",
	})
}
