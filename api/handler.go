package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/mahmoudKheyrati/cpu-scheduler/config"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/core"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/requests"
	"github.com/mahmoudKheyrati/cpu-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &SchedulerHandlerImpl{config: config, logger: logger}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, processes, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	quantum := request.Quantum(s.config.RoundRobinTimeQuantum)

	results, err := schedulers.RunAll(processes, quantum)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.logger.Info("scheduled all algorithms", "jobs", len(processes), "time_quantum", quantum)
	return ctx.JSON(schedulers.GenerateComparison(results, quantum))
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{"status": "ok"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm string) error {
	request, processes, err := s.parse(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	quantum := request.Quantum(s.config.RoundRobinTimeQuantum)

	result, err := schedulers.Run(algorithm, processes, quantum)
	if err != nil {
		return s.fail(ctx, err)
	}
	s.logger.Info("scheduled", "algorithm", algorithm, "jobs", len(processes),
		"average_waiting_time", result.Metrics.AvgWaiting)
	return ctx.JSON(schedulers.GenerateResponse(result, quantum))
}

var errRequestFormat = errors.New("invalid request format")

func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx) (*requests.ScheduleRequests, []core.Process, error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		s.logger.Warn("bad request body", "err", err)
		return nil, nil, errRequestFormat
	}
	processes, err := request.Processes()
	if err != nil {
		return nil, nil, err
	}
	return &request, processes, nil
}

func (s *SchedulerHandlerImpl) fail(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, errRequestFormat), errors.Is(err, core.ErrInvalidInput):
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	s.logger.Error("can not process request", "err", err)
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
