package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"bookly/config"
	"bookly/infras/kafka"
	"bookly/infras/otel"
	"bookly/internal/domains/appointment/model"
	"bookly/internal/domains/appointment/model/dto"
	"bookly/internal/domains/appointment/repository"
	brandModel "bookly/internal/domains/brand/model"
	brandRepo "bookly/internal/domains/brand/repository"
	scheduleService "bookly/internal/domains/schedule/service"
	"bookly/internal/scheduling"
	"bookly/shared"
	"bookly/shared/cache"
	"bookly/shared/constant"
	gDto "bookly/shared/dto"
	"bookly/shared/failure"
	"bookly/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"
)

const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentRescheduled   = "appointment.rescheduled"
	EventAppointmentStatusChanged = "appointment.status_changed"
)

const dateLayout = "2006-01-02"

// AppointmentEvent is the payload published to the appointment events topic.
type AppointmentEvent struct {
	Event          string    `json:"event"`
	AppointmentID  string    `json:"appointment_id"`
	BrandID        string    `json:"brand_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
	OccurredAt     time.Time `json:"occurred_at"`
}

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) (dto.AppointmentResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Reschedule(ctx context.Context, req dto.RescheduleAppointmentRequest, id string) (dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, req dto.UpdateAppointmentStatusRequest, id string) error
	Update(ctx context.Context, req dto.UpdateAppointmentNotesRequest, id string) error
	DayAvailability(ctx context.Context, brandID, date string) (dto.DayAvailabilityResponse, error)
}

type serviceImpl struct {
	repo      repository.Appointment
	brandRepo brandRepo.Brand
	schedule  scheduleService.Schedule
	cfg       *config.Config
	cache     cache.RedisCache
	kafka     kafka.Client
	otel      otel.Otel

	// locks serializes validate-then-persist per brand. Conflict validation
	// reads existing rows before inserting; without the lock two concurrent
	// requests for the same window could both pass and both persist.
	locks sync.Map
}

func New(
	repo repository.Appointment,
	brandRepo brandRepo.Brand,
	schedule scheduleService.Schedule,
	cfg *config.Config,
	cache cache.RedisCache,
	kafkaClient kafka.Client,
	otel otel.Otel,
) Appointment {
	return &serviceImpl{
		repo:      repo,
		brandRepo: brandRepo,
		schedule:  schedule,
		cfg:       cfg,
		cache:     cache,
		kafka:     kafkaClient,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	brandExists, err := s.brandRepo.Exist(ctx, shared.FilterByID(req.BrandID, brandModel.FieldID, brandModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if brand exists")

		return res, fmt.Errorf("failed to check if brand exists: %w", err)
	}

	if !brandExists {
		return res, failure.NotFound("brand not found") // nolint:wrapcheck
	}

	snapshot, err := s.schedule.CalendarSnapshot(ctx, req.BrandID)
	if err != nil {
		return res, err
	}

	appointment, err := req.ToModel(user, snapshot.Policy.DefaultDurationMinutes)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse appointment request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	lock := s.brandLock(req.BrandID)
	lock.Lock()
	defer lock.Unlock()

	if err = s.validateWindow(ctx, snapshot, appointment.BrandID, appointment.StartTime, appointment.EndTime, constant.Empty); err != nil {
		return res, err
	}

	if err = s.repo.Insert(ctx, appointment); err != nil {
		log.Error().Err(err).Msg("failed to create appointment")

		return res, fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidateAppointmentCaches(ctx, appointment.BrandID, appointment.ID)
	s.publishEvent(ctx, EventAppointmentCreated, appointment, constant.Empty)

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.loadAppointment(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Reschedule(ctx context.Context, req dto.RescheduleAppointmentRequest, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appointment, err := s.loadAppointment(ctx, id)
	if err != nil {
		return res, err
	}

	if scheduling.Status(appointment.Status).IsTerminal() {
		return res, failure.Conflict(fmt.Sprintf("cannot reschedule appointment in status %s", appointment.Status)) // nolint:wrapcheck
	}

	start, end, err := req.Window(appointment)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse reschedule request")

		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date/time format: %v", err)) // nolint:wrapcheck
	}

	snapshot, err := s.schedule.CalendarSnapshot(ctx, appointment.BrandID)
	if err != nil {
		return res, err
	}

	lock := s.brandLock(appointment.BrandID)
	lock.Lock()
	defer lock.Unlock()

	// The appointment's own slot must not block its new window.
	if err = s.validateWindow(ctx, snapshot, appointment.BrandID, start, end, appointment.ID); err != nil {
		return res, err
	}

	fields := map[string]any{
		model.FieldStartTime:     start,
		model.FieldEndTime:       end,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reschedule appointment")

		return res, fmt.Errorf("failed to reschedule appointment: %w", err)
	}

	appointment.StartTime = start
	appointment.EndTime = end

	s.invalidateAppointmentCaches(ctx, appointment.BrandID, appointment.ID)
	s.publishEvent(ctx, EventAppointmentRescheduled, appointment, constant.Empty)

	res.FromModel(appointment)

	return res, nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateAppointmentStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appointment, err := s.loadAppointment(ctx, id)
	if err != nil {
		return err
	}

	current := scheduling.Status(appointment.Status)
	next := scheduling.Status(req.Status)

	if !current.CanTransition(next) {
		return failure.Conflict(fmt.Sprintf("cannot transition appointment from %s to %s", current, next)) // nolint:wrapcheck
	}

	fields := map[string]any{
		model.FieldStatus:        string(next),
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update appointment status")

		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	previous := appointment.Status
	appointment.Status = string(next)

	s.invalidateAppointmentCaches(ctx, appointment.BrandID, appointment.ID)
	s.publishEvent(ctx, EventAppointmentStatusChanged, appointment, previous)

	return nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentNotesRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAppointmentNotesRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appointment, err := s.loadAppointment(ctx, id)
	if err != nil {
		return err
	}

	// Client details and notes never shift the window, so no re-validation.
	if err = s.repo.Update(ctx, shared.TransformFields(req, user), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	s.invalidateAppointmentCaches(ctx, appointment.BrandID, appointment.ID)

	return nil
}

func (s *serviceImpl) DayAvailability(ctx context.Context, brandID, date string) (res dto.DayAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DayAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return res, failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(constant.CacheKeyAvailability, brandID+":"+date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for day availability")

		return res, nil
	}

	snapshot, err := s.schedule.CalendarSnapshot(ctx, brandID)
	if err != nil {
		return res, err
	}

	window := scheduling.ResolveDay(snapshot, day)

	existing, err := s.existingForDay(ctx, brandID, day)
	if err != nil {
		return res, err
	}

	slots, err := scheduling.GenerateSlots(window, snapshot.Policy.DefaultDurationMinutes, snapshot.Policy.BufferMinutes, existing)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate slots")

		return res, fmt.Errorf("failed to generate slots: %w", err)
	}

	res = dto.DayAvailabilityResponse{
		BrandID: brandID,
		Date:    date,
		IsOpen:  window.IsOpen,
		Reason:  window.Reason,
		Slots:   slots,
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save day availability to cache")
		}
	}()

	return res, nil
}

// validateWindow runs the scheduling engine against the brand's calendar and
// the day's persisted appointments, mapping a rejection onto an HTTP failure.
func (s *serviceImpl) validateWindow(ctx context.Context, snapshot scheduling.CalendarConfig, brandID string, start, end time.Time, excludeID string) error {
	existing, err := s.existingForDay(ctx, brandID, scheduling.DateOf(start))
	if err != nil {
		return err
	}

	result, err := scheduling.Validate(snapshot, existing, start, end, timezone.Now(), excludeID)
	if err != nil {
		return failure.BadRequestFromString(err.Error()) // nolint:wrapcheck
	}

	if result.Ok() {
		return nil
	}

	rejection := result.Rejection
	message := fmt.Sprintf("%s: %s", rejection.Reason, rejection.Message)

	if rejection.Reason == scheduling.ReasonConflict {
		return failure.Conflict(message) // nolint:wrapcheck
	}

	return failure.UnprocessableEntity(message) // nolint:wrapcheck
}

func (s *serviceImpl) existingForDay(ctx context.Context, brandID string, day time.Time) ([]scheduling.Appointment, error) {
	models, err := s.repo.GetForWindow(ctx, brandID, day, day.AddDate(0, 0, 1))
	if err != nil {
		log.Error().Err(err).Msg("failed to get existing appointments")

		return nil, fmt.Errorf("failed to get existing appointments: %w", err)
	}

	existing := make([]scheduling.Appointment, len(models))
	for i, mod := range models {
		existing[i] = mod.ToEngine()
	}

	return existing, nil
}

func (s *serviceImpl) loadAppointment(ctx context.Context, id string) (model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return appointment, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return appointment, failure.NotFound("appointment not found") // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) brandLock(brandID string) *sync.Mutex {
	lock, _ := s.locks.LoadOrStore(brandID, &sync.Mutex{})

	return lock.(*sync.Mutex) // nolint:forcetypeassert
}

func (s *serviceImpl) invalidateAppointmentCaches(ctx context.Context, brandID, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailability, brandID))
	}()
}

func (s *serviceImpl) publishEvent(ctx context.Context, event string, appointment model.Appointment, previousStatus string) {
	go func() {
		c := context.WithoutCancel(ctx)

		payload := AppointmentEvent{
			Event:          event,
			AppointmentID:  appointment.ID,
			BrandID:        appointment.BrandID,
			StartTime:      appointment.StartTime,
			EndTime:        appointment.EndTime,
			Status:         appointment.Status,
			PreviousStatus: previousStatus,
			OccurredAt:     timezone.Now(),
		}

		message := kafka.Message{Key: appointment.ID, Value: payload}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.AppointmentEvents, message); err != nil {
			log.Error().Err(err).Str("event", event).Msg("failed to publish appointment event")
		}
	}()
}
