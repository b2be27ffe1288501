package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"bookly/config"
	"bookly/infras/otel"
	brandModel "bookly/internal/domains/brand/model"
	brandRepo "bookly/internal/domains/brand/repository"
	"bookly/internal/domains/schedule/model"
	"bookly/internal/domains/schedule/model/dto"
	"bookly/internal/domains/schedule/repository"
	"bookly/internal/scheduling"
	"bookly/shared"
	"bookly/shared/cache"
	"bookly/shared/constant"
	gDto "bookly/shared/dto"
	"bookly/shared/failure"
	gModel "bookly/shared/model"
	"bookly/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetHours      = "schedule:hours"
	cacheGetExceptions = "schedule:exceptions"
	cacheGetPolicy     = "schedule:policy"
)

// Default schedule seeded the first time a brand's hours are read:
// Monday through Friday 09:00-18:00, weekend closed.
const (
	defaultOpenTime  = "09:00"
	defaultCloseTime = "18:00"
)

type Schedule interface {
	GetWeeklyHours(ctx context.Context, brandID string) (dto.GetWeeklyHoursResponse, error)
	UpdateWeeklyHours(ctx context.Context, req dto.UpdateWeeklyHoursRequest, brandID string) error
	GetDateExceptions(ctx context.Context, brandID string) (dto.GetDateExceptionsResponse, error)
	UpsertDateException(ctx context.Context, req dto.UpsertDateExceptionRequest, brandID string) error
	DeleteDateException(ctx context.Context, brandID, id string) error
	GetBookingPolicy(ctx context.Context, brandID string) (dto.BookingPolicyResponse, error)
	UpdateBookingPolicy(ctx context.Context, req dto.UpdateBookingPolicyRequest, brandID string) error

	// CalendarSnapshot assembles the immutable per-request calendar view the
	// scheduling engine consumes: weekly hours, all date exceptions and the
	// booking policy for the brand.
	CalendarSnapshot(ctx context.Context, brandID string) (scheduling.CalendarConfig, error)
}

type serviceImpl struct {
	hoursRepo      repository.WeeklyHours
	exceptionsRepo repository.DateException
	policyRepo     repository.BookingPolicy
	brandRepo      brandRepo.Brand
	cfg            *config.Config
	cache          cache.RedisCache
	otel           otel.Otel
}

func New(
	hoursRepo repository.WeeklyHours,
	exceptionsRepo repository.DateException,
	policyRepo repository.BookingPolicy,
	brandRepo brandRepo.Brand,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		hoursRepo:      hoursRepo,
		exceptionsRepo: exceptionsRepo,
		policyRepo:     policyRepo,
		brandRepo:      brandRepo,
		cfg:            cfg,
		cache:          cache,
		otel:           otel,
	}
}

func (s *serviceImpl) GetWeeklyHours(ctx context.Context, brandID string) (res dto.GetWeeklyHoursResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWeeklyHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHours, brandID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for weekly hours")

		return res, nil
	}

	hours, err := s.loadWeeklyHours(ctx, brandID)
	if err != nil {
		return res, err
	}

	res.FromModels(brandID, hours)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save weekly hours to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateWeeklyHours(ctx context.Context, req dto.UpdateWeeklyHoursRequest, brandID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateWeeklyHours")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireBrand(ctx, brandID); err != nil {
		return err
	}

	for _, day := range req.Days {
		if day.IsOpen && day.OpenTime >= day.CloseTime {
			return failure.BadRequestFromString(fmt.Sprintf("weekday %d: open time must be before close time", *day.Weekday)) // nolint:wrapcheck
		}
	}

	// Seed first so every weekday row exists before the partial update.
	if _, err = s.loadWeeklyHours(ctx, brandID); err != nil {
		return err
	}

	for _, day := range req.Days {
		fields := shared.TransformFields(struct {
			IsOpen    bool   `db:"is_open"`
			OpenTime  string `db:"open_time"`
			CloseTime string `db:"close_time"`
		}{day.IsOpen, day.OpenTime, day.CloseTime}, user)

		// TransformFields drops zero values; a closed day must still overwrite.
		fields[model.FieldIsOpen] = day.IsOpen

		if err = s.hoursRepo.Update(ctx, fields, filterByBrandAndWeekday(brandID, *day.Weekday)); err != nil {
			log.Error().Err(err).Int("weekday", *day.Weekday).Msg("failed to update weekly hours")

			return fmt.Errorf("failed to update weekly hours: %w", err)
		}
	}

	s.invalidateScheduleCaches(ctx, brandID)

	return nil
}

func (s *serviceImpl) GetDateExceptions(ctx context.Context, brandID string) (res dto.GetDateExceptionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetDateExceptions")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetExceptions, brandID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for date exceptions")

		return res, nil
	}

	exceptions, err := s.exceptionsRepo.GetAll(ctx, gDto.QueryParams{SortBy: model.FieldDate, SortDir: gDto.SortDirAsc},
		shared.FilterByID(brandID, model.FieldBrandID, model.DateExceptionTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get date exceptions")

		return res, fmt.Errorf("failed to get date exceptions: %w", err)
	}

	res.FromModels(brandID, exceptions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save date exceptions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpsertDateException(ctx context.Context, req dto.UpsertDateExceptionRequest, brandID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpsertDateException")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireBrand(ctx, brandID); err != nil {
		return err
	}

	if req.IsOpen && req.OpenTime >= req.CloseTime {
		return failure.BadRequestFromString("open time must be before close time") // nolint:wrapcheck
	}

	exception, err := req.ToModel(brandID, user)
	if err != nil {
		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	filter := filterByBrandAndDate(brandID, req.Date)

	existing, err := s.exceptionsRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if date exception exists")

		return fmt.Errorf("failed to check if date exception exists: %w", err)
	}

	if existing {
		fields := shared.TransformFields(struct {
			IsOpen    bool   `db:"is_open"`
			OpenTime  string `db:"open_time"`
			CloseTime string `db:"close_time"`
			Reason    string `db:"reason"`
		}{req.IsOpen, req.OpenTime, req.CloseTime, req.Reason}, user)
		fields[model.FieldIsOpen] = req.IsOpen

		if err = s.exceptionsRepo.Update(ctx, fields, filter); err != nil {
			log.Error().Err(err).Msg("failed to update date exception")

			return fmt.Errorf("failed to update date exception: %w", err)
		}
	} else if err = s.exceptionsRepo.Insert(ctx, exception); err != nil {
		log.Error().Err(err).Msg("failed to create date exception")

		return fmt.Errorf("failed to create date exception: %w", err)
	}

	s.invalidateScheduleCaches(ctx, brandID)

	return nil
}

func (s *serviceImpl) DeleteDateException(ctx context.Context, brandID, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteDateException")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    id,
				Table:    model.DateExceptionTableName,
			},
			gDto.Filter{
				Field:    model.FieldBrandID,
				Operator: gDto.FilterOperatorEq,
				Value:    brandID,
				Table:    model.DateExceptionTableName,
				ArgName:  "exception_brand_id",
			},
		},
	}

	exist, err := s.exceptionsRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if date exception exists")

		return fmt.Errorf("failed to check if date exception exists: %w", err)
	}

	if !exist {
		return failure.NotFound("date exception not found") // nolint:wrapcheck
	}

	if err = s.exceptionsRepo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete date exception")

		return fmt.Errorf("failed to delete date exception: %w", err)
	}

	s.invalidateScheduleCaches(ctx, brandID)

	return nil
}

func (s *serviceImpl) GetBookingPolicy(ctx context.Context, brandID string) (res dto.BookingPolicyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetBookingPolicy")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetPolicy, brandID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking policy")

		return res, nil
	}

	policy, err := s.loadBookingPolicy(ctx, brandID)
	if err != nil {
		return res, err
	}

	res.FromModel(policy)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking policy to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) UpdateBookingPolicy(ctx context.Context, req dto.UpdateBookingPolicyRequest, brandID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateBookingPolicy")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBookingPolicyRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.requireBrand(ctx, brandID); err != nil {
		return err
	}

	filter := shared.FilterByID(brandID, model.FieldBrandID, model.BookingPolicyTableName)

	exist, err := s.policyRepo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if booking policy exists")

		return fmt.Errorf("failed to check if booking policy exists: %w", err)
	}

	if exist {
		if err = s.policyRepo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
			log.Error().Err(err).Msg("failed to update booking policy")

			return fmt.Errorf("failed to update booking policy: %w", err)
		}
	} else if err = s.policyRepo.Insert(ctx, newBookingPolicy(brandID, user, req)); err != nil {
		log.Error().Err(err).Msg("failed to create booking policy")

		return fmt.Errorf("failed to create booking policy: %w", err)
	}

	s.invalidateScheduleCaches(ctx, brandID)

	return nil
}

func (s *serviceImpl) CalendarSnapshot(ctx context.Context, brandID string) (cfg scheduling.CalendarConfig, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CalendarSnapshot")
	defer scope.End()
	defer scope.TraceIfError(err)

	hours, err := s.loadWeeklyHours(ctx, brandID)
	if err != nil {
		return cfg, err
	}

	exceptions, err := s.exceptionsRepo.GetAll(ctx, gDto.QueryParams{},
		shared.FilterByID(brandID, model.FieldBrandID, model.DateExceptionTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get date exceptions")

		return cfg, fmt.Errorf("failed to get date exceptions: %w", err)
	}

	policy, err := s.loadBookingPolicy(ctx, brandID)
	if err != nil {
		return cfg, err
	}

	return toCalendarConfig(hours, exceptions, policy)
}

// loadWeeklyHours returns the brand's weekly hours, seeding the default
// schedule on first access so a fresh brand always has a full week.
func (s *serviceImpl) loadWeeklyHours(ctx context.Context, brandID string) ([]model.WeeklyHours, error) {
	params := gDto.QueryParams{SortBy: model.FieldWeekday, SortDir: gDto.SortDirAsc}
	filter := shared.FilterByID(brandID, model.FieldBrandID, model.WeeklyHoursTableName)

	hours, err := s.hoursRepo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get weekly hours")

		return nil, fmt.Errorf("failed to get weekly hours: %w", err)
	}

	if len(hours) > 0 {
		return hours, nil
	}

	if err := s.requireBrand(ctx, brandID); err != nil {
		return nil, err
	}

	seeded := defaultWeeklyHours(brandID)
	if err := s.hoursRepo.InsertBulk(ctx, seeded); err != nil {
		log.Error().Err(err).Msg("failed to seed default weekly hours")

		return nil, fmt.Errorf("failed to seed default weekly hours: %w", err)
	}

	log.Info().Str("brandID", brandID).Msg("seeded default weekly hours")

	return seeded, nil
}

func (s *serviceImpl) loadBookingPolicy(ctx context.Context, brandID string) (model.BookingPolicy, error) {
	policy, err := s.policyRepo.Get(ctx, shared.FilterByID(brandID, model.FieldBrandID, model.BookingPolicyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking policy")

		return policy, fmt.Errorf("failed to get booking policy: %w", err)
	}

	if policy.BrandID == constant.Empty {
		return policy, failure.NotFound(string(scheduling.ReasonConfigNotFound) + ": booking policy not configured for brand") // nolint:wrapcheck
	}

	return policy, nil
}

func (s *serviceImpl) requireBrand(ctx context.Context, brandID string) error {
	exist, err := s.brandRepo.Exist(ctx, shared.FilterByID(brandID, brandModel.FieldID, brandModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if brand exists")

		return fmt.Errorf("failed to check if brand exists: %w", err)
	}

	if !exist {
		return failure.NotFound("brand not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidateScheduleCaches(ctx context.Context, brandID string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetHours, brandID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetExceptions, brandID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetPolicy, brandID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(constant.CacheKeyAvailability, brandID))
	}()
}

func filterByBrandAndWeekday(brandID string, weekday int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBrandID,
				Operator: gDto.FilterOperatorEq,
				Value:    brandID,
				Table:    model.WeeklyHoursTableName,
			},
			gDto.Filter{
				Field:    model.FieldWeekday,
				Operator: gDto.FilterOperatorEq,
				Value:    weekday,
				Table:    model.WeeklyHoursTableName,
			},
		},
	}
}

func filterByBrandAndDate(brandID, date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldBrandID,
				Operator: gDto.FilterOperatorEq,
				Value:    brandID,
				Table:    model.DateExceptionTableName,
			},
			gDto.Filter{
				Field:    model.FieldDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    model.DateExceptionTableName,
			},
		},
	}
}

func defaultWeeklyHours(brandID string) []model.WeeklyHours {
	hours := make([]model.WeeklyHours, 0, 7)

	for day := time.Sunday; day <= time.Saturday; day++ {
		entry := model.WeeklyHours{
			ID:      uuid.NewString(),
			BrandID: brandID,
			Weekday: int(day),
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  constant.SystemUser,
				ModifiedBy: constant.SystemUser,
			},
		}

		if day >= time.Monday && day <= time.Friday {
			entry.IsOpen = true
			entry.OpenTime = defaultOpenTime
			entry.CloseTime = defaultCloseTime
		}

		hours = append(hours, entry)
	}

	return hours
}

func newBookingPolicy(brandID, user string, req dto.UpdateBookingPolicyRequest) model.BookingPolicy {
	policy := model.BookingPolicy{
		BrandID:                brandID,
		DefaultDurationMinutes: scheduling.MinSlotDurationMinutes * 2,
		BufferMinutes:          0,
		MaxAdvanceBookingDays:  30,
		MinAdvanceBookingHours: 0,
		AllowSameDayBooking:    true,
	}

	if req.DefaultDurationMinutes != nil {
		policy.DefaultDurationMinutes = *req.DefaultDurationMinutes
	}

	if req.BufferMinutes != nil {
		policy.BufferMinutes = *req.BufferMinutes
	}

	if req.MaxAdvanceBookingDays != nil {
		policy.MaxAdvanceBookingDays = *req.MaxAdvanceBookingDays
	}

	if req.MinAdvanceBookingHours != nil {
		policy.MinAdvanceBookingHours = *req.MinAdvanceBookingHours
	}

	if req.AllowSameDayBooking != nil {
		policy.AllowSameDayBooking = *req.AllowSameDayBooking
	}

	policy.Metadata = gModel.Metadata{
		CreatedAt:  timezone.Now(),
		ModifiedAt: timezone.Now(),
		CreatedBy:  user,
		ModifiedBy: user,
	}

	return policy
}

// toCalendarConfig converts stored rows into the engine's snapshot type.
func toCalendarConfig(hours []model.WeeklyHours, exceptions []model.DateException, policy model.BookingPolicy) (scheduling.CalendarConfig, error) {
	engineHours := make([]scheduling.WeeklyHours, 0, len(hours))

	for _, row := range hours {
		entry := scheduling.WeeklyHours{
			Weekday: time.Weekday(row.Weekday),
			IsOpen:  row.IsOpen,
		}

		if row.IsOpen {
			open, err := scheduling.ParseClock(row.OpenTime)
			if err != nil {
				return scheduling.CalendarConfig{}, fmt.Errorf("stored weekly hours are corrupt: %w", err)
			}

			closeTime, err := scheduling.ParseClock(row.CloseTime)
			if err != nil {
				return scheduling.CalendarConfig{}, fmt.Errorf("stored weekly hours are corrupt: %w", err)
			}

			entry.Open = open
			entry.Close = closeTime
		}

		engineHours = append(engineHours, entry)
	}

	engineExceptions := make([]scheduling.DateException, 0, len(exceptions))

	for _, row := range exceptions {
		entry := scheduling.DateException{
			Date:   row.Date,
			IsOpen: row.IsOpen,
			Reason: row.Reason,
		}

		if row.IsOpen {
			open, err := scheduling.ParseClock(row.OpenTime)
			if err != nil {
				return scheduling.CalendarConfig{}, fmt.Errorf("stored date exception is corrupt: %w", err)
			}

			closeTime, err := scheduling.ParseClock(row.CloseTime)
			if err != nil {
				return scheduling.CalendarConfig{}, fmt.Errorf("stored date exception is corrupt: %w", err)
			}

			entry.Open = open
			entry.Close = closeTime
		}

		engineExceptions = append(engineExceptions, entry)
	}

	enginePolicy := scheduling.BookingPolicy{
		DefaultDurationMinutes: policy.DefaultDurationMinutes,
		BufferMinutes:          policy.BufferMinutes,
		MaxAdvanceBookingDays:  policy.MaxAdvanceBookingDays,
		MinAdvanceBookingHours: policy.MinAdvanceBookingHours,
		AllowSameDayBooking:    policy.AllowSameDayBooking,
	}

	cfg, err := scheduling.NewCalendarConfig(engineHours, engineExceptions, enginePolicy)
	if err != nil {
		return scheduling.CalendarConfig{}, fmt.Errorf("stored calendar configuration is invalid: %w", err)
	}

	return cfg, nil
}
