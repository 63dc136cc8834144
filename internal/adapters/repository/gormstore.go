package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	bet "github.com/RyanRaymundo99/betcompare/internal/domain/bet"
	params "github.com/RyanRaymundo99/betcompare/internal/domain/params"
	metrics "github.com/RyanRaymundo99/betcompare/pkg/metrics"
)

const defaultMetricsUpdateInterval = 30 * time.Second

// GormStore is the relational Store backed by gorm. It works against any
// dialector; production uses postgres, tests use in-memory sqlite.
type GormStore struct {
	db *gorm.DB

	metricsUpdateInterval time.Duration
	stopMetrics           chan struct{}
}

// NewGormStore opens the database, runs migrations and starts the background
// metrics updater.
func NewGormStore(dialector gorm.Dialector, opts ...Option) (*GormStore, error) {
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenDatabase, err)
	}
	if err := db.AutoMigrate(&betRow{}, &valueRow{}, &historyRow{}); err != nil {
		return nil, fmt.Errorf("%w: migration: %v", ErrOpenDatabase, err)
	}

	s := &GormStore{
		db:                    db,
		metricsUpdateInterval: defaultMetricsUpdateInterval,
		stopMetrics:           make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	go s.metricsLoop()
	return s, nil
}

// Close stops the background metrics updater and releases the connection.
func (s *GormStore) Close() error {
	close(s.stopMetrics)
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *GormStore) metricsLoop() {
	ticker := time.NewTicker(s.metricsUpdateInterval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stopMetrics:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			metrics.UpdateTotalSubjects(s.CountBets(ctx))
			metrics.UpdateTotalValues(s.CountValues(ctx))
			cancel()
		}
	}
}

// CreateBet persists a new subject, assigning an ID when none is set.
func (s *GormStore) CreateBet(ctx context.Context, b *bet.Bet) error {
	start := time.Now()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	now := time.Now().UTC()
	b.CreatedAt, b.UpdatedAt = now, now

	row := toBetRow(*b)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		metrics.RecordRepositoryError("create_bet")
		return fmt.Errorf("create bet: %w", err)
	}
	metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	return nil
}

// GetBet returns one subject by ID.
func (s *GormStore) GetBet(ctx context.Context, id uuid.UUID) (bet.Bet, error) {
	start := time.Now()
	var row betRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return bet.Bet{}, ErrBetNotFound
	}
	if err != nil {
		metrics.RecordRepositoryError("get_bet")
		return bet.Bet{}, fmt.Errorf("get bet: %w", err)
	}
	metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	return row.toDomain(), nil
}

// ListBets returns every subject ordered by creation time ascending.
func (s *GormStore) ListBets(ctx context.Context) ([]bet.Bet, error) {
	start := time.Now()
	var rows []betRow
	if err := s.db.WithContext(ctx).Order("created_at asc").Find(&rows).Error; err != nil {
		metrics.RecordRepositoryError("list_bets")
		return nil, fmt.Errorf("list bets: %w", err)
	}
	out := make([]bet.Bet, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	return out, nil
}

// UpdateBet overwrites a subject's descriptive fields.
func (s *GormStore) UpdateBet(ctx context.Context, b bet.Bet) error {
	start := time.Now()
	b.UpdatedAt = time.Now().UTC()
	row := toBetRow(b)
	res := s.db.WithContext(ctx).Model(&betRow{}).Where("id = ?", b.ID).Updates(map[string]any{
		"name":          row.Name,
		"company":       row.Company,
		"domain":        row.Domain,
		"status":        row.Status,
		"scope":         row.Scope,
		"platform_type": row.PlatformType,
		"logo_url":      row.LogoURL,
		"cover_url":     row.CoverURL,
		"updated_at":    row.UpdatedAt,
	})
	if res.Error != nil {
		metrics.RecordRepositoryError("update_bet")
		return fmt.Errorf("update bet: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrBetNotFound
	}
	metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	return nil
}

// DeleteBet removes a subject along with its values and their history.
func (s *GormStore) DeleteBet(ctx context.Context, id uuid.UUID) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&betRow{}, "id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrBetNotFound
		}
		sub := tx.Model(&valueRow{}).Select("id").Where("bet_id = ?", id)
		if err := tx.Where("value_id IN (?)", sub).Delete(&historyRow{}).Error; err != nil {
			return err
		}
		return tx.Where("bet_id = ?", id).Delete(&valueRow{}).Error
	})
	if errors.Is(err, ErrBetNotFound) {
		return err
	}
	if err != nil {
		metrics.RecordRepositoryError("delete_bet")
		return fmt.Errorf("delete bet: %w", err)
	}
	metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	return nil
}

// UpsertValue writes the current value for (v.SubjectID, v.Name) and appends
// one history entry in the same transaction. The returned bool reports
// whether a new row was created.
func (s *GormStore) UpsertValue(ctx context.Context, v params.Value, note string) (params.Value, bool, error) {
	start := time.Now()
	var (
		stored  params.Value
		created bool
	)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		var existing valueRow
		err := tx.First(&existing, "bet_id = ? AND name = ?", v.SubjectID, v.Name).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			created = true
			v.ID = uuid.New()
			v.CreatedAt, v.UpdatedAt = now, now
			row := toValueRow(v)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			stored = row.toDomain()
		case err != nil:
			return err
		default:
			v.ID = existing.ID
			v.CreatedAt = existing.CreatedAt
			v.UpdatedAt = now
			row := toValueRow(v)
			if err := tx.Model(&valueRow{}).Where("id = ?", existing.ID).Updates(map[string]any{
				"category":      row.Category,
				"type":          row.Type,
				"unit":          row.Unit,
				"options":       row.Options,
				"text_value":    row.TextValue,
				"number_value":  row.NumberValue,
				"boolean_value": row.BooleanValue,
				"rating_value":  row.RatingValue,
				"updated_at":    row.UpdatedAt,
			}).Error; err != nil {
				return err
			}
			stored = row.toDomain()
		}

		// Every write appends exactly one ledger entry, even when the slot
		// is unchanged.
		hist := toHistoryRow(stored.ID, stored.Slot, note, now)
		return tx.Create(&hist).Error
	})
	if err != nil {
		metrics.RecordRepositoryError("upsert_value")
		return params.Value{}, false, fmt.Errorf("upsert value: %w", err)
	}
	metrics.RecordHistoryAppend()
	metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	return stored, created, nil
}

// GetValue returns one value row by ID.
func (s *GormStore) GetValue(ctx context.Context, id uuid.UUID) (params.Value, error) {
	var row valueRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return params.Value{}, ErrValueNotFound
	}
	if err != nil {
		metrics.RecordRepositoryError("get_value")
		return params.Value{}, fmt.Errorf("get value: %w", err)
	}
	return row.toDomain(), nil
}

// UpdateValue overwrites an existing row's slot by identity and appends one
// history entry in the same transaction.
func (s *GormStore) UpdateValue(ctx context.Context, id uuid.UUID, slot params.Slot, note string) (params.Value, error) {
	start := time.Now()
	var stored params.Value
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing valueRow
		err := tx.First(&existing, "id = ?", id).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrValueNotFound
		}
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		existing.TextValue = slot.Text
		existing.NumberValue = slot.Number
		existing.BooleanValue = slot.Boolean
		existing.RatingValue = slot.Rating
		existing.UpdatedAt = now
		if err := tx.Model(&valueRow{}).Where("id = ?", id).Updates(map[string]any{
			"text_value":    existing.TextValue,
			"number_value":  existing.NumberValue,
			"boolean_value": existing.BooleanValue,
			"rating_value":  existing.RatingValue,
			"updated_at":    now,
		}).Error; err != nil {
			return err
		}
		stored = existing.toDomain()

		hist := toHistoryRow(id, slot, note, now)
		return tx.Create(&hist).Error
	})
	if errors.Is(err, ErrValueNotFound) {
		return params.Value{}, err
	}
	if err != nil {
		metrics.RecordRepositoryError("update_value")
		return params.Value{}, fmt.Errorf("update value: %w", err)
	}
	metrics.RecordHistoryAppend()
	metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	return stored, nil
}

// ListValues returns a subject's current values ordered by name.
func (s *GormStore) ListValues(ctx context.Context, subjectID uuid.UUID) ([]params.Value, error) {
	start := time.Now()
	var rows []valueRow
	if err := s.db.WithContext(ctx).
		Where("bet_id = ?", subjectID).
		Order("name asc").
		Find(&rows).Error; err != nil {
		metrics.RecordRepositoryError("list_values")
		return nil, fmt.Errorf("list values: %w", err)
	}
	out := make([]params.Value, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	metrics.RecordRepositoryQueryLatency(float64(time.Since(start).Milliseconds()))
	return out, nil
}

// ListHistory returns a value's history newest-first.
func (s *GormStore) ListHistory(ctx context.Context, valueID uuid.UUID) ([]params.HistoryEntry, error) {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&valueRow{}).Where("id = ?", valueID).Count(&exists).Error; err != nil {
		metrics.RecordRepositoryError("list_history")
		return nil, fmt.Errorf("list history: %w", err)
	}
	if exists == 0 {
		return nil, ErrValueNotFound
	}

	var rows []historyRow
	if err := s.db.WithContext(ctx).
		Where("value_id = ?", valueID).
		Order("created_at desc, id desc").
		Find(&rows).Error; err != nil {
		metrics.RecordRepositoryError("list_history")
		return nil, fmt.Errorf("list history: %w", err)
	}
	out := make([]params.HistoryEntry, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// ListSubjectHistory flattens history across a subject's values, newest-first.
func (s *GormStore) ListSubjectHistory(ctx context.Context, subjectID uuid.UUID) ([]params.SubjectHistoryEntry, error) {
	values, err := s.ListValues(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]params.Value, len(values))
	for _, v := range values {
		byID[v.ID] = v
	}

	sub := s.db.Model(&valueRow{}).Select("id").Where("bet_id = ?", subjectID)
	var rows []historyRow
	if err := s.db.WithContext(ctx).
		Where("value_id IN (?)", sub).
		Order("created_at desc, id desc").
		Find(&rows).Error; err != nil {
		metrics.RecordRepositoryError("list_subject_history")
		return nil, fmt.Errorf("list subject history: %w", err)
	}

	out := make([]params.SubjectHistoryEntry, len(rows))
	for i, r := range rows {
		owner := byID[r.ValueID]
		out[i] = params.SubjectHistoryEntry{
			HistoryEntry:      r.toDomain(),
			ParameterName:     owner.Name,
			ParameterCategory: owner.Category,
		}
	}
	return out, nil
}

// ReplaceSubjectValues swaps a subject's full value set in one transaction.
// Each new value gets a fresh ID and one initial history entry.
func (s *GormStore) ReplaceSubjectValues(ctx context.Context, subjectID uuid.UUID, values []params.Value) error {
	start := time.Now()
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sub := tx.Model(&valueRow{}).Select("id").Where("bet_id = ?", subjectID)
		if err := tx.Where("value_id IN (?)", sub).Delete(&historyRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("bet_id = ?", subjectID).Delete(&valueRow{}).Error; err != nil {
			return err
		}

		now := time.Now().UTC()
		for _, v := range values {
			v.SubjectID = subjectID
			v.ID = uuid.New()
			v.CreatedAt, v.UpdatedAt = now, now
			row := toValueRow(v)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			hist := toHistoryRow(v.ID, v.Slot, "regenerated", now)
			if err := tx.Create(&hist).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		metrics.RecordRepositoryError("replace_subject_values")
		return fmt.Errorf("replace subject values: %w", err)
	}
	metrics.RecordRepositoryWriteLatency(float64(time.Since(start).Milliseconds()))
	return nil
}

// CountBets reports the number of stored subjects.
func (s *GormStore) CountBets(ctx context.Context) int {
	var n int64
	if err := s.db.WithContext(ctx).Model(&betRow{}).Count(&n).Error; err != nil {
		return 0
	}
	return int(n)
}

// CountValues reports the number of stored value rows.
func (s *GormStore) CountValues(ctx context.Context) int {
	var n int64
	if err := s.db.WithContext(ctx).Model(&valueRow{}).Count(&n).Error; err != nil {
		return 0
	}
	return int(n)
}
