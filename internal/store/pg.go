package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/proofcapsule/pc-anchor/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// If any of the pool settings are 0 or empty, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// CreateCapsule persists a capsule and its optional content metadata in a single transaction
func (s *pgStore) CreateCapsule(ctx context.Context, input CreateCapsuleInput) (*schema.Capsule, error) {
	var created schema.Capsule

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		capsule := schema.Capsule{
			TokenID:         input.TokenID,
			WalletAddress:   input.WalletAddress,
			ContentHash:     input.ContentHash,
			ChainID:         input.ChainID,
			Description:     input.Description,
			Location:        input.Location,
			IPFSHash:        input.IPFSHash,
			IsPublic:        input.IsPublic,
			BlockNumber:     input.BlockNumber,
			TransactionHash: input.TransactionHash,
			GasUsed:         input.GasUsed,
		}

		// Use ON CONFLICT DO NOTHING on content_hash (unique constraint) so a
		// concurrent insert of the same content surfaces as ID == 0 instead of
		// a driver-specific error
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "content_hash"}},
			DoNothing: true,
		}).Clauses(clause.Returning{Columns: []clause.Column{}}).
			Create(&capsule).Error; err != nil {
			return fmt.Errorf("failed to create capsule: %w", err)
		}

		// ID == 0 means the insert was skipped: the content hash is taken
		if capsule.ID == 0 {
			return ErrDuplicateContentHash
		}

		if input.Metadata != nil {
			metadata := schema.ContentMetadata{
				CapsuleID:    capsule.ID,
				ContentType:  input.Metadata.ContentType,
				FileSize:     input.Metadata.FileSize,
				Dimensions:   input.Metadata.Dimensions,
				Duration:     input.Metadata.Duration,
				Tags:         input.Metadata.Tags,
				CustomFields: input.Metadata.CustomFields,
			}
			if err := tx.Create(&metadata).Error; err != nil {
				return fmt.Errorf("failed to create content metadata: %w", err)
			}
		}

		created = capsule
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// GetCapsuleByID retrieves a capsule by its internal ID
func (s *pgStore) GetCapsuleByID(ctx context.Context, id int64) (*schema.Capsule, error) {
	var capsule schema.Capsule
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&capsule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get capsule: %w", err)
	}
	return &capsule, nil
}

// GetCapsuleByContentHash retrieves a capsule by its content hash
func (s *pgStore) GetCapsuleByContentHash(ctx context.Context, contentHash string) (*schema.Capsule, error) {
	var capsule schema.Capsule
	err := s.db.WithContext(ctx).Where("content_hash = ?", contentHash).First(&capsule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get capsule by content hash: %w", err)
	}
	return &capsule, nil
}

// ListCapsules retrieves capsules matching the filter, newest-first
func (s *pgStore) ListCapsules(ctx context.Context, filter CapsuleFilter) ([]schema.Capsule, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Capsule{})

	if filter.WalletAddress != nil {
		query = query.Where("wallet_address = ?", *filter.WalletAddress)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count capsules: %w", err)
	}

	query = query.Order("created_at DESC").Order("id DESC").
		Limit(filter.Limit).Offset(int(filter.Offset)) //nolint:gosec,G115

	var capsules []schema.Capsule
	if err := query.Find(&capsules).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list capsules: %w", err)
	}

	return capsules, uint64(total), nil //nolint:gosec,G115
}

// UpdateCapsule applies the non-nil fields of input to a capsule
func (s *pgStore) UpdateCapsule(ctx context.Context, id int64, input UpdateCapsuleInput) (*schema.Capsule, error) {
	updates := map[string]interface{}{}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Location != nil {
		updates["location"] = *input.Location
	}
	if input.IsPublic != nil {
		updates["is_public"] = *input.IsPublic
	}

	var capsule schema.Capsule
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).First(&capsule).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gorm.ErrRecordNotFound
			}
			return fmt.Errorf("failed to lock capsule: %w", err)
		}

		if len(updates) == 0 {
			return nil
		}
		updates["updated_at"] = time.Now()

		if err := tx.Model(&capsule).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update capsule: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &capsule, nil
}

// GetContentMetadata retrieves the content metadata row for a capsule
func (s *pgStore) GetContentMetadata(ctx context.Context, capsuleID int64) (*schema.ContentMetadata, error) {
	var metadata schema.ContentMetadata
	err := s.db.WithContext(ctx).Where("capsule_id = ?", capsuleID).First(&metadata).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get content metadata: %w", err)
	}
	return &metadata, nil
}

// UpsertUser inserts a user row for the wallet if one does not exist yet.
// Existing rows are left untouched (insert-or-ignore).
func (s *pgStore) UpsertUser(ctx context.Context, walletAddress string) (*schema.User, error) {
	user := schema.User{
		WalletAddress: walletAddress,
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "wallet_address"}},
		DoNothing: true,
	}).Clauses(clause.Returning{Columns: []clause.Column{}}).
		Create(&user).Error; err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	// If user.ID is 0, the wallet was already registered, so fetch it
	if user.ID == 0 {
		if err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error; err != nil {
			return nil, fmt.Errorf("failed to get existing user: %w", err)
		}
	}

	return &user, nil
}

// GetUserByWallet retrieves a user by wallet address
func (s *pgStore) GetUserByWallet(ctx context.Context, walletAddress string) (*schema.User, error) {
	var user schema.User
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// CreateVerification appends one verification record
func (s *pgStore) CreateVerification(ctx context.Context, input CreateVerificationInput) (*schema.Verification, error) {
	verification := schema.Verification{
		CapsuleID:          input.CapsuleID,
		VerifierAddress:    input.VerifierAddress,
		VerificationMethod: input.VerificationMethod,
		Notes:              input.Notes,
	}

	if err := s.db.WithContext(ctx).Create(&verification).Error; err != nil {
		return nil, fmt.Errorf("failed to create verification: %w", err)
	}

	return &verification, nil
}

// ListVerifications retrieves verification records matching the filter, oldest-first
func (s *pgStore) ListVerifications(ctx context.Context, filter VerificationFilter) ([]schema.Verification, uint64, error) {
	query := s.db.WithContext(ctx).Model(&schema.Verification{})

	if filter.CapsuleID != nil {
		query = query.Where("capsule_id = ?", *filter.CapsuleID)
	}
	if filter.VerifierAddress != nil {
		query = query.Where("verifier_address = ?", *filter.VerifierAddress)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count verifications: %w", err)
	}

	query = query.Order("verified_at ASC").Order("id ASC").
		Limit(filter.Limit).Offset(int(filter.Offset)) //nolint:gosec,G115

	var verifications []schema.Verification
	if err := query.Find(&verifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list verifications: %w", err)
	}

	return verifications, uint64(total), nil //nolint:gosec,G115
}

// RecomputeUserStats rebuilds the denormalized counters for a wallet in one
// aggregate pass over the capsules and verifications tables
func (s *pgStore) RecomputeUserStats(ctx context.Context, walletAddress string) error {
	var agg struct {
		TotalCapsules      int64      `gorm:"column:total_capsules"`
		PublicCapsules     int64      `gorm:"column:public_capsules"`
		TotalVerifications int64      `gorm:"column:total_verifications"`
		FirstCapsuleAt     *time.Time `gorm:"column:first_capsule_at"`
		LastCapsuleAt      *time.Time `gorm:"column:last_capsule_at"`
	}

	err := s.db.WithContext(ctx).Raw(`
		SELECT
			COUNT(c.id) AS total_capsules,
			COUNT(c.id) FILTER (WHERE c.is_public) AS public_capsules,
			(
				SELECT COUNT(v.id)
				FROM verifications v
				JOIN capsules vc ON vc.id = v.capsule_id
				WHERE vc.wallet_address = @wallet
			) AS total_verifications,
			MIN(c.created_at) AS first_capsule_at,
			MAX(c.created_at) AS last_capsule_at
		FROM capsules c
		WHERE c.wallet_address = @wallet
	`, map[string]interface{}{"wallet": walletAddress}).Scan(&agg).Error
	if err != nil {
		return fmt.Errorf("failed to aggregate user stats: %w", err)
	}

	stats := schema.UserStats{
		WalletAddress:      walletAddress,
		TotalCapsules:      agg.TotalCapsules,
		PublicCapsules:     agg.PublicCapsules,
		PrivateCapsules:    agg.TotalCapsules - agg.PublicCapsules,
		TotalVerifications: agg.TotalVerifications,
		FirstCapsuleAt:     agg.FirstCapsuleAt,
		LastCapsuleAt:      agg.LastCapsuleAt,
		UpdatedAt:          time.Now(),
	}

	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "wallet_address"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_capsules", "public_capsules", "private_capsules",
			"total_verifications", "first_capsule_at", "last_capsule_at", "updated_at",
		}),
	}).Create(&stats).Error; err != nil {
		return fmt.Errorf("failed to upsert user stats: %w", err)
	}

	return nil
}

// GetUserStats retrieves the stats row for a wallet
func (s *pgStore) GetUserStats(ctx context.Context, walletAddress string) (*schema.UserStats, error) {
	var stats schema.UserStats
	err := s.db.WithContext(ctx).Where("wallet_address = ?", walletAddress).First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}
	return &stats, nil
}

// GetGlobalCounts computes platform-wide totals and the given day's deltas
func (s *pgStore) GetGlobalCounts(ctx context.Context, day time.Time) (*GlobalCounts, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)

	var counts GlobalCounts
	err := s.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COUNT(*) FROM capsules) AS total_capsules,
			(SELECT COUNT(*) FROM users) AS total_users,
			(SELECT COUNT(*) FROM verifications) AS total_verifications,
			(SELECT COUNT(*) FROM capsules WHERE created_at >= @start AND created_at < @end) AS new_capsules_today,
			(SELECT COUNT(*) FROM users WHERE created_at >= @start AND created_at < @end) AS new_users_today
	`, map[string]interface{}{"start": dayStart, "end": dayEnd}).Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get global counts: %w", err)
	}

	return &counts, nil
}

// UpsertDailyAnalytics writes the analytics row for its date, replacing any existing one
func (s *pgStore) UpsertDailyAnalytics(ctx context.Context, row schema.DailyAnalytics) error {
	if err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_capsules", "total_users", "total_verifications",
			"new_capsules", "new_users",
		}),
	}).Create(&row).Error; err != nil {
		return fmt.Errorf("failed to upsert daily analytics: %w", err)
	}

	return nil
}

// GetDailyAnalytics retrieves the analytics row for a YYYY-MM-DD date
func (s *pgStore) GetDailyAnalytics(ctx context.Context, date string) (*schema.DailyAnalytics, error) {
	var row schema.DailyAnalytics
	err := s.db.WithContext(ctx).Where("date = ?", date).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get daily analytics: %w", err)
	}
	return &row, nil
}

// ExportUser assembles the full export document for a wallet
func (s *pgStore) ExportUser(ctx context.Context, walletAddress string) (*UserExport, error) {
	user, err := s.GetUserByWallet(ctx, walletAddress)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	var capsules []schema.Capsule
	if err := s.db.WithContext(ctx).
		Where("wallet_address = ?", walletAddress).
		Order("created_at ASC").
		Find(&capsules).Error; err != nil {
		return nil, fmt.Errorf("failed to export capsules: %w", err)
	}

	var verifications []schema.Verification
	if err := s.db.WithContext(ctx).
		Joins("JOIN capsules ON capsules.id = verifications.capsule_id").
		Where("capsules.wallet_address = ?", walletAddress).
		Order("verifications.verified_at ASC").
		Find(&verifications).Error; err != nil {
		return nil, fmt.Errorf("failed to export verifications: %w", err)
	}

	stats, err := s.GetUserStats(ctx, walletAddress)
	if err != nil {
		return nil, err
	}

	return &UserExport{
		User:          user,
		Capsules:      capsules,
		Verifications: verifications,
		Stats:         stats,
		ExportedAt:    time.Now().UTC(),
	}, nil
}

// DeleteUser removes the user and everything hanging off it in one transaction.
// Verification and metadata rows go with their capsules via the cascade FKs,
// so only the tables keyed by wallet need explicit deletes.
func (s *pgStore) DeleteUser(ctx context.Context, walletAddress string) (int64, error) {
	var capsulesDeleted int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Verifications the wallet performed on other users' capsules are not
		// covered by the capsule cascade and must go explicitly
		if err := tx.Where("verifier_address = ?", walletAddress).Delete(&schema.Verification{}).Error; err != nil {
			return fmt.Errorf("failed to delete verifications: %w", err)
		}

		res := tx.Where("wallet_address = ?", walletAddress).Delete(&schema.Capsule{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete capsules: %w", res.Error)
		}
		capsulesDeleted = res.RowsAffected

		if err := tx.Where("wallet_address = ?", walletAddress).Delete(&schema.UserStats{}).Error; err != nil {
			return fmt.Errorf("failed to delete user stats: %w", err)
		}

		if err := tx.Where("wallet_address = ?", walletAddress).Delete(&schema.User{}).Error; err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return capsulesDeleted, nil
}
