package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"go-users-api/internal/domain"
)

// UserModel is the persistence row. Email uniqueness is enforced by the
// validator against current data, not by a database constraint.
type UserModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	FirstName   string    `gorm:"size:128;not null"`
	LastName    string    `gorm:"size:128"`
	Email       string    `gorm:"size:255;not null;index"`
	DateOfBirth time.Time `gorm:"not null"`
	PhoneNumber string    `gorm:"size:10;not null"`
}

func (UserModel) TableName() string { return "users" }

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts the user and backfills the generated id.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	row := toRow(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	u.ID = row.ID
	return nil
}

func (r *UserRepo) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	var row UserModel
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return toDomain(&row), nil
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row UserModel
	err := r.db.WithContext(ctx).First(&row, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return toDomain(&row), nil
}

// FindAll returns one page ordered by ascending id. When opts.Date is set
// only users born on or after it are included.
func (r *UserRepo) FindAll(ctx context.Context, opts domain.GetAllUsersOptions) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&UserModel{})
	if opts.Date != nil {
		q = q.Where("date_of_birth >= ?", *opts.Date)
	}
	var rows []UserModel
	offset := (opts.Page - 1) * opts.PageSize
	if err := q.Order("id").Offset(offset).Limit(opts.PageSize).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	users := make([]domain.User, len(rows))
	for i := range rows {
		users[i] = *toDomain(&rows[i])
	}
	return users, nil
}

func (r *UserRepo) Update(ctx context.Context, u *domain.User) error {
	if err := r.db.WithContext(ctx).Save(toRow(u)).Error; err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (r *UserRepo) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id)
	if res.Error != nil {
		return false, fmt.Errorf("delete user: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Count shares FindAll's date filter and ignores paging.
func (r *UserRepo) Count(ctx context.Context, date *time.Time) (int64, error) {
	q := r.db.WithContext(ctx).Model(&UserModel{})
	if date != nil {
		q = q.Where("date_of_birth >= ?", *date)
	}
	var total int64
	if err := q.Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return total, nil
}

func toRow(u *domain.User) *UserModel {
	return &UserModel{
		ID:          u.ID,
		FirstName:   u.PersonalData.FirstName,
		LastName:    u.PersonalData.LastName,
		Email:       u.EmailAddress.Email,
		DateOfBirth: u.PersonalData.DateOfBirth,
		PhoneNumber: u.PersonalData.PhoneNumber,
	}
}

func toDomain(row *UserModel) *domain.User {
	return &domain.User{
		ID: row.ID,
		PersonalData: domain.PersonalData{
			FirstName:   row.FirstName,
			LastName:    row.LastName,
			PhoneNumber: row.PhoneNumber,
			DateOfBirth: row.DateOfBirth,
		},
		EmailAddress: domain.EmailAddress{Email: row.Email},
	}
}
