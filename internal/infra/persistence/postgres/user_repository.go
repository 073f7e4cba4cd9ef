// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"laundrypro/internal/domain/entity"
	domainerrors "laundrypro/internal/domain/errors"
	"laundrypro/internal/domain/repository"
	"laundrypro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading the staff profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("StaffProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("StaffProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByPhone retrieves a single user by their phone number.
func (repo *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("StaffProfile").
		Where("phone = ?", phone).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by phone")
	}

	return toUserDomain(&userM), nil
}

// List retrieves users matching the filter, newest first.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).
		Preload("StaffProfile").
		Order("created_at DESC")

	if filter.Role != nil {
		query = query.Where("role = ?", string(*filter.Role))
	}
	if filter.BranchID != nil {
		query = query.Joins("JOIN staff_profiles ON staff_profiles.user_id = users.id").
			Where("staff_profiles.branch_id = ?", *filter.BranchID)
	}
	if filter.IsActive != nil {
		query = query.Where("users.is_active = ?", *filter.IsActive)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// Create persists a new user entity, including its staff profile when present.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("phone or email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid branch reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.StaffProfile != nil && userM.StaffProfile != nil {
		user.StaffProfile.ID = userM.StaffProfile.ID
		user.StaffProfile.UserID = userM.ID
	}

	return nil
}

// Update modifies an existing user entity in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("phone or email already registered")
		}
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePushToken stores the device push token for a user.
func (repo *userRepository) UpdatePushToken(ctx context.Context, id uuid.UUID, token string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("push_token", token)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update push token")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:                data.ID,
		Phone:             data.Phone,
		Email:             data.Email,
		PasswordHash:      data.PasswordHash,
		FirstName:         data.FirstName,
		LastName:          data.LastName,
		Role:              entity.Role(data.Role),
		ProfilePictureURL: data.ProfilePictureURL,
		PushToken:         data.PushToken,
		IsActive:          data.IsActive,
		IsVerified:        data.IsVerified,
		LastLoginAt:       data.LastLoginAt,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		StaffProfile:      toStaffProfileDomain(data.StaffProfile),
	}
	user.Address = addressFromJSON(data.Address)
	if len(data.NotificationPreferences) > 0 {
		// Malformed preference blobs fall back to the zero value.
		_ = json.Unmarshal(data.NotificationPreferences, &user.NotificationPreferences)
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	prefs, _ := json.Marshal(data.NotificationPreferences)

	return &model.UserModel{
		ID:                      data.ID,
		Phone:                   data.Phone,
		Email:                   data.Email,
		PasswordHash:            data.PasswordHash,
		FirstName:               data.FirstName,
		LastName:                data.LastName,
		Role:                    string(data.Role),
		Address:                 addressToJSON(data.Address),
		ProfilePictureURL:       data.ProfilePictureURL,
		PushToken:               data.PushToken,
		NotificationPreferences: prefs,
		IsActive:                data.IsActive,
		IsVerified:              data.IsVerified,
		LastLoginAt:             data.LastLoginAt,
		StaffProfile:            fromStaffProfileDomain(data.StaffProfile),
	}
}

// toStaffProfileDomain converts a GORM StaffProfileModel to a domain StaffProfile entity.
func toStaffProfileDomain(data *model.StaffProfileModel) *entity.StaffProfile {
	if data == nil {
		return nil
	}

	profile := &entity.StaffProfile{
		ID:         data.ID,
		UserID:     data.UserID,
		BranchID:   data.BranchID,
		Role:       data.Role,
		EmployeeID: data.EmployeeID,
		Salary:     data.Salary,
		IsActive:   data.IsActive,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if len(data.Permissions) > 0 {
		_ = json.Unmarshal(data.Permissions, &profile.Permissions)
	}

	return profile
}

// fromStaffProfileDomain converts a domain StaffProfile entity to a GORM StaffProfileModel.
func fromStaffProfileDomain(data *entity.StaffProfile) *model.StaffProfileModel {
	if data == nil {
		return nil
	}

	perms, _ := json.Marshal(data.Permissions)

	return &model.StaffProfileModel{
		ID:          data.ID,
		UserID:      data.UserID,
		BranchID:    data.BranchID,
		Role:        data.Role,
		EmployeeID:  data.EmployeeID,
		Permissions: perms,
		Salary:      data.Salary,
		IsActive:    data.IsActive,
	}
}

// addressFromJSON decodes a stored address snapshot, returning nil for empty columns.
func addressFromJSON(data datatypes.JSON) *entity.AddressSnapshot {
	if len(data) == 0 {
		return nil
	}

	var addr entity.AddressSnapshot
	if err := json.Unmarshal(data, &addr); err != nil {
		return nil
	}

	return &addr
}

// addressToJSON encodes an address snapshot for storage, nil-safe.
func addressToJSON(addr *entity.AddressSnapshot) datatypes.JSON {
	if addr == nil {
		return nil
	}

	data, err := json.Marshal(addr)
	if err != nil {
		return nil
	}

	return data
}
