package models

import (
	"time"

	"fitcenter/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ============================================================
// Identity & Authorization Tables
// ============================================================

// User represents the users table (identity store)
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }

func (u User) PrimaryKey() uuid.UUID { return u.ID }

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

func (u *User) ValidateInsert() error {
	if u.Email == "" {
		return domain.ValidationError("users.email is required")
	}
	if u.PasswordHash == "" {
		return domain.ValidationError("users.password_hash is required")
	}
	return nil
}

// UserResponse DTO (never exposes the password hash)
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// Profile represents the profiles table (identity-linked display data).
// The primary key is the owning user's id, one row per identity.
type Profile struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName  string    `gorm:"size:100;not null" json:"full_name"`
	Email     string    `gorm:"size:100;not null" json:"email"`
	Phone     *string   `gorm:"size:20" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string { return "profiles" }

func (p Profile) PrimaryKey() uuid.UUID { return p.ID }

func (p *Profile) ValidateInsert() error {
	if p.ID == uuid.Nil {
		return domain.ValidationError("profiles.id is required")
	}
	if p.FullName == "" {
		return domain.ValidationError("profiles.full_name is required")
	}
	if p.Email == "" {
		return domain.ValidationError("profiles.email is required")
	}
	return nil
}

// RoleAssignment represents the role_assignments table. A row links a
// user identity to exactly one role tag; assignments are immutable
// after issuance.
type RoleAssignment struct {
	ID        uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID   `gorm:"type:uuid;not null;uniqueIndex:idx_user_role" json:"user_id"`
	Role      domain.Role `gorm:"size:20;not null;uniqueIndex:idx_user_role" json:"role"`
	CreatedAt time.Time   `gorm:"autoCreateTime" json:"created_at"`
}

func (RoleAssignment) TableName() string { return "role_assignments" }

func (r RoleAssignment) PrimaryKey() uuid.UUID { return r.ID }

func (r *RoleAssignment) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

func (r *RoleAssignment) ValidateInsert() error {
	if r.UserID == uuid.Nil {
		return domain.ValidationError("role_assignments.user_id is required")
	}
	if !r.Role.IsValid() {
		return domain.ValidationError("role_assignments.role must be one of administrator, trainer")
	}
	return nil
}

// ============================================================
// Gym Domain Tables
// ============================================================

// Member represents the members table
type Member struct {
	ID                    uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName              string     `gorm:"size:100;not null" json:"full_name"`
	Email                 string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone                 string     `gorm:"size:20;not null" json:"phone"`
	DateOfBirth           *time.Time `gorm:"type:date" json:"date_of_birth,omitempty"`
	Gender                *string    `gorm:"size:20" json:"gender,omitempty"`
	Address               *string    `gorm:"type:text" json:"address,omitempty"`
	EmergencyContactName  *string    `gorm:"size:100" json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string    `gorm:"size:20" json:"emergency_contact_phone,omitempty"`
	CreatedAt             time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string { return "members" }

func (m Member) PrimaryKey() uuid.UUID { return m.ID }

func (m *Member) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *Member) ValidateInsert() error {
	if m.FullName == "" {
		return domain.ValidationError("members.full_name is required")
	}
	if m.Email == "" {
		return domain.ValidationError("members.email is required")
	}
	if m.Phone == "" {
		return domain.ValidationError("members.phone is required")
	}
	return nil
}

// Trainer represents the trainers table, linked one-to-one to a user
// identity. Display name and email live on the linked profile and are
// mutated only through the composite edit path.
type Trainer struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Specialization  *string   `gorm:"size:100" json:"specialization,omitempty"`
	ExperienceYears *int      `json:"experience_years,omitempty"`
	Bio             *string   `gorm:"type:text" json:"bio,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Profile *Profile `gorm:"foreignKey:UserID;references:ID" json:"profile,omitempty"`
}

func (Trainer) TableName() string { return "trainers" }

func (t Trainer) PrimaryKey() uuid.UUID { return t.ID }

func (t *Trainer) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *Trainer) ValidateInsert() error {
	if t.UserID == uuid.Nil {
		return domain.ValidationError("trainers.user_id is required")
	}
	return nil
}

// MembershipType represents the membership_types table
type MembershipType struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Description    *string   `gorm:"type:text" json:"description,omitempty"`
	DurationMonths int       `gorm:"not null" json:"duration_months"`
	Price          float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (MembershipType) TableName() string { return "membership_types" }

func (m MembershipType) PrimaryKey() uuid.UUID { return m.ID }

func (m *MembershipType) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *MembershipType) ValidateInsert() error {
	if m.Name == "" {
		return domain.ValidationError("membership_types.name is required")
	}
	if m.DurationMonths <= 0 {
		return domain.ValidationError("membership_types.duration_months must be a positive whole number")
	}
	if m.Price < 0 {
		return domain.ValidationError("membership_types.price must not be negative")
	}
	return nil
}

// Membership represents the memberships table. end_date is derived from
// the membership type's duration once at enrollment and never
// recomputed afterwards.
type Membership struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID         uuid.UUID  `gorm:"type:uuid;not null;index" json:"member_id"`
	MembershipTypeID uuid.UUID  `gorm:"type:uuid;not null" json:"membership_type_id"`
	TrainerID        *uuid.UUID `gorm:"type:uuid" json:"trainer_id,omitempty"`
	StartDate        time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate          time.Time  `gorm:"type:date;not null" json:"end_date"`
	PaymentAmount    float64    `gorm:"type:decimal(10,2);not null" json:"payment_amount"`
	PaymentDate      time.Time  `gorm:"type:date;not null" json:"payment_date"`
	Status           string     `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Member         *Member         `gorm:"foreignKey:MemberID" json:"member,omitempty"`
	MembershipType *MembershipType `gorm:"foreignKey:MembershipTypeID" json:"membership_type,omitempty"`
	Trainer        *Trainer        `gorm:"foreignKey:TrainerID" json:"trainer,omitempty"`
}

func (Membership) TableName() string { return "memberships" }

func (m Membership) PrimaryKey() uuid.UUID { return m.ID }

func (m *Membership) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

func (m *Membership) ValidateInsert() error {
	if m.MemberID == uuid.Nil {
		return domain.ValidationError("memberships.member_id is required")
	}
	if m.MembershipTypeID == uuid.Nil {
		return domain.ValidationError("memberships.membership_type_id is required")
	}
	if m.EndDate.IsZero() {
		return domain.ValidationError("memberships.end_date is required")
	}
	if m.PaymentAmount < 0 {
		return domain.ValidationError("memberships.payment_amount must not be negative")
	}
	return nil
}

// MemberVitals represents the member_vitals table. Rows are an
// append-only history: never updated or deleted in normal flow. The bmi
// column is derived once from the same row's height/weight.
type MemberVitals struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	MemberID     uuid.UUID `gorm:"type:uuid;not null;index" json:"member_id"`
	HeightCm     *float64  `gorm:"type:decimal(5,1)" json:"height_cm,omitempty"`
	WeightKg     *float64  `gorm:"type:decimal(5,1)" json:"weight_kg,omitempty"`
	BMI          *float64  `gorm:"column:bmi;type:decimal(5,2)" json:"bmi,omitempty"`
	Notes        *string   `gorm:"type:text" json:"notes,omitempty"`
	RecordedDate time.Time `gorm:"type:date;not null" json:"recorded_date"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (MemberVitals) TableName() string { return "member_vitals" }

func (v MemberVitals) PrimaryKey() uuid.UUID { return v.ID }

func (v *MemberVitals) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

func (v *MemberVitals) ValidateInsert() error {
	if v.MemberID == uuid.Nil {
		return domain.ValidationError("member_vitals.member_id is required")
	}
	return nil
}

// ============================================================
// Training Plan Tables
// ============================================================

// WorkoutPlan represents the workout_plans table, authored by a trainer
type WorkoutPlan struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedBy       uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	Name            string    `gorm:"size:100;not null" json:"name"`
	Description     *string   `gorm:"type:text" json:"description,omitempty"`
	DurationWeeks   *int      `json:"duration_weeks,omitempty"`
	DifficultyLevel *string   `gorm:"size:20" json:"difficulty_level,omitempty"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WorkoutPlan) TableName() string { return "workout_plans" }

func (w WorkoutPlan) PrimaryKey() uuid.UUID { return w.ID }

func (w *WorkoutPlan) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

func (w *WorkoutPlan) ValidateInsert() error {
	if w.CreatedBy == uuid.Nil {
		return domain.ValidationError("workout_plans.created_by is required")
	}
	if w.Name == "" {
		return domain.ValidationError("workout_plans.name is required")
	}
	return nil
}

// DietPlan represents the diet_plans table, authored by a trainer
type DietPlan struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedBy      uuid.UUID `gorm:"type:uuid;not null;index" json:"created_by"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	Description    *string   `gorm:"type:text" json:"description,omitempty"`
	CaloriesPerDay *int      `json:"calories_per_day,omitempty"`
	MealPlan       *string   `gorm:"type:text" json:"meal_plan,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (DietPlan) TableName() string { return "diet_plans" }

func (d DietPlan) PrimaryKey() uuid.UUID { return d.ID }

func (d *DietPlan) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (d *DietPlan) ValidateInsert() error {
	if d.CreatedBy == uuid.Nil {
		return domain.ValidationError("diet_plans.created_by is required")
	}
	if d.Name == "" {
		return domain.ValidationError("diet_plans.name is required")
	}
	return nil
}

// MembershipPlan represents the membership_plans join table, pairing at
// most one workout and one diet plan per assignment record.
type MembershipPlan struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	MembershipID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"membership_id"`
	WorkoutPlanID *uuid.UUID `gorm:"type:uuid" json:"workout_plan_id,omitempty"`
	DietPlanID    *uuid.UUID `gorm:"type:uuid" json:"diet_plan_id,omitempty"`
	AssignedDate  time.Time  `gorm:"type:date;not null" json:"assigned_date"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`

	Membership  *Membership  `gorm:"foreignKey:MembershipID" json:"membership,omitempty"`
	WorkoutPlan *WorkoutPlan `gorm:"foreignKey:WorkoutPlanID" json:"workout_plan,omitempty"`
	DietPlan    *DietPlan    `gorm:"foreignKey:DietPlanID" json:"diet_plan,omitempty"`
}

func (MembershipPlan) TableName() string { return "membership_plans" }

func (p MembershipPlan) PrimaryKey() uuid.UUID { return p.ID }

func (p *MembershipPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

func (p *MembershipPlan) ValidateInsert() error {
	if p.MembershipID == uuid.Nil {
		return domain.ValidationError("membership_plans.membership_id is required")
	}
	return nil
}

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Profile{},
		&RoleAssignment{},
		&Member{},
		&Trainer{},
		&MembershipType{},
		&Membership{},
		&MemberVitals{},
		&WorkoutPlan{},
		&DietPlan{},
		&MembershipPlan{},
	)
}
