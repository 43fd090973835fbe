package models

import "fitcenter/internal/core/domain"

// Entity schema registry. One descriptor per table: the full column
// set, the columns required on insert, and the columns an update may
// touch. The generic repository checks filter, order and update fields
// against these before anything reaches the store.
func init() {
	domain.RegisterEntity(domain.Descriptor{
		Table:    "users",
		Columns:  []string{"id", "email", "password_hash", "is_active", "created_at", "updated_at"},
		Required: []string{"email", "password_hash"},
		Mutable:  []string{"email", "password_hash", "is_active"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table:    "profiles",
		Columns:  []string{"id", "full_name", "email", "phone", "created_at", "updated_at"},
		Required: []string{"id", "full_name", "email"},
		Mutable:  []string{"full_name", "email", "phone"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table:    "role_assignments",
		Columns:  []string{"id", "user_id", "role", "created_at"},
		Required: []string{"user_id", "role"},
		// Role assignments are immutable after issuance.
		Mutable: []string{},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table: "members",
		Columns: []string{
			"id", "full_name", "email", "phone", "date_of_birth", "gender", "address",
			"emergency_contact_name", "emergency_contact_phone", "created_at", "updated_at",
		},
		Required: []string{"full_name", "email", "phone"},
		Mutable: []string{
			"full_name", "email", "phone", "date_of_birth", "gender", "address",
			"emergency_contact_name", "emergency_contact_phone",
		},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table:    "trainers",
		Columns:  []string{"id", "user_id", "specialization", "experience_years", "bio", "created_at", "updated_at"},
		Required: []string{"user_id"},
		Mutable:  []string{"specialization", "experience_years", "bio"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table:    "membership_types",
		Columns:  []string{"id", "name", "description", "duration_months", "price", "created_at", "updated_at"},
		Required: []string{"name", "duration_months", "price"},
		Mutable:  []string{"name", "description", "duration_months", "price"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table: "memberships",
		Columns: []string{
			"id", "member_id", "membership_type_id", "trainer_id", "start_date", "end_date",
			"payment_amount", "payment_date", "status", "created_at", "updated_at",
		},
		Required: []string{"member_id", "membership_type_id", "end_date", "payment_amount"},
		// end_date is computed once at enrollment and never recomputed,
		// so it is deliberately absent from the mutable set.
		Mutable: []string{"trainer_id", "status"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table: "member_vitals",
		Columns: []string{
			"id", "member_id", "height_cm", "weight_kg", "bmi", "notes", "recorded_date", "created_at",
		},
		Required: []string{"member_id"},
		// Vitals are an append-only history.
		Mutable: []string{},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table: "workout_plans",
		Columns: []string{
			"id", "created_by", "name", "description", "duration_weeks", "difficulty_level",
			"created_at", "updated_at",
		},
		Required: []string{"created_by", "name"},
		Mutable:  []string{"name", "description", "duration_weeks", "difficulty_level"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table: "diet_plans",
		Columns: []string{
			"id", "created_by", "name", "description", "calories_per_day", "meal_plan",
			"created_at", "updated_at",
		},
		Required: []string{"created_by", "name"},
		Mutable:  []string{"name", "description", "calories_per_day", "meal_plan"},
	})
	domain.RegisterEntity(domain.Descriptor{
		Table: "membership_plans",
		Columns: []string{
			"id", "membership_id", "workout_plan_id", "diet_plan_id", "assigned_date", "created_at",
		},
		Required: []string{"membership_id"},
		Mutable:  []string{"workout_plan_id", "diet_plan_id", "assigned_date"},
	})
}
