package routes

import (
	"fitcenter/internal/adapters/http/handlers"
	"fitcenter/internal/adapters/http/middleware"
	"fitcenter/internal/adapters/persistence/models"
	"fitcenter/internal/adapters/persistence/repositories"
	"fitcenter/internal/config"
	"fitcenter/internal/core/domain"
	"fitcenter/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewRepository[models.User](db)
	profileRepo := repositories.NewRepository[models.Profile](db)
	roleRepo := repositories.NewRepository[models.RoleAssignment](db)
	memberRepo := repositories.NewRepository[models.Member](db)
	trainerRepo := repositories.NewRepository[models.Trainer](db)
	membershipTypeRepo := repositories.NewRepository[models.MembershipType](db)
	membershipRepo := repositories.NewRepository[models.Membership](db)
	vitalsRepo := repositories.NewRepository[models.MemberVitals](db)
	workoutPlanRepo := repositories.NewRepository[models.WorkoutPlan](db)
	dietPlanRepo := repositories.NewRepository[models.DietPlan](db)
	membershipPlanRepo := repositories.NewRepository[models.MembershipPlan](db)

	// Initialize services
	idp := services.NewLocalIdentityProvider(userRepo, profileRepo)
	authService := services.NewAuthService(userRepo, roleRepo, cfg)
	memberService := services.NewMemberService(memberRepo, membershipRepo)
	trainerService := services.NewTrainerService(trainerRepo, profileRepo, roleRepo, idp)
	membershipService := services.NewMembershipService(membershipRepo, membershipTypeRepo, memberRepo, trainerRepo)
	vitalsService := services.NewVitalsService(vitalsRepo, memberRepo)
	planService := services.NewPlanService(workoutPlanRepo, dietPlanRepo, membershipPlanRepo, membershipRepo)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService)
	trainerHandler := handlers.NewTrainerHandler(trainerService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	vitalsHandler := handlers.NewVitalsHandler(vitalsService)
	planHandler := handlers.NewPlanHandler(planService, trainerService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check
	app.Get("/health", healthHandler.Check)

	api := app.Group("/api/v1")

	// Public auth routes with a stricter rate limit
	auth := api.Group("/auth", middleware.AuthRateLimiter())
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Everything below requires a valid access token
	authed := api.Group("", middleware.AuthMiddleware(cfg))
	authed.Get("/auth/me", authHandler.Me)

	requireAdmin := middleware.RequireRole(authService, domain.RoleAdministrator)
	requireTrainer := middleware.RequireRole(authService, domain.RoleTrainer)

	// Admin: member management
	members := authed.Group("/members", requireAdmin)
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/:id", memberHandler.Get)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	// Admin: trainer management
	trainers := authed.Group("/trainers", requireAdmin)
	trainers.Post("/", trainerHandler.Provision)
	trainers.Get("/", trainerHandler.List)
	trainers.Put("/:id", trainerHandler.Update)
	trainers.Delete("/:id", trainerHandler.Delete)

	// Admin: membership types
	membershipTypes := authed.Group("/membership-types", requireAdmin)
	membershipTypes.Post("/", membershipHandler.CreateType)
	membershipTypes.Get("/", membershipHandler.ListTypes)
	membershipTypes.Put("/:id", membershipHandler.UpdateType)
	membershipTypes.Delete("/:id", membershipHandler.DeleteType)

	// Admin: memberships
	memberships := authed.Group("/memberships", requireAdmin)
	memberships.Post("/", membershipHandler.Enroll)
	memberships.Get("/", membershipHandler.List)
	memberships.Patch("/:id/status", membershipHandler.SetStatus)
	memberships.Delete("/:id", membershipHandler.Delete)

	// Admin: vitals
	vitals := authed.Group("/vitals", requireAdmin)
	vitals.Post("/", vitalsHandler.Record)
	vitals.Get("/member/:memberId", vitalsHandler.History)

	// Admin: dashboard
	authed.Get("/dashboard/overview", requireAdmin, dashboardHandler.Overview)

	// Trainer: plans and assignments
	workouts := authed.Group("/workout-plans", requireTrainer)
	workouts.Post("/", planHandler.CreateWorkoutPlan)
	workouts.Get("/", planHandler.ListWorkoutPlans)
	workouts.Put("/:id", planHandler.UpdateWorkoutPlan)
	workouts.Delete("/:id", planHandler.DeleteWorkoutPlan)

	diets := authed.Group("/diet-plans", requireTrainer)
	diets.Post("/", planHandler.CreateDietPlan)
	diets.Get("/", planHandler.ListDietPlans)
	diets.Put("/:id", planHandler.UpdateDietPlan)
	diets.Delete("/:id", planHandler.DeleteDietPlan)

	assignments := authed.Group("/assignments", requireTrainer)
	assignments.Post("/", planHandler.Assign)
	assignments.Get("/membership/:membershipId", planHandler.ListAssignments)

	authed.Get("/my-members", requireTrainer, planHandler.MyMembers)
}
