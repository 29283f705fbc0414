package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/cutmodel/model-match/internal/audit"
	"github.com/cutmodel/model-match/internal/config"
	"github.com/cutmodel/model-match/internal/handlers"
	infraRepo "github.com/cutmodel/model-match/internal/infra/repository"
	"github.com/cutmodel/model-match/internal/media"
	"github.com/cutmodel/model-match/internal/middleware"
	"github.com/cutmodel/model-match/internal/models"
	"github.com/cutmodel/model-match/internal/notify"
	"github.com/cutmodel/model-match/internal/realtime"
	ucBooking "github.com/cutmodel/model-match/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	notifyWriter := notify.New(db)
	notifyDispatcher := notify.NewDispatcher(notifyWriter)

	hub := realtime.New(cfg)
	uploader := media.NewUploader(cfg)

	// ======================================================
	// USE CASES: BOOKING
	// ======================================================
	createReservationUC := ucBooking.NewCreateReservation(
		bookingRepo,
		notifyDispatcher,
	)

	confirmReservationUC := ucBooking.NewConfirmReservation(
		bookingRepo,
		notifyDispatcher,
	)

	cancelBySalonUC := ucBooking.NewCancelBySalon(
		bookingRepo,
		notifyDispatcher,
	)

	cancelByStudentUC := ucBooking.NewCancelByStudent(
		bookingRepo,
		notifyDispatcher,
	)

	updateSlotsUC := ucBooking.NewUpdateListingSlots(bookingRepo)

	dashboardUC := ucBooking.NewDashboard(bookingRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	profileHandler := handlers.NewProfileHandler(db, auditDispatcher)

	listingHandler := handlers.NewListingHandler(db, updateSlotsUC, auditDispatcher)
	publicHandler := handlers.NewPublicHandler(db)

	reservationHandler := handlers.NewReservationHandler(
		db,
		createReservationUC,
		confirmReservationUC,
		cancelBySalonUC,
		cancelByStudentUC,
		dashboardUC,
	)

	messageHandler := handlers.NewMessageHandler(db, hub)
	notificationHandler := handlers.NewNotificationHandler(db)
	uploadHandler := handlers.NewUploadHandler(db, uploader)

	adminHandler := handlers.NewAdminHandler(db, auditDispatcher)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/listings", publicHandler.ListListings)
			publicAPI.GET("/listings/:id", publicHandler.GetListing)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.DELETE("/me", profileHandler.DeleteAccount)

			secured.GET("/me/notifications", notificationHandler.List)
			secured.GET("/me/reservations", reservationHandler.Dashboard)

			// ------------------------------
			// CHAT (both parties of a reservation)
			// ------------------------------
			secured.GET("/reservations/:id/messages", messageHandler.List)
			secured.POST("/reservations/:id/messages", messageHandler.Send)
			secured.GET("/reservations/:id/messages/stream", messageHandler.Stream)

			// ------------------------------
			// STUDENT
			// ------------------------------
			student := secured.Group("/")
			student.Use(middleware.RequireRole(models.RoleStudent))
			{
				student.PATCH("/me/student-profile", profileHandler.UpdateStudent)
				student.POST("/me/student-profile/photo", uploadHandler.UploadStudentPhoto)

				student.POST("/reservations", reservationHandler.Create)
				student.PATCH("/reservations/:id/cancel", reservationHandler.CancelByStudent)
			}

			// ------------------------------
			// SALON
			// ------------------------------
			salon := secured.Group("/")
			salon.Use(middleware.RequireRole(models.RoleSalon))
			{
				salon.PATCH("/me/salon-profile", profileHandler.UpdateSalon)
				salon.POST("/me/salon-profile/photo", uploadHandler.UploadSalonPhoto)

				salon.POST("/me/listings", listingHandler.Create)
				salon.GET("/me/listings", listingHandler.ListMine)
				salon.PATCH("/me/listings/:id", listingHandler.Update)
				salon.PUT("/me/listings/:id/slots", listingHandler.UpdateSlots)
				salon.PATCH("/me/listings/:id/close", listingHandler.Close)
				salon.DELETE("/me/listings/:id", listingHandler.Delete)
				salon.POST("/me/listings/:id/photo", uploadHandler.UploadListingPhoto)

				salon.PATCH("/reservations/:id/confirm", reservationHandler.Confirm)
				salon.PATCH("/reservations/:id/reject", reservationHandler.CancelBySalon)
			}

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/admin")
			admin.Use(middleware.AdminMiddleware(cfg))
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.DELETE("/users/:id", adminHandler.DeleteUser)

				admin.GET("/listings", adminHandler.ListListings)
				admin.DELETE("/listings/:id", adminHandler.DeleteListing)

				admin.GET("/reservations", adminHandler.ListReservations)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
