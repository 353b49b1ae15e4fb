package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/abir-25/doctors-portal-server/internal/config"
	"github.com/abir-25/doctors-portal-server/internal/database"
	"github.com/abir-25/doctors-portal-server/internal/domain"
	"github.com/abir-25/doctors-portal-server/internal/middleware"
	"github.com/abir-25/doctors-portal-server/internal/modules/availability"
	"github.com/abir-25/doctors-portal-server/internal/modules/booking"
	"github.com/abir-25/doctors-portal-server/internal/modules/catalog"
	"github.com/abir-25/doctors-portal-server/internal/modules/doctor"
	"github.com/abir-25/doctors-portal-server/internal/modules/payment"
	"github.com/abir-25/doctors-portal-server/internal/modules/user"
	"github.com/abir-25/doctors-portal-server/internal/notify"
	jwtsvc "github.com/abir-25/doctors-portal-server/internal/pkg/jwt"
	"github.com/abir-25/doctors-portal-server/internal/pkg/logging"
	"github.com/abir-25/doctors-portal-server/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(cfg.LogLevel)

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.AutoMigrate(
		&domain.Service{},
		&domain.Booking{},
		&domain.User{},
		&domain.Doctor{},
		&domain.Payment{},
	); err != nil {
		log.Fatal("AutoMigrate failed: ", err)
	}

	serviceRepo := repository.NewServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.EmailFrom,
		FromName:  cfg.EmailFromName,
	}, logger); sg != nil {
		sender = sg
	} else {
		sender = notify.NewNoopSender(logger)
	}
	dispatcher := notify.NewDispatcher(sender, logger)
	defer dispatcher.Stop()

	catalogHandler := catalog.NewHandler(catalog.NewService(serviceRepo))
	availabilityHandler := availability.NewHandler(availability.NewService(serviceRepo, bookingRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, dispatcher))
	userHandler := user.NewHandler(user.NewService(userRepo, j))
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, payment.NewStripeClient(cfg.StripeSecretKey, logger)))
	doctorHandler := doctor.NewHandler(doctor.NewService(doctorRepo))

	adminGate := middleware.NewAdminGate(userRepo)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.CORS(), middleware.RequestLogger(logger))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctors Portal server is running")
	})

	root := r.Group("/")
	{
		// public
		catalogHandler.RegisterRoutes(root)
		availabilityHandler.RegisterRoutes(root)
		bookingHandler.RegisterPublicRoutes(root)
		userHandler.RegisterPublicRoutes(root)
		paymentHandler.RegisterRoutes(root)

		// authenticated
		protected := root.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterProtectedRoutes(protected)

			// authenticated + admin
			admin := protected.Group("/")
			admin.Use(adminGate.AdminOnly())
			{
				userHandler.RegisterAdminRoutes(admin)
				doctorHandler.RegisterRoutes(admin)
			}
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", "error", err)
	}
}
