package main

import (
	"github.com/gin-gonic/gin"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/handlers"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler    *handlers.AuthHandler
	otpHandler     *handlers.OTPHandler
	userHandler    *handlers.UserHandler
	kycHandler     *handlers.KYCHandler
	disputeHandler *handlers.DisputeHandler
	catalogHandler *handlers.CatalogHandler
	emailHandler   *handlers.EmailHandler
	authMiddleware gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Admin auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/verify-otp", d.authHandler.VerifyOTP)
			auth.POST("/refresh", d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
		}

		// OTP routes (public; used by the mobile apps)
		otp := v1.Group("/otp")
		{
			otp.POST("/issue", d.otpHandler.Issue)
			otp.POST("/verify", d.otpHandler.Verify)
			otp.POST("/reset-password", d.otpHandler.ResetPassword)
		}

		// Applicant-facing KYC submission (public)
		v1.POST("/kyc/:userId/submit", d.kycHandler.Submit)

		// Dispute filing (public; either party of a booking)
		v1.POST("/disputes", d.disputeHandler.File)

		// Transactional email routes (public; called by platform services)
		email := v1.Group("/email")
		{
			email.POST("/send-welcome-email", d.emailHandler.SendWelcome)
			email.POST("/send-delivery-update-email", d.emailHandler.SendDeliveryUpdate)
			email.POST("/send-delivery-otp-email", d.emailHandler.SendDeliveryOTP)
		}

		// Back-office routes (admin only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/users", d.userHandler.List)
			admin.POST("/users", d.userHandler.Create)
			admin.GET("/users/:id", d.userHandler.Get)
			admin.PATCH("/users/:id", d.userHandler.Update)
			admin.POST("/users/:id/block", d.userHandler.Block)
			admin.POST("/users/:id/unblock", d.userHandler.Unblock)
			admin.DELETE("/users/:id", d.userHandler.Delete)

			admin.GET("/kyc", d.kycHandler.List)
			admin.GET("/kyc/counts", d.kycHandler.Counts)
			admin.GET("/kyc/:userId", d.kycHandler.Get)
			admin.POST("/kyc/:userId/approve", d.kycHandler.Approve)
			admin.POST("/kyc/:userId/reject", d.kycHandler.Reject)

			admin.GET("/disputes", d.disputeHandler.List)
			admin.GET("/disputes/stats", d.disputeHandler.Stats)
			admin.GET("/disputes/:id", d.disputeHandler.Get)
			admin.PATCH("/disputes/:id/status", d.disputeHandler.UpdateStatus)
			admin.POST("/disputes/:id/assign", d.disputeHandler.Assign)
			admin.DELETE("/disputes/:id", d.disputeHandler.Delete)

			admin.GET("/packages", d.catalogHandler.ListPackages)
			admin.GET("/packages/:id", d.catalogHandler.GetPackage)
			admin.PATCH("/packages/:id/status", d.catalogHandler.UpdatePackageStatus)
			admin.DELETE("/packages/:id", d.catalogHandler.DeletePackage)

			admin.GET("/trips", d.catalogHandler.ListTrips)
			admin.GET("/trips/:id", d.catalogHandler.GetTrip)
			admin.PATCH("/trips/:id/status", d.catalogHandler.UpdateTripStatus)
			admin.DELETE("/trips/:id", d.catalogHandler.DeleteTrip)

			admin.GET("/bookings", d.catalogHandler.ListBookings)
			admin.GET("/bookings/:id", d.catalogHandler.GetBooking)
			admin.PATCH("/bookings/:id/status", d.catalogHandler.UpdateBookingStatus)
			admin.DELETE("/bookings/:id", d.catalogHandler.DeleteBooking)

			admin.GET("/transactions", d.catalogHandler.ListTransactions)
			admin.GET("/transactions/:id", d.catalogHandler.GetTransaction)
			admin.PATCH("/transactions/:id/status", d.catalogHandler.UpdateTransactionStatus)
			admin.DELETE("/transactions/:id", d.catalogHandler.DeleteTransaction)

			admin.GET("/wallets", d.catalogHandler.ListWallets)
			admin.GET("/wallets/:id", d.catalogHandler.GetWallet)

			admin.POST("/email/send-promotional-email", d.emailHandler.SendPromotional)
			admin.GET("/email/campaigns", d.emailHandler.ListCampaigns)
			admin.POST("/email/test-email-config", d.emailHandler.TestConfig)
		}
	}
}
