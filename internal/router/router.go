package router

import (
	"github.com/redis/go-redis/v9"

	"github.com/Jaspa-lSingh/Shiftwise/foundation/web"
	"github.com/Jaspa-lSingh/Shiftwise/internal/auth"
	"github.com/Jaspa-lSingh/Shiftwise/internal/middleware"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/config"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/repository/postgresql"
	"github.com/Jaspa-lSingh/Shiftwise/internal/pkg/session"

	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/announcement"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/attendance"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/inquiry"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/leave"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/notification"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/payroll"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/role"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/shift"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/swap"
	"github.com/Jaspa-lSingh/Shiftwise/internal/repository/postgres/user"

	announcement_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/announcement"
	attendance_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/attendance"
	auth_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/auth"
	inquiry_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/inquiry"
	leave_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/leave"
	notification_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/notification"
	payroll_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/payroll"
	role_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/role"
	shift_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/shift"
	swap_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/swap"
	user_controller "github.com/Jaspa-lSingh/Shiftwise/internal/controller/http/v1/user"

	"net/http"
)

type Router struct {
	*web.App
	postgresDB *postgresql.Database
	redisDB    *redis.Client
	port       string
	auth       *auth.Auth
	cfg        *config.Config
}

func NewRouter(
	app *web.App,
	postgresDB *postgresql.Database,
	redisDB *redis.Client,
	port string,
	auth *auth.Auth,
	cfg *config.Config,
) *Router {
	return &Router{
		app,
		postgresDB,
		redisDB,
		port,
		auth,
		cfg,
	}
}

func (r Router) Init() error {

	r.HandleMethodNotAllowed = true
	r.Use(middleware.CorsMiddleware(r.cfg.AllowedOrigins))

	// - postgresql
	userPostgres := user.NewRepository(r.postgresDB)
	shiftPostgres := shift.NewRepository(r.postgresDB)
	attendancePostgres := attendance.NewRepository(r.postgresDB)
	swapPostgres := swap.NewRepository(r.postgresDB)
	leavePostgres := leave.NewRepository(r.postgresDB)
	announcementPostgres := announcement.NewRepository(r.postgresDB)
	rolePostgres := role.NewRepository(r.postgresDB)
	payrollPostgres := payroll.NewRepository(r.postgresDB)
	inquiryPostgres := inquiry.NewRepository(r.postgresDB)
	notificationPostgres := notification.NewRepository(r.postgresDB)

	// - redis
	sessionStore := session.NewStore(r.redisDB)

	// controller
	authController := auth_controller.NewController(userPostgres, sessionStore, r.cfg.PrivateKeyFile)
	userController := user_controller.NewController(userPostgres)
	shiftController := shift_controller.NewController(shiftPostgres)
	attendanceController := attendance_controller.NewController(attendancePostgres, r.cfg)
	swapController := swap_controller.NewController(swapPostgres)
	leaveController := leave_controller.NewController(leavePostgres)
	announcementController := announcement_controller.NewController(announcementPostgres)
	roleController := role_controller.NewController(rolePostgres)
	payrollController := payroll_controller.NewController(payrollPostgres)
	inquiryController := inquiry_controller.NewController(inquiryPostgres)
	notificationController := notification_controller.NewController(notificationPostgres)

	r.Get("/api/health/", func(c *web.Context) error {
		return c.Respond(map[string]interface{}{"data": "ok", "status": true}, http.StatusOK)
	})

	r.Static("/media", "./media")

	// #auth
	r.Post("/api/token/", authController.SignIn)
	r.Post("/api/token/refresh/", authController.RefreshToken)
	r.Post("/api/auth/logout/", authController.Logout, middleware.Authenticate(r.auth))

	// #user
	r.Get("/api/users/", userController.GetUserList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/users/me/", userController.GetProfile, middleware.Authenticate(r.auth))
	r.Get("/api/users/me/badge/", userController.GetMyBadge, middleware.Authenticate(r.auth))
	r.Post("/api/users/me/profile-image/", userController.UploadProfileImage, middleware.Authenticate(r.auth))
	r.Get("/api/users/:id/", userController.GetUserDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/users/", userController.CreateUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/users/:id/", userController.UpdateUserColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/users/:id/", userController.DeleteUser, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #shift
	r.Get("/api/shifts/admin-shifts/", shiftController.GetShiftList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/shifts/", shiftController.CreateShift, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/shifts/create_shift_with_user/", shiftController.CreateShiftWithUser, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/shifts/my-shifts/", shiftController.GetMyShifts, middleware.Authenticate(r.auth))
	r.Patch("/api/shifts/my-shifts/:id/", shiftController.UpdateMyShiftStatus, middleware.Authenticate(r.auth))
	r.Get("/api/shifts/my-dashboard/", shiftController.GetMyDashboard, middleware.Authenticate(r.auth))
	r.Get("/api/shifts/available-for-swap/", shiftController.GetAvailableForSwap, middleware.Authenticate(r.auth))
	r.Get("/api/shifts/:id/", shiftController.GetShiftDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/shifts/:id/", shiftController.UpdateShiftColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/shifts/:id/", shiftController.DeleteShift, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #attendance
	r.Post("/api/attendance/clock-in/", attendanceController.ClockIn, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Patch("/api/attendance/clock-out/:id/", attendanceController.ClockOut, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/attendance/active/", attendanceController.GetActive, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/attendance/all/", attendanceController.GetList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/attendance/user/:id/", attendanceController.GetByUser, middleware.Authenticate(r.auth))
	r.Get("/api/attendance/export/", attendanceController.Export, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #swap
	r.Post("/api/swaps/", swapController.CreateSwapRequest, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/swaps/my/", swapController.GetMySwapRequests, middleware.Authenticate(r.auth))
	r.Get("/api/swaps/", swapController.GetSwapRequestList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/swaps/:id/", swapController.UpdateSwapRequestStatus, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/swaps/:id/", swapController.DeleteSwapRequest, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #coverup
	r.Post("/api/coverup/", swapController.CreateCoverUp, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/coverup/", swapController.GetCoverUpList, middleware.Authenticate(r.auth))
	r.Patch("/api/coverup/:id/claim/", swapController.ClaimCoverUp, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Patch("/api/coverup/:id/cancel/", swapController.CancelCoverUp, middleware.Authenticate(r.auth))

	// #leave
	r.Post("/api/leaves/", leaveController.CreateLeaveRequest, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/leaves/my/", leaveController.GetMyLeaveRequests, middleware.Authenticate(r.auth))
	r.Get("/api/leaves/", leaveController.GetLeaveRequestList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/leaves/:id/", leaveController.UpdateLeaveRequestStatus, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/leaves/:id/", leaveController.DeleteLeaveRequest, middleware.Authenticate(r.auth))

	// #announcement
	r.Post("/api/announcements/", announcementController.CreateAnnouncement, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/announcements/", announcementController.GetAnnouncementList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/announcements/my/", announcementController.GetMyAnnouncements, middleware.Authenticate(r.auth))
	r.Get("/api/announcements/:id/", announcementController.GetAnnouncementDetailById, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/announcements/:id/", announcementController.UpdateAnnouncementColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/announcements/:id/", announcementController.DeleteAnnouncement, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #role
	r.Get("/api/roles/", roleController.GetRoleList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/roles/", roleController.CreateRole, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/roles/:id/", roleController.UpdateRoleColumns, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/roles/:id/", roleController.DeleteRole, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/assign-role/", roleController.AssignRole, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/assign-role/", roleController.GetRoleAssignments, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #inquiry
	r.Post("/api/inquiries/", inquiryController.CreateInquiry, middleware.Authenticate(r.auth, auth.RoleEmployee))
	r.Get("/api/inquiries/", inquiryController.GetMyInquiries, middleware.Authenticate(r.auth))
	r.Get("/api/inquiries/admin/", inquiryController.GetInquiryList, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Patch("/api/inquiries/admin/:id/", inquiryController.AnswerInquiry, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Delete("/api/inquiries/admin/:id/", inquiryController.DeleteInquiry, middleware.Authenticate(r.auth, auth.RoleAdmin))

	// #notification
	r.Get("/api/notifications/", notificationController.GetMyNotifications, middleware.Authenticate(r.auth))
	r.Patch("/api/notifications/:id/read/", notificationController.MarkNotificationRead, middleware.Authenticate(r.auth))

	// #payroll
	r.Get("/api/payroll/employees/", payrollController.GetPayrollEmployees, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Post("/api/payroll/process/", payrollController.ProcessPayroll, middleware.Authenticate(r.auth, auth.RoleAdmin))
	r.Get("/api/payroll/history/", payrollController.GetPayrollHistory, middleware.Authenticate(r.auth))
	r.Get("/api/payroll/payslip/:id/", payrollController.GetPayslip, middleware.Authenticate(r.auth))

	return r.Run(r.port)
}
