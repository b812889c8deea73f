package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bayanihr/hr201-backend-go/internal/config"
	appHTTP "github.com/bayanihr/hr201-backend-go/internal/handler/http"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/database"
	"github.com/bayanihr/hr201-backend-go/internal/pkg/jwt"
	"github.com/bayanihr/hr201-backend-go/internal/repository/postgresql"
	employeeService "github.com/bayanihr/hr201-backend-go/internal/service/employee"
	leaveService "github.com/bayanihr/hr201-backend-go/internal/service/leave"
	masterService "github.com/bayanihr/hr201-backend-go/internal/service/master"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	employeeRepo := postgresql.NewEmployeeRepository(db)
	educationRepo := postgresql.NewEducationRepository(db)
	trainingRepo := postgresql.NewTrainingRepository(db)
	workExperienceRepo := postgresql.NewWorkExperienceRepository(db)
	leaveTypeRepo := postgresql.NewLeaveTypeRepository(db)
	leavePolicyRepo := postgresql.NewLeavePolicyRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	provinceRepo := postgresql.NewProvinceRepository(db)
	barangayRepo := postgresql.NewBarangayRepository(db)
	religionRepo := postgresql.NewReligionRepository(db)
	civilStatusRepo := postgresql.NewCivilStatusRepository(db)
	jobTitleRepo := postgresql.NewJobTitleRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	empService := employeeService.NewService(
		employeeRepo, educationRepo, trainingRepo, workExperienceRepo,
		auditRepo, db, logger,
	)
	requestService := leaveService.NewRequestService(
		employeeRepo, leaveTypeRepo, leavePolicyRepo, leaveBalanceRepo,
		leaveRequestRepo, holidayRepo, auditRepo, db, logger,
	)
	adminService := leaveService.NewAdminService(
		employeeRepo, leaveTypeRepo, leavePolicyRepo, leaveBalanceRepo,
		holidayRepo, auditRepo, db, logger,
	)
	mstService := masterService.NewService(
		provinceRepo, barangayRepo, religionRepo, civilStatusRepo,
		jobTitleRepo, auditRepo, db, logger,
	)

	employeeHandler := appHTTP.NewEmployeeHandler(empService)
	leaveHandler := appHTTP.NewLeaveHandler(requestService, adminService)
	masterHandler := appHTTP.NewMasterHandler(mstService)
	activityLogHandler := appHTTP.NewActivityLogHandler(auditRepo)

	router := appHTTP.NewRouter(cfg, jwtService, employeeHandler, leaveHandler, masterHandler, activityLogHandler)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "addr", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
