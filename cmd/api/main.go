package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/kronoshq/timekeeping-backend-go/internal/config"
	appHTTP "github.com/kronoshq/timekeeping-backend-go/internal/handler/http"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/clock"
	"github.com/kronoshq/timekeeping-backend-go/internal/pkg/database"
	"github.com/kronoshq/timekeeping-backend-go/internal/repository/postgresql"
	attendanceService "github.com/kronoshq/timekeeping-backend-go/internal/service/attendance"
	leaveService "github.com/kronoshq/timekeeping-backend-go/internal/service/leave"
	overtimeService "github.com/kronoshq/timekeeping-backend-go/internal/service/overtime"
	reportService "github.com/kronoshq/timekeeping-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "timekeeping-backend"),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	civilClock, err := clock.NewCivilClock(cfg.Attendance.Timezone)
	if err != nil {
		fmt.Println("Error loading timezone:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	tardinessRepo := postgresql.NewTardinessRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	leaveBalanceRepo := postgresql.NewLeaveBalanceRepository(db)
	overtimeRepo := postgresql.NewOvertimeRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo, tardinessRepo, employeeRepo, civilClock, logger,
	)
	leaveSvc := leaveService.NewLeaveService(
		leaveRequestRepo, leaveBalanceRepo, attendanceRepo, employeeRepo, db, civilClock, logger,
	)
	overtimeSvc := overtimeService.NewOvertimeService(
		overtimeRepo, attendanceRepo, employeeRepo, civilClock, logger,
	)
	reportSvc := reportService.NewReportService(
		attendanceRepo, leaveBalanceRepo, overtimeRepo, employeeRepo, civilClock,
	)

	router := appHTTP.NewRouter(
		cfg,
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewOvertimeHandler(overtimeSvc),
		appHTTP.NewReportHandler(reportSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("starting server", slog.String("addr", addr), slog.String("timezone", cfg.Attendance.Timezone))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
	}
}
