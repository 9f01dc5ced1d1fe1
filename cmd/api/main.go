package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/chamcong/attendance-backend-go/internal/config"
	appHTTP "github.com/chamcong/attendance-backend-go/internal/handler/http"
	"github.com/chamcong/attendance-backend-go/internal/pkg/clock"
	"github.com/chamcong/attendance-backend-go/internal/pkg/database"
	"github.com/chamcong/attendance-backend-go/internal/pkg/jwt"
	"github.com/chamcong/attendance-backend-go/internal/repository/mongodb"
	attendanceService "github.com/chamcong/attendance-backend-go/internal/service/attendance"
	reportService "github.com/chamcong/attendance-backend-go/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Database.URI, cfg.Database.Name)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close(context.Background())

	attendanceRepo, err := mongodb.NewAttendanceRepository(context.Background(), db)
	if err != nil {
		log.Fatal("Failed to prepare attendance collection:", err)
	}
	employeeRepo := mongodb.NewEmployeeRepository(db)
	shiftRepo := mongodb.NewShiftRepository(db)
	deviceRepo := mongodb.NewDeviceRepository(db)
	departmentRepo := mongodb.NewDepartmentRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)

	attendanceSvc := attendanceService.NewAttendanceService(
		clock.System(),
		attendanceRepo,
		employeeRepo,
		shiftRepo,
		deviceRepo,
	)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo, departmentRepo)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)

	router := appHTTP.NewRouter(JWTService, attendanceHandler, reportHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
