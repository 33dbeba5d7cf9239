package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/cmlabs-hris/wagedesk/internal/config"
	appHTTP "github.com/cmlabs-hris/wagedesk/internal/handler/http"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/database"
	"github.com/cmlabs-hris/wagedesk/internal/pkg/jwt"
	"github.com/cmlabs-hris/wagedesk/internal/repository/postgresql"
	wageService "github.com/cmlabs-hris/wagedesk/internal/service/wage"
	"github.com/cmlabs-hris/wagedesk/internal/slip"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	rateRepo := postgresql.NewWageRateRepository(db)
	calculationRepo := postgresql.NewWageCalculationRepository(db)
	workerRepo := postgresql.NewWorkerRepository(db)
	auditSink := postgresql.NewAuditRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	templates := slip.NewRegistry(cfg.Wage.MunicipalityTemplate)

	wageSvc := wageService.NewWageService(db, calculationRepo, rateRepo, attendanceRepo, workerRepo, auditSink, templates)
	wageHandler := appHTTP.NewWageHandler(wageSvc, templates)

	router := appHTTP.NewRouter(JWTService, wageHandler, cfg.App.Env)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
