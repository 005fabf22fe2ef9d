package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/timeboard/timeboard-backend-go/internal/config"
	appHTTP "github.com/timeboard/timeboard-backend-go/internal/handler/http"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/cron"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/database"
	"github.com/timeboard/timeboard-backend-go/internal/pkg/jwt"
	"github.com/timeboard/timeboard-backend-go/internal/repository/postgresql"
	badgeService "github.com/timeboard/timeboard-backend-go/internal/service/badge"
	timesheetService "github.com/timeboard/timeboard-backend-go/internal/service/timesheet"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	loc, err := cfg.Location()
	if err != nil {
		fmt.Println("Error resolving timezone:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	badgeEventRepo := postgresql.NewBadgeEventRepository(db)
	kpiAggregateRepo := postgresql.NewKPIAggregateRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret)
	badgeSvc := badgeService.NewBadgeService(db, badgeEventRepo, loc)
	timesheetSvc := timesheetService.NewTimesheetService(db, badgeEventRepo, kpiAggregateRepo, loc)

	badgeHandler := appHTTP.NewBadgeHandler(badgeSvc)
	timesheetHandler := appHTTP.NewTimesheetHandler(timesheetSvc)

	scheduler := cron.NewScheduler(loc)
	kpiJobs := cron.NewKPIJobs(badgeEventRepo, kpiAggregateRepo, loc)
	if err := kpiJobs.RegisterJobs(scheduler, cfg.Cron.KPIRefreshSpec); err != nil {
		log.Fatal("Failed to register KPI refresh job:", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		JWTService,
		badgeHandler,
		timesheetHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
