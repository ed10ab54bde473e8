package cmd

import (
	"os"
	"strconv"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dlima/coursehub/internal/cms"
	"github.com/dlima/coursehub/internal/config"
	"github.com/dlima/coursehub/internal/geo"
	"github.com/dlima/coursehub/internal/handlers"
	"github.com/dlima/coursehub/internal/logging"
	"github.com/dlima/coursehub/internal/partner"
	"github.com/dlima/coursehub/internal/search"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the course discovery API server",
	Long:  `Start the HTTP server that serves merged course details, course search and the campus reference list.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
		logging.Init(cfg.LogLevel)

		// Flag wins over env, env wins over the config default.
		if port == 0 {
			port = cfg.Port
			if envPort := os.Getenv("PORT"); envPort != "" {
				if p, err := strconv.Atoi(envPort); err == nil {
					port = p
				}
			}
		}

		editorial := cms.NewClient(cfg.CMSBaseURL, cfg.CMSToken, cfg.CMSTimeout)
		pricing := partner.NewClient(cfg.PartnerBaseURL, cfg.PartnerAPIKey, cfg.PartnerTimeout, cfg.EnrollmentTimeout)
		campuses := geo.NewCampusCache(
			geo.NewClient(cfg.GeoBaseURL, cfg.GeoTimeout).Campuses,
			cfg.GeoCacheTTL,
		)
		orchestrator := search.NewOrchestrator(editorial, pricing, cfg.DefaultPerPage)

		app := fiber.New(fiber.Config{
			AppName: "coursehub",
		})

		app.Use(recover.New())
		app.Use(fiberlogger.New())

		app.Get("/health", handlers.HealthHandler())
		app.Get("/api/courses", handlers.SearchCoursesHandler(orchestrator))
		app.Get("/api/courses/:slug", handlers.CourseDetailsHandler(orchestrator))
		app.Get("/api/campuses", handlers.CampusesHandler(campuses))

		log.Info().Int("port", port).Msg("starting server")
		if err := app.Listen(":" + strconv.Itoa(port)); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (defaults to PORT env or 8080)")
}
