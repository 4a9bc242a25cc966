package router

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	"vet-clinic-api/internal/adapters/auth/jwtauth"
	mem "vet-clinic-api/internal/adapters/storage/memory"
	pg "vet-clinic-api/internal/adapters/storage/postgres"
	"vet-clinic-api/internal/domain/appointments"
	"vet-clinic-api/internal/domain/owners"
	"vet-clinic-api/internal/domain/pets"
	"vet-clinic-api/internal/domain/treatments"
	"vet-clinic-api/internal/domain/users"
	"vet-clinic-api/internal/domain/vets"
	"vet-clinic-api/internal/middleware"
	"vet-clinic-api/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// JWTSecret firma los tokens del módulo de auth. Si viene vacío se usa un
	// secreto de dev y el middleware queda en modo debug (X-Debug-User-ID).
	JWTSecret string
	TokenTTL  time.Duration

	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	r := chi.NewRouter()

	ttl := opts.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	secret := opts.JWTSecret
	var verifier auth.AuthVerifier
	if secret == "" {
		secret = "dev-secret-change-me"
	} else {
		// Solo con secreto real el middleware exige bearer tokens válidos.
		verifier = jwtauth.NewManager(secret, ttl)
	}
	tokens := jwtauth.NewManager(secret, ttl)

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)

	// AuthContext antes del logger: así la línea de log lleva el user_id.
	r.Use(middleware.AuthContext(verifier))
	if opts.Logger != nil {
		r.Use(middleware.RequestLogger(opts.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	var (
		ownerRepo     owners.Repository
		petRepo       pets.Repository
		vetRepo       vets.Repository
		apptRepo      appointments.Repository
		treatmentRepo treatments.Repository
		userRepo      users.Repository
	)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DB_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err == nil {
				db = opened
			}
		}
	}

	if db != nil {
		ownerRepo = pg.NewOwnersRepo(db)
		petRepo = pg.NewPetsRepo(db)
		vetRepo = pg.NewVetsRepo(db)
		apptRepo = pg.NewAppointmentsRepo(db)
		treatmentRepo = pg.NewTreatmentsRepo(db)
		userRepo = pg.NewUsersRepo(db)
	} else {
		ownerRepo = mem.NewOwnersRepo()
		petRepo = mem.NewPetsRepo()
		vetRepo = mem.NewVetsRepo()
		apptRepo = mem.NewAppointmentsRepo()
		treatmentRepo = mem.NewTreatmentsRepo()
		userRepo = mem.NewUsersRepo()
	}

	// Services por módulo: de hijos a padres, porque los borrados en cascada
	// corren hacia abajo (dueño -> mascotas -> citas -> tratamientos).
	treatmentsSvc := treatments.NewService(treatmentRepo)
	apptsSvc := appointments.NewService(apptRepo, treatmentsSvc)
	petsSvc := pets.NewService(petRepo, apptsSvc)
	vetsSvc := vets.NewService(vetRepo, apptsSvc)
	ownersSvc := owners.NewService(ownerRepo, petsSvc)
	usersSvc := users.NewService(userRepo, tokens)

	// Rutas por módulo
	r.Route("/api", func(api chi.Router) {
		owners.RegisterRoutes(api, ownersSvc)
		vets.RegisterRoutes(api, vetsSvc)
		pets.RegisterRoutes(api, petsSvc, ownersSvc)
		appointments.RegisterRoutes(api, apptsSvc, petsSvc, vetsSvc)
		treatments.RegisterRoutes(api, treatmentsSvc, apptsSvc)
		users.RegisterRoutes(api, usersSvc)
	})

	return r
}
