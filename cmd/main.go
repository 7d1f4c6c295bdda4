package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/VozAtivaCX/api-dashboard/internal/config"
	"github.com/VozAtivaCX/api-dashboard/internal/database"
	"github.com/VozAtivaCX/api-dashboard/internal/descanso"
	"github.com/VozAtivaCX/api-dashboard/internal/empleado"
	"github.com/VozAtivaCX/api-dashboard/internal/novedad"
	"github.com/VozAtivaCX/api-dashboard/internal/npstrimestral"
	"github.com/VozAtivaCX/api-dashboard/internal/usuario"
	"github.com/VozAtivaCX/api-dashboard/internal/utils"
)

func main() {
	configurarLogging()

	cfg, err := config.Cargar()
	if err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}

	manager := database.Conectar(database.AbridorPostgres(cfg), database.Reintentos{
		Maximos: cfg.MaxReintentos,
		Espera:  cfg.EsperaReintento,
	})

	// Migración única en el arranque; las operaciones no verifican tablas
	// por llamada.
	if err := manager.Migrar(
		&empleado.Empleado{},
		&descanso.HorarioBreak{},
		&usuario.Usuario{},
		&novedad.Novedad{},
		&npstrimestral.Entrada{},
	); err != nil {
		log.Fatal().Err(err).Msg("migración de esquema fallida")
	}

	// Handlers
	empleadoHandler := empleado.NewHandler(manager)
	descansoHandler := descanso.NewHandler(manager)
	usuarioHandler := usuario.NewHandler(manager)
	novedadHandler := novedad.NewHandler(manager)
	npsHandler := npstrimestral.NewHandler(manager)

	// Router
	r := mux.NewRouter()

	// Rutas de news (novedades)
	r.HandleFunc("/news", novedadHandler.Listar).Methods("GET")
	r.HandleFunc("/news", novedadHandler.Crear).Methods("POST")
	r.HandleFunc("/news", utils.MetodoNoPermitido("GET", "POST"))
	r.HandleFunc("/news/{id}", novedadHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/news/{id}", novedadHandler.AlternarEstado).Methods("PATCH")
	r.HandleFunc("/news/{id}", novedadHandler.Eliminar).Methods("DELETE")
	r.HandleFunc("/news/{id}", utils.MetodoNoPermitido("PUT", "PATCH", "DELETE"))

	// Rutas del panel NPS individual
	r.HandleFunc("/nps-individual/estadisticas", usuarioHandler.Estadisticas).Methods("GET")
	r.HandleFunc("/nps-individual/estadisticas", utils.MetodoNoPermitido("GET"))
	r.HandleFunc("/nps-individual", usuarioHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/nps-individual", usuarioHandler.Crear).Methods("POST")
	r.HandleFunc("/nps-individual", utils.MetodoNoPermitido("GET", "POST"))
	r.HandleFunc("/nps-individual/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	r.HandleFunc("/nps-individual/{id}", usuarioHandler.Actualizar).Methods("PUT")
	r.HandleFunc("/nps-individual/{id}", utils.MetodoNoPermitido("GET", "PUT"))

	// Rutas de NPS trimestral
	r.HandleFunc("/nps-trimestral/{userId}", npsHandler.UltimosTres).Methods("GET")
	r.HandleFunc("/nps-trimestral/{userId}", npsHandler.Guardar).Methods("POST")
	r.HandleFunc("/nps-trimestral/{userId}", utils.MetodoNoPermitido("GET", "POST"))

	// Rutas de empleados
	r.HandleFunc("/empleados/top", empleadoHandler.Top).Methods("GET")
	r.HandleFunc("/empleados/top", utils.MetodoNoPermitido("GET"))
	r.HandleFunc("/empleados", empleadoHandler.ListarTodos).Methods("GET")
	r.HandleFunc("/empleados", empleadoHandler.Crear).Methods("POST")
	r.HandleFunc("/empleados", utils.MetodoNoPermitido("GET", "POST"))

	// Rutas de horarios de break
	r.HandleFunc("/breaks/resumen", descansoHandler.ResumenSemanal).Methods("GET")
	r.HandleFunc("/breaks/resumen", utils.MetodoNoPermitido("GET"))
	r.HandleFunc("/breaks", descansoHandler.ListarPorEmpleado).Methods("GET")
	r.HandleFunc("/breaks", descansoHandler.Guardar).Methods("PUT")
	r.HandleFunc("/breaks", utils.MetodoNoPermitido("GET", "PUT"))

	// Salud: presencia de configuración sin exponer valores
	r.HandleFunc("/salud", func(w http.ResponseWriter, _ *http.Request) {
		utils.ResponderJSON(w, http.StatusOK, cfg.Presencia())
	}).Methods("GET")

	handler := cors.Default().Handler(r)

	log.Info().Str("puerto", cfg.Puerto).Msg("servidor escuchando")
	if err := http.ListenAndServe(":"+cfg.Puerto, handler); err != nil {
		log.Fatal().Err(err).Msg("servidor detenido")
	}
}

// configurarLogging manda los logs a consola y a un archivo rotado.
func configurarLogging() {
	zerolog.TimeFieldFormat = time.RFC3339
	consola := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	archivo := &lumberjack.Logger{
		Filename:   "logs/api-dashboard.log",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
	log.Logger = zerolog.New(zerolog.MultiLevelWriter(consola, archivo)).With().Timestamp().Logger()
}
