package empleado

import (
	"encoding/json"
	"net/http"

	"github.com/VozAtivaCX/api-dashboard/internal/database"
	"github.com/VozAtivaCX/api-dashboard/internal/utils"
)

// Handler encapsula el manager de conexión y el repository.
type Handler struct {
	DB         *database.Manager
	Repository Repository
}

func NewHandler(db *database.Manager) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

type crearEmpleadoRequest struct {
	Nombre          string `json:"firstName"`
	Apellido        string `json:"lastName"`
	Email           string `json:"email"`
	DNI             string `json:"dni"`
	HoraEntrada     string `json:"entryTime"`
	HoraSalida      string `json:"exitTime"`
	HorasTrabajadas int    `json:"hoursWorked"`
	XLite           string `json:"xLite"`
}

// ListarTodos trata GET /empleados.
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	empleados, err := h.Repository.ListarTodos(db)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if empleados == nil {
		empleados = []Empleado{}
	}
	utils.ResponderJSON(w, http.StatusOK, empleados)
}

// Crear trata POST /empleados.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearEmpleadoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	// Todos los campos de texto son obligatorios.
	if req.Nombre == "" || req.Apellido == "" || req.Email == "" || req.DNI == "" ||
		req.HoraEntrada == "" || req.HoraSalida == "" || req.XLite == "" {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "faltan campos obligatorios"})
		return
	}

	e := Empleado{
		Nombre:          req.Nombre,
		Apellido:        req.Apellido,
		Email:           req.Email,
		DNI:             req.DNI,
		HoraEntrada:     req.HoraEntrada,
		HoraSalida:      req.HoraSalida,
		HorasTrabajadas: req.HorasTrabajadas,
		XLite:           req.XLite,
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if err := h.Repository.Crear(db, &e); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, e)
}

// Top trata GET /empleados/top con los 5 de más horas trabajadas.
func (h *Handler) Top(w http.ResponseWriter, r *http.Request) {
	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	empleados, err := h.Repository.Top(db, 5)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if empleados == nil {
		empleados = []Empleado{}
	}
	utils.ResponderJSON(w, http.StatusOK, empleados)
}
