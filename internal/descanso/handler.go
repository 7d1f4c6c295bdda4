package descanso

import (
	"encoding/json"
	"net/http"
	"strconv"

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

type resumenSemanalResponse struct {
	Dias         []ResumenDia `json:"dias"`
	TotalMinutos float64      `json:"totalMinutos"`
}

// ListarPorEmpleado trata GET /breaks?empleadoId=&mes=&anio=.
func (h *Handler) ListarPorEmpleado(w http.ResponseWriter, r *http.Request) {
	empleadoID, okEmpleado := queryEntero(r, "empleadoId")
	mes, okMes := queryEntero(r, "mes")
	anio, okAnio := queryEntero(r, "anio")
	if !okEmpleado || !okMes || !okAnio {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{
			"error": "los parámetros 'empleadoId', 'mes' y 'anio' son obligatorios",
		})
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	horarios, err := h.Repository.ListarPorEmpleado(db, uint(empleadoID), mes, anio)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if horarios == nil {
		horarios = []HorarioBreak{}
	}
	utils.ResponderJSON(w, http.StatusOK, horarios)
}

// Guardar trata PUT /breaks: inserta o pisa la franja de la clave
// (empleado, día, semana, mes, año).
func (h *Handler) Guardar(w http.ResponseWriter, r *http.Request) {
	var horario HorarioBreak
	if err := json.NewDecoder(r.Body).Decode(&horario); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if horario.EmpleadoID == 0 || horario.Dia == "" || horario.HoraInicio == "" ||
		horario.HoraFin == "" || horario.Semana == 0 || horario.Mes == 0 || horario.Anio == 0 {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "faltan campos obligatorios"})
		return
	}
	horario.ID = 0

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if err := h.Repository.Guardar(db, &horario); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "horario de break guardado exitosamente"})
}

// ResumenSemanal trata GET /breaks/resumen?semana=&anio=.
func (h *Handler) ResumenSemanal(w http.ResponseWriter, r *http.Request) {
	semana, okSemana := queryEntero(r, "semana")
	anio, okAnio := queryEntero(r, "anio")
	if !okSemana || !okAnio {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{
			"error": "los parámetros 'semana' y 'anio' son obligatorios",
		})
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	dias, err := h.Repository.ResumenSemanal(db, semana, anio)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}

	var total float64
	for _, d := range dias {
		total += d.MinutosTotales
	}
	utils.ResponderJSON(w, http.StatusOK, resumenSemanalResponse{Dias: dias, TotalMinutos: total})
}

func queryEntero(r *http.Request, nombre string) (int, bool) {
	n, err := strconv.Atoi(r.URL.Query().Get(nombre))
	if err != nil {
		return 0, false
	}
	return n, true
}
