package npstrimestral

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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

type guardarEntradaRequest struct {
	Mes string `json:"month"`
	NPS int    `json:"nps"`
}

// UltimosTres trata GET /nps-trimestral/{userId}.
func (h *Handler) UltimosTres(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := usuarioDeRuta(w, r)
	if !ok {
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	entradas, err := h.Repository.UltimosTres(db, usuarioID)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if entradas == nil {
		entradas = []Entrada{}
	}
	utils.ResponderJSON(w, http.StatusOK, entradas)
}

// Guardar trata POST /nps-trimestral/{userId}.
func (h *Handler) Guardar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := usuarioDeRuta(w, r)
	if !ok {
		return
	}

	var req guardarEntradaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if req.Mes == "" {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "el campo 'month' es obligatorio"})
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	entrada := Entrada{UsuarioID: usuarioID, Mes: req.Mes, NPS: req.NPS}
	if err := h.Repository.Guardar(db, &entrada); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "NPS trimestral actualizado exitosamente"})
}

func usuarioDeRuta(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["userId"])
	if err != nil || id < 1 {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "userId inválido"})
		return 0, false
	}
	return uint(id), true
}
