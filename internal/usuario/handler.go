package usuario

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

type crearUsuarioRequest struct {
	Nombre     string `json:"name"`
	Email      string `json:"email"`
	Contrasena string `json:"password"`
}

type actualizarUsuarioRequest struct {
	Respuestas int `json:"responses"`
	NPS        int `json:"nps"`
	CSAT       int `json:"csat"`
	RD         int `json:"rd"`
}

// ListarTodos trata GET /nps-individual.
func (h *Handler) ListarTodos(w http.ResponseWriter, r *http.Request) {
	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	usuarios, err := h.Repository.ListarTodos(db)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if usuarios == nil {
		usuarios = []Usuario{}
	}
	utils.ResponderJSON(w, http.StatusOK, usuarios)
}

// BuscarPorID trata GET /nps-individual/{id}.
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, ok := idDeRuta(w, r)
	if !ok {
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	u, err := h.Repository.BuscarPorID(db, id)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, u)
}

// Crear trata POST /nps-individual. La contraseña se guarda hasheada con
// bcrypt, nunca en texto plano.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if req.Nombre == "" || req.Email == "" || req.Contrasena == "" {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{
			"error": "los campos 'name', 'email' y 'password' son obligatorios",
		})
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}

	// El email es la clave de búsqueda: rechazar duplicados antes del insert.
	existente, err := h.Repository.BuscarPorEmail(db, req.Email)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if existente != nil {
		utils.ResponderJSON(w, http.StatusConflict, map[string]string{"error": "ya existe un usuario con ese email"})
		return
	}

	hash, err := utils.HashContrasena(req.Contrasena)
	if err != nil {
		utils.ResponderJSON(w, http.StatusInternalServerError, map[string]string{"error": "error al procesar la contraseña"})
		return
	}

	u := Usuario{Nombre: req.Nombre, Email: req.Email, Contrasena: hash}
	if err := h.Repository.Crear(db, &u); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, u)
}

// Actualizar trata PUT /nps-individual/{id} con los contadores de encuesta.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDeRuta(w, r)
	if !ok {
		return
	}

	var req actualizarUsuarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if err := h.Repository.Actualizar(db, id, req.Respuestas, req.NPS, req.CSAT, req.RD); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "usuario actualizado exitosamente"})
}

// Estadisticas trata GET /nps-individual/estadisticas.
func (h *Handler) Estadisticas(w http.ResponseWriter, r *http.Request) {
	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	e, err := h.Repository.Estadisticas(db)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, e)
}

func idDeRuta(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return 0, false
	}
	return uint(id), true
}
