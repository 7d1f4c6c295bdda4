package novedad

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

type crearNovedadRequest struct {
	URL              string `json:"url"`
	Titulo           string `json:"title"`
	FechaPublicacion string `json:"publishDate"`
	Estado           *int   `json:"estado"`
}

type listaNovedadesResponse struct {
	Items  []Novedad `json:"items"`
	Pagina int       `json:"pagina"`
	HayMas bool      `json:"hayMas"`
}

// Listar trata GET /novedades con paginación opcional por query
// (?page=&limit=).
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	pagina := parametroEntero(r, "page", 1)
	limite := parametroEntero(r, "limit", 10)

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}

	novedades, hayMas, err := h.Repository.Listar(db, pagina, limite)
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if novedades == nil {
		novedades = []Novedad{}
	}
	utils.ResponderJSON(w, http.StatusOK, listaNovedadesResponse{
		Items:  novedades,
		Pagina: pagina,
		HayMas: hayMas,
	})
}

// Crear trata POST /novedades.
func (h *Handler) Crear(w http.ResponseWriter, r *http.Request) {
	var req crearNovedadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	if req.URL == "" || req.Titulo == "" || req.FechaPublicacion == "" {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{
			"error": "los campos 'url', 'title' y 'publishDate' son obligatorios",
		})
		return
	}

	estado := 1
	if req.Estado != nil {
		estado = *req.Estado
	}
	n := Novedad{
		URL:              req.URL,
		Titulo:           req.Titulo,
		FechaPublicacion: req.FechaPublicacion,
		Estado:           estado,
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if err := h.Repository.Crear(db, &n); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusCreated, n)
}

// Actualizar trata PUT /novedades/{id}.
func (h *Handler) Actualizar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDeRuta(w, r)
	if !ok {
		return
	}

	var req crearNovedadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "JSON inválido"})
		return
	}
	estado := 1
	if req.Estado != nil {
		estado = *req.Estado
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	datos := Novedad{URL: req.URL, Titulo: req.Titulo, FechaPublicacion: req.FechaPublicacion, Estado: estado}
	if err := h.Repository.Actualizar(db, id, &datos); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "novedad actualizada exitosamente"})
}

// AlternarEstado trata PATCH /novedades/{id}.
func (h *Handler) AlternarEstado(w http.ResponseWriter, r *http.Request) {
	id, ok := idDeRuta(w, r)
	if !ok {
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if err := h.Repository.AlternarEstado(db, id); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "estado de la novedad actualizado exitosamente"})
}

// Eliminar trata DELETE /novedades/{id}.
func (h *Handler) Eliminar(w http.ResponseWriter, r *http.Request) {
	id, ok := idDeRuta(w, r)
	if !ok {
		return
	}

	db, err := h.DB.Obtener()
	if err != nil {
		utils.ResponderError(w, err)
		return
	}
	if err := h.Repository.Eliminar(db, id); err != nil {
		utils.ResponderError(w, err)
		return
	}
	utils.ResponderJSON(w, http.StatusOK, map[string]string{"message": "novedad eliminada exitosamente"})
}

func idDeRuta(w http.ResponseWriter, r *http.Request) (uint, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil || id < 1 {
		utils.ResponderJSON(w, http.StatusBadRequest, map[string]string{"error": "id inválido"})
		return 0, false
	}
	return uint(id), true
}

func parametroEntero(r *http.Request, nombre string, porDefecto int) int {
	v := r.URL.Query().Get(nombre)
	if v == "" {
		return porDefecto
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return porDefecto
	}
	return n
}
