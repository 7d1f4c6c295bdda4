package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/VozAtivaCX/api-dashboard/internal/errores"
)

// ResponderJSON escribe el cuerpo como JSON con el status indicado.
func ResponderJSON(w http.ResponseWriter, status int, cuerpo interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if cuerpo != nil {
		_ = json.NewEncoder(w).Encode(cuerpo)
	}
}

// ResponderError mapea el tipo de error al status HTTP y escribe el cuerpo
// {"error": mensaje}. Registros ausentes dan 404, conexión caída 503 y el
// resto 500.
func ResponderError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var conexion *errores.ErrorConexionNoDisponible
	switch {
	case errors.Is(err, errores.ErrNoEncontrado):
		status = http.StatusNotFound
	case errors.As(err, &conexion):
		status = http.StatusServiceUnavailable
	}

	log.Error().Err(err).Int("status", status).Msg("error en la operación")
	ResponderJSON(w, status, map[string]string{"error": err.Error()})
}

// MetodoNoPermitido devuelve un handler 405 con el header Allow listando
// los verbos soportados por la ruta.
func MetodoNoPermitido(metodos ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Allow", strings.Join(metodos, ", "))
		ResponderJSON(w, http.StatusMethodNotAllowed, map[string]string{
			"error": "método " + r.Method + " no permitido",
		})
	}
}
