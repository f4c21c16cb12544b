package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/campaign-metrics-api/internal/domain"
	"github.com/vfg2006/campaign-metrics-api/internal/usecases/companies"
	"github.com/vfg2006/campaign-metrics-api/pkg/apiErrors"
	"github.com/vfg2006/campaign-metrics-api/pkg/log"
)

func ListCompanyMappings(service companies.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		onlyActive := r.URL.Query().Get("all") != "true"

		mappings, err := service.ListMappings(r.Context(), onlyActive)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		writeJSON(w, logger, http.StatusOK, mappings)
	})
}

func CreateCompanyMapping(service companies.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.CreateMappingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
			return
		}

		mapping, created, err := service.CreateMapping(r.Context(), req)
		if err != nil {
			writeServiceError(w, logger, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}

		writeJSON(w, logger, status, mapping)
	})
}

func DeleteCompanyMapping(service companies.CompanyService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteMapping(r.Context(), id); err != nil {
			writeServiceError(w, logger, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
