package handler

import (
	"net/http"

	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/taxonomy"
	"doctor-directory/pkg/response"

	"github.com/gorilla/mux"
)

// TaxonomyHandler serves the static code/label enumerations the UI renders
// its filter and form controls from. Entry order is the declaration order of
// each taxonomy.
type TaxonomyHandler struct{}

func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

func (h *TaxonomyHandler) GetCareCategories(w http.ResponseWriter, r *http.Request) {
	categories := taxonomy.CareCategories()
	entries := make([]dto.TaxonomyEntry, len(categories))
	for i, c := range categories {
		entries[i] = dto.TaxonomyEntry{Code: string(c), Label: c.Label()}
	}

	response.Success(w, http.StatusOK, "Care categories retrieved successfully", &dto.TaxonomyListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

func (h *TaxonomyHandler) GetCareAreasByCategory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	code := vars["code"]
	if !taxonomy.IsCareCategory(code) {
		response.NotFound(w, "Care category not found")
		return
	}

	areas := taxonomy.CareCategory(code).Areas()
	entries := make([]dto.TaxonomyEntry, len(areas))
	for i, a := range areas {
		entries[i] = dto.TaxonomyEntry{Code: string(a), Label: a.Label()}
	}

	response.Success(w, http.StatusOK, "Care areas retrieved successfully", &dto.TaxonomyListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

func (h *TaxonomyHandler) GetDepartments(w http.ResponseWriter, r *http.Request) {
	departments := taxonomy.Departments()
	entries := make([]dto.TaxonomyEntry, len(departments))
	for i, d := range departments {
		entries[i] = dto.TaxonomyEntry{Code: string(d), Label: d.Label()}
	}

	response.Success(w, http.StatusOK, "Departments retrieved successfully", &dto.TaxonomyListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}

func (h *TaxonomyHandler) GetLanguages(w http.ResponseWriter, r *http.Request) {
	languages := taxonomy.Languages()
	entries := make([]dto.TaxonomyEntry, len(languages))
	for i, l := range languages {
		entries[i] = dto.TaxonomyEntry{Code: string(l), Label: l.Label()}
	}

	response.Success(w, http.StatusOK, "Languages retrieved successfully", &dto.TaxonomyListResponse{
		Entries: entries,
		Total:   len(entries),
	})
}
