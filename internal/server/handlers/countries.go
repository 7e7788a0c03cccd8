package handlers

import (
	"net/http"
	"strings"

	"github.com/manosbatsis/ibanapi/internal/server/response"
	"github.com/manosbatsis/ibanapi/pkg/errors"
)

// HandleListCountries handles GET /countries.
// @Summary List country formats
// @Description Lists every country in the IBAN format registry, sorted by code
// @Tags countries
// @Produce json
// @Success 200 {object} CountryList
// @Router /countries [get].
func (h *Handlers) HandleListCountries(w http.ResponseWriter, _ *http.Request) {
	formats := h.validator.Registry().All()

	list := CountryList{Countries: make([]CountryInfo, len(formats)), Count: len(formats)}
	for i, f := range formats {
		list.Countries[i] = f.Info()
	}
	response.OK(w, list)
}

// HandleGetCountry handles GET /countries/{code}.
// @Summary Get a country format
// @Description Returns the IBAN format of one country. The code is case-insensitive.
// @Tags countries
// @Produce json
// @Param code path string true "ISO 3166-1 alpha-2 country code"
// @Success 200 {object} CountryInfo
// @Failure 404 {object} response.Message
// @Router /countries/{code} [get].
func (h *Handlers) HandleGetCountry(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(strings.TrimSpace(pathParam(r, "code")))

	f, ok := h.validator.Registry().Lookup(code)
	if !ok {
		response.ErrorFromType(w, errors.NewNotFoundError("country", code))
		return
	}
	response.OK(w, f.Info())
}
