package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Weather returns the current conditions for ?city=.
func (h *Handler) Weather(c *gin.Context) {
	report, err := h.weatherSvc.Current(c.Request.Context(), c.Query("city"))
	if err != nil {
		abortWithError(c, domainError(err, "weather_failed"))
		return
	}
	c.JSON(http.StatusOK, report)
}

// WeatherAdvice returns current conditions plus clothing advice.
func (h *Handler) WeatherAdvice(c *gin.Context) {
	report, err := h.weatherSvc.Advise(c.Request.Context(), c.Query("city"))
	if err != nil {
		abortWithError(c, domainError(err, "weather_failed"))
		return
	}
	c.JSON(http.StatusOK, report)
}

// Geocoding resolves ?lat=&lon= into a place.
func (h *Handler) Geocoding(c *gin.Context) {
	place, err := h.locationSvc.Reverse(c.Request.Context(), c.Query("lat"), c.Query("lon"))
	if err != nil {
		abortWithError(c, domainError(err, "geocoding_failed"))
		return
	}
	c.JSON(http.StatusOK, place)
}
