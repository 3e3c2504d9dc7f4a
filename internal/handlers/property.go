package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/gan-2/real-estate-api/internal/handlers/render"
	"github.com/gan-2/real-estate-api/internal/handlers/userctx"
	"github.com/gan-2/real-estate-api/internal/logger"
	"github.com/gan-2/real-estate-api/internal/models"
)

type PropertyResponse struct {
	ID    int64       `json:"id"`
	Title string      `json:"title"`
	Price json.Number `json:"price"`
}

func toPropertyResponse(p models.Property) PropertyResponse {
	return PropertyResponse{
		ID:    p.ID,
		Title: p.Title,
		// json.Number keeps price a bare JSON number, decimal marshals quoted
		Price: json.Number(p.Price.String()),
	}
}

func handleListProperties(s propertyService, l logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		properties, err := s.List(r.Context())
		if err != nil {
			l.Error("listing properties failed", "error", err.Error())
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		// Empty store renders as '[]', not 'null'
		res := make([]PropertyResponse, 0, len(properties))
		for _, p := range properties {
			res = append(res, toPropertyResponse(p))
		}

		render.JSON(w, res)
	})
}

func handleCreateProperty(s propertyService, l logger.Logger) http.Handler {
	type request struct {
		Title string          `json:"title"`
		Price decimal.Decimal `json:"price"`
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, err := render.BindAndValidate[request](w, r)
		if err != nil {
			return
		}

		property, err := s.Create(r.Context(), data.Title, data.Price)
		if err != nil {
			l.Error("property creation failed", "error", err.Error())
			render.ServiceError(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		user, _ := userctx.FromContext(r.Context())
		l.Info("property created", "id", property.ID, "user", user.Username)

		render.JSON(w, toPropertyResponse(property))
	})
}
